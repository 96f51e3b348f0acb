package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"contaspro-backend/internal/api/handlers"
	"contaspro-backend/internal/service"
	"contaspro-backend/internal/store"
	"contaspro-backend/pkg/response"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Store     store.Store
	Bills     service.BillService
	Users     service.UserService
	Intake    service.IntakeService
	Assistant service.AssistantService
}

// NewRouter wires all HTTP routes.
func NewRouter(deps Deps) *mux.Router {
	billHandler := handlers.NewBillHandler(deps.Bills, deps.Users)
	userHandler := handlers.NewUserHandler(deps.Users)
	backupHandler := handlers.NewBackupHandler(deps.Store)
	intakeHandler := handlers.NewIntakeHandler(deps.Intake)
	assistantHandler := handlers.NewAssistantHandler(deps.Assistant, deps.Users)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Bills
	v1.HandleFunc("/bills", billHandler.List).Methods(http.MethodGet)
	v1.HandleFunc("/bills", billHandler.Create).Methods(http.MethodPost)
	v1.HandleFunc("/bills", billHandler.Wipe).Methods(http.MethodDelete)
	v1.HandleFunc("/bills/summary", billHandler.Summary).Methods(http.MethodGet)
	v1.HandleFunc("/bills/{id}/pay", billHandler.Pay).Methods(http.MethodPost)

	// Users and companies
	v1.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	v1.HandleFunc("/users/current", userHandler.Current).Methods(http.MethodGet)
	v1.HandleFunc("/users/current", userHandler.SetCurrent).Methods(http.MethodPut)
	v1.HandleFunc("/users/{id}/units", userHandler.UpdateUnits).Methods(http.MethodPut)
	v1.HandleFunc("/companies", userHandler.Companies).Methods(http.MethodGet)

	// Document intake and assistant
	v1.HandleFunc("/intake", intakeHandler.Process).Methods(http.MethodPost)
	v1.HandleFunc("/assistant", assistantHandler.Query).Methods(http.MethodPost)

	// Backup
	v1.HandleFunc("/backup", backupHandler.Export).Methods(http.MethodGet)
	v1.HandleFunc("/backup", backupHandler.Import).Methods(http.MethodPost)

	return r
}
