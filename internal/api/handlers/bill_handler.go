package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/service"
	"contaspro-backend/pkg/response"
)

// BillHandler serves the bill list, manual entry, payment confirmation,
// dashboard summary and the danger-zone wipe.
type BillHandler struct {
	bills service.BillService
	users service.UserService
}

func NewBillHandler(bills service.BillService, users service.UserService) *BillHandler {
	return &BillHandler{bills: bills, users: users}
}

// List returns the acting user's visible bills with derived display status.
func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.users)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	bills, err := h.bills.ListBills(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, bills)
}

// Create files a manually entered bill.
func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	bill, err := h.bills.AddBill(r.Context(), service.AddBillInput{
		Beneficiary:        req.Beneficiary,
		Amount:             req.Amount,
		DueDate:            req.DueDate,
		Category:           req.Category,
		CompanyID:          req.CompanyID,
		Type:               domain.BillType(req.Type),
		InstallmentsCount:  req.InstallmentsCount,
		CurrentInstallment: req.CurrentInstallment,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, bill)
}

// Pay confirms payment of a bill. The transition is irreversible.
func (h *BillHandler) Pay(w http.ResponseWriter, r *http.Request) {
	billID := mux.Vars(r)["id"]

	bill, err := h.bills.MarkPaid(r.Context(), billID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, bill)
}

// Summary aggregates the acting user's visible bills for the dashboard.
func (h *BillHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.users)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	sum, err := h.bills.Summary(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, sum)
}

// Wipe clears the bill collection. Users and notification markers are
// untouched. Confirmation happens client-side before this is called.
func (h *BillHandler) Wipe(w http.ResponseWriter, r *http.Request) {
	if err := h.bills.WipeBills(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "wiped"})
}
