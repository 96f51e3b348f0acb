package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"contaspro-backend/internal/service"
	"contaspro-backend/pkg/response"
)

// UserHandler serves the user roster, the current-user pointer and the
// admin permission controls.
type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.users.ListUsers(r.Context()))
}

func (h *UserHandler) Companies(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.users.Companies(r.Context()))
}

func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) SetCurrent(w http.ResponseWriter, r *http.Request) {
	var req SetCurrentUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.users.SetCurrentUser(r.Context(), req.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	user, err := h.users.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user)
}

// UpdateUnits replaces a user's accessible companies. The acting user
// must hold the ADMIN role.
func (h *UserHandler) UpdateUnits(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["id"]

	actor, err := actingUser(r, h.users)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var req UpdateUnitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.users.UpdateAccessibleUnits(r.Context(), actor.ID, targetID, req.AccessibleUnits); err != nil {
		writeServiceError(w, err)
		return
	}

	target, err := h.users.GetUser(r.Context(), targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, target)
}
