package handlers

import (
	"errors"
	"net/http"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/service"
	"contaspro-backend/pkg/response"
)

// actingUserHeader carries the locally-selected user. This is device-local
// user selection, not authentication.
const actingUserHeader = "X-User-ID"

// actingUser resolves the user performing the request: the X-User-ID
// header when present, the stored current user otherwise.
func actingUser(r *http.Request, users service.UserService) (*domain.User, error) {
	if id := r.Header.Get(actingUserHeader); id != "" {
		return users.GetUser(r.Context(), id)
	}
	return users.CurrentUser(r.Context())
}

// writeServiceError maps service-layer errors onto the response envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBillNotFound), errors.Is(err, service.ErrUserNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(w, err.Error())
	case errors.Is(err, service.ErrUnknownCompany), errors.Is(err, service.ErrInvalidBill):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}
