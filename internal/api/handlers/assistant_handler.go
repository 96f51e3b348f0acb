package handlers

import (
	"encoding/json"
	"net/http"

	"contaspro-backend/internal/service"
	"contaspro-backend/pkg/response"
)

// AssistantHandler serves natural-language financial queries.
type AssistantHandler struct {
	assistant service.AssistantService
	users     service.UserService
}

func NewAssistantHandler(assistant service.AssistantService, users service.UserService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, users: users}
}

func (h *AssistantHandler) Query(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.users)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var req AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	answer, err := h.assistant.Answer(r.Context(), user.ID, req.Query)
	if err != nil {
		// Best effort: surfaced as retryable, never crashes the caller
		response.BadGateway(w, "the assistant is unavailable, please try again")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"answer": answer})
}
