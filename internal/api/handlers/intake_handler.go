package handlers

import (
	"errors"
	"io"
	"net/http"

	"contaspro-backend/internal/service"
	"contaspro-backend/pkg/response"
)

// maxDocumentSize bounds uploaded invoice documents.
const maxDocumentSize = 10 << 20 // 10 MiB

// IntakeHandler accepts invoice documents and files the extracted bill.
type IntakeHandler struct {
	intake service.IntakeService
}

func NewIntakeHandler(intake service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

// Process handles a multipart upload with a "document" file part and a
// "companyId" form field.
func (h *IntakeHandler) Process(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		response.BadRequest(w, "missing document file")
		return
	}
	defer file.Close()

	document, err := io.ReadAll(io.LimitReader(file, maxDocumentSize))
	if err != nil {
		response.BadRequest(w, "failed to read document")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	companyID := r.FormValue("companyId")

	bill, err := h.intake.ProcessDocument(r.Context(), document, mimeType, companyID)
	if err != nil {
		if isClientError(err) {
			writeServiceError(w, err)
			return
		}
		// Collaborator failure: retryable, never crashes the host screen
		response.BadGateway(w, "could not read the document, please try again")
		return
	}
	response.JSON(w, http.StatusCreated, bill)
}

func isClientError(err error) bool {
	return errors.Is(err, service.ErrInvalidBill) || errors.Is(err, service.ErrUnknownCompany)
}
