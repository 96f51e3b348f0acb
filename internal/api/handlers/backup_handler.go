package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"contaspro-backend/internal/backup"
	"contaspro-backend/internal/store"
	"contaspro-backend/pkg/response"
)

// maxBackupSize bounds import payloads (the store holds at most a few
// thousand bills).
const maxBackupSize = 16 << 20 // 16 MiB

// BackupHandler serves snapshot export and import.
type BackupHandler struct {
	store store.Store
}

func NewBackupHandler(s store.Store) *BackupHandler {
	return &BackupHandler{store: s}
}

// Export returns a self-consistent snapshot of the persisted collections.
// The raw snapshot is the response body so the file can be re-imported
// unchanged.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap := backup.Export(h.store)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="contaspro-backup.json"`)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(snap)
}

// Import restores collections from an uploaded snapshot. Destructive
// wholesale replace; the client obtains user confirmation first.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(io.LimitReader(r.Body, maxBackupSize))
	if err != nil {
		response.BadRequest(w, "failed to read backup document")
		return
	}

	if err := backup.Import(h.store, doc); err != nil {
		// Store left unmodified; the user may retry with a valid file
		response.BadRequest(w, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
