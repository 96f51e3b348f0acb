// Package backup serializes the persisted collections into a single
// snapshot document for export, and restores them from one on import.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/store"
)

// FormatVersion tags exported snapshots. Bumped only on breaking shape changes.
const FormatVersion = "1.0"

// Snapshot is the full export of the persisted collections.
type Snapshot struct {
	Bills             []domain.Bill `json:"bills"`
	Users             []domain.User `json:"users"`
	SentNotifications []string      `json:"sentNotifications"`
	Version           string        `json:"version"`
	ExportedAt        string        `json:"exportedAt"`
}

// Export reads the three backed-up collections into a self-consistent
// snapshot. The store serializes reads, so the snapshot cannot interleave
// with a concurrent write.
func Export(s store.Store) Snapshot {
	return Snapshot{
		Bills:             s.Bills(),
		Users:             s.Users(),
		SentNotifications: s.SentNotifications(),
		Version:           FormatVersion,
		ExportedAt:        time.Now().Format(time.RFC3339),
	}
}

// importDoc distinguishes absent fields from empty ones: only fields
// present in the document replace their collection.
type importDoc struct {
	Bills             *[]domain.Bill `json:"bills"`
	Users             *[]domain.User `json:"users"`
	SentNotifications *[]string      `json:"sentNotifications"`
}

// Import restores collections from a snapshot document. This is a
// destructive wholesale replace, not a merge; the caller is responsible
// for user confirmation. Malformed input is rejected with the store left
// unmodified.
func Import(s store.Store, doc []byte) error {
	var snap importDoc
	if err := json.Unmarshal(doc, &snap); err != nil {
		return fmt.Errorf("invalid backup document: %w", err)
	}
	if snap.Bills == nil && snap.Users == nil && snap.SentNotifications == nil {
		return fmt.Errorf("invalid backup document: no known collections present")
	}

	if snap.Bills != nil {
		if err := s.SetBills(*snap.Bills); err != nil {
			return fmt.Errorf("failed to restore bills: %w", err)
		}
	}
	if snap.Users != nil {
		if err := s.SetUsers(*snap.Users); err != nil {
			return fmt.Errorf("failed to restore users: %w", err)
		}
	}
	if snap.SentNotifications != nil {
		if err := s.SetSentNotifications(*snap.SentNotifications); err != nil {
			return fmt.Errorf("failed to restore notification markers: %w", err)
		}
	}
	return nil
}
