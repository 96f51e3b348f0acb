package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/logger"
)

// FileStore persists each collection as one JSON document under a data
// directory. It is the default backend for single-device deployments.
type FileStore struct {
	mu      sync.Mutex
	dataDir string
}

// NewFileStore creates the data directory if needed and returns a store.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

// readInto loads a collection into out. Missing files and corrupt content
// both leave out at its zero value: once local storage is damaged there is
// no recovery path, so readers get the empty default instead of an error.
func (s *FileStore) readInto(collection string, out any) bool {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read collection, using empty default",
				"collection", collection, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Corrupt collection data, using empty default",
			"collection", collection, "error", err)
		return false
	}
	return true
}

func (s *FileStore) write(collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) Bills() []domain.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bills []domain.Bill
	s.readInto(CollectionBills, &bills)
	if bills == nil {
		bills = []domain.Bill{}
	}
	return bills
}

func (s *FileStore) SetBills(bills []domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bills == nil {
		bills = []domain.Bill{}
	}
	return s.write(CollectionBills, bills)
}

func (s *FileStore) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []domain.User
	s.readInto(CollectionUsers, &users)
	if users == nil {
		users = []domain.User{}
	}
	return users
}

func (s *FileStore) SetUsers(users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if users == nil {
		users = []domain.User{}
	}
	return s.write(CollectionUsers, users)
}

func (s *FileStore) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user domain.User
	if !s.readInto(CollectionCurrentUser, &user) {
		return nil
	}
	return &user
}

func (s *FileStore) SetCurrentUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(CollectionCurrentUser, user)
}

func (s *FileStore) SentNotifications() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sentNotificationsLocked()
}

func (s *FileStore) sentNotificationsLocked() []string {
	var ids []string
	s.readInto(CollectionSentNotifications, &ids)
	if ids == nil {
		ids = []string{}
	}
	return ids
}

func (s *FileStore) SetSentNotifications(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ids == nil {
		ids = []string{}
	}
	return s.write(CollectionSentNotifications, ids)
}

func (s *FileStore) MarkNotificationSent(billID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.sentNotificationsLocked()
	if containsID(ids, billID) {
		return nil
	}
	return s.write(CollectionSentNotifications, append(ids, billID))
}
