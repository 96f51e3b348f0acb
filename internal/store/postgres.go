package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/logger"
)

// PostgresStore keeps the four collections in a single key-value table,
// one row per collection. Semantics match the file backend: wholesale
// reads and writes, corrupt data degrading to the empty default.
type PostgresStore struct {
	mu sync.Mutex
	db *sql.DB
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the collections table if it does not exist.
func (s *PostgresStore) EnsureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create collections table: %w", err)
	}
	return nil
}

// readInto loads a collection row into out. A missing row or unparseable
// payload leaves out at its zero value.
func (s *PostgresStore) readInto(collection string, out any) bool {
	var data []byte
	err := s.db.QueryRow(
		`SELECT data FROM collections WHERE name = $1`, collection,
	).Scan(&data)
	if err != nil {
		if err != sql.ErrNoRows {
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

func (s *PostgresStore) write(collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET data = $2, updated_at = NOW()
	`, collection, data)
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Bills() []domain.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bills []domain.Bill
	s.readInto(CollectionBills, &bills)
	if bills == nil {
		bills = []domain.Bill{}
	}
	return bills
}

func (s *PostgresStore) SetBills(bills []domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bills == nil {
		bills = []domain.Bill{}
	}
	return s.write(CollectionBills, bills)
}

func (s *PostgresStore) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []domain.User
	s.readInto(CollectionUsers, &users)
	if users == nil {
		users = []domain.User{}
	}
	return users
}

func (s *PostgresStore) SetUsers(users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if users == nil {
		users = []domain.User{}
	}
	return s.write(CollectionUsers, users)
}

func (s *PostgresStore) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user domain.User
	if !s.readInto(CollectionCurrentUser, &user) {
		return nil
	}
	return &user
}

func (s *PostgresStore) SetCurrentUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(CollectionCurrentUser, user)
}

func (s *PostgresStore) SentNotifications() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sentNotificationsLocked()
}

func (s *PostgresStore) sentNotificationsLocked() []string {
	var ids []string
	s.readInto(CollectionSentNotifications, &ids)
	if ids == nil {
		ids = []string{}
	}
	return ids
}

func (s *PostgresStore) SetSentNotifications(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ids == nil {
		ids = []string{}
	}
	return s.write(CollectionSentNotifications, ids)
}

func (s *PostgresStore) MarkNotificationSent(billID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.sentNotificationsLocked()
	if containsID(ids, billID) {
		return nil
	}
	return s.write(CollectionSentNotifications, append(ids, billID))
}
