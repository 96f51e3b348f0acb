// Package store provides durable key-value storage for the four named
// collections the application persists: bills, users, the current-user
// pointer and the set of notification-dispatch markers.
//
// Reads never fail: a missing or unparseable collection degrades to its
// documented empty default. Writes replace a collection wholesale; there
// is no partial-update operation, callers read-modify-write.
package store

import "contaspro-backend/internal/domain"

// Collection names as persisted by the backends.
const (
	CollectionBills             = "bills"
	CollectionUsers             = "users"
	CollectionCurrentUser       = "current_user"
	CollectionSentNotifications = "sent_notifications"
)

// Store is the injected persistence handle. Implementations serialize
// access internally so the read-modify-write pattern is safe when the
// scheduler and the HTTP server share one store.
type Store interface {
	// Bills returns the bill collection, newest first. Empty slice if never written.
	Bills() []domain.Bill
	SetBills(bills []domain.Bill) error

	// Users returns the user collection. Empty slice if never written.
	Users() []domain.User
	SetUsers(users []domain.User) error

	// CurrentUser returns the current-user pointer, or nil if absent.
	CurrentUser() *domain.User
	SetCurrentUser(user domain.User) error

	// SentNotifications returns the set of bill ids for which a due-date
	// reminder has already been dispatched.
	SentNotifications() []string
	SetSentNotifications(ids []string) error

	// MarkNotificationSent inserts billID into the marker set if absent.
	// Duplicate inserts are no-ops, so redundant calls are safe.
	MarkNotificationSent(billID string) error
}

// containsID reports whether ids already holds id.
func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
