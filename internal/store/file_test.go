package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contaspro-backend/internal/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStoreDefaults(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.Bills())
	assert.Empty(t, s.Users())
	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, s.SentNotifications())
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	bills := []domain.Bill{
		{ID: "b1", Beneficiary: "Celesc", Amount: 420.50, DueDate: "2025-04-01",
			Category: "Energy", Status: domain.BillStatusPending,
			CompanyID: "schroder", Type: domain.BillTypeSingle},
	}
	require.NoError(t, s.SetBills(bills))
	assert.Equal(t, bills, s.Bills())

	users := domain.InitialUsers()
	require.NoError(t, s.SetUsers(users))
	assert.Equal(t, users, s.Users())

	require.NoError(t, s.SetCurrentUser(users[0]))
	got := s.CurrentUser()
	require.NotNil(t, got)
	assert.Equal(t, users[0].ID, got.ID)
}

func TestFileStoreCorruptDataDegradesToDefault(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(s.dataDir, "bills.json"), []byte("{not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(s.dataDir, "current_user.json"), []byte("]["), 0644))

	assert.Empty(t, s.Bills())
	assert.Nil(t, s.CurrentUser())
}

func TestMarkNotificationSent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.MarkNotificationSent("b1"))
	assert.Equal(t, []string{"b1"}, s.SentNotifications())

	// Duplicate insert is a no-op
	require.NoError(t, s.MarkNotificationSent("b1"))
	assert.Equal(t, []string{"b1"}, s.SentNotifications())

	require.NoError(t, s.MarkNotificationSent("b2"))
	assert.Equal(t, []string{"b1", "b2"}, s.SentNotifications())
}

func TestWipeBillsLeavesOtherCollections(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetBills([]domain.Bill{{ID: "b1"}}))
	require.NoError(t, s.SetUsers(domain.InitialUsers()))
	require.NoError(t, s.MarkNotificationSent("b1"))

	require.NoError(t, s.SetBills([]domain.Bill{}))

	assert.Empty(t, s.Bills())
	assert.Len(t, s.Users(), 3)
	assert.Equal(t, []string{"b1"}, s.SentNotifications())
}
