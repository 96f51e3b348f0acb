package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDisplayStatus(t *testing.T) {
	today := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("Pending bill due in the future stays pending", func(t *testing.T) {
		b := Bill{Status: BillStatusPending, DueDate: "2025-03-15"}
		assert.Equal(t, BillStatusPending, b.DeriveDisplayStatus(today))
	})

	t.Run("Pending bill due today is not overdue", func(t *testing.T) {
		b := Bill{Status: BillStatusPending, DueDate: "2025-03-10"}
		assert.Equal(t, BillStatusPending, b.DeriveDisplayStatus(today))
	})

	t.Run("Pending bill due yesterday is overdue", func(t *testing.T) {
		b := Bill{Status: BillStatusPending, DueDate: "2025-03-09"}
		assert.Equal(t, BillStatusOverdue, b.DeriveDisplayStatus(today))
	})

	t.Run("Paid bill is never overdue", func(t *testing.T) {
		b := Bill{Status: BillStatusPaid, DueDate: "2020-01-01"}
		assert.Equal(t, BillStatusPaid, b.DeriveDisplayStatus(today))
	})

	t.Run("Unparseable due date stays pending", func(t *testing.T) {
		b := Bill{Status: BillStatusPending, DueDate: "10/03/2025"}
		assert.Equal(t, BillStatusPending, b.DeriveDisplayStatus(today))
	})

	t.Run("Projection advances with today", func(t *testing.T) {
		b := Bill{Status: BillStatusPending, DueDate: "2025-03-10"}
		assert.Equal(t, BillStatusPending, b.DeriveDisplayStatus(today))
		assert.Equal(t, BillStatusOverdue, b.DeriveDisplayStatus(today.AddDate(0, 0, 1)))
	})
}

func TestDueOn(t *testing.T) {
	b := Bill{DueDate: "2025-03-11"}
	assert.True(t, b.DueOn(time.Date(2025, 3, 11, 23, 59, 0, 0, time.UTC)))
	assert.False(t, b.DueOn(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Energy", NormalizeCategory("Energy"))
	assert.Equal(t, CategoryOther, NormalizeCategory("Energia"))
	assert.Equal(t, CategoryOther, NormalizeCategory(""))
}

func TestCanAccess(t *testing.T) {
	u := User{AccessibleUnits: []string{"schroder", "corupa"}}
	assert.True(t, u.CanAccess("corupa"))
	assert.False(t, u.CanAccess("jaragua"))
}
