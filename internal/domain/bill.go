package domain

import "time"

type BillStatus string

const (
	BillStatusPending BillStatus = "PENDING"
	BillStatusPaid    BillStatus = "PAID"
	// BillStatusOverdue is a display-only projection. It is never written
	// to the store; DeriveDisplayStatus computes it from PENDING + due date.
	BillStatusOverdue BillStatus = "OVERDUE"
)

type BillType string

const (
	BillTypeSingle    BillType = "SINGLE"
	BillTypeParcel    BillType = "PARCEL"
	BillTypeRecurring BillType = "RECURRING"
)

// DateLayout is the calendar-date format used for due dates (no time component).
const DateLayout = "2006-01-02"

type Bill struct {
	ID                 string     `json:"id"`
	Beneficiary        string     `json:"beneficiary"`
	Amount             float64    `json:"amount"`
	DueDate            string     `json:"dueDate"` // Format: 'YYYY-MM-DD'
	Category           string     `json:"category"`
	Status             BillStatus `json:"status"`
	CompanyID          string     `json:"companyId"`
	Type               BillType   `json:"type"`
	CreatedAt          string     `json:"createdAt"`
	InstallmentsCount  *int32     `json:"installmentsCount,omitempty"`
	CurrentInstallment *int32     `json:"currentInstallment,omitempty"`
}

// Categories is the fixed set a bill may be filed under. Extraction output
// outside this set is normalized to CategoryOther.
var Categories = []string{
	"Energy", "Water", "Internet", "Rent", "Suppliers",
	"Taxes", "Salaries", "Maintenance", "Other",
}

const CategoryOther = "Other"

// KnownCategory reports whether name is one of the fixed categories.
func KnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// NormalizeCategory maps an arbitrary category string to the fixed set.
func NormalizeCategory(name string) string {
	if KnownCategory(name) {
		return name
	}
	return CategoryOther
}

// DeriveDisplayStatus computes the status shown to the user. A PENDING bill
// whose due date is strictly before today is displayed as OVERDUE. The
// persisted status never changes here, so the projection must be recomputed
// on every evaluation as "today" advances.
func (b *Bill) DeriveDisplayStatus(today time.Time) BillStatus {
	if b.Status != BillStatusPending {
		return b.Status
	}
	due, err := time.ParseInLocation(DateLayout, b.DueDate, today.Location())
	if err != nil {
		return BillStatusPending
	}
	if due.Before(DateOnly(today)) {
		return BillStatusOverdue
	}
	return BillStatusPending
}

// DueOn reports whether the bill falls due exactly on the given calendar day.
func (b *Bill) DueOn(day time.Time) bool {
	return b.DueDate == day.Format(DateLayout)
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
