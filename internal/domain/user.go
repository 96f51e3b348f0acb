package domain

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Role            UserRole `json:"role"`
	Email           string   `json:"email"`
	Avatar          string   `json:"avatar"`
	AccessibleUnits []string `json:"accessibleUnits"` // IDs of Companies
}

// CanAccess reports whether the user may view bills of the given company.
func (u *User) CanAccess(companyID string) bool {
	for _, id := range u.AccessibleUnits {
		if id == companyID {
			return true
		}
	}
	return false
}

// Company is a visibility/billing unit. Static reference data, never
// mutated by the core.
type Company struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
