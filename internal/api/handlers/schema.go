package handlers

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// CreateBillRequest is the payload for manual bill entry.
type CreateBillRequest struct {
	Beneficiary        string  `json:"beneficiary" validate:"required"`
	Amount             float64 `json:"amount" validate:"gte=0"`
	DueDate            string  `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Category           string  `json:"category"`
	CompanyID          string  `json:"companyId" validate:"required"`
	Type               string  `json:"type" validate:"omitempty,oneof=SINGLE PARCEL RECURRING"`
	InstallmentsCount  *int32  `json:"installmentsCount" validate:"omitempty,gte=1"`
	CurrentInstallment *int32  `json:"currentInstallment" validate:"omitempty,gte=1"`
}

// UpdateUnitsRequest replaces a user's accessible companies.
type UpdateUnitsRequest struct {
	AccessibleUnits []string `json:"accessibleUnits" validate:"required"`
}

// SetCurrentUserRequest selects the active local user.
type SetCurrentUserRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// AssistantRequest is a financial query for the assistant.
type AssistantRequest struct {
	Query string `json:"query" validate:"required,min=2"`
}
