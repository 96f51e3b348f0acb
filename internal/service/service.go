package service

import (
	"context"
	"errors"

	"contaspro-backend/internal/domain"
)

var (
	ErrBillNotFound     = errors.New("bill not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnknownCompany   = errors.New("unknown company")
	ErrInvalidBill      = errors.New("invalid bill")
)

// Extractor is the document-extraction collaborator. It fails with an
// extraction error when the document is unreadable.
type Extractor interface {
	ExtractBillFields(ctx context.Context, document []byte, mimeType string) (*domain.BillFields, error)
}

// Assistant is the financial-query collaborator. Best-effort natural
// language answers over a list of bills.
type Assistant interface {
	AnswerFinancialQuery(ctx context.Context, query string, bills []domain.Bill) (string, error)
}

// AddBillInput carries the fields for manual bill entry or intake.
type AddBillInput struct {
	Beneficiary        string
	Amount             float64
	DueDate            string
	Category           string
	CompanyID          string
	Type               domain.BillType
	InstallmentsCount  *int32
	CurrentInstallment *int32
}

// BillSummary aggregates visible bills for the dashboard.
type BillSummary struct {
	PendingCount int     `json:"pendingCount"`
	PendingTotal float64 `json:"pendingTotal"`
	OverdueCount int     `json:"overdueCount"`
	OverdueTotal float64 `json:"overdueTotal"`
	PaidCount    int     `json:"paidCount"`
	PaidTotal    float64 `json:"paidTotal"`
}

type BillService interface {
	// AddBill creates a bill, newest first in the collection.
	AddBill(ctx context.Context, input AddBillInput) (*domain.Bill, error)
	// MarkPaid transitions a PENDING bill to PAID. PAID is terminal.
	MarkPaid(ctx context.Context, billID string) (*domain.Bill, error)
	// ListBills returns the bills visible to the user, newest first, with
	// the display status derived for the current date.
	ListBills(ctx context.Context, userID string) ([]domain.Bill, error)
	// Summary aggregates the user's visible bills by display status.
	Summary(ctx context.Context, userID string) (*BillSummary, error)
	// WipeBills clears the bill collection only. Users and notification
	// markers are untouched.
	WipeBills(ctx context.Context) error
}

type UserService interface {
	// EnsureSeeded populates the user collection from the initial roster
	// on first run and selects the first admin as current user.
	EnsureSeeded(ctx context.Context) error
	ListUsers(ctx context.Context) []domain.User
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetCurrentUser(ctx context.Context, id string) error
	// UpdateAccessibleUnits replaces a user's company visibility. The
	// actor must hold the ADMIN role.
	UpdateAccessibleUnits(ctx context.Context, actorID, targetID string, units []string) error
	Companies(ctx context.Context) []domain.Company
}

type IntakeService interface {
	// ProcessDocument extracts structured fields from an invoice document
	// and files the resulting bill.
	ProcessDocument(ctx context.Context, document []byte, mimeType, companyID string) (*domain.Bill, error)
}

type AssistantService interface {
	// Answer responds to a financial query over the user's visible bills.
	Answer(ctx context.Context, userID, query string) (string, error)
}
