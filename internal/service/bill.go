package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/logger"
	"contaspro-backend/internal/store"
)

type billService struct {
	store store.Store
	users UserService
	now   func() time.Time
}

func NewBillService(s store.Store, users UserService) BillService {
	return &billService{
		store: s,
		users: users,
		now:   time.Now,
	}
}

func (s *billService) AddBill(ctx context.Context, input AddBillInput) (*domain.Bill, error) {
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be non-negative", ErrInvalidBill)
	}

	beneficiary := input.Beneficiary
	if beneficiary == "" {
		beneficiary = "Unknown"
	}

	dueDate := input.DueDate
	if dueDate == "" {
		dueDate = s.now().Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, dueDate); err != nil {
		return nil, fmt.Errorf("%w: due date must be YYYY-MM-DD", ErrInvalidBill)
	}

	companyID := input.CompanyID
	if companyID == "" {
		companyID = domain.Companies[0].ID
	} else if !domain.KnownCompany(companyID) {
		return nil, ErrUnknownCompany
	}

	billType := input.Type
	if billType == "" {
		billType = domain.BillTypeSingle
	}

	bill := domain.Bill{
		ID:                 uuid.New().String(),
		Beneficiary:        beneficiary,
		Amount:             input.Amount,
		DueDate:            dueDate,
		Category:           domain.NormalizeCategory(input.Category),
		Status:             domain.BillStatusPending,
		CompanyID:          companyID,
		Type:               billType,
		CreatedAt:          s.now().Format(time.RFC3339),
		InstallmentsCount:  input.InstallmentsCount,
		CurrentInstallment: input.CurrentInstallment,
	}

	// Newest first by convention
	bills := append([]domain.Bill{bill}, s.store.Bills()...)
	if err := s.store.SetBills(bills); err != nil {
		return nil, fmt.Errorf("failed to persist bill: %w", err)
	}

	logger.Info("Bill added", "bill_id", bill.ID, "beneficiary", bill.Beneficiary,
		"amount", bill.Amount, "due_date", bill.DueDate)
	return &bill, nil
}

func (s *billService) MarkPaid(ctx context.Context, billID string) (*domain.Bill, error) {
	bills := s.store.Bills()
	for i := range bills {
		if bills[i].ID != billID {
			continue
		}
		if bills[i].Status == domain.BillStatusPaid {
			// Already terminal, nothing to do
			b := bills[i]
			return &b, nil
		}
		bills[i].Status = domain.BillStatusPaid
		if err := s.store.SetBills(bills); err != nil {
			return nil, fmt.Errorf("failed to persist bill status: %w", err)
		}
		b := bills[i]
		logger.Info("Bill marked as paid", "bill_id", billID)
		return &b, nil
	}
	return nil, ErrBillNotFound
}

func (s *billService) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	visible := []domain.Bill{}
	for _, b := range s.store.Bills() {
		if !domain.KnownCompany(b.CompanyID) || !user.CanAccess(b.CompanyID) {
			continue
		}
		b.Status = b.DeriveDisplayStatus(today)
		visible = append(visible, b)
	}
	return visible, nil
}

func (s *billService) Summary(ctx context.Context, userID string) (*BillSummary, error) {
	bills, err := s.ListBills(ctx, userID)
	if err != nil {
		return nil, err
	}

	var sum BillSummary
	for _, b := range bills {
		switch b.Status {
		case domain.BillStatusPending:
			sum.PendingCount++
			sum.PendingTotal += b.Amount
		case domain.BillStatusOverdue:
			sum.OverdueCount++
			sum.OverdueTotal += b.Amount
		case domain.BillStatusPaid:
			sum.PaidCount++
			sum.PaidTotal += b.Amount
		}
	}
	return &sum, nil
}

func (s *billService) WipeBills(ctx context.Context) error {
	if err := s.store.SetBills([]domain.Bill{}); err != nil {
		return fmt.Errorf("failed to wipe bills: %w", err)
	}
	logger.Warn("Bill collection wiped")
	return nil
}
