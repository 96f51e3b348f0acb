package service

import (
	"context"
	"fmt"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/logger"
)

type intakeService struct {
	extractor Extractor
	bills     BillService
}

func NewIntakeService(extractor Extractor, bills BillService) IntakeService {
	return &intakeService{extractor: extractor, bills: bills}
}

func (s *intakeService) ProcessDocument(ctx context.Context, document []byte, mimeType, companyID string) (*domain.Bill, error) {
	if len(document) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidBill)
	}

	fields, err := s.extractor.ExtractBillFields(ctx, document, mimeType)
	if err != nil {
		// Retryable for the caller; the store is untouched
		return nil, fmt.Errorf("document extraction failed: %w", err)
	}

	logger.Debug("Extracted bill fields", "beneficiary", fields.Beneficiary,
		"amount", fields.Amount, "due_date", fields.DueDate, "category", fields.Category)

	return s.bills.AddBill(ctx, AddBillInput{
		Beneficiary: fields.Beneficiary,
		Amount:      fields.Amount,
		DueDate:     fields.DueDate,
		Category:    fields.Category,
		CompanyID:   companyID,
		Type:        domain.BillTypeSingle,
	})
}
