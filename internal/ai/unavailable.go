package ai

import (
	"context"
	"fmt"

	"contaspro-backend/internal/domain"
)

// Unavailable stands in for the Gemini collaborators when no API key is
// configured. Every call fails with a retryable error so the rest of the
// system keeps working.
type Unavailable struct{}

func (Unavailable) ExtractBillFields(context.Context, []byte, string) (*domain.BillFields, error) {
	return nil, fmt.Errorf("document extraction is not configured")
}

func (Unavailable) AnswerFinancialQuery(context.Context, string, []domain.Bill) (string, error) {
	return "", fmt.Errorf("assistant is not configured")
}
