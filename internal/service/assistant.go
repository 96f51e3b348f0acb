package service

import (
	"context"
	"fmt"
)

type assistantService struct {
	assistant Assistant
	bills     BillService
}

func NewAssistantService(assistant Assistant, bills BillService) AssistantService {
	return &assistantService{assistant: assistant, bills: bills}
}

func (s *assistantService) Answer(ctx context.Context, userID, query string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("%w: empty query", ErrInvalidBill)
	}

	// Scope the assistant to the bills the user may see
	bills, err := s.bills.ListBills(ctx, userID)
	if err != nil {
		return "", err
	}

	answer, err := s.assistant.AnswerFinancialQuery(ctx, query, bills)
	if err != nil {
		return "", fmt.Errorf("assistant query failed: %w", err)
	}
	return answer, nil
}
