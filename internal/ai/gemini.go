// Package ai implements the document-extraction and financial-query
// collaborators on top of the Gemini API.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/logger"
)

const extractionPrompt = "Extract the data from this invoice or payment slip. " +
	"Identify the beneficiary, the total amount, the due date and a suggested category."

// GeminiClient calls the Gemini API for both collaborator operations.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient initializes the Gemini client with an API key.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// ExtractBillFields sends the document to Gemini with a JSON response
// schema and decodes the structured fields.
func (g *GeminiClient) ExtractBillFields(ctx context.Context, document []byte, mimeType string) (*domain.BillFields, error) {
	logger.CollaboratorCall("gemini", "ExtractBillFields", "mime_type", mimeType, "size", len(document))

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: document}},
			{Text: extractionPrompt},
		},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"beneficiary": {Type: genai.TypeString, Description: "Name of the company or person receiving the payment."},
				"amount":      {Type: genai.TypeNumber, Description: "The numeric amount of the invoice."},
				"dueDate":     {Type: genai.TypeString, Description: "The due date in YYYY-MM-DD format."},
				"category":    {Type: genai.TypeString, Description: "A suggested category such as Energy, Water, Rent, etc."},
			},
			Required: []string{"beneficiary", "amount", "dueDate", "category"},
		},
	})
	if err != nil {
		logger.CollaboratorResult("gemini", "ExtractBillFields", err)
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		err := fmt.Errorf("empty extraction response")
		logger.CollaboratorResult("gemini", "ExtractBillFields", err)
		return nil, err
	}

	var fields domain.BillFields
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		logger.CollaboratorResult("gemini", "ExtractBillFields", err)
		return nil, fmt.Errorf("unreadable extraction response: %w", err)
	}

	logger.CollaboratorResult("gemini", "ExtractBillFields", nil)
	return &fields, nil
}

// AnswerFinancialQuery answers a natural-language question about the
// given bills. Best effort, plain text.
func (g *GeminiClient) AnswerFinancialQuery(ctx context.Context, query string, bills []domain.Bill) (string, error) {
	logger.CollaboratorCall("gemini", "AnswerFinancialQuery", "bills", len(bills))

	billsJSON, err := json.Marshal(bills)
	if err != nil {
		return "", fmt.Errorf("failed to encode bills: %w", err)
	}

	prompt := fmt.Sprintf(
		"You are a financial assistant for a bill-management app. "+
			"Answer the user's question using only the bill data below. "+
			"Be concise and state amounts and dates explicitly.\n\nBills:\n%s\n\nQuestion: %s",
		billsJSON, query,
	)

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		logger.CollaboratorResult("gemini", "AnswerFinancialQuery", err)
		return "", fmt.Errorf("assistant request failed: %w", err)
	}

	answer := resp.Text()
	if answer == "" {
		err := fmt.Errorf("empty assistant response")
		logger.CollaboratorResult("gemini", "AnswerFinancialQuery", err)
		return "", err
	}

	logger.CollaboratorResult("gemini", "AnswerFinancialQuery", nil)
	return answer, nil
}
