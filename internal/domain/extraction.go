package domain

// BillFields is the structured result of document extraction.
type BillFields struct {
	Beneficiary string  `json:"beneficiary"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"` // Format: 'YYYY-MM-DD'
	Category    string  `json:"category"`
}
