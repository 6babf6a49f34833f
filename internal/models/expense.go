package models

// Expense is a kitchen expense entry, the fourth collection of the document.
type Expense struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
