package domain

// Expense is a cost booked against a project. Category is free text,
// e.g. "Hosting" or "Software Subscription".
type Expense struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Date      Date    `json:"date"`
	Category  string  `json:"category"`
}
