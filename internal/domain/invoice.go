package domain

import "time"

// PaymentStatus represents how far along an invoice is toward settlement
type PaymentStatus string

const (
	PaymentOverdue   PaymentStatus = "Overdue"
	PaymentNotPaid   PaymentStatus = "Not Paid"
	PaymentPartial   PaymentStatus = "Partial"
	PaymentFullyPaid PaymentStatus = "Fully Paid"
)

// Invoice is a bill issued against a project. Status is a pure function
// of the paid amount and the due date; it is recomputed on every payment
// update and never set independently.
type Invoice struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"projectId"`
	Title       string        `json:"title"`
	TotalAmount float64       `json:"totalAmount"`
	AmountPaid  float64       `json:"amountPaid"`
	DueDate     Date          `json:"dueDate"`
	Status      PaymentStatus `json:"status"`
	Notes       string        `json:"notes"`
}

// PaymentStatusFor computes the payment status from amounts and due date.
func PaymentStatusFor(amountPaid, totalAmount float64, dueDate Date, now time.Time) PaymentStatus {
	switch {
	case amountPaid >= totalAmount:
		return PaymentFullyPaid
	case amountPaid > 0:
		return PaymentPartial
	case dueDate.Before(now):
		return PaymentOverdue
	default:
		return PaymentNotPaid
	}
}
