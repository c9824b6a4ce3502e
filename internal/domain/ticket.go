package domain

// TicketStatus represents the triage state of a support ticket
type TicketStatus string

const (
	TicketNew        TicketStatus = "New"
	TicketInProgress TicketStatus = "In Progress"
	TicketOnHold     TicketStatus = "On Hold"
	TicketResolved   TicketStatus = "Resolved"
)

// Ticket is a support request raised against a project.
type Ticket struct {
	ID        string       `json:"id"`
	ProjectID string       `json:"projectId"`
	Title     string       `json:"title"`
	Status    TicketStatus `json:"status"`
	Priority  TaskPriority `json:"priority"`
	CreatedAt Date         `json:"createdAt"`
}
