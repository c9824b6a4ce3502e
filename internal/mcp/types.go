package mcp

import (
	"github.com/taskflowhq/taskflow/internal/derive"
	"github.com/taskflowhq/taskflow/internal/domain"
)

// OverviewResponse is the one-call orientation view over the whole store.
type OverviewResponse struct {
	Projects     []derive.ProjectSummary     `json:"projects"`
	OverdueTasks int                         `json:"overdue_tasks"`
	Invoices     derive.InvoiceTotals        `json:"invoices"`
	Tickets      map[domain.TicketStatus]int `json:"tickets"`
	Filters      domain.FilterState          `json:"filters"`
}

// ProjectViewResponse joins a project with its scoped collections.
type ProjectViewResponse struct {
	Project  domain.Project                      `json:"project"`
	Tasks    []domain.Task                       `json:"tasks"`
	Board    map[domain.TaskStatus][]domain.Task `json:"board"`
	Invoices derive.InvoiceTotals                `json:"invoices"`
	Expenses map[string]float64                  `json:"expenses_by_category"`
	Tickets  map[domain.TicketStatus]int         `json:"tickets"`
}

// UpdateTaskResponse reports a task mutation. Updated is false when the
// id matched nothing; per the store contract that is not a failure.
type UpdateTaskResponse struct {
	Updated bool         `json:"updated"`
	Task    *domain.Task `json:"task,omitempty"`
}

// UpdateInvoiceResponse reports an invoice payment.
type UpdateInvoiceResponse struct {
	Updated bool            `json:"updated"`
	Invoice *domain.Invoice `json:"invoice,omitempty"`
}

// UpdateTicketResponse reports a ticket mutation.
type UpdateTicketResponse struct {
	Updated bool           `json:"updated"`
	Ticket  *domain.Ticket `json:"ticket,omitempty"`
}
