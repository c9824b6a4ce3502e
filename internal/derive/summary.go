package derive

import (
	"time"

	"github.com/taskflowhq/taskflow/internal/domain"
)

// ProjectSummary is a lightweight representation for listing
type ProjectSummary struct {
	ID           string               `json:"id"`
	ClientID     string               `json:"clientId,omitempty"`
	Name         string               `json:"name"`
	Status       domain.ProjectStatus `json:"status"`
	TaskCount    int                  `json:"taskCount"`
	DoneTasks    int                  `json:"doneTasks"`
	OverdueTasks int                  `json:"overdueTasks"`
	OpenTickets  int                  `json:"openTickets"`
}

// ProjectSummaries computes one summary row per project.
func ProjectSummaries(state domain.AppState, now time.Time) []ProjectSummary {
	summaries := make([]ProjectSummary, 0, len(state.Projects))
	for _, proj := range state.Projects {
		summary := ProjectSummary{
			ID:       proj.ID,
			ClientID: proj.ClientID,
			Name:     proj.Name,
			Status:   proj.Status,
		}
		for _, task := range state.Tasks {
			if task.ProjectID != proj.ID {
				continue
			}
			summary.TaskCount++
			if task.Status == domain.TaskDone {
				summary.DoneTasks++
			} else if task.DueDate.Before(now) {
				summary.OverdueTasks++
			}
		}
		for _, ticket := range state.Tickets {
			if ticket.ProjectID == proj.ID && ticket.Status != domain.TicketResolved {
				summary.OpenTickets++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// InvoiceTotals aggregates billing figures over a set of invoices.
type InvoiceTotals struct {
	Billed       float64 `json:"billed"`
	Paid         float64 `json:"paid"`
	Outstanding  float64 `json:"outstanding"`
	OverdueCount int     `json:"overdueCount"`
}

// InvoiceSummary totals invoices, optionally scoped to one project
// (empty projectID means all).
func InvoiceSummary(state domain.AppState, projectID string) InvoiceTotals {
	var totals InvoiceTotals
	for _, inv := range state.Invoices {
		if projectID != "" && inv.ProjectID != projectID {
			continue
		}
		totals.Billed += inv.TotalAmount
		totals.Paid += inv.AmountPaid
		if inv.Status == domain.PaymentOverdue {
			totals.OverdueCount++
		}
	}
	totals.Outstanding = totals.Billed - totals.Paid
	return totals
}
