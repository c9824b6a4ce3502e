// Package seed provides the compiled-in initial dataset used on first
// start and whenever the persisted snapshot is missing or corrupt.
package seed

import (
	"time"

	"github.com/taskflowhq/taskflow/internal/domain"
)

const projectID = "p-initial-project"

// State builds the initial dataset relative to now.
func State(now time.Time) domain.AppState {
	tomorrow := now.AddDate(0, 0, 1)

	return domain.AppState{
		Projects: []domain.Project{
			{
				ID:          projectID,
				Name:        "Website Redesign",
				Description: "The main project for Q4 goals and new feature rollouts.",
				Status:      domain.ProjectActive,
				Tasks:       []string{"t-1", "t-2", "t-3"},
				StartDate:   domain.NewDate(now),
				EndDate:     domain.NewDate(now.AddDate(0, 0, 30)),
			},
		},
		Tasks: []domain.Task{
			{
				ID:          "t-1",
				ProjectID:   projectID,
				Title:       "Setup Kanban Board",
				Description: "Implement the drag-and-drop board columns.",
				Status:      domain.TaskDone,
				Priority:    domain.PriorityHigh,
				Type:        domain.TypeNewFeature,
				DueDate:     domain.NewDate(at(now, 12)),
				StartDate:   domain.NewDate(at(now, 9)),
				CreatedAt:   domain.NewDate(now),
			},
			{
				ID:          "t-2",
				ProjectID:   projectID,
				Title:       "Design Dashboard Charts",
				Description: "Sketch out the chart design for project status.",
				Status:      domain.TaskInProgress,
				Priority:    domain.PriorityMedium,
				Type:        domain.TypeResearch,
				DueDate:     domain.NewDate(at(tomorrow, 17)),
				StartDate:   domain.NewDate(at(tomorrow, 9)),
				CreatedAt:   domain.NewDate(now),
			},
			{
				ID:          "t-3",
				ProjectID:   projectID,
				Title:       "Implement JSON Import/Export",
				Description: "Develop the I/O feature for data backups.",
				Status:      domain.TaskTodo,
				Priority:    domain.PriorityHigh,
				Type:        domain.TypeNewFeature,
				DueDate:     domain.NewDate(tomorrow.AddDate(0, 0, 2)),
				StartDate:   domain.NewDate(tomorrow.AddDate(0, 0, 1)),
				CreatedAt:   domain.NewDate(now),
			},
		},
		Invoices: []domain.Invoice{},
		Expenses: []domain.Expense{},
		Tickets:  []domain.Ticket{},
		Clients:  []domain.Client{},
		Filters:  domain.DefaultFilter(),
	}
}

func at(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
