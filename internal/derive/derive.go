// Package derive computes read-only views over a store snapshot: sums,
// counts and group-by buckets recomputed per call, never persisted.
package derive

import (
	"time"

	"github.com/taskflowhq/taskflow/internal/domain"
)

// ProjectTasks returns a project's tasks ordered by its task reference
// list. Dangling ids (tasks that no longer resolve) are skipped, as are
// tasks whose back-reference points elsewhere.
func ProjectTasks(state domain.AppState, projectID string) []domain.Task {
	var proj *domain.Project
	for i := range state.Projects {
		if state.Projects[i].ID == projectID {
			proj = &state.Projects[i]
			break
		}
	}
	if proj == nil {
		return nil
	}

	byID := make(map[string]domain.Task, len(state.Tasks))
	for _, task := range state.Tasks {
		byID[task.ID] = task
	}

	tasks := make([]domain.Task, 0, len(proj.Tasks))
	for _, id := range proj.Tasks {
		task, ok := byID[id]
		if !ok || task.ProjectID != projectID {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// TaskBuckets groups tasks into kanban columns by status.
func TaskBuckets(tasks []domain.Task) map[domain.TaskStatus][]domain.Task {
	buckets := make(map[domain.TaskStatus][]domain.Task)
	for _, task := range tasks {
		buckets[task.Status] = append(buckets[task.Status], task)
	}
	return buckets
}

// OverdueTasks returns tasks whose due date has passed and that are not
// done. A past due date marks a task overdue; it never changes status.
func OverdueTasks(state domain.AppState, now time.Time) []domain.Task {
	var overdue []domain.Task
	for _, task := range state.Tasks {
		if task.Status != domain.TaskDone && task.DueDate.Before(now) {
			overdue = append(overdue, task)
		}
	}
	return overdue
}

// FilteredTasks applies the snapshot's filter state to the task
// collection: project scope first, then the resolved date window against
// the task due date. Undated tasks pass the date filter; the window only
// narrows, it never drops records that carry no date to compare.
func FilteredTasks(state domain.AppState, now time.Time) []domain.Task {
	start, end, windowed := state.Filters.Window(now)
	var tasks []domain.Task
	for _, task := range state.Tasks {
		if state.Filters.ProjectID != "" && task.ProjectID != state.Filters.ProjectID {
			continue
		}
		if windowed && !task.DueDate.IsZero() && (task.DueDate.Before(start) || task.DueDate.After(end)) {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// FilteredExpenses applies the snapshot's filter state to the expense
// collection, scoping by project and expense date.
func FilteredExpenses(state domain.AppState, now time.Time) []domain.Expense {
	start, end, windowed := state.Filters.Window(now)
	var expenses []domain.Expense
	for _, exp := range state.Expenses {
		if state.Filters.ProjectID != "" && exp.ProjectID != state.Filters.ProjectID {
			continue
		}
		if windowed && !exp.Date.IsZero() && (exp.Date.Before(start) || exp.Date.After(end)) {
			continue
		}
		expenses = append(expenses, exp)
	}
	return expenses
}

// ExpensesByCategory sums expense amounts per category, optionally scoped
// to one project (empty projectID means all).
func ExpensesByCategory(state domain.AppState, projectID string) map[string]float64 {
	totals := make(map[string]float64)
	for _, exp := range state.Expenses {
		if projectID != "" && exp.ProjectID != projectID {
			continue
		}
		totals[exp.Category] += exp.Amount
	}
	return totals
}

// TicketCounts counts tickets per status, optionally scoped to one project.
func TicketCounts(state domain.AppState, projectID string) map[domain.TicketStatus]int {
	counts := make(map[domain.TicketStatus]int)
	for _, ticket := range state.Tickets {
		if projectID != "" && ticket.ProjectID != projectID {
			continue
		}
		counts[ticket.Status]++
	}
	return counts
}
