// Package store holds the record collections and is the only legal
// mutation path over them. Every action runs to completion under a
// single writer lock and produces a new snapshot; untouched collections
// carry over by reference, a touched collection is replaced wholesale.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow/internal/domain"
)

// Store is the single source of truth for the application state.
type Store struct {
	mu       sync.Mutex
	state    domain.AppState
	onChange func(domain.AppState)
	logger   *slog.Logger
	now      func() time.Time
	newID    func(prefix string) string
}

// New creates a store seeded with the given initial state.
func New(initial domain.AppState, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		state:  initial,
		logger: logger,
		now:    time.Now,
		newID: func(prefix string) string {
			return prefix + "-" + uuid.NewString()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers the change hook invoked with the new snapshot after
// every completed action. The wiring layer uses it to persist on change.
// The hook runs under the writer lock so notifications arrive in mutation
// order; it must not call back into the store.
func (s *Store) Subscribe(fn func(domain.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Snapshot returns the current state. Callers must not mutate the
// returned collections.
func (s *Store) Snapshot() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AddProjectRequest defines project creation inputs.
type AddProjectRequest struct {
	ClientID    string
	Name        string
	Description string
	Status      domain.ProjectStatus
	StartDate   domain.Date
	EndDate     domain.Date
}

// AddProject creates a project with a fresh id and an empty task list.
func (s *Store) AddProject(req AddProjectRequest) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj := domain.Project{
		ID:          s.newID("p"),
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Tasks:       []string{},
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	s.state.Projects = appendCopy(s.state.Projects, proj)

	s.notify()
	return proj
}

// AddTaskRequest defines task creation inputs.
type AddTaskRequest struct {
	ProjectID   string
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	Type        domain.TaskType
	StartDate   domain.Date
	DueDate     domain.Date
}

// AddTask creates a task and appends its id to the owning project's task
// list, keeping membership idempotent. When no project matches, the task
// is still added and the broken reference is only logged; project-scoped
// views skip it.
func (s *Store) AddTask(req AddTaskRequest) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:          s.newID("t"),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Type:        req.Type,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		CreatedAt:   domain.NewDate(s.now()),
	}
	s.state.Tasks = appendCopy(s.state.Tasks, task)

	linked := false
	for i, proj := range s.state.Projects {
		if proj.ID != task.ProjectID {
			continue
		}
		linked = true
		if !contains(proj.Tasks, task.ID) {
			projects := copySlice(s.state.Projects)
			proj.Tasks = appendCopy(proj.Tasks, task.ID)
			projects[i] = proj
			s.state.Projects = projects
		}
		break
	}
	if !linked {
		s.logger.Warn("task added without owning project", "task_id", task.ID, "project_id", task.ProjectID)
	}

	s.notify()
	return task
}

// UpdateTaskStatus replaces the status of the matching task. Unmatched
// ids leave the store unchanged and report false.
func (s *Store) UpdateTaskStatus(taskID string, status domain.TaskStatus) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, task := range s.state.Tasks {
		if task.ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Debug("task status update ignored, no match", "task_id", taskID)
		return domain.Task{}, false
	}
	tasks := copySlice(s.state.Tasks)
	tasks[idx].Status = status
	s.state.Tasks = tasks

	s.notify()
	return tasks[idx], true
}

// AddInvoiceRequest defines invoice creation inputs.
type AddInvoiceRequest struct {
	ProjectID   string
	Title       string
	TotalAmount float64
	AmountPaid  float64
	DueDate     domain.Date
	Notes       string
}

// AddInvoice creates an invoice, deriving the initial payment status from
// the amounts and due date.
func (s *Store) AddInvoice(req AddInvoiceRequest) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := domain.Invoice{
		ID:          s.newID("inv"),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		TotalAmount: req.TotalAmount,
		AmountPaid:  req.AmountPaid,
		DueDate:     req.DueDate,
		Status:      domain.PaymentStatusFor(req.AmountPaid, req.TotalAmount, req.DueDate, s.now()),
		Notes:       req.Notes,
	}
	s.state.Invoices = appendCopy(s.state.Invoices, inv)

	s.notify()
	return inv
}

// UpdateInvoicePayment records a payment against the matching invoice and
// recomputes its status. Notes are replaced only when a new value is
// supplied. Unmatched ids leave the store unchanged and report false.
func (s *Store) UpdateInvoicePayment(invoiceID string, amount float64, notes *string) (domain.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, inv := range s.state.Invoices {
		if inv.ID == invoiceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Debug("invoice payment ignored, no match", "invoice_id", invoiceID)
		return domain.Invoice{}, false
	}
	invoices := copySlice(s.state.Invoices)
	inv := invoices[idx]
	inv.AmountPaid += amount
	inv.Status = domain.PaymentStatusFor(inv.AmountPaid, inv.TotalAmount, inv.DueDate, s.now())
	if notes != nil {
		inv.Notes = *notes
	}
	invoices[idx] = inv
	s.state.Invoices = invoices

	s.notify()
	return inv, true
}

// AddExpenseRequest defines expense creation inputs.
type AddExpenseRequest struct {
	ProjectID string
	Title     string
	Amount    float64
	Date      domain.Date
	Category  string
}

// AddExpense creates an expense record.
func (s *Store) AddExpense(req AddExpenseRequest) domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp := domain.Expense{
		ID:        s.newID("e"),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Amount:    req.Amount,
		Date:      req.Date,
		Category:  req.Category,
	}
	s.state.Expenses = appendCopy(s.state.Expenses, exp)

	s.notify()
	return exp
}

// AddTicketRequest defines ticket creation inputs.
type AddTicketRequest struct {
	ProjectID string
	Title     string
	Status    domain.TicketStatus
	Priority  domain.TaskPriority
}

// AddTicket creates a ticket with a creation timestamp.
func (s *Store) AddTicket(req AddTicketRequest) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket := domain.Ticket{
		ID:        s.newID("tk"),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Status:    req.Status,
		Priority:  req.Priority,
		CreatedAt: domain.NewDate(s.now()),
	}
	s.state.Tickets = appendCopy(s.state.Tickets, ticket)

	s.notify()
	return ticket
}

// UpdateTicketStatus replaces the status of the matching ticket.
// Unmatched ids leave the store unchanged and report false.
func (s *Store) UpdateTicketStatus(ticketID string, status domain.TicketStatus) (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, ticket := range s.state.Tickets {
		if ticket.ID == ticketID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Debug("ticket status update ignored, no match", "ticket_id", ticketID)
		return domain.Ticket{}, false
	}
	tickets := copySlice(s.state.Tickets)
	tickets[idx].Status = status
	s.state.Tickets = tickets

	s.notify()
	return tickets[idx], true
}

// AddClientRequest defines client creation inputs.
type AddClientRequest struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Telegram string
}

// AddClient creates a client record.
func (s *Store) AddClient(req AddClientRequest) domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := domain.Client{
		ID:       s.newID("c"),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Telegram: req.Telegram,
	}
	s.state.Clients = appendCopy(s.state.Clients, client)

	s.notify()
	return client
}

// SetFilter shallow-merges the patch into the filter state.
func (s *Store) SetFilter(patch domain.FilterPatch) domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Filters = s.state.Filters.Merge(patch)

	s.notify()
	return s.state.Filters
}

// ResetFilter restores the default unscoped filter, the view-unmount reset.
func (s *Store) ResetFilter() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Filters = domain.DefaultFilter()

	s.notify()
	return s.state.Filters
}

// ImportState replaces the entire store contents with the supplied state.
// Callers are trusted to supply a structurally valid state.
func (s *Store) ImportState(state domain.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state

	s.notify()
}

// notify delivers the current snapshot to the change hook. It runs with
// the writer lock held: a later action cannot deliver its snapshot before
// an earlier one, so a persisting subscriber never stores stale state
// last.
func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.state)
	}
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func appendCopy[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
