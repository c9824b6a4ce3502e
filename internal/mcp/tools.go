package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taskflowhq/taskflow/internal/derive"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/storage"
	"github.com/taskflowhq/taskflow/internal/store"
)

// handler adapts the store's contract surface to MCP tool calls.
type handler struct {
	store *store.Store
}

func registerTools(server *sdkmcp.Server, st *store.Store) {
	h := &handler{store: st}

	// Orientation and read surface
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_overview",
		Description: "Get a global dashboard overview: project summaries, overdue tasks, invoice and ticket totals",
	}, h.getOverview)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects",
	}, h.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get one project with its ordered tasks, kanban board and billing aggregates",
	}, h.getProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks, optionally scoped to one project (ordered by the project's task list)",
	}, h.listTasks)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_overdue_tasks",
		Description: "List tasks whose due date has passed and that are not done",
	}, h.listOverdueTasks)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_invoices",
		Description: "List invoices, optionally scoped to one project",
	}, h.listInvoices)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_expenses",
		Description: "List expenses, optionally scoped to one project",
	}, h.listExpenses)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tickets",
		Description: "List tickets, optionally scoped to one project",
	}, h.listTickets)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_clients",
		Description: "List clients",
	}, h.listClients)

	// Write surface
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_project",
		Description: "Create a project; the id is generated and the task list starts empty",
	}, h.addProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_task",
		Description: "Create a task and link it to its owning project's task list",
	}, h.addTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_invoice",
		Description: "Create an invoice; the initial payment status is derived from amounts and due date",
	}, h.addInvoice)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_expense",
		Description: "Record an expense against a project",
	}, h.addExpense)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_ticket",
		Description: "Open a support ticket against a project",
	}, h.addTicket)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_client",
		Description: "Create a client",
	}, h.addClient)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task_status",
		Description: "Move a task to a new status; unknown ids are reported, not failed",
	}, h.updateTaskStatus)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_invoice_payment",
		Description: "Record a payment against an invoice; status is recomputed, notes replaced only when supplied",
	}, h.updateInvoicePayment)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_ticket_status",
		Description: "Move a ticket to a new status; unknown ids are reported, not failed",
	}, h.updateTicketStatus)

	// Filter and global surface
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_filter",
		Description: "Shallow-merge a partial update into the transient filter state",
	}, h.setFilter)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reset_filter",
		Description: "Restore the default unscoped filter",
	}, h.resetFilter)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_state",
		Description: "Replace the entire store contents with an exported state document",
	}, h.importState)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_state",
		Description: "Export the entire store contents as a JSON document suitable for import_state",
	}, h.exportState)
}

type emptyParams struct{}

type projectScopeParams struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"project id to scope by (omit for all projects)"`
}

func (h *handler) getOverview(ctx context.Context, req *sdkmcp.CallToolRequest, params emptyParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	now := time.Now()
	return nil, OverviewResponse{
		Projects:     derive.ProjectSummaries(state, now),
		OverdueTasks: len(derive.OverdueTasks(state, now)),
		Invoices:     derive.InvoiceSummary(state, ""),
		Tickets:      derive.TicketCounts(state, ""),
		Filters:      state.Filters,
	}, nil
}

func (h *handler) listProjects(ctx context.Context, req *sdkmcp.CallToolRequest, params emptyParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	return nil, map[string]any{"projects": state.Projects}, nil
}

type getProjectParams struct {
	ID string `json:"id" jsonschema:"project id"`
}

func (h *handler) getProject(ctx context.Context, req *sdkmcp.CallToolRequest, params getProjectParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	for _, proj := range state.Projects {
		if proj.ID != params.ID {
			continue
		}
		tasks := derive.ProjectTasks(state, proj.ID)
		return nil, ProjectViewResponse{
			Project:  proj,
			Tasks:    tasks,
			Board:    derive.TaskBuckets(tasks),
			Invoices: derive.InvoiceSummary(state, proj.ID),
			Expenses: derive.ExpensesByCategory(state, proj.ID),
			Tickets:  derive.TicketCounts(state, proj.ID),
		}, nil
	}
	return nil, nil, projectNotFound(params.ID)
}

func (h *handler) listTasks(ctx context.Context, req *sdkmcp.CallToolRequest, params projectScopeParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	if params.ProjectID != "" {
		return nil, map[string]any{"tasks": derive.ProjectTasks(state, params.ProjectID)}, nil
	}
	return nil, map[string]any{"tasks": state.Tasks}, nil
}

func (h *handler) listOverdueTasks(ctx context.Context, req *sdkmcp.CallToolRequest, params emptyParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	return nil, map[string]any{"tasks": derive.OverdueTasks(state, time.Now())}, nil
}

func (h *handler) listInvoices(ctx context.Context, req *sdkmcp.CallToolRequest, params projectScopeParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	invoices := state.Invoices
	if params.ProjectID != "" {
		invoices = nil
		for _, inv := range state.Invoices {
			if inv.ProjectID == params.ProjectID {
				invoices = append(invoices, inv)
			}
		}
	}
	return nil, map[string]any{
		"invoices": invoices,
		"totals":   derive.InvoiceSummary(state, params.ProjectID),
	}, nil
}

func (h *handler) listExpenses(ctx context.Context, req *sdkmcp.CallToolRequest, params projectScopeParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	expenses := state.Expenses
	if params.ProjectID != "" {
		expenses = nil
		for _, exp := range state.Expenses {
			if exp.ProjectID == params.ProjectID {
				expenses = append(expenses, exp)
			}
		}
	}
	return nil, map[string]any{
		"expenses":    expenses,
		"by_category": derive.ExpensesByCategory(state, params.ProjectID),
	}, nil
}

func (h *handler) listTickets(ctx context.Context, req *sdkmcp.CallToolRequest, params projectScopeParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	tickets := state.Tickets
	if params.ProjectID != "" {
		tickets = nil
		for _, ticket := range state.Tickets {
			if ticket.ProjectID == params.ProjectID {
				tickets = append(tickets, ticket)
			}
		}
	}
	return nil, map[string]any{
		"tickets": tickets,
		"counts":  derive.TicketCounts(state, params.ProjectID),
	}, nil
}

func (h *handler) listClients(ctx context.Context, req *sdkmcp.CallToolRequest, params emptyParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	return nil, map[string]any{"clients": state.Clients}, nil
}

type addProjectParams struct {
	ClientID    string `json:"client_id,omitempty" jsonschema:"owning client id"`
	Name        string `json:"name" jsonschema:"project display name"`
	Description string `json:"description,omitempty" jsonschema:"project description"`
	Status      string `json:"status,omitempty" jsonschema:"Active, Archived or Complete (default Active)"`
	StartDate   string `json:"start_date,omitempty" jsonschema:"start date, RFC 3339 or YYYY-MM-DD"`
	EndDate     string `json:"end_date,omitempty" jsonschema:"end date, RFC 3339 or YYYY-MM-DD"`
}

func (h *handler) addProject(ctx context.Context, req *sdkmcp.CallToolRequest, params addProjectParams) (*sdkmcp.CallToolResult, any, error) {
	start, err := parseDateParam("start_date", params.StartDate)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseDateParam("end_date", params.EndDate)
	if err != nil {
		return nil, nil, err
	}
	status := domain.ProjectStatus(params.Status)
	if params.Status == "" {
		status = domain.ProjectActive
	}
	proj := h.store.AddProject(store.AddProjectRequest{
		ClientID:    params.ClientID,
		Name:        params.Name,
		Description: params.Description,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	})
	return nil, proj, nil
}

type addTaskParams struct {
	ProjectID   string `json:"project_id" jsonschema:"owning project id"`
	Title       string `json:"title" jsonschema:"task title"`
	Description string `json:"description,omitempty" jsonschema:"task description"`
	Status      string `json:"status,omitempty" jsonschema:"Todo, In Progress, Review or Done (default Todo)"`
	Priority    string `json:"priority,omitempty" jsonschema:"Low, Medium or High (default Medium)"`
	Type        string `json:"type,omitempty" jsonschema:"Bug, New Feature, Research, Documentation or Maintenance"`
	StartDate   string `json:"start_date,omitempty" jsonschema:"start date, RFC 3339 or YYYY-MM-DD"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"due date, RFC 3339 or YYYY-MM-DD"`
}

func (h *handler) addTask(ctx context.Context, req *sdkmcp.CallToolRequest, params addTaskParams) (*sdkmcp.CallToolResult, any, error) {
	start, err := parseDateParam("start_date", params.StartDate)
	if err != nil {
		return nil, nil, err
	}
	due, err := parseDateParam("due_date", params.DueDate)
	if err != nil {
		return nil, nil, err
	}
	status := domain.TaskStatus(params.Status)
	if params.Status == "" {
		status = domain.TaskTodo
	}
	priority := domain.TaskPriority(params.Priority)
	if params.Priority == "" {
		priority = domain.PriorityMedium
	}
	taskType := domain.TaskType(params.Type)
	if params.Type == "" {
		taskType = domain.TypeNewFeature
	}
	task := h.store.AddTask(store.AddTaskRequest{
		ProjectID:   params.ProjectID,
		Title:       params.Title,
		Description: params.Description,
		Status:      status,
		Priority:    priority,
		Type:        taskType,
		StartDate:   start,
		DueDate:     due,
	})
	return nil, task, nil
}

type addInvoiceParams struct {
	ProjectID   string  `json:"project_id" jsonschema:"owning project id"`
	Title       string  `json:"title" jsonschema:"invoice title"`
	TotalAmount float64 `json:"total_amount" jsonschema:"total billed amount"`
	AmountPaid  float64 `json:"amount_paid,omitempty" jsonschema:"amount already paid"`
	DueDate     string  `json:"due_date" jsonschema:"due date, RFC 3339 or YYYY-MM-DD"`
	Notes       string  `json:"notes,omitempty" jsonschema:"free-text notes"`
}

func (h *handler) addInvoice(ctx context.Context, req *sdkmcp.CallToolRequest, params addInvoiceParams) (*sdkmcp.CallToolResult, any, error) {
	due, err := parseDateParam("due_date", params.DueDate)
	if err != nil {
		return nil, nil, err
	}
	inv := h.store.AddInvoice(store.AddInvoiceRequest{
		ProjectID:   params.ProjectID,
		Title:       params.Title,
		TotalAmount: params.TotalAmount,
		AmountPaid:  params.AmountPaid,
		DueDate:     due,
		Notes:       params.Notes,
	})
	return nil, inv, nil
}

type addExpenseParams struct {
	ProjectID string  `json:"project_id" jsonschema:"owning project id"`
	Title     string  `json:"title" jsonschema:"expense title"`
	Amount    float64 `json:"amount" jsonschema:"expense amount"`
	Date      string  `json:"date,omitempty" jsonschema:"expense date, RFC 3339 or YYYY-MM-DD"`
	Category  string  `json:"category,omitempty" jsonschema:"free-text category, e.g. Hosting"`
}

func (h *handler) addExpense(ctx context.Context, req *sdkmcp.CallToolRequest, params addExpenseParams) (*sdkmcp.CallToolResult, any, error) {
	date, err := parseDateParam("date", params.Date)
	if err != nil {
		return nil, nil, err
	}
	exp := h.store.AddExpense(store.AddExpenseRequest{
		ProjectID: params.ProjectID,
		Title:     params.Title,
		Amount:    params.Amount,
		Date:      date,
		Category:  params.Category,
	})
	return nil, exp, nil
}

type addTicketParams struct {
	ProjectID string `json:"project_id" jsonschema:"owning project id"`
	Title     string `json:"title" jsonschema:"ticket title"`
	Status    string `json:"status,omitempty" jsonschema:"New, In Progress, On Hold or Resolved (default New)"`
	Priority  string `json:"priority,omitempty" jsonschema:"Low, Medium or High (default Medium)"`
}

func (h *handler) addTicket(ctx context.Context, req *sdkmcp.CallToolRequest, params addTicketParams) (*sdkmcp.CallToolResult, any, error) {
	status := domain.TicketStatus(params.Status)
	if params.Status == "" {
		status = domain.TicketNew
	}
	priority := domain.TaskPriority(params.Priority)
	if params.Priority == "" {
		priority = domain.PriorityMedium
	}
	ticket := h.store.AddTicket(store.AddTicketRequest{
		ProjectID: params.ProjectID,
		Title:     params.Title,
		Status:    status,
		Priority:  priority,
	})
	return nil, ticket, nil
}

type addClientParams struct {
	Name     string `json:"name" jsonschema:"client name"`
	Email    string `json:"email,omitempty" jsonschema:"contact email"`
	Phone    string `json:"phone,omitempty" jsonschema:"contact phone"`
	Address  string `json:"address,omitempty" jsonschema:"postal address"`
	Telegram string `json:"telegram,omitempty" jsonschema:"messaging handle"`
}

func (h *handler) addClient(ctx context.Context, req *sdkmcp.CallToolRequest, params addClientParams) (*sdkmcp.CallToolResult, any, error) {
	client := h.store.AddClient(store.AddClientRequest{
		Name:     params.Name,
		Email:    params.Email,
		Phone:    params.Phone,
		Address:  params.Address,
		Telegram: params.Telegram,
	})
	return nil, client, nil
}

type updateTaskStatusParams struct {
	TaskID string `json:"task_id" jsonschema:"task id"`
	Status string `json:"status" jsonschema:"Todo, In Progress, Review or Done"`
}

func (h *handler) updateTaskStatus(ctx context.Context, req *sdkmcp.CallToolRequest, params updateTaskStatusParams) (*sdkmcp.CallToolResult, any, error) {
	task, ok := h.store.UpdateTaskStatus(params.TaskID, domain.TaskStatus(params.Status))
	resp := UpdateTaskResponse{Updated: ok}
	if ok {
		resp.Task = &task
	}
	return nil, resp, nil
}

type updateInvoicePaymentParams struct {
	InvoiceID string  `json:"invoice_id" jsonschema:"invoice id"`
	Amount    float64 `json:"amount" jsonschema:"payment amount to add to the paid total"`
	Notes     *string `json:"notes,omitempty" jsonschema:"replacement notes (omit to keep prior notes)"`
}

func (h *handler) updateInvoicePayment(ctx context.Context, req *sdkmcp.CallToolRequest, params updateInvoicePaymentParams) (*sdkmcp.CallToolResult, any, error) {
	inv, ok := h.store.UpdateInvoicePayment(params.InvoiceID, params.Amount, params.Notes)
	resp := UpdateInvoiceResponse{Updated: ok}
	if ok {
		resp.Invoice = &inv
	}
	return nil, resp, nil
}

type updateTicketStatusParams struct {
	TicketID string `json:"ticket_id" jsonschema:"ticket id"`
	Status   string `json:"status" jsonschema:"New, In Progress, On Hold or Resolved"`
}

func (h *handler) updateTicketStatus(ctx context.Context, req *sdkmcp.CallToolRequest, params updateTicketStatusParams) (*sdkmcp.CallToolResult, any, error) {
	ticket, ok := h.store.UpdateTicketStatus(params.TicketID, domain.TicketStatus(params.Status))
	resp := UpdateTicketResponse{Updated: ok}
	if ok {
		resp.Ticket = &ticket
	}
	return nil, resp, nil
}

type setFilterParams struct {
	ProjectID *string `json:"project_id,omitempty" jsonschema:"project scope (empty string clears the scope)"`
	DateRange *string `json:"date_range,omitempty" jsonschema:"7days, 30days, 90days or custom"`
	StartDate *string `json:"start_date,omitempty" jsonschema:"custom range start, RFC 3339 or YYYY-MM-DD"`
	EndDate   *string `json:"end_date,omitempty" jsonschema:"custom range end, RFC 3339 or YYYY-MM-DD"`
}

func (h *handler) setFilter(ctx context.Context, req *sdkmcp.CallToolRequest, params setFilterParams) (*sdkmcp.CallToolResult, any, error) {
	patch := domain.FilterPatch{ProjectID: params.ProjectID}
	if params.DateRange != nil {
		dr := domain.FilterDateRange(*params.DateRange)
		patch.DateRange = &dr
	}
	if params.StartDate != nil {
		start, err := parseDateParam("start_date", *params.StartDate)
		if err != nil {
			return nil, nil, err
		}
		patch.StartDate = &start
	}
	if params.EndDate != nil {
		end, err := parseDateParam("end_date", *params.EndDate)
		if err != nil {
			return nil, nil, err
		}
		patch.EndDate = &end
	}
	return nil, h.store.SetFilter(patch), nil
}

func (h *handler) resetFilter(ctx context.Context, req *sdkmcp.CallToolRequest, params emptyParams) (*sdkmcp.CallToolResult, any, error) {
	return nil, h.store.ResetFilter(), nil
}

type importStateParams struct {
	StateJSON string `json:"state_json" jsonschema:"a state document produced by export_state"`
}

func (h *handler) importState(ctx context.Context, req *sdkmcp.CallToolRequest, params importStateParams) (*sdkmcp.CallToolResult, any, error) {
	var doc struct {
		State *domain.AppState `json:"state"`
	}
	if err := json.Unmarshal([]byte(params.StateJSON), &doc); err != nil {
		return nil, nil, invalidImport(err)
	}
	state := doc.State
	if state == nil {
		// Tolerate a bare state object without the envelope.
		state = &domain.AppState{}
		if err := json.Unmarshal([]byte(params.StateJSON), state); err != nil {
			return nil, nil, invalidImport(err)
		}
	}
	h.store.ImportState(*state)
	return nil, map[string]string{"status": "imported"}, nil
}

func (h *handler) exportState(ctx context.Context, req *sdkmcp.CallToolRequest, params emptyParams) (*sdkmcp.CallToolResult, any, error) {
	state := h.store.Snapshot()
	raw, err := json.Marshal(map[string]any{
		"state":   state,
		"version": storage.CurrentVersion,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("encode state: %w", err)
	}
	return nil, map[string]string{"state_json": string(raw)}, nil
}

func parseDateParam(field, value string) (domain.Date, error) {
	if value == "" {
		return domain.Date{}, nil
	}
	date, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, invalidDate(field, err)
	}
	return date, nil
}
