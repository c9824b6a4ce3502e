package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `taskflow is a local-first project-management store: projects, tasks, invoices, expenses, tickets and clients over a single persisted snapshot.

Core concepts:
- The store holds six record collections plus a transient filter. All mutation goes through named tools; every change is persisted immediately.
- Tasks reference their owning project; the project keeps an ordered task-id list in sync. Broken references are tolerated and skipped by views.
- Invoice payment status is always derived from amounts and due date; it cannot be set directly.
- A past due date marks a task overdue but never changes its status.

Workflow:
1) Orient: call get_overview for project summaries, overdue counts and billing totals.
2) Browse: list_projects / get_project / list_tasks / list_invoices / list_tickets / list_clients / list_expenses.
3) Mutate: add_* to create records, update_task_status / update_invoice_payment / update_ticket_status to change them. Unknown ids report updated=false rather than failing.
4) Scope: set_filter narrows derived views to a project and date window; reset_filter restores the default.
5) Backups: export_state returns the full JSON document; import_state replaces everything with one.

Docs:
- taskflow://docs/index
- taskflow://docs/data-model
- taskflow://docs/workflows
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "taskflow://docs/index",
		Name:        "docs_index",
		Title:       "taskflow docs index",
		Description: "Entry point for agent-facing docs: what exists and what to read.",
		Content: `# taskflow: Docs Index

## Quick start

1. ` + "`get_overview`" + ` to orient (project summaries, overdue tasks, billing totals).
2. ` + "`get_project`" + ` for one project's board, tasks and aggregates.
3. Mutate via ` + "`add_*`" + ` and ` + "`update_*`" + ` tools; every change persists immediately.
4. ` + "`export_state`" + ` / ` + "`import_state`" + ` for JSON backups.

## Docs (read on demand)

- ` + "`taskflow://docs/data-model`" + ` — entities, references and invariants.
- ` + "`taskflow://docs/workflows`" + ` — common flows and filter scoping.

## Intentional limitations

- There are no delete tools; records are never removed, only restated.
- Unknown ids on update tools report ` + "`updated=false`" + ` instead of failing.
`,
	},
	{
		URI:         "taskflow://docs/data-model",
		Name:        "docs_data_model",
		Title:       "Data model and invariants",
		Description: "Entities, cross-references and the rules the store enforces.",
		Content: `# Data model and invariants

## Entities

- **Project**: owns an ordered list of task-id references; status Active | Archived | Complete.
- **Task**: belongs to a project; status Todo | In Progress | Review | Done; priority and type classify it.
- **Invoice**: billed against a project; status Overdue | Not Paid | Partial | Fully Paid.
- **Expense**: a dated cost with a free-text category.
- **Ticket**: support request; status New | In Progress | On Hold | Resolved.
- **Client**: billable party referenced by projects.

## Invariants

- ` + "`add_task`" + ` appends the new task id to the owning project's list exactly once. A task naming a nonexistent project is still stored; project-scoped views skip it.
- Invoice status is a pure function of (amount paid vs total, due date vs now), recomputed on every payment. It is never set directly.
- A task due date in the past marks it overdue; no status transition happens automatically.
- Deleting records is unsupported: a project's tasks and invoices outlive nothing, because nothing is ever removed.
`,
	},
	{
		URI:         "taskflow://docs/workflows",
		Name:        "docs_workflows",
		Title:       "Workflows and filter scoping",
		Description: "Playbooks for browsing, mutating and scoping derived views.",
		Content: `# Workflows

## Dashboard loop

1. ` + "`get_overview`" + ` — one call for orientation.
2. Drill in with ` + "`get_project`" + ` (board buckets, ordered tasks, billing and expense aggregates).
3. ` + "`list_overdue_tasks`" + ` surfaces everything past due that is not done.

## Mutation loop

- Create with ` + "`add_project`" + ` / ` + "`add_task`" + ` / ` + "`add_invoice`" + ` / ` + "`add_expense`" + ` / ` + "`add_ticket`" + ` / ` + "`add_client`" + `.
- Move work with ` + "`update_task_status`" + ` and ` + "`update_ticket_status`" + `.
- Record payments with ` + "`update_invoice_payment`" + `; pass ` + "`notes`" + ` only to replace the prior notes.

## Filter scoping

` + "`set_filter`" + ` merges a partial update: project scope plus a date window (7days, 30days, 90days, or custom with explicit bounds). Derived views narrow accordingly. Call ` + "`reset_filter`" + ` when leaving a scoped view.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
