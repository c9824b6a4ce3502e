package store_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/seed"
	"github.com/taskflowhq/taskflow/internal/store"
)

var testNow = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	opts = append([]store.Option{store.WithClock(func() time.Time { return testNow })}, opts...)
	return store.New(seed.State(testNow), nil, opts...)
}

// sequentialIDs returns a generator producing prefix-1, prefix-2, ...
// across all prefixes, deterministic for assertions.
func sequentialIDs() func(prefix string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func TestAddProjectAssignsUniqueIDsAndEmptyTaskList(t *testing.T) {
	s := newTestStore(t)

	a := s.AddProject(store.AddProjectRequest{Name: "Alpha", Status: domain.ProjectActive})
	b := s.AddProject(store.AddProjectRequest{Name: "Beta", Status: domain.ProjectActive})

	require.NotEmpty(t, a.ID)
	require.NotEmpty(t, b.ID)
	require.NotEqual(t, a.ID, b.ID)

	require.NotNil(t, a.Tasks)
	require.Empty(t, a.Tasks)

	state := s.Snapshot()
	require.Len(t, state.Projects, 3)
	require.Equal(t, "Alpha", state.Projects[1].Name)
	require.Equal(t, "Beta", state.Projects[2].Name)
}

func TestAddTaskLinksTaskToProject(t *testing.T) {
	s := newTestStore(t)

	task := s.AddTask(store.AddTaskRequest{
		ProjectID: "p-initial-project",
		Title:     "Write release notes",
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityLow,
		Type:      domain.TypeDocumentation,
	})

	state := s.Snapshot()
	require.Len(t, state.Tasks, 4)
	require.Equal(t, testNow, task.CreatedAt.Time)

	proj := state.Projects[0]
	require.Equal(t, []string{"t-1", "t-2", "t-3", task.ID}, proj.Tasks)
}

func TestAddTaskMembershipIsIdempotent(t *testing.T) {
	// Force id collisions so the second add hits the duplicate-membership
	// guard on the project's task list.
	s := newTestStore(t, store.WithIDGenerator(func(prefix string) string {
		return prefix + "-fixed"
	}))

	first := s.AddTask(store.AddTaskRequest{ProjectID: "p-initial-project", Title: "one", Status: domain.TaskTodo})
	second := s.AddTask(store.AddTaskRequest{ProjectID: "p-initial-project", Title: "two", Status: domain.TaskTodo})
	require.Equal(t, first.ID, second.ID)

	proj := s.Snapshot().Projects[0]
	occurrences := 0
	for _, id := range proj.Tasks {
		if id == first.ID {
			occurrences++
		}
	}
	require.Equal(t, 1, occurrences)
}

func TestAddTaskWithUnknownProjectStillStored(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot().Projects

	task := s.AddTask(store.AddTaskRequest{ProjectID: "p-ghost", Title: "orphan", Status: domain.TaskTodo})

	state := s.Snapshot()
	require.Len(t, state.Tasks, 4)
	require.Equal(t, "p-ghost", task.ProjectID)
	require.Equal(t, before, state.Projects)
}

func TestUpdateTaskStatus(t *testing.T) {
	s := newTestStore(t)

	updated, ok := s.UpdateTaskStatus("t-3", domain.TaskInProgress)
	require.True(t, ok)
	require.Equal(t, domain.TaskInProgress, updated.Status)

	state := s.Snapshot()
	require.Equal(t, domain.TaskInProgress, state.Tasks[2].Status)
	// Untouched tasks keep their status.
	require.Equal(t, domain.TaskDone, state.Tasks[0].Status)
}

func TestUpdateTaskStatusUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	before, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	_, ok := s.UpdateTaskStatus("t-missing", domain.TaskDone)
	require.False(t, ok)

	after, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestUpdateTaskStatusIdempotent(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.UpdateTaskStatus("t-2", domain.TaskReview)
	require.True(t, ok)
	once, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	_, ok = s.UpdateTaskStatus("t-2", domain.TaskReview)
	require.True(t, ok)
	twice, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	require.Equal(t, once, twice)
}

func TestInvoicePaymentLifecycle(t *testing.T) {
	s := newTestStore(t, store.WithIDGenerator(sequentialIDs()))

	inv := s.AddInvoice(store.AddInvoiceRequest{
		ProjectID:   "p-initial-project",
		Title:       "Q3 development",
		TotalAmount: 5430.00,
		DueDate:     domain.NewDate(testNow.AddDate(0, 0, -3)),
	})
	require.Equal(t, "inv-1", inv.ID)
	require.Equal(t, domain.PaymentOverdue, inv.Status)

	inv, ok := s.UpdateInvoicePayment("inv-1", 2000, nil)
	require.True(t, ok)
	require.Equal(t, 2000.0, inv.AmountPaid)
	require.Equal(t, domain.PaymentPartial, inv.Status)

	inv, ok = s.UpdateInvoicePayment("inv-1", 3430, nil)
	require.True(t, ok)
	require.Equal(t, 5430.0, inv.AmountPaid)
	require.Equal(t, domain.PaymentFullyPaid, inv.Status)
}

func TestUpdateInvoicePaymentNotes(t *testing.T) {
	s := newTestStore(t, store.WithIDGenerator(sequentialIDs()))

	s.AddInvoice(store.AddInvoiceRequest{
		ProjectID:   "p-initial-project",
		Title:       "Retainer",
		TotalAmount: 1000,
		DueDate:     domain.NewDate(testNow.AddDate(0, 0, 14)),
		Notes:       "initial terms",
	})

	// Nil notes leave the existing value alone.
	inv, ok := s.UpdateInvoicePayment("inv-1", 100, nil)
	require.True(t, ok)
	require.Equal(t, "initial terms", inv.Notes)

	replaced := "paid by wire"
	inv, ok = s.UpdateInvoicePayment("inv-1", 100, &replaced)
	require.True(t, ok)
	require.Equal(t, "paid by wire", inv.Notes)
}

func TestUpdateInvoicePaymentUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.UpdateInvoicePayment("inv-missing", 100, nil)
	require.False(t, ok)
	require.Empty(t, s.Snapshot().Invoices)
}

func TestAddExpense(t *testing.T) {
	s := newTestStore(t)

	exp := s.AddExpense(store.AddExpenseRequest{
		ProjectID: "p-initial-project",
		Title:     "Stock photos",
		Amount:    49.99,
		Date:      domain.NewDate(testNow),
		Category:  "Assets",
	})
	require.NotEmpty(t, exp.ID)

	state := s.Snapshot()
	require.Len(t, state.Expenses, 1)
	require.Equal(t, "Assets", state.Expenses[0].Category)
}

func TestTicketLifecycle(t *testing.T) {
	s := newTestStore(t, store.WithIDGenerator(sequentialIDs()))

	tk := s.AddTicket(store.AddTicketRequest{
		ProjectID: "p-initial-project",
		Title:     "Login page 500s",
		Status:    domain.TicketNew,
		Priority:  domain.PriorityHigh,
	})
	require.Equal(t, "tk-1", tk.ID)
	require.Equal(t, testNow, tk.CreatedAt.Time)

	tk, ok := s.UpdateTicketStatus("tk-1", domain.TicketResolved)
	require.True(t, ok)
	require.Equal(t, domain.TicketResolved, tk.Status)

	_, ok = s.UpdateTicketStatus("tk-missing", domain.TicketResolved)
	require.False(t, ok)
}

func TestAddClient(t *testing.T) {
	s := newTestStore(t)

	c := s.AddClient(store.AddClientRequest{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	})
	require.NotEmpty(t, c.ID)
	require.Len(t, s.Snapshot().Clients, 1)
}

func TestSetFilterMergesAndResetRestoresDefault(t *testing.T) {
	s := newTestStore(t)

	project := "p-initial-project"
	filters := s.SetFilter(domain.FilterPatch{ProjectID: &project})
	require.Equal(t, project, filters.ProjectID)
	require.Equal(t, domain.Range30Days, filters.DateRange)

	rng := domain.Range7Days
	filters = s.SetFilter(domain.FilterPatch{DateRange: &rng})
	require.Equal(t, project, filters.ProjectID)
	require.Equal(t, domain.Range7Days, filters.DateRange)

	filters = s.ResetFilter()
	require.Equal(t, domain.DefaultFilter(), filters)
}

func TestImportStateReplacesEverything(t *testing.T) {
	s := newTestStore(t)

	replacement := domain.AppState{
		Projects: []domain.Project{{ID: "p-x", Name: "Imported", Status: domain.ProjectArchived, Tasks: []string{}}},
		Tasks:    []domain.Task{},
		Invoices: []domain.Invoice{},
		Expenses: []domain.Expense{},
		Tickets:  []domain.Ticket{},
		Clients:  []domain.Client{},
		Filters:  domain.DefaultFilter(),
	}
	s.ImportState(replacement)

	state := s.Snapshot()
	require.Len(t, state.Projects, 1)
	require.Equal(t, "p-x", state.Projects[0].ID)
	require.Empty(t, state.Tasks)
}

func TestSubscribeReceivesEverySnapshot(t *testing.T) {
	s := newTestStore(t)

	var notified []domain.AppState
	s.Subscribe(func(state domain.AppState) {
		notified = append(notified, state)
	})

	s.AddProject(store.AddProjectRequest{Name: "Gamma", Status: domain.ProjectActive})
	s.UpdateTaskStatus("t-3", domain.TaskDone)
	s.UpdateTaskStatus("t-missing", domain.TaskDone) // no-op, no notification

	require.Len(t, notified, 2)
	require.Len(t, notified[0].Projects, 2)
	require.Equal(t, domain.TaskDone, notified[1].Tasks[2].Status)
}

func TestNotificationsArriveInMutationOrder(t *testing.T) {
	s := newTestStore(t)

	var (
		mu        sync.Mutex
		delivered []int
		once      sync.Once
	)
	firstSeen := make(chan struct{})
	release := make(chan struct{})
	s.Subscribe(func(state domain.AppState) {
		once.Do(func() {
			close(firstSeen)
			<-release
		})
		mu.Lock()
		delivered = append(delivered, len(state.Clients))
		mu.Unlock()
	})

	first := make(chan struct{})
	go func() {
		s.AddClient(store.AddClientRequest{Name: "First"})
		close(first)
	}()
	<-firstSeen

	second := make(chan struct{})
	go func() {
		s.AddClient(store.AddClientRequest{Name: "Second"})
		close(second)
	}()

	// A later action must not deliver its snapshot while an earlier
	// delivery is still in flight, or a persisting subscriber would store
	// the stale snapshot last.
	select {
	case <-second:
		t.Fatal("second action completed before the first notification was delivered")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-first
	<-second

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int{1, 2}, delivered)
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	s.AddTask(store.AddTaskRequest{ProjectID: "p-initial-project", Title: "later", Status: domain.TaskTodo})

	// The earlier snapshot is untouched by the mutation.
	require.Len(t, before.Tasks, 3)
	require.Equal(t, []string{"t-1", "t-2", "t-3"}, before.Projects[0].Tasks)
}
