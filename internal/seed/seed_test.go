package seed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/seed"
)

func TestStateIsInternallyConsistent(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	state := seed.State(now)

	require.Len(t, state.Projects, 1)
	proj := state.Projects[0]

	taskIDs := make(map[string]string, len(state.Tasks))
	for _, task := range state.Tasks {
		taskIDs[task.ID] = task.ProjectID
	}

	// Every referenced task exists and points back at the project.
	for _, id := range proj.Tasks {
		owner, ok := taskIDs[id]
		require.True(t, ok, "project references missing task %s", id)
		require.Equal(t, proj.ID, owner)
	}
	require.Len(t, proj.Tasks, len(state.Tasks))
}

func TestStateCollectionsAreNonNil(t *testing.T) {
	state := seed.State(time.Now())

	// Empty collections must marshal as [] rather than null so the
	// persisted layout matches what clients expect.
	require.NotNil(t, state.Invoices)
	require.NotNil(t, state.Expenses)
	require.NotNil(t, state.Tickets)
	require.NotNil(t, state.Clients)
	require.Equal(t, domain.DefaultFilter(), state.Filters)
}

func TestStateDatesAreRelativeToNow(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	state := seed.State(now)

	proj := state.Projects[0]
	require.Equal(t, now, proj.StartDate.Time)
	require.Equal(t, now.AddDate(0, 0, 30), proj.EndDate.Time)

	for _, task := range state.Tasks {
		require.Equal(t, now, task.CreatedAt.Time)
		require.False(t, task.DueDate.IsZero())
	}
}
