package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/domain"
)

func TestDefaultFilter(t *testing.T) {
	f := domain.DefaultFilter()
	require.Empty(t, f.ProjectID)
	require.Equal(t, domain.Range30Days, f.DateRange)
	require.Nil(t, f.StartDate)
	require.Nil(t, f.EndDate)
}

func TestFilterMergeKeepsUntouchedFields(t *testing.T) {
	f := domain.DefaultFilter()

	project := "p-1"
	f = f.Merge(domain.FilterPatch{ProjectID: &project})
	require.Equal(t, "p-1", f.ProjectID)
	require.Equal(t, domain.Range30Days, f.DateRange)

	rng := domain.Range7Days
	f = f.Merge(domain.FilterPatch{DateRange: &rng})
	require.Equal(t, "p-1", f.ProjectID)
	require.Equal(t, domain.Range7Days, f.DateRange)
}

func TestFilterWindowRelativeRanges(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		rng  domain.FilterDateRange
		days int
	}{
		{domain.Range7Days, 7},
		{domain.Range30Days, 30},
		{domain.Range90Days, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			f := domain.FilterState{DateRange: tt.rng}
			start, end, ok := f.Window(now)
			require.True(t, ok)
			require.Equal(t, now, end)
			require.Equal(t, now.AddDate(0, 0, -tt.days), start)
		})
	}
}

func TestFilterWindowCustom(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	from := domain.NewDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	to := domain.NewDate(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))

	f := domain.FilterState{
		DateRange: domain.RangeCustom,
		StartDate: &from,
		EndDate:   &to,
	}
	start, end, ok := f.Window(now)
	require.True(t, ok)
	require.Equal(t, from.Time, start)
	require.Equal(t, to.Time, end)
}

func TestFilterWindowCustomWithoutBounds(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	f := domain.FilterState{DateRange: domain.RangeCustom}
	_, _, ok := f.Window(now)
	require.False(t, ok)
}
