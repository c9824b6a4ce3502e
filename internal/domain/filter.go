package domain

import "time"

// FilterDateRange selects a preset or custom date window
type FilterDateRange string

const (
	Range7Days  FilterDateRange = "7days"
	Range30Days FilterDateRange = "30days"
	Range90Days FilterDateRange = "90days"
	RangeCustom FilterDateRange = "custom"
)

// FilterState is the transient scoping context views use to narrow their
// aggregate computations. It travels with the persisted snapshot for
// layout compatibility but is not business data; views reset it on unmount.
type FilterState struct {
	ProjectID string          `json:"projectId"`
	DateRange FilterDateRange `json:"dateRange"`
	StartDate *Date           `json:"startDate"`
	EndDate   *Date           `json:"endDate"`
}

// DefaultFilter returns the unscoped filter applied at startup and on reset.
func DefaultFilter() FilterState {
	return FilterState{DateRange: Range30Days}
}

// FilterPatch is a partial filter update; nil fields leave the current
// value unchanged.
type FilterPatch struct {
	ProjectID *string          `json:"projectId,omitempty"`
	DateRange *FilterDateRange `json:"dateRange,omitempty"`
	StartDate *Date            `json:"startDate,omitempty"`
	EndDate   *Date            `json:"endDate,omitempty"`
}

// Merge shallow-merges a patch into the filter, returning the result.
func (f FilterState) Merge(p FilterPatch) FilterState {
	if p.ProjectID != nil {
		f.ProjectID = *p.ProjectID
	}
	if p.DateRange != nil {
		f.DateRange = *p.DateRange
	}
	if p.StartDate != nil {
		f.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		f.EndDate = p.EndDate
	}
	return f
}

// Window resolves the filter's date range to concrete bounds. The presets
// are trailing windows ending at now; custom uses the explicit bounds.
// ok is false when no window applies (custom without both bounds).
func (f FilterState) Window(now time.Time) (start, end time.Time, ok bool) {
	switch f.DateRange {
	case Range7Days:
		return now.AddDate(0, 0, -7), now, true
	case Range30Days:
		return now.AddDate(0, 0, -30), now, true
	case Range90Days:
		return now.AddDate(0, 0, -90), now, true
	case RangeCustom:
		if f.StartDate == nil || f.EndDate == nil {
			return time.Time{}, time.Time{}, false
		}
		return f.StartDate.Time, f.EndDate.Time, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
