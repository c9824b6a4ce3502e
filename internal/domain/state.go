package domain

// AppState is one immutable snapshot of the whole store: the six entity
// collections plus the transient filter. Readers must treat the slices
// as read-only; the store replaces a touched collection wholesale and
// never mutates one in place.
type AppState struct {
	Projects []Project   `json:"projects"`
	Tasks    []Task      `json:"tasks"`
	Invoices []Invoice   `json:"invoices"`
	Expenses []Expense   `json:"expenses"`
	Tickets  []Ticket    `json:"tickets"`
	Clients  []Client    `json:"clients"`
	Filters  FilterState `json:"filters"`
}
