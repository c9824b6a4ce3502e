package domain

// Client is a billable party owning zero or more projects.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Telegram string `json:"telegram,omitempty"`
}
