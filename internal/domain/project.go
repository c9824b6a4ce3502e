package domain

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "Active"
	ProjectArchived ProjectStatus = "Archived"
	ProjectComplete ProjectStatus = "Complete"
)

// Project is a container for work. Tasks holds the ordered task-id
// references kept in sync with Task.ProjectID by the store; ids that no
// longer resolve are tolerated and skipped by derived views.
type Project struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Tasks       []string      `json:"tasks"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
}
