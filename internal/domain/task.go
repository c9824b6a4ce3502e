package domain

// TaskStatus represents the kanban column a task occupies
type TaskStatus string

const (
	TaskTodo       TaskStatus = "Todo"
	TaskInProgress TaskStatus = "In Progress"
	TaskReview     TaskStatus = "Review"
	TaskDone       TaskStatus = "Done"
)

// TaskPriority is shared by tasks and tickets
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// TaskType categorizes the kind of work a task represents
type TaskType string

const (
	TypeBug           TaskType = "Bug"
	TypeNewFeature    TaskType = "New Feature"
	TypeResearch      TaskType = "Research"
	TypeDocumentation TaskType = "Documentation"
	TypeMaintenance   TaskType = "Maintenance"
)

// Task is a unit of work belonging to a project. A due date in the past
// marks the task overdue; it never triggers a status transition on its own.
type Task struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"projectId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Type        TaskType     `json:"type"`
	DueDate     Date         `json:"dueDate"`
	StartDate   Date         `json:"startDate"`
	CreatedAt   Date         `json:"createdAt"`
}
