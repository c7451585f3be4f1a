package task

import "time"

// Task is a project task board item.
type Task struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"projectId,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       Status     `json:"status"`
	Priority     Priority   `json:"priority,omitempty"`
	AssigneeID   string     `json:"assigneeId,omitempty"`
	AssigneeName string     `json:"assigneeName,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// Statuses lists every known task status, in board column order.
var Statuses = []string{
	string(StatusTodo),
	string(StatusInProgress),
	string(StatusReview),
	string(StatusDone),
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)
