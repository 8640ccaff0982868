package entity

import "time"

// Prioridades y estados válidos para Task.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// ValidPriority indica si la prioridad es una del enum.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ValidTaskStatus indica si el estado es uno del enum.
func ValidTaskStatus(s string) bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusDone
}

// Task unidad de trabajo asignada a un vendor o a un employee.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Priority     string     `json:"priority"` // low | medium | high
	Status       string     `json:"status"`   // open | in_progress | done
	AssignedTo   string     `json:"assigned_to"`
	AssignedRole string     `json:"assigned_role"` // vendor | employee
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
