package dto

import (
	"time"

	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

// CreateTaskRequest alta de tarea (admin o vendor, con cadena de propiedad
// verificada al asignar a un employee).
type CreateTaskRequest struct {
	Title        string     `json:"title" validate:"required,min=1"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
	Priority     string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	AssignedTo   string     `json:"assigned_to" validate:"required,uuid"`
	AssignedRole string     `json:"assigned_role" validate:"required,oneof=vendor employee"`
}

// UpdateTaskRequest actualización parcial (solo admin en la política base).
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
}

// AssigneeSummary datos mínimos del asignado que viajan con la tarea
// (equivalente al populate de la API original).
type AssigneeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TaskResponse tarea con el resumen del asignado resuelto.
type TaskResponse struct {
	entity.Task
	Assignee *AssigneeSummary `json:"assignee,omitempty"`
}
