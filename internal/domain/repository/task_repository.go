package repository

import "github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"

// TaskRepository define el puerto de persistencia para tareas.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Task, error)
	ListByAssignee(accountID string, limit, offset int) ([]*entity.Task, error)
}
