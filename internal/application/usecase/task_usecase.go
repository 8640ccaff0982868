package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/policy"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/repository"
)

// TaskUseCase gestión de tareas.
type TaskUseCase struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskUseCase construye el caso de uso de tareas.
func NewTaskUseCase(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, userRepo: userRepo}
}

// Create crea una tarea. El asignado debe existir y su rol real debe
// coincidir con assigned_role; si el actor es vendor, la cadena de propiedad
// se verifica siempre (variante estricta).
func (uc *TaskUseCase) Create(actor *entity.User, in dto.CreateTaskRequest, pathVendorID string) (*dto.TaskResponse, error) {
	if err := policy.Require(actor, policy.ActionTaskCreate); err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleVendor && pathVendorID != "" && pathVendorID != actor.ID {
		return nil, domain.ErrForbidden
	}
	assignee, err := uc.userRepo.GetByID(in.AssignedTo)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, domain.ErrNotFound
	}
	if assignee.Role != in.AssignedRole {
		return nil, domain.ErrInvalidInput
	}
	if err := policy.CanAssignTask(actor, assignee); err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	now := time.Now()
	task := &entity.Task{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate,
		Priority:     priority,
		Status:       entity.StatusOpen,
		AssignedTo:   assignee.ID,
		AssignedRole: assignee.Role,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return &dto.TaskResponse{
		Task: *task,
		Assignee: &dto.AssigneeSummary{
			ID: assignee.ID, Name: assignee.Name, Email: assignee.Email, Role: assignee.Role,
		},
	}, nil
}

// Update actualización parcial (solo admin en la política base).
func (uc *TaskUseCase) Update(actor *entity.User, id string, in dto.UpdateTaskRequest) error {
	if err := policy.Require(actor, policy.ActionTaskUpdate); err != nil {
		return err
	}
	task, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return domain.ErrInvalidInput
		}
		task.Priority = *in.Priority
	}
	if in.Status != nil {
		if !entity.ValidTaskStatus(*in.Status) {
			return domain.ErrInvalidInput
		}
		task.Status = *in.Status
	}
	task.UpdatedAt = time.Now()
	return uc.taskRepo.Update(task)
}

// Delete borrado de tarea (solo admin).
func (uc *TaskUseCase) Delete(actor *entity.User, id string) error {
	if err := policy.Require(actor, policy.ActionTaskDelete); err != nil {
		return err
	}
	task, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	return uc.taskRepo.Delete(id)
}

// List tareas con el resumen del asignado resuelto en lote.
func (uc *TaskUseCase) List(actor *entity.User, limit, offset int) ([]*dto.TaskResponse, error) {
	if err := policy.Require(actor, policy.ActionTaskRead); err != nil {
		return nil, err
	}
	tasks, err := uc.taskRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.withAssignees(tasks)
}

// ListByAssignee tareas de una cuenta. La puede pedir el propio asignado,
// su vendor dueño o un admin.
func (uc *TaskUseCase) ListByAssignee(actor *entity.User, accountID string, limit, offset int) ([]*dto.TaskResponse, error) {
	if err := policy.Require(actor, policy.ActionTaskRead); err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleAdmin && actor.ID != accountID {
		target, err := uc.userRepo.GetByID(accountID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, domain.ErrNotFound
		}
		if err := policy.CanManageEmployee(actor, target); err != nil {
			return nil, err
		}
	}
	tasks, err := uc.taskRepo.ListByAssignee(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.withAssignees(tasks)
}

// withAssignees resuelve los asignados en una sola consulta por lote.
func (uc *TaskUseCase) withAssignees(tasks []*entity.Task) ([]*dto.TaskResponse, error) {
	ids := make([]string, 0, len(tasks))
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.AssignedTo != "" && !seen[t.AssignedTo] {
			seen[t.AssignedTo] = true
			ids = append(ids, t.AssignedTo)
		}
	}
	byID := make(map[string]*entity.User, len(ids))
	if len(ids) > 0 {
		users, err := uc.userRepo.FindByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			byID[u.ID] = u
		}
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp := &dto.TaskResponse{Task: *t}
		if u, ok := byID[t.AssignedTo]; ok {
			resp.Assignee = &dto.AssigneeSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
		}
		out = append(out, resp)
	}
	return out, nil
}
