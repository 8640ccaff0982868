package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

const taskColumns = `id, title, description, due_date, priority, status, assigned_to, assigned_role, created_by, created_at, updated_at`

func scanTask(row rowScanner) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &t.Status,
		&t.AssignedTo, &t.AssignedRole, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una tarea nueva.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		task.ID, task.Title, task.Description, task.DueDate, task.Priority, task.Status,
		task.AssignedTo, task.AssignedRole, task.CreatedBy, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert task", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. nil sin error cuando no existe.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get task by id", err)
	}
	return t, nil
}

// Update reemplazo completo del documento en una sola operación.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, due_date = $4, priority = $5,
			status = $6, assigned_to = $7, assigned_role = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		task.ID, task.Title, task.Description, task.DueDate, task.Priority,
		task.Status, task.AssignedTo, task.AssignedRole, task.UpdatedAt,
	)
	if err != nil {
		return storeErr("update task", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete task", err)
	}
	return nil
}

// List tareas con paginación, más recientes primero.
func (r *TaskRepo) List(limit, offset int) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryTasks(query, limit, offset)
}

// ListByAssignee tareas asignadas a una cuenta.
func (r *TaskRepo) ListByAssignee(accountID string, limit, offset int) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assigned_to = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryTasks(query, accountID, limit, offset)
}

func (r *TaskRepo) queryTasks(query string, args ...any) ([]*entity.Task, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, storeErr("list tasks", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, storeErr("scan task", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
