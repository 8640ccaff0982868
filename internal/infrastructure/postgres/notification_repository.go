package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
// La lista de destinatarios custom se guarda como arreglo de texto.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

const notificationColumns = `id, title, message, audience, recipients, created_at, updated_at`

func scanNotification(row rowScanner) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Audience, &n.Recipients, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create persiste una notificación nueva.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		n.ID, n.Title, n.Message, n.Audience, n.Recipients, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert notification", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID. nil sin error cuando no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	n, err := scanNotification(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get notification by id", err)
	}
	return n, nil
}

// Update reemplazo completo del documento en una sola operación.
func (r *NotificationRepo) Update(n *entity.Notification) error {
	query := `
		UPDATE notifications SET title = $2, message = $3, audience = $4, recipients = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		n.ID, n.Title, n.Message, n.Audience, n.Recipients, n.UpdatedAt,
	)
	if err != nil {
		return storeErr("update notification", err)
	}
	return nil
}

// Delete elimina una notificación por ID.
func (r *NotificationRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete notification", err)
	}
	return nil
}

// List notificaciones con paginación, más recientes primero.
func (r *NotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, storeErr("list notifications", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, storeErr("scan notification", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// Count total de notificaciones (dashboard).
func (r *NotificationRepo) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM notifications`).Scan(&n)
	if err != nil {
		return 0, storeErr("count notifications", err)
	}
	return n, nil
}
