package repository

import "github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	Update(n *entity.Notification) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Notification, error)
	Count() (int, error)
}
