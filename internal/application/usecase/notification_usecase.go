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

// NotificationUseCase gestión de notificaciones de difusión. El "envío" es
// una agregación de solo lectura: resuelve la audiencia y devuelve su tamaño.
type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(notifRepo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo, userRepo: userRepo}
}

// Create alta de notificación (solo admin). Recipients solo aplica con
// audience = custom; con otra audiencia se ignora.
func (uc *NotificationUseCase) Create(actor *entity.User, in dto.CreateNotificationRequest) (*entity.Notification, error) {
	if err := policy.Require(actor, policy.ActionNotificationManage); err != nil {
		return nil, err
	}
	recipients := in.Recipients
	if in.Audience != entity.AudienceCustom {
		recipients = nil
	}
	now := time.Now()
	n := &entity.Notification{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Message:    in.Message,
		Audience:   in.Audience,
		Recipients: recipients,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.notifRepo.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

// List listado (admin y vendors pueden leer).
func (uc *NotificationUseCase) List(actor *entity.User, limit, offset int) ([]*entity.Notification, error) {
	if err := policy.Require(actor, policy.ActionNotificationRead); err != nil {
		return nil, err
	}
	return uc.notifRepo.List(limit, offset)
}

// Update actualización parcial (solo admin).
func (uc *NotificationUseCase) Update(actor *entity.User, id string, in dto.UpdateNotificationRequest) error {
	if err := policy.Require(actor, policy.ActionNotificationManage); err != nil {
		return err
	}
	n, err := uc.notifRepo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if in.Title != nil {
		n.Title = *in.Title
	}
	if in.Message != nil {
		n.Message = *in.Message
	}
	if in.Audience != nil {
		if !entity.ValidAudience(*in.Audience) {
			return domain.ErrInvalidInput
		}
		n.Audience = *in.Audience
	}
	if in.Recipients != nil {
		n.Recipients = *in.Recipients
	}
	if n.Audience != entity.AudienceCustom {
		n.Recipients = nil
	}
	n.UpdatedAt = time.Now()
	return uc.notifRepo.Update(n)
}

// Delete borrado (solo admin).
func (uc *NotificationUseCase) Delete(actor *entity.User, id string) error {
	if err := policy.Require(actor, policy.ActionNotificationManage); err != nil {
		return err
	}
	n, err := uc.notifRepo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifRepo.Delete(id)
}

// Send resuelve la audiencia al momento de la llamada y devuelve su
// cardinalidad. No entrega nada ni persiste resultado de entrega.
func (uc *NotificationUseCase) Send(actor *entity.User, id string) (*dto.SendResponse, error) {
	if err := policy.Require(actor, policy.ActionNotificationSend); err != nil {
		return nil, err
	}
	n, err := uc.notifRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}

	var count int
	switch n.Audience {
	case entity.AudienceVendors:
		count, err = uc.userRepo.CountActiveByRole(entity.RoleVendor)
	case entity.AudienceEmployees:
		count, err = uc.userRepo.CountActiveByRole(entity.RoleEmployee)
	case entity.AudienceCustom:
		count, err = uc.userRepo.CountByIDs(n.Recipients)
	default: // all
		count, err = uc.userRepo.CountActive()
	}
	if err != nil {
		return nil, err
	}
	return &dto.SendResponse{Recipients: count}, nil
}
