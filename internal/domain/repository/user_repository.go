package repository

import "github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"

// UserRepository define el puerto de persistencia para cuentas (DIP).
// Los emails llegan ya normalizados (entity.NormalizeEmail).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	SetBlocked(id string, blocked bool) error
	ListByRole(role string, limit, offset int) ([]*entity.User, error)
	FindByIDs(ids []string) ([]*entity.User, error)

	// Conteos para dashboard y cálculo de audiencia de notificaciones.
	CountByRole(role string) (int, error)
	CountActiveByRole(role string) (int, error) // excluye bloqueados
	CountActive() (int, error)                  // toda cuenta no bloqueada
	CountByIDs(ids []string) (int, error)
}
