package repository

import "github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"

// LeadRepository define el puerto de persistencia para leads.
// No hay borrado: "blocked" es el flag suave que los saca del pipeline.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	Update(lead *entity.Lead) error
	SetBlocked(id string, blocked bool) error
	List(limit, offset int) ([]*entity.Lead, error)
	Count() (int, error)
}
