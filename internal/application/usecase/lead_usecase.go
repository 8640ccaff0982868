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

// LeadUseCase gestión de leads (admin y vendors).
type LeadUseCase struct {
	leadRepo repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso de leads.
func NewLeadUseCase(leadRepo repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{leadRepo: leadRepo}
}

// Create alta de lead; el estado por defecto es "new".
func (uc *LeadUseCase) Create(actor *entity.User, in dto.CreateLeadRequest) (*entity.Lead, error) {
	if err := policy.Require(actor, policy.ActionLeadManage); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.LeadStatusNew
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    status,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.leadRepo.Create(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// List listado paginado de leads.
func (uc *LeadUseCase) List(actor *entity.User, limit, offset int) ([]*entity.Lead, error) {
	if err := policy.Require(actor, policy.ActionLeadManage); err != nil {
		return nil, err
	}
	return uc.leadRepo.List(limit, offset)
}

// Update actualización parcial de un lead.
func (uc *LeadUseCase) Update(actor *entity.User, id string, in dto.UpdateLeadRequest) error {
	if err := policy.Require(actor, policy.ActionLeadManage); err != nil {
		return err
	}
	lead, err := uc.leadRepo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	if in.Name != nil {
		lead.Name = *in.Name
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.Status != nil {
		lead.Status = *in.Status
	}
	if in.Notes != nil {
		lead.Notes = *in.Notes
	}
	lead.UpdatedAt = time.Now()
	return uc.leadRepo.Update(lead)
}

// Block marca un lead como bloqueado (flag suave, no borrado).
func (uc *LeadUseCase) Block(actor *entity.User, id string) error {
	if err := policy.Require(actor, policy.ActionLeadManage); err != nil {
		return err
	}
	lead, err := uc.leadRepo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	return uc.leadRepo.SetBlocked(id, true)
}
