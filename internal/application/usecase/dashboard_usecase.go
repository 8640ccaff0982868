package usecase

import (
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/policy"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/repository"
)

// DashboardUseCase conteos agregados para el panel de admin.
type DashboardUseCase struct {
	userRepo  repository.UserRepository
	leadRepo  repository.LeadRepository
	notifRepo repository.NotificationRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(userRepo repository.UserRepository, leadRepo repository.LeadRepository, notifRepo repository.NotificationRepository) *DashboardUseCase {
	return &DashboardUseCase{userRepo: userRepo, leadRepo: leadRepo, notifRepo: notifRepo}
}

// Counts devuelve los totales de vendors, employees, leads y notificaciones.
func (uc *DashboardUseCase) Counts(actor *entity.User) (*dto.DashboardResponse, error) {
	if err := policy.Require(actor, policy.ActionDashboardRead); err != nil {
		return nil, err
	}
	vendors, err := uc.userRepo.CountByRole(entity.RoleVendor)
	if err != nil {
		return nil, err
	}
	employees, err := uc.userRepo.CountByRole(entity.RoleEmployee)
	if err != nil {
		return nil, err
	}
	leads, err := uc.leadRepo.Count()
	if err != nil {
		return nil, err
	}
	notifications, err := uc.notifRepo.Count()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Vendors:       vendors,
		Employees:     employees,
		Leads:         leads,
		Notifications: notifications,
	}, nil
}
