package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

func leadSetup() (*fakeLeadRepo, *usecase.LeadUseCase) {
	leads := newFakeLeadRepo()
	return leads, usecase.NewLeadUseCase(leads)
}

func TestLeadCreate_EstadoPorDefecto(t *testing.T) {
	_, uc := leadSetup()

	lead, err := uc.Create(testVendor("v1"), dto.CreateLeadRequest{Name: "Prospecto"})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.False(t, lead.Blocked)
}

func TestLeadCreate_EmployeeDenegado(t *testing.T) {
	_, uc := leadSetup()

	_, err := uc.Create(testEmployee("e1", "v1"), dto.CreateLeadRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLeadUpdate_Parcial(t *testing.T) {
	leads, uc := leadSetup()
	leads.Create(&entity.Lead{ID: "l1", Name: "Antes", Status: entity.LeadStatusNew, Phone: "9876543210"})

	nuevo := "contacted"
	require.NoError(t, uc.Update(testVendor("v1"), "l1", dto.UpdateLeadRequest{Status: &nuevo}))

	got, _ := leads.GetByID("l1")
	assert.Equal(t, "contacted", got.Status)
	assert.Equal(t, "9876543210", got.Phone, "campos sin puntero no se tocan")
}

func TestLeadBlock_FlagSuave(t *testing.T) {
	leads, uc := leadSetup()
	leads.Create(&entity.Lead{ID: "l1", Name: "Prospecto"})

	require.NoError(t, uc.Block(testAdmin(), "l1"))

	got, _ := leads.GetByID("l1")
	require.NotNil(t, got, "bloquear no borra el lead")
	assert.True(t, got.Blocked)

	assert.ErrorIs(t, uc.Block(testAdmin(), "no-existe"), domain.ErrNotFound)
}

func TestDashboardCounts(t *testing.T) {
	users := newFakeUserRepo()
	leads := newFakeLeadRepo()
	notifs := newFakeNotificationRepo()
	uc := usecase.NewDashboardUseCase(users, leads, notifs)

	users.add(testVendor("v1"))
	users.add(testVendor("v2"))
	users.add(testEmployee("e1", "v1"))
	leads.Create(&entity.Lead{ID: "l1"})
	notifs.Create(&entity.Notification{ID: "n1", Audience: entity.AudienceAll})
	notifs.Create(&entity.Notification{ID: "n2", Audience: entity.AudienceAll})

	out, err := uc.Counts(testAdmin())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Vendors)
	assert.Equal(t, 1, out.Employees)
	assert.Equal(t, 1, out.Leads)
	assert.Equal(t, 2, out.Notifications)

	_, err = uc.Counts(testVendor("v1"))
	assert.ErrorIs(t, err, domain.ErrForbidden, "el dashboard es exclusivo del admin")
}
