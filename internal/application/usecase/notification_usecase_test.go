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

func notifSetup() (*fakeNotificationRepo, *fakeUserRepo, *usecase.NotificationUseCase) {
	notifs := newFakeNotificationRepo()
	users := newFakeUserRepo()
	return notifs, users, usecase.NewNotificationUseCase(notifs, users)
}

func TestNotificationCreate_SoloAdmin(t *testing.T) {
	_, users, uc := notifSetup()
	vendor := users.add(testVendor("v1"))

	_, err := uc.Create(vendor, dto.CreateNotificationRequest{
		Title: "Aviso", Message: "Hola", Audience: entity.AudienceAll,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	n, err := uc.Create(testAdmin(), dto.CreateNotificationRequest{
		Title: "Aviso", Message: "Hola", Audience: entity.AudienceAll,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
}

func TestNotificationCreate_RecipientsSoloConCustom(t *testing.T) {
	_, _, uc := notifSetup()

	// Con audiencia no custom los recipients se descartan.
	n, err := uc.Create(testAdmin(), dto.CreateNotificationRequest{
		Title: "A", Message: "B", Audience: entity.AudienceVendors,
		Recipients: []string{"x1", "x2"},
	})
	require.NoError(t, err)
	assert.Nil(t, n.Recipients)

	n, err = uc.Create(testAdmin(), dto.CreateNotificationRequest{
		Title: "A", Message: "B", Audience: entity.AudienceCustom,
		Recipients: []string{"x1", "x2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2"}, n.Recipients)
}

func TestNotificationSend_ContadoresPorAudiencia(t *testing.T) {
	notifs, users, uc := notifSetup()

	users.add(testVendor("v1"))
	users.add(testVendor("v2"))
	bloqueado := testVendor("v3")
	bloqueado.Blocked = true
	users.add(bloqueado)
	users.add(testEmployee("e1", "v1"))
	users.add(&entity.User{ID: "a1", Role: entity.RoleAdmin})

	cases := []struct {
		name       string
		audience   string
		recipients []string
		want       int
	}{
		// Los bloqueados no cuentan en las audiencias por rol.
		{"vendors activos", entity.AudienceVendors, nil, 2},
		{"employees activos", entity.AudienceEmployees, nil, 1},
		// "all" = toda cuenta no bloqueada (admin incluido).
		{"todos los activos", entity.AudienceAll, nil, 4},
		// custom cuenta solo los IDs que existen.
		{"custom con un id fantasma", entity.AudienceCustom, []string{"v1", "e1", "fantasma"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := &entity.Notification{ID: "n-" + tc.audience, Audience: tc.audience, Recipients: tc.recipients}
			require.NoError(t, notifs.Create(n))

			out, err := uc.Send(testAdmin(), n.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.Recipients)
		})
	}
}

func TestNotificationSend_NoEntregaNada(t *testing.T) {
	notifs, users, uc := notifSetup()
	users.add(testVendor("v1"))
	notifs.Create(&entity.Notification{ID: "n1", Audience: entity.AudienceVendors})

	// Dos envíos seguidos devuelven el mismo conteo: no hay estado de entrega.
	out1, err := uc.Send(testAdmin(), "n1")
	require.NoError(t, err)
	out2, err := uc.Send(testAdmin(), "n1")
	require.NoError(t, err)
	assert.Equal(t, out1.Recipients, out2.Recipients)

	got, _ := notifs.GetByID("n1")
	assert.Empty(t, got.Recipients, "el envío no persiste nada en la notificación")
}

func TestNotificationSend_Inexistente(t *testing.T) {
	_, _, uc := notifSetup()
	_, err := uc.Send(testAdmin(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotificationUpdate_CambioDeAudienciaLimpiaRecipients(t *testing.T) {
	notifs, _, uc := notifSetup()
	notifs.Create(&entity.Notification{
		ID: "n1", Title: "A", Audience: entity.AudienceCustom, Recipients: []string{"x1"},
	})

	aud := entity.AudienceAll
	require.NoError(t, uc.Update(testAdmin(), "n1", dto.UpdateNotificationRequest{Audience: &aud}))

	got, _ := notifs.GetByID("n1")
	assert.Equal(t, entity.AudienceAll, got.Audience)
	assert.Nil(t, got.Recipients, "al dejar de ser custom los recipients se limpian")
}

func TestNotificationList_VendorPuedeLeer(t *testing.T) {
	notifs, users, uc := notifSetup()
	vendor := users.add(testVendor("v1"))
	emp := users.add(testEmployee("e1", "v1"))
	notifs.Create(&entity.Notification{ID: "n1", Audience: entity.AudienceAll})

	list, err := uc.List(vendor, 50, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.List(emp, 50, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
