package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/policy"
)

func user(id, role, vendorID string) *entity.User {
	return &entity.User{ID: id, Role: role, VendorID: vendorID}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla central de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestAllowed_TablaDeRoles(t *testing.T) {
	cases := []struct {
		role   string
		action policy.Action
		want   bool
	}{
		{entity.RoleAdmin, policy.ActionVendorCreate, true},
		{entity.RoleVendor, policy.ActionVendorCreate, false},
		{entity.RoleEmployee, policy.ActionVendorCreate, false},

		{entity.RoleAdmin, policy.ActionEmployeeCreate, true},
		{entity.RoleVendor, policy.ActionEmployeeCreate, true},
		{entity.RoleEmployee, policy.ActionEmployeeCreate, false},

		{entity.RoleAdmin, policy.ActionTaskUpdate, true},
		{entity.RoleVendor, policy.ActionTaskUpdate, false},

		{entity.RoleVendor, policy.ActionTaskCreate, true},
		{entity.RoleEmployee, policy.ActionTaskCreate, false},
		{entity.RoleEmployee, policy.ActionTaskRead, true},

		{entity.RoleVendor, policy.ActionLeadManage, true},
		{entity.RoleEmployee, policy.ActionLeadManage, false},

		{entity.RoleVendor, policy.ActionNotificationRead, true},
		{entity.RoleVendor, policy.ActionNotificationManage, false},
		{entity.RoleAdmin, policy.ActionNotificationSend, true},

		{entity.RoleAdmin, policy.ActionDashboardRead, true},
		{entity.RoleVendor, policy.ActionDashboardRead, false},

		// El rol lead solo puede leer tareas; todo lo demás se deniega.
		{entity.RoleLead, policy.ActionTaskRead, true},
		{entity.RoleLead, policy.ActionLeadManage, false},
		{entity.RoleLead, policy.ActionEmployeeCreate, false},
		{entity.RoleLead, policy.ActionNotificationRead, false},
	}
	for _, tc := range cases {
		got := policy.Allowed(tc.role, tc.action)
		assert.Equalf(t, tc.want, got, "rol %s, acción %s", tc.role, tc.action)
	}
}

func TestAllowed_AccionDesconocidaDeniega(t *testing.T) {
	assert.False(t, policy.Allowed(entity.RoleAdmin, policy.Action("no.existe")))
}

func TestRequire(t *testing.T) {
	assert.ErrorIs(t, policy.Require(nil, policy.ActionTaskRead), domain.ErrUnauthorized)
	assert.ErrorIs(t, policy.Require(user("v1", entity.RoleVendor, ""), policy.ActionVendorCreate), domain.ErrForbidden)
	assert.NoError(t, policy.Require(user("a1", entity.RoleAdmin, ""), policy.ActionVendorCreate))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadena de propiedad vendor → employee
// ──────────────────────────────────────────────────────────────────────────────

func TestCanManageEmployee(t *testing.T) {
	admin := user("a1", entity.RoleAdmin, "")
	vendor := user("v1", entity.RoleVendor, "")
	otroVendor := user("v2", entity.RoleVendor, "")
	propio := user("e1", entity.RoleEmployee, "v1")
	ajeno := user("e2", entity.RoleEmployee, "v2")
	huerfano := user("e3", entity.RoleEmployee, "")

	assert.NoError(t, policy.CanManageEmployee(admin, propio))
	assert.NoError(t, policy.CanManageEmployee(admin, ajeno))

	assert.NoError(t, policy.CanManageEmployee(vendor, propio))
	assert.ErrorIs(t, policy.CanManageEmployee(vendor, ajeno), domain.ErrForbidden)
	assert.ErrorIs(t, policy.CanManageEmployee(vendor, huerfano), domain.ErrForbidden,
		"un employee sin vendor no pertenece a nadie")
	assert.ErrorIs(t, policy.CanManageEmployee(otroVendor, propio), domain.ErrForbidden)

	// El employee solo puede tocarse a sí mismo.
	assert.NoError(t, policy.CanManageEmployee(propio, propio))
	assert.ErrorIs(t, policy.CanManageEmployee(propio, ajeno), domain.ErrForbidden)

	assert.ErrorIs(t, policy.CanManageEmployee(nil, propio), domain.ErrForbidden)
	assert.ErrorIs(t, policy.CanManageEmployee(vendor, nil), domain.ErrForbidden)
}

func TestCanAssignTask(t *testing.T) {
	admin := user("a1", entity.RoleAdmin, "")
	vendor := user("v1", entity.RoleVendor, "")
	otroVendor := user("v2", entity.RoleVendor, "")
	propio := user("e1", entity.RoleEmployee, "v1")
	ajeno := user("e2", entity.RoleEmployee, "v2")

	// Admin asigna a cualquiera.
	assert.NoError(t, policy.CanAssignTask(admin, vendor))
	assert.NoError(t, policy.CanAssignTask(admin, ajeno))

	// Vendor: a sí mismo o a sus propios employees.
	assert.NoError(t, policy.CanAssignTask(vendor, vendor))
	assert.NoError(t, policy.CanAssignTask(vendor, propio))
	assert.ErrorIs(t, policy.CanAssignTask(vendor, ajeno), domain.ErrForbidden)
	assert.ErrorIs(t, policy.CanAssignTask(vendor, otroVendor), domain.ErrForbidden,
		"un vendor no asigna tareas a otro vendor")

	// Employee jamás asigna.
	assert.ErrorIs(t, policy.CanAssignTask(propio, propio), domain.ErrForbidden)

	// No se asigna a un admin salvo que el actor sea admin.
	assert.ErrorIs(t, policy.CanAssignTask(vendor, admin), domain.ErrForbidden)
}

func TestCanRegisterRole(t *testing.T) {
	// Jamás un admin por la vía de registro.
	assert.ErrorIs(t, policy.CanRegisterRole(entity.RoleAdmin, entity.RoleAdmin), domain.ErrForbidden)
	assert.ErrorIs(t, policy.CanRegisterRole(entity.RoleVendor, entity.RoleAdmin), domain.ErrForbidden)

	// Admin puede registrar vendors y employees.
	assert.NoError(t, policy.CanRegisterRole(entity.RoleAdmin, entity.RoleVendor))
	assert.NoError(t, policy.CanRegisterRole(entity.RoleAdmin, entity.RoleEmployee))

	// Vendor solo employees.
	assert.NoError(t, policy.CanRegisterRole(entity.RoleVendor, entity.RoleEmployee))
	assert.ErrorIs(t, policy.CanRegisterRole(entity.RoleVendor, entity.RoleVendor), domain.ErrForbidden)
}
