// Package policy centraliza la autorización del CRM: una tabla única de
// acción → roles permitidos, más las comprobaciones de propiedad sobre la
// cadena vendor→employee. Todas las rutas deciden a través de este paquete;
// ningún handler re-deriva permisos por su cuenta.
package policy

import (
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

// Action identifica una operación autorizable (recurso.acción).
type Action string

const (
	ActionVendorCreate Action = "vendor.create"
	ActionVendorUpdate Action = "vendor.update"
	ActionVendorDelete Action = "vendor.delete"
	ActionVendorBlock  Action = "vendor.block"
	ActionVendorList   Action = "vendor.list"

	ActionEmployeeCreate Action = "employee.create"
	ActionEmployeeUpdate Action = "employee.update"
	ActionEmployeeDelete Action = "employee.delete"
	ActionEmployeeBlock  Action = "employee.block"
	ActionEmployeeList   Action = "employee.list"

	ActionTaskCreate Action = "task.create"
	ActionTaskUpdate Action = "task.update"
	ActionTaskDelete Action = "task.delete"
	ActionTaskRead   Action = "task.read"

	ActionLeadManage Action = "lead.manage"

	ActionNotificationRead   Action = "notification.read"
	ActionNotificationManage Action = "notification.manage"
	ActionNotificationSend   Action = "notification.send"

	ActionDashboardRead Action = "dashboard.read"
	ActionRegister      Action = "account.register"
)

// roleGate tabla de acción → roles permitidos. La comprobación de propiedad
// (cuando aplica) es adicional a este gate, nunca lo reemplaza.
var roleGate = map[Action][]string{
	ActionVendorCreate: {entity.RoleAdmin},
	ActionVendorUpdate: {entity.RoleAdmin},
	ActionVendorDelete: {entity.RoleAdmin},
	ActionVendorBlock:  {entity.RoleAdmin},
	ActionVendorList:   {entity.RoleAdmin},

	ActionEmployeeCreate: {entity.RoleAdmin, entity.RoleVendor},
	ActionEmployeeUpdate: {entity.RoleAdmin, entity.RoleVendor, entity.RoleEmployee},
	ActionEmployeeDelete: {entity.RoleAdmin},
	ActionEmployeeBlock:  {entity.RoleAdmin},
	ActionEmployeeList:   {entity.RoleAdmin},

	ActionTaskCreate: {entity.RoleAdmin, entity.RoleVendor},
	ActionTaskUpdate: {entity.RoleAdmin},
	ActionTaskDelete: {entity.RoleAdmin},
	ActionTaskRead:   {entity.RoleAdmin, entity.RoleVendor, entity.RoleEmployee, entity.RoleLead},

	ActionLeadManage: {entity.RoleAdmin, entity.RoleVendor},

	ActionNotificationRead:   {entity.RoleAdmin, entity.RoleVendor},
	ActionNotificationManage: {entity.RoleAdmin},
	ActionNotificationSend:   {entity.RoleAdmin},

	ActionDashboardRead: {entity.RoleAdmin},
	ActionRegister:      {entity.RoleAdmin, entity.RoleVendor},
}

// Allowed indica si el rol puede ejecutar la acción según la tabla.
// Función pura de pertenencia; acciones desconocidas deniegan siempre.
func Allowed(role string, action Action) bool {
	for _, r := range roleGate[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Require role-gate con error de dominio: ErrForbidden si el rol no está permitido.
func Require(actor *entity.User, action Action) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if !Allowed(actor.Role, action) {
		return domain.ErrForbidden
	}
	return nil
}

// CanManageEmployee decide si el actor puede modificar la cuenta employee
// objetivo: admin siempre; vendor solo sobre sus propios employees (caminata
// única por la cadena de propiedad); el propio employee solo sobre sí mismo
// (los campos editables se restringen en el caso de uso).
func CanManageEmployee(actor, target *entity.User) error {
	if actor == nil || target == nil {
		return domain.ErrForbidden
	}
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleVendor:
		if target.VendorID != "" && target.VendorID == actor.ID {
			return nil
		}
		return domain.ErrForbidden
	case entity.RoleEmployee:
		if actor.ID == target.ID {
			return nil
		}
		return domain.ErrForbidden
	}
	return domain.ErrForbidden
}

// CanAssignTask valida la asignación de una tarea en el momento de creación:
// admin asigna a cualquiera; un vendor puede asignarse a sí mismo o a un
// employee cuya referencia de vendor sea la suya. Variante estricta: la
// cadena de propiedad se verifica siempre, en todas las rutas de creación.
func CanAssignTask(actor, assignee *entity.User) error {
	if actor == nil || assignee == nil {
		return domain.ErrForbidden
	}
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	if actor.Role != entity.RoleVendor {
		return domain.ErrForbidden
	}
	switch assignee.Role {
	case entity.RoleVendor:
		if assignee.ID == actor.ID {
			return nil
		}
	case entity.RoleEmployee:
		if assignee.VendorID != "" && assignee.VendorID == actor.ID {
			return nil
		}
	}
	return domain.ErrForbidden
}

// CanRegisterRole reglas del registro autenticado: nunca se crea un admin por
// esta vía, y un vendor solo puede crear employees (jamás otro vendor).
func CanRegisterRole(actorRole, newRole string) error {
	if newRole == entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if actorRole == entity.RoleVendor && newRole != entity.RoleEmployee {
		return domain.ErrForbidden
	}
	return nil
}
