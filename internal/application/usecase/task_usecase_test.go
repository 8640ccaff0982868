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

func taskSetup() (*fakeTaskRepo, *fakeUserRepo, *usecase.TaskUseCase) {
	tasks := newFakeTaskRepo()
	users := newFakeUserRepo()
	return tasks, users, usecase.NewTaskUseCase(tasks, users)
}

func TestTaskCreate_AdminAsignaACualquiera(t *testing.T) {
	_, users, uc := taskSetup()
	users.add(testEmployee("e1", "v2"))

	out, err := uc.Create(testAdmin(), dto.CreateTaskRequest{
		Title: "Llamar al cliente", AssignedTo: "e1", AssignedRole: entity.RoleEmployee,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOpen, out.Status)
	assert.Equal(t, entity.PriorityMedium, out.Priority, "sin prioridad explícita se usa medium")
	require.NotNil(t, out.Assignee)
	assert.Equal(t, "e1", out.Assignee.ID)
}

func TestTaskCreate_VendorASuEmployee(t *testing.T) {
	_, users, uc := taskSetup()
	vendor := users.add(testVendor("v1"))
	users.add(testEmployee("e1", "v1"))

	out, err := uc.Create(vendor, dto.CreateTaskRequest{
		Title: "Visitar el local", AssignedTo: "e1", AssignedRole: entity.RoleEmployee,
		Priority: entity.PriorityHigh,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityHigh, out.Priority)
	assert.Equal(t, "v1", out.CreatedBy)
}

func TestTaskCreate_VendorAEmployeeAjeno_Forbidden(t *testing.T) {
	_, users, uc := taskSetup()
	vendor := users.add(testVendor("v1"))
	users.add(testEmployee("e2", "v2")) // pertenece a otro vendor

	_, err := uc.Create(vendor, dto.CreateTaskRequest{
		Title: "X", AssignedTo: "e2", AssignedRole: entity.RoleEmployee,
	}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"la cadena de propiedad se verifica en toda ruta de creación")
}

func TestTaskCreate_VendorASiMismo(t *testing.T) {
	_, users, uc := taskSetup()
	vendor := users.add(testVendor("v1"))

	_, err := uc.Create(vendor, dto.CreateTaskRequest{
		Title: "Auto-tarea", AssignedTo: "v1", AssignedRole: entity.RoleVendor,
	}, "")
	assert.NoError(t, err)
}

func TestTaskCreate_RutaDeVendorAjena_Forbidden(t *testing.T) {
	_, users, uc := taskSetup()
	vendor := users.add(testVendor("v1"))
	users.add(testEmployee("e1", "v1"))

	// Vendor autenticado v1 posteando bajo /vendors/v2/tasks.
	_, err := uc.Create(vendor, dto.CreateTaskRequest{
		Title: "X", AssignedTo: "e1", AssignedRole: entity.RoleEmployee,
	}, "v2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskCreate_AsignadoInexistente(t *testing.T) {
	_, _, uc := taskSetup()

	_, err := uc.Create(testAdmin(), dto.CreateTaskRequest{
		Title: "X", AssignedTo: "no-existe", AssignedRole: entity.RoleEmployee,
	}, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskCreate_RolDeclaradoNoCoincide(t *testing.T) {
	_, users, uc := taskSetup()
	users.add(testVendor("v1"))

	_, err := uc.Create(testAdmin(), dto.CreateTaskRequest{
		Title: "X", AssignedTo: "v1", AssignedRole: entity.RoleEmployee,
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"assigned_role debe coincidir con el rol real del asignado")
}

func TestTaskCreate_EmployeeNoPuedeCrear(t *testing.T) {
	_, users, uc := taskSetup()
	emp := users.add(testEmployee("e1", "v1"))

	_, err := uc.Create(emp, dto.CreateTaskRequest{
		Title: "X", AssignedTo: "e1", AssignedRole: entity.RoleEmployee,
	}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskUpdate_SoloAdmin(t *testing.T) {
	tasks, users, uc := taskSetup()
	vendor := users.add(testVendor("v1"))
	tasks.Create(&entity.Task{ID: "t1", Title: "Original", Status: entity.StatusOpen, Priority: entity.PriorityLow})

	nuevo := "Cambiado"
	err := uc.Update(vendor, "t1", dto.UpdateTaskRequest{Title: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	status := entity.StatusDone
	err = uc.Update(testAdmin(), "t1", dto.UpdateTaskRequest{Title: &nuevo, Status: &status})
	require.NoError(t, err)

	got, _ := tasks.GetByID("t1")
	assert.Equal(t, "Cambiado", got.Title)
	assert.Equal(t, entity.StatusDone, got.Status)
	assert.Equal(t, entity.PriorityLow, got.Priority, "campos sin puntero no se tocan")
}

func TestTaskUpdate_EstadoInvalido(t *testing.T) {
	tasks, _, uc := taskSetup()
	tasks.Create(&entity.Task{ID: "t1", Status: entity.StatusOpen})

	malo := "archivado"
	err := uc.Update(testAdmin(), "t1", dto.UpdateTaskRequest{Status: &malo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskDelete(t *testing.T) {
	tasks, _, uc := taskSetup()
	tasks.Create(&entity.Task{ID: "t1"})

	assert.ErrorIs(t, uc.Delete(testAdmin(), "no-existe"), domain.ErrNotFound)
	require.NoError(t, uc.Delete(testAdmin(), "t1"))

	got, _ := tasks.GetByID("t1")
	assert.Nil(t, got)
}

func TestTaskListByAssignee_Permisos(t *testing.T) {
	tasks, users, uc := taskSetup()
	vendor := users.add(testVendor("v1"))
	otroVendor := users.add(testVendor("v2"))
	emp := users.add(testEmployee("e1", "v1"))
	tasks.Create(&entity.Task{ID: "t1", Title: "Para e1", AssignedTo: "e1", AssignedRole: entity.RoleEmployee})
	tasks.Create(&entity.Task{ID: "t2", Title: "Para otro", AssignedTo: "e9", AssignedRole: entity.RoleEmployee})

	// El propio employee ve sus tareas.
	list, err := uc.ListByAssignee(emp, "e1", 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "t1", list[0].ID)
	require.NotNil(t, list[0].Assignee, "el resumen del asignado viene resuelto")
	assert.Equal(t, "e1", list[0].Assignee.ID)

	// Su vendor dueño también.
	_, err = uc.ListByAssignee(vendor, "e1", 50, 0)
	assert.NoError(t, err)

	// Un vendor ajeno no.
	_, err = uc.ListByAssignee(otroVendor, "e1", 50, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admin siempre.
	_, err = uc.ListByAssignee(testAdmin(), "e1", 50, 0)
	assert.NoError(t, err)
}
