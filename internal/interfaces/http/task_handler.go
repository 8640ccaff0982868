package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

// TaskHandler CRUD de tareas con verificación de cadena de propiedad.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func validateCreateTask(in dto.CreateTaskRequest) dto.FieldErrors {
	fields := dto.FieldErrors{}
	if in.Title == "" {
		fields.Add("title", "requerido")
	}
	if _, err := uuid.Parse(in.AssignedTo); err != nil {
		fields.Add("assigned_to", "debe ser un UUID válido")
	}
	if in.AssignedRole != entity.RoleVendor && in.AssignedRole != entity.RoleEmployee {
		fields.Add("assigned_role", "debe ser vendor o employee")
	}
	if in.Priority != "" && !entity.ValidPriority(in.Priority) {
		fields.Add("priority", "debe ser low, medium o high")
	}
	return fields
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "título, asignado y rol"
// @Success      201   {object}  dto.TaskResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if fields := validateCreateTask(in); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	task, err := h.uc.Create(GetAccount(c), in, "")
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// List listado paginado con el resumen del asignado resuelto.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	tasks, err := h.uc.List(GetAccount(c), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(tasks)
}

// Update actualización parcial de una tarea.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fields := dto.FieldErrors{}
	if in.Priority != nil && !entity.ValidPriority(*in.Priority) {
		fields.Add("priority", "debe ser low, medium o high")
	}
	if in.Status != nil && !entity.ValidTaskStatus(*in.Status) {
		fields.Add("status", "debe ser open, in_progress o done")
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	if err := h.uc.Update(GetAccount(c), id, in); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Delete borrado de una tarea.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	if err := h.uc.Delete(GetAccount(c), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// ListByEmployee tareas asignadas a una cuenta concreta.
func (h *TaskHandler) ListByEmployee(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	tasks, err := h.uc.ListByAssignee(GetAccount(c), id, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(tasks)
}
