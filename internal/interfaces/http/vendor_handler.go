package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
)

// VendorHandler rutas anidadas bajo /api/vendors/:vendorId. El id de la ruta
// se contrasta contra el vendor autenticado dentro del caso de uso.
type VendorHandler struct {
	accounts *usecase.AccountUseCase
	tasks    *usecase.TaskUseCase
}

// NewVendorHandler construye el handler de rutas de vendor.
func NewVendorHandler(accounts *usecase.AccountUseCase, tasks *usecase.TaskUseCase) *VendorHandler {
	return &VendorHandler{accounts: accounts, tasks: tasks}
}

// CreateEmployee godoc
// @Summary      Crear employee bajo un vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        vendorId  path  string  true  "id del vendor"
// @Param        body      body  dto.CreateEmployeeRequest  true  "name, email, password opcional"
// @Success      201  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/vendors/{vendorId}/employees [post]
func (h *VendorHandler) CreateEmployee(c *fiber.Ctx) error {
	vendorID, fieldErrs := pathID(c, "vendorId")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if fields := validateNewAccount(in.Name, in.Email, in.Password); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	user, err := h.accounts.CreateEmployee(GetAccount(c), in, vendorID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// CreateTask alta de tarea bajo un vendor, con chequeo de desajuste de ruta
// y de la cadena de propiedad sobre el asignado.
func (h *VendorHandler) CreateTask(c *fiber.Ctx) error {
	vendorID, fieldErrs := pathID(c, "vendorId")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if fields := validateCreateTask(in); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	task, err := h.tasks.Create(GetAccount(c), in, vendorID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}
