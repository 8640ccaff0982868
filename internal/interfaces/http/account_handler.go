package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

// AccountHandler administración de vendors y employees, más el perfil propio.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// pathID valida que el parámetro de ruta sea un UUID.
func pathID(c *fiber.Ctx, name string) (string, dto.FieldErrors) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", dto.FieldErrors{name: "debe ser un UUID válido"}
	}
	return id, nil
}

// ListVendors listado de vendors para el panel de admin.
func (h *AccountHandler) ListVendors(c *fiber.Ctx) error {
	return h.listByRole(c, entity.RoleVendor)
}

// ListEmployees listado de employees para el panel de admin.
func (h *AccountHandler) ListEmployees(c *fiber.Ctx) error {
	return h.listByRole(c, entity.RoleEmployee)
}

func (h *AccountHandler) listByRole(c *fiber.Ctx, role string) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.uc.ListByRole(GetAccount(c), role, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// CreateVendor godoc
// @Summary      Crear vendor (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendorRequest  true  "name, email, password opcional"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/vendors [post]
func (h *AccountHandler) CreateVendor(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if fields := validateNewAccount(in.Name, in.Email, in.Password); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	user, err := h.uc.CreateVendor(GetAccount(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// CreateEmployee alta de employee por admin (vendor opcional en el cuerpo).
func (h *AccountHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if fields := validateNewAccount(in.Name, in.Email, in.Password); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	user, err := h.uc.CreateEmployee(GetAccount(c), in, "")
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func validateNewAccount(name, email, pass string) dto.FieldErrors {
	fields := dto.FieldErrors{}
	if name == "" {
		fields.Add("name", "requerido")
	}
	if !dto.IsEmail(email) {
		fields.Add("email", "debe ser un email válido")
	}
	if pass != "" && len(pass) < 6 {
		fields.Add("password", "mínimo 6 caracteres")
	}
	return fields
}

// UpdateAccount actualización administrativa de un vendor o employee.
func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fields := dto.FieldErrors{}
	if in.Email != nil && !dto.IsEmail(*in.Email) {
		fields.Add("email", "debe ser un email válido")
	}
	if in.Password != nil && *in.Password != "" && len(*in.Password) < 6 {
		fields.Add("password", "mínimo 6 caracteres")
	}
	if in.MobileNumber != nil && *in.MobileNumber != "" && !dto.IsDigits(*in.MobileNumber, 10) {
		fields.Add("mobile_number", "debe tener 10 dígitos")
	}
	if in.WhatsappNumber != nil && *in.WhatsappNumber != "" && !dto.IsDigits(*in.WhatsappNumber, 10) {
		fields.Add("whatsapp_number", "debe tener 10 dígitos")
	}
	if in.DocumentNumber != nil && *in.DocumentNumber != "" && !dto.IsDigits(*in.DocumentNumber, 12) {
		fields.Add("document_number", "debe tener 12 dígitos")
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	if err := h.uc.UpdateAccount(GetAccount(c), id, in); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// DeleteAccount borrado administrativo.
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	if err := h.uc.DeleteAccount(GetAccount(c), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Block marca la cuenta como bloqueada.
func (h *AccountHandler) Block(c *fiber.Ctx) error {
	return h.setBlocked(c, true)
}

// Unblock quita el bloqueo.
func (h *AccountHandler) Unblock(c *fiber.Ctx) error {
	return h.setBlocked(c, false)
}

func (h *AccountHandler) setBlocked(c *fiber.Ctx, blocked bool) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	if err := h.uc.SetBlocked(GetAccount(c), id, blocked); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// UpdateEmployeeLimited subconjunto editable por el propio employee o por el
// vendor dueño (nombre, teléfonos, ciudad y documento).
func (h *AccountHandler) UpdateEmployeeLimited(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	var in dto.UpdateEmployeeLimitedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fields := dto.FieldErrors{}
	if in.MobileNumber != nil && *in.MobileNumber != "" && !dto.IsDigits(*in.MobileNumber, 10) {
		fields.Add("mobile_number", "debe tener 10 dígitos")
	}
	if in.WhatsappNumber != nil && *in.WhatsappNumber != "" && !dto.IsDigits(*in.WhatsappNumber, 10) {
		fields.Add("whatsapp_number", "debe tener 10 dígitos")
	}
	if in.DocumentNumber != nil && *in.DocumentNumber != "" && !dto.IsDigits(*in.DocumentNumber, 12) {
		fields.Add("document_number", "debe tener 12 dígitos")
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	if err := h.uc.UpdateEmployeeLimited(GetAccount(c), id, in); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// GetMe perfil propio (forma histórica con subobjeto profile).
func (h *AccountHandler) GetMe(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(GetAccount(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe autoservicio del subconjunto restringido del perfil.
func (h *AccountHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fields := dto.FieldErrors{}
	if len(in.Name) < 2 {
		fields.Add("name", "mínimo 2 caracteres")
	}
	if in.Username != "" && len(in.Username) < 3 {
		fields.Add("username", "mínimo 3 caracteres")
	}
	if !dto.IsEmail(in.Email) {
		fields.Add("email", "debe ser un email válido")
	}
	if in.Profile.Phone != "" && !dto.IsDigits(in.Profile.Phone, 10) {
		fields.Add("profile.phone", "debe tener 10 dígitos")
	}
	if in.Profile.WhatsappNumber != "" && !dto.IsDigits(in.Profile.WhatsappNumber, 10) {
		fields.Add("profile.whatsappNumber", "debe tener 10 dígitos")
	}
	if in.Profile.BusinessName != "" && len(in.Profile.BusinessName) < 2 {
		fields.Add("profile.businessName", "mínimo 2 caracteres")
	}
	if in.Profile.Address != "" && len(in.Profile.Address) < 5 {
		fields.Add("profile.address", "mínimo 5 caracteres")
	}
	if in.Profile.LinkedinURL != "" && !dto.IsURL(in.Profile.LinkedinURL) {
		fields.Add("profile.linkedinUrl", "debe ser una URL válida")
	}
	if in.Profile.InstagramURL != "" && !dto.IsURL(in.Profile.InstagramURL) {
		fields.Add("profile.instagramUrl", "debe ser una URL válida")
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	if err := h.uc.UpdateProfile(GetAccount(c), in); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
