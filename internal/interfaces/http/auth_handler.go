package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/auth"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

// AuthHandler maneja login y registro.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fields := dto.FieldErrors{}
	if !dto.IsEmail(in.Email) {
		fields.Add("email", "debe ser un email válido")
	}
	if in.Password == "" {
		fields.Add("password", "requerido")
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar cuenta (requiere sesión de admin o vendor)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fields := dto.FieldErrors{}
	if in.Name == "" {
		fields.Add("name", "requerido")
	}
	if !dto.IsEmail(in.Email) {
		fields.Add("email", "debe ser un email válido")
	}
	if len(in.Password) < 6 {
		fields.Add("password", "mínimo 6 caracteres")
	}
	if in.Role != entity.RoleVendor && in.Role != entity.RoleEmployee {
		fields.Add("role", "debe ser vendor o employee")
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	user, err := h.uc.Register(GetAccount(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
