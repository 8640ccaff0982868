package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
)

// LeadHandler CRUD de leads (admin y vendor).
type LeadHandler struct {
	uc *usecase.LeadUseCase
}

// NewLeadHandler construye el handler de leads.
func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "datos del lead"
// @Success      201   {object}  entity.Lead
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fields := dto.FieldErrors{}
	if in.Name == "" {
		fields.Add("name", "requerido")
	}
	if in.Email != "" && !dto.IsEmail(in.Email) {
		fields.Add("email", "debe ser un email válido")
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	lead, err := h.uc.Create(GetAccount(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

// List listado paginado de leads.
func (h *LeadHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	leads, err := h.uc.List(GetAccount(c), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(leads)
}

// Update actualización parcial de un lead.
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email != nil && *in.Email != "" && !dto.IsEmail(*in.Email) {
		return validationFailed(c, dto.FieldErrors{"email": "debe ser un email válido"})
	}
	if err := h.uc.Update(GetAccount(c), id, in); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Block marca el lead como bloqueado.
func (h *LeadHandler) Block(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	if err := h.uc.Block(GetAccount(c), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
