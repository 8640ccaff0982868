package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

// NotificationHandler CRUD de notificaciones y el conteo de audiencia
// que hace de "envío".
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear notificación
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "título, mensaje y audiencia"
// @Success      201   {object}  entity.Notification
// @Router       /api/notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fields := dto.FieldErrors{}
	if in.Title == "" {
		fields.Add("title", "requerido")
	}
	if in.Message == "" {
		fields.Add("message", "requerido")
	}
	if !entity.ValidAudience(in.Audience) {
		fields.Add("audience", "debe ser vendors, employees, custom o all")
	}
	if in.Audience == entity.AudienceCustom {
		if len(in.Recipients) == 0 {
			fields.Add("recipients", "requerido para audiencia custom")
		}
		for _, r := range in.Recipients {
			if _, err := uuid.Parse(r); err != nil {
				fields.Add("recipients", "todos los ids deben ser UUID válidos")
				break
			}
		}
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	n, err := h.uc.Create(GetAccount(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

// List listado paginado de notificaciones.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.uc.List(GetAccount(c), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// Update actualización parcial de una notificación.
func (h *NotificationHandler) Update(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	var in dto.UpdateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Audience != nil && !entity.ValidAudience(*in.Audience) {
		return validationFailed(c, dto.FieldErrors{"audience": "debe ser vendors, employees, custom o all"})
	}
	if err := h.uc.Update(GetAccount(c), id, in); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Delete borrado de una notificación.
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	if err := h.uc.Delete(GetAccount(c), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Send godoc
// @Summary      Enviar notificación (solo conteo de audiencia)
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "id de la notificación"
// @Success      200  {object}  dto.SendResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/send [post]
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	id, fieldErrs := pathID(c, "id")
	if fieldErrs != nil {
		return validationFailed(c, fieldErrs)
	}
	out, err := h.uc.Send(GetAccount(c), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
