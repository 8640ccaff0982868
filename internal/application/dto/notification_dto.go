package dto

// CreateNotificationRequest alta de notificación (solo admin).
// Recipients solo se usa cuando audience = custom.
type CreateNotificationRequest struct {
	Title      string   `json:"title" validate:"required,min=1"`
	Message    string   `json:"message" validate:"required,min=1"`
	Audience   string   `json:"audience" validate:"required,oneof=vendors employees custom all"`
	Recipients []string `json:"recipients" validate:"omitempty,dive,uuid"`
}

// UpdateNotificationRequest actualización parcial.
type UpdateNotificationRequest struct {
	Title      *string   `json:"title"`
	Message    *string   `json:"message"`
	Audience   *string   `json:"audience"`
	Recipients *[]string `json:"recipients"`
}

// SendResponse resultado del "envío": solo la cardinalidad de la audiencia
// al momento de la llamada. No hay entrega real.
type SendResponse struct {
	Recipients int `json:"recipients"`
}

// DashboardResponse conteos para el dashboard de admin.
type DashboardResponse struct {
	Vendors       int `json:"vendors"`
	Employees     int `json:"employees"`
	Leads         int `json:"leads"`
	Notifications int `json:"notifications"`
}
