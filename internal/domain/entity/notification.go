package entity

import "time"

// Audiencias válidas para Notification.
const (
	AudienceVendors   = "vendors"
	AudienceEmployees = "employees"
	AudienceCustom    = "custom"
	AudienceAll       = "all"
)

// ValidAudience indica si el selector de audiencia es uno del enum.
func ValidAudience(a string) bool {
	switch a {
	case AudienceVendors, AudienceEmployees, AudienceCustom, AudienceAll:
		return true
	}
	return false
}

// Notification mensaje de difusión. El "envío" solo calcula el tamaño de la
// audiencia al momento de la llamada; no hay entrega real ni registro de
// entrega (simplificación estructural deliberada).
type Notification struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Audience   string    `json:"audience"`             // vendors | employees | custom | all
	Recipients []string  `json:"recipients,omitempty"` // solo cuando Audience = custom
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
