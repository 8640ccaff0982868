package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Roles válidos para User. Enum cerrado: cualquier otro valor es entrada inválida.
const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleEmployee = "employee"
	RoleLead     = "lead"
)

// ValidRole indica si el rol pertenece al enum cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleVendor, RoleEmployee, RoleLead:
		return true
	}
	return false
}

// User representa una cuenta autenticable del CRM (admin, vendor, employee)
// o un contacto lead con identidad. El hash del password nunca se serializa.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // almacenado en forma case-folded
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Blocked      bool      `json:"blocked"`
	CreatedBy    string    `json:"created_by,omitempty"` // admin o vendor que creó la cuenta
	VendorID     string    `json:"vendor_id,omitempty"`  // solo para employees: vendor dueño

	// Campos de perfil (opcionales, planos tras la migración del profile legado)
	Username        string `json:"username,omitempty"`
	MobileNumber    string `json:"mobile_number,omitempty"`
	WhatsappNumber  string `json:"whatsapp_number,omitempty"`
	BusinessName    string `json:"business_name,omitempty"`
	BusinessAddress string `json:"business_address,omitempty"`
	BusinessCity    string `json:"business_city,omitempty"`
	City            string `json:"city,omitempty"`
	DocumentNumber  string `json:"document_number,omitempty"` // documento de identidad, numérico de 12 dígitos
	LinkedinURL     string `json:"linkedin_url,omitempty"`
	InstagramURL    string `json:"instagram_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// emailFolder aplica case folding Unicode completo (no solo ASCII lower).
var emailFolder = cases.Fold()

// NormalizeEmail devuelve la forma canónica de un email para almacenamiento
// y comparación: recortado y case-folded. La unicidad de email es
// case-insensitive sobre esta forma.
func NormalizeEmail(email string) string {
	return emailFolder.String(strings.TrimSpace(email))
}
