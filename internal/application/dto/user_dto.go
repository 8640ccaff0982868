package dto

import (
	"time"

	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

// UserResponse salida de una cuenta (nunca incluye el hash del password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"blocked"`
	VendorID  string    `json:"vendor_id,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse proyecta la entidad a la representación externa.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Blocked:   u.Blocked,
		VendorID:  u.VendorID,
		CreatedBy: u.CreatedBy,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token de sesión (7 días) y la cuenta.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest registro autenticado (admin o vendor). Nunca crea admins;
// un vendor solo puede crear employees (el vendor_id se estampa solo).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=vendor employee"`
	VendorID string `json:"vendor_id" validate:"omitempty,uuid"` // solo admin creando employee
}

// CreateVendorRequest alta de vendor por admin.
type CreateVendorRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"` // vacío -> password por defecto
}

// CreateEmployeeRequest alta de employee (admin indica vendor opcional;
// en la ruta de vendor el vendor_id sale del path y debe coincidir).
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	VendorID string `json:"vendor_id" validate:"omitempty,uuid"`
}

// UpdateAccountRequest actualización por admin (parcial; punteros = sin cambio).
// El rol jamás puede escalarse a admin por esta vía.
type UpdateAccountRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	Role            *string `json:"role"`
	Blocked         *bool   `json:"blocked"`
	VendorID        *string `json:"vendor_id"`
	Username        *string `json:"username"`
	MobileNumber    *string `json:"mobile_number"`
	WhatsappNumber  *string `json:"whatsapp_number"`
	BusinessName    *string `json:"business_name"`
	BusinessAddress *string `json:"business_address"`
	BusinessCity    *string `json:"business_city"`
	City            *string `json:"city"`
	DocumentNumber  *string `json:"document_number"`
}

// UpdateEmployeeLimitedRequest campos que un vendor (sobre sus employees) o el
// propio employee pueden tocar. Nunca rol, bloqueo ni vendor.
type UpdateEmployeeLimitedRequest struct {
	Name           *string `json:"name"`
	MobileNumber   *string `json:"mobile_number"`
	WhatsappNumber *string `json:"whatsapp_number"`
	City           *string `json:"city"`
	DocumentNumber *string `json:"document_number"`
}

// ProfilePayload subobjeto de perfil del endpoint /me (forma histórica
// de la API, conservada para el frontend existente).
type ProfilePayload struct {
	Phone          string `json:"phone,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
	BusinessName   string `json:"businessName,omitempty"`
	Address        string `json:"address,omitempty"`
	LinkedinURL    string `json:"linkedinUrl,omitempty"`
	InstagramURL   string `json:"instagramUrl,omitempty"`
}

// ProfileResponse salida de GET /me.
type ProfileResponse struct {
	Name     string         `json:"name"`
	Username string         `json:"username,omitempty"`
	Email    string         `json:"email"`
	Profile  ProfilePayload `json:"profile"`
}

// ToProfileResponse proyecta la cuenta a la forma del endpoint /me.
func ToProfileResponse(u *entity.User) *ProfileResponse {
	if u == nil {
		return nil
	}
	return &ProfileResponse{
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Profile: ProfilePayload{
			Phone:          u.MobileNumber,
			WhatsappNumber: u.WhatsappNumber,
			BusinessName:   u.BusinessName,
			Address:        u.BusinessAddress,
			LinkedinURL:    u.LinkedinURL,
			InstagramURL:   u.InstagramURL,
		},
	}
}

// UpdateProfileRequest entrada de PUT /me: subconjunto de autoservicio
// (identidad de contacto; nunca rol ni bloqueo).
type UpdateProfileRequest struct {
	Name     string         `json:"name" validate:"required,min=2"`
	Username string         `json:"username" validate:"omitempty,min=3"`
	Email    string         `json:"email" validate:"required,email"`
	Profile  ProfilePayload `json:"profile"`
}
