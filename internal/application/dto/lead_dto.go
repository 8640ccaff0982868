package dto

// CreateLeadRequest alta de lead (admin o vendor).
type CreateLeadRequest struct {
	Name   string `json:"name" validate:"required,min=1"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty"`
	Status string `json:"status"` // vacío -> "new"
	Notes  string `json:"notes"`
}

// UpdateLeadRequest actualización parcial de un lead.
type UpdateLeadRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}
