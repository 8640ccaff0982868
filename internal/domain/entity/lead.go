package entity

import "time"

// LeadStatusNew estado inicial de un lead recién capturado.
// El estado es texto libre (pipeline configurable por el cliente), solo
// el valor por defecto está fijado.
const LeadStatusNew = "new"

// Lead contacto prospecto. "Blocked" es un flag suave, no un borrado.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	Blocked   bool      `json:"blocked"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
