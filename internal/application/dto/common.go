package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors acumula errores de validación por campo.
type FieldErrors map[string]string

// Add registra el error de un campo (el primero gana).
func (f FieldErrors) Add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

// ValidationErrorResponse error de validación con detalle por campo.
// Nada se persiste cuando hay al menos un campo inválido.
type ValidationErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Fields  FieldErrors `json:"fields"`
}

// NewValidationError construye la respuesta estándar de validación.
func NewValidationError(fields FieldErrors) *ValidationErrorResponse {
	return &ValidationErrorResponse{
		Code:    "VALIDATION",
		Message: "uno o más campos son inválidos",
		Fields:  fields,
	}
}

// OKResponse respuesta mínima para mutaciones sin cuerpo útil.
type OKResponse struct {
	OK bool `json:"ok"`
}
