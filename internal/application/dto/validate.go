package dto

import (
	"net/url"
	"regexp"
)

// Validación manual al estilo del resto del proyecto: los tags validate son
// documentación; las comprobaciones reales viven aquí y en los handlers.
var (
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
)

// IsEmail comprueba la forma básica de un email.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsDigits comprueba que s sea numérico con exactamente n dígitos
// (teléfonos de 10, documento de identidad de 12).
func IsDigits(s string, n int) bool {
	return len(s) == n && digitsRe.MatchString(s)
}

// IsURL comprueba la forma de una URL absoluta http(s)
// (campos opcionales de redes sociales).
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
