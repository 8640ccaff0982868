package password

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash genera el hash bcrypt de un password en texto plano.
// La sal es aleatoria por llamada: el mismo texto produce hashes distintos.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara un password en texto plano contra un hash almacenado.
// Nunca retorna error: un hash malformado (p. ej. texto plano legado)
// simplemente no verifica. La migración de legados es un paso offline
// explícito (cmd/maintenance), no un camino de runtime.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IsHash detecta si un valor almacenado tiene forma de hash bcrypt
// ($2a$, $2b$ o $2y$). Lo usa la rutina de mantenimiento para encontrar
// passwords guardados en texto plano.
func IsHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}
