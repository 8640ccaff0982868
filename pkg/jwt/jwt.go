package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL vigencia fija del token de sesión: exactamente 7 días desde la emisión.
const TokenTTL = 7 * 24 * time.Hour

// DevSecret secreto por defecto cuando JWT_SECRET no está definido.
// Solo para desarrollo: NO usar en producción.
const DevSecret = "change_this_secret"

// Claims incluye los claims estándar JWT. El Subject es el ID de la cuenta;
// el rol NO viaja en el token: la cuenta se carga de la DB en cada request
// para que bloqueos y cambios de rol apliquen de inmediato.
type Claims struct {
	jwt.RegisteredClaims
}

// Issue genera un token JWT firmado con el ID de la cuenta como subject
// y expiración a 7 días. Si secret está vacío usa DevSecret.
func Issue(secret, issuer, accountID string) (string, error) {
	if accountID == "" {
		return "", fmt.Errorf("jwt: accountID vacío")
	}
	if secret == "" {
		secret = DevSecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// issueWithTTL variante interna para tests (permite expiraciones arbitrarias).
func issueWithTTL(secret, issuer, accountID string, ttl time.Duration) (string, error) {
	if secret == "" {
		secret = DevSecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify valida firma y expiración, y devuelve el ID de cuenta embebido.
// No consulta la DB: cargar la cuenta y comprobar bloqueo es trabajo del caller.
func Verify(secret, tokenString string) (string, error) {
	if secret == "" {
		secret = DevSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, nil
}
