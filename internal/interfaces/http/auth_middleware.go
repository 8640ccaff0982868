package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/policy"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/jwt"
)

// LocalAccount key de la cuenta cargada en c.Locals tras el middleware de auth.
const LocalAccount = "account"

// AccountLoader contrato mínimo del gate de autenticación para cargar la
// cuenta del token. Lo implementa el UserRepository; la interfaz evita
// acoplar el middleware al puerto completo.
type AccountLoader interface {
	GetByID(id string) (*entity.User, error)
}

// AuthMiddleware gate de autenticación: Bearer token → verificación de firma
// y expiración → carga de la cuenta → rechazo de bloqueadas. El rol NO se
// toma del token; siempre de la cuenta recién cargada.
func AuthMiddleware(jwtSecret string, loader AccountLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		accountID, err := jwt.Verify(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		account, err := loader.GetByID(accountID)
		if err != nil {
			if errors.Is(err, domain.ErrUnavailable) {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if account == nil {
			// Token válido pero cuenta borrada después de emitirlo.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Message: "la cuenta del token ya no existe"})
		}
		if account.Blocked {
			// Identidad válida pero vetada: 403, distinto del 401 de no autenticado.
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "BLOCKED", Message: "cuenta bloqueada"})
		}
		c.Locals(LocalAccount, account)
		return c.Next()
	}
}

// GetAccount devuelve la cuenta autenticada del contexto (tras AuthMiddleware).
func GetAccount(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalAccount)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// RequireAction role-gate por la tabla central de políticas. Debe usarse
// DESPUÉS de AuthMiddleware. La comprobación de propiedad, cuando aplica,
// vive en el caso de uso; este middleware solo corta por rol.
func RequireAction(action policy.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		account := GetAccount(c)
		if account == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
		}
		if !policy.Allowed(account.Role, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
		}
		return c.Next()
	}
}
