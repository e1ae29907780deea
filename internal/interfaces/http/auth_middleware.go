package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/domain"
)

// LocalIdentity key de c.Locals donde queda la identidad autenticada.
const LocalIdentity = "identity"

// Authenticator resuelve un bearer token a una identidad.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Identity, error)
}

// AuthMiddleware valida el Bearer Token y adjunta la identidad del usuario
// a c.Locals y al contexto de la petición.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		id, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}
		c.Locals(LocalIdentity, id)
		c.SetUserContext(auth.WithIdentity(c.UserContext(), id))
		return c.Next()
	}
}

// bearerToken extrae el token de "Bearer <token>".
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domain.ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", domain.ErrInvalidToken
	}
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return "", domain.ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAdmin permite continuar solo a identidades con rol admin.
// Debe encadenarse después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := GetIdentity(c)
		if !ok {
			return domain.ErrMissingToken
		}
		if !id.IsAdmin() {
			return domain.ErrAdminRequired
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad cargada por AuthMiddleware.
func GetIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(auth.Identity)
	return id, ok
}

// mustIdentity para handlers montados detrás de AuthMiddleware.
func mustIdentity(c *fiber.Ctx) (auth.Identity, error) {
	id, ok := GetIdentity(c)
	if !ok {
		return auth.Identity{}, domain.ErrMissingToken
	}
	return id, nil
}

// cacheControl fija la cabecera Cache-Control de la respuesta.
func cacheControl(value string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, value)
		return c.Next()
	}
}
