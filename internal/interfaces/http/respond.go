package http

import (
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/pkg/logger"
)

var errInvalidBody = fmt.Errorf("invalid request body: %w", domain.ErrBadRequest)

// errorEntry código y mensaje públicos para un sentinel concreto.
type errorEntry struct {
	err     error
	status  int
	code    string
	message string
}

// El orden importa: los sentinels específicos van antes que su categoría.
var errorTable = []errorEntry{
	{domain.ErrInvalidID, fiber.StatusBadRequest, "INVALID_ID", "invalid identifier"},
	{domain.ErrInvalidRole, fiber.StatusBadRequest, "INVALID_ROLE", `invalid role, must be "user" or "admin"`},
	{domain.ErrSelfDeactivation, fiber.StatusBadRequest, "SELF_DEACTIVATION", "cannot deactivate own account"},
	{errInvalidBody, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body"},
	{domain.ErrBadRequest, fiber.StatusBadRequest, "BAD_REQUEST", "bad request"},

	{domain.ErrMissingToken, fiber.StatusUnauthorized, "MISSING_TOKEN", "no token supplied"},
	{domain.ErrInvalidToken, fiber.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"},
	{domain.ErrTokenUserNotFound, fiber.StatusUnauthorized, "USER_NOT_FOUND", "user not found"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"},

	{domain.ErrAdminRequired, fiber.StatusForbidden, "ADMIN_REQUIRED", "admin role required"},
	{domain.ErrNotOwner, fiber.StatusForbidden, "NOT_OWNER", "not permitted to modify this resource"},
	{domain.ErrInactiveAccount, fiber.StatusForbidden, "ACCOUNT_INACTIVE", "account is inactive"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "forbidden"},

	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND", "user not found"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "resource not found"},
}

// classify traduce un error a status HTTP y cuerpo. ok=false significa error interno.
func classify(err error) (int, dto.ErrorResponse, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "validation error",
			Errors:  verr.Fields,
		}, true
	}
	var dup *domain.DuplicateKeyError
	if errors.As(err, &dup) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "DUPLICATE_KEY", Message: dup.Error()}, true
	}
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return e.status, dto.ErrorResponse{Code: e.code, Message: e.message}, true
		}
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) && ferr.Code < fiber.StatusInternalServerError {
		return ferr.Code, dto.ErrorResponse{Code: fiberCode(ferr.Code), Message: ferr.Message}, true
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"}, false
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMITED"
	case fiber.StatusUnprocessableEntity, fiber.StatusBadRequest:
		return "INVALID_BODY"
	default:
		return "BAD_REQUEST"
	}
}

// respondError escribe el sobre de error. Los errores internos se registran
// con su causa y se reportan a Sentry si está activo.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, body, ok := classify(err)
	if !ok {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("path", c.Path())
				hub.CaptureException(err)
			})
		}
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler handler de errores de Fiber: todo error devuelto por un handler
// o middleware termina en el mismo sobre.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return respondError(c, log, err)
	}
}

func respondOK(c *fiber.Ctx, status int, body dto.Response) error {
	return c.Status(status).JSON(body)
}
