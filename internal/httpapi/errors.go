package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

// writeError translates the domain error taxonomy into a status code and a
// JSON body. Internal failures are logged and reported generically.
func (s *Server) writeError(c *fiber.Ctx, err error) error {
	body := fiber.Map{"ok": false, "error": err.Error()}

	var upstream *domain.UpstreamError
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrAuthentication):
		status = fiber.StatusUnauthorized
		body["error"] = "unauthorized"
	case errors.Is(err, domain.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
	case errors.As(err, &upstream):
		status = fiber.StatusBadGateway
		body["error"] = "upstream request failed"
		body["upstreamStatus"] = upstream.Status
	case errors.Is(err, domain.ErrUpstream):
		status = fiber.StatusBadGateway
		body["error"] = "upstream request failed"
	default:
		body["error"] = "internal error"
	}

	logger := s.logger.With(
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"error", err,
	)
	if status >= fiber.StatusInternalServerError {
		logger.Error("request failed")
	} else {
		logger.Debug("request rejected")
	}

	return c.Status(status).JSON(body)
}
