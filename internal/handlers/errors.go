package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"charismaai/interview-coach/internal/services"
)

// FaultHandler renders every error as a {"detail": message} payload. Raw
// stack traces never reach the caller.
func FaultHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"detail": err.Error(),
	})
}

// toHTTPError maps the service fault taxonomy onto HTTP status classes.
// An unreadable document is reported as a client fault: it almost always
// means a bad upload, and it is detected before any external call.
func toHTTPError(err error) *fiber.Error {
	switch {
	case errors.Is(err, services.ErrInvalidRequest),
		errors.Is(err, services.ErrDocumentParse):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
