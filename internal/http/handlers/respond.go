package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"overlaysnow/internal/domain"
	applog "overlaysnow/internal/log"
)

// ErrorResponse is the standard error body: a stable machine code plus a
// human message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var statusByCode = map[string]int{
	domain.ErrCodeNotFound:          fiber.StatusNotFound,
	domain.ErrCodeForbidden:         fiber.StatusForbidden,
	domain.ErrCodeInvalidInput:      fiber.StatusBadRequest,
	domain.ErrCodeEmptyCart:         fiber.StatusBadRequest,
	domain.ErrCodeInvalidTransition: fiber.StatusConflict,
	domain.ErrCodeUnauthorized:      fiber.StatusUnauthorized,
	domain.ErrCodeEmailTaken:        fiber.StatusBadRequest,
}

// fail maps a service error to its HTTP status. Domain errors keep their code
// and message; anything else is logged and masked as a 500.
func fail(c *fiber.Ctx, action string, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		status, ok := statusByCode[de.Code]
		if !ok {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(ErrorResponse{Error: de.Code, Message: de.Message})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "something went wrong, please try again",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   domain.ErrCodeInvalidInput,
		Message: msg,
	})
}
