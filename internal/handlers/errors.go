package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"moodboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// newValidator returns a validator that reports fields by their JSON name.
// notblank rejects whitespace-only strings.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// bindRequest parses the body into req and validates it. When ok is false a
// 400 response has been written and err is what the handler must return.
func bindRequest(c *fiber.Ctx, v *validator.Validate, req interface{}) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := v.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

// statusFor maps the service error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateName):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrUnknownMood):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrProviderUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the error payload. Server-side failures are logged and
// their details withheld from the client.
func respondError(c *fiber.Ctx, logger *zap.SugaredLogger, err error, message string) error {
	status := statusFor(err)
	errText := err.Error()
	if status == fiber.StatusInternalServerError {
		logger.Errorw(message, "path", c.Path(), "error", err)
		errText = rootMessage(err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errText,
	})
}

// rootMessage keeps only the taxonomy part of a wrapped service error.
func rootMessage(err error) string {
	for _, known := range []error{services.ErrCreationFailed, services.ErrUpdateFailed, services.ErrDeletionFailed} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal server error"
}
