package middleware

import (
	"quill/internal/domain"
	"quill/internal/export"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	// ValidatedQuizIDKey holds the checked :id path parameter.
	ValidatedQuizIDKey = "validated_quiz_id"
	// ValidatedExportFormatKey holds the parsed :format path parameter.
	ValidatedExportFormatKey = "validated_export_format"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuizID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := c.Params("id")

		if errors := vm.validator.ValidateQuizID(quizID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedQuizIDKey, quizID)
		return c.Next()
	}
}

// ValidateExportFormat validates and parses the :format path parameter
func (vm *ValidationMiddleware) ValidateExportFormat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("format")

		format, err := export.ParseFormat(raw)
		if err != nil {
			return domain.ValidationErrors{
				domain.NewInvalidFormatError("format", raw),
			}
		}

		c.Locals(ValidatedExportFormatKey, format)
		return c.Next()
	}
}
