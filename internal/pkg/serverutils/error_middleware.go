package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studyhub-be/internal/apperror"
)

// ErrorHandlerMiddleware converts errors escaping the handlers into the
// JSON error envelope. Application errors carry their own HTTP mapping;
// anything unrecognized becomes a 500 with a generic message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: validationErr.Error(),
				Errors:  validationErr.Fields,
			})
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			res := ErrorResponse{Message: appErr.Message}
			if appErr.Field != "" {
				res.Errors = []FieldError{{Field: appErr.Field, Message: appErr.Message}}
			}
			return ctx.Status(statusFor(appErr)).JSON(res)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse{
				Message: fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
		})
	}
}

func statusFor(err *apperror.AppError) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperror.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
