package serverutils

import (
	"errors"

	"admission-advisor-be/internal/repository/contract"
	"admission-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorHandlerMiddleware converts errors returned by handlers into JSON
// error responses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ErrorHandler(ctx, err)
	}
}

// ErrorHandler maps domain errors to HTTP statuses so controllers can
// just return errors.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrEmptyText):
		code = fiber.StatusBadRequest
	case errors.Is(err, contract.ErrCheckpointNotFound):
		code = fiber.StatusNotFound
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
	}

	return ctx.Status(code).JSON(APIResponse{
		Success: false,
		Message: err.Error(),
	})
}
