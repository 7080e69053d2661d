package errors

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaisePermissionsError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "lack of permissions", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

// RaiseValidationError maps validator.v10 field errors to a per-field
// response body; any other error falls back to a plain bad request.
func RaiseValidationError(context *fiber.Ctx, err error) error {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return RaiseBadRequestError(context, err.Error())
	}

	details := make(map[string]string)
	for _, fieldErr := range fieldErrors {
		details[fieldErr.Field()] = fieldErr.Tag()
	}

	return context.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": "validation failed",
		"data":    details})
}
