package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}
