package handlers

import (
	"errors"
	"strconv"

	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var cfg *config.Config

// Setup injects the process configuration, loaded once in main.
func Setup(c *config.Config) {
	cfg = c
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// respondServiceError maps the service error taxonomy to HTTP statuses:
// NotFound 404, Conflict 409, anything else 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nf.Error()})
	}
	var cf *services.ConflictError
	if errors.As(err, &cf) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": cf.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error interno del servidor"})
}
