package handlers

import (
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/database"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/services"
	"github.com/gofiber/fiber/v2"
)

type CrearServicioRequest struct {
	Nombre          string  `json:"nombre" validate:"required"`
	Descripcion     *string `json:"descripcion,omitempty"`
	Precio          float64 `json:"precio" validate:"required,gt=0"`
	DuracionMinutos int     `json:"duracionMinutos,omitempty" validate:"omitempty,gt=0"`
}

type ActualizarServicioRequest struct {
	Nombre          *string  `json:"nombre,omitempty"`
	Descripcion     *string  `json:"descripcion,omitempty"`
	Precio          *float64 `json:"precio,omitempty" validate:"omitempty,gt=0"`
	DuracionMinutos *int     `json:"duracionMinutos,omitempty" validate:"omitempty,gt=0"`
}

func CreateServicio(c *fiber.Ctx) error {
	var req CrearServicioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	servicio, err := services.CrearServicio(database.DB, services.CrearServicioInput{
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		Precio:          req.Precio,
		DuracionMinutos: req.DuracionMinutos,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(servicio)
}

func GetServicios(c *fiber.Ctx) error {
	servicios, err := services.ListarServicios(database.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(servicios)
}

func GetServicio(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	servicio, err := services.ObtenerServicio(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(servicio)
}

func UpdateServicio(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	var req ActualizarServicioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	servicio, err := services.ActualizarServicio(database.DB, id, services.ActualizarServicioInput{
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		Precio:          req.Precio,
		DuracionMinutos: req.DuracionMinutos,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(servicio)
}

func DeleteServicio(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	if err := services.EliminarServicio(database.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Servicio eliminado correctamente"})
}
