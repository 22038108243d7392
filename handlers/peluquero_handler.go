package handlers

import (
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/database"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/services"
	"github.com/gofiber/fiber/v2"
)

type CrearPeluqueroRequest struct {
	Nombre       string  `json:"nombre" validate:"required"`
	Especialidad *string `json:"especialidad,omitempty"`
	HoraInicio   string  `json:"horaInicio,omitempty"`
	HoraFin      string  `json:"horaFin,omitempty"`
	DiasLibres   *string `json:"diasLibres,omitempty"`
}

type ActualizarPeluqueroRequest struct {
	Nombre       *string `json:"nombre,omitempty"`
	Especialidad *string `json:"especialidad,omitempty"`
	HoraInicio   *string `json:"horaInicio,omitempty"`
	HoraFin      *string `json:"horaFin,omitempty"`
	DiasLibres   *string `json:"diasLibres,omitempty"`
	Activo       *bool   `json:"activo,omitempty"`
}

type AsociarServicioRequest struct {
	ServicioID uint `json:"servicioId" validate:"required,gt=0"`
}

func CreatePeluquero(c *fiber.Ctx) error {
	var req CrearPeluqueroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.HoraInicio == "" {
		req.HoraInicio = "09:00"
	}
	if req.HoraFin == "" {
		req.HoraFin = "19:00"
	}

	peluquero, err := services.CrearPeluquero(database.DB, services.CrearPeluqueroInput{
		Nombre:       req.Nombre,
		Especialidad: req.Especialidad,
		HoraInicio:   req.HoraInicio,
		HoraFin:      req.HoraFin,
		DiasLibres:   req.DiasLibres,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(peluquero)
}

func GetPeluqueros(c *fiber.Ctx) error {
	peluqueros, err := services.ListarPeluqueros(database.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(peluqueros)
}

func GetPeluquero(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	peluquero, err := services.ObtenerPeluquero(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(peluquero)
}

func UpdatePeluquero(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	var req ActualizarPeluqueroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	peluquero, err := services.ActualizarPeluquero(database.DB, id, services.ActualizarPeluqueroInput{
		Nombre:       req.Nombre,
		Especialidad: req.Especialidad,
		HoraInicio:   req.HoraInicio,
		HoraFin:      req.HoraFin,
		DiasLibres:   req.DiasLibres,
		Activo:       req.Activo,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(peluquero)
}

func DeletePeluquero(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	if err := services.EliminarPeluquero(database.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Peluquero eliminado correctamente"})
}

func AsociarServicio(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	var req AsociarServicioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	asociacion, err := services.AsociarServicio(database.DB, id, req.ServicioID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(asociacion)
}

func DesasociarServicio(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}
	servicioID, err := parseIDParam(c, "servicioId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id de servicio inválido"})
	}

	if err := services.DesasociarServicio(database.DB, id, servicioID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Asociación eliminada correctamente"})
}

func GetServiciosDePeluquero(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	servicios, err := services.ServiciosDePeluquero(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(servicios)
}
