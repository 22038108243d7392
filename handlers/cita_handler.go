package handlers

import (
	"fmt"
	"time"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/database"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/notifications"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/services"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/websocket"
	"github.com/gofiber/fiber/v2"
)

type CrearCitaRequest struct {
	FechaHora       string  `json:"fechaHora" validate:"required"`
	PeluqueroID     uint    `json:"peluqueroId" validate:"required,gt=0"`
	ServicioID      uint    `json:"servicioId" validate:"required,gt=0"`
	NombreCliente   string  `json:"nombreCliente" validate:"required"`
	EmailCliente    string  `json:"emailCliente" validate:"required,email"`
	TelefonoCliente *string `json:"telefonoCliente,omitempty"`
	Notas           *string `json:"notas,omitempty"`
}

type ActualizarCitaRequest struct {
	FechaHora       *string `json:"fechaHora,omitempty"`
	PeluqueroID     *uint   `json:"peluqueroId,omitempty" validate:"omitempty,gt=0"`
	ServicioID      *uint   `json:"servicioId,omitempty" validate:"omitempty,gt=0"`
	NombreCliente   *string `json:"nombreCliente,omitempty"`
	EmailCliente    *string `json:"emailCliente,omitempty" validate:"omitempty,email"`
	TelefonoCliente *string `json:"telefonoCliente,omitempty"`
	Notas           *string `json:"notas,omitempty"`
	Estado          *string `json:"estado,omitempty" validate:"omitempty,oneof=Pendiente Pagada Completada Cancelada"`
}

func CreateCita(c *fiber.Ctx) error {
	var req CrearCitaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fechaHora, err := time.Parse(time.RFC3339, req.FechaHora)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fecha inválida, use formato RFC3339 (2025-10-26T14:00:00Z)"})
	}

	cita, err := services.CrearCita(database.DB, services.CrearCitaInput{
		FechaHora:       fechaHora,
		PeluqueroID:     req.PeluqueroID,
		ServicioID:      req.ServicioID,
		NombreCliente:   req.NombreCliente,
		EmailCliente:    req.EmailCliente,
		TelefonoCliente: req.TelefonoCliente,
		Notas:           req.Notas,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	go websocket.Publicar(websocket.EventoCitaCreada, cita)
	go notifications.SendEmail(
		cita.NombreCliente, cita.EmailCliente,
		"Tu cita está reservada",
		fmt.Sprintf("<h1>Cita reservada</h1><p>Hola %s, tu cita de %s con %s quedó reservada para el %s.</p>",
			cita.NombreCliente, cita.Servicio.Nombre, cita.Peluquero.Nombre,
			cita.FechaHora.Format("02/01/2006 15:04")),
	)

	return c.Status(fiber.StatusCreated).JSON(cita)
}

func GetCitas(c *fiber.Ctx) error {
	citas, err := services.ListarCitas(database.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(citas)
}

func GetCita(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	cita, err := services.ObtenerCita(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(cita)
}

func UpdateCita(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	var req ActualizarCitaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	in := services.ActualizarCitaInput{
		PeluqueroID:     req.PeluqueroID,
		ServicioID:      req.ServicioID,
		NombreCliente:   req.NombreCliente,
		EmailCliente:    req.EmailCliente,
		TelefonoCliente: req.TelefonoCliente,
		Notas:           req.Notas,
		Estado:          req.Estado,
	}
	if req.FechaHora != nil {
		fechaHora, err := time.Parse(time.RFC3339, *req.FechaHora)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fecha inválida, use formato RFC3339 (2025-10-26T14:00:00Z)"})
		}
		in.FechaHora = &fechaHora
	}

	cita, err := services.ActualizarCita(database.DB, id, in)
	if err != nil {
		return respondServiceError(c, err)
	}

	if req.Estado != nil && *req.Estado == "Cancelada" {
		go websocket.Publicar(websocket.EventoCitaCancelada, cita)
	}

	return c.JSON(cita)
}

func DeleteCita(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	if err := services.EliminarCita(database.DB, id); err != nil {
		return respondServiceError(c, err)
	}

	go websocket.Publicar(websocket.EventoCitaCancelada, fiber.Map{"id": id})

	return c.JSON(fiber.Map{"message": "Cita eliminada correctamente"})
}
