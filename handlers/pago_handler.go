package handlers

import (
	"strconv"
	"time"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/database"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/services"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/websocket"
	"github.com/gofiber/fiber/v2"
)

type CrearPagoRequest struct {
	CitaID        uint    `json:"citaId" validate:"required,gt=0"`
	Monto         float64 `json:"monto" validate:"required,gt=0"`
	Metodo        *string `json:"metodo,omitempty"`
	TransaccionID *string `json:"transaccionId,omitempty"`
	PagadoEn      *string `json:"pagadoEn,omitempty"`
}

type ActualizarPagoRequest struct {
	CitaID        *uint    `json:"citaId,omitempty" validate:"omitempty,gt=0"`
	Monto         *float64 `json:"monto,omitempty" validate:"omitempty,gt=0"`
	Metodo        *string  `json:"metodo,omitempty"`
	Estado        *string  `json:"estado,omitempty" validate:"omitempty,oneof=Pendiente Completado Fallido"`
	TransaccionID *string  `json:"transaccionId,omitempty"`
	PagadoEn      *string  `json:"pagadoEn,omitempty"`
}

func parsePagadoEn(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func CreatePago(c *fiber.Ctx) error {
	var req CrearPagoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pagadoEn, err := parsePagadoEn(req.PagadoEn)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fecha de pago inválida, use formato RFC3339"})
	}

	pago, err := services.CrearPago(database.DB, services.CrearPagoInput{
		CitaID:        req.CitaID,
		Monto:         req.Monto,
		Metodo:        req.Metodo,
		TransaccionID: req.TransaccionID,
		PagadoEn:      pagadoEn,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	go websocket.Publicar(websocket.EventoPagoRegistrado, pago)

	return c.Status(fiber.StatusCreated).JSON(pago)
}

func GetPagos(c *fiber.Ctx) error {
	pagina, _ := strconv.Atoi(c.Query("page", "1"))
	limite, _ := strconv.Atoi(c.Query("limit", "20"))

	filtro := services.FiltroPagos{
		Pagina:   pagina,
		Limite:   limite,
		Busqueda: c.Query("search"),
		Estado:   c.Query("estado"),
		Periodo:  c.Query("periodo", "all"),
	}

	pagos, meta, stats, err := services.ListarPagos(database.DB, filtro)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  pagos,
		"meta":  meta,
		"stats": stats,
	})
}

func GetPago(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	pago, err := services.ObtenerPago(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pago)
}

func UpdatePago(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	var req ActualizarPagoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pagadoEn, err := parsePagadoEn(req.PagadoEn)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fecha de pago inválida, use formato RFC3339"})
	}

	pago, err := services.ActualizarPago(database.DB, id, services.ActualizarPagoInput{
		CitaID:        req.CitaID,
		Monto:         req.Monto,
		Metodo:        req.Metodo,
		Estado:        req.Estado,
		TransaccionID: req.TransaccionID,
		PagadoEn:      pagadoEn,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pago)
}

func DeletePago(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	if err := services.EliminarPago(database.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pago eliminado correctamente"})
}

// GetTotalPagos sums monto over pagado_en within the inclusive [inicio, fin]
// range, dates in YYYY-MM-DD with fin extended to end of day.
func GetTotalPagos(c *fiber.Ctx) error {
	inicioStr := c.Query("inicio", time.Now().AddDate(0, -1, 0).Format("2006-01-02"))
	finStr := c.Query("fin", time.Now().Format("2006-01-02"))

	inicio, err := time.Parse("2006-01-02", inicioStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fecha de inicio inválida. Use YYYY-MM-DD."})
	}
	fin, err := time.Parse("2006-01-02", finStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fecha de fin inválida. Use YYYY-MM-DD."})
	}
	fin = fin.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	total, err := services.TotalPorRango(database.DB, inicio, fin)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"inicio": inicioStr, "fin": finStr, "total": total})
}

func GenerarComprobante(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	pago, err := services.GenerarComprobante(database.DB, cfg, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"folio":          pago.ComprobanteFolio,
		"comprobanteUrl": pago.ComprobanteURL,
	})
}
