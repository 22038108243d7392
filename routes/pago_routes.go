package routes

import (
	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/handlers"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func PagoRoutes(app *fiber.App, cfg *config.Config) {
	pagos := app.Group("/pagos")

	pagos.Post("", handlers.CreatePago)

	admin := pagos.Group("", middleware.Protected(cfg), middleware.AdminRequired())
	admin.Get("", handlers.GetPagos)
	admin.Get("/total", handlers.GetTotalPagos)
	admin.Get("/:id", handlers.GetPago)
	admin.Patch("/:id", handlers.UpdatePago)
	admin.Delete("/:id", handlers.DeletePago)
	admin.Post("/:id/comprobante", handlers.GenerarComprobante)
}
