package routes

import (
	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/handlers"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func PeluqueroRoutes(app *fiber.App, cfg *config.Config) {
	peluqueros := app.Group("/peluqueros")

	peluqueros.Get("", handlers.GetPeluqueros)
	peluqueros.Get("/:id", handlers.GetPeluquero)
	peluqueros.Get("/:id/servicios", handlers.GetServiciosDePeluquero)

	admin := peluqueros.Group("", middleware.Protected(cfg), middleware.AdminRequired())
	admin.Post("", handlers.CreatePeluquero)
	admin.Patch("/:id", handlers.UpdatePeluquero)
	admin.Delete("/:id", handlers.DeletePeluquero)
	admin.Post("/:id/servicios", handlers.AsociarServicio)
	admin.Delete("/:id/servicios/:servicioId", handlers.DesasociarServicio)
}
