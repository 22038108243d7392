package routes

import (
	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/handlers"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func ServicioRoutes(app *fiber.App, cfg *config.Config) {
	servicios := app.Group("/servicios")

	servicios.Get("", handlers.GetServicios)
	servicios.Get("/:id", handlers.GetServicio)

	admin := servicios.Group("", middleware.Protected(cfg), middleware.AdminRequired())
	admin.Post("", handlers.CreateServicio)
	admin.Patch("/:id", handlers.UpdateServicio)
	admin.Delete("/:id", handlers.DeleteServicio)
}
