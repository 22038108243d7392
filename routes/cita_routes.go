package routes

import (
	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/handlers"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func CitaRoutes(app *fiber.App, cfg *config.Config) {
	citas := app.Group("/citas")

	citas.Post("", handlers.CreateCita)
	citas.Get("", handlers.GetCitas)
	citas.Get("/:id", handlers.GetCita)
	citas.Patch("/:id", handlers.UpdateCita)
	citas.Delete("/:id", middleware.Protected(cfg), middleware.AdminRequired(), handlers.DeleteCita)
}
