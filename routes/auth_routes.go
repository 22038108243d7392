package routes

import (
	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/handlers"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, cfg *config.Config) {
	auth := app.Group("/auth")

	auth.Post("/login", handlers.Login)
	auth.Post("/logout", middleware.Protected(cfg), handlers.Logout)
	auth.Get("/me", middleware.Protected(cfg), handlers.GetMe)

	uploads := app.Group("/uploads", middleware.Protected(cfg), middleware.AdminRequired())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
