package routes

import (
	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/handlers"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProductoRoutes(app *fiber.App, cfg *config.Config) {
	productos := app.Group("/productos")

	productos.Get("", handlers.GetProductos)
	productos.Get("/:id", handlers.GetProducto)

	admin := productos.Group("", middleware.Protected(cfg), middleware.AdminRequired())
	admin.Post("", handlers.CreateProducto)
	admin.Patch("/:id/stock", handlers.UpdateStock)
	admin.Patch("/:id", handlers.UpdateProducto)
	admin.Delete("/:id", handlers.DeleteProducto)
}
