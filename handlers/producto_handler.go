package handlers

import (
	"math"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/database"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/services"
	"github.com/gofiber/fiber/v2"
)

type CrearProductoRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Categoria   *string `json:"categoria,omitempty"`
}

type ActualizarProductoRequest struct {
	Nombre      *string  `json:"nombre,omitempty"`
	Descripcion *string  `json:"descripcion,omitempty"`
	Precio      *float64 `json:"precio,omitempty" validate:"omitempty,gt=0"`
	Categoria   *string  `json:"categoria,omitempty"`
	ImagenURL   *string  `json:"imagenUrl,omitempty"`
	Activo      *bool    `json:"activo,omitempty"`
}

// StockRequest carries the signed adjustment. Cantidad arrives as a JSON
// number; a fractional value is rejected with 409 before touching the store.
type StockRequest struct {
	Cantidad float64 `json:"cantidad"`
}

func CreateProducto(c *fiber.Ctx) error {
	var req CrearProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	producto, err := services.CrearProducto(database.DB, services.CrearProductoInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
		Categoria:   req.Categoria,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

func GetProductos(c *fiber.Ctx) error {
	productos, err := services.ListarProductos(database.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(productos)
}

func GetProducto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	producto, err := services.ObtenerProducto(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(producto)
}

func UpdateProducto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	var req ActualizarProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	producto, err := services.ActualizarProducto(database.DB, id, services.ActualizarProductoInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Categoria:   req.Categoria,
		ImagenURL:   req.ImagenURL,
		Activo:      req.Activo,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(producto)
}

func DeleteProducto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	if err := services.EliminarProducto(database.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Producto eliminado correctamente"})
}

func UpdateStock(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id inválido"})
	}

	var req StockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.Cantidad != math.Trunc(req.Cantidad) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "La cantidad debe ser un número entero"})
	}

	producto, err := services.AjustarStock(database.DB, id, int(req.Cantidad))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(producto)
}
