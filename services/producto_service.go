package services

import (
	"errors"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const MensajeStockInsuficiente = "Stock insuficiente"

type CrearProductoInput struct {
	Nombre      string
	Descripcion *string
	Precio      float64
	Stock       int
	Categoria   *string
}

type ActualizarProductoInput struct {
	Nombre      *string
	Descripcion *string
	Precio      *float64
	Categoria   *string
	ImagenURL   *string
	Activo      *bool
}

// AjustarStock applies a signed delta to the product stock inside one
// transaction holding a SELECT ... FOR UPDATE lock on the row. There is no
// uniqueness constraint to fall back on here; the lock is the only thing
// preventing two concurrent adjustments from both reading the same stale
// stock value.
func AjustarStock(db *gorm.DB, productoID uint, cantidad int) (*models.Producto, error) {
	var producto models.Producto
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&producto, productoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entidad: "Producto", ID: productoID}
			}
			return err
		}

		if producto.Stock+cantidad < 0 {
			return &ConflictError{Mensaje: MensajeStockInsuficiente}
		}

		producto.Stock += cantidad
		return tx.Save(&producto).Error
	})
	if err != nil {
		return nil, err
	}
	return &producto, nil
}

func CrearProducto(db *gorm.DB, in CrearProductoInput) (*models.Producto, error) {
	producto := models.Producto{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Stock:       in.Stock,
		Categoria:   in.Categoria,
		Activo:      true,
	}
	if err := db.Create(&producto).Error; err != nil {
		return nil, err
	}
	return &producto, nil
}

func ListarProductos(db *gorm.DB) ([]models.Producto, error) {
	var productos []models.Producto
	err := db.Order("nombre asc").Find(&productos).Error
	return productos, err
}

func ObtenerProducto(db *gorm.DB, id uint) (*models.Producto, error) {
	var producto models.Producto
	if err := db.First(&producto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Producto", ID: id}
		}
		return nil, err
	}
	return &producto, nil
}

func ActualizarProducto(db *gorm.DB, id uint, in ActualizarProductoInput) (*models.Producto, error) {
	producto, err := ObtenerProducto(db, id)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = in.Descripcion
	}
	if in.Precio != nil {
		producto.Precio = *in.Precio
	}
	if in.Categoria != nil {
		producto.Categoria = in.Categoria
	}
	if in.ImagenURL != nil {
		producto.ImagenURL = in.ImagenURL
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}

	if err := db.Save(producto).Error; err != nil {
		return nil, err
	}
	return producto, nil
}

func EliminarProducto(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Producto{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entidad: "Producto", ID: id}
	}
	return nil
}
