package services

import (
	"errors"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"gorm.io/gorm"
)

type CrearServicioInput struct {
	Nombre          string
	Descripcion     *string
	Precio          float64
	DuracionMinutos int
}

type ActualizarServicioInput struct {
	Nombre          *string
	Descripcion     *string
	Precio          *float64
	DuracionMinutos *int
}

func CrearServicio(db *gorm.DB, in CrearServicioInput) (*models.Servicio, error) {
	servicio := models.Servicio{
		Nombre:          in.Nombre,
		Descripcion:     in.Descripcion,
		Precio:          in.Precio,
		DuracionMinutos: in.DuracionMinutos,
	}
	if servicio.DuracionMinutos == 0 {
		servicio.DuracionMinutos = 30
	}
	if err := db.Create(&servicio).Error; err != nil {
		return nil, err
	}
	return &servicio, nil
}

func ListarServicios(db *gorm.DB) ([]models.Servicio, error) {
	var servicios []models.Servicio
	err := db.Order("nombre asc").Find(&servicios).Error
	return servicios, err
}

func ObtenerServicio(db *gorm.DB, id uint) (*models.Servicio, error) {
	var servicio models.Servicio
	if err := db.First(&servicio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Servicio", ID: id}
		}
		return nil, err
	}
	return &servicio, nil
}

func ActualizarServicio(db *gorm.DB, id uint, in ActualizarServicioInput) (*models.Servicio, error) {
	servicio, err := ObtenerServicio(db, id)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		servicio.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		servicio.Descripcion = in.Descripcion
	}
	if in.Precio != nil {
		servicio.Precio = *in.Precio
	}
	if in.DuracionMinutos != nil {
		servicio.DuracionMinutos = *in.DuracionMinutos
	}

	if err := db.Save(servicio).Error; err != nil {
		return nil, err
	}
	return servicio, nil
}

func EliminarServicio(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Servicio{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entidad: "Servicio", ID: id}
	}
	return nil
}
