package services

import (
	"errors"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"gorm.io/gorm"
)

type CrearPeluqueroInput struct {
	Nombre       string
	Especialidad *string
	HoraInicio   string
	HoraFin      string
	DiasLibres   *string
}

type ActualizarPeluqueroInput struct {
	Nombre       *string
	Especialidad *string
	HoraInicio   *string
	HoraFin      *string
	DiasLibres   *string
	Activo       *bool
}

func CrearPeluquero(db *gorm.DB, in CrearPeluqueroInput) (*models.Peluquero, error) {
	peluquero := models.Peluquero{
		Nombre:       in.Nombre,
		Especialidad: in.Especialidad,
		HoraInicio:   in.HoraInicio,
		HoraFin:      in.HoraFin,
		DiasLibres:   in.DiasLibres,
		Activo:       true,
	}
	if err := db.Create(&peluquero).Error; err != nil {
		return nil, err
	}
	return &peluquero, nil
}

func ListarPeluqueros(db *gorm.DB) ([]models.Peluquero, error) {
	var peluqueros []models.Peluquero
	err := db.Order("nombre asc").Find(&peluqueros).Error
	return peluqueros, err
}

func ObtenerPeluquero(db *gorm.DB, id uint) (*models.Peluquero, error) {
	var peluquero models.Peluquero
	if err := db.First(&peluquero, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Peluquero", ID: id}
		}
		return nil, err
	}
	return &peluquero, nil
}

func ActualizarPeluquero(db *gorm.DB, id uint, in ActualizarPeluqueroInput) (*models.Peluquero, error) {
	peluquero, err := ObtenerPeluquero(db, id)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		peluquero.Nombre = *in.Nombre
	}
	if in.Especialidad != nil {
		peluquero.Especialidad = in.Especialidad
	}
	if in.HoraInicio != nil {
		peluquero.HoraInicio = *in.HoraInicio
	}
	if in.HoraFin != nil {
		peluquero.HoraFin = *in.HoraFin
	}
	if in.DiasLibres != nil {
		peluquero.DiasLibres = in.DiasLibres
	}
	if in.Activo != nil {
		peluquero.Activo = *in.Activo
	}

	if err := db.Save(peluquero).Error; err != nil {
		return nil, err
	}
	return peluquero, nil
}

func EliminarPeluquero(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Peluquero{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entidad: "Peluquero", ID: id}
	}
	return nil
}

// AsociarServicio links a servicio to a peluquero. If the association was
// previously removed, the soft-deleted row is restored instead of inserting a
// duplicate, so the unique index over the pair keeps holding.
func AsociarServicio(db *gorm.DB, peluqueroID, servicioID uint) (*models.PeluqueroServicio, error) {
	if _, err := ObtenerPeluquero(db, peluqueroID); err != nil {
		return nil, err
	}
	if _, err := ObtenerServicio(db, servicioID); err != nil {
		return nil, err
	}

	var existente models.PeluqueroServicio
	err := db.Unscoped().
		Where("peluquero_id = ? AND servicio_id = ?", peluqueroID, servicioID).
		First(&existente).Error
	if err == nil {
		if !existente.DeletedAt.Valid {
			return nil, &ConflictError{Mensaje: "El peluquero ya ofrece ese servicio"}
		}
		if err := db.Unscoped().Model(&existente).Update("deleted_at", nil).Error; err != nil {
			return nil, err
		}
		existente.DeletedAt = gorm.DeletedAt{}
		return &existente, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	asociacion := models.PeluqueroServicio{
		PeluqueroID: peluqueroID,
		ServicioID:  servicioID,
	}
	if err := db.Create(&asociacion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Mensaje: "El peluquero ya ofrece ese servicio"}
		}
		return nil, err
	}
	return &asociacion, nil
}

func DesasociarServicio(db *gorm.DB, peluqueroID, servicioID uint) error {
	result := db.
		Where("peluquero_id = ? AND servicio_id = ?", peluqueroID, servicioID).
		Delete(&models.PeluqueroServicio{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entidad: "Asociación peluquero-servicio"}
	}
	return nil
}

func ServiciosDePeluquero(db *gorm.DB, peluqueroID uint) ([]models.Servicio, error) {
	if _, err := ObtenerPeluquero(db, peluqueroID); err != nil {
		return nil, err
	}

	var servicios []models.Servicio
	err := db.Model(&models.Servicio{}).
		Joins("JOIN peluquero_servicios ON peluquero_servicios.servicio_id = servicios.id").
		Where("peluquero_servicios.peluquero_id = ? AND peluquero_servicios.deleted_at IS NULL", peluqueroID).
		Order("servicios.nombre asc").
		Find(&servicios).Error
	return servicios, err
}
