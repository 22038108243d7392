package services

import (
	"errors"
	"time"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"gorm.io/gorm"
)

const MensajeCitaDuplicada = "Ya existe una cita para ese peluquero en ese horario"

type CrearCitaInput struct {
	FechaHora       time.Time
	PeluqueroID     uint
	ServicioID      uint
	NombreCliente   string
	EmailCliente    string
	TelefonoCliente *string
	Notas           *string
}

type ActualizarCitaInput struct {
	FechaHora       *time.Time
	PeluqueroID     *uint
	ServicioID      *uint
	NombreCliente   *string
	EmailCliente    *string
	TelefonoCliente *string
	Notas           *string
	Estado          *string
}

func CrearCita(db *gorm.DB, in CrearCitaInput) (*models.Cita, error) {
	var peluquero models.Peluquero
	if err := db.First(&peluquero, in.PeluqueroID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Peluquero", ID: in.PeluqueroID}
		}
		return nil, err
	}

	var servicio models.Servicio
	if err := db.First(&servicio, in.ServicioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Servicio", ID: in.ServicioID}
		}
		return nil, err
	}

	if err := checkConflictoHorario(db, in.PeluqueroID, in.FechaHora, 0); err != nil {
		return nil, err
	}

	cita := models.Cita{
		FechaHora:       in.FechaHora,
		PeluqueroID:     in.PeluqueroID,
		ServicioID:      in.ServicioID,
		NombreCliente:   in.NombreCliente,
		EmailCliente:    in.EmailCliente,
		TelefonoCliente: in.TelefonoCliente,
		Notas:           in.Notas,
		Estado:          models.CitaPendiente,
	}
	if err := db.Create(&cita).Error; err != nil {
		// The pre-check above is racy under concurrent requests; the partial
		// unique index on (peluquero_id, fecha_hora) is what actually holds.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Mensaje: MensajeCitaDuplicada}
		}
		return nil, err
	}

	cita.Peluquero = peluquero
	cita.Servicio = servicio
	return &cita, nil
}

// checkConflictoHorario rejects a second active cita for the same peluquero at
// the exact same horario. Cancelled and soft-deleted citas do not block the
// slot. excluirID lets an update skip the row being updated.
func checkConflictoHorario(db *gorm.DB, peluqueroID uint, fechaHora time.Time, excluirID uint) error {
	q := db.Model(&models.Cita{}).
		Where("peluquero_id = ? AND fecha_hora = ? AND estado <> ?", peluqueroID, fechaHora, models.CitaCancelada)
	if excluirID != 0 {
		q = q.Where("id <> ?", excluirID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Mensaje: MensajeCitaDuplicada}
	}
	return nil
}

func ListarCitas(db *gorm.DB) ([]models.Cita, error) {
	var citas []models.Cita
	err := db.
		Preload("Peluquero").
		Preload("Servicio").
		Preload("Pago").
		Order("fecha_hora asc").
		Find(&citas).Error
	return citas, err
}

func ObtenerCita(db *gorm.DB, id uint) (*models.Cita, error) {
	var cita models.Cita
	err := db.
		Preload("Peluquero").
		Preload("Servicio").
		Preload("Pago").
		First(&cita, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Cita", ID: id}
		}
		return nil, err
	}
	return &cita, nil
}

func ActualizarCita(db *gorm.DB, id uint, in ActualizarCitaInput) (*models.Cita, error) {
	var cita models.Cita
	if err := db.First(&cita, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Cita", ID: id}
		}
		return nil, err
	}

	// Effective (peluquero, horario) after applying the partial update; the
	// conflict is re-checked only when either value actually changes.
	peluqueroEfectivo := cita.PeluqueroID
	if in.PeluqueroID != nil {
		peluqueroEfectivo = *in.PeluqueroID
	}
	fechaEfectiva := cita.FechaHora
	if in.FechaHora != nil {
		fechaEfectiva = *in.FechaHora
	}

	if peluqueroEfectivo != cita.PeluqueroID || !fechaEfectiva.Equal(cita.FechaHora) {
		if err := checkConflictoHorario(db, peluqueroEfectivo, fechaEfectiva, cita.ID); err != nil {
			return nil, err
		}
	}

	if in.PeluqueroID != nil && *in.PeluqueroID != cita.PeluqueroID {
		var peluquero models.Peluquero
		if err := db.First(&peluquero, *in.PeluqueroID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entidad: "Peluquero", ID: *in.PeluqueroID}
			}
			return nil, err
		}
	}
	if in.ServicioID != nil && *in.ServicioID != cita.ServicioID {
		var servicio models.Servicio
		if err := db.First(&servicio, *in.ServicioID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entidad: "Servicio", ID: *in.ServicioID}
			}
			return nil, err
		}
	}

	cita.PeluqueroID = peluqueroEfectivo
	cita.FechaHora = fechaEfectiva
	if in.ServicioID != nil {
		cita.ServicioID = *in.ServicioID
	}
	if in.NombreCliente != nil {
		cita.NombreCliente = *in.NombreCliente
	}
	if in.EmailCliente != nil {
		cita.EmailCliente = *in.EmailCliente
	}
	if in.TelefonoCliente != nil {
		cita.TelefonoCliente = in.TelefonoCliente
	}
	if in.Notas != nil {
		cita.Notas = in.Notas
	}
	if in.Estado != nil {
		cita.Estado = *in.Estado
	}

	if err := db.Save(&cita).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Mensaje: MensajeCitaDuplicada}
		}
		return nil, err
	}

	return ObtenerCita(db, cita.ID)
}

func EliminarCita(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Cita{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entidad: "Cita", ID: id}
	}
	return nil
}
