package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CitaPendiente  = "Pendiente"
	CitaPagada     = "Pagada"
	CitaCompletada = "Completada"
	CitaCancelada  = "Cancelada"
)

type Cita struct {
	ID              uint      `gorm:"primary_key" json:"id"`
	FechaHora       time.Time `gorm:"not null;index" json:"fechaHora"`
	PeluqueroID     uint      `gorm:"not null" json:"peluqueroId"`
	ServicioID      uint      `gorm:"not null" json:"servicioId"`
	NombreCliente   string    `gorm:"size:255;not null" json:"nombreCliente"`
	EmailCliente    string    `gorm:"size:255;not null" json:"emailCliente"`
	TelefonoCliente *string   `gorm:"size:30" json:"telefonoCliente"`
	Notas           *string   `gorm:"type:text" json:"notas"`
	Estado          string    `gorm:"size:20;not null;default:'Pendiente'" json:"estado"`

	Peluquero Peluquero `gorm:"foreignkey:PeluqueroID" json:"peluquero,omitempty"`
	Servicio  Servicio  `gorm:"foreignkey:ServicioID" json:"servicio,omitempty"`
	Pago      *Pago     `gorm:"foreignkey:CitaID" json:"pago,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
