package models

import (
	"time"

	"gorm.io/gorm"
)

// PeluqueroServicio is the explicit join row between a peluquero and a
// servicio he offers. Removing the association soft-deletes the row; creating
// it again restores the same row instead of inserting a duplicate.
type PeluqueroServicio struct {
	ID          uint `gorm:"primary_key" json:"id"`
	PeluqueroID uint `gorm:"not null;uniqueIndex:idx_peluquero_servicio" json:"peluqueroId"`
	ServicioID  uint `gorm:"not null;uniqueIndex:idx_peluquero_servicio" json:"servicioId"`

	Peluquero Peluquero `gorm:"foreignkey:PeluqueroID" json:"peluquero,omitempty"`
	Servicio  Servicio  `gorm:"foreignkey:ServicioID" json:"servicio,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
