package models

import (
	"time"

	"gorm.io/gorm"
)

type Peluquero struct {
	ID           uint    `gorm:"primary_key" json:"id"`
	Nombre       string  `gorm:"size:255;not null" json:"nombre"`
	Especialidad *string `gorm:"size:255" json:"especialidad"`
	HoraInicio   string  `gorm:"size:5;default:'09:00'" json:"horaInicio"`
	HoraFin      string  `gorm:"size:5;default:'19:00'" json:"horaFin"`
	DiasLibres   *string `gorm:"size:100" json:"diasLibres"`
	Activo       bool    `gorm:"default:true" json:"activo"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
