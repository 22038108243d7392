package models

import (
	"time"

	"gorm.io/gorm"
)

type Servicio struct {
	ID              uint    `gorm:"primary_key" json:"id"`
	Nombre          string  `gorm:"size:255;not null" json:"nombre"`
	Descripcion     *string `gorm:"type:text" json:"descripcion"`
	Precio          float64 `gorm:"type:numeric(10,2);not null" json:"precio"`
	DuracionMinutos int     `gorm:"not null;default:30" json:"duracionMinutos"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
