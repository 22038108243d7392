package models

import (
	"time"

	"gorm.io/gorm"
)

type Producto struct {
	ID          uint    `gorm:"primary_key" json:"id"`
	Nombre      string  `gorm:"size:255;not null" json:"nombre"`
	Descripcion *string `gorm:"type:text" json:"descripcion"`
	Precio      float64 `gorm:"type:numeric(10,2);not null" json:"precio"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	Categoria   *string `gorm:"size:100" json:"categoria"`
	ImagenURL   *string `gorm:"size:255" json:"imagenUrl"`
	Activo      bool    `gorm:"default:true" json:"activo"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
