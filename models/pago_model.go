package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PagoPendiente  = "Pendiente"
	PagoCompletado = "Completado"
	PagoFallido    = "Fallido"
)

// Pago is 1:1 with Cita. The per-cita uniqueness among non-deleted rows is a
// partial index created in database.AutoMigrate; the transaccion_id uniqueness
// is a plain unique index so it also covers soft-deleted rows.
type Pago struct {
	ID               uint       `gorm:"primary_key" json:"id"`
	CitaID           uint       `gorm:"not null" json:"citaId"`
	Monto            float64    `gorm:"type:numeric(10,2);not null" json:"monto"`
	Metodo           *string    `gorm:"size:50" json:"metodo"`
	Estado           string     `gorm:"size:20;not null;default:'Pendiente'" json:"estado"`
	TransaccionID    *string    `gorm:"size:255;unique" json:"transaccionId"`
	PagadoEn         *time.Time `json:"pagadoEn"`
	ComprobanteFolio *string    `gorm:"size:20;unique" json:"comprobanteFolio"`
	ComprobanteURL   *string    `gorm:"size:255" json:"comprobanteUrl"`

	Cita Cita `gorm:"foreignkey:CitaID" json:"cita,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
