package models

import "time"

type User struct {
	ID       uint   `gorm:"primary_key" json:"id"`
	Nombre   string `gorm:"size:255;not null" json:"nombre"`
	Email    string `gorm:"size:255;not null;unique" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20;not null;default:'admin'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
