package database

import (
	"fmt"
	"log"

	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	if err := AutoMigrate(DB); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// AutoMigrate creates the schema plus the partial unique indexes GORM tags
// cannot express: one active cita per (peluquero, horario), one non-deleted
// pago per cita. The citas index is the authoritative double-booking guard;
// the in-service pre-check is only an early exit.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Peluquero{},
		&models.Servicio{},
		&models.PeluqueroServicio{},
		&models.Cita{},
		&models.Pago{},
		&models.Producto{},
	)
	if err != nil {
		return err
	}

	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_citas_peluquero_horario
		 ON citas (peluquero_id, fecha_hora)
		 WHERE deleted_at IS NULL AND estado <> 'Cancelada'`,
	).Error; err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_pagos_cita_activa
		 ON pagos (cita_id)
		 WHERE deleted_at IS NULL`,
	).Error
}

func SeedAdmin(cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("⚠️ Admin credentials not configured, skipping admin seed.")
		return
	}

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		Nombre:   cfg.AdminNombre,
		Email:    cfg.AdminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
