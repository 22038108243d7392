package services

import (
	"os"
	"testing"
	"time"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/database"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens the Postgres instance named by TEST_DATABASE_URL and
// resets the schema. The invariant tests need a real Postgres because the
// partial unique indexes and FOR UPDATE locks are part of what is tested.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	err = db.Exec(`TRUNCATE citas, pagos, productos, peluqueros, servicios, peluquero_servicios, users RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to reset test database: %v", err)
	}

	return db
}

func crearPeluqueroDePrueba(t *testing.T, db *gorm.DB, nombre string) models.Peluquero {
	t.Helper()
	peluquero, err := CrearPeluquero(db, CrearPeluqueroInput{
		Nombre:     nombre,
		HoraInicio: "09:00",
		HoraFin:    "19:00",
	})
	if err != nil {
		t.Fatalf("failed to create peluquero: %v", err)
	}
	return *peluquero
}

func crearServicioDePrueba(t *testing.T, db *gorm.DB, nombre string) models.Servicio {
	t.Helper()
	servicio, err := CrearServicio(db, CrearServicioInput{
		Nombre:          nombre,
		Precio:          25.00,
		DuracionMinutos: 30,
	})
	if err != nil {
		t.Fatalf("failed to create servicio: %v", err)
	}
	return *servicio
}

func crearCitaDePrueba(t *testing.T, db *gorm.DB, peluqueroID, servicioID uint, fechaHora time.Time) models.Cita {
	t.Helper()
	cita, err := CrearCita(db, CrearCitaInput{
		FechaHora:     fechaHora,
		PeluqueroID:   peluqueroID,
		ServicioID:    servicioID,
		NombreCliente: "Cliente de Prueba",
		EmailCliente:  "cliente@example.com",
	})
	if err != nil {
		t.Fatalf("failed to create cita: %v", err)
	}
	return *cita
}
