//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ljbenitez/hotel-reservas/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "hotel_reservas_test"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS reservas")
	testDB.Exec("DROP TABLE IF EXISTS habitaciones")
	testDB.Exec("DROP TABLE IF EXISTS clientes")
	testDB.Exec("DROP TABLE IF EXISTS hoteles")

	if err := testDB.AutoMigrate(
		&models.Hotel{},
		&models.Habitacion{},
		&models.Cliente{},
		&models.Reserva{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	testDB.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist")
	testDB.Exec(`
		ALTER TABLE reservas
		ADD CONSTRAINT reservas_sin_solape
		EXCLUDE USING gist (
			id_habitacion WITH =,
			daterange(fecha_ingreso, fecha_salida) WITH &&
		)
	`)

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS reservas")
	testDB.Exec("DROP TABLE IF EXISTS habitaciones")
	testDB.Exec("DROP TABLE IF EXISTS clientes")
	testDB.Exec("DROP TABLE IF EXISTS hoteles")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM reservas")
	testDB.Exec("DELETE FROM habitaciones")
	testDB.Exec("DELETE FROM clientes")
	testDB.Exec("DELETE FROM hoteles")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
