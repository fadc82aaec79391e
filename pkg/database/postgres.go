package database

import (
	"log"

	"github.com/ljbenitez/hotel-reservas/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Hotel{},
		&models.Habitacion{},
		&models.Cliente{},
		&models.Reserva{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Exclusion constraint: no two reservations for the same room may have
	// intersecting [fecha_ingreso, fecha_salida) ranges. Backstops the
	// row-lock admission path against any writer that bypasses it.
	db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist")
	db.Exec("ALTER TABLE reservas DROP CONSTRAINT IF EXISTS reservas_sin_solape")
	db.Exec(`
		ALTER TABLE reservas ADD CONSTRAINT reservas_sin_solape
		EXCLUDE USING gist (
			id_habitacion WITH =,
			daterange(fecha_ingreso, fecha_salida) WITH &&
		)
	`)

	return db
}
