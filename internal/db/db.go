package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/luckybarber/booking-api/internal/config"
	"github.com/luckybarber/booking-api/internal/models"
)

// NewDB abre la base del registro de auditoría. Devuelve nil cuando no hay
// DATABASE_URL configurada: la auditoría degrada a log de proceso.
func NewDB(cfg *config.Config) *gorm.DB {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL empty, audit log disabled")
		return nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
