package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AtelierGestione/atelier-manager/internal/config"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Product{},
		&models.Appointment{},
		&models.UtilityExpense{},
		&models.BarExpense{},
		&models.MaintenanceExpense{},
		&models.ProductExpense{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// righe storiche con la data salvata come timestamp
	db.Exec(`
        UPDATE appointments
        SET date = LEFT(date, 10)
        WHERE LENGTH(date) > 10
    `)

	return db
}
