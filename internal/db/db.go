package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bookable/bookable-api/internal/config"
	"github.com/bookable/bookable-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
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
		&models.Business{},
		&models.User{},
		&models.Staff{},
		&models.Service{},
		&models.AvailabilityRule{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE businesses
        SET timezone = 'UTC'
        WHERE timezone IS NULL OR timezone = ''
    `)

	// Partial so cancelled and completed bookings release their start
	// instant. gorm index tags cannot carry a WHERE clause with commas,
	// so the index lives here.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_staff_start
        ON bookings (staff_id, start_time)
        WHERE status IN ('PENDING', 'CONFIRMED')
    `).Error; err != nil {
		log.Fatalf("failed to create booking index: %v", err)
	}

	return db
}
