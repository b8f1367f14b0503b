package database

import (
	"log"

	"github.com/Kingsavannah44/savannah-events-api/internal/auth"
	"github.com/Kingsavannah44/savannah-events-api/internal/models"
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

	if err := db.AutoMigrate(&models.User{}, &models.Event{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Supports the list endpoint's default ordering and the client roll-up.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings (created_at DESC, id DESC)`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_client_phone ON bookings (client_phone)`)

	return db
}

// SeedAdmin upserts the back-office admin account. A blank password means
// seeding is disabled (production accounts are provisioned out of band).
func SeedAdmin(db *gorm.DB, email, name, password string) {
	if password == "" {
		return
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("failed to look up admin user: %v", err)
		return
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	admin := models.User{Email: email, Name: name, Password: hashed, Role: models.RoleAdmin}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
		return
	}
	log.Printf("admin user created: %s", email)
}
