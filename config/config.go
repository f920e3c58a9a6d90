package config

import (
	"log"
	"os"

	"trailer-rental-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — set by Load from env or fallback
var JWTSecret = []byte("trailer_rental_dev_secret")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads a .env file when present and resolves the signing secret.
// Call before InitDB so DB_PATH and JWT_SECRET from .env take effect.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "trailer_rental_dev_secret"))
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "trailer_rental.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := AutoMigrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// AutoMigrate applies the schema for all models. Exposed separately so
// tests can migrate their own database handles.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Trailer{},
		&models.Reservation{},
		&models.Review{},
	)
}
