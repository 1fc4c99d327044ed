package config

import (
	"os"

	"berkeley-brew-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

// LoadEnv reads the optional .env file and resolves secrets. Missing .env is
// fine in production where real environment variables are set.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.WithField("error", err).Debug("no .env file loaded")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "berkeley_brew_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	dbPath := getEnv("DB_PATH", "berkeley_brew.db")
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Cafe{},
		&models.Review{},
		&models.Bookmark{},
	)
	if err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	logrus.Info("Database connected and migrated successfully")
}
