package config

import (
	"log"
	"os"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init loads the .env file (optional), applies the response language and
// opens the sqlite database, migrating the schema.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	utils.SetResponseLanguage(os.Getenv("RESPONSE_LANGUAGE"))

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "data.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.Record{},
		&models.UserProfile{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
