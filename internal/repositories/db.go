package repositories

import (
	"log"

	"github.com/rohits-web03/voxdesk/internal/config"
	"github.com/rohits-web03/voxdesk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() *gorm.DB {
	dsn := config.Envs.DB_URL
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	// Run migrations
	err = db.AutoMigrate(
		&models.Attachment{},
		&models.Agent{},
		&models.Language{},
		&models.Voice{},
		&models.Prompt{},
		&models.Model{},
		&models.Tag{},
		&models.User{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	DB = db
	log.Println("Successfully connected to database")
	return db
}
