package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mihaianh/wedding_backend/models"
	"github.com/mihaianh/wedding_backend/repository"
)

var DB *gorm.DB

// Connect establishes a connection to the database. Postgres is the
// default; DB_DRIVER=sqlite switches to a local file for development.
func Connect() {
	var err error

	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "wedding.db"
		}
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		log.Println("Database connection established (sqlite)")
		return
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASS")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "wedding"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, password, dbname, port)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")
}

// Migrate automatically migrates the database schema. Responses get one
// table per configured location so entitlement checks stay structural.
func Migrate(locations []models.Location) {
	DB.AutoMigrate(&models.Guest{}, &models.GuestEntitlement{}, &models.Organizer{})
	for _, loc := range locations {
		if err := DB.Table(repository.RSVPTableName(loc)).AutoMigrate(&models.RSVPResponse{}); err != nil {
			log.Fatalf("Failed to migrate response table for %s: %v", loc, err)
		}
	}
	log.Println("Database migration completed")
}

// SeedOrganizer ensures the admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// exists. Without credentials in the environment, nothing is seeded.
func SeedOrganizer() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.Organizer
	if result := DB.Where("email = ?", email).First(&existing); result.Error == nil {
		return
	}

	organizer := models.Organizer{Email: email, Password: password}
	if result := DB.Create(&organizer); result.Error != nil {
		log.Printf("Failed to seed organizer account: %v", result.Error)
		return
	}
	log.Printf("Seeded organizer account %s", email)
}
