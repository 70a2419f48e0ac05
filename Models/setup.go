package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDataBase() {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Fatal("connection error:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("migration error:", err)
	}
}

// Migrate creates the three tables. Patients must exist before appointments
// so the foreign key resolves.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&Patient{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Appointment{})
}
