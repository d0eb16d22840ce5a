package database

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service uses.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.InventoryItem{},
		&models.Customer{},
		&models.Order{},
		&models.OrderLine{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("failed to AutoMigrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

// SeedAdmin makes sure a staff account exists for email. An empty email skips seeding.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		utils.InfoLogger.Println("Admin seeding skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Admin user seeded: %s", email)
	return nil
}
