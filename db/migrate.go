package db

import (
	"log"

	"github.com/musaada/musaada/models"
	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for the full schema. Called explicitly,
// never on connect.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.EmailVerificationToken{},
		&models.Session{},
		&models.Service{},
		&models.Provider{},
		&models.Booking{},
		&models.Review{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	log.Println("✅ Migrations applied successfully!")
	return nil
}
