package database

import (
	"github.com/quisin/pos-backend/models"
	"gorm.io/gorm"
)

// Migrate creates the four resource tables if they are absent. It runs
// unconditionally at startup and is idempotent; there is no versioned
// migration machinery beyond this.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuItemRow{},
		&models.StaffRow{},
		&models.Table{},
		&models.OrderRow{},
	)
}
