package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
// The dish_categories join table is created implicitly by the many2many
// association between dishes and categories.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil database handle")
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.Dish{},
	)
}
