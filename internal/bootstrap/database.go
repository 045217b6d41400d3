package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"gastrogrid/internal/models"
)

// Migrate ensures the schema for all entities exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func allModels() []interface{} {
	return []interface{}{
		// Core entities
		&models.Event{},
		&models.Auftrag{},
		// Knowledge base
		&models.Product{},
		&models.Ingredient{},
		&models.LexikonEntry{},
	}
}
