// Package migrations keeps the lobby database schema up to date.
package migrations

import (
	"fmt"

	"github.com/termninja/termninja/internal/model"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables for all lobby models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Game{}); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
