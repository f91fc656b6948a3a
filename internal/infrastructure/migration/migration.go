package migration

import (
	"fmt"

	"gorm.io/gorm"

	"sdc/internal/shared/logger"
)

// Run migrates the schema for all registered models using GORM AutoMigrate.
// Schema changes here are additive; destructive changes need a manual step.
func Run(db *gorm.DB) error {
	models := AutoMigrateModels()

	logger.Info("starting database migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database migration completed successfully")
	return nil
}
