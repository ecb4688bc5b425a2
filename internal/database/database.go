// Package database opens the recipe store and the optional Redis client.
package database

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/okonek/guidedcooking/backend/config"
	"github.com/okonek/guidedcooking/backend/internal/logging"
	"github.com/okonek/guidedcooking/backend/internal/model"
)

// New opens the configured database and migrates the recipe schema. Both
// backends expose identical store semantics; sqlite is the single-file
// variant, postgres the table-backed one.
func New(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger := logging.NewLogger("database")
	logger.Info().
		Str("driver", cfg.DBDriver).
		Msg("database ready")

	return db, nil
}

// Seed loads recipes from a JSON file into an empty table. A missing file or
// a non-empty table is not an error; the seed is best effort on startup.
func Seed(db *gorm.DB, path string) error {
	logger := logging.NewLogger("database")

	var count int64
	if err := db.Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no seed file, skipping")
			return nil
		}
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", recipes[i].Title, err)
		}
	}

	logger.Info().Int("count", len(recipes)).Msg("seeded recipe table")
	return nil
}
