package database

import (
	"fmt"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all entities.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Session{},
		&entity.Like{},
		&entity.Match{},
		&entity.Message{},
		&entity.Block{},
		&entity.Report{},
		&entity.Collaboration{},
		&entity.SecurityLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
