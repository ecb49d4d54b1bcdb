package database

import (
	"gorm.io/gorm"

	"kanban-board-api/internal/repository"
)

// AutoMigrate creates or updates the document store tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&repository.BoardDocument{},
		&repository.ConfigDocument{},
		&repository.TemplateDocument{},
	)
}
