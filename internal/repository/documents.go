// Package repository persists board aggregates as whole documents: one row
// per board holding the serialized aggregate, a version column compared at
// write time, a singleton row for the global configuration, and template
// rows keyed by category. The store never sees inside a document except for
// the denormalized title used by listings.
package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ErrVersionConflict is returned when a compare-and-swap write finds the
// stored version differs from the loaded one: another writer got there
// first and the caller must reload and retry.
var ErrVersionConflict = errors.New("board document version conflict")

// BoardDocument is one persisted board aggregate
type BoardDocument struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title     string         `gorm:"type:varchar(255);not null;index:idx_board_documents_title"`
	Data      datatypes.JSON `gorm:"not null"`
	Version   int64          `gorm:"not null;default:1"`
	CreatedAt time.Time      `gorm:"type:timestamp;not null"`
	UpdatedAt time.Time      `gorm:"type:timestamp;not null"`
}

// TableName specifies the table name for BoardDocument
func (BoardDocument) TableName() string {
	return "board_documents"
}

// ConfigDocument is the singleton global configuration row
type ConfigDocument struct {
	ID        int            `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"type:timestamp;not null"`
}

// TableName specifies the table name for ConfigDocument
func (ConfigDocument) TableName() string {
	return "config_documents"
}

// TemplateDocument is one persisted board template
type TemplateDocument struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Category  string         `gorm:"type:varchar(100);not null;index:idx_template_documents_category"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Data      datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"type:timestamp;not null"`
}

// TableName specifies the table name for TemplateDocument
func (TemplateDocument) TableName() string {
	return "template_documents"
}
