package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// TemplateRepository persists board templates under category stores
type TemplateRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.BoardTemplate, error)
	List(ctx context.Context, category string) ([]*domain.BoardTemplate, error)
	Create(ctx context.Context, template *domain.BoardTemplate) error
	// SeedBuiltins inserts the built-in templates when the store is empty.
	SeedBuiltins(ctx context.Context) error
}

type templateRepositoryImpl struct {
	db *gorm.DB
}

// NewTemplateRepository creates a template repository over the given database
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

func (r *templateRepositoryImpl) Get(ctx context.Context, id uuid.UUID) (*domain.BoardTemplate, error) {
	var doc TemplateDocument
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return decodeTemplate(&doc)
}

func (r *templateRepositoryImpl) List(ctx context.Context, category string) ([]*domain.BoardTemplate, error) {
	q := r.db.WithContext(ctx).Order("category, name")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var docs []TemplateDocument
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	templates := make([]*domain.BoardTemplate, 0, len(docs))
	for i := range docs {
		template, err := decodeTemplate(&docs[i])
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, nil
}

func (r *templateRepositoryImpl) Create(ctx context.Context, template *domain.BoardTemplate) error {
	data, err := json.Marshal(template)
	if err != nil {
		return err
	}
	doc := &TemplateDocument{
		ID:        template.ID,
		Category:  template.Category,
		Name:      template.Name,
		Data:      datatypes.JSON(data),
		CreatedAt: template.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *templateRepositoryImpl) SeedBuiltins(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&TemplateDocument{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, template := range domain.BuiltinTemplates() {
		if err := r.Create(ctx, template); err != nil {
			return err
		}
	}
	return nil
}

func decodeTemplate(doc *TemplateDocument) (*domain.BoardTemplate, error) {
	template := &domain.BoardTemplate{}
	if err := json.Unmarshal(doc.Data, template); err != nil {
		return nil, err
	}
	return template, nil
}
