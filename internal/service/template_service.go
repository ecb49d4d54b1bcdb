package service

import (
	"context"

	"go.uber.org/zap"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/validation"
)

// TemplateService defines the interface for board templates
type TemplateService interface {
	ListTemplates(ctx context.Context, category string) ([]*dto.TemplateResponse, error)
	CreateBoardFromTemplate(ctx context.Context, req *dto.CreateFromTemplateRequest) (*dto.BoardResponse, error)
}

// templateServiceImpl is the implementation of TemplateService
type templateServiceImpl struct {
	templates repository.TemplateRepository
	boards    repository.BoardRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewTemplateService creates a new instance of TemplateService
func NewTemplateService(
	templates repository.TemplateRepository,
	boards repository.BoardRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TemplateService {
	return &templateServiceImpl{templates: templates, boards: boards, metrics: m, logger: logger}
}

// ListTemplates returns all templates, optionally restricted to one category
func (s *templateServiceImpl) ListTemplates(ctx context.Context, category string) ([]*dto.TemplateResponse, error) {
	templates, err := s.templates.List(ctx, category)
	if err != nil {
		return nil, mapStoreError(err, "Template")
	}
	out := make([]*dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, dto.ToTemplateResponse(t))
	}
	return out, nil
}

// CreateBoardFromTemplate instantiates a template's layout as a new board
func (s *templateServiceImpl) CreateBoardFromTemplate(ctx context.Context, req *dto.CreateFromTemplateRequest) (*dto.BoardResponse, error) {
	if err := validation.ValidateTemplateInstantiation(req); err != nil {
		return nil, err
	}
	template, err := s.templates.Get(ctx, req.TemplateID)
	if err != nil {
		return nil, mapStoreError(err, "Template")
	}
	board := template.Instantiate(req.Title)
	if err := s.boards.Create(ctx, board); err != nil {
		return nil, mapStoreError(err, "Board")
	}
	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board created from template",
		zap.String("board_id", board.ID.String()),
		zap.String("template", template.Name),
	)
	return dto.ToBoardResponse(board), nil
}
