package handler

import (
	"context"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/query"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/validation"
)

// MockBoardService is a mock implementation of service.BoardService
type MockBoardService struct {
	CreateBoardFunc       func(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardFunc          func(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	ListBoardsFunc        func(ctx context.Context, filter *query.BoardFilter) ([]*dto.BoardResponse, error)
	UpdateBoardFunc       func(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoardFunc       func(ctx context.Context, boardID uuid.UUID) error
	DuplicateBoardFunc    func(ctx context.Context, boardID uuid.UUID, req *dto.DuplicateBoardRequest) (*dto.BoardResponse, error)
	ExportBoardFunc       func(ctx context.Context, boardID uuid.UUID, format string) (*service.ExportResult, error)
	ImportBoardFunc       func(ctx context.Context, doc *domain.Board) (*dto.BoardResponse, error)
	ValidateIntegrityFunc func(ctx context.Context, boardID uuid.UUID) (*validation.IntegrityReport, error)
}

func (m *MockBoardService) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, req)
	}
	return nil, response.NewAppError(response.ErrCodeInternal, "not implemented")
}

func (m *MockBoardService) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, boardID)
	}
	return nil, response.NewAppError(response.ErrCodeInternal, "not implemented")
}

func (m *MockBoardService) ListBoards(ctx context.Context, filter *query.BoardFilter) ([]*dto.BoardResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx, filter)
	}
	return nil, response.NewAppError(response.ErrCodeInternal, "not implemented")
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, boardID, req)
	}
	return nil, response.NewAppError(response.ErrCodeInternal, "not implemented")
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, boardID)
	}
	return response.NewAppError(response.ErrCodeInternal, "not implemented")
}

func (m *MockBoardService) DuplicateBoard(ctx context.Context, boardID uuid.UUID, req *dto.DuplicateBoardRequest) (*dto.BoardResponse, error) {
	if m.DuplicateBoardFunc != nil {
		return m.DuplicateBoardFunc(ctx, boardID, req)
	}
	return nil, response.NewAppError(response.ErrCodeInternal, "not implemented")
}

func (m *MockBoardService) ExportBoard(ctx context.Context, boardID uuid.UUID, format string) (*service.ExportResult, error) {
	if m.ExportBoardFunc != nil {
		return m.ExportBoardFunc(ctx, boardID, format)
	}
	return nil, response.NewAppError(response.ErrCodeInternal, "not implemented")
}

func (m *MockBoardService) ImportBoard(ctx context.Context, doc *domain.Board) (*dto.BoardResponse, error) {
	if m.ImportBoardFunc != nil {
		return m.ImportBoardFunc(ctx, doc)
	}
	return nil, response.NewAppError(response.ErrCodeInternal, "not implemented")
}

func (m *MockBoardService) ValidateIntegrity(ctx context.Context, boardID uuid.UUID) (*validation.IntegrityReport, error) {
	if m.ValidateIntegrityFunc != nil {
		return m.ValidateIntegrityFunc(ctx, boardID)
	}
	return nil, response.NewAppError(response.ErrCodeInternal, "not implemented")
}
