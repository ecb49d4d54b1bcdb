package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/query"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/validation"
)

// CardService defines the interface for card operations within a board
type CardService interface {
	AddCard(ctx context.Context, boardID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	GetCard(ctx context.Context, boardID, cardID uuid.UUID) (*dto.CardResponse, error)
	ListCards(ctx context.Context, boardID uuid.UUID, filter *query.CardFilter) ([]*dto.CardResponse, error)
	UpdateCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error)
	DeleteCard(ctx context.Context, boardID, cardID uuid.UUID) error
	MoveCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.MoveCardRequest) (*dto.BoardDetailResponse, error)
}

// cardServiceImpl is the implementation of CardService
type cardServiceImpl struct {
	boards  repository.BoardRepository
	locker  *BoardLocker
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewCardService creates a new instance of CardService
func NewCardService(
	boards repository.BoardRepository,
	locker *BoardLocker,
	m *metrics.Metrics,
	logger *zap.Logger,
) CardService {
	return &cardServiceImpl{boards: boards, locker: locker, metrics: m, logger: logger}
}

// AddCard appends a new card to the end of its column, subject to the
// column's WIP limit
func (s *cardServiceImpl) AddCard(ctx context.Context, boardID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	if err := validation.ValidateCardCreate(req); err != nil {
		return nil, err
	}
	var created *domain.Card
	_, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		column := board.ColumnByID(req.ColumnID)
		if column == nil {
			return response.NewAppError(response.ErrCodeNotFound, "Column not found")
		}
		if err := validation.CheckWipLimit(board, column, uuid.Nil); err != nil {
			if s.metrics != nil {
				s.metrics.IncrementWipLimitRejected()
			}
			return err
		}
		card := domain.NewCard(column.ID, req.Title)
		card.Description = req.Description
		if len(req.Tags) > 0 {
			card.Tags = append([]string(nil), req.Tags...)
		}
		card.Assignee = req.Assignee
		card.DueDate = req.DueDate
		if req.Priority != "" {
			card.Priority = domain.Priority(req.Priority)
		}
		card.Position = board.NextCardPosition(column.ID)
		board.Cards = append(board.Cards, card)
		created = &board.Cards[len(board.Cards)-1]
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementCardCreated()
	}
	s.logger.Info("Card added",
		zap.String("board_id", boardID.String()),
		zap.String("card_id", created.ID.String()),
		zap.String("column_id", req.ColumnID.String()),
	)
	return dto.ToCardResponse(created), nil
}

// GetCard returns a single card by id
func (s *cardServiceImpl) GetCard(ctx context.Context, boardID, cardID uuid.UUID) (*dto.CardResponse, error) {
	board, _, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapStoreError(err, "Board")
	}
	card := board.CardByID(cardID)
	if card == nil {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Card not found")
	}
	return dto.ToCardResponse(card), nil
}

// ListCards applies the filter → sort → paginate pipeline over the board's cards
func (s *cardServiceImpl) ListCards(ctx context.Context, boardID uuid.UUID, filter *query.CardFilter) ([]*dto.CardResponse, error) {
	board, _, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapStoreError(err, "Board")
	}
	page := query.Cards(board, *filter)
	out := make([]*dto.CardResponse, 0, len(page))
	for i := range page {
		out = append(out, dto.ToCardResponse(&page[i]))
	}
	return out, nil
}

// UpdateCard patches a card's content fields. Moving between columns or
// repositioning goes through MoveCard, which keeps positions dense.
func (s *cardServiceImpl) UpdateCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error) {
	if err := validation.ValidateCardUpdate(req); err != nil {
		return nil, err
	}
	var updated *domain.Card
	_, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		card := board.CardByID(cardID)
		if card == nil {
			return response.NewAppError(response.ErrCodeNotFound, "Card not found")
		}
		if req.Title != nil {
			card.Title = *req.Title
		}
		if req.Description != nil {
			card.Description = *req.Description
		}
		if req.Tags != nil {
			card.Tags = append([]string(nil), (*req.Tags)...)
		}
		if req.Priority != nil {
			card.Priority = domain.Priority(*req.Priority)
		}
		if req.Assignee != nil {
			card.Assignee = *req.Assignee
		}
		if req.DueDate != nil {
			due := *req.DueDate
			card.DueDate = &due
		}
		card.UpdatedAt = time.Now().UTC()
		updated = card
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToCardResponse(updated), nil
}

// DeleteCard removes a card and renormalizes its column's positions
func (s *cardServiceImpl) DeleteCard(ctx context.Context, boardID, cardID uuid.UUID) error {
	_, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		if !board.RemoveCard(cardID) {
			return response.NewAppError(response.ErrCodeNotFound, "Card not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("Card deleted",
		zap.String("board_id", boardID.String()),
		zap.String("card_id", cardID.String()),
	)
	return nil
}

// MoveCard moves a card to a target column and position. The destination's
// WIP limit is checked with the moving card excluded from the count, so
// repositioning within a full column is always allowed.
func (s *cardServiceImpl) MoveCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.MoveCardRequest) (*dto.BoardDetailResponse, error) {
	board, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		card := board.CardByID(cardID)
		if card == nil {
			return response.NewAppError(response.ErrCodeNotFound, "Card not found")
		}
		column := board.ColumnByID(req.ToColumnID)
		if column == nil {
			return response.NewAppError(response.ErrCodeNotFound, "Column not found")
		}
		if card.ColumnID != column.ID {
			if err := validation.CheckWipLimit(board, column, cardID); err != nil {
				if s.metrics != nil {
					s.metrics.IncrementWipLimitRejected()
				}
				return err
			}
		}
		siblings := board.CountInColumn(column.ID)
		if card.ColumnID == column.ID {
			siblings--
		}
		if err := validation.CheckCardPosition(req.ToPosition, siblings); err != nil {
			return err
		}
		board.PlaceCard(cardID, column.ID, req.ToPosition)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementCardMoved()
	}
	s.logger.Info("Card moved",
		zap.String("board_id", boardID.String()),
		zap.String("card_id", cardID.String()),
		zap.String("to_column_id", req.ToColumnID.String()),
		zap.Int("to_position", req.ToPosition),
	)
	return dto.ToBoardDetailResponse(board), nil
}
