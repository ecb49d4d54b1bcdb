package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
)

// BoardCounter is the slice of the board repository the collector needs
type BoardCounter interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*domain.Board, error)
}

// BusinessMetricsCollector refreshes the boards/cards gauges periodically
type BusinessMetricsCollector struct {
	boards  BoardCounter
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(boards BoardCounter, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		boards:  boards,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	boardCount, err := c.boards.Count(ctx)
	if err != nil {
		c.logger.Error("Failed to count boards", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(boardCount)
	}

	// Card totals require opening every document; fine at this cadence
	// for human-curated board counts.
	boards, err := c.boards.List(ctx)
	if err != nil {
		c.logger.Error("Failed to list boards for card count", zap.Error(err))
		return
	}
	var cardCount int64
	for _, board := range boards {
		cardCount += int64(len(board.Cards))
	}
	c.metrics.SetCardsTotal(cardCount)
}
