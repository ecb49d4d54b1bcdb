// Package query implements the in-memory filter → sort → paginate pipeline
// over boards and cards. The pipeline assumes the caller has validated sort
// field names and query shape at the boundary; unknown sort fields fall back
// to the default ordering. An empty result set is a valid result.
package query

import (
	"sort"
	"strings"
	"time"

	"kanban-board-api/internal/domain"
)

// Sort orders
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Board sort fields
const (
	BoardSortTitle     = "title"
	BoardSortCreatedAt = "createdAt"
	BoardSortUpdatedAt = "updatedAt"
)

// BoardFilter describes one board query: filters, sort, pagination
type BoardFilter struct {
	Title       string     `form:"title"`
	Tags        []string   `form:"tags"`
	CreatedFrom *time.Time `form:"createdFrom" time_format:"2006-01-02T15:04:05Z07:00"`
	CreatedTo   *time.Time `form:"createdTo" time_format:"2006-01-02T15:04:05Z07:00"`
	UpdatedFrom *time.Time `form:"updatedFrom" time_format:"2006-01-02T15:04:05Z07:00"`
	UpdatedTo   *time.Time `form:"updatedTo" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy      string     `form:"sortBy"`
	SortOrder   string     `form:"sortOrder"`
	Offset      int        `form:"offset"`
	Limit       *int       `form:"limit"`
}

// Boards applies the filter to the given boards and returns the page
func Boards(boards []*domain.Board, f BoardFilter) []*domain.Board {
	matched := make([]*domain.Board, 0, len(boards))
	for _, b := range boards {
		if boardMatches(b, f) {
			matched = append(matched, b)
		}
	}
	sortBoards(matched, f.SortBy, f.SortOrder)
	return paginateBoards(matched, f.Offset, f.Limit)
}

func boardMatches(b *domain.Board, f BoardFilter) bool {
	if f.Title != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(f.Title)) {
		return false
	}
	if len(f.Tags) > 0 && !boardHasAnyTag(b, f.Tags) {
		return false
	}
	if !inRange(b.CreatedAt, f.CreatedFrom, f.CreatedTo) {
		return false
	}
	if !inRange(b.UpdatedAt, f.UpdatedFrom, f.UpdatedTo) {
		return false
	}
	return true
}

// boardHasAnyTag reports whether any card on the board carries any of the tags
func boardHasAnyTag(b *domain.Board, tags []string) bool {
	for i := range b.Cards {
		for _, tag := range tags {
			if b.Cards[i].HasTag(tag) {
				return true
			}
		}
	}
	return false
}

// inRange reports whether t lies within the inclusive [from, to] range
func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func sortBoards(boards []*domain.Board, sortBy, order string) {
	desc := order == OrderDesc
	sort.SliceStable(boards, func(i, j int) bool {
		a, b := boards[i], boards[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case BoardSortTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case BoardSortUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
}

func paginateBoards(boards []*domain.Board, offset int, limit *int) []*domain.Board {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(boards) {
		return []*domain.Board{}
	}
	boards = boards[offset:]
	if limit != nil && *limit >= 0 && *limit < len(boards) {
		boards = boards[:*limit]
	}
	return boards
}
