package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/weixigu/boardgame-go/internal/model"
)

// Sort fields accepted by ListActive
const (
	SortByID        = "id"
	SortByFirstName = "firstName"
	SortByLastName  = "lastName"
	SortByNickName  = "nickName"
	SortByNumWin    = "numWin"
	SortByNumLoss   = "numLoss"
	SortByNumDraw   = "numDraw"
	SortByScore     = "score"
)

// Page is one page of active ledger rows
type Page struct {
	Players       []*model.Player `json:"players"`
	PageNumber    int             `json:"pageNumber"`
	PageSize      int             `json:"pageSize"`
	TotalElements int             `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}

// ListActive returns one page of the active rows, sorted by the given field.
// The page number is 0-based; asking for a page beyond the last one fails
// rather than returning an empty page.
func (s *Service) ListActive(ctx context.Context, page, size int, sortBy string) (*Page, error) {
	if page < 0 {
		return nil, fmt.Errorf("page number %d is negative: %w", page, model.ErrPageOutOfRange)
	}
	if size < 0 {
		return nil, fmt.Errorf("page size %d is negative: %w", size, model.ErrPageOutOfRange)
	}

	less, err := comparatorFor(sortBy)
	if err != nil {
		return nil, err
	}

	players, err := s.storage.FindActivePlayers(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if size > 0 {
		totalPages = (len(players) + size - 1) / size
	}
	if page >= totalPages {
		return nil, fmt.Errorf("page number %d (with size %d) is too large for %d players: %w",
			page, size, len(players), model.ErrPageOutOfRange)
	}

	sort.SliceStable(players, func(i, j int) bool { return less(players[i], players[j]) })

	from := page * size
	to := from + size
	if to > len(players) {
		to = len(players)
	}

	s.logger.Info("players listed",
		slog.Int("page", page),
		slog.Int("size", size),
		slog.String("sort_by", sortBy),
	)

	return &Page{
		Players:       players[from:to],
		PageNumber:    page,
		PageSize:      size,
		TotalElements: len(players),
		TotalPages:    totalPages,
	}, nil
}

func comparatorFor(sortBy string) (func(a, b *model.Player) bool, error) {
	switch sortBy {
	case SortByID:
		return func(a, b *model.Player) bool { return a.ID < b.ID }, nil
	case SortByFirstName:
		return func(a, b *model.Player) bool { return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName) }, nil
	case SortByLastName:
		return func(a, b *model.Player) bool { return strings.ToLower(a.LastName) < strings.ToLower(b.LastName) }, nil
	case SortByNickName:
		return func(a, b *model.Player) bool { return strings.ToLower(a.NickName) < strings.ToLower(b.NickName) }, nil
	case SortByNumWin:
		return func(a, b *model.Player) bool { return a.NumWin < b.NumWin }, nil
	case SortByNumLoss:
		return func(a, b *model.Player) bool { return a.NumLoss < b.NumLoss }, nil
	case SortByNumDraw:
		return func(a, b *model.Player) bool { return a.NumDraw < b.NumDraw }, nil
	case SortByScore:
		return func(a, b *model.Player) bool { return a.Score() < b.Score() }, nil
	default:
		return nil, fmt.Errorf("sort field %q: %w", sortBy, model.ErrInvalidSortField)
	}
}
