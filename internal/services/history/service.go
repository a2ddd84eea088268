package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/weixigu/boardgame-go/internal/dependencies/clock"
	"github.com/weixigu/boardgame-go/internal/model"
	"github.com/weixigu/boardgame-go/internal/storage"
)

// Service maintains the move history of the single in-progress game. Moves
// are append-only: resetting or reverting archives rows instead of deleting
// them, and reverting never resurrects an archived move. A single mutex
// serializes every operation that writes the current sequence, since there is
// exactly one live game.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu sync.Mutex
}

// New creates a new history Service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// ResetGame archives every move of the current game, leaving the live
// sequence empty. It always succeeds and returns a confirmation message.
func (s *Service) ResetGame(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves, err := s.storage.FindCurrentMoves(ctx)
	if err != nil {
		return "", err
	}

	for _, move := range moves {
		move.Archive()
		if _, err := s.storage.SaveMove(ctx, move); err != nil {
			return "", err
		}
	}

	message := "Reset Tic-Tac-Toe game by removing all existing moves."
	s.logger.Info("game reset", slog.Int("archived_moves", len(moves)))

	return message, nil
}

// SaveMove appends move to the end of the current sequence and returns the
// stored move with its assigned ID. A move that is already archived cannot
// be submitted as a new entry.
func (s *Service) SaveMove(ctx context.Context, move *model.Move) (*model.Move, error) {
	if !move.Current {
		return nil, fmt.Errorf("move (to be saved) %w", model.ErrMoveNotCurrent)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := *move
	row.ID = 0
	row.CreatedAt = s.clock.Now()

	saved, err := s.storage.SaveMove(ctx, &row)
	if err != nil {
		return nil, err
	}

	s.logger.Info("move saved", slog.Int64("id", int64(saved.ID)))

	return saved, nil
}

// ViewPrevMove returns the move at the given 0-based position in the current
// sequence without changing anything.
func (s *Service) ViewPrevMove(ctx context.Context, index int) (*model.Move, error) {
	moves, err := s.currentMoves(ctx, index)
	if err != nil {
		return nil, err
	}

	s.logger.Info("move viewed", slog.Int("index", index))

	return moves[index], nil
}

// RevertToPrevMove rewinds the game to the move at the given position:
// every current move after it is archived, in position order, and the move
// now last in the sequence is returned. Later saves continue from there;
// the archived branch is gone for good.
func (s *Service) RevertToPrevMove(ctx context.Context, index int) (*model.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves, err := s.currentMoves(ctx, index)
	if err != nil {
		return nil, err
	}

	for i := index + 1; i < len(moves); i++ {
		moves[i].Archive()
		if _, err := s.storage.SaveMove(ctx, moves[i]); err != nil {
			return nil, err
		}
	}

	s.logger.Info("game reverted",
		slog.Int("index", index),
		slog.Int("archived_moves", len(moves)-index-1),
	)

	return moves[index], nil
}

// currentMoves loads the current sequence and bounds-checks index against it
func (s *Service) currentMoves(ctx context.Context, index int) ([]*model.Move, error) {
	if index < 0 {
		return nil, fmt.Errorf("index %d of the target move is negative: %w", index, model.ErrIndexOutOfRange)
	}

	moves, err := s.storage.FindCurrentMoves(ctx)
	if err != nil {
		return nil, err
	}

	if index > len(moves)-1 {
		return nil, fmt.Errorf("index %d of the target move is too large (game has %d moves): %w",
			index, len(moves), model.ErrIndexOutOfRange)
	}

	return moves, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	ResetGame(ctx context.Context) (string, error)
	SaveMove(ctx context.Context, move *model.Move) (*model.Move, error)
	ViewPrevMove(ctx context.Context, index int) (*model.Move, error)
	RevertToPrevMove(ctx context.Context, index int) (*model.Move, error)
}

var _ ServiceInterface = (*Service)(nil)
