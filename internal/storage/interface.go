package storage

import (
	"context"

	"github.com/weixigu/boardgame-go/internal/model"
)

// Storage defines the interface for data persistence. Save operations assign
// a synthetic ID when the record has none and return the stored record, so
// callers always observe the assigned identity. Rows are append-only: a
// tombstoned player or archived move is saved back with its flag cleared,
// never removed.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) (*model.Player, error)
	// FindActivePlayersByName matches first and last name case-insensitively
	// against active rows only, ordered by ID ascending.
	FindActivePlayersByName(ctx context.Context, firstName, lastName string) ([]*model.Player, error)
	FindActivePlayers(ctx context.Context) ([]*model.Player, error)

	// Move operations. Move IDs increase monotonically in creation order.
	SaveMove(ctx context.Context, move *model.Move) (*model.Move, error)
	// FindCurrentMoves returns the moves of the current game, ordered by ID
	// ascending.
	FindCurrentMoves(ctx context.Context) ([]*model.Move, error)
}
