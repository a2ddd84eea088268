package model

import "time"

// MoveID uniquely identifies a stored move. Zero means the move has not been
// persisted yet; storage assigns IDs that increase monotonically in creation
// order, so ID order is position order within the current game.
type MoveID int64

// BoardSize is the side length of the tic-tac-toe grid.
const BoardSize = 3

// Mark is a cell value on the board: "X", "O", or empty.
type Mark string

const (
	MarkX    Mark = "X"
	MarkO    Mark = "O"
	NoWinner Mark = ""
)

// Board is the tic-tac-toe grid. Empty cells hold the zero Mark.
type Board [BoardSize][BoardSize]Mark

// Winner scans the board for three identical marks in a line and returns the
// winning mark, or NoWinner if no line exists. Cells are scanned in row-major
// order; from each non-empty cell the checks run in fixed priority: down the
// column, right along the row, the down-right diagonal, then the up-right
// anti-diagonal anchored from the bottom rows. A well-formed game has at most
// one winning line, so the priority only matters for malformed boards, but it
// is kept stable so results are deterministic.
func (b Board) Winner() Mark {
	n := len(b)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m := b[i][j]
			if m == NoWinner {
				continue
			}
			switch {
			case i < n-2 && b[i+1][j] == m && b[i+2][j] == m:
				return m
			case j < n-2 && b[i][j+1] == m && b[i][j+2] == m:
				return m
			case i < n-2 && j < n-2 && b[i+1][j+1] == m && b[i+2][j+2] == m:
				return m
			case i >= 2 && j < n-2 && b[i-1][j+1] == m && b[i-2][j+2] == m:
				return m
			}
		}
	}
	return NoWinner
}

// Move is one position in the move history of a game. A move is current
// while it belongs to the live, undo-able sequence; resetting or reverting
// the game archives moves by clearing the flag. Archived moves are retained
// forever and never return to the current sequence.
type Move struct {
	ID        MoveID    `json:"id"`
	Board     Board     `json:"board"`
	XNext     bool      `json:"xNext"`
	Current   bool      `json:"currentGame"`
	CreatedAt time.Time `json:"createdAt"`
}

// Archive removes the move from the current game.
func (m *Move) Archive() {
	m.Current = false
}
