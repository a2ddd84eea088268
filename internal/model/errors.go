package model

import "errors"

// Common errors used across the application
var (
	// Player ledger errors
	ErrPlayerExists     = errors.New("player already exists")
	ErrPlayerNotFound   = errors.New("player DNE in repo")
	ErrDuplicatePlayers = errors.New("multiple active copies of player")
	ErrPlayerMismatch   = errors.New("player does not match its stored copy")
	ErrInvalidPlayer    = errors.New("invalid player fields")
	ErrInvalidOutcome   = errors.New("invalid single-game record")
	ErrCounterOverflow  = errors.New("counter is at its maximum")

	// Game history errors
	ErrMoveNotCurrent  = errors.New("move is not of the current game")
	ErrIndexOutOfRange = errors.New("move index out of range")

	// Listing errors
	ErrPageOutOfRange   = errors.New("page out of range")
	ErrInvalidSortField = errors.New("invalid sort field")
)
