package response

import (
	"time"

	"github.com/weixigu/boardgame-go/internal/model"
	"github.com/weixigu/boardgame-go/internal/services/ledger"
)

// Player is the wire shape of a ledger row in responses
type Player struct {
	ID        model.PlayerID `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	NickName  string         `json:"nickName"`
	NumWin    int            `json:"numWin"`
	NumLoss   int            `json:"numLoss"`
	NumDraw   int            `json:"numDraw"`
	Score     int            `json:"score"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"createdAt"`
}

// PlayerFromModel converts a model.Player to its response shape
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		NickName:  p.NickName,
		NumWin:    p.NumWin,
		NumLoss:   p.NumLoss,
		NumDraw:   p.NumDraw,
		Score:     p.Score(),
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

// PlayerPage is one page of active ledger rows
type PlayerPage struct {
	Players       []Player `json:"players"`
	PageNumber    int      `json:"pageNumber"`
	PageSize      int      `json:"pageSize"`
	TotalElements int      `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
}

// PageFromModel converts a ledger.Page to its response shape
func PageFromModel(page *ledger.Page) PlayerPage {
	players := make([]Player, len(page.Players))
	for i, p := range page.Players {
		players[i] = PlayerFromModel(p)
	}
	return PlayerPage{
		Players:       players,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

// Move is the wire shape of a move in responses
type Move struct {
	ID        model.MoveID `json:"id"`
	Board     model.Board  `json:"board"`
	XNext     bool         `json:"xNext"`
	Current   bool         `json:"currentGame"`
	CreatedAt time.Time    `json:"createdAt"`
}

// MoveFromModel converts a model.Move to its response shape
func MoveFromModel(m *model.Move) Move {
	return Move{
		ID:        m.ID,
		Board:     m.Board,
		XNext:     m.XNext,
		Current:   m.Current,
		CreatedAt: m.CreatedAt,
	}
}

// Message carries a human-readable confirmation
type Message struct {
	Message string `json:"message"`
}

// Winner reports the outcome of a board evaluation. Winner is "X", "O" or
// empty when nobody has won yet.
type Winner struct {
	Winner model.Mark `json:"winner"`
}
