package request

import "github.com/weixigu/boardgame-go/internal/model"

// Player is the wire shape of a ledger row in request bodies
type Player struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	NickName  string `json:"nickName"`
	NumWin    int    `json:"numWin"`
	NumLoss   int    `json:"numLoss"`
	NumDraw   int    `json:"numDraw"`
	Active    *bool  `json:"active,omitempty"`
}

// ToModel converts a request Player to a model.Player. An absent active
// field defaults to true, since submitted records describe live rows.
func (p Player) ToModel() *model.Player {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return &model.Player{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		NickName:  p.NickName,
		NumWin:    p.NumWin,
		NumLoss:   p.NumLoss,
		NumDraw:   p.NumDraw,
		Active:    active,
	}
}

// ReplacePlayer is the request body for swapping one ledger row for another
type ReplacePlayer struct {
	Old Player `json:"old"`
	New Player `json:"new"`
}

// Move is the wire shape of a move in request bodies
type Move struct {
	Board model.Board `json:"board"`
	XNext bool        `json:"xNext"`
}

// ToModel converts a request Move to a model.Move in the current game
func (m Move) ToModel() *model.Move {
	return &model.Move{
		Board:   m.Board,
		XNext:   m.XNext,
		Current: true,
	}
}

// Winner is the request body for evaluating a board position
type Winner struct {
	Board model.Board `json:"board"`
}
