package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PlayerID uniquely identifies a stored player row. Zero means the row has
// not been persisted yet; storage assigns an ID on first save and the ID is
// immutable after that.
type PlayerID int64

// MaxCounter is the upper bound for the win/loss/draw counters. Kept at 32
// bits so merged totals survive clients that treat them as signed 32-bit
// integers.
const MaxCounter = math.MaxInt32

// Player is one statistics row in the ledger. Rows are never mutated in
// place apart from tombstoning: a merge tombstones the previous active row
// and writes a fresh one, so every historical snapshot of a player's totals
// stays retrievable.
type Player struct {
	ID        PlayerID  `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	NickName  string    `json:"nickName"`
	NumWin    int       `json:"numWin"`
	NumLoss   int       `json:"numLoss"`
	NumDraw   int       `json:"numDraw"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// Score is the player's derived standing: wins minus losses.
func (p *Player) Score() int {
	return p.NumWin - p.NumLoss
}

// FullName renders the player's name as "Last, First" for messages and logs.
func (p *Player) FullName() string {
	return fmt.Sprintf("%s, %s", p.LastName, p.FirstName)
}

// SameName reports whether two players share a name, compared
// case-insensitively. This is the identity the single-active-row invariant
// is keyed on.
func SameName(a, b *Player) bool {
	return strings.EqualFold(a.FirstName, b.FirstName) &&
		strings.EqualFold(a.LastName, b.LastName)
}

// SameData reports whether two players are field-for-field equal, ignoring
// the synthetic ID and creation time. Used for stale-write protection on
// delete and replace.
func SameData(a, b *Player) bool {
	return SameName(a, b) &&
		a.NickName == b.NickName &&
		a.NumWin == b.NumWin &&
		a.NumLoss == b.NumLoss &&
		a.NumDraw == b.NumDraw &&
		a.Active == b.Active
}

// Tombstone marks the row as no longer active. Tombstoned rows are excluded
// from every lookup the ledger's invariant checks use, but are never
// physically deleted.
func (p *Player) Tombstone() {
	p.Active = false
}
