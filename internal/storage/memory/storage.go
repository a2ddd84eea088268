package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/weixigu/boardgame-go/internal/model"
	"github.com/weixigu/boardgame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players      map[model.PlayerID]*model.Player
	moves        map[model.MoveID]*model.Move
	nextPlayerID model.PlayerID
	nextMoveID   model.MoveID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
		moves:   make(map[model.MoveID]*model.Move),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *player
	if stored.ID == 0 {
		s.nextPlayerID++
		stored.ID = s.nextPlayerID
	}
	s.players[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (s *Storage) FindActivePlayersByName(ctx context.Context, firstName, lastName string) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*model.Player
	for _, p := range s.players {
		if !p.Active {
			continue
		}
		if strings.EqualFold(p.FirstName, firstName) && strings.EqualFold(p.LastName, lastName) {
			cp := *p
			matches = append(matches, &cp)
		}
	}
	sortPlayersByID(matches)
	return matches, nil
}

func (s *Storage) FindActivePlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var players []*model.Player
	for _, p := range s.players {
		if !p.Active {
			continue
		}
		cp := *p
		players = append(players, &cp)
	}
	sortPlayersByID(players)
	return players, nil
}

// Move operations

func (s *Storage) SaveMove(ctx context.Context, move *model.Move) (*model.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *move
	if stored.ID == 0 {
		s.nextMoveID++
		stored.ID = s.nextMoveID
	}
	s.moves[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (s *Storage) FindCurrentMoves(ctx context.Context) ([]*model.Move, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var moves []*model.Move
	for _, m := range s.moves {
		if !m.Current {
			continue
		}
		cp := *m
		moves = append(moves, &cp)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].ID < moves[j].ID })
	return moves, nil
}

func sortPlayersByID(players []*model.Player) {
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
}
