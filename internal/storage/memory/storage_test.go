package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/weixigu/boardgame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSavePlayerAssignsID() {
	saved, err := s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})
	s.Require().NoError(err)
	s.Equal(model.PlayerID(1), saved.ID)

	saved2, err := s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Bender", LastName: "Rodríguez", Active: true})
	s.Require().NoError(err)
	s.Equal(model.PlayerID(2), saved2.ID)
}

func (s *StorageSuite) TestSavePlayerKeepsExistingID() {
	saved, _ := s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})

	saved.NumWin = 5
	updated, err := s.storage.SavePlayer(s.ctx, saved)
	s.Require().NoError(err)
	s.Equal(saved.ID, updated.ID)

	players, _ := s.storage.FindActivePlayers(s.ctx)
	s.Require().Len(players, 1)
	s.Equal(5, players[0].NumWin)
}

func (s *StorageSuite) TestFindActivePlayersByNameIsCaseInsensitive() {
	_, _ = s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})

	players, err := s.storage.FindActivePlayersByName(s.ctx, "RICK", "sanchez")
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *StorageSuite) TestFindActivePlayersByNameExcludesTombstoned() {
	saved, _ := s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})

	saved.Tombstone()
	_, _ = s.storage.SavePlayer(s.ctx, saved)

	players, err := s.storage.FindActivePlayersByName(s.ctx, "Rick", "Sanchez")
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestFindActivePlayersSortedByID() {
	_, _ = s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})
	_, _ = s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Bender", LastName: "Rodríguez", Active: true})
	_, _ = s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Tiabeanie", LastName: "Whatever", Active: true})

	players, err := s.storage.FindActivePlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID(1), players[0].ID)
	s.Equal(model.PlayerID(2), players[1].ID)
	s.Equal(model.PlayerID(3), players[2].ID)
}

func (s *StorageSuite) TestSavePlayerReturnsCopy() {
	saved, _ := s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})

	// Mutating the returned row must not leak into the store
	saved.NumWin = 999

	players, _ := s.storage.FindActivePlayers(s.ctx)
	s.Require().Len(players, 1)
	s.Equal(0, players[0].NumWin)
}

// Move tests

func (s *StorageSuite) TestSaveMoveAssignsID() {
	saved, err := s.storage.SaveMove(s.ctx, &model.Move{Current: true})
	s.Require().NoError(err)
	s.Equal(model.MoveID(1), saved.ID)
}

func (s *StorageSuite) TestFindCurrentMovesInIDOrder() {
	for i := 0; i < 3; i++ {
		_, _ = s.storage.SaveMove(s.ctx, &model.Move{Current: true})
	}

	moves, err := s.storage.FindCurrentMoves(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(moves, 3)
	s.Equal(model.MoveID(1), moves[0].ID)
	s.Equal(model.MoveID(2), moves[1].ID)
	s.Equal(model.MoveID(3), moves[2].ID)
}

func (s *StorageSuite) TestFindCurrentMovesExcludesArchived() {
	first, _ := s.storage.SaveMove(s.ctx, &model.Move{Current: true})
	_, _ = s.storage.SaveMove(s.ctx, &model.Move{Current: true})

	first.Archive()
	_, _ = s.storage.SaveMove(s.ctx, first)

	moves, err := s.storage.FindCurrentMoves(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(moves, 1)
	s.Equal(model.MoveID(2), moves[0].ID)
}
