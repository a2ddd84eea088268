package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/weixigu/boardgame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSavePlayerAssignsSequentialIDs() {
	first, err := s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})
	s.Require().NoError(err)
	s.Equal(model.PlayerID(1), first.ID)

	second, err := s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Bender", LastName: "Rodríguez", Active: true})
	s.Require().NoError(err)
	s.Equal(model.PlayerID(2), second.ID)
}

func (s *StorageSuite) TestFindActivePlayersByName() {
	_, _ = s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", NumWin: 10, Active: true})
	_, _ = s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Bender", LastName: "Rodríguez", Active: true})

	players, err := s.storage.FindActivePlayersByName(s.ctx, "Rick", "Sanchez")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(10, players[0].NumWin)
}

func (s *StorageSuite) TestNameIndexIsCaseInsensitive() {
	_, _ = s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})

	players, err := s.storage.FindActivePlayersByName(s.ctx, "RICK", "sanchez")
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *StorageSuite) TestTombstoneDropsFromIndexes() {
	saved, _ := s.storage.SavePlayer(s.ctx, &model.Player{FirstName: "Rick", LastName: "Sanchez", Active: true})

	saved.Tombstone()
	_, err := s.storage.SavePlayer(s.ctx, saved)
	s.Require().NoError(err)

	byName, err := s.storage.FindActivePlayersByName(s.ctx, "Rick", "Sanchez")
	s.Require().NoError(err)
	s.Empty(byName)

	all, err := s.storage.FindActivePlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)

	// The value itself survives the tombstone
	s.True(s.mini.Exists(playerKey(saved.ID)))
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

// Move tests

func (s *StorageSuite) TestSaveMoveAssignsSequentialIDs() {
	first, err := s.storage.SaveMove(s.ctx, &model.Move{Current: true})
	s.Require().NoError(err)
	s.Equal(model.MoveID(1), first.ID)

	second, err := s.storage.SaveMove(s.ctx, &model.Move{Current: true})
	s.Require().NoError(err)
	s.Equal(model.MoveID(2), second.ID)
}

func (s *StorageSuite) TestFindCurrentMovesInIDOrder() {
	for i := 0; i < 3; i++ {
		_, _ = s.storage.SaveMove(s.ctx, &model.Move{Current: true, XNext: i%2 == 0})
	}

	moves, err := s.storage.FindCurrentMoves(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(moves, 3)
	s.Equal(model.MoveID(1), moves[0].ID)
	s.Equal(model.MoveID(3), moves[2].ID)
}

func (s *StorageSuite) TestArchiveDropsFromCurrentIndex() {
	first, _ := s.storage.SaveMove(s.ctx, &model.Move{Current: true})
	_, _ = s.storage.SaveMove(s.ctx, &model.Move{Current: true})

	first.Archive()
	_, err := s.storage.SaveMove(s.ctx, first)
	s.Require().NoError(err)

	moves, err := s.storage.FindCurrentMoves(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(moves, 1)
	s.Equal(model.MoveID(2), moves[0].ID)

	// The archived value survives by key
	s.True(s.mini.Exists(moveKey(first.ID)))
}

func (s *StorageSuite) TestFindCurrentMovesEmpty() {
	moves, err := s.storage.FindCurrentMoves(s.ctx)
	s.Require().NoError(err)
	s.Empty(moves)
}

func (s *StorageSuite) TestBoardRoundTrips() {
	board := model.Board{
		{model.MarkX, model.NoWinner, model.MarkO},
		{model.NoWinner, model.MarkX, model.NoWinner},
		{model.NoWinner, model.NoWinner, model.MarkO},
	}
	_, _ = s.storage.SaveMove(s.ctx, &model.Move{Board: board, XNext: false, Current: true})

	moves, err := s.storage.FindCurrentMoves(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(moves, 1)
	s.Equal(board, moves[0].Board)
	s.False(moves[0].XNext)
}
