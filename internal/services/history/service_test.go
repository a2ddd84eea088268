package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/weixigu/boardgame-go/internal/dependencies/mocks"
	"github.com/weixigu/boardgame-go/internal/model"
	"github.com/weixigu/boardgame-go/internal/storage/memory"
	"github.com/weixigu/boardgame-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// saveMoves appends n current moves, alternating the player to move
func (s *ServiceSuite) saveMoves(n int) []*model.Move {
	saved := make([]*model.Move, 0, n)
	for i := 0; i < n; i++ {
		move, err := s.service.SaveMove(s.ctx, &model.Move{XNext: i%2 != 0, Current: true})
		s.Require().NoError(err)
		saved = append(saved, move)
	}
	return saved
}

// SaveMove tests

func (s *ServiceSuite) TestSaveMoveAppends() {
	saved := s.saveMoves(2)

	s.NotZero(saved[0].ID)
	s.Less(saved[0].ID, saved[1].ID)
	s.Equal(s.clock.Now(), saved[0].CreatedAt)

	moves, _ := s.storage.FindCurrentMoves(s.ctx)
	s.Len(moves, 2)
}

func (s *ServiceSuite) TestSaveMoveRejectsArchived() {
	_, err := s.service.SaveMove(s.ctx, &model.Move{Current: false})
	s.ErrorIs(err, model.ErrMoveNotCurrent)
}

// ResetGame tests

func (s *ServiceSuite) TestResetGameArchivesEverything() {
	s.saveMoves(3)

	message, err := s.service.ResetGame(s.ctx)
	s.Require().NoError(err)
	s.Equal("Reset Tic-Tac-Toe game by removing all existing moves.", message)

	moves, _ := s.storage.FindCurrentMoves(s.ctx)
	s.Empty(moves)
}

func (s *ServiceSuite) TestResetGameOnEmptyHistorySucceeds() {
	_, err := s.service.ResetGame(s.ctx)
	s.NoError(err)
}

func (s *ServiceSuite) TestSaveAfterResetStartsFresh() {
	s.saveMoves(2)
	_, _ = s.service.ResetGame(s.ctx)

	move, err := s.service.SaveMove(s.ctx, &model.Move{XNext: false, Current: true})
	s.Require().NoError(err)

	viewed, err := s.service.ViewPrevMove(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal(move.ID, viewed.ID)
}

// ViewPrevMove tests

func (s *ServiceSuite) TestViewPrevMove() {
	saved := s.saveMoves(3)

	viewed, err := s.service.ViewPrevMove(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(saved[1].ID, viewed.ID)
}

func (s *ServiceSuite) TestViewPrevMoveNegativeIndex() {
	s.saveMoves(1)

	_, err := s.service.ViewPrevMove(s.ctx, -1)
	s.ErrorIs(err, model.ErrIndexOutOfRange)
}

func (s *ServiceSuite) TestViewPrevMoveIndexTooLarge() {
	s.saveMoves(2)

	_, err := s.service.ViewPrevMove(s.ctx, 2)
	s.ErrorIs(err, model.ErrIndexOutOfRange)
}

func (s *ServiceSuite) TestViewPrevMoveEmptyHistory() {
	_, err := s.service.ViewPrevMove(s.ctx, 0)
	s.ErrorIs(err, model.ErrIndexOutOfRange)
}

// RevertToPrevMove tests

func (s *ServiceSuite) TestRevertArchivesLaterMoves() {
	saved := s.saveMoves(4)

	reverted, err := s.service.RevertToPrevMove(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(saved[1].ID, reverted.ID)

	moves, _ := s.storage.FindCurrentMoves(s.ctx)
	s.Require().Len(moves, 2)
	s.Equal(saved[0].ID, moves[0].ID)
	s.Equal(saved[1].ID, moves[1].ID)
}

func (s *ServiceSuite) TestRevertToLastMoveIsNoOp() {
	saved := s.saveMoves(2)

	reverted, err := s.service.RevertToPrevMove(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(saved[1].ID, reverted.ID)

	moves, _ := s.storage.FindCurrentMoves(s.ctx)
	s.Len(moves, 2)
}

func (s *ServiceSuite) TestRevertThenSaveContinuesSequence() {
	saved := s.saveMoves(3)

	_, err := s.service.RevertToPrevMove(s.ctx, 0)
	s.Require().NoError(err)

	next, err := s.service.SaveMove(s.ctx, &model.Move{XNext: true, Current: true})
	s.Require().NoError(err)

	moves, _ := s.storage.FindCurrentMoves(s.ctx)
	s.Require().Len(moves, 2)
	s.Equal(saved[0].ID, moves[0].ID)
	s.Equal(next.ID, moves[1].ID)

	// The archived branch never comes back
	s.Greater(next.ID, saved[2].ID)
}

func (s *ServiceSuite) TestRevertIndexOutOfRange() {
	s.saveMoves(2)

	_, err := s.service.RevertToPrevMove(s.ctx, 5)
	s.ErrorIs(err, model.ErrIndexOutOfRange)

	// Nothing was archived
	moves, _ := s.storage.FindCurrentMoves(s.ctx)
	s.Len(moves, 2)
}
