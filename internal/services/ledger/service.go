package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weixigu/boardgame-go/internal/dependencies/clock"
	"github.com/weixigu/boardgame-go/internal/model"
	"github.com/weixigu/boardgame-go/internal/storage"
)

// Service maintains the player ledger: at most one active statistics row per
// player name, with tombstone-and-replace merges so no historical snapshot is
// ever lost. Every operation is a read-check-write sequence serialized by a
// per-name lock; the store itself only needs read-your-writes consistency.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
	locks   *nameLocks
}

// New creates a new ledger Service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
		locks:   newNameLocks(),
	}
}

// Create stores player as a new active row. It fails if any active row
// already exists under the same name, so an accidental duplicate create can
// never overwrite standing statistics.
func (s *Service) Create(ctx context.Context, player *model.Player) (*model.Player, error) {
	unlock := s.locks.lock(nameKey(player.FirstName, player.LastName))
	defer unlock()

	if err := s.validateCreate(ctx, player); err != nil {
		return nil, err
	}

	row := *player
	row.ID = 0
	row.Active = true
	row.CreatedAt = s.clock.Now()

	saved, err := s.storage.SavePlayer(ctx, &row)
	if err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player", saved.FullName()),
		slog.Int64("id", int64(saved.ID)),
	)

	return saved, nil
}

// Delete tombstones the unique active row matching player's name. The
// caller-supplied record must equal the stored row field for field; a
// mismatch means the caller acted on stale data and nothing is changed.
// The tombstoned row's statistics are retained forever.
func (s *Service) Delete(ctx context.Context, player *model.Player) (string, error) {
	unlock := s.locks.lock(nameKey(player.FirstName, player.LastName))
	defer unlock()

	stored, err := s.findUniqueActive(ctx, player)
	if err != nil {
		return "", err
	}

	stored.Tombstone()
	if _, err := s.storage.SavePlayer(ctx, stored); err != nil {
		return "", err
	}

	message := fmt.Sprintf("Marked player %s as deleted in repo.", player.FullName())
	s.logger.Info("player deleted", slog.String("player", player.FullName()))

	return message, nil
}

// Replace substitutes newPlayer for oldPlayer. Identical records are a no-op
// returning oldPlayer unchanged. Otherwise oldPlayer must match its stored
// active row exactly, and when the name changes newPlayer's name must not be
// active elsewhere. The old row is tombstoned and newPlayer stored as a fresh
// active row.
func (s *Service) Replace(ctx context.Context, oldPlayer, newPlayer *model.Player) (*model.Player, error) {
	if model.SameData(oldPlayer, newPlayer) {
		return oldPlayer, nil
	}

	unlock := s.locks.lock(
		nameKey(oldPlayer.FirstName, oldPlayer.LastName),
		nameKey(newPlayer.FirstName, newPlayer.LastName),
	)
	defer unlock()

	stored, err := s.findUniqueActive(ctx, oldPlayer)
	if err != nil {
		return nil, err
	}

	if !model.SameName(oldPlayer, newPlayer) {
		if err := s.validateCreate(ctx, newPlayer); err != nil {
			return nil, err
		}
	}

	stored.Tombstone()
	if _, err := s.storage.SavePlayer(ctx, stored); err != nil {
		return nil, err
	}

	row := *newPlayer
	row.ID = 0
	row.Active = true
	row.CreatedAt = s.clock.Now()

	saved, err := s.storage.SavePlayer(ctx, &row)
	if err != nil {
		return nil, err
	}

	s.logger.Info("player replaced",
		slog.String("old_player", oldPlayer.FullName()),
		slog.String("new_player", saved.FullName()),
	)

	return saved, nil
}

// SaveRecord reconciles a single-game outcome into the ledger. The submitted
// player must carry exactly one of {win, loss, draw} set to 1 and the others
// 0. If no active row exists for the name the submission becomes the new
// active row verbatim; otherwise the counters are summed, the previous row is
// tombstoned, and a fresh active row carries the merged totals. The existing
// nickname wins unless it is blank.
func (s *Service) SaveRecord(ctx context.Context, player *model.Player) (*model.Player, error) {
	if err := validateOutcome(player); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(nameKey(player.FirstName, player.LastName))
	defer unlock()

	copies, err := s.storage.FindActivePlayersByName(ctx, player.FirstName, player.LastName)
	if err != nil {
		return nil, err
	}
	if len(copies) > 1 {
		return nil, fmt.Errorf("player %s has %d active copies in repo: %w",
			player.FullName(), len(copies), model.ErrDuplicatePlayers)
	}

	wins := player.NumWin
	losses := player.NumLoss
	draws := player.NumDraw
	nickName := player.NickName

	if len(copies) == 1 {
		existing := copies[0]

		if err := checkOverflow(player, existing); err != nil {
			return nil, err
		}

		wins += existing.NumWin
		losses += existing.NumLoss
		draws += existing.NumDraw

		// The established nickname wins; the submission only fills a blank
		if existing.NickName != "" {
			nickName = existing.NickName
		}

		existing.Tombstone()
		if _, err := s.storage.SavePlayer(ctx, existing); err != nil {
			return nil, err
		}
	}

	row := &model.Player{
		FirstName: player.FirstName,
		LastName:  player.LastName,
		NickName:  nickName,
		NumWin:    wins,
		NumLoss:   losses,
		NumDraw:   draws,
		Active:    true,
		CreatedAt: s.clock.Now(),
	}

	saved, err := s.storage.SavePlayer(ctx, row)
	if err != nil {
		return nil, err
	}

	s.logger.Info("record saved",
		slog.String("player", saved.FullName()),
		slog.Int("num_win", saved.NumWin),
		slog.Int("num_loss", saved.NumLoss),
		slog.Int("num_draw", saved.NumDraw),
	)

	return saved, nil
}

// validateCreate fails when any active row already holds the player's name
func (s *Service) validateCreate(ctx context.Context, player *model.Player) error {
	copies, err := s.storage.FindActivePlayersByName(ctx, player.FirstName, player.LastName)
	if err != nil {
		return err
	}
	if len(copies) > 0 {
		return fmt.Errorf("player name %s (to be created) %w", player.FullName(), model.ErrPlayerExists)
	}
	return nil
}

// findUniqueActive resolves player's name to its single active row and
// verifies the caller-supplied record matches it exactly
func (s *Service) findUniqueActive(ctx context.Context, player *model.Player) (*model.Player, error) {
	copies, err := s.storage.FindActivePlayersByName(ctx, player.FirstName, player.LastName)
	if err != nil {
		return nil, err
	}

	switch {
	case len(copies) > 1:
		return nil, fmt.Errorf("player %s has %d active copies in repo: %w",
			player.FullName(), len(copies), model.ErrDuplicatePlayers)
	case len(copies) == 0:
		return nil, fmt.Errorf("player %s DNE in repo: %w", player.FullName(), model.ErrPlayerNotFound)
	}

	stored := copies[0]
	if !model.SameData(stored, player) {
		return nil, fmt.Errorf("player %s is stale against its stored copy: %w",
			player.FullName(), model.ErrPlayerMismatch)
	}
	return stored, nil
}

// validateOutcome enforces that exactly one of {win, loss, draw} is 1 and the
// other two are 0
func validateOutcome(player *model.Player) error {
	wins, losses, draws := player.NumWin, player.NumLoss, player.NumDraw
	valid := wins >= 0 && losses >= 0 && draws >= 0 && wins+losses+draws == 1
	if !valid {
		return fmt.Errorf("player %s has %w: win=%d loss=%d draw=%d",
			player.FullName(), model.ErrInvalidOutcome, wins, losses, draws)
	}
	return nil
}

// checkOverflow rejects a merge that would push the incremented counter past
// MaxCounter, before anything is persisted
func checkOverflow(submitted, existing *model.Player) error {
	switch {
	case submitted.NumWin == 1 && existing.NumWin >= model.MaxCounter:
		return fmt.Errorf("cannot increase win count past %d: %w", model.MaxCounter, model.ErrCounterOverflow)
	case submitted.NumLoss == 1 && existing.NumLoss >= model.MaxCounter:
		return fmt.Errorf("cannot increase loss count past %d: %w", model.MaxCounter, model.ErrCounterOverflow)
	case submitted.NumDraw == 1 && existing.NumDraw >= model.MaxCounter:
		return fmt.Errorf("cannot increase draw count past %d: %w", model.MaxCounter, model.ErrCounterOverflow)
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Create(ctx context.Context, player *model.Player) (*model.Player, error)
	Delete(ctx context.Context, player *model.Player) (string, error)
	Replace(ctx context.Context, oldPlayer, newPlayer *model.Player) (*model.Player, error)
	SaveRecord(ctx context.Context, player *model.Player) (*model.Player, error)
	ListActive(ctx context.Context, page, size int, sortBy string) (*Page, error)
}

var _ ServiceInterface = (*Service)(nil)
