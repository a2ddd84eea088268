// Package seed loads sample players into an empty ledger for demos and
// local development.
package seed

import (
	"context"
	"errors"
	"log/slog"

	"github.com/weixigu/boardgame-go/internal/model"
	"github.com/weixigu/boardgame-go/internal/services/ledger"
)

// Players returns the sample ledger rows
func Players() []*model.Player {
	return []*model.Player{
		{FirstName: "Rick", LastName: "Sanchez", NickName: "Pickle Rick", NumWin: 10},
		{FirstName: "Tiabeanie", LastName: "Whatever", NickName: "Bean", NumWin: 6, NumLoss: 2},
		{FirstName: "Bender", LastName: "Rodríguez", NickName: "Shiny Metal Piece", NumWin: 11, NumLoss: 101011},
	}
}

// Load creates the sample players through the ledger service. A player whose
// name is already active is skipped, so loading twice is harmless.
func Load(ctx context.Context, svc ledger.ServiceInterface, logger *slog.Logger) error {
	for _, player := range Players() {
		if _, err := svc.Create(ctx, player); err != nil {
			if errors.Is(err, model.ErrPlayerExists) {
				logger.Info("seed player already present", slog.String("player", player.FullName()))
				continue
			}
			return err
		}
		logger.Info("seed player created", slog.String("player", player.FullName()))
	}
	return nil
}
