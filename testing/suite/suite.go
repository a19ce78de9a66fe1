package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jinwu-5/KubaGame/internal/entity"
	"github.com/jinwu-5/KubaGame/internal/kuba"
)

const maxWaitDuration = 30 * time.Second

const (
	PlayerAName = "alice"
	PlayerBName = "bob"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	PlayerA entity.Player
	PlayerB entity.Player
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		PlayerA: entity.Player{Name: PlayerAName, Color: entity.White},
		PlayerB: entity.Player{Name: PlayerBName, Color: entity.Black},
	}
}

// NewGame - creates a game on the starting board with the suite's players.
func (that *Suite) NewGame() *kuba.Game {
	that.Helper()

	game, err := kuba.NewGame(that.Logger, that.PlayerA, that.PlayerB)
	if err != nil {
		that.Fatalf("could not create game: %v", err)
	}

	return game
}

// NewGameWithBoard - creates a game from seven board rows, see entity.ParseBoard.
func (that *Suite) NewGameWithBoard(rows ...string) *kuba.Game {
	that.Helper()

	board, err := entity.ParseBoard(rows...)
	if err != nil {
		that.Fatalf("could not parse board: %v", err)
	}

	game, err := kuba.NewGameWithBoard(that.Logger, that.PlayerA, that.PlayerB, board)
	if err != nil {
		that.Fatalf("could not create game: %v", err)
	}

	return game
}
