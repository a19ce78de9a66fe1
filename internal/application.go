package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/term"

	"github.com/jinwu-5/KubaGame/internal/config"
	"github.com/jinwu-5/KubaGame/internal/entity"
	"github.com/jinwu-5/KubaGame/internal/kuba"
	"github.com/jinwu-5/KubaGame/internal/render"
	"github.com/jinwu-5/KubaGame/internal/usecase"
)

const petnameWords = 2

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	in := io.Reader(os.Stdin)
	if conf.MovesPath != "" {
		file, err := os.Open(conf.MovesPath)
		if err != nil {
			return fmt.Errorf("could not open moves file: %w", err)
		}

		defer func() {
			if err = file.Close(); err != nil {
				log.Error("could not close moves file", "error", err)
			}
		}()

		in = file
	}

	runConf := *conf
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		runConf.NoColor = true
	}

	return run(ctx, logger, &runConf, in, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	playerA, playerB := buildPlayers(conf)

	game, err := kuba.NewGame(logger, playerA, playerB)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	log.Info("Game created", "player_a", playerA.Name, "player_b", playerB.Name)

	gameManager := usecase.NewGameManager(logger, game)

	type replayResult struct {
		summary *usecase.Summary
		err     error
	}

	// run replay
	replayCh := make(chan replayResult, 1)
	go func() {
		summary, replayErr := gameManager.Replay(ctx, in)
		replayCh <- replayResult{summary: summary, err: replayErr}
	}()

	select {
	case res := <-replayCh:
		if res.err != nil {
			return fmt.Errorf("replay failed: %w", res.err)
		}

		log.Info("Replay finished",
			"accepted", res.summary.Accepted,
			"rejected", res.summary.Rejected,
			"malformed", res.summary.Malformed,
			"winner", res.summary.Winner,
		)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if err = render.NewPrinter(conf.NoColor).Fprint(out, game); err != nil {
		return fmt.Errorf("could not print game: %w", err)
	}

	return nil
}

// buildPlayers - converts the configured players, generating names for the empty ones.
func buildPlayers(conf *config.Config) (entity.Player, entity.Player) {
	playerA := entity.Player{Name: conf.PlayerA.Name, Color: entity.ParseColor(conf.PlayerA.Color)}
	playerB := entity.Player{Name: conf.PlayerB.Name, Color: entity.ParseColor(conf.PlayerB.Color)}

	if playerA.Name == "" {
		playerA.Name = petname.Generate(petnameWords, "-")
	}

	for playerB.Name == "" || (conf.PlayerB.Name == "" && playerB.Name == playerA.Name) {
		playerB.Name = petname.Generate(petnameWords, "-")
	}

	return playerA, playerB
}
