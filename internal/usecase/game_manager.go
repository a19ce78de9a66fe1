package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jinwu-5/KubaGame/internal/entity"
)

type gameEngine interface {
	MakeMove(playerName string, origin entity.Coordinate, dir entity.Direction) bool
	Winner() string
	CurrentTurn() string
	Captured(playerName string) int
	MarbleCount() (int, int, int)
}

// TurnResult describes the game right after one move request.
type TurnResult struct {
	Command  MoveCommand `json:"command"`
	Accepted bool        `json:"accepted"`
	Captured int         `json:"captured"`
	White    int         `json:"white"`
	Black    int         `json:"black"`
	Red      int         `json:"red"`
	Turn     string      `json:"turn"`
	Winner   string      `json:"winner,omitempty"`
}

// Summary counts the outcome of a replayed move script.
type Summary struct {
	Accepted  int    `json:"accepted"`
	Rejected  int    `json:"rejected"`
	Malformed int    `json:"malformed"`
	Winner    string `json:"winner,omitempty"`
}

type GameManager struct {
	logger *slog.Logger
	game   gameEngine
}

func NewGameManager(logger *slog.Logger, game gameEngine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		game:   game,
	}
}

// MakeTurn - passes the command to the engine. A rejected move is a normal
// outcome reported through TurnResult.Accepted, not an error.
func (that *GameManager) MakeTurn(ctx context.Context, cmd MoveCommand) (*TurnResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("turn cancelled: %w", err)
	}

	log := that.logger.With("method", "MakeTurn", "player", cmd.PlayerName, "origin", cmd.Origin.String(), "direction", string(cmd.Direction))

	capturedBefore := that.game.Captured(cmd.PlayerName)
	accepted := that.game.MakeMove(cmd.PlayerName, cmd.Origin, cmd.Direction)

	white, black, red := that.game.MarbleCount()
	result := &TurnResult{
		Command:  cmd,
		Accepted: accepted,
		Captured: that.game.Captured(cmd.PlayerName),
		White:    white,
		Black:    black,
		Red:      red,
		Turn:     that.game.CurrentTurn(),
		Winner:   that.game.Winner(),
	}

	if !accepted {
		log.Warn("move rejected")
		return result, nil
	}

	log.Info("move made", "white", white, "black", black, "red", red)

	if result.Captured > capturedBefore {
		log.Info("red marble captured", "captured", result.Captured)
	}

	if result.Winner != "" {
		log.Info("game finished", "winner", result.Winner)
	}

	return result, nil
}

// Replay - reads move commands line by line and plays them in order. Blank
// lines and lines starting with # are skipped; malformed lines are counted and skipped.
func (that *GameManager) Replay(ctx context.Context, reader io.Reader) (*Summary, error) {
	log := that.logger.With("method", "Replay")

	summary := &Summary{}
	scanner := bufio.NewScanner(reader)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			log.Warn("skipping malformed line", "line", lineNumber, "error", err)
			summary.Malformed++
			continue
		}

		result, err := that.MakeTurn(ctx, *cmd)
		if err != nil {
			return summary, fmt.Errorf("failed to replay line %d: %w", lineNumber, err)
		}

		if result.Accepted {
			summary.Accepted++
		} else {
			summary.Rejected++
		}
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read moves: %w", err)
	}

	summary.Winner = that.game.Winner()

	return summary, nil
}
