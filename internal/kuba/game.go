// Package kuba implements the Kuba rules engine: move validation, line
// pushes, capture tracking and win detection on the 7x7 board.
package kuba

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jinwu-5/KubaGame/internal/apperror"
	"github.com/jinwu-5/KubaGame/internal/entity"
)

const (
	startWhiteCount = 8
	startBlackCount = 8
	startRedCount   = 13
)

// Game holds the complete state of one match. It is mutated only through
// MakeMove and is not safe for concurrent use.
type Game struct {
	logger *slog.Logger

	players  [2]entity.Player
	captured [2]int

	board         entity.Board
	previousBoard entity.Board
	hasPrevious   bool

	whiteCount int
	blackCount int
	redCount   int

	previousMover string
	winner        string
}

// NewGame - creates a match on the canonical starting board.
func NewGame(logger *slog.Logger, playerA, playerB entity.Player) (*Game, error) {
	game, err := newGame(logger, playerA, playerB, entity.NewBoard())
	if err != nil {
		return nil, err
	}

	game.whiteCount = startWhiteCount
	game.blackCount = startBlackCount
	game.redCount = startRedCount

	return game, nil
}

// NewGameWithBoard - creates a match from an arbitrary position. Remaining
// marble counts are taken from the board itself.
func NewGameWithBoard(logger *slog.Logger, playerA, playerB entity.Player, board entity.Board) (*Game, error) {
	game, err := newGame(logger, playerA, playerB, board)
	if err != nil {
		return nil, err
	}

	game.whiteCount = board.Count(entity.White)
	game.blackCount = board.Count(entity.Black)
	game.redCount = board.Count(entity.Red)

	return game, nil
}

func newGame(logger *slog.Logger, playerA, playerB entity.Player, board entity.Board) (*Game, error) {
	if err := checkPlayers(playerA, playerB); err != nil {
		return nil, fmt.Errorf("invalid players: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Game{
		logger:  logger.With("component", "kuba"),
		players: [2]entity.Player{playerA, playerB},
		board:   board,
	}, nil
}

func checkPlayers(playerA, playerB entity.Player) error {
	if playerA.Name == "" || playerB.Name == "" {
		return apperror.ErrInvalidPlayerName
	}

	if playerA.Name == playerB.Name {
		return fmt.Errorf("%w: %s", apperror.ErrDuplicatePlayerName, playerA.Name)
	}

	if !playerA.Color.IsPlayerColor() || !playerB.Color.IsPlayerColor() {
		return fmt.Errorf("%w: got %q and %q", apperror.ErrInvalidPlayerColor, playerA.Color, playerB.Color)
	}

	if playerA.Color == playerB.Color {
		return fmt.Errorf("%w: %s", apperror.ErrDuplicatePlayerColor, playerA.Color)
	}

	return nil
}

// MakeMove - validates the move and applies it when legal. It reports
// whether the move was made; a rejected move leaves the game untouched.
func (that *Game) MakeMove(playerName string, origin entity.Coordinate, dir entity.Direction) bool {
	if err := that.validateMove(playerName, origin, dir); err != nil {
		that.logger.Debug("move rejected",
			"player", playerName,
			"origin", origin.String(),
			"direction", string(dir),
			"reason", err.Error(),
		)
		return false
	}

	that.applyMove(playerName, origin, dir)

	return true
}

// ValidateMove - reports whether the move is legal without changing the game.
func (that *Game) ValidateMove(playerName string, origin entity.Coordinate, dir entity.Direction) bool {
	return that.validateMove(playerName, origin, dir) == nil
}

// CurrentTurn returns the name of the player expected to move next, or an
// empty string before the first move, when either player may start.
func (that *Game) CurrentTurn() string {
	switch that.previousMover {
	case "":
		return ""
	case that.players[0].Name:
		return that.players[1].Name
	default:
		return that.players[0].Name
	}
}

// Winner returns the winning player's name, or an empty string while the game is running.
func (that *Game) Winner() string {
	return that.winner
}

func (that *Game) IsFinished() bool {
	return that.winner != ""
}

// Captured - returns the number of red marbles the player has pushed off. Unknown names get 0.
func (that *Game) Captured(playerName string) int {
	idx, ok := that.playerIndex(playerName)
	if !ok {
		return 0
	}

	return that.captured[idx]
}

func (that *Game) MarbleAt(c entity.Coordinate) (entity.Marble, error) {
	if !c.Valid() {
		return entity.Empty, fmt.Errorf("%w: %s", entity.ErrInvalidCoordinate, c)
	}

	return that.board.At(c), nil
}

// MarbleCount - returns the white, black and red marbles left on the board.
func (that *Game) MarbleCount() (int, int, int) {
	return that.whiteCount, that.blackCount, that.redCount
}

func (that *Game) Players() [2]entity.Player {
	return that.players
}

// Board returns a copy of the current board.
func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) String() string {
	return that.board.String()
}

func (that *Game) playerIndex(name string) (int, bool) {
	for i, player := range that.players {
		if player.Name == name {
			return i, true
		}
	}

	return -1, false
}
