package kuba

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jinwu-5/KubaGame/internal/entity"
)

const (
	alice = "alice"
	bob   = "bob"
)

var (
	playerWhite = entity.Player{Name: alice, Color: entity.White}
	playerBlack = entity.Player{Name: bob, Color: entity.Black}
)

func at(row, col int) entity.Coordinate {
	return entity.Coordinate{Row: row, Col: col}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()

	game, err := NewGame(nil, playerWhite, playerBlack)
	require.NoError(t, err)

	return game
}

func newTestGameWithBoard(t *testing.T, rows ...string) *Game {
	t.Helper()

	board, err := entity.ParseBoard(rows...)
	require.NoError(t, err)

	game, err := NewGameWithBoard(nil, playerWhite, playerBlack, board)
	require.NoError(t, err)

	return game
}

func mustBoard(t *testing.T, rows ...string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(rows...)
	require.NoError(t, err)

	return board
}

// requireConsistentCounts checks the tracked counts against the board contents.
func requireConsistentCounts(t *testing.T, game *Game) {
	t.Helper()

	white, black, red := game.MarbleCount()
	board := game.Board()

	require.Equal(t, board.Count(entity.White), white)
	require.Equal(t, board.Count(entity.Black), black)
	require.Equal(t, board.Count(entity.Red), red)
	require.Equal(t, entity.CellsCount, white+black+red+board.Count(entity.Empty))
}
