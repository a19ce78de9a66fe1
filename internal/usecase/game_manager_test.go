package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jinwu-5/KubaGame/internal/entity"
	"github.com/jinwu-5/KubaGame/testing/suite"
)

type mockGameEngine struct {
	mock.Mock
}

func (that *mockGameEngine) MakeMove(playerName string, origin entity.Coordinate, dir entity.Direction) bool {
	args := that.Called(playerName, origin, dir)
	return args.Bool(0)
}

func (that *mockGameEngine) Winner() string {
	return that.Called().String(0)
}

func (that *mockGameEngine) CurrentTurn() string {
	return that.Called().String(0)
}

func (that *mockGameEngine) Captured(playerName string) int {
	return that.Called(playerName).Int(0)
}

func (that *mockGameEngine) MarbleCount() (int, int, int) {
	args := that.Called()
	return args.Int(0), args.Int(1), args.Int(2)
}

func TestGameManager_MakeTurn(t *testing.T) {
	cmd := MoveCommand{
		PlayerName: "alice",
		Origin:     entity.Coordinate{Row: 3, Col: 0},
		Direction:  entity.Right,
	}

	t.Run("Accepted move with a capture and a win", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: an engine that accepts the move and reports a seventh capture
		engine := &mockGameEngine{}
		engine.On("Captured", "alice").Return(6).Once()
		engine.On("MakeMove", "alice", cmd.Origin, cmd.Direction).Return(true).Once()
		engine.On("Captured", "alice").Return(7).Once()
		engine.On("MarbleCount").Return(3, 4, 6).Once()
		engine.On("CurrentTurn").Return("bob").Once()
		engine.On("Winner").Return("alice").Once()

		manager := NewGameManager(st.Logger, engine)

		// When: the turn is made
		result, err := manager.MakeTurn(ctx, cmd)

		// Then: the result mirrors the engine state
		require.NoError(t, err)
		assert.Equal(t, &TurnResult{
			Command:  cmd,
			Accepted: true,
			Captured: 7,
			White:    3,
			Black:    4,
			Red:      6,
			Turn:     "bob",
			Winner:   "alice",
		}, result)
		engine.AssertExpectations(t)
	})

	t.Run("Rejected move is not an error", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: an engine that rejects the move
		engine := &mockGameEngine{}
		engine.On("Captured", "alice").Return(0)
		engine.On("MakeMove", "alice", cmd.Origin, cmd.Direction).Return(false).Once()
		engine.On("MarbleCount").Return(8, 8, 13).Once()
		engine.On("CurrentTurn").Return("alice").Once()
		engine.On("Winner").Return("").Once()

		manager := NewGameManager(st.Logger, engine)

		// When: the turn is made
		result, err := manager.MakeTurn(ctx, cmd)

		// Then: the result reports the rejection
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Equal(t, "alice", result.Turn)
		engine.AssertExpectations(t)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: a cancelled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		engine := &mockGameEngine{}
		manager := NewGameManager(st.Logger, engine)

		// When: a turn is requested
		result, err := manager.MakeTurn(ctx, cmd)

		// Then: the engine is never called
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
		engine.AssertNotCalled(t, "MakeMove", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGameManager_Replay(t *testing.T) {
	t.Run("Plays a script against the engine", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a fresh game and a script with comments, a repeated mover and a bad line
		game := st.NewGame()
		manager := NewGameManager(st.Logger, game)

		script := strings.Join([]string{
			"# opening",
			"bob 6 0 F",
			"",
			"alice 6 6 F",
			"alice 0 0 B",
			"this is not a move",
			"bob 0 5 B",
		}, "\n")

		// When: replaying it
		summary, err := manager.Replay(ctx, strings.NewReader(script))

		// Then: every line is accounted for
		require.NoError(t, err)
		assert.Equal(t, &Summary{Accepted: 3, Rejected: 1, Malformed: 1}, summary)
		assert.Equal(t, "alice", game.CurrentTurn())

		marble, err := game.MarbleAt(entity.Coordinate{Row: 2, Col: 5})
		require.NoError(t, err)
		assert.Equal(t, entity.Black, marble)
	})

	t.Run("Reports the winner", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: bob has one marble left at the end of a full row
		game := st.NewGameWithBoard(
			"WWRRRRB",
			"XXXXXXX",
			"XXXXXXX",
			"XXXXXXX",
			"XXXXXXX",
			"XXXXXXX",
			"XXXXXXX",
		)
		manager := NewGameManager(st.Logger, game)

		// When: alice pushes it off and bob tries to answer
		summary, err := manager.Replay(ctx, strings.NewReader("alice 0 0 R\nbob 0 6 L\n"))

		// Then: alice wins and bob's move is rejected
		require.NoError(t, err)
		assert.Equal(t, &Summary{Accepted: 1, Rejected: 1, Winner: "alice"}, summary)
	})

	t.Run("Stops on cancellation", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: a cancelled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		manager := NewGameManager(st.Logger, st.NewGame())

		// When: replaying
		_, err := manager.Replay(ctx, strings.NewReader("bob 6 0 F\n"))

		// Then: the cancellation is returned
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Read errors are returned", func(t *testing.T) {
		ctx, st := suite.New(t)

		manager := NewGameManager(st.Logger, st.NewGame())

		_, err := manager.Replay(ctx, failingReader{})

		require.ErrorIs(t, err, errBrokenPipe)
	})
}

var errBrokenPipe = errors.New("broken pipe")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBrokenPipe
}
