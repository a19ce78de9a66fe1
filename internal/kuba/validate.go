package kuba

import (
	"fmt"

	"github.com/jinwu-5/KubaGame/internal/apperror"
	"github.com/jinwu-5/KubaGame/internal/entity"
)

// validateMove - checks if the move is legal. It never mutates the game:
// the resulting position is computed on a copy of the board.
func (that *Game) validateMove(playerName string, origin entity.Coordinate, dir entity.Direction) error {
	if that.winner != "" {
		return apperror.ErrGameFinished
	}

	// turn order comes from the last mover only, so the first move is open to both players
	if that.previousMover != "" && that.previousMover == playerName {
		return apperror.ErrNotYourTurn
	}

	idx, ok := that.playerIndex(playerName)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, playerName)
	}

	if !origin.Valid() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidCoordinate, origin)
	}

	color := that.players[idx].Color
	if that.board.At(origin) != color {
		return fmt.Errorf("%w: %s at %s", apperror.ErrNotYourMarble, that.board.At(origin), origin)
	}

	if !dir.Valid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, string(dir))
	}

	result := push(that.board, origin, dir)
	if that.hasPrevious && result.board == that.previousBoard {
		return apperror.ErrRepeatedPosition
	}

	dRow, dCol := dir.Step()
	behind := entity.Coordinate{Row: origin.Row - dRow, Col: origin.Col - dCol}
	if behind.Valid() && that.board.At(behind) != entity.Empty {
		return fmt.Errorf("%w: %s", apperror.ErrNoRoomToPush, behind)
	}

	if result.removed == color {
		return apperror.ErrSelfElimination
	}

	return nil
}
