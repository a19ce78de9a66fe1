package kuba

import (
	"github.com/jinwu-5/KubaGame/internal/entity"
)

type pushResult struct {
	board entity.Board
	// removed is the marble pushed off the edge, or entity.Empty when the line stopped on an empty cell.
	removed entity.Marble
}

// push moves the line of marbles starting at origin one cell in dir. The
// line ends at the first empty cell, which absorbs the last marble; when the
// line reaches the edge instead, the edge marble leaves the board. The
// origin always ends up empty. The input board is not modified.
func push(board entity.Board, origin entity.Coordinate, dir entity.Direction) pushResult {
	result := pushResult{board: board, removed: entity.Empty}
	if !dir.Valid() || !origin.Valid() || board.At(origin) == entity.Empty {
		return result
	}

	line := []entity.Coordinate{origin}
	next := origin.Next(dir)
	for next.Valid() && board.At(next) != entity.Empty {
		line = append(line, next)
		next = next.Next(dir)
	}

	last := line[len(line)-1]
	if next.Valid() {
		result.board.Set(next, board.At(last))
	} else {
		result.removed = board.At(last)
	}

	for i := len(line) - 1; i > 0; i-- {
		result.board.Set(line[i], board.At(line[i-1]))
	}
	result.board.Set(origin, entity.Empty)

	return result
}

// applyMove - performs an already validated move and records its outcome.
func (that *Game) applyMove(playerName string, origin entity.Coordinate, dir entity.Direction) {
	result := push(that.board, origin, dir)

	that.previousBoard = that.board
	that.hasPrevious = true
	that.board = result.board
	that.previousMover = playerName

	if result.removed != entity.Empty {
		that.recordPushOff(playerName, result.removed)
	}
}
