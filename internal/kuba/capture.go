package kuba

import (
	"github.com/jinwu-5/KubaGame/internal/entity"
)

// capturesToWin is the number of red marbles a player must push off to win.
const capturesToWin = 7

// recordPushOff - updates counts after a marble left the board and decides the winner.
func (that *Game) recordPushOff(playerName string, removed entity.Marble) {
	switch removed {
	case entity.Red:
		that.redCount--

		idx, ok := that.playerIndex(playerName)
		if !ok {
			return
		}

		that.captured[idx]++
		if that.captured[idx] >= capturesToWin {
			that.setWinner(playerName)
		}
	case entity.White:
		that.whiteCount--
		if that.whiteCount == 0 {
			that.setWinner(that.opponentOf(entity.White))
		}
	case entity.Black:
		that.blackCount--
		if that.blackCount == 0 {
			that.setWinner(that.opponentOf(entity.Black))
		}
	}
}

// opponentOf - returns the name of the player who does not own the color.
func (that *Game) opponentOf(color entity.Marble) string {
	if that.players[0].Color == color {
		return that.players[1].Name
	}

	return that.players[0].Name
}

// setWinner keeps the first winner; a finished game never changes hands.
func (that *Game) setWinner(name string) {
	if that.winner != "" {
		return
	}

	that.winner = name
	that.logger.Info("game finished", "winner", name)
}
