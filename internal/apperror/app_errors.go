package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrUnknownPlayer    = errors.New("player is not part of this game")
	ErrNotYourMarble    = errors.New("marble does not belong to the player")
	ErrInvalidDirection = errors.New("invalid push direction")
	ErrRepeatedPosition = errors.New("move repeats the previous position")
	ErrNoRoomToPush     = errors.New("cell behind the marble is occupied")
	ErrSelfElimination  = errors.New("move pushes the player's own marble off the board")

	ErrInvalidPlayerName    = errors.New("player name is empty")
	ErrDuplicatePlayerName  = errors.New("players share the same name")
	ErrInvalidPlayerColor   = errors.New("player color must be white or black")
	ErrDuplicatePlayerColor = errors.New("players share the same color")

	ErrMalformedCommand = errors.New("malformed move command")
)
