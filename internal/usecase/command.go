package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jinwu-5/KubaGame/internal/apperror"
	"github.com/jinwu-5/KubaGame/internal/entity"
)

// MoveCommand is one requested move: who pushes, from where and in which direction.
type MoveCommand struct {
	PlayerName string            `json:"player"`
	Origin     entity.Coordinate `json:"origin"`
	Direction  entity.Direction  `json:"direction"`
}

// ParseCommand - parses "<player name> <row> <col> <direction>". The player name is
// everything before the last three fields, so it may contain spaces. The
// direction token is not checked here; the engine rejects unknown ones.
func ParseCommand(line string) (*MoveCommand, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected <player> <row> <col> <direction>, got %q", apperror.ErrMalformedCommand, line)
	}

	n := len(fields)

	row, err := strconv.Atoi(fields[n-3])
	if err != nil {
		return nil, fmt.Errorf("%w: row %q is not a number", apperror.ErrMalformedCommand, fields[n-3])
	}

	col, err := strconv.Atoi(fields[n-2])
	if err != nil {
		return nil, fmt.Errorf("%w: column %q is not a number", apperror.ErrMalformedCommand, fields[n-2])
	}

	return &MoveCommand{
		PlayerName: strings.Join(fields[:n-3], " "),
		Origin:     entity.Coordinate{Row: row, Col: col},
		Direction:  entity.Direction(fields[n-1]),
	}, nil
}
