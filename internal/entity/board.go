package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Marble is the content of a single board cell.
type Marble string

const (
	White Marble = "W"
	Black Marble = "B"
	Red   Marble = "R"
	Empty Marble = "X"
)

const (
	BoardSize  = 7
	CellsCount = BoardSize * BoardSize
)

var (
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrInvalidBoard      = errors.New("invalid board layout")
)

// startLayout is the canonical opening position, row 0 first.
var startLayout = [BoardSize]string{
	"WWXXXBB",
	"WWXRXBB",
	"XXRRRXX",
	"XRRRRRX",
	"XXRRRXX",
	"BBXRXWW",
	"BBXXXWW",
}

// IsPlayerColor reports whether the marble is one of the two colors a player can own.
func (that Marble) IsPlayerColor() bool {
	return that == White || that == Black
}

// Coordinate addresses a cell by row and column, row 0 being the top row.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coordinate) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Next returns the neighbour of the coordinate in the given direction. The
// result may lie outside the board.
func (that Coordinate) Next(dir Direction) Coordinate {
	dRow, dCol := dir.Step()

	return Coordinate{Row: that.Row + dRow, Col: that.Col + dCol}
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is the 7x7 grid stored row-major in a fixed array, so copying a Board copies every cell.
type Board [CellsCount]Marble

// NewBoard - returns the canonical starting layout.
func NewBoard() Board {
	var board Board

	for row, line := range startLayout {
		for col, symbol := range line {
			board[row*BoardSize+col] = Marble(symbol)
		}
	}

	return board
}

// At - returns the marble at the coordinate. The coordinate must be valid.
func (that Board) At(c Coordinate) Marble {
	return that[c.Row*BoardSize+c.Col]
}

// Set - places a marble at the coordinate. The coordinate must be valid.
func (that *Board) Set(c Coordinate, m Marble) {
	that[c.Row*BoardSize+c.Col] = m
}

// Count - returns how many cells hold the given marble.
func (that Board) Count(m Marble) int {
	count := 0
	for _, cell := range that {
		if cell == m {
			count++
		}
	}

	return count
}

// String - dumps the board row by row, cells separated by a space.
func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(that[row*BoardSize+col]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ParseBoard - builds a board from seven rows of seven symbols. Spaces inside a row are ignored.
func ParseBoard(rows ...string) (Board, error) {
	var board Board

	if len(rows) != BoardSize {
		return board, fmt.Errorf("%w: got %d rows", ErrInvalidBoard, len(rows))
	}

	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != BoardSize {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row, len(line))
		}

		for col, symbol := range line {
			m := Marble(symbol)
			switch m {
			case White, Black, Red, Empty:
				board[row*BoardSize+col] = m
			default:
				return board, fmt.Errorf("%w: unknown symbol %q at %d,%d", ErrInvalidBoard, symbol, row, col)
			}
		}
	}

	return board, nil
}
