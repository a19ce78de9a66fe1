// Package render prints the board and match status for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jinwu-5/KubaGame/internal/entity"
)

type gameView interface {
	Board() entity.Board
	Players() [2]entity.Player
	Captured(playerName string) int
	MarbleCount() (int, int, int)
	CurrentTurn() string
	Winner() string
}

type Printer struct {
	palette map[entity.Marble]*color.Color
}

// NewPrinter - builds a printer. With noColor set the output is identical to the plain board dump.
func NewPrinter(noColor bool) *Printer {
	palette := map[entity.Marble]*color.Color{
		entity.White: color.New(color.FgHiWhite, color.Bold),
		entity.Black: color.New(color.FgHiBlue, color.Bold),
		entity.Red:   color.New(color.FgRed, color.Bold),
		entity.Empty: color.New(color.Faint),
	}

	if noColor {
		for _, c := range palette {
			c.DisableColor()
		}
	}

	return &Printer{palette: palette}
}

func (that *Printer) marble(m entity.Marble) string {
	c, ok := that.palette[m]
	if !ok {
		return string(m)
	}

	return c.Sprint(string(m))
}

// FprintBoard - writes the board with row and column indexes.
func (that *Printer) FprintBoard(w io.Writer, board entity.Board) error {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < entity.BoardSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < entity.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < entity.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(that.marble(board.At(entity.Coordinate{Row: row, Col: col})))
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Fprint - writes the board followed by marble counts, captures and the game status.
func (that *Printer) Fprint(w io.Writer, game gameView) error {
	if err := that.FprintBoard(w, game.Board()); err != nil {
		return err
	}

	var sb strings.Builder

	white, black, red := game.MarbleCount()
	fmt.Fprintf(&sb, "\n%s %d  %s %d  %s %d\n",
		that.marble(entity.White), white,
		that.marble(entity.Black), black,
		that.marble(entity.Red), red,
	)

	for _, player := range game.Players() {
		fmt.Fprintf(&sb, "%s (%s) captured %d\n", player.Name, that.marble(player.Color), game.Captured(player.Name))
	}

	switch {
	case game.Winner() != "":
		fmt.Fprintf(&sb, "winner: %s\n", game.Winner())
	case game.CurrentTurn() != "":
		fmt.Fprintf(&sb, "next: %s\n", game.CurrentTurn())
	default:
		sb.WriteString("next: either player\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}

	return nil
}
