package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/arcanaland/nestor/internal/board"
	"github.com/arcanaland/nestor/internal/card"
	"github.com/arcanaland/nestor/internal/game"
)

// DefaultEmptyMarker is printed in place of a removed card
const DefaultEmptyMarker = "--"

// Display prints the board and game messages for the player
type Display struct {
	out         io.Writer
	emptyMarker string

	red     *color.Color
	faint   *color.Color
	heading *color.Color
	warn    *color.Color
	success *color.Color
}

// NewDisplay creates a display writing to out. An empty marker of "" uses
// DefaultEmptyMarker.
func NewDisplay(out io.Writer, emptyMarker string) *Display {
	if emptyMarker == "" {
		emptyMarker = DefaultEmptyMarker
	}
	return &Display{
		out:         out,
		emptyMarker: emptyMarker,
		red:         color.New(color.FgRed),
		faint:       color.New(color.Faint),
		heading:     color.New(color.FgCyan, color.Bold),
		warn:        color.New(color.FgYellow),
		success:     color.New(color.FgGreen, color.Bold),
	}
}

// Notify implements game.Observer
func (d *Display) Notify(e game.Event) {
	switch e.Kind {
	case game.EventTurn:
		d.printBoard(e.Board)
		fmt.Fprintln(d.out, "\nColumn 9 plays the reserve cards")
		fmt.Fprintln(d.out, d.faint.Sprint("Commands: <ESC> quit, n/N new game, u/U undo."))
	case game.EventPrompt:
		fmt.Fprintf(d.out, "\nCard column %d: ", e.Selection)
	case game.EventSelected:
		fmt.Fprintln(d.out, e.Column)
	case game.EventMatched:
		fmt.Fprintf(d.out, "\nMatched %s and %s\n", d.cardString(e.Move.Cards[0]), d.cardString(e.Move.Cards[1]))
	case game.EventRejected:
		fmt.Fprintln(d.out, "\n"+d.warn.Sprint(rejectionMessage(e.Err)))
	case game.EventRestarted:
		fmt.Fprintln(d.out, d.heading.Sprint("\nNew game dealt"))
	case game.EventUndone:
		fmt.Fprintln(d.out, "\nLast move undone")
	case game.EventUndoUnavailable:
		fmt.Fprintln(d.out, "\n"+d.warn.Sprint("Nothing to undo yet"))
	case game.EventWon:
		fmt.Fprintln(d.out, "\n"+d.success.Sprintf("You won the game in %d moves :D", e.Moves))
	case game.EventExited:
		fmt.Fprintln(d.out, "\nGame over ;)")
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidSelection):
		return "Invalid position :P Try again :)"
	case errors.Is(err, game.ErrEmptySource):
		return "There is no card in one or both positions :P Try again :D"
	case errors.Is(err, game.ErrNoMatch):
		return "The card does not seem to match any reserve card :/ Try again :)"
	case errors.Is(err, game.ErrMismatch):
		return "The cards do not seem to match :/ Try again :)"
	default:
		return fmt.Sprintf("Move rejected: %v", err)
	}
}

func (d *Display) printBoard(b *board.Board) {
	fmt.Fprintln(d.out, d.heading.Sprint("Cards:"))
	for row := 0; row < board.Rows; row++ {
		var line strings.Builder
		for col := 0; col < board.Columns; col++ {
			line.WriteString(d.slotString(b.Grid(row, col)))
			line.WriteString(" ")
		}
		fmt.Fprintln(d.out, line.String())
	}

	var legend strings.Builder
	for col := 1; col <= board.Columns; col++ {
		fmt.Fprintf(&legend, "%d| ", col)
	}
	legend.WriteString("-> columns")
	fmt.Fprintln(d.out, d.faint.Sprint(legend.String()))

	fmt.Fprintln(d.out, d.heading.Sprint("\nReserve cards:"))
	for i := 0; i < board.ReserveSize; i++ {
		fmt.Fprintf(d.out, "%d: %s\n", i+1, d.slotString(b.Reserve(i)))
	}
}

func (d *Display) slotString(s board.Slot) string {
	c, ok := s.Card()
	if !ok {
		return d.faint.Sprint(d.emptyMarker)
	}
	return d.cardString(c)
}

func (d *Display) cardString(c card.Card) string {
	if c.Suit.Red() {
		return d.red.Sprint(c.String())
	}
	return c.String()
}
