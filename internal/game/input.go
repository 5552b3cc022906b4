package game

import (
	"context"
	"fmt"
)

// InputKind is the kind of value an InputSource produces
type InputKind int

const (
	InputSelect InputKind = iota
	InputExit
	InputRestart
	InputUndo
)

// Input is one player action. Column is the 1-based column for InputSelect.
type Input struct {
	Kind   InputKind
	Column int
}

// Select returns a column selection input
func Select(column int) Input {
	return Input{Kind: InputSelect, Column: column}
}

var (
	Exit    = Input{Kind: InputExit}
	Restart = Input{Kind: InputRestart}
	Undo    = Input{Kind: InputUndo}
)

func (i Input) String() string {
	switch i.Kind {
	case InputSelect:
		return fmt.Sprintf("column %d", i.Column)
	case InputExit:
		return "exit"
	case InputRestart:
		return "restart"
	case InputUndo:
		return "undo"
	default:
		return "unknown"
	}
}

// InputSource blocks until the player produces an input.
// Implementations handle their own idle re-prompting.
type InputSource interface {
	Next(ctx context.Context) (Input, error)
}
