package game

import "github.com/arcanaland/nestor/internal/board"

// EventKind identifies what happened in the game loop
type EventKind int

const (
	// EventDealt fires when a new board is dealt, at start or on restart
	EventDealt EventKind = iota
	// EventTurn fires at the top of every loop iteration with the current board
	EventTurn
	// EventPrompt asks for selection 1 or 2
	EventPrompt
	// EventSelected records a column chosen by the player
	EventSelected
	// EventMatched reports an accepted move
	EventMatched
	// EventRejected reports a move that left the board untouched
	EventRejected
	EventRestarted
	EventUndone
	EventUndoUnavailable
	EventWon
	EventExited
)

var eventNames = map[EventKind]string{
	EventDealt:           "dealt",
	EventTurn:            "turn",
	EventPrompt:          "prompt",
	EventSelected:        "selected",
	EventMatched:         "matched",
	EventRejected:        "rejected",
	EventRestarted:       "restarted",
	EventUndone:          "undone",
	EventUndoUnavailable: "undo_unavailable",
	EventWon:             "won",
	EventExited:          "exited",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is emitted by the Controller to its observers. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind EventKind
	// Board is a snapshot; observers may keep it
	Board *board.Board
	// Selection is 1 or 2 for EventPrompt and EventSelected
	Selection int
	// Column is the 1-based column typed by the player
	Column int
	Move   Move
	Err    error
	// Moves counts accepted matches in the current game
	Moves int
}

// Observer receives game events. Display and log sinks implement it.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) { f(e) }
