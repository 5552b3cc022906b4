package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/nestor/internal/board"
	"github.com/arcanaland/nestor/internal/deck"
)

// State is the controller's position in the game loop
type State int

const (
	AwaitingFirstSelection State = iota
	AwaitingSecondSelection
	Resolving
	Won
	Exited
)

func (s State) String() string {
	switch s {
	case AwaitingFirstSelection:
		return "awaiting first selection"
	case AwaitingSecondSelection:
		return "awaiting second selection"
	case Resolving:
		return "resolving"
	case Won:
		return "won"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Dealer produces the board for a new game
type Dealer func() (*board.Board, error)

// ShuffledDealer deals a freshly shuffled deck
func ShuffledDealer() (*board.Board, error) {
	return board.Deal(deck.New())
}

// Controller drives a game: it reads selections, hands them to Resolve and
// reports everything to its observers. It is the only writer of the board.
type Controller struct {
	dealer    Dealer
	input     InputSource
	observers []Observer

	board   *board.Board
	history []*board.Board
	moves   int
	state   State
}

// NewController creates a controller. The board is dealt when Run starts.
func NewController(dealer Dealer, input InputSource, observers ...Observer) *Controller {
	return &Controller{
		dealer:    dealer,
		input:     input,
		observers: observers,
	}
}

// State returns the current loop state
func (c *Controller) State() State {
	return c.state
}

// Board returns a copy of the current board, or nil before the first deal
func (c *Controller) Board() *board.Board {
	if c.board == nil {
		return nil
	}
	return c.board.Clone()
}

// Moves returns the number of accepted matches in the current game
func (c *Controller) Moves() int {
	return c.moves
}

// Run plays until the board is cleared or the player exits. It returns Won
// or Exited; a non-nil error means the input source or dealer failed.
func (c *Controller) Run(ctx context.Context) (State, error) {
	if err := c.deal(); err != nil {
		return c.state, err
	}

	for {
		c.state = AwaitingFirstSelection
		c.emit(Event{Kind: EventTurn, Board: c.board.Clone(), Moves: c.moves})

		first, err := c.read(ctx, 1)
		if err != nil {
			return c.stop(err)
		}
		if first.Kind != InputSelect {
			exit, err := c.control(first)
			if exit || err != nil {
				return c.state, err
			}
			continue
		}

		c.state = AwaitingSecondSelection
		second, err := c.read(ctx, 2)
		if err != nil {
			return c.stop(err)
		}
		if second.Kind != InputSelect {
			exit, err := c.control(second)
			if exit || err != nil {
				return c.state, err
			}
			continue
		}

		c.state = Resolving
		if err := c.play(first.Column-1, second.Column-1); err != nil {
			return c.state, err
		}

		if c.board.IsFullyCleared() {
			c.state = Won
			c.emit(Event{Kind: EventWon, Board: c.board.Clone(), Moves: c.moves})
			return c.state, nil
		}
	}
}

func (c *Controller) deal() error {
	b, err := c.dealer()
	if err != nil {
		return fmt.Errorf("error dealing board: %w", err)
	}

	c.board = b
	c.history = nil
	c.moves = 0
	c.emit(Event{Kind: EventDealt, Board: b.Clone()})

	return nil
}

func (c *Controller) read(ctx context.Context, selection int) (Input, error) {
	c.emit(Event{Kind: EventPrompt, Selection: selection})

	in, err := c.input.Next(ctx)
	if err != nil {
		return Input{}, err
	}

	if in.Kind == InputSelect {
		c.emit(Event{Kind: EventSelected, Selection: selection, Column: in.Column})
	}

	return in, nil
}

// control handles exit, restart and undo. It reports whether the loop should end.
func (c *Controller) control(in Input) (bool, error) {
	switch in.Kind {
	case InputExit:
		c.state = Exited
		c.emit(Event{Kind: EventExited, Moves: c.moves})
		return true, nil

	case InputRestart:
		if err := c.deal(); err != nil {
			return true, err
		}
		c.emit(Event{Kind: EventRestarted, Board: c.board.Clone()})

	case InputUndo:
		if len(c.history) == 0 {
			c.emit(Event{Kind: EventUndoUnavailable, Moves: c.moves})
			return false, nil
		}
		last := len(c.history) - 1
		c.board = c.history[last]
		c.history = c.history[:last]
		c.moves--
		c.emit(Event{Kind: EventUndone, Board: c.board.Clone(), Moves: c.moves})
	}

	return false, nil
}

// play resolves one move. Rejections are reported to observers, not returned.
func (c *Controller) play(c1, c2 int) error {
	before := c.board.Clone()

	move, err := Resolve(c.board, c1, c2)
	if err != nil {
		c.emit(Event{Kind: EventRejected, Err: err, Moves: c.moves})
		return nil
	}

	if results := board.NewValidator(c.board).Validate(); !results.OK() {
		return fmt.Errorf("board invariant broken after move: %s", strings.Join(results.Errors, "; "))
	}

	c.history = append(c.history, before)
	c.moves++
	c.emit(Event{Kind: EventMatched, Move: move, Board: c.board.Clone(), Moves: c.moves})

	return nil
}

// stop ends the loop on an input error. Cancellation counts as a clean exit.
func (c *Controller) stop(err error) (State, error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.state = Exited
		c.emit(Event{Kind: EventExited, Moves: c.moves})
		return c.state, nil
	}
	return c.state, err
}

func (c *Controller) emit(e Event) {
	for _, o := range c.observers {
		o.Notify(e)
	}
}
