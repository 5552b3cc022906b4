package game

import (
	"errors"
	"fmt"

	"github.com/arcanaland/nestor/internal/board"
	"github.com/arcanaland/nestor/internal/card"
)

// Rejections reported by Resolve. None of them change the board.
var (
	ErrInvalidSelection = errors.New("invalid position")
	ErrEmptySource      = errors.New("no card in one or both positions")
	ErrNoMatch          = errors.New("no reserve card matches")
	ErrMismatch         = errors.New("cards do not match")
)

// Position locates a slot: a grid cell, or a reserve slot when Reserve is set
// (Index is then the reserve slot).
type Position struct {
	Reserve bool
	Row     int
	Column  int
	Index   int
}

func (p Position) String() string {
	if p.Reserve {
		return fmt.Sprintf("reserve %d", p.Index+1)
	}
	return fmt.Sprintf("column %d row %d", p.Column+1, p.Row+1)
}

// Move describes an accepted match
type Move struct {
	First, Second int // 0-based selectors
	Cleared       [2]Position
	Cards         [2]card.Card
}

// resolved is the card a selector points at, if any
type resolved struct {
	card card.Card
	pos  Position
	ok   bool
}

// Resolve applies the matching rule to the 0-based column selectors c1 and
// c2, where board.ReserveColumn selects the reserve. On success exactly two
// slots are cleared.
func Resolve(b *board.Board, c1, c2 int) (Move, error) {
	if c1 < 0 || c1 > board.ReserveColumn || c2 < 0 || c2 > board.ReserveColumn {
		return Move{}, fmt.Errorf("%w: columns must be between 1 and %d", ErrInvalidSelection, board.ReserveColumn+1)
	}
	if c1 == c2 {
		return Move{}, fmt.Errorf("%w: column %d chosen twice", ErrInvalidSelection, c1+1)
	}

	first := resolve(b, c1)
	second := resolve(b, c2)
	if (c1 < board.Columns && !first.ok) || (c2 < board.Columns && !second.ok) {
		return Move{}, ErrEmptySource
	}

	move := Move{First: c1, Second: c2}

	switch {
	case c1 < board.Columns && c2 < board.Columns:
		if !first.card.Matches(second.card) {
			return Move{}, fmt.Errorf("%w: %s and %s", ErrMismatch, first.card, second.card)
		}
		b.ClearGridSlot(first.pos.Row, first.pos.Column)
		b.ClearGridSlot(second.pos.Row, second.pos.Column)
		move.Cleared = [2]Position{first.pos, second.pos}
		move.Cards = [2]card.Card{first.card, second.card}

	case c1 == board.ReserveColumn:
		res, err := matchReserve(b, second)
		if err != nil {
			return Move{}, err
		}
		move.Cleared = [2]Position{res.pos, second.pos}
		move.Cards = [2]card.Card{res.card, second.card}

	default:
		res, err := matchReserve(b, first)
		if err != nil {
			return Move{}, err
		}
		move.Cleared = [2]Position{first.pos, res.pos}
		move.Cards = [2]card.Card{first.card, res.card}
	}

	return move, nil
}

// resolve finds the card a selector points at. The reserve column reads
// reserve slot (selector - ReserveColumn) and writes the value back in place.
func resolve(b *board.Board, col int) resolved {
	if col < board.Columns {
		c, row, ok := b.TopCard(col)
		return resolved{card: c, pos: Position{Row: row, Column: col}, ok: ok}
	}

	idx := col - board.ReserveColumn
	c, ok := b.ReservePeek(idx)
	if ok {
		b.ReserveSet(idx, c)
	}
	return resolved{card: c, pos: Position{Reserve: true, Index: idx}, ok: ok}
}

// matchReserve scans the reserve from slot 0 for the first card matching the
// grid card. On a hit both the reserve slot and the grid slot are cleared.
func matchReserve(b *board.Board, grid resolved) (resolved, error) {
	if b.ReserveCount() == 0 {
		return resolved{}, fmt.Errorf("%w: the reserve is empty", ErrEmptySource)
	}

	for i := 0; i < board.ReserveSize; i++ {
		c, ok := b.ReservePeek(i)
		if !ok || !c.Matches(grid.card) {
			continue
		}
		b.ClearReserveSlot(i)
		b.ClearGridSlot(grid.pos.Row, grid.pos.Column)
		return resolved{card: c, pos: Position{Reserve: true, Index: i}, ok: true}, nil
	}

	return resolved{}, fmt.Errorf("%w: nothing in the reserve pairs with %s", ErrNoMatch, grid.card)
}
