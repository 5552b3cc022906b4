package board

import (
	"fmt"

	"github.com/arcanaland/nestor/internal/card"
	"github.com/arcanaland/nestor/internal/deck"
)

const (
	// Rows is the number of grid rows
	Rows = 6
	// Columns is the number of grid columns (stacks)
	Columns = 8
	// ReserveSize is the number of reserve slots
	ReserveSize = 4
	// ReserveColumn is the 0-based virtual column that addresses the reserve
	ReserveColumn = Columns
)

// Slot holds at most one card. The zero value is an empty slot.
type Slot struct {
	card     card.Card
	occupied bool
}

// Occupied returns a slot holding c
func Occupied(c card.Card) Slot {
	return Slot{card: c, occupied: true}
}

// Card returns the card in the slot and whether the slot is occupied
func (s Slot) Card() (card.Card, bool) {
	return s.card, s.occupied
}

// Empty reports whether the slot has no card
func (s Slot) Empty() bool {
	return !s.occupied
}

// Board is the 6x8 grid of card stacks plus the 4-slot reserve.
// It is a plain value; copying a Board copies every slot.
type Board struct {
	grid    [Rows][Columns]Slot
	reserve [ReserveSize]Slot
}

// Empty returns a board with no cards on it
func Empty() *Board {
	return &Board{}
}

// Deal lays out a complete deck: the first 48 cards fill the grid row by
// row starting at row 0, the last 4 go to the reserve.
func Deal(cards []card.Card) (*Board, error) {
	if err := deck.Validate(cards); err != nil {
		return nil, fmt.Errorf("cannot deal: %w", err)
	}

	b := &Board{}
	for i, c := range cards {
		if i < Rows*Columns {
			b.grid[i/Columns][i%Columns] = Occupied(c)
		} else {
			b.reserve[i-Rows*Columns] = Occupied(c)
		}
	}

	return b, nil
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Grid returns the slot at (row, col)
func (b *Board) Grid(row, col int) Slot {
	return b.grid[row][col]
}

// Reserve returns reserve slot i
func (b *Board) Reserve(i int) Slot {
	return b.reserve[i]
}

// TopCard returns the exposed card of a column: the occupied slot with the
// largest row index. ok is false when the column is empty or out of range.
func (b *Board) TopCard(col int) (card.Card, int, bool) {
	if col < 0 || col >= Columns {
		return card.Card{}, -1, false
	}
	for row := Rows - 1; row >= 0; row-- {
		if c, ok := b.grid[row][col].Card(); ok {
			return c, row, true
		}
	}
	return card.Card{}, -1, false
}

// IsFullyCleared reports whether every grid and reserve slot is empty
func (b *Board) IsFullyCleared() bool {
	return b.GridCount() == 0 && b.ReserveCount() == 0
}

// GridCount returns the number of occupied grid slots
func (b *Board) GridCount() int {
	n := 0
	for row := range b.grid {
		for col := range b.grid[row] {
			if !b.grid[row][col].Empty() {
				n++
			}
		}
	}
	return n
}

// ReserveCount returns the number of occupied reserve slots
func (b *Board) ReserveCount() int {
	n := 0
	for _, s := range b.reserve {
		if !s.Empty() {
			n++
		}
	}
	return n
}

// Cards returns every card still on the board, grid first (row-major) then reserve
func (b *Board) Cards() []card.Card {
	cards := make([]card.Card, 0, b.GridCount()+b.ReserveCount())
	for row := range b.grid {
		for col := range b.grid[row] {
			if c, ok := b.grid[row][col].Card(); ok {
				cards = append(cards, c)
			}
		}
	}
	for _, s := range b.reserve {
		if c, ok := s.Card(); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// ClearGridSlot empties the slot at (row, col). The caller is expected to
// have checked that it holds a card.
func (b *Board) ClearGridSlot(row, col int) {
	b.grid[row][col] = Slot{}
}

// SetGrid places c at (row, col), replacing whatever was there
func (b *Board) SetGrid(row, col int, c card.Card) {
	b.grid[row][col] = Occupied(c)
}

// ClearReserveSlot empties reserve slot i
func (b *Board) ClearReserveSlot(i int) {
	b.reserve[i] = Slot{}
}

// ReservePeek returns the card in reserve slot i, if any
func (b *Board) ReservePeek(i int) (card.Card, bool) {
	return b.reserve[i].Card()
}

// ReserveSet places c in reserve slot i
func (b *Board) ReserveSet(i int, c card.Card) {
	b.reserve[i] = Occupied(c)
}
