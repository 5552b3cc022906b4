package board

import (
	"fmt"

	"github.com/arcanaland/nestor/internal/card"
	"github.com/arcanaland/nestor/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether validation found no errors. Warnings do not count.
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Board   *Board
	Results ValidationResults
}

func NewValidator(b *Board) *Validator {
	return &Validator{
		Board:   b,
		Results: ValidationResults{},
	}
}

// Validate checks the board invariants: every surviving card appears once,
// and the board never holds more than a deck's worth of cards.
func (v *Validator) Validate() ValidationResults {
	v.validateCount()
	v.validateDuplicates()
	v.validateParity()
	v.validateRankCounts()

	return v.Results
}

func (v *Validator) validateCount() {
	total := v.Board.GridCount() + v.Board.ReserveCount()
	if total > deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("board holds %d cards, a deck only has %d", total, deck.Size))
	}
}

func (v *Validator) validateDuplicates() {
	seen := make(map[card.Card]string)

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			c, ok := v.Board.Grid(row, col).Card()
			if !ok {
				continue
			}
			where := fmt.Sprintf("grid row %d column %d", row+1, col+1)
			if prev, dup := seen[c]; dup {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("card %s at %s already appears at %s", c, where, prev))
				continue
			}
			seen[c] = where
		}
	}

	for i := 0; i < ReserveSize; i++ {
		c, ok := v.Board.ReservePeek(i)
		if !ok {
			continue
		}
		where := fmt.Sprintf("reserve slot %d", i+1)
		if prev, dup := seen[c]; dup {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %s at %s already appears at %s", c, where, prev))
			continue
		}
		seen[c] = where
	}
}

// An odd number of cards can never be cleared since every match removes two.
func (v *Validator) validateParity() {
	total := v.Board.GridCount() + v.Board.ReserveCount()
	if total%2 != 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("board holds an odd number of cards (%d) and cannot be cleared", total))
	}
}

func (v *Validator) validateRankCounts() {
	counts := make(map[card.Rank]int)
	for _, c := range v.Board.Cards() {
		counts[c.Rank]++
	}

	for _, rank := range card.Ranks {
		if counts[rank]%2 != 0 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("rank %s has an unpaired card (%d left)", rank.Name(), counts[rank]))
		}
	}
}
