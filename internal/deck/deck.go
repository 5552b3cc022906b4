package deck

import (
	"fmt"
	"math/rand"

	"github.com/arcanaland/nestor/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// Build returns the 52 cards in base order: suit-major, rank-minor
func Build() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}

// Shuffle returns a uniformly random permutation of the given deck.
// The input slice is left untouched.
func Shuffle(cards []card.Card) []card.Card {
	out := make([]card.Card, len(cards))
	copy(out, cards)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// New returns a freshly built and shuffled deck
func New() []card.Card {
	return Shuffle(Build())
}

// Validate checks that cards is a complete deck with no repeated card
func Validate(cards []card.Card) error {
	if len(cards) != Size {
		return fmt.Errorf("deck has %d cards, expected %d", len(cards), Size)
	}

	seen := make(map[card.Card]bool, Size)
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("card %s appears more than once", c)
		}
		seen[c] = true
	}

	return nil
}
