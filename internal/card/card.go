package card

import "fmt"

// Rank is the face value of a playing card, ordered from Two up to Ace
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ascending order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankGlyphs = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}

var rankNames = [...]string{
	"two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"jack", "queen", "king", "ace",
}

// String returns the single-character rank glyph (T for ten)
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankGlyphs[r]
}

// Name returns the lowercase English name of the rank
func (r Rank) Name() string {
	if r < Two || r > Ace {
		return fmt.Sprintf("rank(%d)", int(r))
	}
	return rankNames[r]
}

// Compare orders ranks: negative if r is lower than other, zero if equal, positive if higher
func (r Rank) Compare(other Rank) int {
	return int(r) - int(other)
}

// Suit is the descriptive half of a card; it never takes part in matching
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists the suits in deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the suit glyph
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♡"
	case Diamonds:
		return "♢"
	case Clubs:
		return "♧"
	case Spades:
		return "♤"
	default:
		return "?"
	}
}

// Name returns the lowercase English name of the suit
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return fmt.Sprintf("suit(%d)", int(s))
	}
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Card represents a standard playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card from a rank and a suit
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-glyph display form, e.g. "Q♢"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns a long form such as "queen of diamonds"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}

// Matches reports whether two cards can be removed together.
// Only the rank is compared.
func (c Card) Matches(other Card) bool {
	return c.Rank == other.Rank
}
