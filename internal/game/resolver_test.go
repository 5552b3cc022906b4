package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/nestor/internal/board"
	"github.com/arcanaland/nestor/internal/card"
	"github.com/arcanaland/nestor/internal/deck"
)

func dealt(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.Deal(deck.New())
	require.NoError(t, err)
	return b
}

func TestResolveGridPair(t *testing.T) {
	b := board.Empty()
	b.SetGrid(0, 0, card.New(card.Two, card.Clubs))
	b.SetGrid(5, 0, card.New(card.Seven, card.Hearts))
	b.SetGrid(2, 1, card.New(card.Seven, card.Spades))
	b.SetGrid(5, 2, card.New(card.Seven, card.Clubs))
	b.ReserveSet(0, card.New(card.Seven, card.Diamonds))

	move, err := Resolve(b, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, [2]Position{{Row: 5, Column: 0}, {Row: 2, Column: 1}}, move.Cleared)
	assert.Equal(t, [2]card.Card{card.New(card.Seven, card.Hearts), card.New(card.Seven, card.Spades)}, move.Cards)

	c, row, ok := b.TopCard(0)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, card.New(card.Two, card.Clubs), c)

	_, _, ok = b.TopCard(1)
	assert.False(t, ok)

	// Untouched: column 2 and the reserve.
	assert.Equal(t, 2, b.GridCount())
	assert.Equal(t, 1, b.ReserveCount())
}

func TestResolveSevenScenario(t *testing.T) {
	b := board.Empty()
	b.SetGrid(0, 0, card.New(card.Seven, card.Hearts))
	b.SetGrid(0, 1, card.New(card.Seven, card.Spades))

	_, err := Resolve(b, 0, 1)
	require.NoError(t, err)

	_, _, ok := b.TopCard(0)
	assert.False(t, ok)
	_, _, ok = b.TopCard(1)
	assert.False(t, ok)
	assert.True(t, b.IsFullyCleared())
}

func TestResolveClearsExactlyTwoSlots(t *testing.T) {
	b := dealt(t)

	// Look for two columns whose exposed cards share a rank.
	for c1 := 0; c1 < board.Columns; c1++ {
		for c2 := c1 + 1; c2 < board.Columns; c2++ {
			x, r1, _ := b.TopCard(c1)
			y, r2, _ := b.TopCard(c2)
			if !x.Matches(y) {
				continue
			}

			before := b.Clone()
			_, err := Resolve(b, c1, c2)
			require.NoError(t, err)

			for row := 0; row < board.Rows; row++ {
				for col := 0; col < board.Columns; col++ {
					cleared := (row == r1 && col == c1) || (row == r2 && col == c2)
					if cleared {
						assert.True(t, b.Grid(row, col).Empty())
						continue
					}
					assert.Equal(t, before.Grid(row, col), b.Grid(row, col))
				}
			}
			for i := 0; i < board.ReserveSize; i++ {
				assert.Equal(t, before.Reserve(i), b.Reserve(i))
			}
			return
		}
	}
	t.Skip("no matching exposed pair in this deal")
}

func TestResolveReserveScenario(t *testing.T) {
	b := board.Empty()
	b.ReserveSet(0, card.New(card.Queen, card.Diamonds))
	b.ReserveSet(1, card.New(card.Three, card.Hearts))
	b.SetGrid(1, 3, card.New(card.Four, card.Spades))
	b.SetGrid(4, 3, card.New(card.Queen, card.Clubs))

	move, err := Resolve(b, 8, 3)
	require.NoError(t, err)

	assert.Equal(t, [2]Position{{Reserve: true, Index: 0}, {Row: 4, Column: 3}}, move.Cleared)
	_, ok := b.ReservePeek(0)
	assert.False(t, ok)

	c, row, ok := b.TopCard(3)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, card.New(card.Four, card.Spades), c)
	assert.Equal(t, 1, b.ReserveCount())
}

func TestResolveReserveScansEverySlot(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 int
	}{
		{name: "reserve first", c1: 8, c2: 6},
		{name: "reserve second", c1: 6, c2: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.Empty()
			b.ReserveSet(0, card.New(card.Five, card.Hearts))
			b.ReserveSet(2, card.New(card.Jack, card.Hearts))
			b.ReserveSet(3, card.New(card.Jack, card.Diamonds))
			b.SetGrid(0, 6, card.New(card.Jack, card.Spades))

			move, err := Resolve(b, tt.c1, tt.c2)
			require.NoError(t, err)

			// The first matching slot wins.
			_, ok := b.ReservePeek(2)
			assert.False(t, ok)
			_, ok = b.ReservePeek(3)
			assert.True(t, ok)
			_, ok = b.ReservePeek(0)
			assert.True(t, ok)
			assert.Zero(t, b.GridCount())
			assert.Contains(t, move.Cleared, Position{Reserve: true, Index: 2})
		})
	}
}

func TestResolveReserveWithEmptyFirstSlot(t *testing.T) {
	b := board.Empty()
	b.ReserveSet(1, card.New(card.King, card.Hearts))
	b.SetGrid(0, 0, card.New(card.King, card.Clubs))

	_, err := Resolve(b, 8, 0)
	require.NoError(t, err)
	assert.True(t, b.IsFullyCleared())
}

func TestResolveRejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *board.Board)
		c1, c2  int
		wantErr error
	}{
		{
			name:    "first selector out of range",
			c1:      9,
			c2:      0,
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "second selector out of range",
			c1:      0,
			c2:      12,
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "negative selector",
			c1:      -1,
			c2:      0,
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "same column",
			c1:      3,
			c2:      3,
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "reserve twice",
			c1:      8,
			c2:      8,
			wantErr: ErrInvalidSelection,
		},
		{
			name: "first column empty",
			setup: func(b *board.Board) {
				for row := 0; row < board.Rows; row++ {
					b.ClearGridSlot(row, 0)
				}
			},
			c1:      0,
			c2:      1,
			wantErr: ErrEmptySource,
		},
		{
			name: "grid column empty against reserve",
			setup: func(b *board.Board) {
				for row := 0; row < board.Rows; row++ {
					b.ClearGridSlot(row, 4)
				}
			},
			c1:      8,
			c2:      4,
			wantErr: ErrEmptySource,
		},
		{
			name: "reserve empty",
			setup: func(b *board.Board) {
				for i := 0; i < board.ReserveSize; i++ {
					b.ClearReserveSlot(i)
				}
			},
			c1:      2,
			c2:      8,
			wantErr: ErrEmptySource,
		},
		{
			name: "grid mismatch",
			setup: func(b *board.Board) {
				b.SetGrid(5, 0, card.New(card.Two, card.Hearts))
				b.SetGrid(5, 1, card.New(card.Three, card.Hearts))
			},
			c1:      0,
			c2:      1,
			wantErr: ErrMismatch,
		},
		{
			name: "reserve has no match",
			setup: func(b *board.Board) {
				b.SetGrid(5, 5, card.New(card.Ace, card.Hearts))
				b.ReserveSet(0, card.New(card.Two, card.Spades))
				b.ReserveSet(1, card.New(card.Three, card.Spades))
				b.ReserveSet(2, card.New(card.Four, card.Spades))
				b.ReserveSet(3, card.New(card.Five, card.Spades))
			},
			c1:      5,
			c2:      8,
			wantErr: ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := board.Deal(deck.Build())
			require.NoError(t, err)
			if tt.setup != nil {
				tt.setup(b)
			}
			before := b.Clone()

			// Repeating a rejected move never changes the board.
			for i := 0; i < 3; i++ {
				_, err := Resolve(b, tt.c1, tt.c2)
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, b)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "column 4 row 5", Position{Row: 4, Column: 3}.String())
	assert.Equal(t, "reserve 2", Position{Reserve: true, Index: 1}.String())
}
