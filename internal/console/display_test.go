package console

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/nestor/internal/board"
	"github.com/arcanaland/nestor/internal/card"
	"github.com/arcanaland/nestor/internal/deck"
	"github.com/arcanaland/nestor/internal/game"
)

func plainDisplay(t *testing.T, marker string) (*Display, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out bytes.Buffer
	return NewDisplay(&out, marker), &out
}

func TestDisplayBoard(t *testing.T) {
	d, out := plainDisplay(t, "")

	b, err := board.Deal(deck.Build())
	require.NoError(t, err)
	b.ClearGridSlot(5, 0)
	b.ClearReserveSlot(1)

	d.Notify(game.Event{Kind: game.EventTurn, Board: b})

	want := "Cards:\n" +
		"2♡ 3♡ 4♡ 5♡ 6♡ 7♡ 8♡ 9♡ \n" +
		"T♡ J♡ Q♡ K♡ A♡ 2♢ 3♢ 4♢ \n" +
		"5♢ 6♢ 7♢ 8♢ 9♢ T♢ J♢ Q♢ \n" +
		"K♢ A♢ 2♧ 3♧ 4♧ 5♧ 6♧ 7♧ \n" +
		"8♧ 9♧ T♧ J♧ Q♧ K♧ A♧ 2♤ \n" +
		"-- 4♤ 5♤ 6♤ 7♤ 8♤ 9♤ T♤ \n" +
		"1| 2| 3| 4| 5| 6| 7| 8| -> columns\n" +
		"\nReserve cards:\n" +
		"1: J♤\n" +
		"2: --\n" +
		"3: K♤\n" +
		"4: A♤\n"
	assert.Contains(t, out.String(), want)
	assert.Contains(t, out.String(), "Column 9 plays the reserve cards")
}

func TestDisplayCustomMarker(t *testing.T) {
	d, out := plainDisplay(t, "Nada")

	d.Notify(game.Event{Kind: game.EventTurn, Board: board.Empty()})
	assert.Contains(t, out.String(), "1: Nada\n")
}

func TestDisplayMessages(t *testing.T) {
	tests := []struct {
		name  string
		event game.Event
		want  string
	}{
		{
			name:  "prompt",
			event: game.Event{Kind: game.EventPrompt, Selection: 2},
			want:  "\nCard column 2: ",
		},
		{
			name:  "selection echo",
			event: game.Event{Kind: game.EventSelected, Column: 9},
			want:  "9\n",
		},
		{
			name: "match",
			event: game.Event{Kind: game.EventMatched, Move: game.Move{
				Cards: [2]card.Card{card.New(card.Seven, card.Hearts), card.New(card.Seven, card.Spades)},
			}},
			want: "\nMatched 7♡ and 7♤\n",
		},
		{
			name:  "invalid position",
			event: game.Event{Kind: game.EventRejected, Err: fmt.Errorf("%w: column 3 chosen twice", game.ErrInvalidSelection)},
			want:  "\nInvalid position :P Try again :)\n",
		},
		{
			name:  "empty source",
			event: game.Event{Kind: game.EventRejected, Err: game.ErrEmptySource},
			want:  "\nThere is no card in one or both positions :P Try again :D\n",
		},
		{
			name:  "no reserve match",
			event: game.Event{Kind: game.EventRejected, Err: game.ErrNoMatch},
			want:  "\nThe card does not seem to match any reserve card :/ Try again :)\n",
		},
		{
			name:  "mismatch",
			event: game.Event{Kind: game.EventRejected, Err: game.ErrMismatch},
			want:  "\nThe cards do not seem to match :/ Try again :)\n",
		},
		{
			name:  "unknown rejection",
			event: game.Event{Kind: game.EventRejected, Err: errors.New("odd")},
			want:  "\nMove rejected: odd\n",
		},
		{
			name:  "won",
			event: game.Event{Kind: game.EventWon, Moves: 26},
			want:  "\nYou won the game in 26 moves :D\n",
		},
		{
			name:  "exit",
			event: game.Event{Kind: game.EventExited},
			want:  "\nGame over ;)\n",
		},
		{
			name:  "undo unavailable",
			event: game.Event{Kind: game.EventUndoUnavailable},
			want:  "\nNothing to undo yet\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, out := plainDisplay(t, "")
			d.Notify(tt.event)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
