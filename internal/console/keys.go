package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/arcanaland/nestor/internal/game"
)

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
	keyCtrlD = 0x04

	// DefaultPollTimeout is how long to wait for a key before re-prompting
	DefaultPollTimeout = 10 * time.Second

	// escapeDelay separates a lone Esc press from an escape sequence (arrow keys etc.)
	escapeDelay = 25 * time.Millisecond
)

type keyEvent struct {
	b   byte
	err error
}

// KeyReader turns single key presses into game inputs:
// digits select a column, Esc or Ctrl-C exits, n restarts and u undoes.
type KeyReader struct {
	in      io.Reader
	out     io.Writer
	timeout time.Duration

	once    sync.Once
	keys    chan keyEvent
	pending []keyEvent
	err     error
}

// NewKeyReader creates a reader. A timeout of zero uses DefaultPollTimeout.
func NewKeyReader(in io.Reader, out io.Writer, timeout time.Duration) *KeyReader {
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	return &KeyReader{
		in:      in,
		out:     out,
		timeout: timeout,
		keys:    make(chan keyEvent, 64),
	}
}

// pump copies bytes from in to the keys channel until the first read error
func (k *KeyReader) pump() {
	r := bufio.NewReader(k.in)
	for {
		b, err := r.ReadByte()
		k.keys <- keyEvent{b: b, err: err}
		if err != nil {
			return
		}
	}
}

// Next blocks until a usable key arrives. Unknown keys are reported and
// skipped. Each poll timeout prints a reminder and keeps waiting on the same
// read. End of input counts as exit.
func (k *KeyReader) Next(ctx context.Context) (game.Input, error) {
	k.once.Do(func() { go k.pump() })

	ticker := time.NewTicker(k.timeout)
	defer ticker.Stop()

	for {
		ev, err := k.key(ctx, ticker.C)
		if err != nil {
			return game.Input{}, err
		}
		if ev.err != nil {
			return k.fail(ev.err)
		}

		switch b := ev.b; {
		case b >= '0' && b <= '9':
			return game.Select(int(b - '0')), nil
		case b == 'n' || b == 'N':
			fmt.Fprintln(k.out, "\nKey 'n' pressed. Starting a new game...")
			return game.Restart, nil
		case b == 'u' || b == 'U':
			fmt.Fprintln(k.out, "\nKey 'u' pressed. Going back one move...")
			return game.Undo, nil
		case b == keyCtrlC || b == keyCtrlD:
			return game.Exit, nil
		case b == keyEsc:
			if k.escapeSequence() {
				fmt.Fprintln(k.out, "Invalid input :P")
				continue
			}
			fmt.Fprintln(k.out, "\nEsc pressed. Leaving...")
			return game.Exit, nil
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			continue
		default:
			fmt.Fprintln(k.out, "Invalid input :P")
		}
	}
}

// key returns the next pending or incoming key, printing a reminder on every tick
func (k *KeyReader) key(ctx context.Context, tick <-chan time.Time) (keyEvent, error) {
	if k.err != nil {
		return keyEvent{err: k.err}, nil
	}
	if len(k.pending) > 0 {
		ev := k.pending[0]
		k.pending = k.pending[1:]
		return ev, nil
	}

	for {
		select {
		case <-ctx.Done():
			return keyEvent{}, ctx.Err()
		case ev := <-k.keys:
			return ev, nil
		case <-tick:
			fmt.Fprintln(k.out, "Waiting for input...")
		}
	}
}

// escapeSequence reports whether the Esc just read starts a sequence such as
// an arrow key. The rest of the sequence is consumed; any other key that
// follows is kept for the next read.
func (k *KeyReader) escapeSequence() bool {
	timer := time.NewTimer(escapeDelay)
	defer timer.Stop()

	select {
	case ev := <-k.keys:
		if ev.err != nil || (ev.b != '[' && ev.b != 'O') {
			k.pending = append(k.pending, ev)
			return false
		}
	case <-timer.C:
		return false
	}

	// CSI and SS3 sequences end with a byte in 0x40-0x7e
	for {
		timer.Reset(escapeDelay)
		select {
		case ev := <-k.keys:
			if ev.err != nil {
				k.pending = append(k.pending, ev)
				return true
			}
			if ev.b >= 0x40 && ev.b <= 0x7e {
				return true
			}
		case <-timer.C:
			return true
		}
	}
}

func (k *KeyReader) fail(err error) (game.Input, error) {
	k.err = err
	if errors.Is(err, io.EOF) {
		return game.Exit, nil
	}
	return game.Input{}, fmt.Errorf("error reading input: %w", err)
}
