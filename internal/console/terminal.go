package console

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal switches stdin to raw mode so single key presses arrive without
// waiting for Enter. When stdin is not a terminal it does nothing.
type Terminal struct {
	fd    int
	state *term.State

	// Out is the writer to print through while the terminal is open
	Out io.Writer
}

// OpenTerminal prepares in for key-by-key reading. Output written through
// Out gets CRLF line endings while raw mode is on.
func OpenTerminal(in *os.File, out io.Writer) (*Terminal, error) {
	t := &Terminal{fd: int(in.Fd()), Out: out}
	if !term.IsTerminal(t.fd) {
		return t, nil
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("error switching terminal to raw mode: %v", err)
	}
	t.state = state
	t.Out = crlfWriter{w: out}

	return t, nil
}

// Raw reports whether raw mode is active
func (t *Terminal) Raw() bool {
	return t.state != nil
}

// Close restores the terminal to the state it had before OpenTerminal
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("error restoring terminal: %v", err)
	}
	return nil
}

// crlfWriter turns "\n" into "\r\n"; raw mode disables that translation
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
