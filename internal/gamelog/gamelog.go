// Package gamelog writes a session record of every board, selection and move
// outcome through log/slog. It is independent of what the player sees.
package gamelog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arcanaland/nestor/internal/board"
	"github.com/arcanaland/nestor/internal/game"
)

// Logger is a game.Observer that records events to a slog.Logger.
// Every dealt board starts a new game ID.
type Logger struct {
	log    *slog.Logger
	gameID string
}

// New wraps an existing slog logger
func New(log *slog.Logger) *Logger {
	return &Logger{log: log}
}

// NewTextLogger logs in slog's text format to w at the given level
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// OpenFile creates (or truncates) the session log at path, making parent
// directories as needed. The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating log directory: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating log file: %v", err)
	}

	return f, nil
}

// ParseLevel maps a config level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// GameID returns the ID of the game currently being logged
func (l *Logger) GameID() string {
	return l.gameID
}

// Notify implements game.Observer
func (l *Logger) Notify(e game.Event) {
	switch e.Kind {
	case game.EventDealt:
		l.gameID = uuid.NewString()
		l.log.Info("board dealt", "game", l.gameID)
		l.logBoard(e.Board)
	case game.EventTurn:
		l.logBoard(e.Board)
	case game.EventSelected:
		l.log.Info("column selected", "game", l.gameID, "selection", e.Selection, "column", e.Column)
	case game.EventMatched:
		l.log.Info("cards matched",
			"game", l.gameID,
			"first", e.Move.Cards[0].String(),
			"first_at", e.Move.Cleared[0].String(),
			"second", e.Move.Cards[1].String(),
			"second_at", e.Move.Cleared[1].String(),
			"moves", e.Moves,
		)
	case game.EventRejected:
		l.log.Warn("move rejected", "game", l.gameID, "reason", reason(e.Err), "error", e.Err)
	case game.EventRestarted:
		l.log.Info("new game requested", "game", l.gameID)
	case game.EventUndone:
		l.log.Info("move undone", "game", l.gameID, "moves", e.Moves)
	case game.EventUndoUnavailable:
		l.log.Warn("nothing to undo", "game", l.gameID)
	case game.EventWon:
		l.log.Info("game won", "game", l.gameID, "moves", e.Moves)
	case game.EventExited:
		l.log.Info("game exited", "game", l.gameID, "moves", e.Moves)
	}
}

// logBoard writes one record per grid row, then the reserve
func (l *Logger) logBoard(b *board.Board) {
	if b == nil || !l.log.Enabled(context.Background(), slog.LevelInfo) {
		return
	}

	for row := 0; row < board.Rows; row++ {
		cells := make([]string, 0, board.Columns)
		for col := 0; col < board.Columns; col++ {
			cells = append(cells, slotString(b.Grid(row, col)))
		}
		l.log.Info("grid", "game", l.gameID, "row", row+1, "cards", strings.Join(cells, " "))
	}

	cells := make([]string, 0, board.ReserveSize)
	for i := 0; i < board.ReserveSize; i++ {
		cells = append(cells, fmt.Sprintf("%d:%s", i+1, slotString(b.Reserve(i))))
	}
	l.log.Info("reserve", "game", l.gameID, "cards", strings.Join(cells, " "))
}

func slotString(s board.Slot) string {
	if c, ok := s.Card(); ok {
		return c.String()
	}
	return "--"
}

func reason(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidSelection):
		return "invalid_selection"
	case errors.Is(err, game.ErrEmptySource):
		return "empty_source"
	case errors.Is(err, game.ErrNoMatch):
		return "no_match"
	case errors.Is(err, game.ErrMismatch):
		return "mismatch"
	default:
		return "unknown"
	}
}
