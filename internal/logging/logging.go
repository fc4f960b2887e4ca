// Package logging builds the process logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// New returns a logger writing human-readable records to w. Colors are
// used only when w is a terminal.
func New(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}

// NewLogLogger adapts l for libraries that log through a [log.Logger].
// Records are emitted at error level.
func NewLogLogger(l *slog.Logger) *log.Logger {
	return slog.NewLogLogger(l.Handler(), slog.LevelError)
}

// Printf adapts a [slog.Logger] to the Printf-style logger interfaces of HTTP libraries.
type Printf struct {
	Logger *slog.Logger
	Level  slog.Level
}

// Printf logs the formatted message.
func (p Printf) Printf(format string, args ...any) {
	p.Logger.Log(context.Background(), p.Level, fmt.Sprintf(format, args...))
}

// Writer logs each write as a single record. It lets libraries that only
// accept an [io.Writer] share the process logger.
type Writer struct {
	Logger *slog.Logger
	Level  slog.Level
}

// Write logs p with trailing newlines trimmed.
func (w Writer) Write(p []byte) (int, error) {
	w.Logger.Log(context.Background(), w.Level, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
