package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config selects the handler and destination of the process logger.
type Config struct {
	Level  string
	Format string // "json" or "text"
	// Directory receives one file per UTC day; empty logs to stdout only.
	Directory string
	AddSource bool
}

// ParseLevel accepts debug, info, warn and error plus their short forms.
// Anything else is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "dbg":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New builds a logger writing to w, stdout when w is nil.
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Open builds the process logger on stdout plus the day's file under
// cfg.Directory, and points the standard log package at the same writer so
// gorm and net/http output lands in one place. The returned closer releases
// the file.
func Open(cfg Config, now time.Time) (*slog.Logger, io.Closer, error) {
	if cfg.Directory == "" {
		return New(os.Stdout, cfg), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	name := filepath.Join(cfg.Directory, now.UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	log.SetOutput(writer)
	log.SetFlags(0)
	return New(writer, cfg), file, nil
}
