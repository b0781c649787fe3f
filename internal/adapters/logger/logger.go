// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/casset/internal/ui/style"
)

// zerrError is the part of *zerr.Error the formatter relies on.
type zerrError interface {
	Message() string
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
	level    slog.LevelVar
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

var _ ports.Logger = (*Logger)(nil)

// rebuild replaces the handler. Callers hold mu, except New.
func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: &l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.rebuild()
}

// SetQuiet drops informational messages.
func (l *Logger) SetQuiet(quiet bool) {
	if quiet {
		l.level.Set(slog.LevelWarn)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain and metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err. Metadata of zerr wrappers
// without a message is attached to the next entry.
func collectErrorEntries(err error) []errorEntry {
	var (
		entries []errorEntry
		pending map[string]any
	)
	for current := err; current != nil; {
		z, ok := current.(zerrError)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		meta := z.Metadata()
		for k, v := range pending {
			if _, ok := meta[k]; !ok {
				meta[k] = v
			}
		}
		pending = nil

		if z.Message() == "" {
			pending = meta
		} else {
			entries = append(entries, errorEntry{message: z.Message(), metadata: meta})
		}
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, e := range entries {
		msg := strings.Split(e.message, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+msg[0])
			for _, line := range msg[1:] {
				lines = append(lines, "       "+line)
			}
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    "+style.Arrow+" "+msg[0])
			for _, line := range msg[1:] {
				lines = append(lines, "      "+line)
			}
		}
		if meta := formatMetadata(e.metadata); meta != "" {
			indent := "       "
			if i > 0 {
				indent = "      "
			}
			lines = append(lines, indent+meta)
		}
	}
	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, meta[k])
	}
	return strings.Join(parts, " ")
}
