package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/casset/internal/ui/output"
	"go.trai.ch/casset/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one coloured line per record:
// a level marker, the message and dimmed key=value pairs.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	fields []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	marker, color := levelStyle(r.Level)

	line := h.out.String(marker + r.Message).Foreground(h.out.Color(color)).String()

	fields := h.fields
	if r.NumAttrs() > 0 {
		fields = append([]string(nil), h.fields...)
		r.Attrs(func(a slog.Attr) bool {
			fields = appendAttr(fields, h.prefix, a)
			return true
		})
	}
	if len(fields) > 0 {
		line += " " + h.out.String(strings.Join(fields, " ")).Faint().String()
	}

	_, err := io.WriteString(h.out, line+"\n")
	return err
}

// WithAttrs implements slog.Handler. The attributes are rendered once, under
// the groups open at this point.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := append([]string(nil), h.fields...)
	for _, a := range attrs {
		fields = appendAttr(fields, h.prefix, a)
	}
	return &PrettyHandler{out: h.out, level: h.level, prefix: h.prefix, fields: fields}
}

// WithGroup implements slog.Handler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{out: h.out, level: h.level, prefix: h.prefix + name + ".", fields: h.fields}
}

func levelStyle(level slog.Level) (marker, color string) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", string(style.Red)
	case level >= slog.LevelWarn:
		return style.Warning + " ", string(style.Yellow)
	default:
		return "", string(style.Slate)
	}
}

// appendAttr renders a as key=value, flattening groups into dotted keys.
func appendAttr(fields []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	}

	value := a.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}
	return append(fields, prefix+a.Key+"="+value)
}
