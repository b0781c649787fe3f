package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/casset/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name: "wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on sentinel",
			err:          zerr.With(zerr.With(zerr.New("unknown group"), "group", "app"), "type", "js"),
			wantMessages: []string{"unknown group"},
			wantMetadata: []map[string]any{{"group": "app", "type": "js"}},
		},
		{
			name:         "metadata on standard error moves to it",
			err:          zerr.With(errors.New("permission denied"), "file", "a.css"),
			wantMessages: []string{"permission denied"},
			wantMetadata: []map[string]any{{"file": "a.css"}},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var messages []string
			var metadata []map[string]any
			for _, e := range entries {
				messages = append(messages, logger.EntryMessage(e))
				metadata = append(metadata, logger.EntryMetadata(e))
			}
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	err := zerr.Wrap(errors.New("line one\nline two"), "render failed")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	want := "Error: render failed\n" +
		"\n" +
		"  Caused by:\n" +
		"    → line one\n" +
		"      line two"
	assert.Equal(t, want, got)
}
