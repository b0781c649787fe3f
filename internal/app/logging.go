package app

import (
	"context"

	"go.trai.ch/casset/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
)

type jsonSetter interface {
	SetJSON(enable bool)
}

type quietSetter interface {
	SetQuiet(quiet bool)
}

// ConfigureLogging switches the logger to JSON output or drops informational
// messages, when the logger supports it.
func (a *App) ConfigureLogging(json, quiet bool) {
	if l, ok := a.logger.(jsonSetter); ok {
		l.SetJSON(json)
	}
	if l, ok := a.logger.(quietSetter); ok {
		l.SetQuiet(quiet)
	}
}

// EnableTracing logs every finished span until the returned function is called.
func (a *App) EnableTracing() func(context.Context) error {
	return telemetry.InstallReporter(a.logger)
}
