package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/casset/internal/core/ports"
)

// SpanReporter implements sdktrace.SpanProcessor and reports every finished
// span as one log line.
type SpanReporter struct {
	logger ports.Logger
}

// NewSpanReporter returns a new SpanReporter.
func NewSpanReporter(logger ports.Logger) *SpanReporter {
	return &SpanReporter{
		logger: logger,
	}
}

// OnStart does nothing.
func (r *SpanReporter) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span with its duration and attributes.
func (r *SpanReporter) OnEnd(s sdktrace.ReadOnlySpan) {
	if r.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		r.logger.Error(fmt.Errorf("%s: %w", s.Name(), errors.New(desc)))
		return
	}

	r.logger.Info(FormatSpan(s.Name(), s.EndTime().Sub(s.StartTime()), attrs(s)))
}

// ForceFlush does nothing.
func (r *SpanReporter) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *SpanReporter) Shutdown(_ context.Context) error {
	return nil
}

// FormatSpan renders a span as "name (duration) k=v ...", keys sorted.
func FormatSpan(name string, d time.Duration, kv map[string]string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" (")
	b.WriteString(d.Round(time.Microsecond).String())
	b.WriteString(")")

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + "=" + kv[k])
	}
	return b.String()
}

func attrs(s sdktrace.ReadOnlySpan) map[string]string {
	kv := make(map[string]string, len(s.Attributes()))
	for _, a := range s.Attributes() {
		kv[string(a.Key)] = a.Value.Emit()
	}
	return kv
}

// InstallReporter sets a global tracer provider that reports spans to logger.
// The returned function flushes and removes it.
func InstallReporter(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewSpanReporter(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
