package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pkgmod/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor by reporting spans to a Logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(s.Name())
}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	var attrs []string
	for _, kv := range s.Attributes() {
		attrs = append(attrs, string(kv.Key)+"="+kv.Value.Emit())
	}

	msg := fmt.Sprintf("%s done in %s", s.Name(), elapsed)
	if s.Status().Code == codes.Error {
		msg = fmt.Sprintf("%s failed after %s: %s", s.Name(), elapsed, s.Status().Description)
	}
	if len(attrs) > 0 {
		msg += " (" + strings.Join(attrs, " ") + ")"
	}

	b.logger.Debug(msg)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// Setup registers a global tracer provider that feeds every span to processor.
// The returned function flushes and shuts the provider down.
func Setup(processor sdktrace.SpanProcessor) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
