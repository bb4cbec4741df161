package telemetry

import (
	"context"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
)

// NoopTracer is a ports.Tracer that records nothing. Used in tests.
type NoopTracer struct{}

// NewNoopTracer creates a tracer that discards all spans.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End() {}

func (noopSpan) RecordError(error) {}

func (noopSpan) SetAttribute(string, any) {}
