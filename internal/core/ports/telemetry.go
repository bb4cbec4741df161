package ports

import "context"

// Tracer creates spans around the pipeline's coarse passes (accounting
// query, parse, triage). Implementations may be a full OpenTelemetry
// tracer or a noop.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is one traced operation.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}
