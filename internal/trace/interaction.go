package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Span names.
const (
	SpanSelect = "instrument.select"
	SpanShare  = "document.share"
	SpanExport = "document.export"
)

// Attribute keys, all under the sudreview.* namespace.
const (
	AttrFrom    = attribute.Key("sudreview.instrument.from")
	AttrTo      = attribute.Key("sudreview.instrument.to")
	AttrOutcome = attribute.Key("sudreview.outcome")
	AttrFormat  = attribute.Key("sudreview.export.format")
	AttrPath    = attribute.Key("sudreview.export.path")
)

// Recorder emits one short span per user interaction.
type Recorder struct {
	tracer oteltrace.Tracer
}

// NewRecorder records with the exporter's tracer; a nil exporter records
// nothing.
func NewRecorder(e *Exporter) *Recorder {
	return &Recorder{tracer: e.Tracer()}
}

// Selection records a tab change.
func (r *Recorder) Selection(ctx context.Context, from, to string) {
	_, span := r.tracer.Start(ctx, SpanSelect, oteltrace.WithAttributes(
		AttrFrom.String(from),
		AttrTo.String(to),
	))
	span.End()
}

// Share records a share attempt and its outcome ("clipboard" or "fallback").
func (r *Recorder) Share(ctx context.Context, outcome string, err error) {
	_, span := r.tracer.Start(ctx, SpanShare, oteltrace.WithAttributes(AttrOutcome.String(outcome)))
	end(span, err)
}

// Export records a print/export.
func (r *Recorder) Export(ctx context.Context, format, path string, err error) {
	_, span := r.tracer.Start(ctx, SpanExport, oteltrace.WithAttributes(
		AttrFormat.String(format),
		AttrPath.String(path),
	))
	end(span, err)
}

func end(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
