// Package trace records presentation interactions as OpenTelemetry spans.
package trace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "sudreview/ui"

// Options configures the OTLP exporter.
type Options struct {
	Endpoint    string // host:port; empty disables export
	ServiceName string
	Insecure    bool
}

// Exporter owns the tracer provider. A nil *Exporter is valid and traces
// nothing.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewExporter creates an OTLP/HTTP exporter. Returns nil if no endpoint is
// configured (disabled).
func NewExporter(ctx context.Context, opts Options) (*Exporter, error) {
	if opts.Endpoint == "" {
		return nil, nil
	}

	httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating otlp exporter: %w", err)
	}
	return newExporter(sdktrace.NewBatchSpanProcessor(exporter), opts.ServiceName), nil
}

// NewExporterWithProcessor builds an exporter around an existing span
// processor, e.g. a tracetest.SpanRecorder.
func NewExporterWithProcessor(sp sdktrace.SpanProcessor, serviceName string) *Exporter {
	return newExporter(sp, serviceName)
}

func newExporter(sp sdktrace.SpanProcessor, serviceName string) *Exporter {
	if serviceName == "" {
		serviceName = "sudreview"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sp),
		sdktrace.WithResource(res),
	)
	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Tracer returns the exporter's tracer, or a no-op tracer when disabled.
func (e *Exporter) Tracer() oteltrace.Tracer {
	if e == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return e.tracer
}

// Shutdown flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
