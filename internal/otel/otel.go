package otel

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	"github.com/heneryville/graphql-schema-utils/internal/eventbus"
	"github.com/heneryville/graphql-schema-utils/internal/events"
	"github.com/heneryville/graphql-schema-utils/internal/opid"
)

const tracerName = "graphql-schema-utils"

// Setup configures OpenTelemetry and attaches span subscribers to bus.
// If endpoint is empty, no telemetry is configured.
func Setup(bus *eventbus.Bus, endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	Register(bus, tp.Tracer(tracerName))
	return tp.Shutdown, nil
}

// Register subscribes span handlers for load, diff and merge events. Spans
// are keyed by operation id; a nested operation's span is parented to the
// span of the operation that started it.
func Register(bus *eventbus.Bus, tracer trace.Tracer) (unsubscribe func()) {
	s := &subscriber{tracer: tracer}
	return s.register(bus)
}

type subscriber struct {
	tracer trace.Tracer
	spans  sync.Map // opid -> trace.Span
}

func (s *subscriber) start(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	id, ok := opid.FromContext(ctx)
	if !ok {
		return
	}
	parent := ctx
	if pid, ok := opid.ParentFromContext(ctx); ok {
		if v, ok := s.spans.Load(pid); ok {
			parent = trace.ContextWithSpan(ctx, v.(trace.Span))
		}
	}
	_, span := s.tracer.Start(parent, name, trace.WithAttributes(attrs...))
	s.spans.Store(id, span)
}

func (s *subscriber) finish(ctx context.Context, err error, attrs ...attribute.KeyValue) {
	id, _ := opid.FromContext(ctx)
	v, ok := s.spans.LoadAndDelete(id)
	if !ok {
		return
	}
	span := v.(trace.Span)
	span.SetAttributes(attrs...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *subscriber) register(bus *eventbus.Bus) func() {
	stops := []func(){
		eventbus.Subscribe(bus, func(ctx context.Context, e events.LoadStart) {
			s.start(ctx, "schema.load",
				attribute.StringSlice("schema.paths", e.Paths),
				attribute.String("schema.format", e.Format),
			)
		}),
		eventbus.Subscribe(bus, func(ctx context.Context, e events.LoadFinish) {
			s.finish(ctx, e.Err, attribute.Int("schema.type_count", e.Types))
		}),
		eventbus.Subscribe(bus, func(ctx context.Context, e events.DiffStart) {
			s.start(ctx, "schema.diff",
				attribute.String("diff.label.this", e.LabelForThis),
				attribute.String("diff.label.other", e.LabelForOther),
			)
		}),
		eventbus.Subscribe(bus, func(ctx context.Context, e events.DiffFinish) {
			s.finish(ctx, e.Err,
				attribute.Int("diff.count", e.Diffs),
				attribute.Int("diff.breaking_count", e.Breaking),
			)
		}),
		eventbus.Subscribe(bus, func(ctx context.Context, e events.MergeStart) {
			s.start(ctx, "schema.merge")
		}),
		eventbus.Subscribe(bus, func(ctx context.Context, e events.MergeFinish) {
			s.finish(ctx, e.Err, attribute.Int("schema.type_count", e.Types))
		}),
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}
