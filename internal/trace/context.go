package trace

import "context"

type ctxKey struct{}

// binding is what a context carries: the tracer and the span new spans nest under.
type binding struct {
	tracer Tracer
	parent uint64
}

func bound(ctx context.Context) binding {
	if ctx != nil {
		if b, ok := ctx.Value(ctxKey{}).(binding); ok {
			return b
		}
	}
	return binding{tracer: Nop}
}

// FromContext returns the tracer set by WithTracer, or Nop.
func FromContext(ctx context.Context) Tracer {
	return bound(ctx).tracer
}

// WithTracer attaches t; a nil t stands for Nop. The parent span is kept.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	b := bound(ctx)
	b.tracer = t
	return context.WithValue(ctx, ctxKey{}, b)
}

// ParentSpan returns the span ID stored by WithParent, or 0.
func ParentSpan(ctx context.Context) uint64 {
	return bound(ctx).parent
}

// WithParent makes span the parent of spans begun from ctx.
func WithParent(ctx context.Context, span *Span) context.Context {
	b := bound(ctx)
	b.parent = span.ID()
	return context.WithValue(ctx, ctxKey{}, b)
}
