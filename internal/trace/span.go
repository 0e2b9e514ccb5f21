package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

func nextSeq() uint64 { return seqCounter.Add(1) }

// Span tracks one logical operation from Begin to End. A span whose tracer
// dropped the scope is inert: End and WithExtra do nothing.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	lane    int
	scope   Scope
	name    string
	started time.Time
	attrs   []Attr
}

// Begin starts a root span (parent 0) or a child of parent.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	return begin(t, scope, name, parent, 0)
}

func begin(t Tracer, scope Scope, name string, parent uint64, lane int) *Span {
	if !accepts(t, scope) {
		return &Span{}
	}
	s := &Span{
		tracer:  t,
		id:      spanCounter.Add(1),
		parent:  parent,
		lane:    lane,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.started, ""))
	return s
}

func (s *Span) event(k Kind, at time.Time, detail string) *Event {
	return &Event{
		Time:     at,
		Kind:     k,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Lane:     s.lane,
		Name:     s.name,
		Detail:   detail,
		Attrs:    s.attrs,
	}
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	now := time.Now()
	s.tracer.Emit(s.event(KindSpanEnd, now, detail))
	return now.Sub(s.started)
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s != nil && s.tracer != nil {
		s.attrs = append(s.attrs, Attr{Key: key, Value: value})
	}
	return s
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

type ctxKey struct{}

// ctxState is what a context carries: the tracer, the current span and the
// worker lane.
type ctxState struct {
	tracer Tracer
	span   uint64
	lane   int
}

func stateOf(ctx context.Context) ctxState {
	if ctx != nil {
		if st, ok := ctx.Value(ctxKey{}).(ctxState); ok {
			return st
		}
	}
	return ctxState{tracer: Nop}
}

// WithTracer attaches t (Nop when nil) to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	st := stateOf(ctx)
	st.tracer = t
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext returns the tracer of ctx, or Nop.
func FromContext(ctx context.Context) Tracer { return stateOf(ctx).tracer }

// WithLane marks ctx as running on a BuildDir worker lane; spans begun
// under it carry the lane so parallel files can be told apart.
func WithLane(ctx context.Context, lane int) context.Context {
	st := stateOf(ctx)
	st.lane = lane
	return context.WithValue(ctx, ctxKey{}, st)
}

// LaneOf returns the lane of ctx, 0 outside a worker.
func LaneOf(ctx context.Context) int { return stateOf(ctx).lane }

// BeginCtx starts a span under the tracer and current span of ctx and
// returns a context whose current span is the new one. The span is never
// nil.
func BeginCtx(ctx context.Context, scope Scope, name string) (*Span, context.Context) {
	st := stateOf(ctx)
	s := begin(st.tracer, scope, name, st.span, st.lane)
	if s.id == 0 {
		return s, ctx
	}
	st.span = s.id
	return s, context.WithValue(ctx, ctxKey{}, st)
}
