// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/extbuild/internal/core/ports"
)

var _ ports.Tracer = (*Tracer)(nil)

// Tracer implements ports.Tracer by recording one progrock vertex per span.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer with a default tape.
func New() *Tracer {
	return NewTracer(progrock.NewTape())
}

// NewTracer creates a new Tracer with the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start starts recording a new vertex. Spans started with ports.WithCached are
// completed as cache hits when they end.
func (t *Tracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	v := t.rec.Vertex(digest.FromString(name), name)
	return ctx, newSpan(v, cfg.Cached)
}

// EmitPlan records the planned phases as a completed vertex.
func (t *Tracer) EmitPlan(_ context.Context, phases []string) {
	name := "plan: " + strings.Join(phases, " -> ")
	v := t.rec.Vertex(digest.FromString(name), name)
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
