package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/extbuild/internal/adapters/telemetry"
	"go.trai.ch/extbuild/internal/core/ports"
)

var _ ports.Span = (*Span)(nil)

// Span implements ports.Span wrapping *progrock.VertexRecorder. Output reaches the
// vertex in whole lines.
type Span struct {
	vertex *progrock.VertexRecorder
	batch  *telemetry.LineBatcher
	cached bool

	mu    sync.Mutex
	err   error
	ended bool
}

func newSpan(v *progrock.VertexRecorder, cached bool) *Span {
	stdout := v.Stdout()
	return &Span{
		vertex: v,
		cached: cached,
		batch: telemetry.NewLineBatcher(telemetry.DefaultSizeLimit, telemetry.DefaultTimeLimit, func(data []byte) {
			_, _ = stdout.Write(data)
		}),
	}
}

// Write captures phase output.
func (s *Span) Write(p []byte) (int, error) {
	return s.batch.Write(p)
}

// SetAttribute records the attribute as a line of vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.batch, "%s=%v\n", key, value)
}

// RecordError marks the vertex as failed when it ends.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// End flushes pending output and completes the vertex. Subsequent calls do nothing.
func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.ended = true

	_ = s.batch.Close()
	if s.cached && s.err == nil {
		s.vertex.Cached()
	}
	s.vertex.Done(s.err)
}
