// Package telemetry provides adapters for collecting and processing telemetry data.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultSizeLimit is the number of buffered bytes that forces a flush.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the interval at which complete lines are flushed.
	DefaultTimeLimit = 50 * time.Millisecond
)

// ErrLineBatcherClosed is returned by Write after Close.
var ErrLineBatcherClosed = errors.New("line batcher is closed")

// LineBatcher groups the output of a build phase into whole lines. Complete lines
// are delivered on every tick or once sizeLimit bytes are pending. A trailing
// partial line is held back until its newline arrives, it grows past sizeLimit on
// its own, or the batcher is closed. Safe for concurrent use.
type LineBatcher struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte)

	mu      sync.Mutex
	pending bytes.Buffer
	ticker  *time.Ticker
	stopCh  chan struct{}
	closed  bool
}

// NewLineBatcher starts a batcher that hands batches to onFlush. Non-positive
// limits fall back to the defaults. Close stops the background ticker.
func NewLineBatcher(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *LineBatcher {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	lb := &LineBatcher{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
		stopCh:    make(chan struct{}),
		ticker:    time.NewTicker(timeLimit),
	}
	go lb.run()
	return lb
}

// Write buffers p.
func (lb *LineBatcher) Write(p []byte) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.closed {
		return 0, ErrLineBatcherClosed
	}

	n, _ := lb.pending.Write(p)
	if lb.pending.Len() < lb.sizeLimit {
		return n, nil
	}

	lb.flushLinesLocked()
	// A partial line longer than the limit is emitted as is.
	if lb.pending.Len() >= lb.sizeLimit {
		lb.flushAllLocked()
	}
	lb.ticker.Reset(lb.timeLimit)
	return n, nil
}

// Flush delivers every complete line. A partial tail stays buffered.
func (lb *LineBatcher) Flush() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if lb.closed {
		return
	}
	lb.flushLinesLocked()
}

// Close stops the ticker and delivers everything still buffered, including a
// partial last line.
func (lb *LineBatcher) Close() error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.closed {
		return nil
	}
	lb.closed = true
	close(lb.stopCh)
	lb.flushAllLocked()
	return nil
}

func (lb *LineBatcher) run() {
	for {
		select {
		case <-lb.ticker.C:
			lb.Flush()
		case <-lb.stopCh:
			lb.ticker.Stop()
			return
		}
	}
}

func (lb *LineBatcher) flushLinesLocked() {
	end := bytes.LastIndexByte(lb.pending.Bytes(), '\n')
	if end < 0 {
		return
	}
	lb.emit(lb.pending.Next(end + 1))
}

func (lb *LineBatcher) flushAllLocked() {
	if lb.pending.Len() == 0 {
		return
	}
	lb.emit(lb.pending.Next(lb.pending.Len()))
}

// emit copies data since it aliases the pending buffer. onFlush runs under mu so
// batches arrive in write order.
func (lb *LineBatcher) emit(data []byte) {
	out := make([]byte, len(data))
	copy(out, data)
	if lb.pending.Len() == 0 {
		lb.pending.Reset()
	}
	if lb.onFlush != nil {
		lb.onFlush(out)
	}
}
