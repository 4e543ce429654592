// Package scheduler provides the host-side scheduling point that editable
// components defer work to.
//
// Hosts embed the library into a frame-driven loop: build, layout, paint.
// Mutating observer-visible state in the middle of that sequence is unsafe,
// so components enqueue callbacks here and the host flushes them once the
// current frame has finished.
package scheduler

import (
	"sync"

	"github.com/go-drift/editable/pkg/errors"
)

// Scheduler queues callbacks to run after the current frame completes.
// The zero value is ready to use.
type Scheduler struct {
	mu        sync.Mutex
	postFrame []func()

	// OnNeedsFrame is called when a callback is enqueued while the queue was
	// empty, signalling the platform that a frame should be rendered. This is
	// necessary for on-demand frame scheduling where the display link is
	// paused until explicitly requested.
	OnNeedsFrame func()
}

// AddPostFrameCallback enqueues fn to run at the end of the next flush.
// Callbacks run at most once and in enqueue order. A nil fn is ignored.
func (s *Scheduler) AddPostFrameCallback(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	wasEmpty := len(s.postFrame) == 0
	s.postFrame = append(s.postFrame, fn)
	s.mu.Unlock()

	if wasEmpty && s.OnNeedsFrame != nil {
		s.OnNeedsFrame()
	}
}

// PendingCallbacks returns the number of queued post-frame callbacks.
func (s *Scheduler) PendingCallbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.postFrame)
}

// FlushPostFrameCallbacks runs all queued callbacks. The host calls this
// once per frame, after build/layout/paint have finished.
//
// The queue is snapshotted first: callbacks enqueued during a flush run at
// the next flush, not the current one. A panicking callback is reported via
// the errors package and does not prevent the remaining callbacks from
// running.
func (s *Scheduler) FlushPostFrameCallbacks() {
	s.mu.Lock()
	callbacks := s.postFrame
	s.postFrame = nil
	s.mu.Unlock()

	for _, fn := range callbacks {
		runPostFrameCallback(fn)
	}
}

func runPostFrameCallback(fn func()) {
	defer errors.Recover("scheduler.postFrameCallback")
	fn()
}

var (
	defaultScheduler     *Scheduler
	defaultSchedulerOnce sync.Once
)

// Default returns the shared scheduler used by components that are not
// explicitly bound to one. The owning host is responsible for flushing it
// every frame.
func Default() *Scheduler {
	defaultSchedulerOnce.Do(func() {
		defaultScheduler = &Scheduler{}
	})
	return defaultScheduler
}
