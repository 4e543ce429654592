// Package testing provides a test harness for editable components.
//
// FrameHost stands in for the embedding framework's frame loop: registry
// mutations queue deferred notifications on the host's scheduler, and
// PumpFrame plays the role of "the current render pass finished".
//
//	func TestMyView(t *testing.T) {
//	    host := edttest.NewFrameHost()
//	    ctx := editor.NewRenderContextWithScheduler(host.Scheduler())
//	    // ... mutate the registry ...
//	    host.PumpFrame() // deferred notifications deliver here
//	}
package testing

import (
	"github.com/go-drift/editable/pkg/document"
	"github.com/go-drift/editable/pkg/editor"
	"github.com/go-drift/editable/pkg/rendering"
	"github.com/go-drift/editable/pkg/scheduler"
)

// FrameHost simulates the host frame loop for tests. It owns a private
// scheduler, so tests never share deferred callbacks with the package-level
// default.
type FrameHost struct {
	sched           *scheduler.Scheduler
	framesRequested int
	framesPumped    int
}

// NewFrameHost creates a host with an empty callback queue.
func NewFrameHost() *FrameHost {
	h := &FrameHost{sched: &scheduler.Scheduler{}}
	h.sched.OnNeedsFrame = func() {
		h.framesRequested++
	}
	return h
}

// Scheduler returns the host's scheduler, for wiring into components under
// test.
func (h *FrameHost) Scheduler() *scheduler.Scheduler {
	return h.sched
}

// PumpFrame completes one frame: it flushes the post-frame callback queue,
// delivering any deferred notifications.
func (h *FrameHost) PumpFrame() {
	h.framesPumped++
	h.sched.FlushPostFrameCallbacks()
}

// FramesRequested returns how many times components asked for a new frame
// via the scheduler's OnNeedsFrame hook.
func (h *FrameHost) FramesRequested() int {
	return h.framesRequested
}

// FramesPumped returns how many frames PumpFrame has completed.
func (h *FrameHost) FramesPumped() int {
	return h.framesPumped
}

// HasPendingWork returns true if deferred callbacks are still queued.
func (h *FrameHost) HasPendingWork() bool {
	return h.sched.PendingCallbacks() > 0
}

// StubBox is a configurable EditableBox for registry tests. Its document
// range and screen bounds are fixed at construction.
type StubBox struct {
	// Label identifies the box in test failure messages.
	Label string

	node   document.Node
	bounds rendering.Rect
}

var _ editor.EditableBox = (*StubBox)(nil)

// NewStubBox creates a box covering the given document range and global
// bounds.
func NewStubBox(label string, docRange document.TextRange, bounds rendering.Rect) *StubBox {
	return &StubBox{
		Label:  label,
		node:   stubNode{docRange: docRange},
		bounds: bounds,
	}
}

// Node returns the box's stub document node.
func (b *StubBox) Node() document.Node {
	return b.node
}

// GlobalToLocal translates a global point into the box's local space.
func (b *StubBox) GlobalToLocal(point rendering.Offset) rendering.Offset {
	return point.Sub(b.bounds.Origin())
}

// Size returns the box's bounds size.
func (b *StubBox) Size() rendering.Size {
	return b.bounds.Size()
}

// stubNode is a document node with a fixed range.
type stubNode struct {
	docRange document.TextRange
}

func (n stubNode) DocumentRange() document.TextRange {
	return n.docRange
}

func (n stubNode) ContainsOffset(offset int) bool {
	return n.docRange.Contains(offset)
}
