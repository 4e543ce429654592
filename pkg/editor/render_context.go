package editor

import (
	"github.com/go-drift/editable/pkg/observable"
	"github.com/go-drift/editable/pkg/rendering"
	"github.com/go-drift/editable/pkg/scheduler"
)

// RenderContext tracks the render boxes belonging to one editable view.
//
// A box is in exactly one of two states while registered: dirty (registered
// but not ready for queries) or active (live for hit-testing and offset
// lookups). Boxes enter dirty via AddBox, transition with MarkDirty, and
// leave via RemoveBox. The registry holds non-owning references; the widget
// tree owns box lifetimes.
//
// Query methods scan the active set in map order and return the first
// match. Callers must ensure that active boxes cover non-overlapping
// document ranges and screen bounds; with overlap, which of the matching
// boxes wins is unspecified.
//
// RenderContext implements the observable.Listenable contract, but
// notification delivery is deferred: listeners fire from the scheduler's
// post-frame flush, never synchronously from the mutating call.
//
// All methods must be called from the UI thread.
type RenderContext struct {
	observable.Notifier

	sched    *scheduler.Scheduler
	dirty    map[EditableBox]struct{}
	active   map[EditableBox]struct{}
	disposed bool
}

// NewRenderContext creates an empty registry bound to the shared scheduler.
func NewRenderContext() *RenderContext {
	return NewRenderContextWithScheduler(scheduler.Default())
}

// NewRenderContextWithScheduler creates an empty registry that defers its
// notifications to the given scheduler. A nil scheduler means the shared one.
func NewRenderContextWithScheduler(sched *scheduler.Scheduler) *RenderContext {
	if sched == nil {
		sched = scheduler.Default()
	}
	return &RenderContext{
		sched:  sched,
		dirty:  make(map[EditableBox]struct{}),
		active: make(map[EditableBox]struct{}),
	}
}

// AddBox registers a box with the registry. New boxes start dirty, so
// registration changes no query-visible state and does not notify.
//
// Registering a box that is already present is a contract violation.
func (c *RenderContext) AddBox(box EditableBox) {
	c.checkNotDisposed()
	if c.containsBox(box) {
		panic("editor: box already registered")
	}
	c.dirty[box] = struct{}{}
}

// RemoveBox unregisters a box from whichever set it occupies. Removing an
// unregistered box is a no-op apart from the notification.
//
// Listeners are notified unconditionally, even when the box was only ever
// dirty and its removal changes no query-visible result.
func (c *RenderContext) RemoveBox(box EditableBox) {
	c.checkNotDisposed()
	delete(c.dirty, box)
	delete(c.active, box)
	c.notifyDeferred()
}

// MarkDirty moves a box into the dirty set (dirty=true) or the active set
// (dirty=false). This is the sole transition point between the two states.
//
// If the box is already in the target set the call is a no-op and does not
// notify. Otherwise the box leaves the other set, enters the target set,
// and listeners are notified.
func (c *RenderContext) MarkDirty(box EditableBox, dirty bool) {
	c.checkNotDisposed()
	if dirty {
		if _, ok := c.dirty[box]; ok {
			return
		}
		delete(c.active, box)
		c.dirty[box] = struct{}{}
	} else {
		if _, ok := c.active[box]; ok {
			return
		}
		delete(c.dirty, box)
		c.active[box] = struct{}{}
	}
	c.notifyDeferred()
}

// BoxForTextOffset returns the active box whose document node contains the
// given document offset, or nil if no active box matches. Dirty boxes are
// never considered: a box mid-initialization may have a stale or absent
// document association.
func (c *RenderContext) BoxForTextOffset(offset int) EditableBox {
	c.checkNotDisposed()
	if offset < 0 {
		return nil
	}
	for box := range c.active {
		if node := box.Node(); node != nil && node.ContainsOffset(offset) {
			return box
		}
	}
	return nil
}

// BoxForGlobalPoint returns the active box whose local bounds contain the
// given global (screen) point, or nil if no active box matches. Dirty boxes
// are never considered.
func (c *RenderContext) BoxForGlobalPoint(point rendering.Offset) EditableBox {
	c.checkNotDisposed()
	for box := range c.active {
		local := box.GlobalToLocal(point)
		if box.Size().Contains(local) {
			return box
		}
	}
	return nil
}

// IsDirty returns true if the box is currently in the dirty set.
func (c *RenderContext) IsDirty(box EditableBox) bool {
	_, ok := c.dirty[box]
	return ok
}

// IsActive returns true if the box is currently in the active set.
func (c *RenderContext) IsActive(box EditableBox) bool {
	_, ok := c.active[box]
	return ok
}

// DirtyCount returns the number of boxes in the dirty set.
func (c *RenderContext) DirtyCount() int {
	return len(c.dirty)
}

// ActiveCount returns the number of boxes in the active set.
func (c *RenderContext) ActiveCount() int {
	return len(c.active)
}

// IsDisposed returns true if Dispose has been called.
func (c *RenderContext) IsDisposed() bool {
	return c.disposed
}

// Dispose tears the registry down: both sets are cleared, the listener
// registry is released, and any deferred notification still queued on the
// scheduler is dropped at delivery time. Dispose is idempotent; every other
// method panics once the registry is disposed.
func (c *RenderContext) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	clear(c.dirty)
	clear(c.active)
	c.ClearListeners()
}

// notifyDeferred schedules a one-shot listener notification for the host's
// next post-frame flush. Mutating observer state during a render pass is
// unsafe, so delivery never happens synchronously.
//
// Back-to-back mutations queue one callback each rather than coalescing;
// every delivery re-checks disposal independently, so redundant callbacks
// are harmless.
func (c *RenderContext) notifyDeferred() {
	c.sched.AddPostFrameCallback(func() {
		if c.disposed {
			return
		}
		c.NotifyListeners()
	})
}

func (c *RenderContext) containsBox(box EditableBox) bool {
	if _, ok := c.dirty[box]; ok {
		return true
	}
	_, ok := c.active[box]
	return ok
}

func (c *RenderContext) checkNotDisposed() {
	if c.disposed {
		panic("editor: render context used after Dispose")
	}
}
