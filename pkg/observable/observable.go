// Package observable provides the listener contract shared by controllers
// and registries: an object announces state changes to an ordered set of
// callbacks, and subscribers clean up via the returned unsubscribe function.
package observable

import "sync"

// Listenable is any object that accepts change listeners.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(fn func()) func()
}

// Notifier maintains a listener registry. Embed it in a type to give it the
// Listenable contract. The zero value is ready to use.
//
// Listener callbacks run synchronously on the calling goroutine, in
// registration order.
type Notifier struct {
	mu        sync.Mutex
	listeners map[int]func()
	order     []int
	nextID    int
}

// AddListener registers a callback invoked on every notification.
// Returns an unsubscribe function. A nil listener is ignored.
func (n *Notifier) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.order = append(n.order, id)
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// NotifyListeners invokes all registered listeners in registration order.
// The listener set is snapshotted first, so listeners may subscribe or
// unsubscribe during notification without affecting the current pass.
func (n *Notifier) NotifyListeners() {
	n.mu.Lock()
	listeners := make([]func(), 0, len(n.listeners))
	live := n.order[:0]
	for _, id := range n.order {
		fn, ok := n.listeners[id]
		if !ok {
			continue
		}
		live = append(live, id)
		listeners = append(listeners, fn)
	}
	n.order = live
	n.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// ClearListeners drops every registered listener.
func (n *Notifier) ClearListeners() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = nil
	n.order = nil
}

// ValueNotifier holds a value and notifies listeners when it changes.
//
// ValueNotifier is not thread-safe beyond the listener registry itself; like
// the rest of the library it is meant to be driven from the UI thread.
type ValueNotifier[T comparable] struct {
	Notifier
	value T
}

// NewValueNotifier creates a ValueNotifier with an initial value.
func NewValueNotifier[T comparable](initial T) *ValueNotifier[T] {
	return &ValueNotifier[T]{value: initial}
}

// Value returns the current value.
func (v *ValueNotifier[T]) Value() T {
	return v.value
}

// Set updates the value and notifies listeners. Setting an equal value is a
// no-op and does not notify.
func (v *ValueNotifier[T]) Set(value T) {
	if v.value == value {
		return
	}
	v.value = value
	v.NotifyListeners()
}
