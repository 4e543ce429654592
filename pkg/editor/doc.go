// Package editor provides the render-box bookkeeping for an editable
// rich-text view.
//
// The central type is RenderContext, a registry that lets the owning view
// answer "which render box owns this document offset" and "which render box
// is under this screen point" without holding direct references to every
// box. Boxes register themselves during their attach/build/detach lifecycle
// and move between a dirty set (under construction or re-layout, invisible
// to queries) and an active set (eligible for hit-testing and offset
// lookups).
//
// Change notifications are never delivered synchronously: listeners respond
// to "a box became active/inactive" by requesting a rebuild, which is unsafe
// in the middle of a render pass. The registry instead defers delivery to
// the scheduler's post-frame callback queue, and drops the notification if
// the registry was disposed before the queue flushed.
package editor
