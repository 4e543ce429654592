package editor

import (
	"github.com/go-drift/editable/pkg/document"
	"github.com/go-drift/editable/pkg/rendering"
)

// EditableBox is the capability contract a render box exposes to the
// registry. The registry treats boxes as opaque handles for bookkeeping and
// only calls these methods inside query operations, never while mutating
// its own state.
type EditableBox interface {
	// Node returns the document node this box renders. Query code uses it
	// for document-offset containment; a nil node makes the box invisible
	// to offset lookups.
	Node() document.Node

	// GlobalToLocal converts a point in the global (screen) coordinate
	// space into this box's local coordinate space.
	GlobalToLocal(point rendering.Offset) rendering.Offset

	// Size returns the box's local bounds, anchored at the local origin.
	Size() rendering.Size
}
