package editor

import (
	"golang.org/x/image/font"

	"github.com/go-drift/editable/pkg/document"
	"github.com/go-drift/editable/pkg/rendering"
)

// ParagraphBox renders one document line as a word-wrapped paragraph. It is
// the library's stock EditableBox: the owning view attaches it to a
// RenderContext, lays it out whenever constraints or content change, and
// detaches it on teardown. Between SetNode/MarkNeedsLayout and the next
// Layout call the box sits in the registry's dirty set and is invisible to
// queries.
type ParagraphBox struct {
	node   *document.LineNode
	face   font.Face
	origin rendering.Offset
	layout rendering.ParagraphLayout
	ctx    *RenderContext
}

// NewParagraphBox creates a paragraph box for the given line node. A nil
// face falls back to the bundled measurement face.
func NewParagraphBox(node *document.LineNode, face font.Face) *ParagraphBox {
	if face == nil {
		face = rendering.DefaultFace()
	}
	return &ParagraphBox{node: node, face: face}
}

// Attach registers the box with a render context. The box starts dirty and
// becomes queryable after the first Layout call.
func (b *ParagraphBox) Attach(ctx *RenderContext) {
	ctx.AddBox(b)
	b.ctx = ctx
}

// Detach unregisters the box from its render context.
func (b *ParagraphBox) Detach() {
	if b.ctx == nil {
		return
	}
	b.ctx.RemoveBox(b)
	b.ctx = nil
}

// Layout measures the paragraph at the given wrap width and marks the box
// active in its render context.
func (b *ParagraphBox) Layout(maxWidth float64) {
	text := ""
	if b.node != nil {
		text = b.node.Text()
	}
	b.layout = rendering.MeasureParagraph(b.face, text, maxWidth)
	if b.ctx != nil {
		b.ctx.MarkDirty(b, false)
	}
}

// MarkNeedsLayout moves the box back into the dirty set until the next
// Layout call. The owning view calls this when constraints change.
func (b *ParagraphBox) MarkNeedsLayout() {
	if b.ctx != nil {
		b.ctx.MarkDirty(b, true)
	}
}

// SetNode swaps the document node the box renders and marks the box as
// needing layout.
func (b *ParagraphBox) SetNode(node *document.LineNode) {
	b.node = node
	b.MarkNeedsLayout()
}

// SetOrigin records the box's position in the global coordinate space. The
// parent assigns this during its own layout; it does not affect registry
// state.
func (b *ParagraphBox) SetOrigin(origin rendering.Offset) {
	b.origin = origin
}

// Origin returns the box's global position.
func (b *ParagraphBox) Origin() rendering.Offset {
	return b.origin
}

// Node returns the document node this box renders.
func (b *ParagraphBox) Node() document.Node {
	if b.node == nil {
		return nil
	}
	return b.node
}

// GlobalToLocal converts a global point into the box's local space.
func (b *ParagraphBox) GlobalToLocal(point rendering.Offset) rendering.Offset {
	return point.Sub(b.origin)
}

// Size returns the measured paragraph size. Zero before the first Layout.
func (b *ParagraphBox) Size() rendering.Size {
	return b.layout.Size
}

// Metrics returns the measured paragraph layout.
func (b *ParagraphBox) Metrics() rendering.ParagraphLayout {
	return b.layout
}

// CaretRect returns the local-space caret rectangle for a document offset
// within this box's node. Offsets outside the node clamp to the paragraph
// edges. Positions within wrapped lines are approximate where wrapping
// collapsed whitespace.
func (b *ParagraphBox) CaretRect(offset int) rendering.Rect {
	column := 0
	if b.node != nil {
		column = offset - b.node.Offset()
	}
	if column < 0 {
		column = 0
	}

	lineHeight := b.layout.LineHeight
	for i, line := range b.layout.Lines {
		if column <= len(line.Text) {
			x := rendering.MeasureString(b.face, line.Text[:column])
			return rendering.RectFromLTWH(x, float64(i)*lineHeight, 1, lineHeight)
		}
		// Account for the break between wrapped lines.
		column -= len(line.Text) + 1
	}

	// Past the last line: caret at the end of the paragraph.
	last := len(b.layout.Lines) - 1
	if last < 0 {
		return rendering.RectFromLTWH(0, 0, 1, lineHeight)
	}
	return rendering.RectFromLTWH(b.layout.Lines[last].Width, float64(last)*lineHeight, 1, lineHeight)
}
