package editor_test

import (
	"testing"

	"github.com/go-drift/editable/pkg/document"
	"github.com/go-drift/editable/pkg/editor"
	"github.com/go-drift/editable/pkg/rendering"
)

// TestParagraphBoxLifecycle verifies that attach, layout, and detach drive
// the registry through the dirty and active sets.
func TestParagraphBoxLifecycle(t *testing.T) {
	_, ctx := newTestContext()
	node := document.NewLineNode(0, "hello world")
	box := editor.NewParagraphBox(node, nil)

	box.Attach(ctx)
	if !ctx.IsDirty(box) {
		t.Fatal("attached box should start dirty")
	}

	box.Layout(0)
	if !ctx.IsActive(box) {
		t.Fatal("laid-out box should be active")
	}
	if box.Size().IsEmpty() {
		t.Error("layout should produce a non-empty size")
	}

	box.MarkNeedsLayout()
	if !ctx.IsDirty(box) {
		t.Error("MarkNeedsLayout should re-dirty the box")
	}

	box.Layout(0)
	box.Detach()
	if ctx.IsDirty(box) || ctx.IsActive(box) {
		t.Error("detached box should be in neither set")
	}
}

// TestParagraphBoxOffsetLookup verifies that a laid-out paragraph resolves
// offsets within its line, including the trailing break position.
func TestParagraphBoxOffsetLookup(t *testing.T) {
	_, ctx := newTestContext()
	first := editor.NewParagraphBox(document.NewLineNode(0, "hello"), nil)
	second := editor.NewParagraphBox(document.NewLineNode(6, "world"), nil)
	for _, b := range []*editor.ParagraphBox{first, second} {
		b.Attach(ctx)
		b.Layout(0)
	}

	if got := ctx.BoxForTextOffset(2); got != first {
		t.Errorf("offset 2 resolved to %v, want first line", got)
	}
	if got := ctx.BoxForTextOffset(5); got != first {
		t.Errorf("offset 5 (trailing break) resolved to %v, want first line", got)
	}
	if got := ctx.BoxForTextOffset(6); got != second {
		t.Errorf("offset 6 resolved to %v, want second line", got)
	}
	if got := ctx.BoxForTextOffset(12); got != nil {
		t.Errorf("offset 12 resolved to %v, want nil", got)
	}
}

// TestParagraphBoxPointLookup verifies global point resolution through the
// box origin.
func TestParagraphBoxPointLookup(t *testing.T) {
	_, ctx := newTestContext()
	box := editor.NewParagraphBox(document.NewLineNode(0, "hello"), nil)
	box.Attach(ctx)
	box.Layout(0)
	box.SetOrigin(rendering.Offset{X: 10, Y: 100})

	inside := rendering.Offset{X: 12, Y: 105}
	if got := ctx.BoxForGlobalPoint(inside); got != box {
		t.Errorf("point %+v resolved to %v, want the box", inside, got)
	}
	outside := rendering.Offset{X: 5, Y: 105}
	if got := ctx.BoxForGlobalPoint(outside); got != nil {
		t.Errorf("point %+v resolved to %v, want nil", outside, got)
	}
}

// TestParagraphBoxCaretRect verifies caret geometry for offsets within an
// unwrapped line.
func TestParagraphBoxCaretRect(t *testing.T) {
	box := editor.NewParagraphBox(document.NewLineNode(0, "abc"), nil)
	box.Layout(0)

	start := box.CaretRect(0)
	if start.Left != 0 {
		t.Errorf("caret at offset 0 starts at x=%g, want 0", start.Left)
	}
	mid := box.CaretRect(2)
	if mid.Left <= start.Left {
		t.Errorf("caret at offset 2 (x=%g) should sit right of offset 0 (x=%g)", mid.Left, start.Left)
	}
	if got := box.CaretRect(2).Height(); got != box.Metrics().LineHeight {
		t.Errorf("caret height = %g, want line height %g", got, box.Metrics().LineHeight)
	}
}

// TestParagraphBoxSetNodeDirties verifies that content swaps require a new
// layout pass before the box is queryable again.
func TestParagraphBoxSetNodeDirties(t *testing.T) {
	_, ctx := newTestContext()
	box := editor.NewParagraphBox(document.NewLineNode(0, "old"), nil)
	box.Attach(ctx)
	box.Layout(0)

	box.SetNode(document.NewLineNode(0, "replacement"))
	if !ctx.IsDirty(box) {
		t.Error("SetNode should dirty the box")
	}
	if got := ctx.BoxForTextOffset(1); got != nil {
		t.Errorf("offset 1 resolved to %v while box awaits layout, want nil", got)
	}
}
