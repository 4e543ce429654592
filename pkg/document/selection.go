package document

// TextAffinity indicates which side of an offset the caret prefers when the
// offset sits on a rendering boundary (e.g., the end of a wrapped line).
type TextAffinity int

const (
	// AffinityUpstream - the caret is placed at the end of the previous character.
	AffinityUpstream TextAffinity = iota
	// AffinityDownstream - the caret is placed at the start of the next character.
	AffinityDownstream
)

// TextSelection represents a selection within the document.
type TextSelection struct {
	// BaseOffset is the position where the selection started.
	BaseOffset int
	// ExtentOffset is the position where the selection ended. This is the
	// end that moves as the user drags or extends the selection, and the
	// end the caret is placed at.
	ExtentOffset int
	// Affinity indicates which direction the caret prefers.
	Affinity TextAffinity
}

// CollapsedSelection creates a zero-length selection (a caret) at offset.
func CollapsedSelection(offset int) TextSelection {
	return TextSelection{
		BaseOffset:   offset,
		ExtentOffset: offset,
		Affinity:     AffinityDownstream,
	}
}

// Start returns the smaller of BaseOffset and ExtentOffset.
func (s TextSelection) Start() int {
	if s.BaseOffset < s.ExtentOffset {
		return s.BaseOffset
	}
	return s.ExtentOffset
}

// End returns the larger of BaseOffset and ExtentOffset.
func (s TextSelection) End() int {
	if s.BaseOffset > s.ExtentOffset {
		return s.BaseOffset
	}
	return s.ExtentOffset
}

// IsCollapsed returns true if the selection has no length (just a caret).
func (s TextSelection) IsCollapsed() bool {
	return s.BaseOffset == s.ExtentOffset
}

// IsValid returns true if both offsets are non-negative.
func (s TextSelection) IsValid() bool {
	return s.BaseOffset >= 0 && s.ExtentOffset >= 0
}

// Range returns the selected offsets as a normalized TextRange.
func (s TextSelection) Range() TextRange {
	return TextRange{Start: s.Start(), End: s.End()}
}
