// Package document defines the read-only document model contract consumed
// by render boxes. Positions are logical offsets into the document text,
// independent of screen geometry.
package document

import "fmt"

// TextRange represents a half-open range [Start, End) of document offsets.
type TextRange struct {
	Start int
	End   int
}

// IsEmpty returns true if the range has zero length.
func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if both start and end are non-negative and ordered.
func (r TextRange) IsValid() bool {
	return r.Start >= 0 && r.End >= r.Start
}

// Length returns the number of offsets covered by the range.
func (r TextRange) Length() int {
	return r.End - r.Start
}

// Contains returns true if offset falls within the half-open range.
func (r TextRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Node is one logical segment of the document (a line or block). Render
// boxes expose their node so hit-testing collaborators can resolve document
// offsets without touching box internals.
type Node interface {
	// DocumentRange returns the span of document offsets this node covers.
	DocumentRange() TextRange
	// ContainsOffset returns true if the document offset falls inside this node.
	ContainsOffset(offset int) bool
}

// LineNode is a Node covering one line of plain text.
//
// The covered range includes a trailing position for the line break, so a
// caret can sit at the end of the line: a line at offset 10 with text "abc"
// covers offsets [10, 14).
type LineNode struct {
	offset int
	text   string
}

// NewLineNode creates a line node at the given document offset.
func NewLineNode(offset int, text string) *LineNode {
	if offset < 0 {
		panic(fmt.Sprintf("document: negative line offset %d", offset))
	}
	return &LineNode{offset: offset, text: text}
}

// Text returns the plain text content of the line.
func (n *LineNode) Text() string {
	return n.text
}

// Offset returns the document offset of the start of the line.
func (n *LineNode) Offset() int {
	return n.offset
}

// DocumentRange returns the offsets covered by the line, including the
// position of the trailing line break.
func (n *LineNode) DocumentRange() TextRange {
	return TextRange{Start: n.offset, End: n.offset + len(n.text) + 1}
}

// ContainsOffset returns true if the document offset falls inside this line.
func (n *LineNode) ContainsOffset(offset int) bool {
	return n.DocumentRange().Contains(offset)
}
