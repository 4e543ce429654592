package rendering

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// ParagraphLayout contains measured text metrics for one paragraph.
type ParagraphLayout struct {
	Text       string
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
}

// DefaultFace returns the bundled fallback font face. It is a fixed-width
// bitmap face, suitable for measurement in tests and headless hosts.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// MeasureParagraph lays out text with greedy word wrapping at maxWidth and
// returns the resulting line metrics. A maxWidth of zero or less disables
// wrapping. Explicit newlines always break lines.
//
// Runs of whitespace between words collapse to a single space, so the result
// is a measurement approximation, not a full text layout.
func MeasureParagraph(face font.Face, text string, maxWidth float64) ParagraphLayout {
	if face == nil {
		face = DefaultFace()
	}

	metrics := face.Metrics()
	layout := ParagraphLayout{
		Text:       text,
		Ascent:     fixedToFloat(metrics.Ascent),
		Descent:    fixedToFloat(metrics.Descent),
		LineHeight: fixedToFloat(metrics.Height),
	}
	if layout.LineHeight <= 0 {
		layout.LineHeight = layout.Ascent + layout.Descent
	}

	for _, paragraph := range strings.Split(text, "\n") {
		layout.Lines = append(layout.Lines, wrapLine(face, paragraph, maxWidth)...)
	}

	var widest float64
	for _, line := range layout.Lines {
		if line.Width > widest {
			widest = line.Width
		}
	}
	layout.Size = Size{
		Width:  widest,
		Height: layout.LineHeight * float64(len(layout.Lines)),
	}
	return layout
}

// wrapLine greedily packs words into lines no wider than maxWidth.
// A single word wider than maxWidth gets its own overflowing line.
func wrapLine(face font.Face, text string, maxWidth float64) []TextLine {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []TextLine{{}}
	}
	if maxWidth <= 0 {
		joined := strings.Join(words, " ")
		return []TextLine{{Text: joined, Width: MeasureString(face, joined)}}
	}

	var lines []TextLine
	current := words[0]
	currentWidth := MeasureString(face, current)
	for _, word := range words[1:] {
		candidate := current + " " + word
		candidateWidth := MeasureString(face, candidate)
		if candidateWidth > maxWidth {
			lines = append(lines, TextLine{Text: current, Width: currentWidth})
			current = word
			currentWidth = MeasureString(face, word)
			continue
		}
		current = candidate
		currentWidth = candidateWidth
	}
	return append(lines, TextLine{Text: current, Width: currentWidth})
}

// MeasureString returns the advance width of text in pixels.
func MeasureString(face font.Face, text string) float64 {
	return fixedToFloat(font.MeasureString(face, text))
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
