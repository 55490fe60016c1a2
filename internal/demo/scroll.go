package demo

import (
	"github.com/chewxy/math32"

	sb "ui-builder/internal/stylebuilder"
	"ui-builder/internal/ui"
)

// ScrollUnit is the unit of a wheel delta.
type ScrollUnit uint8

const (
	// ScrollLine deltas count notches; one notch moves LinePixels.
	ScrollLine ScrollUnit = iota
	// ScrollPixel deltas are already in pixels.
	ScrollPixel
)

// LinePixels is how far one wheel notch scrolls.
const LinePixels = 20

// ScrollingList moves a panel of items inside a clipping parent.
type ScrollingList struct {
	panel    *ui.Node
	position float32
}

// NewScrollingList wraps panel, whose children are the list items.
func NewScrollingList(panel *ui.Node) *ScrollingList {
	return &ScrollingList{panel: panel}
}

// Panel returns the moving node.
func (l *ScrollingList) Panel() *ui.Node { return l.panel }

// Position is the current offset, between -(items-panel) and 0.
func (l *ScrollingList) Position() float32 { return l.position }

// Scroll moves the list by dy and writes the new offset to the panel's top.
// Sizes come from the last layout, so call it between layouts. Positive dy
// scrolls toward the first item.
func (l *ScrollingList) Scroll(dy float32, unit ScrollUnit) float32 {
	if unit == ScrollLine {
		dy *= LinePixels
	}
	var items float32
	for _, c := range l.panel.Children {
		items += c.Bounds.Height
	}
	maxScroll := math32.Max(items-l.panel.Bounds.Height, 0)
	l.position = clamp(l.position+dy, -maxScroll, 0)
	sb.Edit(&l.panel.Style).Top(ui.Px(l.position))
	return l.position
}

func clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
