package ui

// UIRect holds one Val per side. Used for position offsets, margin, padding and border.
type UIRect struct {
	Left   Val
	Right  Val
	Top    Val
	Bottom Val
}

// Spacing is anything that can be spread over the four sides of a UIRect.
// Val (same value on every side) and UIRect (itself) implement it.
type Spacing interface {
	UIRect() UIRect
}

// NewUIRect returns a rect from the four sides in left, right, top, bottom order.
func NewUIRect(left, right, top, bottom Val) UIRect {
	return UIRect{Left: left, Right: right, Top: top, Bottom: bottom}
}

// DefaultUIRect returns a rect of Px(0) on every side.
func DefaultUIRect() UIRect {
	return RectAll(Px(0))
}

// RectAll returns a rect with v on every side.
func RectAll(v Val) UIRect {
	return UIRect{Left: v, Right: v, Top: v, Bottom: v}
}

// RectHorizontal sets left and right to v; top and bottom are Px(0).
func RectHorizontal(v Val) UIRect {
	r := DefaultUIRect()
	r.Left, r.Right = v, v
	return r
}

// RectVertical sets top and bottom to v; left and right are Px(0).
func RectVertical(v Val) UIRect {
	r := DefaultUIRect()
	r.Top, r.Bottom = v, v
	return r
}

// RectLeft sets only the left side; others are Px(0).
func RectLeft(v Val) UIRect {
	r := DefaultUIRect()
	r.Left = v
	return r
}

// RectRight sets only the right side; others are Px(0).
func RectRight(v Val) UIRect {
	r := DefaultUIRect()
	r.Right = v
	return r
}

// RectTop sets only the top side; others are Px(0).
func RectTop(v Val) UIRect {
	r := DefaultUIRect()
	r.Top = v
	return r
}

// RectBottom sets only the bottom side; others are Px(0).
func RectBottom(v Val) UIRect {
	r := DefaultUIRect()
	r.Bottom = v
	return r
}

// UIRect returns r, so a UIRect is itself a Spacing.
func (r UIRect) UIRect() UIRect {
	return r
}

// insets resolves the four sides against the parent width (CSS resolves
// percentage margins and padding against width on every side). Non-numeric sides are 0.
func (r UIRect) insets(parentWidth float32) (left, right, top, bottom float32) {
	return r.Left.resolveOr(parentWidth, 0),
		r.Right.resolveOr(parentWidth, 0),
		r.Top.resolveOr(parentWidth, 0),
		r.Bottom.resolveOr(parentWidth, 0)
}

// Size is a width/height pair of Vals.
type Size struct {
	Width  Val
	Height Val
}

// NewSize returns a Size from width and height.
func NewSize(width, height Val) Size {
	return Size{Width: width, Height: height}
}

// SizeAuto returns Auto on both axes.
func SizeAuto() Size {
	return Size{Width: Auto(), Height: Auto()}
}

// SizeUndefined returns Undefined on both axes.
func SizeUndefined() Size {
	return Size{Width: Undefined(), Height: Undefined()}
}

// Bounds is a resolved rectangle in screen pixels, written by Layout.
type Bounds struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains reports whether the point lies inside b.
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.X && y >= b.Y && x < b.X+b.Width && y < b.Y+b.Height
}

// Intersect returns the overlap of b and o; empty overlaps have zero size.
func (b Bounds) Intersect(o Bounds) Bounds {
	x0 := max(b.X, o.X)
	y0 := max(b.Y, o.Y)
	x1 := min(b.X+b.Width, o.X+o.Width)
	y1 := min(b.Y+b.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Bounds{X: x0, Y: y0}
	}
	return Bounds{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
