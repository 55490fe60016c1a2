package stylebuilder

import "ui-builder/internal/ui"

// NumSpacing is accepted by Padding and Border: a Breadth for every side or a NumRect.
type NumSpacing interface {
	NumRect() NumRect
}

// NumRect is a ui.UIRect restricted to numeric sides.
type NumRect struct {
	Left, Right, Top, Bottom Breadth
}

func NewNumRect(left, right, top, bottom Breadth) NumRect {
	return NumRect{Left: left, Right: right, Top: top, Bottom: bottom}
}

func NumRectAll(v Breadth) NumRect {
	return NumRect{Left: v, Right: v, Top: v, Bottom: v}
}

// NumRectHorizontal sets left and right; top and bottom stay 0px.
func NumRectHorizontal(v Breadth) NumRect {
	return NumRect{Left: v, Right: v}
}

// NumRectVertical sets top and bottom; left and right stay 0px.
func NumRectVertical(v Breadth) NumRect {
	return NumRect{Top: v, Bottom: v}
}

func NumRectLeft(v Breadth) NumRect   { return NumRect{Left: v} }
func NumRectRight(v Breadth) NumRect  { return NumRect{Right: v} }
func NumRectTop(v Breadth) NumRect    { return NumRect{Top: v} }
func NumRectBottom(v Breadth) NumRect { return NumRect{Bottom: v} }

func (r NumRect) NumRect() NumRect { return r }

// UIRect converts every side to its ui.Val.
func (r NumRect) UIRect() ui.UIRect {
	return ui.NewUIRect(r.Left.Val(), r.Right.Val(), r.Top.Val(), r.Bottom.Val())
}
