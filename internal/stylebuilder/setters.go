package stylebuilder

import "ui-builder/internal/ui"

// Left sets the left displacement of the node.
func (b Builder[T, P]) Left(left ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Position.Left = left })
}

// Right sets the right displacement of the node.
func (b Builder[T, P]) Right(right ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Position.Right = right })
}

// Top sets the top displacement of the node.
func (b Builder[T, P]) Top(top ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Position.Top = top })
}

// Bottom sets the bottom displacement of the node.
func (b Builder[T, P]) Bottom(bottom ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Position.Bottom = bottom })
}

// Display shows this node and its children.
func (b Builder[T, P]) Display() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Display = ui.DisplayFlex })
}

// Disable hides this node and its children.
func (b Builder[T, P]) Disable() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Display = ui.DisplayNone })
}

// Row lays children out left to right.
func (b Builder[T, P]) Row() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexDirection = ui.FlexRow })
}

// Column lays children out top to bottom.
func (b Builder[T, P]) Column() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexDirection = ui.FlexColumn })
}

// RowReverse lays children out right to left.
func (b Builder[T, P]) RowReverse() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexDirection = ui.FlexRowReverse })
}

// ColumnReverse lays children out bottom to top.
func (b Builder[T, P]) ColumnReverse() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexDirection = ui.FlexColumnReverse })
}

// NoWrap keeps children on a single line.
func (b Builder[T, P]) NoWrap() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexWrap = ui.NoWrap })
}

// Wrap lets children wrap onto further lines.
func (b Builder[T, P]) Wrap() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexWrap = ui.Wrap })
}

// WrapReverse wraps children with lines stacked in reverse.
func (b Builder[T, P]) WrapReverse() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexWrap = ui.WrapReverse })
}

// Absolute takes the node out of the flow and places it with Left/Right/Top/Bottom.
func (b Builder[T, P]) Absolute() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.PositionType = ui.PositionAbsolute })
}

// Relative puts the node back in the parent's flow.
func (b Builder[T, P]) Relative() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.PositionType = ui.PositionRelative })
}

// Basis sets flex-basis.
func (b Builder[T, P]) Basis(basis ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexBasis = basis })
}

// Grow sets flex-grow.
func (b Builder[T, P]) Grow(growth float32) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexGrow = growth })
}

// Shrink sets flex-shrink.
func (b Builder[T, P]) Shrink(shrink float32) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.FlexShrink = shrink })
}

// MinWidth sets the minimum width of the node.
func (b Builder[T, P]) MinWidth(v ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.MinSize.Width = v })
}

// Width sets the width of the node.
func (b Builder[T, P]) Width(v ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Size.Width = v })
}

// MaxWidth sets the maximum width of the node.
func (b Builder[T, P]) MaxWidth(v ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.MaxSize.Width = v })
}

// MinHeight sets the minimum height of the node.
func (b Builder[T, P]) MinHeight(v ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.MinSize.Height = v })
}

// Height sets the height of the node.
func (b Builder[T, P]) Height(v ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Size.Height = v })
}

// MaxHeight sets the maximum height of the node.
func (b Builder[T, P]) MaxHeight(v ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.MaxSize.Height = v })
}

// Margin sets the margins. A single ui.Val applies to every side; a ui.UIRect sets each side.
func (b Builder[T, P]) Margin(margin ui.Spacing) Builder[T, P] {
	r := margin.UIRect()
	return b.Update(func(s *ui.Style) { s.Margin = r })
}

// Padding sets the padding. A Breadth applies to every side; a NumRect sets each side.
func (b Builder[T, P]) Padding(padding NumSpacing) Builder[T, P] {
	r := padding.NumRect().UIRect()
	return b.Update(func(s *ui.Style) { s.Padding = r })
}

// Border sets the border thickness. A Breadth applies to every side; a NumRect sets each side.
func (b Builder[T, P]) Border(border NumSpacing) Builder[T, P] {
	r := border.NumRect().UIRect()
	return b.Update(func(s *ui.Style) { s.Border = r })
}

// HideOverflow clips children to the node.
func (b Builder[T, P]) HideOverflow() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Overflow = ui.OverflowHidden })
}

// ShowOverflow lets children draw outside the node.
func (b Builder[T, P]) ShowOverflow() Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Overflow = ui.OverflowVisible })
}

// MinSize sets the minimum size of the node. It wins over Size and MaxSize.
func (b Builder[T, P]) MinSize(size ui.Size) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.MinSize = size })
}

// Size sets the size of the node.
func (b Builder[T, P]) Size(size ui.Size) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Size = size })
}

// SizeAll sets width and height to the same value.
func (b Builder[T, P]) SizeAll(v ui.Val) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.Size = ui.NewSize(v, v) })
}

// MaxSize sets the maximum size of the node.
func (b Builder[T, P]) MaxSize(size ui.Size) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.MaxSize = size })
}

// AspectRatio fixes width/height when only one of them is known.
func (b Builder[T, P]) AspectRatio(ratio float32) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.AspectRatio = &ratio })
}
