package stylebuilder

import "ui-builder/internal/ui"

// AlignSelf sets how this node is aligned on its parent's cross axis.
func (b Builder[T, P]) AlignSelf(align ui.AlignSelf) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.AlignSelf = align })
}

// AlignItems sets how children are aligned on the cross axis.
func (b Builder[T, P]) AlignItems(align ui.AlignItems) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.AlignItems = align })
}

// AlignContent sets how wrapped lines are aligned within the container.
func (b Builder[T, P]) AlignContent(align ui.AlignContent) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.AlignContent = align })
}

// JustifyContent sets how children are distributed on the main axis.
func (b Builder[T, P]) JustifyContent(justify ui.JustifyContent) Builder[T, P] {
	return b.Update(func(s *ui.Style) { s.JustifyContent = justify })
}

// Center centers children on both axes: JustifyContentCenter followed by AlignItemsCenter.
func (b Builder[T, P]) Center() Builder[T, P] {
	return b.JustifyContentCenter().AlignItemsCenter()
}

func (b Builder[T, P]) AlignItemsCenter() Builder[T, P] { return b.AlignItems(ui.AlignItemsCenter) }
func (b Builder[T, P]) AlignItemsStart() Builder[T, P]  { return b.AlignItems(ui.AlignItemsFlexStart) }
func (b Builder[T, P]) AlignItemsEnd() Builder[T, P]    { return b.AlignItems(ui.AlignItemsFlexEnd) }
func (b Builder[T, P]) AlignItemsStretch() Builder[T, P] {
	return b.AlignItems(ui.AlignItemsStretch)
}
func (b Builder[T, P]) AlignItemsBaseline() Builder[T, P] {
	return b.AlignItems(ui.AlignItemsBaseline)
}

func (b Builder[T, P]) AlignSelfAuto() Builder[T, P]   { return b.AlignSelf(ui.AlignSelfAuto) }
func (b Builder[T, P]) AlignSelfCenter() Builder[T, P] { return b.AlignSelf(ui.AlignSelfCenter) }
func (b Builder[T, P]) AlignSelfStart() Builder[T, P]  { return b.AlignSelf(ui.AlignSelfFlexStart) }
func (b Builder[T, P]) AlignSelfEnd() Builder[T, P]    { return b.AlignSelf(ui.AlignSelfFlexEnd) }
func (b Builder[T, P]) AlignSelfStretch() Builder[T, P] {
	return b.AlignSelf(ui.AlignSelfStretch)
}
func (b Builder[T, P]) AlignSelfBaseline() Builder[T, P] {
	return b.AlignSelf(ui.AlignSelfBaseline)
}

func (b Builder[T, P]) AlignContentCenter() Builder[T, P] {
	return b.AlignContent(ui.AlignContentCenter)
}
func (b Builder[T, P]) AlignContentStart() Builder[T, P] {
	return b.AlignContent(ui.AlignContentFlexStart)
}
func (b Builder[T, P]) AlignContentEnd() Builder[T, P] {
	return b.AlignContent(ui.AlignContentFlexEnd)
}
func (b Builder[T, P]) AlignContentSpaceBetween() Builder[T, P] {
	return b.AlignContent(ui.AlignContentSpaceBetween)
}
func (b Builder[T, P]) AlignContentSpaceAround() Builder[T, P] {
	return b.AlignContent(ui.AlignContentSpaceAround)
}
func (b Builder[T, P]) AlignContentStretch() Builder[T, P] {
	return b.AlignContent(ui.AlignContentStretch)
}

func (b Builder[T, P]) JustifyContentCenter() Builder[T, P] {
	return b.JustifyContent(ui.JustifyCenter)
}
func (b Builder[T, P]) JustifyContentStart() Builder[T, P] {
	return b.JustifyContent(ui.JustifyFlexStart)
}
func (b Builder[T, P]) JustifyContentEnd() Builder[T, P] {
	return b.JustifyContent(ui.JustifyFlexEnd)
}
func (b Builder[T, P]) JustifyContentSpaceBetween() Builder[T, P] {
	return b.JustifyContent(ui.JustifySpaceBetween)
}
func (b Builder[T, P]) JustifyContentSpaceAround() Builder[T, P] {
	return b.JustifyContent(ui.JustifySpaceAround)
}
func (b Builder[T, P]) JustifyContentSpaceEvenly() Builder[T, P] {
	return b.JustifyContent(ui.JustifySpaceEvenly)
}
