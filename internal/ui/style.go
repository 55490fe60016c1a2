package ui

// Display controls whether a node and its children take part in layout and drawing.
type Display uint8

const (
	DisplayFlex Display = iota // laid out as a flex container
	DisplayNone                // hidden along with its children
)

// PositionType selects between flow and absolute placement.
type PositionType uint8

const (
	PositionRelative PositionType = iota // placed by the parent's flex flow, then offset by Position
	PositionAbsolute                     // placed against the parent's padding box using Position
)

// FlexDirection is the main axis of a flex container.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

// FlexWrap controls whether children may wrap onto further lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// AlignItems positions children on the cross axis.
type AlignItems uint8

const (
	AlignItemsFlexStart AlignItems = iota
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// AlignSelf overrides the parent's AlignItems for one child. Auto defers to the parent.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// AlignContent distributes wrapped lines on the cross axis.
type AlignContent uint8

const (
	AlignContentFlexStart AlignContent = iota
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

// JustifyContent distributes children on the main axis.
type JustifyContent uint8

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Overflow controls clipping of children that exceed the node bounds.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
)

// Style is the layout configuration of a UI node. Each field is independent;
// DefaultStyle gives the value a freshly spawned node starts with.
type Style struct {
	Display        Display
	PositionType   PositionType
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	AlignItems     AlignItems
	AlignSelf      AlignSelf
	AlignContent   AlignContent
	JustifyContent JustifyContent

	// Position offsets; only numeric sides are used.
	Position UIRect
	Margin   UIRect
	Padding  UIRect
	Border   UIRect

	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Val

	Size    Size
	MinSize Size
	MaxSize Size

	// AspectRatio is width/height; nil means none.
	AspectRatio *float32
	Overflow    Overflow
}

// DefaultStyle returns the style every node starts from.
func DefaultStyle() Style {
	return Style{
		Display:        DisplayFlex,
		PositionType:   PositionRelative,
		FlexDirection:  FlexRow,
		FlexWrap:       NoWrap,
		AlignItems:     AlignItemsStretch,
		AlignSelf:      AlignSelfAuto,
		AlignContent:   AlignContentStretch,
		JustifyContent: JustifyFlexStart,
		Position:       RectAll(Undefined()),
		Margin:         DefaultUIRect(),
		Padding:        DefaultUIRect(),
		Border:         DefaultUIRect(),
		FlexGrow:       0,
		FlexShrink:     1,
		FlexBasis:      Auto(),
		Size:           SizeAuto(),
		MinSize:        SizeAuto(),
		MaxSize:        SizeAuto(),
		AspectRatio:    nil,
		Overflow:       OverflowVisible,
	}
}

// StyleRef returns s itself, so a bare *Style satisfies Styled.
func (s *Style) StyleRef() *Style {
	return s
}

// isRow reports whether the main axis is horizontal.
func (d FlexDirection) isRow() bool {
	return d == FlexRow || d == FlexRowReverse
}

func (d FlexDirection) isReverse() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

// effectiveAlign resolves AlignSelf against the parent's AlignItems.
func effectiveAlign(parent AlignItems, self AlignSelf) AlignItems {
	switch self {
	case AlignSelfFlexStart:
		return AlignItemsFlexStart
	case AlignSelfFlexEnd:
		return AlignItemsFlexEnd
	case AlignSelfCenter:
		return AlignItemsCenter
	case AlignSelfBaseline:
		return AlignItemsBaseline
	case AlignSelfStretch:
		return AlignItemsStretch
	default:
		return parent
	}
}
