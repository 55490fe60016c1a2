package ui

// Keyword tables shared by String and the Parse* helpers. Names follow CSS.

var displayNames = []string{"flex", "none"}
var positionNames = []string{"relative", "absolute"}
var directionNames = []string{"row", "column", "row-reverse", "column-reverse"}
var wrapNames = []string{"nowrap", "wrap", "wrap-reverse"}
var alignItemsNames = []string{"flex-start", "flex-end", "center", "baseline", "stretch"}
var alignSelfNames = []string{"auto", "flex-start", "flex-end", "center", "baseline", "stretch"}
var alignContentNames = []string{"flex-start", "flex-end", "center", "stretch", "space-between", "space-around"}
var justifyNames = []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}
var overflowNames = []string{"visible", "hidden"}

func nameOf(names []string, i uint8) string {
	if int(i) < len(names) {
		return names[i]
	}
	return "unknown"
}

func lookup[T ~uint8](names []string, s string) (T, bool) {
	for i, n := range names {
		if n == s {
			return T(i), true
		}
	}
	return 0, false
}

func (d Display) String() string        { return nameOf(displayNames, uint8(d)) }
func (p PositionType) String() string   { return nameOf(positionNames, uint8(p)) }
func (d FlexDirection) String() string  { return nameOf(directionNames, uint8(d)) }
func (w FlexWrap) String() string       { return nameOf(wrapNames, uint8(w)) }
func (a AlignItems) String() string     { return nameOf(alignItemsNames, uint8(a)) }
func (a AlignSelf) String() string      { return nameOf(alignSelfNames, uint8(a)) }
func (a AlignContent) String() string   { return nameOf(alignContentNames, uint8(a)) }
func (j JustifyContent) String() string { return nameOf(justifyNames, uint8(j)) }
func (o Overflow) String() string       { return nameOf(overflowNames, uint8(o)) }

// ParseDisplay parses a CSS display keyword.
func ParseDisplay(s string) (Display, bool) { return lookup[Display](displayNames, s) }

// ParsePositionType parses a CSS position keyword.
func ParsePositionType(s string) (PositionType, bool) { return lookup[PositionType](positionNames, s) }

// ParseFlexDirection parses a CSS flex-direction keyword.
func ParseFlexDirection(s string) (FlexDirection, bool) {
	return lookup[FlexDirection](directionNames, s)
}

// ParseFlexWrap parses a CSS flex-wrap keyword.
func ParseFlexWrap(s string) (FlexWrap, bool) { return lookup[FlexWrap](wrapNames, s) }

// ParseAlignItems parses a CSS align-items keyword.
func ParseAlignItems(s string) (AlignItems, bool) { return lookup[AlignItems](alignItemsNames, s) }

// ParseAlignSelf parses a CSS align-self keyword.
func ParseAlignSelf(s string) (AlignSelf, bool) { return lookup[AlignSelf](alignSelfNames, s) }

// ParseAlignContent parses a CSS align-content keyword.
func ParseAlignContent(s string) (AlignContent, bool) {
	return lookup[AlignContent](alignContentNames, s)
}

// ParseJustifyContent parses a CSS justify-content keyword.
func ParseJustifyContent(s string) (JustifyContent, bool) {
	return lookup[JustifyContent](justifyNames, s)
}

// ParseOverflow parses a CSS overflow keyword.
func ParseOverflow(s string) (Overflow, bool) { return lookup[Overflow](overflowNames, s) }
