package ui

import (
	"strconv"

	"github.com/chewxy/math32"
)

// ValKind says how the number in a Val is interpreted.
type ValKind uint8

const (
	ValUndefined ValKind = iota // not set; treated like Auto by layout unless noted
	ValAuto                     // computed from content or flex
	ValPx                       // logical pixels
	ValPercent                  // percentage of the parent's content box (0–100)
)

// Val is a length used by Style: undefined, auto, pixels or percent.
// The zero value is Undefined.
type Val struct {
	Kind  ValKind
	Value float32
}

// Undefined returns a Val with no value.
func Undefined() Val {
	return Val{Kind: ValUndefined}
}

// Auto returns a Val that layout fills in from content or flex.
func Auto() Val {
	return Val{Kind: ValAuto}
}

// Px returns a Val of v logical pixels.
func Px(v float32) Val {
	return Val{Kind: ValPx, Value: v}
}

// Percent returns a Val of p percent of the parent (50 = half).
func Percent(p float32) Val {
	return Val{Kind: ValPercent, Value: p}
}

// IsNumeric reports whether the Val is Px or Percent.
func (v Val) IsNumeric() bool {
	return v.Kind == ValPx || v.Kind == ValPercent
}

// Resolve evaluates v against parent. ok is false for Auto and Undefined.
func (v Val) Resolve(parent float32) (px float32, ok bool) {
	switch v.Kind {
	case ValPx:
		return v.Value, true
	case ValPercent:
		return parent * v.Value / 100, true
	default:
		return 0, false
	}
}

// resolveOr is Resolve with a fallback for non-numeric values.
func (v Val) resolveOr(parent, fallback float32) float32 {
	if px, ok := v.Resolve(parent); ok {
		return px
	}
	return fallback
}

func (v Val) String() string {
	switch v.Kind {
	case ValAuto:
		return "auto"
	case ValPx:
		return formatFloat(v.Value) + "px"
	case ValPercent:
		return formatFloat(v.Value) + "%"
	default:
		return "undefined"
	}
}

// UIRect returns a rect with v on every side, so a single Val can be used wherever a Spacing is accepted.
func (v Val) UIRect() UIRect {
	return RectAll(v)
}

func formatFloat(f float32) string {
	if f == math32.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
