package stylebuilder

import (
	"errors"
	"fmt"

	"ui-builder/internal/ui"
)

var (
	// ErrNonIdenticalVariants is returned by TryAdd and TrySub when one side is Px and the other Percent.
	ErrNonIdenticalVariants = errors.New("the variants of the Breadths don't match")
	// ErrNonEvaluatable is returned when converting an Auto or Undefined ui.Val.
	ErrNonEvaluatable = errors.New("cannot convert from non-evaluatable variants (non-numeric)")
)

// BreadthKind selects the unit of a Breadth.
type BreadthKind uint8

const (
	BreadthKindPx BreadthKind = iota
	BreadthKindPercent
)

// Breadth is a side-to-side distance that always resolves to a number: a
// ui.Val without Auto and Undefined. The zero value is 0px.
type Breadth struct {
	Kind  BreadthKind
	Value float32
}

func BreadthPx(v float32) Breadth      { return Breadth{Kind: BreadthKindPx, Value: v} }
func BreadthPercent(v float32) Breadth { return Breadth{Kind: BreadthKindPercent, Value: v} }

// BreadthFromVal converts a numeric ui.Val. Auto and Undefined fail with ErrNonEvaluatable.
func BreadthFromVal(v ui.Val) (Breadth, error) {
	switch v.Kind {
	case ui.ValPx:
		return BreadthPx(v.Value), nil
	case ui.ValPercent:
		return BreadthPercent(v.Value), nil
	default:
		return Breadth{}, fmt.Errorf("stylebuilder: %s: %w", v, ErrNonEvaluatable)
	}
}

// Val converts b to the equivalent ui.Val.
func (b Breadth) Val() ui.Val {
	if b.Kind == BreadthKindPercent {
		return ui.Percent(b.Value)
	}
	return ui.Px(b.Value)
}

func (b Breadth) String() string {
	return b.Val().String()
}

// NumRect applies b to all four sides.
func (b Breadth) NumRect() NumRect {
	return NumRectAll(b)
}

// Mul scales the value, keeping the unit.
func (b Breadth) Mul(f float32) Breadth {
	b.Value *= f
	return b
}

// Div divides the value, keeping the unit.
func (b Breadth) Div(f float32) Breadth {
	b.Value /= f
	return b
}

func (b *Breadth) MulAssign(f float32) { b.Value *= f }
func (b *Breadth) DivAssign(f float32) { b.Value /= f }

// TryAdd adds two breadths of the same unit.
func (b Breadth) TryAdd(rhs Breadth) (Breadth, error) {
	if b.Kind != rhs.Kind {
		return b, ErrNonIdenticalVariants
	}
	b.Value += rhs.Value
	return b, nil
}

// TryAddAssign is TryAdd storing the result in b. b is unchanged on error.
func (b *Breadth) TryAddAssign(rhs Breadth) error {
	sum, err := b.TryAdd(rhs)
	if err != nil {
		return err
	}
	*b = sum
	return nil
}

// TrySub subtracts two breadths of the same unit.
func (b Breadth) TrySub(rhs Breadth) (Breadth, error) {
	if b.Kind != rhs.Kind {
		return b, ErrNonIdenticalVariants
	}
	b.Value -= rhs.Value
	return b, nil
}

// TrySubAssign is TrySub storing the result in b. b is unchanged on error.
func (b *Breadth) TrySubAssign(rhs Breadth) error {
	diff, err := b.TrySub(rhs)
	if err != nil {
		return err
	}
	*b = diff
	return nil
}

// Evaluate resolves b against size. Px values are returned unchanged.
func (b Breadth) Evaluate(size float32) float32 {
	if b.Kind == BreadthKindPercent {
		return size * b.Value / 100
	}
	return b.Value
}

// AddWithSize evaluates both sides against size and adds them, so units may differ.
func (b Breadth) AddWithSize(rhs Breadth, size float32) float32 {
	return b.Evaluate(size) + rhs.Evaluate(size)
}

// SubWithSize evaluates both sides against size and subtracts rhs.
func (b Breadth) SubWithSize(rhs Breadth, size float32) float32 {
	return b.Evaluate(size) - rhs.Evaluate(size)
}

// AddAssignWithSize stores AddWithSize in b as a Px value.
func (b *Breadth) AddAssignWithSize(rhs Breadth, size float32) {
	*b = BreadthPx(b.AddWithSize(rhs, size))
}

// SubAssignWithSize stores SubWithSize in b as a Px value.
func (b *Breadth) SubAssignWithSize(rhs Breadth, size float32) {
	*b = BreadthPx(b.SubWithSize(rhs, size))
}
