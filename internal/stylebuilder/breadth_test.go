package stylebuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ui-builder/internal/ui"
)

func TestBreadthVal(t *testing.T) {
	require.Equal(t, ui.Px(10), BreadthPx(10).Val())
	require.Equal(t, ui.Percent(10), BreadthPercent(10).Val())
	require.Equal(t, BreadthPx(0), Breadth{})
}

func TestBreadthFromVal(t *testing.T) {
	tests := []struct {
		in      ui.Val
		want    Breadth
		wantErr bool
	}{
		{ui.Px(22), BreadthPx(22), false},
		{ui.Percent(22), BreadthPercent(22), false},
		{ui.Auto(), Breadth{}, true},
		{ui.Undefined(), Breadth{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, err := BreadthFromVal(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNonEvaluatable)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBreadthScale(t *testing.T) {
	require.Equal(t, BreadthPx(30), BreadthPx(10).Mul(3))
	require.Equal(t, BreadthPercent(25), BreadthPercent(50).Div(2))

	b := BreadthPercent(4)
	b.MulAssign(5)
	require.Equal(t, BreadthPercent(20), b)
	b.DivAssign(4)
	require.Equal(t, BreadthPercent(5), b)
}

func TestBreadthTryAdd(t *testing.T) {
	px, err := BreadthPx(20).TryAdd(BreadthPx(22))
	require.NoError(t, err)
	require.Equal(t, BreadthPx(42), px)

	pct, err := BreadthPercent(50).TryAdd(BreadthPercent(50))
	require.NoError(t, err)
	require.Equal(t, BreadthPercent(100), pct)

	b := BreadthPx(5)
	require.NoError(t, b.TryAddAssign(BreadthPx(3)))
	require.Equal(t, BreadthPx(8), b)
}

func TestBreadthTrySub(t *testing.T) {
	px, err := BreadthPx(72).TrySub(BreadthPx(30))
	require.NoError(t, err)
	require.Equal(t, BreadthPx(42), px)

	pct, err := BreadthPercent(100).TrySub(BreadthPercent(50))
	require.NoError(t, err)
	require.Equal(t, BreadthPercent(50), pct)

	b := BreadthPercent(10)
	require.NoError(t, b.TrySubAssign(BreadthPercent(4)))
	require.Equal(t, BreadthPercent(6), b)
}

func TestBreadthMixedVariants(t *testing.T) {
	_, err := BreadthPx(50).TryAdd(BreadthPercent(50))
	require.ErrorIs(t, err, ErrNonIdenticalVariants)
	_, err = BreadthPercent(50).TryAdd(BreadthPx(50))
	require.ErrorIs(t, err, ErrNonIdenticalVariants)
	_, err = BreadthPx(50).TrySub(BreadthPercent(50))
	require.ErrorIs(t, err, ErrNonIdenticalVariants)
	_, err = BreadthPercent(50).TrySub(BreadthPx(50))
	require.ErrorIs(t, err, ErrNonIdenticalVariants)

	b := BreadthPx(7)
	require.Error(t, b.TryAddAssign(BreadthPercent(1)))
	require.Equal(t, BreadthPx(7), b)
}

func TestBreadthErrorMessages(t *testing.T) {
	require.EqualError(t, ErrNonIdenticalVariants, "the variants of the Breadths don't match")
	require.EqualError(t, ErrNonEvaluatable, "cannot convert from non-evaluatable variants (non-numeric)")
}

func TestBreadthEvaluate(t *testing.T) {
	const size = 250
	require.Equal(t, float32(size*0.8), BreadthPercent(80).Evaluate(size))
	require.Equal(t, float32(10), BreadthPx(10).Evaluate(size))
}

func TestBreadthWithSize(t *testing.T) {
	const size = 250
	require.Equal(t, float32(42), BreadthPx(21).AddWithSize(BreadthPx(21), size))
	require.InDelta(t, 0.5*size, BreadthPercent(20).AddWithSize(BreadthPercent(30), size), 1e-4)
	require.InDelta(t, 20+0.3*size, BreadthPx(20).AddWithSize(BreadthPercent(30), size), 1e-4)

	require.Equal(t, float32(42), BreadthPx(60).SubWithSize(BreadthPx(18), size))
	require.InDelta(t, 0.5*size, BreadthPercent(80).SubWithSize(BreadthPercent(30), size), 1e-4)
	require.InDelta(t, 0.5*size-30, BreadthPercent(50).SubWithSize(BreadthPx(30), size), 1e-4)
}

func TestBreadthAssignWithSize(t *testing.T) {
	b := BreadthPercent(50)
	b.AddAssignWithSize(BreadthPx(5), 100)
	require.Equal(t, BreadthPx(55), b)

	b = BreadthPercent(50)
	b.SubAssignWithSize(BreadthPx(5), 100)
	require.Equal(t, BreadthPx(45), b)
}

func TestNumRect(t *testing.T) {
	v := BreadthPx(4)
	zero := Breadth{}
	tests := []struct {
		name string
		got  NumRect
		want NumRect
	}{
		{"all", NumRectAll(v), NewNumRect(v, v, v, v)},
		{"horizontal", NumRectHorizontal(v), NewNumRect(v, v, zero, zero)},
		{"vertical", NumRectVertical(v), NewNumRect(zero, zero, v, v)},
		{"left", NumRectLeft(v), NewNumRect(v, zero, zero, zero)},
		{"right", NumRectRight(v), NewNumRect(zero, v, zero, zero)},
		{"top", NumRectTop(v), NewNumRect(zero, zero, v, zero)},
		{"bottom", NumRectBottom(v), NewNumRect(zero, zero, zero, v)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}

	r := NewNumRect(BreadthPx(1), BreadthPercent(2), BreadthPx(3), BreadthPercent(4)).UIRect()
	require.Equal(t, ui.NewUIRect(ui.Px(1), ui.Percent(2), ui.Px(3), ui.Percent(4)), r)
	require.Equal(t, NumRectAll(v), v.NumRect())
}
