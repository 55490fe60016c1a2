package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()

	require.Equal(t, DisplayFlex, s.Display)
	require.Equal(t, PositionRelative, s.PositionType)
	require.Equal(t, FlexRow, s.FlexDirection)
	require.Equal(t, NoWrap, s.FlexWrap)
	require.Equal(t, AlignItemsStretch, s.AlignItems)
	require.Equal(t, AlignSelfAuto, s.AlignSelf)
	require.Equal(t, AlignContentStretch, s.AlignContent)
	require.Equal(t, JustifyFlexStart, s.JustifyContent)
	require.Equal(t, RectAll(Undefined()), s.Position)
	require.Equal(t, RectAll(Px(0)), s.Margin)
	require.Equal(t, RectAll(Px(0)), s.Padding)
	require.Equal(t, RectAll(Px(0)), s.Border)
	require.Equal(t, float32(0), s.FlexGrow)
	require.Equal(t, float32(1), s.FlexShrink)
	require.Equal(t, Auto(), s.FlexBasis)
	require.Equal(t, SizeAuto(), s.Size)
	require.Equal(t, SizeAuto(), s.MinSize)
	require.Equal(t, SizeAuto(), s.MaxSize)
	require.Nil(t, s.AspectRatio)
	require.Equal(t, OverflowVisible, s.Overflow)
}

func TestStyleRefIsSelf(t *testing.T) {
	s := DefaultStyle()
	s.StyleRef().FlexGrow = 2
	require.Equal(t, float32(2), s.FlexGrow)
}

func TestEnumNamesRoundTrip(t *testing.T) {
	for _, name := range justifyNames {
		j, ok := ParseJustifyContent(name)
		require.True(t, ok, name)
		require.Equal(t, name, j.String())
	}
	for _, name := range alignItemsNames {
		a, ok := ParseAlignItems(name)
		require.True(t, ok, name)
		require.Equal(t, name, a.String())
	}
	for _, name := range alignSelfNames {
		a, ok := ParseAlignSelf(name)
		require.True(t, ok, name)
		require.Equal(t, name, a.String())
	}

	_, ok := ParseFlexDirection("diagonal")
	require.False(t, ok)
	require.Equal(t, "unknown", Overflow(9).String())
}

func TestEffectiveAlign(t *testing.T) {
	tests := []struct {
		name   string
		parent AlignItems
		self   AlignSelf
		want   AlignItems
	}{
		{"auto inherits", AlignItemsCenter, AlignSelfAuto, AlignItemsCenter},
		{"self overrides", AlignItemsCenter, AlignSelfFlexEnd, AlignItemsFlexEnd},
		{"stretch", AlignItemsFlexStart, AlignSelfStretch, AlignItemsStretch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, effectiveAlign(tt.parent, tt.self))
		})
	}
}
