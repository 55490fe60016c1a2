package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	c, err := Hex("#ff8000")
	require.NoError(t, err)
	require.Equal(t, Color{R: 255, G: 128, B: 0, A: 255}, c)

	c, err = Hex("#fff")
	require.NoError(t, err)
	require.Equal(t, White, c)

	_, err = Hex("orange")
	require.Error(t, err)
}

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor(" Red ")
	require.NoError(t, err)
	require.Equal(t, Red, c)

	c, err = ParseColor("transparent")
	require.NoError(t, err)
	require.Equal(t, None, c)
}

func TestRGBA(t *testing.T) {
	require.Equal(t, Red, RGB(1, 0, 0))
	require.Equal(t, Color{R: 255, G: 255, B: 255, A: 255}, RGB(2, 2, 2))

	c := RGBA(1, 0.9, 0.9, 0.4)
	require.Equal(t, uint8(255), c.R)
	require.Equal(t, uint8(102), c.A)

	require.Equal(t, uint8(0), WithAlpha(White, -1).A)
}

func TestHSL(t *testing.T) {
	require.Equal(t, Red, HSL(0, 1, 0.5))
	require.Equal(t, White, HSL(0, 0, 1))
}
