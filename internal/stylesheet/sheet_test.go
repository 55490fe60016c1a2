package stylesheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ui-builder/internal/ui"
)

const demoCSS = `
/* panels */
.panel { width: 200px; height: 100%; background: #333; }
.panel, .card { padding: 4px 8px; }
#menu { width: 50%; margin: auto; }
.panel .title { color: red; }
div { width: 1px; }
@media (min-width: 100px) { .panel { width: 1px; } }
.title { color: #fff; font-size: 30; }
`

func parseString(t *testing.T, s string) *Sheet {
	t.Helper()
	sheet, err := Parse(strings.NewReader(s))
	require.NoError(t, err)
	return sheet
}

func TestParseSelectors(t *testing.T) {
	sheet := parseString(t, demoCSS)

	var got []string
	for _, r := range sheet.Rules {
		var names []string
		for _, s := range r.Selectors {
			names = append(names, s.String())
		}
		got = append(got, strings.Join(names, ","))
	}
	require.Equal(t, []string{".panel", ".panel,.card", "#menu", ".title"}, got)
	require.Equal(t, []Declaration{
		{Property: "width", Value: "200px"},
		{Property: "height", Value: "100%"},
		{Property: "background", Value: "#333"},
	}, sheet.Rules[0].Declarations)
	require.Equal(t, "4px 8px", sheet.Rules[1].Declarations[0].Value)
}

func TestApplyOrdersClassBeforeID(t *testing.T) {
	sheet := parseString(t, demoCSS)
	tree := ui.NewTree()
	n := tree.Spawn(ui.DefaultNodeBundle().WithClass("panel").WithID("menu"))

	require.NoError(t, sheet.Apply(n))

	require.Equal(t, ui.Percent(50), n.Style.Size.Width)
	require.Equal(t, ui.Percent(100), n.Style.Size.Height)
	require.Equal(t, ui.RectAll(ui.Auto()), n.Style.Margin)
	require.Equal(t, ui.NewUIRect(ui.Px(8), ui.Px(8), ui.Px(4), ui.Px(4)), n.Style.Padding)
	require.Equal(t, ui.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, n.BackgroundColor)
}

func TestApplyText(t *testing.T) {
	sheet := parseString(t, demoCSS)
	b := ui.NewTextBundle("hi", ui.TextStyle{Color: ui.Black})
	b.Class = "title"
	tree := ui.NewTree()
	n := tree.Spawn(b)

	require.NoError(t, sheet.ApplyTree(tree))

	require.Equal(t, ui.White, n.Text.Style.Color)
	require.Equal(t, float32(30), n.Text.Style.FontSize)
}

func TestApplyCollectsErrors(t *testing.T) {
	sheet := parseString(t, `.x { width: wide; flex-grow: 2; colour: red; padding: auto; align-items: middle }`)
	n := ui.NewTree().Spawn(ui.DefaultNodeBundle().WithClass("x"))

	err := sheet.Apply(n)

	require.ErrorIs(t, err, ErrInvalidValue)
	require.ErrorIs(t, err, ErrUnknownProperty)
	require.Contains(t, err.Error(), "colour")
	require.Contains(t, err.Error(), "padding")
	require.Equal(t, float32(2), n.Style.FlexGrow)
	require.Equal(t, ui.Auto(), n.Style.Size.Width)
}

func TestApplyRejectsNonFiniteNumbers(t *testing.T) {
	for _, v := range []string{"nan", "NaN", "inf", "-infinity", "nanpx", "inf%"} {
		t.Run(v, func(t *testing.T) {
			sheet := parseString(t, ".a { width: "+v+"; font-size: "+v+"; flex-grow: "+v+" }")
			b := ui.DefaultTextBundle()
			b.Class = "a"
			n := ui.NewTree().Spawn(b)

			err := sheet.Apply(n)

			require.ErrorIs(t, err, ErrInvalidValue)
			require.Equal(t, ui.Auto(), n.Style.Size.Width)
			require.Equal(t, float32(ui.DefaultFontSize), n.Text.Style.FontSize)
			require.Zero(t, n.Style.FlexGrow)
		})
	}
}

func TestEnumsAndNumbers(t *testing.T) {
	sheet := parseString(t, `.x {
		flex-direction: column-reverse;
		flex-wrap: wrap;
		position: absolute;
		display: none;
		overflow: hidden;
		align-items: flex-end;
		align-self: center;
		align-content: space-between;
		justify-content: space-evenly;
		aspect-ratio: 16 / 9;
		flex-shrink: 0;
		flex-basis: 10%;
		border: 1px 2px 3px;
		left: -30px;
		min-width: 0;
		max-height: 40px;
	}`)
	n := ui.NewTree().Spawn(ui.DefaultNodeBundle().WithClass("a x b"))

	require.NoError(t, sheet.Apply(n))

	s := n.Style
	require.Equal(t, ui.FlexColumnReverse, s.FlexDirection)
	require.Equal(t, ui.Wrap, s.FlexWrap)
	require.Equal(t, ui.PositionAbsolute, s.PositionType)
	require.Equal(t, ui.DisplayNone, s.Display)
	require.Equal(t, ui.OverflowHidden, s.Overflow)
	require.Equal(t, ui.AlignItemsFlexEnd, s.AlignItems)
	require.Equal(t, ui.AlignSelfCenter, s.AlignSelf)
	require.Equal(t, ui.AlignContentSpaceBetween, s.AlignContent)
	require.Equal(t, ui.JustifySpaceEvenly, s.JustifyContent)
	require.NotNil(t, s.AspectRatio)
	require.InDelta(t, 16.0/9.0, *s.AspectRatio, 1e-5)
	require.Equal(t, float32(0), s.FlexShrink)
	require.Equal(t, ui.Percent(10), s.FlexBasis)
	require.Equal(t, ui.NewUIRect(ui.Px(2), ui.Px(2), ui.Px(1), ui.Px(3)), s.Border)
	require.Equal(t, ui.Px(-30), s.Position.Left)
	require.Equal(t, ui.Px(0), s.MinSize.Width)
	require.Equal(t, ui.Px(40), s.MaxSize.Height)
}

func TestUnmatchedNodeUntouched(t *testing.T) {
	sheet := parseString(t, demoCSS)
	n := ui.NewTree().Spawn(ui.DefaultNodeBundle())

	require.NoError(t, sheet.Apply(n))
	require.Equal(t, ui.DefaultStyle(), n.Style)
	require.Empty(t, sheet.Declarations(n))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.css")
	require.NoError(t, os.WriteFile(path, []byte(demoCSS), 0o644))

	sheet, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.css"))
	require.Error(t, err)
}

func TestParseRect(t *testing.T) {
	tests := []struct {
		in   string
		want [4]ui.Val // left right top bottom
	}{
		{"1px", [4]ui.Val{ui.Px(1), ui.Px(1), ui.Px(1), ui.Px(1)}},
		{"1px 2px", [4]ui.Val{ui.Px(2), ui.Px(2), ui.Px(1), ui.Px(1)}},
		{"1px 2px 3px", [4]ui.Val{ui.Px(2), ui.Px(2), ui.Px(1), ui.Px(3)}},
		{"1px 2px 3px 4px", [4]ui.Val{ui.Px(4), ui.Px(2), ui.Px(1), ui.Px(3)}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRect(tt.in, parseVal)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := parseRect("", parseVal)
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = parseRect("1 2 3 4 5", parseVal)
	require.ErrorIs(t, err, ErrInvalidValue)
}
