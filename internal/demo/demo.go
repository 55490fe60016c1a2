// Package demo builds the example scenes shown by cmd/uidemo.
package demo

import (
	"fmt"

	sb "ui-builder/internal/stylebuilder"
	"ui-builder/internal/ui"
)

// DefaultFont is the font the showcase asks for; the renderer falls back to raylib's own when it is missing.
const DefaultFont = "fonts/FiraSans-Bold.ttf"

// LogoPath is the image shown by the showcase.
const LogoPath = "branding/logo.png"

// Minimal spawns a full-screen root that centers a 150x100 red node.
func Minimal(t *ui.Tree) *ui.Node {
	return t.Spawn(
		sb.Node().
			Width(ui.Percent(100)).
			Height(ui.Percent(100)).
			JustifyContentCenter().
			AlignItemsCenter().
			Build().WithID("root"),
	).WithChildren(func(p *ui.ChildBuilder) {
		p.Spawn(
			sb.Node().
				Width(ui.Px(150)).
				Height(ui.Px(100)).
				BackgroundColor(ui.Red).
				Build().WithID("box"),
		)
	})
}

// Showcase spawns the full feature tour: bordered side panel with a label,
// a scrolling list, absolute positioning, render order with alpha and an
// image. font is passed to every text node. The returned list scrolls the
// 30 list items.
func Showcase(t *ui.Tree, font string) *ScrollingList {
	text := func(value string, size float32) sb.Builder[ui.TextBundle, *ui.TextBundle] {
		return sb.Text(value, ui.TextStyle{Font: font, FontSize: size, Color: ui.White})
	}
	var list *ScrollingList

	t.Spawn(
		sb.Node().
			Width(ui.Percent(100)).
			Height(ui.Percent(100)).
			JustifyContentSpaceBetween().
			Build().WithID("root"),
	).WithChildren(func(p *ui.ChildBuilder) {
		// left vertical fill, the grey background shows through as the border
		p.Spawn(
			sb.Node().
				Width(ui.Px(200)).
				Height(ui.Percent(100)).
				Border(sb.BreadthPx(2)).
				BackgroundColor(ui.RGB(0.65, 0.65, 0.65)).
				Build().WithClass("sidebar"),
		).WithChildren(func(p *ui.ChildBuilder) {
			p.Spawn(
				sb.Node().
					Width(ui.Px(196)).
					Height(ui.Percent(100)).
					BackgroundColor(ui.RGB(0.15, 0.15, 0.15)).
					Build(),
			).WithChildren(func(p *ui.ChildBuilder) {
				label := text("Text Example", 30).Build()
				label.Style = sb.Style().Margin(ui.Px(5)).Build()
				p.Spawn(label)
			})
		})

		// right vertical fill
		p.Spawn(
			sb.Node().
				Column().
				JustifyContentCenter().
				AlignItemsCenter().
				Size(ui.NewSize(ui.Px(200), ui.Percent(100))).
				BackgroundColor(ui.RGB(0.15, 0.15, 0.15)).
				Build().WithClass("sidebar"),
		).WithChildren(func(p *ui.ChildBuilder) {
			title := text("Scrolling list", 25).Build().
				WithStyle(sb.Style().Size(ui.NewSize(ui.Undefined(), ui.Px(25))).Build())
			p.Spawn(title)

			p.Spawn(
				sb.Node().
					Column().
					Size(ui.NewSize(ui.Percent(100), ui.Percent(50))).
					HideOverflow().
					BackgroundColor(ui.RGB(0.10, 0.10, 0.10)).
					Build().WithID("list"),
			).WithChildren(func(p *ui.ChildBuilder) {
				panel := p.Spawn(
					sb.Node().
						Column().
						Grow(1).
						MaxSize(ui.SizeUndefined()).
						Build().WithID("list-panel"),
				)
				panel.WithChildren(func(p *ui.ChildBuilder) {
					for i := 0; i < 30; i++ {
						item := text(fmt.Sprintf("Item %d", i), 20).
							Shrink(0).
							Height(ui.Px(20)).
							Margin(ui.RectHorizontal(ui.Auto())).
							Build()
						item.Class = "list-item"
						p.Spawn(item)
					}
				})
				list = NewScrollingList(panel)
			})
		})

		p.Spawn(
			sb.Node().
				Size(ui.NewSize(ui.Px(200), ui.Px(200))).
				Absolute().
				Left(ui.Px(210)).
				Bottom(ui.Px(10)).
				Border(sb.NumRectAll(sb.BreadthPx(20))).
				BackgroundColor(ui.RGB(0.4, 0.4, 1)).
				Build().WithID("blue-box"),
		).WithChildren(func(p *ui.ChildBuilder) {
			p.Spawn(
				sb.Node().
					Size(ui.NewSize(ui.Percent(100), ui.Percent(100))).
					BackgroundColor(ui.RGB(0.8, 0.8, 1)).
					Build(),
			)
		})

		// render order: reddest in the back, whitest in the front
		p.Spawn(
			sb.Node().
				Width(ui.Percent(100)).
				Height(ui.Percent(100)).
				Absolute().
				Center().
				Build(),
		).WithChildren(func(p *ui.ChildBuilder) {
			square := sb.Node().Size(ui.NewSize(ui.Px(100), ui.Px(100)))
			p.Spawn(square.BackgroundColor(ui.RGB(1, 0, 0)).Build().WithID("stack")).
				WithChildren(func(p *ui.ChildBuilder) {
					layers := []ui.Color{
						ui.RGB(1, 0.3, 0.3),
						ui.RGB(1, 0.5, 0.5),
						ui.RGB(1, 0.7, 0.7),
						ui.RGBA(1, 0.9, 0.9, 0.4),
					}
					for i, c := range layers {
						offset := ui.Px(float32(20 * (i + 1)))
						p.Spawn(square.Absolute().Left(offset).Bottom(offset).BackgroundColor(c).Build())
					}
				})
		})

		// logo, centered along the top
		p.Spawn(
			sb.Node().
				Size(ui.NewSize(ui.Percent(100), ui.Percent(100))).
				Absolute().
				JustifyContentCenter().
				AlignItemsStart().
				Build(),
		).WithChildren(func(p *ui.ChildBuilder) {
			p.Spawn(sb.Image(LogoPath).Size(ui.NewSize(ui.Px(500), ui.Auto())).Build())
		})
	})
	return list
}
