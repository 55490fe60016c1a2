package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var screen = Bounds{Width: 800, Height: 600}

func panel(mut func(s *Style)) NodeBundle {
	b := DefaultNodeBundle()
	mut(&b.Style)
	return b
}

func fixed(w, h float32) func(s *Style) {
	return func(s *Style) {
		s.Size = NewSize(Px(w), Px(h))
	}
}

func requireBounds(t *testing.T, want, got Bounds) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutCentersChild(t *testing.T) {
	tree := NewTree()
	var child *Node
	root := tree.Spawn(panel(func(s *Style) {
		s.Size = NewSize(Percent(100), Percent(100))
		s.JustifyContent = JustifyCenter
		s.AlignItems = AlignItemsCenter
	})).WithChildren(func(p *ChildBuilder) {
		child = p.Spawn(panel(fixed(150, 100)))
	})

	Layout(tree, screen, LayoutOptions{})

	requireBounds(t, screen, root.Bounds)
	requireBounds(t, Bounds{X: 325, Y: 250, Width: 150, Height: 100}, child.Bounds)
}

func TestLayoutJustify(t *testing.T) {
	tests := []struct {
		justify JustifyContent
		xs      []float32
	}{
		{JustifyFlexStart, []float32{0, 100}},
		{JustifyFlexEnd, []float32{200, 300}},
		{JustifyCenter, []float32{100, 200}},
		{JustifySpaceBetween, []float32{0, 300}},
		{JustifySpaceAround, []float32{50, 250}},
		{JustifySpaceEvenly, []float32{200.0 / 3, 100 + 400.0/3}},
	}
	for _, tt := range tests {
		t.Run(tt.justify.String(), func(t *testing.T) {
			tree := NewTree()
			var kids []*Node
			tree.Spawn(panel(func(s *Style) {
				s.Size = NewSize(Px(400), Px(100))
				s.JustifyContent = tt.justify
			})).WithChildren(func(p *ChildBuilder) {
				kids = append(kids, p.Spawn(panel(fixed(100, 50))), p.Spawn(panel(fixed(100, 50))))
			})

			Layout(tree, screen, LayoutOptions{})

			for i, k := range kids {
				require.InDelta(t, tt.xs[i], k.Bounds.X, 0.01, "child %d", i)
			}
		})
	}
}

func TestLayoutColumnReverse(t *testing.T) {
	tree := NewTree()
	var a, b *Node
	tree.Spawn(panel(func(s *Style) {
		s.Size = NewSize(Px(100), Px(300))
		s.FlexDirection = FlexColumnReverse
	})).WithChildren(func(p *ChildBuilder) {
		a = p.Spawn(panel(fixed(100, 50)))
		b = p.Spawn(panel(fixed(100, 50)))
	})

	Layout(tree, screen, LayoutOptions{})

	require.Equal(t, float32(250), a.Bounds.Y)
	require.Equal(t, float32(200), b.Bounds.Y)
}

func TestLayoutGrowAndStretch(t *testing.T) {
	tree := NewTree()
	var fixedKid, grower *Node
	tree.Spawn(panel(func(s *Style) {
		s.Size = NewSize(Px(300), Px(80))
	})).WithChildren(func(p *ChildBuilder) {
		fixedKid = p.Spawn(panel(func(s *Style) { s.Size.Width = Px(100) }))
		grower = p.Spawn(panel(func(s *Style) { s.FlexGrow = 1 }))
	})

	Layout(tree, screen, LayoutOptions{})

	requireBounds(t, Bounds{X: 0, Y: 0, Width: 100, Height: 80}, fixedKid.Bounds)
	requireBounds(t, Bounds{X: 100, Y: 0, Width: 200, Height: 80}, grower.Bounds)
}

func TestLayoutShrinkRespectsMin(t *testing.T) {
	tree := NewTree()
	var a, b *Node
	tree.Spawn(panel(fixed(100, 10))).WithChildren(func(p *ChildBuilder) {
		a = p.Spawn(panel(func(s *Style) {
			s.Size.Width = Px(100)
			s.MinSize.Width = Px(80)
		}))
		b = p.Spawn(panel(func(s *Style) { s.Size.Width = Px(100) }))
	})

	Layout(tree, screen, LayoutOptions{})

	require.Equal(t, float32(80), a.Bounds.Width)
	require.Equal(t, float32(50), b.Bounds.Width)
}

func TestLayoutInsets(t *testing.T) {
	tree := NewTree()
	var child *Node
	tree.Spawn(panel(func(s *Style) {
		s.Size = NewSize(Px(200), Px(200))
		s.Border = RectAll(Px(2))
		s.Padding = RectAll(Px(8))
	})).WithChildren(func(p *ChildBuilder) {
		child = p.Spawn(panel(func(s *Style) {
			s.Size.Height = Px(20)
			s.Size.Width = Percent(50)
			s.Margin = RectLeft(Px(5))
		}))
	})

	Layout(tree, screen, LayoutOptions{})

	requireBounds(t, Bounds{X: 15, Y: 10, Width: 90, Height: 20}, child.Bounds)
}

func TestLayoutAbsolute(t *testing.T) {
	tree := NewTree()
	var box, inner *Node
	tree.Spawn(panel(func(s *Style) {
		s.Size = NewSize(Percent(100), Percent(100))
	})).WithChildren(func(p *ChildBuilder) {
		box = p.Spawn(panel(func(s *Style) {
			s.Size = NewSize(Px(200), Px(200))
			s.PositionType = PositionAbsolute
			s.Position.Left = Px(210)
			s.Position.Bottom = Px(10)
			s.Border = RectAll(Px(20))
		}))
		box.WithChildren(func(p *ChildBuilder) {
			inner = p.Spawn(panel(func(s *Style) {
				s.Size = NewSize(Percent(100), Percent(100))
			}))
		})
	})

	Layout(tree, screen, LayoutOptions{})

	requireBounds(t, Bounds{X: 210, Y: 390, Width: 200, Height: 200}, box.Bounds)
	requireBounds(t, Bounds{X: 230, Y: 410, Width: 160, Height: 160}, inner.Bounds)
}

func TestLayoutRelativeOffset(t *testing.T) {
	tree := NewTree()
	var child *Node
	tree.Spawn(panel(fixed(400, 400))).WithChildren(func(p *ChildBuilder) {
		child = p.Spawn(panel(func(s *Style) {
			s.Size = NewSize(Px(10), Px(10))
			s.Position.Top = Px(-30)
			s.Position.Left = Px(5)
		}))
	})

	Layout(tree, screen, LayoutOptions{})

	requireBounds(t, Bounds{X: 5, Y: -30, Width: 10, Height: 10}, child.Bounds)
}

func TestLayoutDisplayNoneHidesSubtree(t *testing.T) {
	tree := NewTree()
	var hidden, grandchild, sibling *Node
	tree.Spawn(panel(fixed(400, 100))).WithChildren(func(p *ChildBuilder) {
		hidden = p.Spawn(panel(func(s *Style) {
			s.Size = NewSize(Px(100), Px(100))
			s.Display = DisplayNone
		}))
		hidden.WithChildren(func(p *ChildBuilder) {
			grandchild = p.Spawn(panel(fixed(10, 10)))
		})
		sibling = p.Spawn(panel(fixed(50, 50)))
	})

	Layout(tree, screen, LayoutOptions{})

	require.Zero(t, hidden.Bounds)
	require.Zero(t, grandchild.Bounds)
	require.Equal(t, float32(0), sibling.Bounds.X)
}

func TestLayoutTextAndImageIntrinsic(t *testing.T) {
	tree := NewTree()
	var label, logo *Node
	tree.Spawn(panel(func(s *Style) {
		s.Size = NewSize(Px(800), Px(600))
		s.AlignItems = AlignItemsFlexStart
	})).WithChildren(func(p *ChildBuilder) {
		label = p.Spawn(NewTextBundle("Item 1", TextStyle{FontSize: 20}))
		img := NewImageBundle("logo.png")
		img.Style.Size = NewSize(Px(500), Auto())
		logo = p.Spawn(img)
	})

	opts := LayoutOptions{
		MeasureText: func(t Text) (float32, float32) { return 60, t.Style.FontSize },
		ImageSize:   func(Image) (float32, float32) { return 1000, 250 },
	}
	Layout(tree, screen, opts)

	requireBounds(t, Bounds{X: 0, Y: 0, Width: 60, Height: 20}, label.Bounds)
	requireBounds(t, Bounds{X: 60, Y: 0, Width: 500, Height: 125}, logo.Bounds)
}

func TestLayoutRootsAreIndependent(t *testing.T) {
	tree := NewTree()
	a := tree.Spawn(panel(fixed(100, 100)))
	b := tree.Spawn(panel(fixed(100, 100)))

	Layout(tree, screen, LayoutOptions{})

	require.Equal(t, a.Bounds, b.Bounds)
}
