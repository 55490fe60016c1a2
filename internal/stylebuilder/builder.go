// Package stylebuilder provides chainable setters over ui bundles and styles,
// so a node can be written as
//
//	stylebuilder.Node().Width(ui.Percent(100)).Height(ui.Px(100)).Center().Build()
//
// instead of filling a ui.Style field by field. Every setter writes exactly one
// field (Center writes two) and returns the builder; Build hands the finished
// bundle to ui.Tree.Spawn.
package stylebuilder

import (
	"github.com/jinzhu/copier"

	"ui-builder/internal/ui"
)

// Builder wraps a styled value T. P is *T and is inferred; it exists so the
// builder can hold T by value and still reach its Style through the pointer methods.
//
// Builders are values: every setter works on its own copy, so an intermediate
// builder stored in a variable is not changed by later calls made on the result.
type Builder[T any, P interface {
	*T
	ui.Styled
}] struct {
	value T
}

// From starts a builder over any styled value, e.g. a bundle built elsewhere.
func From[T any, P interface {
	*T
	ui.Styled
}](v T) Builder[T, P] {
	b := Builder[T, P]{value: v}
	b.detach()
	return b
}

// Node starts a builder over a default ui.NodeBundle.
func Node() Builder[ui.NodeBundle, *ui.NodeBundle] {
	return From(ui.DefaultNodeBundle())
}

// Style starts a builder over ui.DefaultStyle, for values passed to e.g. TextBundle.WithStyle.
func Style() Builder[ui.Style, *ui.Style] {
	return From(ui.DefaultStyle())
}

// Text starts a builder over a text bundle showing value.
func Text(value string, style ui.TextStyle) Builder[ui.TextBundle, *ui.TextBundle] {
	return From(ui.NewTextBundle(value, style))
}

// Image starts a builder over an image bundle for the asset at path.
func Image(path string) Builder[ui.ImageBundle, *ui.ImageBundle] {
	return From(ui.NewImageBundle(path))
}

// Ref points a builder at a Style owned by someone else.
type Ref struct {
	Target *ui.Style
}

// StyleRef returns the target style.
func (r *Ref) StyleRef() *ui.Style {
	return r.Target
}

// Edit returns a builder whose setters write straight into s, e.g. the Style
// of an already spawned node. Build returns the Ref and can be ignored.
func Edit(s *ui.Style) Builder[Ref, *Ref] {
	return From(Ref{Target: s})
}

// Build ends the chain and returns the configured value. The result shares
// no memory with b or with other builders derived from it.
func (b Builder[T, P]) Build() T {
	b.detach()
	return b.value
}

// detach gives the style its own copy of the pointer fields, which a plain
// struct copy would share.
func (b *Builder[T, P]) detach() {
	s := P(&b.value).StyleRef()
	if s.AspectRatio != nil {
		ratio := *s.AspectRatio
		s.AspectRatio = &ratio
	}
}

// Clone returns a builder over a deep copy of the current value. Cloning an
// Edit builder detaches it: the clone edits a private copy of the target.
func (b Builder[T, P]) Clone() Builder[T, P] {
	var out T
	if err := copier.CopyWithOption(&out, &b.value, copier.Option{DeepCopy: true}); err != nil {
		return b
	}
	return Builder[T, P]{value: out}
}

// Update applies fn to the style. Every setter in this package is a single assignment through Update.
func (b Builder[T, P]) Update(fn func(s *ui.Style)) Builder[T, P] {
	fn(P(&b.value).StyleRef())
	return b
}

// BackgroundColor sets the background of bundles that have one (ui.Painted).
// A bare Style carries no color, so the call leaves it unchanged.
func (b Builder[T, P]) BackgroundColor(c ui.Color) Builder[T, P] {
	if p, ok := any(P(&b.value)).(ui.Painted); ok {
		*p.BackgroundRef() = c
	}
	return b
}
