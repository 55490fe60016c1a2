package ui

import (
	"unicode/utf8"

	"github.com/chewxy/math32"
)

// LayoutOptions supplies measurements Layout cannot make on its own.
// Nil funcs fall back to rough estimates, which is what tests use.
type LayoutOptions struct {
	// MeasureText returns the drawn size of a text section.
	MeasureText func(t Text) (width, height float32)
	// ImageSize returns the intrinsic size of an image; 0, 0 if unknown.
	ImageSize func(img Image) (width, height float32)
}

// Layout writes Bounds for every node in t. Each root is placed on its own
// against viewport; roots do not push each other around.
//
// Placement is a single-line flexbox: direction (including reverse),
// justify-content, align-items/align-self, grow and shrink, min/max clamping,
// margin/border/padding insets, and absolute positioning against the parent's
// padding box. FlexWrap and AlignContent are kept on the style but lines never wrap.
func Layout(t *Tree, viewport Bounds, opts LayoutOptions) {
	l := layouter{opts: opts}
	screen := &Node{Style: DefaultStyle()}
	for _, r := range t.Roots() {
		if r.Style.Display == DisplayNone {
			hide(r)
			continue
		}
		if r.Style.PositionType == PositionAbsolute {
			l.placeAbsolute(screen, viewport, r)
		} else {
			l.placeFlow(screen, viewport, []*Node{r})
		}
	}
}

type layouter struct {
	opts LayoutOptions
}

func hide(n *Node) {
	n.Bounds = Bounds{}
	for _, c := range n.Children {
		hide(c)
	}
}

// layoutChildren places n's children inside n's already computed bounds.
func (l layouter) layoutChildren(n *Node) {
	padding := n.PaddingBox()
	content := n.ContentBox()

	var flow []*Node
	for _, c := range n.Children {
		switch {
		case c.Style.Display == DisplayNone:
			hide(c)
		case c.Style.PositionType == PositionAbsolute:
			l.placeAbsolute(n, padding, c)
		default:
			flow = append(flow, c)
		}
	}
	l.placeFlow(n, content, flow)
}

// PaddingBox is the node bounds inset by its border. Absolute children are placed against it.
func (n *Node) PaddingBox() Bounds {
	bl, br, bt, bb := n.Style.Border.insets(n.Bounds.Width)
	return inset(n.Bounds, bl, br, bt, bb)
}

// ContentBox is the padding box inset by padding. Flow children, text and images go here.
func (n *Node) ContentBox() Bounds {
	pb := n.PaddingBox()
	pl, pr, pt, pbm := n.Style.Padding.insets(n.Bounds.Width)
	return inset(pb, pl, pr, pt, pbm)
}

func inset(b Bounds, left, right, top, bottom float32) Bounds {
	return Bounds{
		X:      b.X + left,
		Y:      b.Y + top,
		Width:  math32.Max(0, b.Width-left-right),
		Height: math32.Max(0, b.Height-top-bottom),
	}
}

// item is one flow child being placed.
type item struct {
	n                  *Node
	main, cross        float32
	mainMin, mainMax   float32
	marginMainStart    float32
	marginMainEnd      float32
	marginCrossStart   float32
	marginCrossEnd     float32
	grow, shrink, base float32
}

func (it item) outerMain() float32 {
	return it.marginMainStart + it.main + it.marginMainEnd
}

// placeFlow lays out children along parent's main axis inside content.
func (l layouter) placeFlow(parent *Node, content Bounds, children []*Node) {
	if len(children) == 0 {
		return
	}
	ps := parent.Style
	row := ps.FlexDirection.isRow()
	mainSize, crossSize := content.Width, content.Height
	if !row {
		mainSize, crossSize = crossSize, mainSize
	}

	items := make([]item, 0, len(children))
	for _, c := range children {
		items = append(items, l.measureItem(ps, c, row, content, crossSize))
	}

	used := float32(0)
	for _, it := range items {
		used += it.outerMain()
	}
	free := mainSize - used
	if free > 0 {
		grow(items, free)
	} else if free < 0 {
		shrink(items, -free)
	}
	used = 0
	for _, it := range items {
		used += it.outerMain()
	}
	free = mainSize - used

	justify := ps.JustifyContent
	if ps.FlexDirection.isReverse() {
		items = reversed(items)
		justify = mirror(justify)
	}
	pos, gap := distribute(justify, free, len(items))

	for _, it := range items {
		align := effectiveAlign(ps.AlignItems, it.n.Style.AlignSelf)
		crossOff := it.marginCrossStart
		switch align {
		case AlignItemsFlexEnd:
			crossOff = crossSize - it.cross - it.marginCrossEnd
		case AlignItemsCenter:
			crossOff = it.marginCrossStart + (crossSize-it.cross-it.marginCrossStart-it.marginCrossEnd)/2
		}
		mainOff := pos + it.marginMainStart
		var b Bounds
		if row {
			b = Bounds{X: content.X + mainOff, Y: content.Y + crossOff, Width: it.main, Height: it.cross}
		} else {
			b = Bounds{X: content.X + crossOff, Y: content.Y + mainOff, Width: it.cross, Height: it.main}
		}
		it.n.Bounds = relativeOffset(b, it.n.Style.Position, content)
		l.layoutChildren(it.n)
		pos += it.outerMain() + gap
	}
}

func (l layouter) measureItem(ps Style, c *Node, row bool, content Bounds, crossSize float32) item {
	s := c.Style
	ml, mr, mt, mb := s.Margin.insets(content.Width)
	iw, ih := l.intrinsic(c)

	width, wok := s.Size.Width.Resolve(content.Width)
	height, hok := s.Size.Height.Resolve(content.Height)
	width, height, wok, hok = l.applyAspect(c, width, height, wok, hok)

	it := item{n: c, grow: s.FlexGrow, shrink: s.FlexShrink}
	var mainVal, crossVal float32
	var mainOK, crossOK bool
	var mainIntrinsic, crossIntrinsic float32
	var mainMinV, mainMaxV, crossMinV, crossMaxV Val
	var mainParent, crossParent float32
	if row {
		mainVal, mainOK, crossVal, crossOK = width, wok, height, hok
		mainIntrinsic, crossIntrinsic = iw, ih
		it.marginMainStart, it.marginMainEnd, it.marginCrossStart, it.marginCrossEnd = ml, mr, mt, mb
		mainMinV, mainMaxV, crossMinV, crossMaxV = s.MinSize.Width, s.MaxSize.Width, s.MinSize.Height, s.MaxSize.Height
		mainParent, crossParent = content.Width, content.Height
	} else {
		mainVal, mainOK, crossVal, crossOK = height, hok, width, wok
		mainIntrinsic, crossIntrinsic = ih, iw
		it.marginMainStart, it.marginMainEnd, it.marginCrossStart, it.marginCrossEnd = mt, mb, ml, mr
		mainMinV, mainMaxV, crossMinV, crossMaxV = s.MinSize.Height, s.MaxSize.Height, s.MinSize.Width, s.MaxSize.Width
		mainParent, crossParent = content.Height, content.Width
	}

	switch {
	case mainOK:
		it.main = mainVal
	default:
		if basis, ok := s.FlexBasis.Resolve(mainParent); ok {
			it.main = basis
		} else {
			it.main = mainIntrinsic
		}
	}
	it.mainMin = mainMinV.resolveOr(mainParent, 0)
	it.mainMax = mainMaxV.resolveOr(mainParent, math32.Inf(1))
	it.main = clamp(it.main, it.mainMin, it.mainMax)
	it.base = it.main

	align := effectiveAlign(ps.AlignItems, s.AlignSelf)
	switch {
	case crossOK:
		it.cross = crossVal
	case align == AlignItemsStretch:
		it.cross = crossSize - it.marginCrossStart - it.marginCrossEnd
	default:
		it.cross = crossIntrinsic
	}
	it.cross = clamp(it.cross, crossMinV.resolveOr(crossParent, 0), crossMaxV.resolveOr(crossParent, math32.Inf(1)))
	return it
}

// applyAspect derives a missing axis from the aspect ratio or the image's intrinsic proportions.
func (l layouter) applyAspect(n *Node, w, h float32, wok, hok bool) (float32, float32, bool, bool) {
	if wok == hok {
		return w, h, wok, hok
	}
	ratio := float32(0)
	if n.Style.AspectRatio != nil {
		ratio = *n.Style.AspectRatio
	} else if n.Kind == KindImage {
		if iw, ih := l.imageSize(n.Image); iw > 0 && ih > 0 {
			ratio = iw / ih
		}
	}
	if ratio <= 0 {
		return w, h, wok, hok
	}
	if wok {
		return w, w / ratio, true, true
	}
	return h * ratio, h, true, true
}

// intrinsic returns the content-based border-box size of n.
func (l layouter) intrinsic(n *Node) (w, h float32) {
	switch n.Kind {
	case KindText:
		w, h = l.measureText(n.Text)
	case KindImage:
		w, h = l.imageSize(n.Image)
	default:
		row := n.Style.FlexDirection.isRow()
		for _, c := range n.Children {
			if c.Style.Display == DisplayNone || c.Style.PositionType == PositionAbsolute {
				continue
			}
			cw, ch := l.intrinsic(c)
			cw = c.Style.Size.Width.resolveOr(0, cw)
			ch = c.Style.Size.Height.resolveOr(0, ch)
			ml, mr, mt, mb := c.Style.Margin.insets(0)
			cw += ml + mr
			ch += mt + mb
			if row {
				w += cw
				h = math32.Max(h, ch)
			} else {
				h += ch
				w = math32.Max(w, cw)
			}
		}
	}
	bl, br, bt, bb := n.Style.Border.insets(0)
	pl, pr, pt, pb := n.Style.Padding.insets(0)
	return w + bl + br + pl + pr, h + bt + bb + pt + pb
}

func (l layouter) measureText(t Text) (float32, float32) {
	if t.Value == "" {
		return 0, 0
	}
	if l.opts.MeasureText != nil {
		return l.opts.MeasureText(t)
	}
	size := t.Style.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	return float32(utf8.RuneCountInString(t.Value)) * size / 2, size
}

func (l layouter) imageSize(img Image) (float32, float32) {
	if img.Width > 0 && img.Height > 0 {
		return img.Width, img.Height
	}
	if l.opts.ImageSize != nil {
		return l.opts.ImageSize(img)
	}
	return 0, 0
}

// placeAbsolute positions an absolute child against the containing padding box.
func (l layouter) placeAbsolute(parent *Node, box Bounds, c *Node) {
	s := c.Style
	ml, mr, mt, mb := s.Margin.insets(box.Width)
	left, hasLeft := s.Position.Left.Resolve(box.Width)
	right, hasRight := s.Position.Right.Resolve(box.Width)
	top, hasTop := s.Position.Top.Resolve(box.Height)
	bottom, hasBottom := s.Position.Bottom.Resolve(box.Height)

	iw, ih := l.intrinsic(c)
	w, wok := s.Size.Width.Resolve(box.Width)
	h, hok := s.Size.Height.Resolve(box.Height)
	w, h, wok, hok = l.applyAspect(c, w, h, wok, hok)
	if !wok {
		if hasLeft && hasRight {
			w = box.Width - left - right - ml - mr
		} else {
			w = iw
		}
	}
	if !hok {
		if hasTop && hasBottom {
			h = box.Height - top - bottom - mt - mb
		} else {
			h = ih
		}
	}
	w = clamp(w, s.MinSize.Width.resolveOr(box.Width, 0), s.MaxSize.Width.resolveOr(box.Width, math32.Inf(1)))
	h = clamp(h, s.MinSize.Height.resolveOr(box.Height, 0), s.MaxSize.Height.resolveOr(box.Height, math32.Inf(1)))

	x := box.X + ml
	switch {
	case hasLeft:
		x = box.X + left + ml
	case hasRight:
		x = box.X + box.Width - right - mr - w
	}
	y := box.Y + mt
	switch {
	case hasTop:
		y = box.Y + top + mt
	case hasBottom:
		y = box.Y + box.Height - bottom - mb - h
	}
	c.Bounds = Bounds{X: x, Y: y, Width: math32.Max(0, w), Height: math32.Max(0, h)}
	l.layoutChildren(c)
}

// relativeOffset shifts b by the numeric sides of pos. Left wins over right, top over bottom.
func relativeOffset(b Bounds, pos UIRect, content Bounds) Bounds {
	if v, ok := pos.Left.Resolve(content.Width); ok {
		b.X += v
	} else if v, ok := pos.Right.Resolve(content.Width); ok {
		b.X -= v
	}
	if v, ok := pos.Top.Resolve(content.Height); ok {
		b.Y += v
	} else if v, ok := pos.Bottom.Resolve(content.Height); ok {
		b.Y -= v
	}
	return b
}

func grow(items []item, free float32) {
	total := float32(0)
	for _, it := range items {
		total += it.grow
	}
	if total <= 0 {
		return
	}
	for i := range items {
		if items[i].grow > 0 {
			items[i].main = clamp(items[i].main+free*items[i].grow/total, items[i].mainMin, items[i].mainMax)
		}
	}
}

func shrink(items []item, overflow float32) {
	total := float32(0)
	for _, it := range items {
		total += it.shrink * it.base
	}
	if total <= 0 {
		return
	}
	for i := range items {
		weight := items[i].shrink * items[i].base
		if weight > 0 {
			items[i].main = clamp(items[i].main-overflow*weight/total, items[i].mainMin, items[i].mainMax)
		}
	}
}

// distribute returns the main-axis start offset and the gap between items.
// Negative free space disables the space-* distributions.
func distribute(j JustifyContent, free float32, n int) (start, gap float32) {
	switch j {
	case JustifyFlexEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	}
	if free <= 0 {
		return 0, 0
	}
	switch j {
	case JustifySpaceBetween:
		if n > 1 {
			return 0, free / float32(n-1)
		}
	case JustifySpaceAround:
		gap = free / float32(n)
		return gap / 2, gap
	case JustifySpaceEvenly:
		gap = free / float32(n+1)
		return gap, gap
	}
	return 0, 0
}

func mirror(j JustifyContent) JustifyContent {
	switch j {
	case JustifyFlexStart:
		return JustifyFlexEnd
	case JustifyFlexEnd:
		return JustifyFlexStart
	}
	return j
}

func reversed(items []item) []item {
	out := make([]item, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	return math32.Min(math32.Max(v, lo), hi)
}
