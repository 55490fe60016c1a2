package ui

// Kind is what a node draws besides its background.
type Kind uint8

const (
	KindPanel Kind = iota // background only
	KindText              // background plus text
	KindImage             // background plus image
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "panel"
	}
}

// Node is a spawned UI element: its bundle data, its children and the bounds Layout last computed.
type Node struct {
	Kind  Kind
	Class string // e.g. "menu" for .menu
	ID    string // e.g. "main" for #main

	Style           Style
	BackgroundColor Color
	Text            Text
	Image           Image

	Children []*Node
	Parent   *Node
	Bounds   Bounds

	tree *Tree
}

// TextStyle describes how text is drawn. An empty Font uses the renderer's default font.
type TextStyle struct {
	Font     string
	FontSize float32
	Color    Color
}

// Text is the content of a text node.
type Text struct {
	Value string
	Style TextStyle
}

// Image references an image asset. Width and Height are the intrinsic size
// in pixels when known (0 = unknown; the renderer fills them on load).
type Image struct {
	Path   string
	Width  float32
	Height float32
}

// Styled is implemented by anything holding a Style that can be edited in place.
type Styled interface {
	StyleRef() *Style
}

// Painted is implemented by bundles that carry a background color.
type Painted interface {
	BackgroundRef() *Color
}

// Bundle is a value that can be spawned into a Tree.
type Bundle interface {
	IntoNode() *Node
}

// NodeBundle is a plain rectangular node.
type NodeBundle struct {
	Style           Style
	BackgroundColor Color
	Class           string
	ID              string
}

// DefaultNodeBundle returns a node bundle with the default style and a transparent background.
func DefaultNodeBundle() NodeBundle {
	return NodeBundle{Style: DefaultStyle(), BackgroundColor: None}
}

func (b *NodeBundle) StyleRef() *Style      { return &b.Style }
func (b *NodeBundle) BackgroundRef() *Color { return &b.BackgroundColor }

// IntoNode returns a new panel node holding a copy of the bundle.
func (b NodeBundle) IntoNode() *Node {
	return &Node{
		Kind:            KindPanel,
		Class:           b.Class,
		ID:              b.ID,
		Style:           b.Style,
		BackgroundColor: b.BackgroundColor,
	}
}

// WithClass returns b with its stylesheet class set.
func (b NodeBundle) WithClass(class string) NodeBundle {
	b.Class = class
	return b
}

// WithID returns b with its stylesheet id set.
func (b NodeBundle) WithID(id string) NodeBundle {
	b.ID = id
	return b
}

// TextBundle is a node that draws a single section of text.
type TextBundle struct {
	Style           Style
	Text            Text
	BackgroundColor Color
	Class           string
	ID              string
}

// Default text size when a TextStyle leaves FontSize at 0.
const DefaultFontSize = 20

// DefaultTextBundle returns an empty text bundle with white text.
func DefaultTextBundle() TextBundle {
	return TextBundle{
		Style:           DefaultStyle(),
		Text:            Text{Style: TextStyle{FontSize: DefaultFontSize, Color: White}},
		BackgroundColor: None,
	}
}

// NewTextBundle returns a text bundle showing value with the given text style.
func NewTextBundle(value string, style TextStyle) TextBundle {
	b := DefaultTextBundle()
	if style.FontSize <= 0 {
		style.FontSize = DefaultFontSize
	}
	b.Text = Text{Value: value, Style: style}
	return b
}

// WithStyle returns b with its layout style replaced.
func (b TextBundle) WithStyle(s Style) TextBundle {
	b.Style = s
	return b
}

func (b *TextBundle) StyleRef() *Style      { return &b.Style }
func (b *TextBundle) BackgroundRef() *Color { return &b.BackgroundColor }

// IntoNode returns a new text node holding a copy of the bundle.
func (b TextBundle) IntoNode() *Node {
	return &Node{
		Kind:            KindText,
		Class:           b.Class,
		ID:              b.ID,
		Style:           b.Style,
		BackgroundColor: b.BackgroundColor,
		Text:            b.Text,
	}
}

// ImageBundle is a node that draws an image. BackgroundColor tints the image.
type ImageBundle struct {
	Style           Style
	Image           Image
	BackgroundColor Color
	Class           string
	ID              string
}

// DefaultImageBundle returns an image bundle with no image and a white (untinted) background.
func DefaultImageBundle() ImageBundle {
	return ImageBundle{Style: DefaultStyle(), BackgroundColor: White}
}

// NewImageBundle returns an image bundle for the asset at path.
func NewImageBundle(path string) ImageBundle {
	b := DefaultImageBundle()
	b.Image.Path = path
	return b
}

func (b *ImageBundle) StyleRef() *Style      { return &b.Style }
func (b *ImageBundle) BackgroundRef() *Color { return &b.BackgroundColor }

// IntoNode returns a new image node holding a copy of the bundle.
func (b ImageBundle) IntoNode() *Node {
	return &Node{
		Kind:            KindImage,
		Class:           b.Class,
		ID:              b.ID,
		Style:           b.Style,
		BackgroundColor: b.BackgroundColor,
		Image:           b.Image,
	}
}
