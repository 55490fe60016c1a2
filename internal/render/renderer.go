package render

import (
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"ui-builder/internal/assets"
	"ui-builder/internal/ui"
)

// Renderer lays out and draws a tree. Fonts and textures are loaded on first
// use and cached by path; call Close before the window closes to free them.
// A Renderer must only be used on the goroutine that owns the window.
type Renderer struct {
	assets          *assets.Resolver
	log             *log.Logger
	fonts           map[string]rl.Font
	textures        map[string]rl.Texture2D
	missingFonts    map[string]bool
	missingTextures map[string]bool
	Overlay         Overlay
}

// NewRenderer returns a renderer that looks assets up through res.
func NewRenderer(res *assets.Resolver, logger *log.Logger) *Renderer {
	return &Renderer{
		assets:          res,
		log:             logger,
		fonts:           make(map[string]rl.Font),
		textures:        make(map[string]rl.Texture2D),
		missingFonts:    make(map[string]bool),
		missingTextures: make(map[string]bool),
	}
}

// Layout places every node of t inside the current screen.
func (r *Renderer) Layout(t *ui.Tree) {
	screen := ui.Bounds{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
	ui.Layout(t, screen, ui.LayoutOptions{
		MeasureText: r.measureText,
		ImageSize:   r.imageSize,
	})
}

// Draw paints t in tree order, so later siblings cover earlier ones.
// Nodes with hidden overflow clip their descendants.
func (r *Renderer) Draw(t *ui.Tree) {
	for _, root := range t.Roots() {
		r.drawNode(root, nil)
	}
	r.Overlay.Draw()
}

func (r *Renderer) drawNode(n *ui.Node, clip *ui.Bounds) {
	if n.Style.Display == ui.DisplayNone {
		return
	}

	// Image backgrounds tint the texture instead of filling the node.
	if n.BackgroundColor.A > 0 && n.Kind != ui.KindImage {
		rl.DrawRectangleRec(rect(n.Bounds), n.BackgroundColor)
	}
	switch n.Kind {
	case ui.KindText:
		r.drawText(n)
	case ui.KindImage:
		r.drawImage(n)
	}

	if len(n.Children) == 0 {
		return
	}
	if n.Style.Overflow == ui.OverflowHidden {
		inner := n.PaddingBox()
		if clip != nil {
			inner = clip.Intersect(inner)
		}
		beginClip(inner)
		for _, c := range n.Children {
			r.drawNode(c, &inner)
		}
		rl.EndScissorMode()
		if clip != nil {
			beginClip(*clip)
		}
		return
	}
	for _, c := range n.Children {
		r.drawNode(c, clip)
	}
}

func (r *Renderer) drawText(n *ui.Node) {
	font := r.font(n.Text.Style.Font)
	size := n.Text.Style.FontSize
	box := n.ContentBox()
	rl.DrawTextEx(font, n.Text.Value, rl.NewVector2(box.X, box.Y), size, size/10, n.Text.Style.Color)
}

func (r *Renderer) drawImage(n *ui.Node) {
	tex, ok := r.texture(n.Image.Path)
	box := n.ContentBox()
	if !ok {
		rl.DrawRectangleLinesEx(rect(box), 1, rl.Magenta)
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, src, rect(box), rl.Vector2{}, 0, n.BackgroundColor)
}

func (r *Renderer) measureText(t ui.Text) (float32, float32) {
	font := r.font(t.Style.Font)
	v := rl.MeasureTextEx(font, t.Value, t.Style.FontSize, t.Style.FontSize/10)
	return v.X, v.Y
}

func (r *Renderer) imageSize(img ui.Image) (float32, float32) {
	if img.Width > 0 && img.Height > 0 {
		return img.Width, img.Height
	}
	tex, ok := r.texture(img.Path)
	if !ok {
		return 0, 0
	}
	return float32(tex.Width), float32(tex.Height)
}

func (r *Renderer) font(name string) rl.Font {
	if name == "" || r.missingFonts[name] {
		return rl.GetFontDefault()
	}
	if f, ok := r.fonts[name]; ok {
		return f
	}
	path, err := r.assets.Font(name)
	if err != nil {
		r.log.Warn("font not found, using default", "font", name, "err", err)
		r.missingFonts[name] = true
		return rl.GetFontDefault()
	}
	f := rl.LoadFont(path)
	if !rl.IsFontValid(f) {
		r.log.Warn("font failed to load, using default", "path", path)
		r.missingFonts[name] = true
		return rl.GetFontDefault()
	}
	r.log.Debug("font loaded", "font", name, "path", path)
	r.fonts[name] = f
	return f
}

func (r *Renderer) texture(name string) (rl.Texture2D, bool) {
	if name == "" || r.missingTextures[name] {
		return rl.Texture2D{}, false
	}
	if tex, ok := r.textures[name]; ok {
		return tex, true
	}
	path, err := r.assets.Resolve(name)
	if err != nil {
		r.log.Warn("image not found", "image", name, "err", err)
		r.missingTextures[name] = true
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	if !rl.IsTextureValid(tex) {
		r.log.Warn("image failed to load", "path", path)
		r.missingTextures[name] = true
		return rl.Texture2D{}, false
	}
	r.log.Debug("texture loaded", "image", name, "path", path, "width", tex.Width, "height", tex.Height)
	r.textures[name] = tex
	return tex, true
}

// Close frees every loaded font and texture.
func (r *Renderer) Close() {
	for name, f := range r.fonts {
		rl.UnloadFont(f)
		delete(r.fonts, name)
	}
	for name, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, name)
	}
}

func rect(b ui.Bounds) rl.Rectangle {
	return rl.NewRectangle(b.X, b.Y, b.Width, b.Height)
}

func beginClip(b ui.Bounds) {
	rl.BeginScissorMode(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height))
}
