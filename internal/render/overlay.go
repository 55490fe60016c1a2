package render

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
	// refresh FPS/Mem text every N frames to limit allocations.
	overlayInterval = 30
)

// Overlay draws the FPS and heap counters in the top-right corner. Both are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
}

// Toggle flips both counters together.
func (o *Overlay) Toggle() {
	show := !(o.ShowFPS || o.ShowMemAlloc)
	o.ShowFPS, o.ShowMemAlloc = show, show
}

// Draw renders the enabled counters. Call it last so it sits on top of the ui.
func (o *Overlay) Draw() {
	o.frameCount++
	refresh := o.frameCount%overlayInterval == 0
	if (o.ShowFPS && o.fpsText == "") || (o.ShowMemAlloc && o.memText == "") {
		refresh = true
	}

	y := float32(overlayPadding)
	if o.ShowFPS {
		if refresh {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		o.drawLine(o.fpsText, y)
		y += overlayLineHeight
	}
	if o.ShowMemAlloc {
		if refresh {
			runtime.ReadMemStats(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		o.drawLine(o.memText, y)
	}
}

func (o *Overlay) drawLine(text string, y float32) {
	if text == "" {
		return
	}
	font := rl.GetFontDefault()
	const size = float32(overlayFontSize)
	spacing := size / 10
	w := rl.MeasureTextEx(font, text, size, spacing).X
	pos := rl.NewVector2(float32(rl.GetScreenWidth())-w-overlayPadding, y)
	rl.DrawTextEx(font, text, pos, size, spacing, rl.Green)
}
