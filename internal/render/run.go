// Package render draws a laid out ui.Tree with raylib.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ui-builder/internal/config"
)

// Run opens the window and drives the main loop. Each frame it calls update
// (input, scrolling, layout), then clears the screen and calls draw. unload,
// if not nil, runs after the loop while the window still exists.
// Fullscreen windows take the monitor size; otherwise the window is resizable.
func Run(w config.Window, update, draw, unload func()) {
	width, height := w.Width, w.Height
	if w.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	if unload != nil {
		unload()
	}
}
