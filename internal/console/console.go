package console

import (
	"unicode/utf8"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	barHeight        = 36
	prompt           = "> "
	fontSize         = 20
	padding          = 8
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
)

var (
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	logColor  = rl.NewColor(24, 24, 24, 240)
)

// Console is a command bar at the bottom of the window, toggled with the grave key.
// Entered lines and their errors are echoed to the history and the logger.
type Console struct {
	reg     *Registry
	log     *log.Logger
	history History
	input   string
	open    bool
}

// New returns a closed console running lines through reg. It adds a help
// command listing the registered commands.
func New(reg *Registry, logger *log.Logger) *Console {
	c := &Console{reg: reg, log: logger, history: History{Max: 200}}
	reg.Register("help", "help", nil, func([]string) error {
		for _, usage := range reg.Help() {
			c.history.Add("  %s", usage)
		}
		return nil
	})
	return c
}

func (c *Console) IsOpen() bool { return c.open }

// Print adds a line to the history shown above the bar.
func (c *Console) Print(format string, args ...any) { c.history.Add(format, args...) }

// Submit runs one line through the registry.
func (c *Console) Submit(line string) {
	c.history.Add("%s%s", prompt, line)
	if err := c.reg.Execute(Parse(line)); err != nil {
		c.history.Add("%v", err)
		c.log.Warn("console command failed", "line", line, "err", err)
		return
	}
	c.log.Debug("console command", "line", line)
}

// Update reads keyboard input. Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyGrave) {
		c.open = !c.open
		// drop the grave character that opened or closed the bar
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !c.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		c.input += rl.GetClipboardText()
	} else {
		for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
			c.input += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.input) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.input)
		c.input = c.input[:len(c.input)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.input != "" {
		line := c.input
		c.input = ""
		c.Submit(line)
	}
}

// Draw draws the bar and the latest history lines above it when open.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	w := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - barHeight

	lines := c.history.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	logHeight := int32(len(lines)*lineHeight + padding)
	if len(lines) > 0 {
		rl.DrawRectangle(0, barY-logHeight, w, logHeight, logColor)
	}
	for i, line := range lines {
		c.text(line, barY-logHeight+int32(i*lineHeight+padding/2), rl.LightGray)
	}

	rl.DrawRectangle(0, barY, w, barHeight, barColor)
	rl.DrawRectangle(0, barY, w, 1, lineColor)
	c.text(prompt+c.input+"|", barY+padding, rl.White)
}

func (c *Console) text(s string, y int32, col rl.Color) {
	rl.DrawText(s, padding, y, fontSize, col)
}
