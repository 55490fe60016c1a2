package stylesheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"ui-builder/internal/stylebuilder"
	"ui-builder/internal/ui"
)

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrInvalidValue    = errors.New("invalid value")
)

type setter func(n *ui.Node, b style, v string) error

type style = stylebuilder.Builder[stylebuilder.Ref, *stylebuilder.Ref]

var properties = map[string]setter{
	"width":       valSetter(style.Width),
	"height":      valSetter(style.Height),
	"min-width":   valSetter(style.MinWidth),
	"min-height":  valSetter(style.MinHeight),
	"max-width":   valSetter(style.MaxWidth),
	"max-height":  valSetter(style.MaxHeight),
	"left":        valSetter(style.Left),
	"right":       valSetter(style.Right),
	"top":         valSetter(style.Top),
	"bottom":      valSetter(style.Bottom),
	"flex-basis":  valSetter(style.Basis),
	"flex-grow":   floatSetter(style.Grow),
	"flex-shrink": floatSetter(style.Shrink),
	"margin": func(_ *ui.Node, b style, v string) error {
		r, err := parseRect(v, parseVal)
		if err != nil {
			return err
		}
		b.Margin(sides(r))
		return nil
	},
	"padding": func(_ *ui.Node, b style, v string) error {
		r, err := parseNumRect(v)
		if err != nil {
			return err
		}
		b.Padding(r)
		return nil
	},
	"border": func(_ *ui.Node, b style, v string) error {
		r, err := parseNumRect(v)
		if err != nil {
			return err
		}
		b.Border(r)
		return nil
	},
	"flex-direction":  enumSetter(ui.ParseFlexDirection, style.Update, func(s *ui.Style, e ui.FlexDirection) { s.FlexDirection = e }),
	"flex-wrap":       enumSetter(ui.ParseFlexWrap, style.Update, func(s *ui.Style, e ui.FlexWrap) { s.FlexWrap = e }),
	"position":        enumSetter(ui.ParsePositionType, style.Update, func(s *ui.Style, e ui.PositionType) { s.PositionType = e }),
	"display":         enumSetter(ui.ParseDisplay, style.Update, func(s *ui.Style, e ui.Display) { s.Display = e }),
	"overflow":        enumSetter(ui.ParseOverflow, style.Update, func(s *ui.Style, e ui.Overflow) { s.Overflow = e }),
	"align-items":     enumSetter(ui.ParseAlignItems, style.Update, func(s *ui.Style, e ui.AlignItems) { s.AlignItems = e }),
	"align-self":      enumSetter(ui.ParseAlignSelf, style.Update, func(s *ui.Style, e ui.AlignSelf) { s.AlignSelf = e }),
	"align-content":   enumSetter(ui.ParseAlignContent, style.Update, func(s *ui.Style, e ui.AlignContent) { s.AlignContent = e }),
	"justify-content": enumSetter(ui.ParseJustifyContent, style.Update, func(s *ui.Style, e ui.JustifyContent) { s.JustifyContent = e }),
	"aspect-ratio": func(_ *ui.Node, b style, v string) error {
		r, err := parseRatio(v)
		if err != nil {
			return err
		}
		b.AspectRatio(r)
		return nil
	},
	"background": func(n *ui.Node, _ style, v string) error {
		c, err := ui.ParseColor(v)
		if err != nil {
			return err
		}
		n.BackgroundColor = c
		return nil
	},
	"color": func(n *ui.Node, _ style, v string) error {
		c, err := ui.ParseColor(v)
		if err != nil {
			return err
		}
		n.Text.Style.Color = c
		return nil
	},
	"font-size": func(n *ui.Node, _ style, v string) error {
		size, err := parseVal(v)
		if err != nil {
			return err
		}
		if size.Kind != ui.ValPx || size.Value <= 0 {
			return fmt.Errorf("%q: %w", v, ErrInvalidValue)
		}
		n.Text.Style.FontSize = size.Value
		return nil
	},
}

func init() {
	properties["background-color"] = properties["background"]
}

func applyDeclaration(n *ui.Node, d Declaration) error {
	set, ok := properties[d.Property]
	if !ok {
		return fmt.Errorf("stylesheet: %s: %w", d.Property, ErrUnknownProperty)
	}
	if err := set(n, stylebuilder.Edit(&n.Style), d.Value); err != nil {
		return fmt.Errorf("stylesheet: %s: %w", d.Property, err)
	}
	return nil
}

func valSetter(fn func(style, ui.Val) style) setter {
	return func(_ *ui.Node, b style, v string) error {
		val, err := parseVal(v)
		if err != nil {
			return err
		}
		fn(b, val)
		return nil
	}
}

func floatSetter(fn func(style, float32) style) setter {
	return func(_ *ui.Node, b style, v string) error {
		f, err := parseFloat(v)
		if err != nil {
			return err
		}
		fn(b, f)
		return nil
	}
}

func enumSetter[E any](
	parseEnum func(string) (E, bool),
	update func(style, func(*ui.Style)) style,
	assign func(*ui.Style, E),
) setter {
	return func(_ *ui.Node, b style, v string) error {
		e, ok := parseEnum(strings.ToLower(v))
		if !ok {
			return fmt.Errorf("%q: %w", v, ErrInvalidValue)
		}
		update(b, func(s *ui.Style) { assign(s, e) })
		return nil
	}
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidValue)
	}
	v := float32(f)
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidValue)
	}
	return v, nil
}

// parseVal accepts `auto`, `Npx`, `N%` and a bare number meaning pixels.
func parseVal(s string) (ui.Val, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "auto":
		return ui.Auto(), nil
	case strings.HasSuffix(s, "%"):
		f, err := parseFloat(strings.TrimSuffix(s, "%"))
		if err != nil {
			return ui.Val{}, err
		}
		return ui.Percent(f), nil
	default:
		f, err := parseFloat(strings.TrimSuffix(s, "px"))
		if err != nil {
			return ui.Val{}, err
		}
		return ui.Px(f), nil
	}
}

func parseBreadth(s string) (stylebuilder.Breadth, error) {
	v, err := parseVal(s)
	if err != nil {
		return stylebuilder.Breadth{}, err
	}
	return stylebuilder.BreadthFromVal(v)
}

// parseRect expands the CSS one to four value shorthand (top, right, bottom, left).
func parseRect[V any](s string, parseOne func(string) (V, error)) (out [4]V, err error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return out, fmt.Errorf("%q: %w", s, ErrInvalidValue)
	}
	vals := make([]V, len(fields))
	for i, f := range fields {
		if vals[i], err = parseOne(f); err != nil {
			return out, err
		}
	}
	var top, right, bottom, left V
	switch len(vals) {
	case 1:
		top, right, bottom, left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		top, right, bottom, left = vals[0], vals[1], vals[0], vals[1]
	case 3:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[1]
	default:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[3]
	}
	return [4]V{left, right, top, bottom}, nil
}

// sides holds left, right, top, bottom as returned by parseRect.
type sides [4]ui.Val

func (s sides) UIRect() ui.UIRect { return ui.NewUIRect(s[0], s[1], s[2], s[3]) }

func parseNumRect(s string) (stylebuilder.NumRect, error) {
	r, err := parseRect(s, parseBreadth)
	if err != nil {
		return stylebuilder.NumRect{}, err
	}
	return stylebuilder.NewNumRect(r[0], r[1], r[2], r[3]), nil
}

// parseRatio accepts `W/H` or a single number.
func parseRatio(s string) (float32, error) {
	w, h, found := strings.Cut(s, "/")
	num, err := parseFloat(w)
	if err != nil {
		return 0, err
	}
	if !found {
		return num, nil
	}
	den, err := parseFloat(h)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidValue)
	}
	return num / den, nil
}
