// Package stylesheet loads primitive CSS files and applies them to ui nodes.
// Only `.class` and `#id` selectors are understood; at-rules, combinators and
// pseudo classes are skipped. Later rules override earlier ones.
package stylesheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"ui-builder/internal/ui"
)

// SelectorKind tells how a Selector matches a node.
type SelectorKind uint8

const (
	ByClass SelectorKind = iota
	ByID
)

// Selector is a single `.name` or `#name`.
type Selector struct {
	Kind SelectorKind
	Name string
}

func (s Selector) String() string {
	if s.Kind == ByID {
		return "#" + s.Name
	}
	return "." + s.Name
}

// Matches reports whether n carries the class or id.
func (s Selector) Matches(n *ui.Node) bool {
	if s.Kind == ByID {
		return n.ID != "" && n.ID == s.Name
	}
	for _, c := range strings.Fields(n.Class) {
		if c == s.Name {
			return true
		}
	}
	return false
}

// Declaration is one `property: value` pair with the value kept as written.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a selector list and its declarations.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Sheet is a list of rules in document order.
type Sheet struct {
	Rules []Rule
}

// Load reads and parses the CSS file at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stylesheet: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse reads a stylesheet. Rulesets whose selectors are not all plain
// class or id selectors are dropped.
func Parse(r io.Reader) (*Sheet, error) {
	p := css.NewParser(parse.NewInput(r), false)
	sheet := &Sheet{}
	var (
		cur     *Rule
		atDepth int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("stylesheet: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.BeginRulesetGrammar:
			if atDepth > 0 {
				continue
			}
			if sels, ok := selectors(p.Values()); ok {
				cur = &Rule{Selectors: sels}
			}
		case css.DeclarationGrammar:
			if cur != nil {
				cur.Declarations = append(cur.Declarations, Declaration{
					Property: string(data),
					Value:    joinTokens(p.Values()),
				})
			}
		case css.EndRulesetGrammar:
			if cur != nil {
				sheet.Rules = append(sheet.Rules, *cur)
				cur = nil
			}
		}
	}
}

func selectors(tokens []css.Token) ([]Selector, bool) {
	var out []Selector
	var group []css.Token
	flush := func() bool {
		sel, ok := selector(group)
		if ok {
			out = append(out, sel)
		}
		group = group[:0]
		return ok
	}
	for _, t := range tokens {
		if t.TokenType == css.CommaToken {
			if !flush() {
				return nil, false
			}
			continue
		}
		if t.TokenType == css.WhitespaceToken && len(group) == 0 {
			continue
		}
		group = append(group, t)
	}
	if !flush() {
		return nil, false
	}
	return out, len(out) > 0
}

func selector(group []css.Token) (Selector, bool) {
	for len(group) > 0 && group[len(group)-1].TokenType == css.WhitespaceToken {
		group = group[:len(group)-1]
	}
	switch {
	case len(group) == 1 && group[0].TokenType == css.HashToken && len(group[0].Data) > 1:
		return Selector{Kind: ByID, Name: string(group[0].Data[1:])}, true
	case len(group) == 2 && group[0].TokenType == css.DelimToken && string(group[0].Data) == "." &&
		group[1].TokenType == css.IdentToken:
		return Selector{Kind: ByClass, Name: string(group[1].Data)}, true
	}
	return Selector{}, false
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// Declarations returns the declarations that apply to n: class rules first,
// then id rules, each in document order. Later entries win.
func (s *Sheet) Declarations(n *ui.Node) []Declaration {
	var byClass, byID []Declaration
	for _, r := range s.Rules {
		for _, sel := range r.Selectors {
			if !sel.Matches(n) {
				continue
			}
			if sel.Kind == ByID {
				byID = append(byID, r.Declarations...)
			} else {
				byClass = append(byClass, r.Declarations...)
			}
			break
		}
	}
	return append(byClass, byID...)
}

// Apply writes every matching declaration into n. Declarations that fail are
// reported together; the others are still applied.
func (s *Sheet) Apply(n *ui.Node) error {
	var errs []error
	for _, d := range s.Declarations(n) {
		if err := applyDeclaration(n, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ApplyTree applies the sheet to every node of t, hidden subtrees included.
func (s *Sheet) ApplyTree(t *ui.Tree) error {
	var errs []error
	t.Walk(func(n *ui.Node) bool {
		if err := s.Apply(n); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return errors.Join(errs...)
}
