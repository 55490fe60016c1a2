// Package console is the in-window command line of the demos. Lines typed
// into it are split into words and run through a Registry.
package console

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	ErrEmpty          = errors.New("console: missing command")
	ErrUnknownCommand = errors.New("console: unknown command")
)

// Command is a named command with its own flags. Run receives the
// positional arguments left after the flags are parsed.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds commands by name.
type Registry struct {
	cmds map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a command. fs may be nil for commands without flags.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Help returns one usage line per command.
func (r *Registry) Help() []string {
	var out []string
	for _, name := range r.Names() {
		out = append(out, r.cmds[name].Usage)
	}
	return out
}

// Parse splits line into words. Text in double quotes stays one word.
func Parse(line string) []string {
	var (
		args    []string
		cur     strings.Builder
		quoted  bool
		pending bool
	)
	for _, c := range line {
		switch {
		case c == '"':
			quoted = !quoted
			pending = true
		case !quoted && (c == ' ' || c == '\t'):
			if pending {
				args = append(args, cur.String())
				cur.Reset()
				pending = false
			}
		default:
			cur.WriteRune(c)
			pending = true
		}
	}
	if pending {
		args = append(args, cur.String())
	}
	return args
}

// Execute runs the command in args[0] with args[1:] as its flags and arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrEmpty
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("console: %s: %w", cmd.Name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// History keeps the last Max lines written to it.
type History struct {
	Max   int
	lines []string
}

func (h *History) Add(format string, args ...any) {
	h.lines = append(h.lines, fmt.Sprintf(format, args...))
	if h.Max > 0 && len(h.lines) > h.Max {
		h.lines = h.lines[len(h.lines)-h.Max:]
	}
}

func (h *History) Lines() []string { return h.lines }
