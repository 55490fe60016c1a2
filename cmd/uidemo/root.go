package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"ui-builder/internal/assets"
	"ui-builder/internal/config"
	"ui-builder/internal/console"
	"ui-builder/internal/demo"
	"ui-builder/internal/fontfetch"
	"ui-builder/internal/logger"
	"ui-builder/internal/render"
	"ui-builder/internal/stylesheet"
	"ui-builder/internal/ui"
)

type options struct {
	configPath string
	stylesheet string
	verbose    bool
}

// app is what a subcommand needs once flags and config are resolved.
type app struct {
	cfg    config.Config
	log    *log.Logger
	closer io.Closer
}

// execute runs the CLI with args and reports a failure once on stderr.
func execute(args []string, stderr io.Writer) error {
	opts := &options{}
	var a app

	root := &cobra.Command{
		Use:           "uidemo",
		Short:         "uidemo shows trees built with the fluent style builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = setup(opts)
			if err != nil {
				return err
			}
			cmd.SetContext(logger.WithLogger(cmd.Context(), a.log))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closer != nil {
				_ = a.closer.Close()
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to the YAML config")
	root.PersistentFlags().StringVarP(&opts.stylesheet, "stylesheet", "s", "", "CSS file applied to the tree (overrides the config)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "minimal",
		Short: "A red box centered on the screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := ui.NewTree()
			demo.Minimal(tree)
			return a.show(cmd.Context(), tree, nil)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "showcase",
		Short: "Panels, text, a scrolling list, absolute nodes and an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			font := a.cfg.Font
			if font == "" {
				font = demo.DefaultFont
			}
			tree := ui.NewTree()
			list := demo.Showcase(tree, font)
			return a.show(cmd.Context(), tree, list)
		},
	})

	root.AddCommand(a.fontsCommand())

	root.SetArgs(args)
	root.SetErr(stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	return nil
}

func setup(opts *options) (app, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return app{}, err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return app{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return app{}, err
	}
	if opts.stylesheet != "" {
		cfg.Stylesheet = opts.stylesheet
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return app{}, err
	}
	if opts.verbose {
		level = log.DebugLevel
	}
	if cfg.Log.File == "" {
		return app{cfg: cfg, log: logger.New(os.Stderr, level)}, nil
	}
	l, closer, err := logger.Open(cfg.Log.File, level)
	if err != nil {
		return app{}, err
	}
	return app{cfg: cfg, log: l, closer: closer}, nil
}

// applyStylesheet loads path and styles tree with it. Declarations that fail
// are logged and skipped.
func applyStylesheet(l *log.Logger, tree *ui.Tree, path string) error {
	sheet, err := stylesheet.Load(path)
	if err != nil {
		return err
	}
	if err := sheet.ApplyTree(tree); err != nil {
		l.Warn("stylesheet applied with errors", "path", path, "err", err)
	}
	l.Debug("stylesheet applied", "path", path, "rules", len(sheet.Rules))
	return nil
}

// show styles the tree from the configured stylesheet and runs the window until it is closed.
// Mouse wheel scrolls list when it is not nil; F3 toggles the FPS and memory overlay
// and the grave key opens the console.
func (a *app) show(ctx context.Context, tree *ui.Tree, list *demo.ScrollingList) error {
	l := logger.FromContext(ctx)
	if a.cfg.Stylesheet != "" {
		if err := applyStylesheet(l, tree, a.cfg.Stylesheet); err != nil {
			return err
		}
	}
	l.Info("starting", "nodes", tree.Len(), "width", a.cfg.Window.Width, "height", a.cfg.Window.Height)

	r := render.NewRenderer(assets.New(a.cfg.AssetDirs...), l)
	r.Overlay.ShowFPS = a.cfg.Debug.ShowFPS
	r.Overlay.ShowMemAlloc = a.cfg.Debug.ShowMemAlloc

	con := console.New(consoleCommands(l, tree, list, r), l)
	con.Print("type help for the list of commands")

	update := func() {
		con.Update()
		if rl.IsKeyPressed(rl.KeyF3) {
			r.Overlay.Toggle()
		}
		if list != nil {
			if dy := rl.GetMouseWheelMove(); dy != 0 {
				pos := list.Scroll(dy, demo.ScrollLine)
				l.Debug("scrolled", "position", pos)
			}
		}
		r.Layout(tree)
	}
	draw := func() {
		r.Draw(tree)
		con.Draw()
	}
	render.Run(a.cfg.Window, update, draw, r.Close)
	l.Info("window closed")
	return nil
}

// consoleCommands lets the console restyle the tree while the window is open.
func consoleCommands(l *log.Logger, tree *ui.Tree, list *demo.ScrollingList, r *render.Renderer) *console.Registry {
	reg := console.NewRegistry()
	reg.Register("set", "set <#id|.class> <property> <value>", nil, func(args []string) error {
		if len(args) < 3 {
			return fmt.Errorf("set: want selector, property and value")
		}
		src := fmt.Sprintf("%s { %s: %s }", args[0], args[1], strings.Join(args[2:], " "))
		sheet, err := stylesheet.Parse(strings.NewReader(src))
		if err != nil {
			return err
		}
		if len(sheet.Rules) == 0 {
			return fmt.Errorf("set: bad selector %q", args[0])
		}
		return sheet.ApplyTree(tree)
	})
	reg.Register("load", "load <file.css>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("load: want one path")
		}
		return applyStylesheet(l, tree, args[0])
	})
	reg.Register("overlay", "overlay", nil, func([]string) error {
		r.Overlay.Toggle()
		return nil
	})
	reg.Register("scroll", "scroll <lines>", nil, func(args []string) error {
		if list == nil {
			return fmt.Errorf("scroll: nothing to scroll")
		}
		if len(args) != 1 {
			return fmt.Errorf("scroll: want a line count")
		}
		n, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return fmt.Errorf("scroll: %w", err)
		}
		list.Scroll(float32(n), demo.ScrollLine)
		return nil
	})
	return reg
}

// fontsCommand downloads or installs fonts into the fonts directory of the first asset dir.
func (a *app) fontsCommand() *cobra.Command {
	fetcher := func() *fontfetch.Fetcher {
		dir := "assets"
		if len(a.cfg.AssetDirs) > 0 {
			dir = a.cfg.AssetDirs[0]
		}
		return fontfetch.New(filepath.Join(dir, "fonts"))
	}
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Fetch fonts used by the demos",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <family>",
		Short: "Download a family from the Google Fonts repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := fetcher().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).Info("font downloaded", "family", args[0], "path", path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "install <file>",
		Short: "Install a .ttf, .otf or a zip of fonts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := fetcher().Install(args[0])
			if err != nil {
				return err
			}
			l := logger.FromContext(cmd.Context())
			for _, p := range paths {
				l.Info("font installed", "path", p)
			}
			return nil
		},
	})
	return cmd
}
