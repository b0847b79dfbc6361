// Package app wires the viewer component to the terminal surface,
// configuration, input dispatch, and the file watcher.
package app

import (
	"fmt"
	"os"

	"github.com/dshills/lineview/internal/config"
	"github.com/dshills/lineview/internal/document"
	"github.com/dshills/lineview/internal/input"
	"github.com/dshills/lineview/internal/script"
	"github.com/dshills/lineview/internal/surface"
	"github.com/dshills/lineview/internal/view"
)

// Options configures the application. Values set here override the config
// file.
type Options struct {
	// Path is the file to view.
	Path string

	// ConfigPath overrides the default config file location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// LogFile receives log output. Empty disables logging, since stderr
	// would draw over the terminal surface.
	LogFile string

	// Follow forces document auto-reload on.
	Follow bool

	// StyleScript overrides the configured Lua styling script when
	// non-empty.
	StyleScript string
}

// Application owns the viewer and its collaborators for one session.
type Application struct {
	cfg    config.Config
	logger *Logger
	path   string

	doc  *document.Document
	view *view.View
	disp *input.Dispatcher

	styleScript *script.StyleScript
	logFile     *os.File
}

// New builds an application: configuration, logger, document, view, and
// dispatcher. Any failure here is fatal; there is no partially constructed
// viewer.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Follow {
		cfg.Follow = true
	}
	if opts.StyleScript != "" {
		cfg.StyleScript = opts.StyleScript
	}

	a := &Application{cfg: cfg, path: opts.Path, logger: NullLogger}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("app: opening log file: %w", err)
		}
		a.logFile = f
		a.logger = NewLogger(LoggerConfig{
			Level:  ParseLogLevel(cfg.LogLevel),
			Output: f,
			Prefix: "lineview",
		})
	}

	lines, err := document.ReadFile(opts.Path)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.doc = document.FromLines(lines)

	theme, err := cfg.BuildTheme()
	if err != nil {
		a.Close()
		return nil, err
	}

	vopts := view.Options{
		GutterWidth: cfg.GutterWidth,
		TabWidth:    cfg.TabWidth,
		Theme:       theme,
	}
	if cfg.StyleScript != "" {
		ss, err := script.Load(cfg.StyleScript, nil)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.styleScript = ss
		vopts.Attr = ss.Attr
	}

	a.view = view.New(a.doc, vopts)
	a.disp = input.NewDispatcher(a.view, input.Options{PageStep: cfg.PageStep})

	a.logger.Info("loaded %s (%d lines)", opts.Path, a.doc.Len())
	return a, nil
}

// View returns the viewer component, for embedding hosts.
func (a *Application) View() *view.View {
	return a.view
}

// Run attaches a terminal surface and drives the event loop until a quit
// key or an error. It returns ErrQuit on a clean exit request.
func (a *Application) Run() error {
	term, err := surface.NewTerminal()
	if err != nil {
		return fmt.Errorf("app: creating terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("app: initializing terminal: %w", err)
	}
	defer term.Fini()

	a.view.Attach(term)
	defer a.view.Detach()

	if a.cfg.Follow {
		w, err := document.WatchFile(a.path, term.PostReload)
		if err != nil {
			a.logger.Warn("follow disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	a.view.Render(0, term.RowCount())
	term.Show()

	return a.loop(term)
}

// loop processes terminal events until quit. Each iteration runs one event
// to completion; nothing here is concurrent.
func (a *Application) loop(term *surface.Terminal) error {
	for {
		ev := term.PollEvent()
		switch ev.Kind {
		case surface.EventKey:
			if ev.Key == "Esc" || ev.Key == "Ctrl-C" {
				return ErrQuit
			}
			err := a.disp.HandleEvent(input.Event{Kind: input.KindKey, Key: ev.Key, Origin: "terminal"})
			if err != nil {
				return err
			}

		case surface.EventText:
			if ev.Text == "q" {
				return ErrQuit
			}
			err := a.disp.HandleEvent(input.Event{Kind: input.KindText, Text: ev.Text, Origin: "terminal"})
			if err != nil {
				return err
			}

		case surface.EventResize:
			term.Sync()
			a.view.Refresh()

		case surface.EventReload:
			a.reload()
		}
		term.Show()
	}
}

// reload re-reads the viewed file after a change on disk. The document is
// replaced wholesale and the viewport reset; a failed read keeps the current
// content.
func (a *Application) reload() {
	lines, err := document.ReadFile(a.path)
	if err != nil {
		a.logger.Warn("reload failed: %v", err)
		return
	}
	a.doc.Load(lines)
	a.view.SetDocument(a.doc)
	a.view.Refresh()
	a.logger.Debug("reloaded %s (%d lines)", a.path, a.doc.Len())
}

// Close releases resources held outside Run.
func (a *Application) Close() {
	if a.styleScript != nil {
		a.styleScript.Close()
		a.styleScript = nil
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
