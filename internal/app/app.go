// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/core/clipboard"
	"github.com/bethropolis/tidepad/internal/dialog"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/font"
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/menu"
	"github.com/bethropolis/tidepad/internal/modehandler"
	"github.com/bethropolis/tidepad/internal/plugin"
	"github.com/bethropolis/tidepad/internal/statusbar"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Options overrides the collaborators NewApp would otherwise build from
// the configuration. Zero fields use the defaults.
type Options struct {
	Screen     tcell.Screen
	Clipboard  clipboard.Provider
	SavePicker dialog.SavePicker
	Notifier   dialog.Notifier
}

// App is the editor window: it wires the menus and shortcuts to their
// handlers and owns the main loop. All editor state is touched only from
// the goroutine running Run.
type App struct {
	cfg *config.Config

	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	commands      *commands.Registry
	menuBar       *menu.Bar
	dialogs       *dialog.Manager
	savePicker    dialog.SavePicker
	notifier      dialog.Notifier
	themeManager  *theme.Manager
	fontState     *font.State
	editorAPI     plugin.EditorAPI

	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance with an empty
// document.
func NewApp(cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager := theme.NewManager(cfg.Theme.File)

	var tuiManager *tui.TUI
	var err error
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, themeManager.Current())
	} else {
		tuiManager, err = tui.New(themeManager.Current())
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewProvider(cfg.Editor.SystemClipboard)
	}

	eventManager := event.NewManager()
	editor := core.NewEditor(buffer.NewSliceBuffer(), core.Options{
		MaxHistory: cfg.Editor.MaxHistory,
		ScrollOff:  cfg.Editor.ScrollOff,
		TabWidth:   cfg.Editor.TabWidth,
		Clipboard:  clip,
	})
	editor.SetEventManager(eventManager)

	dialogs := dialog.NewManager()
	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusbar.New(statusbar.ConfigFromTheme(themeManager.Current())),
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		commands:      commands.NewRegistry(),
		menuBar:       menu.NewBar(menu.Default()),
		dialogs:       dialogs,
		savePicker:    opts.SavePicker,
		notifier:      opts.Notifier,
		themeManager:  themeManager,
		fontState:     font.NewState(cfg.Font.Family, cfg.Font.Size),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}
	a.pickDialogs(cfg.Editor.NativeDialogs)

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      a.statusBar,
		MenuBar:        a.menuBar,
		Dialogs:        dialogs,
		Commands:       a.commands,
	})
	a.editorAPI = newEditorAPI(a)

	eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModifiedForStatus)
	eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSavedForStatus)
	eventManager.Subscribe(event.TypeFontChanged, a.handleFontChangedForStatus)

	registerAppCommands(a)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		logger.Warnf("App: %v", err)
	}
	logger.DebugTagf("app", "Commands: %v", a.commands.Names())

	a.statusBar.SetFontInfo(a.fontState.Describe())
	return a, nil
}

// pickDialogs chooses native or in-terminal save picker and notifier for
// whatever Options left unset.
func (a *App) pickDialogs(native bool) {
	if native && !dialog.NativeAvailable() {
		logger.Warnf("App: no display for native dialogs, using terminal dialogs")
		native = false
	}
	if a.savePicker == nil {
		prompt := dialog.NewPromptPicker(a.dialogs)
		if native {
			a.savePicker = dialog.NewNativePicker(prompt)
		} else {
			a.savePicker = prompt
		}
	}
	if a.notifier == nil {
		if native {
			a.notifier = dialog.NewNativeNotifier(dialog.NewTerminalNotifier(a.dialogs))
		} else {
			a.notifier = dialog.NewTerminalNotifier(a.dialogs)
		}
	}
}

// Run draws the window and processes events until Quit is called or ctx
// is done.
func (a *App) Run(ctx context.Context) error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	events := make(chan tcell.Event)
	go a.pollEvents(events)

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s - F10 Menu | Ctrl+S Save | Ctrl+Q Quit", config.AppName)
	a.drawEditor()

	for {
		select {
		case <-ctx.Done():
			a.Quit()
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.GetBuffer().IsModified() {
				logger.Infof("App: exiting with unsaved changes")
			}
			logger.Infof("Exiting application.")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.HandleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or the
// app quits.
func (a *App) pollEvents(events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-a.quit:
			return
		}
	}
}

// HandleEvent processes one screen event and reports whether a redraw is
// needed.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

// Quit ends Run. Unsaved changes are discarded without asking.
func (a *App) Quit() {
	a.quitOnce.Do(func() {
		logger.Debugf("App: quit requested")
		close(a.quit)
	})
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// Editor exposes the document editor.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// Font returns the font applied to the text area.
func (a *App) Font() font.Font {
	return a.fontState.Font()
}

// Dialogs returns the open dialog stack.
func (a *App) Dialogs() *dialog.Manager {
	return a.dialogs
}
