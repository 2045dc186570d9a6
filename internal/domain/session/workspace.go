package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/domain/desktop"
	"github.com/aadishiv23/aadios/internal/domain/overlay"
	"github.com/aadishiv23/aadios/internal/domain/preferences"
	"github.com/aadishiv23/aadios/internal/domain/registry"
	"github.com/aadishiv23/aadios/internal/domain/shell"
	"github.com/aadishiv23/aadios/internal/domain/terminal"
	"github.com/aadishiv23/aadios/internal/shared/id"
	"github.com/aadishiv23/aadios/internal/shared/types"
)

// Workspace is one desktop session
type Workspace struct {
	ID        id.DesktopID
	CreatedAt time.Time

	Windows   *desktop.Controller
	Dock      *shell.Dock
	Menus     *shell.MenuBar
	Keys      *shell.Keymap
	Spotlight *overlay.Spotlight
	Preview   *overlay.Preview
	Terminal  *terminal.Terminal

	prefs *preferences.Service
	media *overlay.MediaClassifier
	log   *zap.Logger
}

// View is the render model of a whole session
type View struct {
	ID        string                `json:"id"`
	CreatedAt time.Time             `json:"created_at"`
	Desktop   types.Snapshot        `json:"desktop"`
	Dock      shell.DockView        `json:"dock"`
	MenuBar   shell.MenuBarView     `json:"menu_bar"`
	Spotlight overlay.SpotlightView `json:"spotlight"`
	Preview   types.PreviewView     `json:"preview"`
	Terminal  []terminal.Line       `json:"terminal"`
}

// Summary describes a session in listings
type Summary struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Stats     types.Stats `json:"stats"`
}

func newWorkspace(wsID id.DesktopID, reg *registry.Registry, prefs *preferences.Service, cfg Config, log *zap.Logger, rec desktop.Recorder) *Workspace {
	w := &Workspace{
		ID:        wsID,
		CreatedAt: time.Now(),
		Preview:   overlay.NewPreview(),
		prefs:     prefs,
		media:     overlay.NewMediaClassifier(cfg.MediaDir),
		log:       log.With(zap.String("desktop_id", wsID.String())),
	}

	opts := []desktop.Option{
		desktop.WithLogger(w.log),
		desktop.WithTheme(prefs.DarkMode),
		desktop.WithDefaultApp(cfg.DefaultApp),
	}
	if rec != nil {
		opts = append(opts, desktop.WithRecorder(rec))
	}

	w.Windows = desktop.NewController(reg, cfg.Viewport, opts...)
	w.Dock = shell.NewDock(reg.DockItems(), w.Windows)
	w.Menus = shell.NewMenuBar(w.Windows, w, reg.Name)
	w.Keys = shell.NewKeymap(w, w.Menus)
	w.Spotlight = overlay.NewSpotlight(overlay.Entries(reg.Launchable()), w)
	w.Terminal = terminal.New(w)
	return w
}

// Open opens appID
func (w *Workspace) Open(appID string) types.Outcome {
	return w.Windows.Open(appID)
}

// Close closes appID
func (w *Workspace) Close(appID string) types.Outcome {
	return w.Windows.Close(appID)
}

// Reset returns the session to its fresh-load state: windows back to the
// default app and every overlay and menu closed
func (w *Workspace) Reset() types.Outcome {
	out := w.Windows.Reset()
	w.Spotlight.Close()
	w.Preview.Close()
	w.Menus.CloseAll()
	return out
}

// ToggleTheme flips the shared appearance preference
func (w *Workspace) ToggleTheme() bool {
	return w.prefs.ToggleDarkMode()
}

// OpenSpotlight shows the spotlight overlay
func (w *Workspace) OpenSpotlight() {
	w.Spotlight.Open()
}

// CloseSpotlight hides the spotlight overlay
func (w *Workspace) CloseSpotlight() {
	w.Spotlight.Close()
}

// SpotlightOpen reports whether spotlight is shown
func (w *Workspace) SpotlightOpen() bool {
	return w.Spotlight.IsOpen()
}

// PreviewOpen reports whether the media preview is shown
func (w *Workspace) PreviewOpen() bool {
	return w.Preview.IsOpen()
}

// ClosePreview closes the media preview
func (w *Workspace) ClosePreview() {
	w.Preview.Close()
}

// OpenPreview shows assets in the lightbox, classifying untyped assets
func (w *Workspace) OpenPreview(assets []types.MediaAsset, index int) bool {
	return w.Preview.Open(w.media.Classify(assets), index)
}

// Run executes a spotlight command
func (w *Workspace) Run(command string) types.Outcome {
	switch command {
	case overlay.CommandToggleTheme:
		w.ToggleTheme()
		return types.Outcome{Op: types.OpToggleTheme, Changed: true}
	case overlay.CommandMinimizeActive:
		return w.onActive(types.OpMinimize, w.Windows.Minimize)
	case overlay.CommandCloseActive:
		return w.onActive(types.OpClose, w.Windows.Close)
	case overlay.CommandResetDesktop:
		return w.Reset()
	}
	w.log.Warn("Unknown spotlight command", zap.String("command", command))
	return types.Outcome{Op: types.OpSpotlight}
}

func (w *Workspace) onActive(op types.Op, fn func(string) types.Outcome) types.Outcome {
	active := w.Windows.ActiveAppID()
	if active == "" {
		return types.Outcome{Op: op, Notices: []types.Notice{types.Warn("No active window.")}}
	}
	return fn(active)
}

// HandleKey applies a keyboard shortcut
func (w *Workspace) HandleKey(ev shell.KeyEvent) shell.KeyAction {
	return w.Keys.Handle(ev)
}

// Exec runs a terminal command line
func (w *Workspace) Exec(command string) terminal.Result {
	return w.Terminal.Exec(command)
}

// View renders the whole session
func (w *Workspace) View() View {
	snap := w.Windows.Snapshot()
	return View{
		ID:        w.ID.String(),
		CreatedAt: w.CreatedAt,
		Desktop:   snap,
		Dock:      w.Dock.View(snap),
		MenuBar:   w.Menus.View(snap),
		Spotlight: w.Spotlight.View(),
		Preview:   w.Preview.View(),
		Terminal:  w.Terminal.History(),
	}
}

// Summary describes the session
func (w *Workspace) Summary() Summary {
	return Summary{ID: w.ID.String(), CreatedAt: w.CreatedAt, Stats: w.Windows.Stats()}
}

func (w *Workspace) shutdown() {
	w.Windows.Shutdown()
}
