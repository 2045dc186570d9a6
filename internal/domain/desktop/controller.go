package desktop

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// Resolver looks up application descriptors
type Resolver interface {
	Resolve(appID string) (types.Descriptor, bool)
}

// Recorder receives operation metrics
type Recorder interface {
	ObserveWindowOp(op types.Op, changed bool)
	AddOpenWindows(delta int)
}

// Event is published after every dispatched operation
type Event struct {
	Outcome  types.Outcome
	Snapshot types.Snapshot
}

// Listener receives events in dispatch order. Listeners may read the
// controller but must not dispatch operations on it.
type Listener func(Event)

// Controller is the single writer of a desktop State
type Controller struct {
	mu        sync.RWMutex
	state     *State // Protected by mu
	listeners map[int]Listener
	nextID    int

	dispatchMu sync.Mutex // Serializes dispatches and their listener calls

	registry   Resolver
	log        *zap.Logger
	recorder   Recorder
	defaultApp string
	darkMode   func() bool
	now        func() time.Time
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRecorder adds metrics tracking
func WithRecorder(r Recorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// WithDefaultApp opens appID on construction and after every reset
func WithDefaultApp(appID string) Option {
	return func(c *Controller) {
		c.defaultApp = appID
	}
}

// WithTheme supplies the dark mode flag passed to content renderers
func WithTheme(darkMode func() bool) Option {
	return func(c *Controller) {
		c.darkMode = darkMode
	}
}

// WithClock overrides the snapshot clock
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a controller for a container of the given size
func NewController(registry Resolver, viewport types.Size, opts ...Option) *Controller {
	c := &Controller{
		state:     NewState(viewport),
		listeners: make(map[int]Listener),
		registry:  registry,
		log:       zap.NewNop(),
		darkMode:  func() bool { return false },
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.defaultApp != "" {
		c.openDefault(c.state)
	}
	return c
}

// openDefault opens the default app on s in place
func (c *Controller) openDefault(s *State) {
	d, ok := c.registry.Resolve(c.defaultApp)
	if !ok {
		c.log.Warn("Default app not in catalog", zap.String("app_id", c.defaultApp))
		return
	}
	next, res := Open(s, d)
	if res.Changed {
		*s = *next
		c.addOpenWindows(1)
	}
}

// Open opens appID or focuses it if already open
func (c *Controller) Open(appID string) types.Outcome {
	d, ok := c.registry.Resolve(appID)
	if !ok {
		return c.ignore(types.OpOpen, appID)
	}
	return c.dispatch(types.OpOpen, appID, func(s *State) (*State, Result) {
		return Open(s, d)
	})
}

// Focus brings appID to the front, restoring it if minimized
func (c *Controller) Focus(appID string) types.Outcome {
	return c.dispatch(types.OpFocus, appID, func(s *State) (*State, Result) {
		return BringToFront(s, appID)
	})
}

// Close closes appID
func (c *Controller) Close(appID string) types.Outcome {
	return c.dispatch(types.OpClose, appID, func(s *State) (*State, Result) {
		return Close(s, appID)
	})
}

// Minimize minimizes appID
func (c *Controller) Minimize(appID string) types.Outcome {
	return c.dispatch(types.OpMinimize, appID, func(s *State) (*State, Result) {
		return Minimize(s, appID)
	})
}

// ToggleFullscreen toggles fullscreen on appID
func (c *Controller) ToggleFullscreen(appID string) types.Outcome {
	return c.dispatch(types.OpToggleFullscreen, appID, func(s *State) (*State, Result) {
		return ToggleFullscreen(s, appID)
	})
}

// Drag moves appID by (dx, dy)
func (c *Controller) Drag(appID string, dx, dy float64) types.Outcome {
	return c.dispatch(types.OpDrag, appID, func(s *State) (*State, Result) {
		return Drag(s, appID, types.Point{X: dx, Y: dy})
	})
}

// Resize resizes appID by (dw, dh)
func (c *Controller) Resize(appID string, dw, dh float64) types.Outcome {
	return c.dispatch(types.OpResize, appID, func(s *State) (*State, Result) {
		return Resize(s, appID, types.Size{Width: dw, Height: dh})
	})
}

// SetViewport records the container size reported by the client
func (c *Controller) SetViewport(width, height float64) types.Outcome {
	return c.dispatch(types.OpViewport, "", func(s *State) (*State, Result) {
		return SetViewport(s, types.Size{Width: width, Height: height})
	})
}

// Reset returns the desktop to its fresh-load state
func (c *Controller) Reset() types.Outcome {
	return c.dispatch(types.OpReset, "", func(s *State) (*State, Result) {
		next, res := Reset(s)
		if c.defaultApp != "" {
			if d, ok := c.registry.Resolve(c.defaultApp); ok {
				next, _ = Open(next, d)
			}
		}
		return next, res
	})
}

// ActiveAppID returns the focused app, or "" when none
func (c *Controller) ActiveAppID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.ActiveAppID
}

// State returns a deep copy of the current state
func (c *Controller) State() *State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Stats returns window counts
func (c *Controller) Stats() types.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Stats()
}

// Snapshot returns the render model of the current state
func (c *Controller) Snapshot() types.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot(c.state)
}

// Subscribe registers a listener and returns its cancel func
func (c *Controller) Subscribe(l Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Shutdown releases the open windows from the metrics gauge
func (c *Controller) Shutdown() {
	c.dispatchMu.Lock()
	defer c.dispatchMu.Unlock()

	c.mu.Lock()
	open := len(c.state.OpenApps)
	c.state = NewState(c.state.Viewport)
	c.listeners = make(map[int]Listener)
	c.mu.Unlock()

	c.addOpenWindows(-open)
}

// dispatch applies one transition atomically and notifies listeners
func (c *Controller) dispatch(op types.Op, appID string, fn func(*State) (*State, Result)) types.Outcome {
	c.dispatchMu.Lock()
	defer c.dispatchMu.Unlock()

	c.mu.Lock()
	prev := c.state
	next, res := fn(prev)
	c.state = next

	outcome := types.Outcome{Op: op, AppID: appID, Changed: res.Changed, Effect: res.Effect}
	event := Event{Outcome: outcome, Snapshot: c.snapshot(next)}
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}

	c.mu.Unlock()

	if delta := len(next.OpenApps) - len(prev.OpenApps); delta != 0 {
		c.addOpenWindows(delta)
	}
	if c.recorder != nil {
		c.recorder.ObserveWindowOp(op, res.Changed)
	}
	if res.Changed {
		c.log.Debug("Window operation applied",
			zap.String("op", string(op)),
			zap.String("app_id", appID),
			zap.String("active", next.ActiveAppID))
	}

	for _, l := range listeners {
		l(event)
	}

	return outcome
}

// ignore reports an operation on an unknown app
func (c *Controller) ignore(op types.Op, appID string) types.Outcome {
	c.log.Debug("Ignoring operation on unknown app",
		zap.String("op", string(op)),
		zap.String("app_id", appID))
	if c.recorder != nil {
		c.recorder.ObserveWindowOp(op, false)
	}
	return types.Outcome{Op: op, AppID: appID}
}

func (c *Controller) addOpenWindows(delta int) {
	if c.recorder != nil && delta != 0 {
		c.recorder.AddOpenWindows(delta)
	}
}
