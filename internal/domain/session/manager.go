package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/domain/desktop"
	"github.com/aadishiv23/aadios/internal/domain/preferences"
	"github.com/aadishiv23/aadios/internal/domain/registry"
	"github.com/aadishiv23/aadios/internal/shared/id"
	"github.com/aadishiv23/aadios/internal/shared/types"
)

var (
	// ErrSessionNotFound is returned for an unknown desktop id
	ErrSessionNotFound = errors.New("desktop session not found")
	// ErrTooManySessions is returned when MaxSessions is reached
	ErrTooManySessions = errors.New("too many desktop sessions")
)

// Config holds the defaults every new session starts from
type Config struct {
	Viewport    types.Size
	DefaultApp  string
	MaxSessions int // zero means unbounded
	MediaDir    string
}

// Metrics receives session and window metrics
type Metrics interface {
	desktop.Recorder
	SessionOpened()
	SessionClosed()
}

// Manager tracks live desktop sessions
type Manager struct {
	sessions sync.Map // id.DesktopID -> *Workspace
	count    int64    // Atomic
	createMu sync.Mutex

	registry *registry.Registry
	prefs    *preferences.Service
	cfg      Config
	log      *zap.Logger
	metrics  Metrics
}

// NewManager creates a new session manager
func NewManager(reg *registry.Registry, prefs *preferences.Service, cfg Config) *Manager {
	return &Manager{
		registry: reg,
		prefs:    prefs,
		cfg:      cfg,
		log:      zap.NewNop(),
	}
}

// WithLogger sets the logger
func (m *Manager) WithLogger(log *zap.Logger) *Manager {
	if log != nil {
		m.log = log
	}
	return m
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Create starts a new session in its fresh-load state
func (m *Manager) Create() (*Workspace, error) {
	m.createMu.Lock()
	defer m.createMu.Unlock()

	if m.cfg.MaxSessions > 0 && atomic.LoadInt64(&m.count) >= int64(m.cfg.MaxSessions) {
		return nil, fmt.Errorf("%w: limit %d", ErrTooManySessions, m.cfg.MaxSessions)
	}

	var rec desktop.Recorder
	if m.metrics != nil {
		rec = m.metrics
	}
	ws := newWorkspace(id.NewDesktopID(), m.registry, m.prefs, m.cfg, m.log, rec)

	m.sessions.Store(ws.ID, ws)
	atomic.AddInt64(&m.count, 1)
	if m.metrics != nil {
		m.metrics.SessionOpened()
	}

	m.log.Info("Desktop session created", zap.String("desktop_id", ws.ID.String()))
	return ws, nil
}

// Get returns the session with the given id
func (m *Manager) Get(desktopID string) (*Workspace, error) {
	v, ok := m.sessions.Load(id.DesktopID(desktopID))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, desktopID)
	}
	return v.(*Workspace), nil
}

// Delete closes the session with the given id
func (m *Manager) Delete(desktopID string) error {
	v, ok := m.sessions.LoadAndDelete(id.DesktopID(desktopID))
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, desktopID)
	}

	v.(*Workspace).shutdown()
	atomic.AddInt64(&m.count, -1)
	if m.metrics != nil {
		m.metrics.SessionClosed()
	}

	m.log.Info("Desktop session closed", zap.String("desktop_id", desktopID))
	return nil
}

// List returns summaries of all sessions, oldest first
func (m *Manager) List() []Summary {
	var out []Summary
	m.sessions.Range(func(_, value interface{}) bool {
		out = append(out, value.(*Workspace).Summary())
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	return int(atomic.LoadInt64(&m.count))
}

// CloseAll closes every session
func (m *Manager) CloseAll() {
	m.sessions.Range(func(key, _ interface{}) bool {
		_ = m.Delete(key.(id.DesktopID).String())
		return true
	})
}
