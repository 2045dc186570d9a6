package preferences

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// writeTimeout bounds a single store write
const writeTimeout = 2 * time.Second

// Recorder receives persistence failures
type Recorder interface {
	PreferenceWriteFailed(key string)
}

// Guard runs store writes, typically a circuit breaker that skips the store
// after repeated failures
type Guard interface {
	Do(fn func() error) error
}

// Theme is the persisted appearance
type Theme struct {
	DarkMode bool `json:"dark_mode"`
	Stored   bool `json:"stored"` // false while the default is in effect
}

// Scratchpad is the persisted Notes text
type Scratchpad struct {
	Text    string    `json:"text"`
	SavedAt time.Time `json:"saved_at,omitempty"`
}

// Service holds the authoritative preference values
type Service struct {
	// writeMu orders store writes like the in-memory updates. It is taken
	// before mu and held across the write.
	writeMu    sync.Mutex
	mu         sync.RWMutex
	theme      Theme      // Protected by mu
	scratchpad Scratchpad // Protected by mu

	store    KVStore
	guard    Guard
	log      *zap.Logger
	recorder Recorder
	now      func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRecorder adds metrics tracking
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithGuard routes store writes through g
func WithGuard(g Guard) Option {
	return func(s *Service) {
		s.guard = g
	}
}

// WithClock overrides the save timestamp clock
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService loads the persisted values once. defaultDark applies when no
// theme was stored or it cannot be read.
func NewService(ctx context.Context, store KVStore, defaultDark bool, opts ...Option) *Service {
	s := &Service{
		theme: Theme{DarkMode: defaultDark},
		store: store,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = NewMemoryStore()
	}

	if raw, ok := s.read(ctx, KeyDarkMode); ok {
		if dark, err := strconv.ParseBool(raw); err == nil {
			s.theme = Theme{DarkMode: dark, Stored: true}
		} else {
			s.log.Warn("Ignoring malformed theme preference", zap.String("value", raw))
		}
	}
	if raw, ok := s.read(ctx, KeyScratchpad); ok {
		s.scratchpad.Text = raw
	}

	return s
}

// DarkMode reports the current appearance
func (s *Service) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme.DarkMode
}

// Theme returns the theme preference
func (s *Service) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetDarkMode sets and persists the appearance
func (s *Service) SetDarkMode(dark bool) Theme {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.theme = Theme{DarkMode: dark, Stored: true}
	theme := s.theme
	s.mu.Unlock()

	s.write(KeyDarkMode, strconv.FormatBool(dark))
	return theme
}

// ToggleDarkMode flips and persists the appearance, returning the new value
func (s *Service) ToggleDarkMode() bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.theme = Theme{DarkMode: !s.theme.DarkMode, Stored: true}
	dark := s.theme.DarkMode
	s.mu.Unlock()

	s.write(KeyDarkMode, strconv.FormatBool(dark))
	return dark
}

// Scratchpad returns the Notes text
func (s *Service) Scratchpad() Scratchpad {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratchpad
}

// SetScratchpad replaces and persists the Notes text
func (s *Service) SetScratchpad(text string) (Scratchpad, error) {
	if err := utils.ValidateScratchpad(text); err != nil {
		return Scratchpad{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.scratchpad = Scratchpad{Text: text, SavedAt: s.now()}
	pad := s.scratchpad
	s.mu.Unlock()

	s.write(KeyScratchpad, text)
	return pad, nil
}

// Close closes the underlying store
func (s *Service) Close() error {
	return s.store.Close()
}

func (s *Service) read(ctx context.Context, key string) (string, bool) {
	value, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn("Failed to read preference", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, ok
}

func (s *Service) write(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	set := func() error { return s.store.Set(ctx, key, value) }
	var err error
	if s.guard != nil {
		err = s.guard.Do(set)
	} else {
		err = set()
	}
	if err != nil {
		s.log.Warn("Failed to persist preference", zap.String("key", key), zap.Error(err))
		if s.recorder != nil {
			s.recorder.PreferenceWriteFailed(key)
		}
	}
}
