package preferences

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Persisted keys
const (
	KeyDarkMode   = "darkMode"
	KeyScratchpad = "aadios-scratchpad"
)

// ErrStoreUnavailable is returned by stores that cannot be reached
var ErrStoreUnavailable = errors.New("preference store unavailable")

// KVStore is a string key-value store
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// MemoryStore keeps values in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}

// OpenStore opens the SQLite store at path. An empty path, or a database
// that cannot be opened, yields a MemoryStore.
func OpenStore(ctx context.Context, path string, log *zap.Logger) KVStore {
	if log == nil {
		log = zap.NewNop()
	}
	if path == "" {
		log.Info("Preference persistence disabled, using memory store")
		return NewMemoryStore()
	}

	store, err := OpenSQLite(ctx, path)
	if err != nil {
		log.Warn("Failed to open preference store, falling back to memory",
			zap.String("path", path),
			zap.Error(err))
		return NewMemoryStore()
	}

	log.Info("Preference store opened", zap.String("path", path))
	return store
}
