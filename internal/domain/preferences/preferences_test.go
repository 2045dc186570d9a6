package preferences

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// brokenStore fails every call, like storage that is disabled or full
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrStoreUnavailable
}

func (brokenStore) Set(context.Context, string, string) error { return ErrStoreUnavailable }

func (brokenStore) Close() error { return nil }

// slowStore records writes in arrival order and stalls some of them
type slowStore struct {
	*MemoryStore
	mu     sync.Mutex
	writes []string
}

func (s *slowStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	n := len(s.writes)
	s.mu.Unlock()
	time.Sleep(time.Duration(n%3) * time.Millisecond)

	s.mu.Lock()
	s.writes = append(s.writes, value)
	s.mu.Unlock()
	return s.MemoryStore.Set(ctx, key, value)
}

type failures struct{ keys []string }

func (f *failures) PreferenceWriteFailed(key string) { f.keys = append(f.keys, key) }

func TestServiceDefaults(t *testing.T) {
	ctx := context.Background()

	s := NewService(ctx, NewMemoryStore(), true)
	assert.True(t, s.DarkMode())
	assert.False(t, s.Theme().Stored)
	assert.Empty(t, s.Scratchpad().Text)

	s = NewService(ctx, nil, false)
	assert.False(t, s.DarkMode())
}

func TestServiceReadsStoredValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyDarkMode, "false"))
	require.NoError(t, store.Set(ctx, KeyScratchpad, "ship FetchAR"))

	s := NewService(ctx, store, true)
	assert.False(t, s.DarkMode())
	assert.True(t, s.Theme().Stored)
	assert.Equal(t, "ship FetchAR", s.Scratchpad().Text)
}

func TestServiceIgnoresMalformedTheme(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyDarkMode, "maybe"))

	s := NewService(ctx, store, true)
	assert.True(t, s.DarkMode())
	assert.False(t, s.Theme().Stored)
}

func TestServiceWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	s := NewService(ctx, store, false, WithClock(func() time.Time { return now }))

	assert.True(t, s.ToggleDarkMode())
	v, ok, _ := store.Get(ctx, KeyDarkMode)
	require.True(t, ok)
	assert.Equal(t, "true", v)

	s.SetDarkMode(false)
	v, _, _ = store.Get(ctx, KeyDarkMode)
	assert.Equal(t, "false", v)

	pad, err := s.SetScratchpad("WWDC wishlist")
	require.NoError(t, err)
	assert.Equal(t, now, pad.SavedAt)
	v, _, _ = store.Get(ctx, KeyScratchpad)
	assert.Equal(t, "WWDC wishlist", v)
}

func TestServiceRejectsOversizedScratchpad(t *testing.T) {
	s := NewService(context.Background(), NewMemoryStore(), false)
	_, err := s.SetScratchpad(strings.Repeat("x", utils.MaxScratchpadSize+1))
	assert.Error(t, err)
	assert.Empty(t, s.Scratchpad().Text)
}

func TestServiceDegradesOnStoreFailure(t *testing.T) {
	rec := &failures{}
	s := NewService(context.Background(), brokenStore{}, true,
		WithLogger(zap.NewNop()), WithRecorder(rec))

	assert.True(t, s.DarkMode())
	assert.False(t, s.ToggleDarkMode())
	assert.False(t, s.DarkMode())

	pad, err := s.SetScratchpad("still here")
	require.NoError(t, err)
	assert.Equal(t, "still here", pad.Text)
	assert.Equal(t, "still here", s.Scratchpad().Text)

	assert.Equal(t, []string{KeyDarkMode, KeyScratchpad}, rec.keys)
}

// tripped refuses every write, like an open circuit breaker
type tripped struct{ calls int }

func (g *tripped) Do(func() error) error {
	g.calls++
	return ErrStoreUnavailable
}

func TestServiceWritesThroughGuard(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	guard := &tripped{}
	rec := &failures{}
	s := NewService(ctx, store, false, WithGuard(guard), WithRecorder(rec))

	assert.True(t, s.ToggleDarkMode())
	assert.True(t, s.DarkMode())
	assert.Equal(t, 1, guard.calls)
	assert.Equal(t, []string{KeyDarkMode}, rec.keys)

	_, ok, err := store.Get(ctx, KeyDarkMode)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := OpenSQLite(ctx, path)
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, KeyDarkMode)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, KeyDarkMode, "true"))
	require.NoError(t, store.Set(ctx, KeyDarkMode, "false"))
	require.NoError(t, store.Set(ctx, KeyScratchpad, "hello"))
	require.NoError(t, store.Close())

	// values survive a reopen
	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	s := NewService(ctx, reopened, true)
	assert.False(t, s.DarkMode())
	assert.Equal(t, "hello", s.Scratchpad().Text)
}

func TestOpenStoreFallsBackToMemory(t *testing.T) {
	ctx := context.Background()

	_, isMemory := OpenStore(ctx, "", nil).(*MemoryStore)
	assert.True(t, isMemory)

	bad := filepath.Join(t.TempDir(), "missing", "dir", "prefs.db")
	_, isMemory = OpenStore(ctx, bad, zap.NewNop()).(*MemoryStore)
	assert.True(t, isMemory)

	store := OpenStore(ctx, filepath.Join(t.TempDir(), "prefs.db"), nil)
	_, isSQLite := store.(*SQLiteStore)
	assert.True(t, isSQLite)
	require.NoError(t, store.Close())
}

func TestServiceConcurrentTogglesPersistInOrder(t *testing.T) {
	ctx := context.Background()
	store := &slowStore{MemoryStore: NewMemoryStore()}
	s := NewService(ctx, store, false)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ToggleDarkMode()
		}()
	}
	wg.Wait()

	require.Len(t, store.writes, 40)
	for i, v := range store.writes {
		assert.Equal(t, strconv.FormatBool(i%2 == 0), v, "write %d", i)
	}

	stored, ok, err := store.Get(ctx, KeyDarkMode)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strconv.FormatBool(s.DarkMode()), stored)
	assert.False(t, s.DarkMode())
}
