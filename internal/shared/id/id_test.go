package id

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnique(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	assert.NotEqual(t, id1.String(), id2.String())
	assert.Len(t, gen.GenerateString(), 26)
}

func TestTypedIDGeneration(t *testing.T) {
	desk := NewDesktopID()
	req := NewRequestID()

	assert.True(t, strings.HasPrefix(desk.String(), "desk_"), desk)
	assert.True(t, strings.HasPrefix(req.String(), "req_"), req)
	assert.True(t, IsDesktopID(desk.String()))
	assert.False(t, IsDesktopID(req.String()))
}

func TestIsDesktopID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"no prefix", NewGenerator().GenerateString(), false},
		{"wrong prefix", "win_" + NewGenerator().GenerateString(), false},
		{"bad ulid", "desk_nope", false},
		{"valid", NewDesktopID().String(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDesktopID(tt.input))
		})
	}
}

func TestTimestamp(t *testing.T) {
	before := time.Now()
	s := NewGenerator().GenerateString()
	after := time.Now()

	ts, err := Timestamp(s)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, ts.UnixMilli(), before.UnixMilli())
	assert.LessOrEqual(t, ts.UnixMilli(), after.UnixMilli())
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()

	const goroutines = 50
	const perGoroutine = 100

	var wg sync.WaitGroup
	ids := make(chan string, goroutines*perGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				ids <- gen.GenerateString()
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for s := range ids {
		assert.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}

func TestMonotonicOrdering(t *testing.T) {
	gen := NewGenerator()

	prev := gen.GenerateString()
	for i := 0; i < 100; i++ {
		next := gen.GenerateString()
		assert.Greater(t, next, prev)
		prev = next
	}
}
