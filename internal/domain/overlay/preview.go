package overlay

import (
	"sync"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// Preview is the media lightbox. Closing forgets the assets and position.
type Preview struct {
	mu     sync.Mutex
	assets []types.MediaAsset // Protected by mu, nil when closed
	index  int                // Protected by mu
}

// NewPreview creates a closed preview
func NewPreview() *Preview {
	return &Preview{}
}

// Open shows assets starting at index, clamped into range. Opening with no
// assets is ignored.
func (p *Preview) Open(assets []types.MediaAsset, index int) bool {
	if len(assets) == 0 {
		return false
	}
	if index < 0 {
		index = 0
	}
	if index >= len(assets) {
		index = len(assets) - 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.assets = append([]types.MediaAsset(nil), assets...)
	p.index = index
	return true
}

// Next advances with wraparound and returns the new index
func (p *Preview) Next() int {
	return p.step(1)
}

// Prev steps back with wraparound and returns the new index
func (p *Preview) Prev() int {
	return p.step(-1)
}

func (p *Preview) step(delta int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.assets)
	if n == 0 {
		return 0
	}
	p.index = (p.index + delta + n) % n
	return p.index
}

// Close clears the preview. Returns whether it was open.
func (p *Preview) Close() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	wasOpen := p.assets != nil
	p.assets = nil
	p.index = 0
	return wasOpen
}

// IsOpen reports whether the preview is shown
func (p *Preview) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.assets != nil
}

// Current returns the asset on screen
func (p *Preview) Current() (types.MediaAsset, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.assets == nil {
		return types.MediaAsset{}, false
	}
	return p.assets[p.index], true
}

// View renders the preview
func (p *Preview) View() types.PreviewView {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.assets == nil {
		return types.PreviewView{}
	}
	return types.PreviewView{
		Open:   true,
		Assets: append([]types.MediaAsset(nil), p.assets...),
		Index:  p.index,
	}
}
