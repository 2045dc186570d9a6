package shell

import (
	"sync"

	"github.com/aadishiv23/aadios/internal/domain/registry"
	"github.com/aadishiv23/aadios/internal/shared/types"
)

// DockSlot is a dock item with its derived indicator state
type DockSlot struct {
	registry.DockItem
	Running bool `json:"running"` // open and not minimized
	Hovered bool `json:"hovered"`
}

// DockView is the render model of the dock
type DockView struct {
	Hidden bool       `json:"hidden"`
	Slots  []DockSlot `json:"slots"`
}

// Dock translates icon clicks into window opens
type Dock struct {
	mu      sync.Mutex
	items   []registry.DockItem
	hovered string // Protected by mu
	windows Windows
}

// NewDock creates a dock over the given layout
func NewDock(items []registry.DockItem, windows Windows) *Dock {
	return &Dock{items: items, windows: windows}
}

// Click opens the app behind a dock icon. Apps not in the dock are ignored.
func (d *Dock) Click(appID string) types.Outcome {
	if !d.has(appID) {
		return types.Outcome{Op: types.OpOpen, AppID: appID}
	}
	return d.windows.Open(appID)
}

// Hover marks an icon as hovered. Returns false for apps not in the dock.
func (d *Dock) Hover(appID string) bool {
	if !d.has(appID) {
		return false
	}
	d.mu.Lock()
	d.hovered = appID
	d.mu.Unlock()
	return true
}

// Unhover clears the hovered icon
func (d *Dock) Unhover() {
	d.mu.Lock()
	d.hovered = ""
	d.mu.Unlock()
}

// Hovered returns the hovered app id
func (d *Dock) Hovered() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hovered
}

// View renders the dock against a desktop snapshot
func (d *Dock) View(snap types.Snapshot) DockView {
	hovered := d.Hovered()

	view := DockView{
		Hidden: snap.AnyFullscreen,
		Slots:  make([]DockSlot, 0, len(d.items)),
	}
	for _, item := range d.items {
		slot := DockSlot{DockItem: item}
		if !item.Separator {
			if w, ok := snap.Window(item.AppID); ok {
				slot.Running = w.Phase != types.PhaseMinimized
			}
			slot.Hovered = item.AppID == hovered
		}
		view.Slots = append(view.Slots, slot)
	}
	return view
}

func (d *Dock) has(appID string) bool {
	for _, item := range d.items {
		if !item.Separator && item.AppID == appID {
			return true
		}
	}
	return false
}
