package shell

import "strings"

// KeyEvent is a keyboard event reported by the client. Meta is the Cmd key.
type KeyEvent struct {
	Key   string `json:"key" binding:"required"`
	Ctrl  bool   `json:"ctrl"`
	Meta  bool   `json:"meta"`
	Alt   bool   `json:"alt"`
	Shift bool   `json:"shift"`
}

// KeyAction is what a shortcut resolved to
type KeyAction string

const (
	KeyNone           KeyAction = ""
	KeyOpenSpotlight  KeyAction = "open_spotlight"
	KeyCloseSpotlight KeyAction = "close_spotlight"
	KeyClosePreview   KeyAction = "close_preview"
	KeyCloseMenus     KeyAction = "close_menus"
)

// Overlays is the modal layer Escape dismisses
type Overlays interface {
	SpotlightOpen() bool
	OpenSpotlight()
	CloseSpotlight()
	PreviewOpen() bool
	ClosePreview()
}

// Keymap dispatches global shortcuts. Escape dismisses the topmost overlay
// and never closes a window.
type Keymap struct {
	overlays Overlays
	menus    *MenuBar
}

// NewKeymap creates a keymap
func NewKeymap(overlays Overlays, menus *MenuBar) *Keymap {
	return &Keymap{overlays: overlays, menus: menus}
}

// Handle applies ev and reports what it did
func (k *Keymap) Handle(ev KeyEvent) KeyAction {
	key := strings.ToLower(ev.Key)

	switch {
	case isSpotlightShortcut(ev, key):
		k.overlays.OpenSpotlight()
		if k.menus != nil {
			k.menus.CloseAll()
		}
		return KeyOpenSpotlight

	case key == "escape" || key == "esc":
		if k.overlays.SpotlightOpen() {
			k.overlays.CloseSpotlight()
			return KeyCloseSpotlight
		}
		if k.overlays.PreviewOpen() {
			k.overlays.ClosePreview()
			return KeyClosePreview
		}
		if k.menus != nil && k.menus.CloseAll() {
			return KeyCloseMenus
		}
	}
	return KeyNone
}

// isSpotlightShortcut matches Ctrl+Cmd+Space and Cmd+K
func isSpotlightShortcut(ev KeyEvent, key string) bool {
	if !ev.Meta {
		return false
	}
	if ev.Ctrl && (key == " " || key == "space" || key == "spacebar") {
		return true
	}
	return key == "k" && !ev.Ctrl && !ev.Alt
}
