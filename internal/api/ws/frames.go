package ws

import (
	"time"

	"github.com/aadishiv23/aadios/internal/domain/session"
	"github.com/aadishiv23/aadios/internal/domain/shell"
	"github.com/aadishiv23/aadios/internal/domain/terminal"
	"github.com/aadishiv23/aadios/internal/shared/types"
)

// Inbound frame types
const (
	TypeOpen              = "open"
	TypeFocus             = "focus"
	TypeClose             = "close"
	TypeMinimize          = "minimize"
	TypeFullscreen        = "fullscreen"
	TypeDrag              = "drag"
	TypeResize            = "resize"
	TypeViewport          = "viewport"
	TypeReset             = "reset"
	TypeDockClick         = "dock_click"
	TypeDockHover         = "dock_hover"
	TypeDockUnhover       = "dock_unhover"
	TypeMenuToggle        = "menu_toggle"
	TypeMenuItem          = "menu_item"
	TypeMenusClose        = "menus_close"
	TypeKey               = "key"
	TypeSpotlightOpen     = "spotlight_open"
	TypeSpotlightQuery    = "spotlight_query"
	TypeSpotlightActivate = "spotlight_activate"
	TypeSpotlightClose    = "spotlight_close"
	TypePreviewOpen       = "preview_open"
	TypePreviewNext       = "preview_next"
	TypePreviewPrev       = "preview_prev"
	TypePreviewClose      = "preview_close"
	TypeTerminal          = "terminal"
	TypeThemeToggle       = "theme_toggle"
	TypePing              = "ping"
)

// Outbound frame types
const (
	TypeHello    = "hello"
	TypeState    = "state"
	TypeRedirect = "redirect"
	TypeNotice   = "notice"
	TypeError    = "error"
	TypePong     = "pong"
)

// Inbound is a client frame. Only the fields its type needs are read.
type Inbound struct {
	Type    string             `json:"type"`
	AppID   string             `json:"app_id,omitempty"`
	DX      float64            `json:"dx,omitempty"`
	DY      float64            `json:"dy,omitempty"`
	Width   float64            `json:"width,omitempty"`
	Height  float64            `json:"height,omitempty"`
	Query   string             `json:"query,omitempty"`
	Index   int                `json:"index,omitempty"`
	Key     string             `json:"key,omitempty"`
	Ctrl    bool               `json:"ctrl,omitempty"`
	Meta    bool               `json:"meta,omitempty"`
	Alt     bool               `json:"alt,omitempty"`
	Shift   bool               `json:"shift,omitempty"`
	Command string             `json:"command,omitempty"`
	Menu    string             `json:"menu,omitempty"`
	Item    string             `json:"item,omitempty"`
	Assets  []types.MediaAsset `json:"assets,omitempty"`
}

// KeyEvent returns the keyboard fields as a shell event
func (f Inbound) KeyEvent() shell.KeyEvent {
	return shell.KeyEvent{Key: f.Key, Ctrl: f.Ctrl, Meta: f.Meta, Alt: f.Alt, Shift: f.Shift}
}

// Outbound is a server frame
type Outbound struct {
	Type      string          `json:"type"`
	DesktopID string          `json:"desktop_id,omitempty"`
	State     *session.View   `json:"state,omitempty"`
	Outcome   *types.Outcome  `json:"outcome,omitempty"`
	Action    shell.KeyAction `json:"action,omitempty"`
	URL       string          `json:"url,omitempty"`
	Notices   []types.Notice  `json:"notices,omitempty"`
	Lines     []terminal.Line `json:"lines,omitempty"`
	Message   string          `json:"message,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

func frame(typ string) Outbound {
	return Outbound{Type: typ, Timestamp: time.Now().Unix()}
}

func errorFrame(msg string) Outbound {
	f := frame(TypeError)
	f.Message = msg
	return f
}
