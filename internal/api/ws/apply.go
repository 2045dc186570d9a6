package ws

import (
	"fmt"

	"github.com/aadishiv23/aadios/internal/domain/session"
	"github.com/aadishiv23/aadios/internal/domain/shell"
	"github.com/aadishiv23/aadios/internal/shared/types"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// windowOps are the frames that act on a single app window
var windowOps = map[string]func(ws *session.Workspace, appID string) types.Outcome{
	TypeOpen:       func(ws *session.Workspace, id string) types.Outcome { return ws.Windows.Open(id) },
	TypeFocus:      func(ws *session.Workspace, id string) types.Outcome { return ws.Windows.Focus(id) },
	TypeClose:      func(ws *session.Workspace, id string) types.Outcome { return ws.Windows.Close(id) },
	TypeMinimize:   func(ws *session.Workspace, id string) types.Outcome { return ws.Windows.Minimize(id) },
	TypeFullscreen: func(ws *session.Workspace, id string) types.Outcome { return ws.Windows.ToggleFullscreen(id) },
	TypeDockClick:  func(ws *session.Workspace, id string) types.Outcome { return ws.Dock.Click(id) },
}

// apply runs one inbound frame against the session and returns the replies
// in send order. Every frame except ping ends with a state frame.
func apply(ws *session.Workspace, f Inbound) []Outbound {
	if f.Type == TypePing {
		return []Outbound{frame(TypePong)}
	}

	var (
		out    *types.Outcome
		action shell.KeyAction
		lines  []Outbound
	)
	record := func(o types.Outcome) { out = &o }

	if op, ok := windowOps[f.Type]; ok {
		if err := utils.ValidateID(f.AppID, "app_id", true); err != nil {
			return []Outbound{errorFrame(err.Error())}
		}
		record(op(ws, f.AppID))
	} else {
		switch f.Type {
		case TypeDrag, TypeResize:
			if err := utils.ValidateID(f.AppID, "app_id", true); err != nil {
				return []Outbound{errorFrame(err.Error())}
			}
			if err := utils.ValidateDelta(f.DX, f.DY); err != nil {
				return []Outbound{errorFrame(err.Error())}
			}
			if f.Type == TypeDrag {
				record(ws.Windows.Drag(f.AppID, f.DX, f.DY))
			} else {
				record(ws.Windows.Resize(f.AppID, f.DX, f.DY))
			}

		case TypeViewport:
			if err := utils.ValidateViewport(f.Width, f.Height); err != nil {
				return []Outbound{errorFrame(err.Error())}
			}
			record(ws.Windows.SetViewport(f.Width, f.Height))

		case TypeReset:
			record(ws.Reset())

		case TypeDockHover:
			ws.Dock.Hover(f.AppID)
		case TypeDockUnhover:
			ws.Dock.Unhover()

		case TypeMenuToggle:
			if err := ws.Menus.Toggle(shell.Menu(f.Menu)); err != nil {
				return []Outbound{errorFrame(err.Error())}
			}
		case TypeMenuItem:
			o, err := ws.Menus.Activate(shell.Menu(f.Menu), f.Item)
			if err != nil {
				return []Outbound{errorFrame(err.Error())}
			}
			record(o)
		case TypeMenusClose:
			ws.Menus.CloseAll()

		case TypeKey:
			if err := utils.ValidateString(f.Key, "key", 1, 32, true); err != nil {
				return []Outbound{errorFrame(err.Error())}
			}
			action = ws.HandleKey(f.KeyEvent())

		case TypeSpotlightOpen:
			ws.OpenSpotlight()
			ws.Menus.CloseAll()
		case TypeSpotlightQuery:
			if err := utils.ValidateQuery(f.Query); err != nil {
				return []Outbound{errorFrame(err.Error())}
			}
			ws.Spotlight.SetQuery(f.Query)
		case TypeSpotlightActivate:
			if o, ok := ws.Spotlight.Activate(f.Index); ok {
				record(o)
			}
		case TypeSpotlightClose:
			ws.CloseSpotlight()

		case TypePreviewOpen:
			if len(f.Assets) > utils.MaxAssetCount {
				return []Outbound{errorFrame(fmt.Sprintf("at most %d assets allowed", utils.MaxAssetCount))}
			}
			ws.OpenPreview(f.Assets, f.Index)
		case TypePreviewNext:
			ws.Preview.Next()
		case TypePreviewPrev:
			ws.Preview.Prev()
		case TypePreviewClose:
			ws.ClosePreview()

		case TypeTerminal:
			if err := utils.ValidateCommand(f.Command); err != nil {
				return []Outbound{errorFrame(err.Error())}
			}
			res := ws.Exec(f.Command)
			if res.Outcome != nil {
				record(*res.Outcome)
			}
			if len(res.Lines) > 0 {
				n := frame(TypeNotice)
				n.Lines = res.Lines
				lines = append(lines, n)
			}

		case TypeThemeToggle:
			ws.ToggleTheme()

		default:
			return []Outbound{errorFrame("unknown message type: " + f.Type)}
		}
	}

	var replies []Outbound
	if out != nil {
		if out.Effect.Kind == types.EffectRedirect {
			r := frame(TypeRedirect)
			r.URL = out.Effect.URL
			replies = append(replies, r)
		}
		if len(out.Notices) > 0 {
			n := frame(TypeNotice)
			n.Notices = out.Notices
			replies = append(replies, n)
		}
	}
	replies = append(replies, lines...)

	view := ws.View()
	state := frame(TypeState)
	state.DesktopID = view.ID
	state.State = &view
	state.Outcome = out
	state.Action = action
	return append(replies, state)
}
