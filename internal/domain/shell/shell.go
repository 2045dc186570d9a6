package shell

import "github.com/aadishiv23/aadios/internal/shared/types"

// Windows is the part of the window controller the shell drives
type Windows interface {
	Open(appID string) types.Outcome
	Close(appID string) types.Outcome
	Minimize(appID string) types.Outcome
	ToggleFullscreen(appID string) types.Outcome
	ActiveAppID() string
}

// Actions are the non-window operations reachable from menus and shortcuts
type Actions interface {
	ToggleTheme() bool
	OpenSpotlight()
}
