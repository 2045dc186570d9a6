package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadishiv23/aadios/internal/domain/registry"
	"github.com/aadishiv23/aadios/internal/shared/types"
)

// mockWindows records every window call
type mockWindows struct {
	active string
	calls  []string
}

func (m *mockWindows) record(op, appID string) types.Outcome {
	m.calls = append(m.calls, op+":"+appID)
	return types.Outcome{Op: types.Op(op), AppID: appID, Changed: true}
}

func (m *mockWindows) Open(appID string) types.Outcome { return m.record("open", appID) }

func (m *mockWindows) Close(appID string) types.Outcome { return m.record("close", appID) }

func (m *mockWindows) Minimize(appID string) types.Outcome { return m.record("minimize", appID) }

func (m *mockWindows) ToggleFullscreen(appID string) types.Outcome {
	return m.record("toggle_fullscreen", appID)
}

func (m *mockWindows) ActiveAppID() string { return m.active }

// mockActions stands in for theme and overlays
type mockActions struct {
	dark          bool
	spotlightOpen bool
	previewOpen   bool
	spotlightHits int
}

func (m *mockActions) ToggleTheme() bool {
	m.dark = !m.dark
	return m.dark
}

func (m *mockActions) OpenSpotlight() {
	m.spotlightOpen = true
	m.spotlightHits++
}

func (m *mockActions) CloseSpotlight() { m.spotlightOpen = false }

func (m *mockActions) SpotlightOpen() bool { return m.spotlightOpen }

func (m *mockActions) PreviewOpen() bool { return m.previewOpen }

func (m *mockActions) ClosePreview() { m.previewOpen = false }

func names(appID string) string {
	if d, ok := registry.Default().Resolve(appID); ok {
		return d.Name
	}
	return appID
}

func TestDockClick(t *testing.T) {
	w := &mockWindows{}
	dock := NewDock(registry.Default().DockItems(), w)

	out := dock.Click("projects")
	assert.True(t, out.Changed)
	dock.Click("github")
	out = dock.Click("terminal")
	assert.False(t, out.Changed)

	assert.Equal(t, []string{"open:projects", "open:github"}, w.calls)
}

func TestDockView(t *testing.T) {
	dock := NewDock(registry.Default().DockItems(), &mockWindows{})
	require.True(t, dock.Hover("contact"))
	assert.False(t, dock.Hover("ghost"))

	snap := types.Snapshot{
		Windows: []types.WindowView{
			{AppID: "projects", Phase: types.PhaseNormal},
			{AppID: "contact", Phase: types.PhaseMinimized},
		},
	}
	view := dock.View(snap)
	assert.False(t, view.Hidden)

	slots := map[string]DockSlot{}
	for _, s := range view.Slots {
		slots[s.AppID] = s
	}
	assert.True(t, slots["projects"].Running)
	assert.False(t, slots["contact"].Running)
	assert.True(t, slots["contact"].Hovered)
	assert.False(t, slots["experience_apple"].Running)

	dock.Unhover()
	assert.Empty(t, dock.Hovered())

	snap.AnyFullscreen = true
	assert.True(t, dock.View(snap).Hidden)
}

func TestMenuBarMutualExclusion(t *testing.T) {
	bar := NewMenuBar(&mockWindows{}, &mockActions{}, names)

	require.NoError(t, bar.Toggle(MenuFile))
	assert.Equal(t, MenuFile, bar.Open())

	require.NoError(t, bar.Toggle(MenuEdit))
	assert.Equal(t, MenuEdit, bar.Open())

	view := bar.View(types.Snapshot{})
	open := 0
	for _, m := range view.Menus {
		if m.Open {
			open++
		}
	}
	assert.Equal(t, 1, open)
	assert.Len(t, view.Menus, 6)

	require.NoError(t, bar.Toggle(MenuEdit))
	assert.Equal(t, Menu(""), bar.Open())

	err := bar.Toggle("go")
	assert.True(t, errors.Is(err, ErrUnknownMenu))
}

func TestMenuBarActivate(t *testing.T) {
	tests := []struct {
		name      string
		active    string
		menu      Menu
		item      string
		wantCalls []string
		wantOp    types.Op
		notice    bool
	}{
		{"quit active", "contact", MenuFile, ItemQuit, []string{"close:contact"}, "close", false},
		{"quit nothing", "", MenuFile, ItemQuit, nil, types.OpClose, true},
		{"new terminal", "", MenuFile, ItemNewTerminal, []string{"open:terminal"}, "open", false},
		{"new note", "", MenuFile, ItemNewNote, []string{"open:notes"}, "open", false},
		{"edit", "projects", MenuEdit, ItemPaste, nil, types.OpMenu, true},
		{"minimize", "projects", MenuWindow, ItemMinimize, []string{"minimize:projects"}, "minimize", false},
		{"minimize nothing", "", MenuWindow, ItemMinimize, nil, types.OpMinimize, true},
		{"zoom", "projects", MenuWindow, ItemZoom, []string{"toggle_fullscreen:projects"}, "toggle_fullscreen", false},
		{"zoom nothing", "", MenuWindow, ItemZoom, nil, types.OpToggleFullscreen, true},
		{"help about", "", MenuHelp, ItemAbout, []string{"open:about"}, "open", false},
		{"aadios about", "", MenuAadiOS, ItemAbout, []string{"open:about"}, "open", false},
		{"spotlight", "", MenuAadiOS, ItemSpotlight, nil, types.OpSpotlight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &mockWindows{active: tt.active}
			bar := NewMenuBar(w, &mockActions{}, names)
			require.NoError(t, bar.Toggle(tt.menu))

			out, err := bar.Activate(tt.menu, tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, w.calls)
			assert.Equal(t, tt.wantOp, out.Op)
			assert.Equal(t, tt.notice, len(out.Notices) > 0)
			assert.Equal(t, Menu(""), bar.Open())
		})
	}
}

func TestMenuBarToggleAppearance(t *testing.T) {
	actions := &mockActions{}
	bar := NewMenuBar(&mockWindows{}, actions, names)

	out, err := bar.Activate(MenuViewID, ItemToggleAppearance)
	require.NoError(t, err)
	assert.Equal(t, types.OpToggleTheme, out.Op)
	assert.True(t, actions.dark)
}

func TestMenuBarActivateUnknown(t *testing.T) {
	bar := NewMenuBar(&mockWindows{}, &mockActions{}, names)

	_, err := bar.Activate("go", ItemQuit)
	assert.ErrorIs(t, err, ErrUnknownMenu)

	_, err = bar.Activate(MenuEdit, ItemQuit)
	assert.ErrorIs(t, err, ErrUnknownMenuItem)
}

func TestMenuBarTitle(t *testing.T) {
	w := &mockWindows{}
	bar := NewMenuBar(w, &mockActions{}, names)
	assert.Equal(t, DefaultTitle, bar.Title())

	w.active = "contact"
	assert.Equal(t, "Contact Me", bar.Title())

	active := "projects"
	assert.Equal(t, "Projects", bar.View(types.Snapshot{ActiveAppID: &active}).Title)
}

func TestKeymapSpotlightShortcuts(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want KeyAction
	}{
		{"ctrl cmd space", KeyEvent{Key: " ", Ctrl: true, Meta: true}, KeyOpenSpotlight},
		{"ctrl cmd Space named", KeyEvent{Key: "Space", Ctrl: true, Meta: true}, KeyOpenSpotlight},
		{"cmd k", KeyEvent{Key: "k", Meta: true}, KeyOpenSpotlight},
		{"cmd K", KeyEvent{Key: "K", Meta: true, Shift: true}, KeyOpenSpotlight},
		{"plain k", KeyEvent{Key: "k"}, KeyNone},
		{"ctrl k", KeyEvent{Key: "k", Ctrl: true}, KeyNone},
		{"cmd space", KeyEvent{Key: " ", Meta: true}, KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := &mockActions{}
			km := NewKeymap(actions, NewMenuBar(&mockWindows{}, actions, names))
			assert.Equal(t, tt.want, km.Handle(tt.ev))
			assert.Equal(t, tt.want == KeyOpenSpotlight, actions.spotlightOpen)
		})
	}
}

func TestKeymapEscapeOrder(t *testing.T) {
	w := &mockWindows{active: "projects"}
	actions := &mockActions{spotlightOpen: true, previewOpen: true}
	bar := NewMenuBar(w, actions, names)
	require.NoError(t, bar.Toggle(MenuFile))
	km := NewKeymap(actions, bar)

	esc := KeyEvent{Key: "Escape"}
	assert.Equal(t, KeyCloseSpotlight, km.Handle(esc))
	assert.True(t, actions.previewOpen)
	assert.Equal(t, KeyClosePreview, km.Handle(esc))
	assert.Equal(t, MenuFile, bar.Open())
	assert.Equal(t, KeyCloseMenus, km.Handle(esc))
	assert.Equal(t, KeyNone, km.Handle(esc))

	assert.Empty(t, w.calls)
}
