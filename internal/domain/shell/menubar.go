package shell

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

var (
	// ErrUnknownMenu is returned for a menu id the menu bar does not have
	ErrUnknownMenu = errors.New("unknown menu")
	// ErrUnknownMenuItem is returned for an item id its menu does not have
	ErrUnknownMenuItem = errors.New("unknown menu item")
)

// Menu identifies one of the menu bar menus
type Menu string

const (
	MenuAadiOS Menu = "aadios"
	MenuFile   Menu = "file"
	MenuEdit   Menu = "edit"
	MenuViewID Menu = "view"
	MenuWindow Menu = "window"
	MenuHelp   Menu = "help"
)

// Menu item ids
const (
	ItemAbout            = "about"
	ItemSpotlight        = "spotlight"
	ItemNewTerminal      = "new-terminal"
	ItemNewNote          = "new-note"
	ItemQuit             = "quit"
	ItemUndo             = "undo"
	ItemRedo             = "redo"
	ItemCut              = "cut"
	ItemCopy             = "copy"
	ItemPaste            = "paste"
	ItemToggleAppearance = "toggle-appearance"
	ItemMinimize         = "minimize"
	ItemZoom             = "zoom"
)

// DefaultTitle is shown when no window is focused
const DefaultTitle = "Finder"

const (
	noticeNoQuit     = "No active application to quit."
	noticeNoMinimize = "No active window to minimize."
	noticeNoZoom     = "No active window to zoom."
	noticeEdit       = "Edit functions (Undo, Redo, Cut, Copy, Paste) are not implemented in this portfolio simulation. Stop trying to break the simulation!!"
)

// MenuItem is one entry of a menu
type MenuItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Shortcut string `json:"shortcut,omitempty"`
}

type menuDef struct {
	id    Menu
	label string
	items []MenuItem
}

var menus = []menuDef{
	{MenuAadiOS, "AadiOS", []MenuItem{
		{ID: ItemAbout, Label: "About This Portfolio"},
		{ID: ItemSpotlight, Label: "Spotlight", Shortcut: "⌘K"},
	}},
	{MenuFile, "File", []MenuItem{
		{ID: ItemNewTerminal, Label: "New Terminal"},
		{ID: ItemNewNote, Label: "New Note"},
		{ID: ItemQuit, Label: "Quit", Shortcut: "⌘Q"},
	}},
	{MenuEdit, "Edit", []MenuItem{
		{ID: ItemUndo, Label: "Undo", Shortcut: "⌘Z"},
		{ID: ItemRedo, Label: "Redo", Shortcut: "⇧⌘Z"},
		{ID: ItemCut, Label: "Cut", Shortcut: "⌘X"},
		{ID: ItemCopy, Label: "Copy", Shortcut: "⌘C"},
		{ID: ItemPaste, Label: "Paste", Shortcut: "⌘V"},
	}},
	{MenuViewID, "View", []MenuItem{
		{ID: ItemToggleAppearance, Label: "Toggle Appearance"},
	}},
	{MenuWindow, "Window", []MenuItem{
		{ID: ItemMinimize, Label: "Minimize", Shortcut: "⌘M"},
		{ID: ItemZoom, Label: "Zoom"},
	}},
	{MenuHelp, "Help", []MenuItem{
		{ID: ItemAbout, Label: "About AadiOS"},
	}},
}

func lookup(id Menu) (menuDef, bool) {
	for _, m := range menus {
		if m.id == id {
			return m, true
		}
	}
	return menuDef{}, false
}

// MenuView is the render model of one menu
type MenuView struct {
	ID    Menu       `json:"id"`
	Label string     `json:"label"`
	Open  bool       `json:"open"`
	Items []MenuItem `json:"items"`
}

// MenuBarView is the render model of the menu bar
type MenuBarView struct {
	Hidden bool       `json:"hidden"`
	Title  string     `json:"title"`
	Menus  []MenuView `json:"menus"`
}

// MenuBar tracks which menu is open and runs menu items
type MenuBar struct {
	mu      sync.Mutex
	open    Menu // Protected by mu, empty when all closed
	windows Windows
	actions Actions
	names   func(appID string) string
}

// NewMenuBar creates a menu bar. names resolves app display names for the title.
func NewMenuBar(windows Windows, actions Actions, names func(appID string) string) *MenuBar {
	return &MenuBar{windows: windows, actions: actions, names: names}
}

// Toggle opens menu, closing any other, or closes it if already open
func (m *MenuBar) Toggle(menu Menu) error {
	if _, ok := lookup(menu); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMenu, menu)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open == menu {
		m.open = ""
	} else {
		m.open = menu
	}
	return nil
}

// CloseAll closes every menu. Returns whether one was open.
func (m *MenuBar) CloseAll() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	wasOpen := m.open != ""
	m.open = ""
	return wasOpen
}

// Open returns the open menu, or "" when all are closed
func (m *MenuBar) Open() Menu {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Title returns the name shown next to the logo
func (m *MenuBar) Title() string {
	active := m.windows.ActiveAppID()
	if active == "" || m.names == nil {
		return DefaultTitle
	}
	return m.names(active)
}

// Activate runs a menu item and closes the menus
func (m *MenuBar) Activate(menu Menu, item string) (types.Outcome, error) {
	def, ok := lookup(menu)
	if !ok {
		return types.Outcome{}, fmt.Errorf("%w: %s", ErrUnknownMenu, menu)
	}
	if !hasItem(def, item) {
		return types.Outcome{}, fmt.Errorf("%w: %s/%s", ErrUnknownMenuItem, menu, item)
	}

	m.CloseAll()
	return m.run(menu, item), nil
}

func (m *MenuBar) run(menu Menu, item string) types.Outcome {
	switch menu {
	case MenuAadiOS, MenuHelp:
		if item == ItemSpotlight {
			m.actions.OpenSpotlight()
			return types.Outcome{Op: types.OpSpotlight, Changed: true}
		}
		return m.windows.Open("about")

	case MenuFile:
		switch item {
		case ItemNewTerminal:
			return m.windows.Open("terminal")
		case ItemNewNote:
			return m.windows.Open("notes")
		}
		return m.onActive(types.OpClose, noticeNoQuit, m.windows.Close)

	case MenuEdit:
		return types.Outcome{Op: types.OpMenu, Notices: []types.Notice{types.Info(noticeEdit)}}

	case MenuViewID:
		dark := m.actions.ToggleTheme()
		mode := "light"
		if dark {
			mode = "dark"
		}
		return types.Outcome{Op: types.OpToggleTheme, Changed: true, Notices: []types.Notice{types.Info("Appearance set to " + mode)}}

	case MenuWindow:
		if item == ItemZoom {
			return m.onActive(types.OpToggleFullscreen, noticeNoZoom, m.windows.ToggleFullscreen)
		}
		return m.onActive(types.OpMinimize, noticeNoMinimize, m.windows.Minimize)
	}
	return types.Outcome{Op: types.OpMenu}
}

// onActive applies op to the focused window, or reports that there is none
func (m *MenuBar) onActive(op types.Op, notice string, fn func(string) types.Outcome) types.Outcome {
	active := m.windows.ActiveAppID()
	if active == "" {
		return types.Outcome{Op: op, Notices: []types.Notice{types.Warn(notice)}}
	}
	return fn(active)
}

// View renders the menu bar against a desktop snapshot
func (m *MenuBar) View(snap types.Snapshot) MenuBarView {
	open := m.Open()
	title := DefaultTitle
	if snap.ActiveAppID != nil && m.names != nil {
		title = m.names(*snap.ActiveAppID)
	}

	view := MenuBarView{Hidden: snap.AnyFullscreen, Title: title, Menus: make([]MenuView, 0, len(menus))}
	for _, def := range menus {
		view.Menus = append(view.Menus, MenuView{
			ID:    def.id,
			Label: def.label,
			Open:  def.id == open,
			Items: append([]MenuItem(nil), def.items...),
		})
	}
	return view
}

func hasItem(def menuDef, item string) bool {
	for _, it := range def.items {
		if it.ID == item {
			return true
		}
	}
	return false
}
