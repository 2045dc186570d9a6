package overlay

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// EntryKind distinguishes apps from commands
type EntryKind string

const (
	EntryApp     EntryKind = "app"
	EntryCommand EntryKind = "command"
)

// Spotlight commands
const (
	CommandToggleTheme    = "toggle-theme"
	CommandMinimizeActive = "minimize-active"
	CommandCloseActive    = "close-active"
	CommandResetDesktop   = "reset-desktop"
)

// Entry is one launchable spotlight result
type Entry struct {
	ID          string    `json:"id"`
	Kind        EntryKind `json:"kind"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Icon        string    `json:"icon,omitempty"`
}

// Launcher runs a selected entry
type Launcher interface {
	Open(appID string) types.Outcome
	Run(command string) types.Outcome
}

// Commands returns the fixed command entries
func Commands() []Entry {
	return []Entry{
		{ID: CommandToggleTheme, Kind: EntryCommand, Label: "Toggle Appearance", Description: "Switch between light and dark mode", Category: "command"},
		{ID: CommandMinimizeActive, Kind: EntryCommand, Label: "Minimize Window", Description: "Minimize the active window", Category: "command"},
		{ID: CommandCloseActive, Kind: EntryCommand, Label: "Close Window", Description: "Close the active window", Category: "command"},
		{ID: CommandResetDesktop, Kind: EntryCommand, Label: "Reset Desktop", Description: "Close everything and start fresh", Category: "command"},
	}
}

// Entries builds the spotlight index: every non-external app, then the commands
func Entries(apps []types.Descriptor) []Entry {
	entries := make([]Entry, 0, len(apps)+4)
	for _, d := range apps {
		if d.IsExternal() {
			continue
		}
		entries = append(entries, Entry{
			ID:          d.ID,
			Kind:        EntryApp,
			Label:       d.Name,
			Description: d.Description,
			Category:    d.Category,
			Icon:        d.Icon,
		})
	}
	return append(entries, Commands()...)
}

// Filter returns the entries whose label, description or category contains
// query under Unicode case folding. An empty query returns all entries.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return append([]Entry(nil), entries...)
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(fold.String(e.Label), needle) ||
			strings.Contains(fold.String(e.Description), needle) ||
			strings.Contains(fold.String(e.Category), needle) {
			out = append(out, e)
		}
	}
	return out
}

// SpotlightView is the render model of the spotlight overlay
type SpotlightView struct {
	Open    bool    `json:"open"`
	Query   string  `json:"query"`
	Results []Entry `json:"results"`
}

// Spotlight is the search-and-launch overlay
type Spotlight struct {
	mu       sync.Mutex
	open     bool   // Protected by mu
	query    string // Protected by mu
	entries  []Entry
	launcher Launcher
}

// NewSpotlight creates a spotlight over a fixed index
func NewSpotlight(entries []Entry, launcher Launcher) *Spotlight {
	return &Spotlight{entries: entries, launcher: launcher}
}

// Open shows the overlay with an empty query
func (s *Spotlight) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		s.open = true
		s.query = ""
	}
}

// Close hides the overlay and forgets the query. Returns whether it was open.
func (s *Spotlight) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasOpen := s.open
	s.open = false
	s.query = ""
	return wasOpen
}

// IsOpen reports whether the overlay is shown
func (s *Spotlight) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// SetQuery replaces the query and returns the filtered results
func (s *Spotlight) SetQuery(query string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	return Filter(s.entries, query)
}

// Results returns the entries matching the current query
func (s *Spotlight) Results() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Filter(s.entries, s.query)
}

// Activate launches the i-th filtered result and closes the overlay.
// It reports false when the overlay is closed or i is out of range.
func (s *Spotlight) Activate(i int) (types.Outcome, bool) {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return types.Outcome{Op: types.OpSpotlight}, false
	}
	results := Filter(s.entries, s.query)
	if i < 0 || i >= len(results) {
		s.mu.Unlock()
		return types.Outcome{Op: types.OpSpotlight}, false
	}
	entry := results[i]
	s.open = false
	s.query = ""
	s.mu.Unlock()

	if entry.Kind == EntryCommand {
		return s.launcher.Run(entry.ID), true
	}
	return s.launcher.Open(entry.ID), true
}

// Enter activates the first filtered result
func (s *Spotlight) Enter() (types.Outcome, bool) {
	return s.Activate(0)
}

// View renders the overlay
func (s *Spotlight) View() SpotlightView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return SpotlightView{}
	}
	return SpotlightView{Open: true, Query: s.query, Results: Filter(s.entries, s.query)}
}
