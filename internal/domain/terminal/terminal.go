// Package terminal implements the command interpreter behind the Terminal app.
package terminal

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// AppID is the catalogue id of the terminal window
const AppID = "terminal"

// MaxHistory bounds the scrollback
const MaxHistory = 500

// LineKind distinguishes echoed commands from output
type LineKind string

const (
	LineCommand LineKind = "command"
	LineOutput  LineKind = "output"
)

// Line is one scrollback line
type Line struct {
	Kind LineKind `json:"type"`
	Text string   `json:"text"`
}

// Host is what terminal commands act on
type Host interface {
	Open(appID string) types.Outcome
	Close(appID string) types.Outcome
	OpenSpotlight()
	ToggleTheme() bool
}

// Result is what one command produced
type Result struct {
	Lines   []Line         `json:"lines"`
	Cleared bool           `json:"cleared,omitempty"`
	Outcome *types.Outcome `json:"outcome,omitempty"`
}

type target struct {
	appID   string
	message string
}

var targets = map[string]target{
	"projects":     {"projects", "Opening Projects…"},
	"apple":        {"experience_apple", "Spinning up Shortcuts engineering notes."},
	"fetch":        {"experience_fetch", "Loading Fetch internship retrospectives."},
	"fetch-intern": {"experience_fetch", "Loading Fetch internship retrospectives."},
	"henry-ford":   {"experience_hf", "Booting CrossWalk Buddy lab notebook."},
	"finder":       {"finder", "Finder relaunch initiated."},
	"notes":        {"notes", "Opening your scratchpad."},
	"contact":      {"contact", "Opening contact card."},
	"about":        {"about", "About This Portfolio."},
}

var helpLines = []string{
	"open projects           → Launch the Projects window",
	"open apple              → Open Apple internship window",
	"open fetch              → Revisit Fetch internship notes",
	"open henry-ford         → Explore CrossWalk Buddy research",
	"open finder             → Return to Finder overview",
	"open notes              → Jot something down",
	"open contact            → Get in touch",
	"open about              → About this portfolio",
	"whoami                  → Who built this",
	"spotlight               → Toggle Spotlight overlay",
	"theme                   → Toggle appearance",
	"clear                   → Clear your terminal history",
	"exit                    → Close the terminal window",
}

// Intro is the scrollback a fresh terminal starts with
func Intro() []Line {
	return []Line{
		{LineCommand, "whoami"},
		{LineOutput, "Aadi Shiv Malhotra · iOS Engineer"},
		{LineCommand, "ls ./experiences"},
		{LineOutput, "apple  fetch  henry-ford"},
		{LineOutput, "Type help to discover hidden commands."},
	}
}

// Terminal is a stateful command interpreter with scrollback
type Terminal struct {
	mu      sync.Mutex
	history []Line // Protected by mu
	host    Host
}

// New creates a terminal with the intro scrollback
func New(host Host) *Terminal {
	return &Terminal{history: Intro(), host: host}
}

// Exec runs one input line. Blank input is ignored.
func (t *Terminal) Exec(input string) Result {
	command := strings.TrimSpace(input)
	if command == "" {
		return Result{}
	}

	res := t.run(command)

	t.mu.Lock()
	defer t.mu.Unlock()
	if res.Cleared {
		t.history = nil
		return res
	}
	t.history = append(t.history, res.Lines...)
	if over := len(t.history) - MaxHistory; over > 0 {
		t.history = append([]Line(nil), t.history[over:]...)
	}
	return res
}

func (t *Terminal) run(command string) Result {
	echo := Line{LineCommand, command}
	key := strings.Join(strings.Fields(strings.ToLower(command)), " ")

	switch key {
	case "clear":
		return Result{Cleared: true}

	case "exit":
		out := t.host.Close(AppID)
		return Result{Lines: []Line{echo}, Outcome: &out}

	case "help":
		lines := []Line{echo}
		for _, l := range helpLines {
			lines = append(lines, Line{LineOutput, l})
		}
		return Result{Lines: lines}

	case "whoami":
		return Result{Lines: []Line{echo, {LineOutput, "Aadi Shiv Malhotra · iOS Engineer"}}}

	case "spotlight":
		t.host.OpenSpotlight()
		return Result{Lines: []Line{echo, {LineOutput, "Spotlight engaged. Search everything."}}}

	case "theme":
		t.host.ToggleTheme()
		return Result{Lines: []Line{echo, {LineOutput, "Display theme toggled via Terminal."}}}
	}

	if name, ok := strings.CutPrefix(key, "open "); ok {
		if tgt, ok := targets[name]; ok {
			out := t.host.Open(tgt.appID)
			return Result{Lines: []Line{echo, {LineOutput, tgt.message}}, Outcome: &out}
		}
	}

	return Result{Lines: []Line{
		echo,
		{LineOutput, fmt.Sprintf("command not found: %s", command)},
		{LineOutput, "Type help for available commands."},
	}}
}

// History returns a copy of the scrollback
func (t *Terminal) History() []Line {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Line(nil), t.history...)
}

// Notices converts output lines to notices for event streams
func (r Result) Notices() []types.Notice {
	var notices []types.Notice
	for _, l := range r.Lines {
		if l.Kind == LineOutput {
			notices = append(notices, types.Info(l.Text))
		}
	}
	return notices
}
