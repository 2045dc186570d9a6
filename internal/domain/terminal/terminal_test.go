package terminal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

type host struct {
	opened    []string
	closed    []string
	spotlight int
	dark      bool
}

func (h *host) Open(appID string) types.Outcome {
	h.opened = append(h.opened, appID)
	return types.Outcome{Op: types.OpOpen, AppID: appID, Changed: true}
}

func (h *host) Close(appID string) types.Outcome {
	h.closed = append(h.closed, appID)
	return types.Outcome{Op: types.OpClose, AppID: appID, Changed: true}
}

func (h *host) OpenSpotlight() { h.spotlight++ }

func (h *host) ToggleTheme() bool {
	h.dark = !h.dark
	return h.dark
}

func TestOpenTargets(t *testing.T) {
	tests := []struct {
		input string
		appID string
	}{
		{"open projects", "projects"},
		{"OPEN Apple", "experience_apple"},
		{"open fetch", "experience_fetch"},
		{"open   henry-ford", "experience_hf"},
		{"open finder", "finder"},
		{"open notes", "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			h := &host{}
			res := New(h).Exec(tt.input)

			require.NotNil(t, res.Outcome)
			assert.Equal(t, []string{tt.appID}, h.opened)
			assert.Equal(t, LineCommand, res.Lines[0].Kind)
			assert.Equal(t, tt.input, res.Lines[0].Text)
			assert.Len(t, res.Lines, 2)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	h := &host{}
	res := New(h).Exec("sudo rm -rf /")

	require.Len(t, res.Lines, 3)
	assert.Equal(t, "command not found: sudo rm -rf /", res.Lines[1].Text)
	assert.Equal(t, "Type help for available commands.", res.Lines[2].Text)
	assert.Nil(t, res.Outcome)

	res = New(h).Exec("open mars")
	assert.Equal(t, "command not found: open mars", res.Lines[1].Text)
	assert.Empty(t, h.opened)
}

func TestBuiltins(t *testing.T) {
	h := &host{}
	term := New(h)

	res := term.Exec("help")
	assert.Len(t, res.Lines, 1+len(helpLines))

	term.Exec("Spotlight")
	assert.Equal(t, 1, h.spotlight)

	term.Exec("theme")
	assert.True(t, h.dark)

	res = term.Exec("whoami")
	assert.Equal(t, "Aadi Shiv Malhotra · iOS Engineer", res.Lines[1].Text)

	res = term.Exec("exit")
	require.NotNil(t, res.Outcome)
	assert.Equal(t, []string{AppID}, h.closed)
}

func TestHistory(t *testing.T) {
	term := New(&host{})
	assert.Equal(t, Intro(), term.History())

	assert.Equal(t, Result{}, term.Exec("   "))
	assert.Len(t, term.History(), len(Intro()))

	term.Exec("whoami")
	assert.Len(t, term.History(), len(Intro())+2)

	res := term.Exec("clear")
	assert.True(t, res.Cleared)
	assert.Empty(t, term.History())
}

func TestHistoryBounded(t *testing.T) {
	term := New(&host{})
	for i := 0; i < MaxHistory; i++ {
		term.Exec(fmt.Sprintf("cmd-%d", i))
	}

	history := term.History()
	assert.Len(t, history, MaxHistory)
	assert.Equal(t, "Type help for available commands.", history[len(history)-1].Text)
}

func TestResultNotices(t *testing.T) {
	res := New(&host{}).Exec("theme")
	notices := res.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, "Display theme toggled via Terminal.", notices[0].Message)
}
