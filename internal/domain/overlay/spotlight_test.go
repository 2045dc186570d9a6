package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadishiv23/aadios/internal/domain/registry"
	"github.com/aadishiv23/aadios/internal/shared/types"
)

type launcher struct {
	opened []string
	ran    []string
}

func (l *launcher) Open(appID string) types.Outcome {
	l.opened = append(l.opened, appID)
	return types.Outcome{Op: types.OpOpen, AppID: appID, Changed: true}
}

func (l *launcher) Run(command string) types.Outcome {
	l.ran = append(l.ran, command)
	return types.Outcome{Op: types.OpSpotlight, Changed: true}
}

func testEntries() []Entry {
	return Entries(registry.Default().List(nil))
}

func TestEntriesExcludeExternal(t *testing.T) {
	entries := testEntries()
	ids := map[string]bool{}
	for _, e := range entries {
		ids[e.ID] = true
	}

	assert.True(t, ids["projects"])
	assert.True(t, ids["terminal"])
	assert.True(t, ids[CommandToggleTheme])
	assert.True(t, ids[CommandResetDesktop])
	assert.False(t, ids["github"])
	assert.False(t, ids["linkedin"])
}

func TestFilterMatchesExactly(t *testing.T) {
	entries := testEntries()
	queries := []string{"proj", "PROJ", "experience", "Fetch", "window", "zzz", "e", "notes ", "  notes  ", "   "}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			got := Filter(entries, q)
			needle := strings.ToLower(q)

			matches := func(e Entry) bool {
				return strings.Contains(strings.ToLower(e.Label), needle) ||
					strings.Contains(strings.ToLower(e.Description), needle) ||
					strings.Contains(strings.ToLower(e.Category), needle)
			}

			inResult := map[string]bool{}
			for _, e := range got {
				assert.True(t, matches(e), "%s should not match %q", e.ID, q)
				inResult[e.ID] = true
			}
			for _, e := range entries {
				if matches(e) {
					assert.True(t, inResult[e.ID], "%s missing for %q", e.ID, q)
				}
			}
		})
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	entries := testEntries()
	assert.Equal(t, entries, Filter(entries, ""))
}

func TestFilterKeepsWhitespace(t *testing.T) {
	entries := []Entry{
		{ID: "notes", Label: "Notes", Description: "Scratchpad"},
		{ID: "notes-app", Label: "Notes app"},
	}

	got := Filter(entries, "notes ")
	require.Len(t, got, 1)
	assert.Equal(t, "notes-app", got[0].ID)

	assert.Empty(t, Filter(entries, " notes"))
	assert.Empty(t, Filter(entries, "   "))
}

func TestFilterUnicodeFolding(t *testing.T) {
	entries := []Entry{{ID: "strasse", Label: "Straße"}, {ID: "cafe", Label: "CAFÉ"}}

	got := Filter(entries, "café")
	require.Len(t, got, 1)
	assert.Equal(t, "cafe", got[0].ID)
}

func TestSpotlightEnterLaunchesFirstResult(t *testing.T) {
	l := &launcher{}
	s := NewSpotlight(testEntries(), l)

	s.Open()
	results := s.SetQuery("contact")
	require.NotEmpty(t, results)

	out, ok := s.Enter()
	require.True(t, ok)
	assert.True(t, out.Changed)
	assert.Equal(t, []string{results[0].ID}, l.opened)
	assert.False(t, s.IsOpen())
	assert.Equal(t, SpotlightView{}, s.View())
}

func TestSpotlightActivateCommand(t *testing.T) {
	l := &launcher{}
	s := NewSpotlight(testEntries(), l)
	s.Open()
	s.SetQuery("appearance")

	_, ok := s.Activate(0)
	require.True(t, ok)
	assert.Equal(t, []string{CommandToggleTheme}, l.ran)
	assert.Empty(t, l.opened)
}

func TestSpotlightActivateIgnored(t *testing.T) {
	l := &launcher{}
	s := NewSpotlight(testEntries(), l)

	_, ok := s.Enter()
	assert.False(t, ok, "closed overlay")

	s.Open()
	s.SetQuery("zzz-no-match")
	_, ok = s.Enter()
	assert.False(t, ok, "no results")
	_, ok = s.Activate(-1)
	assert.False(t, ok)
	assert.True(t, s.IsOpen())

	assert.Empty(t, l.opened)
	assert.Empty(t, l.ran)
}

func TestSpotlightOpenCloseResetsQuery(t *testing.T) {
	s := NewSpotlight(testEntries(), &launcher{})
	s.Open()
	s.SetQuery("proj")
	assert.Equal(t, "proj", s.View().Query)

	assert.True(t, s.Close())
	assert.False(t, s.Close())

	s.Open()
	view := s.View()
	assert.True(t, view.Open)
	assert.Empty(t, view.Query)
	assert.Len(t, view.Results, len(testEntries()))
}
