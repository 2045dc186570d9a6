package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

func TestDefaultResolve(t *testing.T) {
	reg := Default()

	tests := []struct {
		id       string
		found    bool
		size     types.Size
		external bool
	}{
		{"projects", true, types.Size{Width: 800, Height: 600}, false},
		{"experience_fetch", true, types.Size{Width: 650, Height: 550}, false},
		{"contact", true, types.Size{Width: 500, Height: 350}, false},
		{"about", true, types.Size{Width: 400, Height: 300}, false},
		{"github", true, types.DefaultWindowSize, true},
		{"nope", false, types.Size{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d, ok := reg.Resolve(tt.id)
			assert.Equal(t, tt.found, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.size, d.InitialSize())
			assert.Equal(t, tt.external, d.IsExternal())
		})
	}
}

func TestDockItems(t *testing.T) {
	items := Default().DockItems()

	var ids []string
	sepIndex := -1
	for i, item := range items {
		if item.Separator {
			sepIndex = i
			continue
		}
		ids = append(ids, item.AppID)
	}

	assert.Equal(t, []string{
		"projects", "experience_apple", "experience_fetch", "experience_hf", "contact",
		"github", "linkedin",
	}, ids)
	assert.Equal(t, 5, sepIndex)
	assert.True(t, items[6].External)
}

func TestDockItemsReturnsCopy(t *testing.T) {
	reg := Default()
	items := reg.DockItems()
	items[0].AppID = "mutated"

	assert.Equal(t, "projects", reg.DockItems()[0].AppID)
}

func TestNewOverridesKeepOrder(t *testing.T) {
	override := types.Descriptor{
		ID:          "projects",
		Name:        "My Projects",
		Kind:        types.KindProjects,
		DefaultSize: types.Size{Width: 900, Height: 700},
	}

	reg, err := New(append(Builtin(), override)...)
	require.NoError(t, err)

	d, ok := reg.Resolve("projects")
	require.True(t, ok)
	assert.Equal(t, "My Projects", d.Name)
	assert.Equal(t, "projects", reg.List(nil)[0].ID)
	assert.Equal(t, len(Builtin()), reg.Len())
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		desc types.Descriptor
	}{
		{"missing id", types.Descriptor{Name: "x", Kind: types.KindAbout}},
		{"bad id", types.Descriptor{ID: "a b", Name: "x", Kind: types.KindAbout}},
		{"missing name", types.Descriptor{ID: "x", Kind: types.KindAbout}},
		{"unknown kind", types.Descriptor{ID: "x", Name: "x", Kind: "widget"}},
		{"external without url", types.Descriptor{ID: "x", Name: "x", Kind: types.KindExternal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.desc)
			assert.Error(t, err)
		})
	}
}

func TestListByCategory(t *testing.T) {
	reg := Default()
	category := "experience"

	apps := reg.List(&category)
	require.Len(t, apps, 3)
	for _, d := range apps {
		assert.Equal(t, types.KindExperience, d.Kind)
	}
}

func TestLaunchableExcludesExternal(t *testing.T) {
	for _, d := range Default().Launchable() {
		assert.False(t, d.IsExternal(), d.ID)
	}
}

func TestName(t *testing.T) {
	reg := Default()
	assert.Equal(t, "Contact Me", reg.Name("contact"))
	assert.Equal(t, "ghost", reg.Name("ghost"))
}
