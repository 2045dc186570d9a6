package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSeederLoadsYAMLAndTOML(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "extra.yaml"), `
apps:
  - id: blog
    name: "<b>Blog</b>"
    description: Writing
    category: portfolio
    content_kind: about
    default_size:
      width: 500
      height: 400
`)
	writeFile(t, filepath.Join(dir, "nested", "links.toml"), `
[[apps]]
id = "twitter"
name = "Twitter"
external_url = "https://example.com/aadi"
dock = 8
`)

	descs, err := NewSeeder(dir, zap.NewNop()).Seed()
	require.NoError(t, err)
	require.Len(t, descs, 2)

	byID := map[string]types.Descriptor{}
	for _, d := range descs {
		byID[d.ID] = d
	}

	blog := byID["blog"]
	assert.Equal(t, "Blog", blog.Name)
	assert.Equal(t, types.Size{Width: 500, Height: 400}, blog.DefaultSize)

	twitter := byID["twitter"]
	assert.Equal(t, types.KindExternal, twitter.Kind)
	assert.True(t, twitter.IsExternal())
	assert.Equal(t, 8, twitter.Dock)
}

func TestSeederSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yml"), "apps: [ {id: ")
	writeFile(t, filepath.Join(dir, "invalid.yaml"), "apps:\n  - id: x\n")
	writeFile(t, filepath.Join(dir, "ok.yaml"), "apps:\n  - id: ok\n    name: OK\n    content_kind: notes\n")
	writeFile(t, filepath.Join(dir, "readme.txt"), "ignored")

	descs, err := NewSeeder(dir, nil).Seed()
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "ok", descs[0].ID)
}

func TestSeederMissingDirectory(t *testing.T) {
	descs, err := NewSeeder(filepath.Join(t.TempDir(), "missing"), nil).Seed()
	assert.NoError(t, err)
	assert.Empty(t, descs)

	descs, err = NewSeeder("", nil).Seed()
	assert.NoError(t, err)
	assert.Empty(t, descs)
}
