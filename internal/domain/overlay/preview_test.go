package overlay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

func fetchMedia() []types.MediaAsset {
	return []types.MediaAsset{
		{Src: "/images/fetch/fetch_web_1.PNG", Kind: types.MediaImage, ShortCaption: "Fetch Home Screen"},
		{Src: "/images/fetch/fetch_web_2.PNG", Kind: types.MediaImage, ShortCaption: "Search"},
		{Src: "/videos/fetch/demo.mp4", Kind: types.MediaVideo, ShortCaption: "App Intents Demo"},
		{Src: "/images/fetch/fetch_web_4.PNG", Kind: types.MediaImage, ShortCaption: "Shortcuts Integration"},
	}
}

func TestPreviewWraparound(t *testing.T) {
	assets := fetchMedia()
	n := len(assets)

	for start := 0; start < n; start++ {
		p := NewPreview()
		require.True(t, p.Open(assets, start))
		assert.Equal(t, (start+1)%n, p.Next())

		p = NewPreview()
		p.Open(assets, start)
		assert.Equal(t, (start-1+n)%n, p.Prev())
	}
}

func TestPreviewSingleAsset(t *testing.T) {
	p := NewPreview()
	p.Open(fetchMedia()[:1], 0)
	assert.Equal(t, 0, p.Next())
	assert.Equal(t, 0, p.Prev())
}

func TestPreviewOpenClamps(t *testing.T) {
	p := NewPreview()
	p.Open(fetchMedia(), 99)
	assert.Equal(t, 3, p.View().Index)

	p.Open(fetchMedia(), -4)
	assert.Equal(t, 0, p.View().Index)

	assert.False(t, NewPreview().Open(nil, 0))
}

func TestPreviewCloseForgetsState(t *testing.T) {
	p := NewPreview()
	p.Open(fetchMedia(), 2)
	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "App Intents Demo", cur.ShortCaption)

	assert.True(t, p.Close())
	assert.False(t, p.IsOpen())
	assert.Equal(t, types.PreviewView{}, p.View())
	assert.Equal(t, 0, p.Next())
	assert.False(t, p.Close())

	p.Open(fetchMedia(), 0)
	assert.Equal(t, 0, p.View().Index)
}

func TestPreviewCopiesAssets(t *testing.T) {
	assets := fetchMedia()
	p := NewPreview()
	p.Open(assets, 0)
	assets[0].Src = "mutated"

	cur, _ := p.Current()
	assert.Equal(t, "/images/fetch/fetch_web_1.PNG", cur.Src)
}

func TestMediaClassifier(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "shot.png"),
		[]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o644))

	c := NewMediaClassifier(root)
	got := c.Classify([]types.MediaAsset{
		{Src: "/images/shot.png"},
		{Src: "/notes.txt"},
		{Src: "/missing.jpg"},
		{Src: "/videos/demo.mp4", Kind: types.MediaVideo},
		{Src: "https://example.com/a.png"},
		{Src: "../../etc/passwd"},
	})

	assert.Equal(t, types.MediaImage, got[0].Kind)
	assert.Equal(t, types.MediaUnknown, got[1].Kind)
	assert.Equal(t, types.MediaUnknown, got[2].Kind)
	assert.Equal(t, types.MediaVideo, got[3].Kind)
	assert.Equal(t, types.MediaUnknown, got[4].Kind)
	assert.Equal(t, types.MediaUnknown, got[5].Kind)
}
