package overlay

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// MediaClassifier fills in the kind of preview assets by sniffing the files
// under a media root
type MediaClassifier struct {
	root string
}

// NewMediaClassifier creates a classifier. An empty root disables sniffing.
func NewMediaClassifier(root string) *MediaClassifier {
	return &MediaClassifier{root: root}
}

// Classify returns assets with Kind set. Declared kinds are kept.
func (c *MediaClassifier) Classify(assets []types.MediaAsset) []types.MediaAsset {
	out := make([]types.MediaAsset, len(assets))
	for i, a := range assets {
		if a.Kind != types.MediaImage && a.Kind != types.MediaVideo {
			a.Kind = c.detect(a.Src)
		}
		out[i] = a
	}
	return out
}

func (c *MediaClassifier) detect(src string) types.MediaKind {
	path, ok := c.resolve(src)
	if !ok {
		return types.MediaUnknown
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return types.MediaUnknown
	}
	return kindOf(mtype)
}

// resolve maps an asset URL path onto the media root without escaping it
func (c *MediaClassifier) resolve(src string) (string, bool) {
	if c.root == "" || src == "" || strings.Contains(src, "://") {
		return "", false
	}
	rel := filepath.Clean("/" + filepath.FromSlash(src))
	return filepath.Join(c.root, rel), true
}

func kindOf(mtype *mimetype.MIME) types.MediaKind {
	for m := mtype; m != nil; m = m.Parent() {
		switch {
		case strings.HasPrefix(m.String(), "image/"):
			return types.MediaImage
		case strings.HasPrefix(m.String(), "video/"):
			return types.MediaVideo
		}
	}
	return types.MediaUnknown
}
