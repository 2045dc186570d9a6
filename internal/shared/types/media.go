package types

// MediaKind classifies a preview asset
type MediaKind string

const (
	MediaImage   MediaKind = "image"
	MediaVideo   MediaKind = "video"
	MediaUnknown MediaKind = "unknown"
)

// MediaAsset is one entry of the media preview lightbox
type MediaAsset struct {
	Src          string    `json:"src" binding:"required"`
	Kind         MediaKind `json:"type,omitempty"`
	Orientation  string    `json:"orientation,omitempty"`
	ShortCaption string    `json:"short_caption,omitempty"`
	LongCaption  string    `json:"long_caption,omitempty"`
}

// PreviewView is the render model of the media preview
type PreviewView struct {
	Open   bool         `json:"open"`
	Assets []MediaAsset `json:"assets,omitempty"`
	Index  int          `json:"index"`
}
