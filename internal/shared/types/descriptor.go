package types

// ContentKind selects the renderer mounted inside a window
type ContentKind string

const (
	KindProjects   ContentKind = "projects"
	KindExperience ContentKind = "experience"
	KindContact    ContentKind = "contact"
	KindTerminal   ContentKind = "terminal"
	KindNotes      ContentKind = "notes"
	KindFinder     ContentKind = "finder"
	KindAbout      ContentKind = "about"
	KindExternal   ContentKind = "external"
)

// Valid reports whether k is a known content kind
func (k ContentKind) Valid() bool {
	switch k {
	case KindProjects, KindExperience, KindContact, KindTerminal,
		KindNotes, KindFinder, KindAbout, KindExternal:
		return true
	}
	return false
}

// DefaultWindowSize is used when a descriptor declares no default size
var DefaultWindowSize = Size{Width: 600, Height: 400}

// Descriptor is the immutable catalogue entry of an application
type Descriptor struct {
	ID          string      `json:"id" yaml:"id" toml:"id"`
	Name        string      `json:"name" yaml:"name" toml:"name"`
	Description string      `json:"description,omitempty" yaml:"description" toml:"description"`
	Category    string      `json:"category,omitempty" yaml:"category" toml:"category"`
	Kind        ContentKind `json:"content_kind" yaml:"content_kind" toml:"content_kind"`
	DefaultSize Size        `json:"default_size" yaml:"default_size" toml:"default_size"`
	ExternalURL string      `json:"external_url,omitempty" yaml:"external_url" toml:"external_url"`

	// Display metadata
	Icon          string `json:"icon,omitempty" yaml:"icon" toml:"icon"`
	Color         string `json:"color,omitempty" yaml:"color" toml:"color"`
	DarkColor     string `json:"dark_color,omitempty" yaml:"dark_color" toml:"dark_color"`
	TextColor     string `json:"text_color,omitempty" yaml:"text_color" toml:"text_color"`
	DarkTextColor string `json:"dark_text_color,omitempty" yaml:"dark_text_color" toml:"dark_text_color"`

	// Dock slot, 1-based. Zero keeps the app out of the dock.
	Dock int `json:"dock,omitempty" yaml:"dock" toml:"dock"`

	Props ContentProps `json:"props,omitempty" yaml:"props" toml:"props"`
}

// IsExternal reports whether opening the app redirects instead of spawning a window
func (d Descriptor) IsExternal() bool {
	return d.ExternalURL != ""
}

// InitialSize returns the size a freshly opened window gets
func (d Descriptor) InitialSize() Size {
	if d.DefaultSize.Width <= 0 || d.DefaultSize.Height <= 0 {
		return DefaultWindowSize
	}
	return d.DefaultSize
}

// ContentProps is the declared input contract of a content renderer.
// Only the fields relevant to the descriptor's Kind are set.
type ContentProps struct {
	// KindExperience
	ExperienceID string `json:"experience_id,omitempty" yaml:"experience_id" toml:"experience_id"`
	// KindProjects
	Featured []string `json:"featured,omitempty" yaml:"featured" toml:"featured"`
	// KindContact
	Email string `json:"email,omitempty" yaml:"email" toml:"email"`
	// KindTerminal
	Prompt string `json:"prompt,omitempty" yaml:"prompt" toml:"prompt"`
	// KindFinder
	Sections []string `json:"sections,omitempty" yaml:"sections" toml:"sections"`
}

// RenderProps are handed to a content renderer together with the descriptor props
type RenderProps struct {
	DarkMode bool         `json:"is_dark_mode"`
	Kind     ContentKind  `json:"content_kind"`
	Props    ContentProps `json:"props"`
}
