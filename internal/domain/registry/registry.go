package registry

import (
	"fmt"
	"sort"

	"github.com/aadishiv23/aadios/internal/shared/types"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// DockItem is one slot of the dock. Separator slots carry no app.
type DockItem struct {
	AppID     string `json:"app_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Icon      string `json:"icon,omitempty"`
	External  bool   `json:"external,omitempty"`
	Separator bool   `json:"separator,omitempty"`
}

// Registry is the immutable application catalogue
type Registry struct {
	apps  map[string]types.Descriptor
	order []string
	dock  []DockItem
}

// New builds a registry. Later descriptors replace earlier ones with the
// same id but keep the original position.
func New(descriptors ...types.Descriptor) (*Registry, error) {
	r := &Registry{apps: make(map[string]types.Descriptor, len(descriptors))}

	for _, d := range descriptors {
		if err := validate(d); err != nil {
			return nil, err
		}
		if _, exists := r.apps[d.ID]; !exists {
			r.order = append(r.order, d.ID)
		}
		r.apps[d.ID] = d
	}

	r.dock = r.buildDock()
	return r, nil
}

// Default returns a registry over the built-in catalogue
func Default() *Registry {
	r, err := New(Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("registry: invalid built-in catalogue: %v", err))
	}
	return r
}

func validate(d types.Descriptor) error {
	if err := utils.ValidateID(d.ID, "app id", true); err != nil {
		return err
	}
	if d.Name == "" {
		return fmt.Errorf("app %s: name is required", d.ID)
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("app %s: unknown content kind %q", d.ID, d.Kind)
	}
	if d.Kind == types.KindExternal && d.ExternalURL == "" {
		return fmt.Errorf("app %s: external app requires external_url", d.ID)
	}
	if d.DefaultSize.Width < 0 || d.DefaultSize.Height < 0 {
		return fmt.Errorf("app %s: negative default size", d.ID)
	}
	return nil
}

// Resolve returns the descriptor for appID
func (r *Registry) Resolve(appID string) (types.Descriptor, bool) {
	d, ok := r.apps[appID]
	return d, ok
}

// Name returns the display name of appID, or the id itself when unknown
func (r *Registry) Name(appID string) string {
	if d, ok := r.apps[appID]; ok {
		return d.Name
	}
	return appID
}

// List returns all descriptors in catalogue order, optionally filtered by category
func (r *Registry) List(category *string) []types.Descriptor {
	out := make([]types.Descriptor, 0, len(r.order))
	for _, id := range r.order {
		d := r.apps[id]
		if category == nil || d.Category == *category {
			out = append(out, d)
		}
	}
	return out
}

// Launchable returns every non-external descriptor in catalogue order
func (r *Registry) Launchable() []types.Descriptor {
	out := make([]types.Descriptor, 0, len(r.order))
	for _, id := range r.order {
		if d := r.apps[id]; !d.IsExternal() {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of registered apps
func (r *Registry) Len() int {
	return len(r.order)
}

// DockItems returns the dock layout
func (r *Registry) DockItems() []DockItem {
	out := make([]DockItem, len(r.dock))
	copy(out, r.dock)
	return out
}

// buildDock orders docked apps by slot and puts a separator in front of the
// first external link that follows a window app.
func (r *Registry) buildDock() []DockItem {
	var docked []types.Descriptor
	for _, id := range r.order {
		if d := r.apps[id]; d.Dock > 0 {
			docked = append(docked, d)
		}
	}
	sort.SliceStable(docked, func(i, j int) bool {
		if docked[i].IsExternal() != docked[j].IsExternal() {
			return !docked[i].IsExternal()
		}
		return docked[i].Dock < docked[j].Dock
	})

	items := make([]DockItem, 0, len(docked)+1)
	for i, d := range docked {
		if d.IsExternal() && i > 0 && !docked[i-1].IsExternal() {
			items = append(items, DockItem{Separator: true})
		}
		items = append(items, DockItem{
			AppID:    d.ID,
			Name:     d.Name,
			Icon:     d.Icon,
			External: d.IsExternal(),
		})
	}
	return items
}
