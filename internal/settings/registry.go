package settings

import (
	"strings"
)

// Registry maps setting names to descriptors and owning-type names to the set
// of descriptors that apply to objects of that type. Registration happens
// during single-threaded startup; the registry is read-only afterwards, so no
// locking is done here.
type Registry struct {
	byName map[string]*Descriptor
	byType map[string][]*Descriptor
}

// NewRegistry creates an empty descriptor registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Descriptor),
		byType: make(map[string][]*Descriptor),
	}
}

// RegisterSettings assigns moduleID to each descriptor and upserts it into
// the by-name mapping. Names compare case-insensitively; the last
// registration for a name wins.
func (r *Registry) RegisterSettings(descriptors []*Descriptor, moduleID string) error {
	if descriptors == nil {
		return ErrDescriptorsNil
	}

	for _, d := range descriptors {
		d.ModuleID = moduleID
		r.byName[strings.ToLower(d.Name)] = d
	}

	return nil
}

// RegisterSettingsForType merges descriptors with any set already registered
// for typeName, deduplicated by name, and replaces the per-type mapping.
func (r *Registry) RegisterSettingsForType(descriptors []*Descriptor, typeName string) error {
	if descriptors == nil {
		return ErrDescriptorsNil
	}

	merged := make([]*Descriptor, 0, len(r.byType[typeName])+len(descriptors))
	seen := make(map[string]struct{})

	for _, d := range append(r.byType[typeName], descriptors...) {
		key := strings.ToLower(d.Name)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		merged = append(merged, d)
	}

	r.byType[typeName] = merged

	return nil
}

// SettingsForType returns the descriptors registered for typeName, or an
// empty slice when none are registered.
func (r *Registry) SettingsForType(typeName string) []*Descriptor {
	return r.byType[typeName]
}

// SettingsForTypes unions the descriptors registered for each given type.
func (r *Registry) SettingsForTypes(typeNames []string) []*Descriptor {
	var out []*Descriptor

	for _, typeName := range typeNames {
		out = append(out, r.byType[typeName]...)
	}

	return out
}

// AllRegisteredSettings returns a snapshot of every registered descriptor.
func (r *Registry) AllRegisteredSettings() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.byName))

	for _, d := range r.byName {
		out = append(out, d)
	}

	return out
}

// Lookup resolves a setting name to its descriptor. The second return value
// reports whether the name is registered.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.byName[strings.ToLower(name)]

	return d, ok
}
