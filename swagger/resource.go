package swagger

import (
	"maps"
	"slices"
)

// ResourceOptions seeds a resource on creation or lookup.
type ResourceOptions struct {
	// Models are merged into the resource's models, replacing entries of
	// the same name.
	Models map[string]*Model

	// Description is used only when the resource is created.
	Description string

	// ScopeResolver overrides Config.ScopeResolver for this resource.
	// Used only when the resource is created.
	ScopeResolver ScopeResolver
}

// Resource groups the documented paths sharing one discovery sub-document.
type Resource struct {
	path        string
	description string
	resolver    ScopeResolver

	models   map[string]*Model
	apis     map[string]*API
	apiOrder []string
}

func newResource(path string, opts ResourceOptions) *Resource {
	res := &Resource{
		path:        path,
		description: opts.Description,
		resolver:    opts.ScopeResolver,
		models:      make(map[string]*Model),
		apis:        make(map[string]*API),
	}
	res.mergeModels(opts.Models)
	return res
}

// Path returns the discovery path of the resource, e.g. "/swagger/pets".
func (res *Resource) Path() string { return res.path }

// Description returns the resource description.
func (res *Resource) Description() string { return res.description }

// Model returns the named model.
func (res *Resource) Model(name string) (*Model, bool) {
	m, ok := res.models[name]
	return m, ok
}

// ModelNames returns the names of all models, sorted.
func (res *Resource) ModelNames() []string {
	return slices.Sorted(maps.Keys(res.models))
}

// API returns the entry for a rendered ("{name}" style) path.
func (res *Resource) API(path string) (*API, bool) {
	api, ok := res.apis[path]
	return api, ok
}

// APIs returns the path entries in registration order.
func (res *Resource) APIs() []*API {
	out := make([]*API, 0, len(res.apiOrder))
	for _, p := range res.apiOrder {
		out = append(out, res.apis[p])
	}
	return out
}

// getOrCreateAPI returns the entry for path, creating it on first use.
func (res *Resource) getOrCreateAPI(path string) *API {
	if api, ok := res.apis[path]; ok {
		return api
	}
	api := &API{Path: path}
	res.apis[path] = api
	res.apiOrder = append(res.apiOrder, path)
	return api
}

func (res *Resource) mergeModels(models map[string]*Model) {
	for name, m := range models {
		if m == nil {
			continue
		}
		if m.ID == "" {
			cp := *m
			cp.ID = name
			m = &cp
		}
		res.models[name] = m
	}
}

// extractSubtypes hoists every placeholder property of m into a model of
// its own and replaces it with a reference to that model. Hoisted models
// are extracted in turn. A model name that already exists is reused, not
// redefined. Running it on an extracted model changes nothing.
func (res *Resource) extractSubtypes(m *Model) {
	for _, key := range slices.Sorted(maps.Keys(m.Properties)) {
		p := m.Properties[key]
		if p == nil || !p.IsPlaceholder() {
			continue
		}

		name := subtypeName(key)
		if _, exists := res.models[name]; !exists {
			sub := &Model{ID: name, Properties: p.nested}
			// Registered before descending, so a name is expanded once.
			res.models[name] = sub
			res.extractSubtypes(sub)
		}
		m.Properties[key] = &Property{Type: name}
	}
}

// subtypeClash returns the dotted field that extractSubtypes would hoist
// into a model called name. Fields below an existing model are not
// extracted and are not checked.
func (res *Resource) subtypeClash(props map[string]*Property, name string) (string, bool) {
	for _, key := range slices.Sorted(maps.Keys(props)) {
		p := props[key]
		if p == nil || !p.IsPlaceholder() {
			continue
		}
		sub := subtypeName(key)
		if sub == name {
			return key, true
		}
		if _, exists := res.models[sub]; exists {
			continue
		}
		if field, ok := res.subtypeClash(p.nested, name); ok {
			return key + "." + field, true
		}
	}
	return "", false
}

// visibleModels returns the models named in roots, closed over property
// references.
func (res *Resource) visibleModels(roots []string) map[string]*Model {
	out := make(map[string]*Model)
	queue := slices.Clone(roots)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, seen := out[name]; seen {
			continue
		}
		m, ok := res.models[name]
		if !ok {
			continue
		}
		out[name] = m
		for _, p := range m.Properties {
			if p != nil {
				queue = append(queue, p.references()...)
			}
		}
	}
	return out
}
