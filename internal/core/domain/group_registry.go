package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// AllGroups is the SetOption target that updates every group of a type and the type default.
const AllGroups = "*"

// GroupRegistry is the catalog of groups, kept per asset type in creation order.
// It is not safe for concurrent mutation.
type GroupRegistry struct {
	groups   map[AssetType]map[string]*Group
	order    map[AssetType][]string
	defaults map[AssetType]GroupOptions
}

// NewGroupRegistry creates an empty registry with the documented defaults for each bundled type.
func NewGroupRegistry() *GroupRegistry {
	r := &GroupRegistry{
		groups:   make(map[AssetType]map[string]*Group),
		order:    make(map[AssetType][]string),
		defaults: make(map[AssetType]GroupOptions),
	}
	for _, t := range BundleTypes {
		r.groups[t] = make(map[string]*Group)
		r.defaults[t] = DefaultGroupOptions()
	}
	return r
}

// Defaults returns a copy of the options new groups of type t start from.
func (r *GroupRegistry) Defaults(t AssetType) GroupOptions {
	return r.defaults[t].clone()
}

// SetDefault changes one default option for groups of type t created afterwards.
func (r *GroupRegistry) SetDefault(t AssetType, key string, value any) error {
	if !t.Bundled() {
		return zerr.With(ErrUnknownAssetType, "type", t)
	}
	opts := r.defaults[t]
	if err := applyOption(&opts, key, value); err != nil {
		return err
	}
	r.defaults[t] = opts
	return nil
}

// CreateGroup registers a new group. Options not given take the type defaults.
func (r *GroupRegistry) CreateGroup(t AssetType, name string, opts ...GroupOption) (*Group, error) {
	if !t.Bundled() {
		return nil, zerr.With(ErrUnknownAssetType, "type", t)
	}
	if _, ok := r.groups[t][name]; ok {
		err := zerr.With(ErrGroupAlreadyExists, "group", name)
		return nil, zerr.With(err, "type", t)
	}

	options := r.defaults[t].clone()
	for _, opt := range opts {
		opt(&options)
	}

	g := &Group{Type: t, Name: name, GroupOptions: options}
	r.groups[t][name] = g
	r.order[t] = append(r.order[t], name)
	return g, nil
}

// EnsureGroup returns the named group, creating it with defaults if absent.
func (r *GroupRegistry) EnsureGroup(t AssetType, name string) (*Group, error) {
	if g, ok := r.lookup(t, name); ok {
		return g, nil
	}
	return r.CreateGroup(t, name)
}

// AddFiles appends file references to a group, creating the group if needed.
func (r *GroupRegistry) AddFiles(t AssetType, name string, refs ...FileRef) error {
	g, err := r.EnsureGroup(t, name)
	if err != nil {
		return err
	}
	g.Files = append(g.Files, refs...)
	return nil
}

// SetEnabled toggles groups in bulk. Unknown names are ignored.
func (r *GroupRegistry) SetEnabled(t AssetType, names []string, enabled bool) {
	for _, name := range names {
		if g, ok := r.lookup(t, name); ok {
			g.Enabled = enabled
		}
	}
}

// SetOption sets key on the named groups.
// An empty name targets the global group. AllGroups targets every existing
// group of the type and the default for groups created later.
func (r *GroupRegistry) SetOption(t AssetType, names []string, key string, value any) error {
	if !t.Bundled() {
		return zerr.With(ErrUnknownAssetType, "type", t)
	}
	if len(names) == 0 {
		names = []string{""}
	}

	scratch := r.defaults[t].clone()
	if err := applyOption(&scratch, key, value); err != nil {
		return err
	}

	targets := make([]*Group, 0, len(names))
	all := false
	for _, name := range names {
		switch name {
		case AllGroups:
			all = true
			for _, n := range r.order[t] {
				targets = append(targets, r.groups[t][n])
			}
			continue
		case "":
			name = GlobalGroup
		}

		g, ok := r.lookup(t, name)
		if !ok {
			err := zerr.With(ErrUnknownGroup, "group", name)
			return zerr.With(err, "type", t)
		}
		targets = append(targets, g)
	}

	// Nothing is mutated until every name and the value have been checked.
	if all {
		if err := r.SetDefault(t, key, value); err != nil {
			return err
		}
	}
	for _, g := range targets {
		if err := applyOption(&g.GroupOptions, key, value); err != nil {
			return zerr.With(err, "group", g.Name)
		}
	}
	return nil
}

// AddDependencies unions deps into the named group's dependency set.
func (r *GroupRegistry) AddDependencies(t AssetType, name string, deps ...string) error {
	g, ok := r.lookup(t, name)
	if !ok {
		err := zerr.With(ErrUnknownGroup, "group", name)
		return zerr.With(err, "type", t)
	}
	g.Deps = dedupe(g.Deps, deps)
	return nil
}

// Group returns the named group.
func (r *GroupRegistry) Group(t AssetType, name string) (*Group, error) {
	g, ok := r.lookup(t, name)
	if !ok {
		err := zerr.With(ErrUnknownGroup, "group", name)
		return nil, zerr.With(err, "type", t)
	}
	return g, nil
}

// Exists reports whether the named group is registered.
func (r *GroupRegistry) Exists(t AssetType, name string) bool {
	_, ok := r.lookup(t, name)
	return ok
}

// Names returns the group names of type t in creation order.
func (r *GroupRegistry) Names(t AssetType) []string {
	return slices.Clone(r.order[t])
}

func (r *GroupRegistry) lookup(t AssetType, name string) (*Group, bool) {
	byName, ok := r.groups[t]
	if !ok {
		return nil, false
	}
	g, ok := byName[name]
	return g, ok
}
