package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// AssetPath is a registered namespace: a root plus per-type subdirectories.
type AssetPath struct {
	Key  string
	Root string
	Dirs map[AssetType]string
}

// Dir returns the subdirectory used for the given type.
func (p AssetPath) Dir(t AssetType) string {
	return p.Dirs[t]
}

// Remote reports whether the root points at another host.
func (p AssetPath) Remote() bool {
	return IsRemote(p.Root)
}

// IsRemote reports whether a path or root refers to a remote location.
func IsRemote(p string) bool {
	return strings.Contains(p, "//")
}

// PathRegistry maps namespace keys to asset roots.
type PathRegistry struct {
	paths       map[string]AssetPath
	defaultDirs map[AssetType]string
	active      string
}

// NewPathRegistry creates a registry holding only the default namespace.
func NewPathRegistry() *PathRegistry {
	r := &PathRegistry{
		paths:       make(map[string]AssetPath),
		defaultDirs: DefaultDirs(),
		active:      DefaultPathKey,
	}
	r.RegisterPath(DefaultPathKey, DefaultAssetRoot, nil)
	return r
}

// SetDefaultDirs replaces the subdirectories used for registrations that omit them.
// Already registered paths keep their directories.
func (r *PathRegistry) SetDefaultDirs(dirs map[AssetType]string) {
	for t, dir := range dirs {
		r.defaultDirs[t] = dir
	}
}

// RegisterPath adds or overwrites the namespace key.
// Types missing from dirs fall back to the default subdirectories.
func (r *PathRegistry) RegisterPath(key, root string, dirs map[AssetType]string) {
	resolved := maps.Clone(r.defaultDirs)
	for t, dir := range dirs {
		resolved[t] = dir
	}
	r.paths[key] = AssetPath{Key: key, Root: root, Dirs: resolved}
}

// Resolve returns the namespace registered under key.
func (r *PathRegistry) Resolve(key string) (AssetPath, error) {
	p, ok := r.paths[key]
	if !ok {
		return AssetPath{}, zerr.With(ErrUnknownNamespace, "namespace", key)
	}
	return p, nil
}

// SetActive changes the namespace used to qualify bare patterns.
func (r *PathRegistry) SetActive(key string) error {
	if _, ok := r.paths[key]; !ok {
		return zerr.With(ErrUnknownNamespace, "namespace", key)
	}
	r.active = key
	return nil
}

// Active returns the key used to qualify bare patterns.
func (r *PathRegistry) Active() string {
	return r.active
}

// Keys returns the registered namespace keys, sorted.
func (r *PathRegistry) Keys() []string {
	return slices.Sorted(maps.Keys(r.paths))
}

// Qualify prefixes a bare pattern with the active namespace.
func (r *PathRegistry) Qualify(pattern string) string {
	if strings.Contains(pattern, NamespaceSeparator) {
		return pattern
	}
	return r.active + NamespaceSeparator + pattern
}

// Split breaks a pattern into its namespace key and remainder.
// Bare patterns are qualified with the active namespace first.
func (r *PathRegistry) Split(pattern string) (key, rest string) {
	key, rest, _ = strings.Cut(r.Qualify(pattern), NamespaceSeparator)
	return key, rest
}
