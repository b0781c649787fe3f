// Package deps expands requested groups into a dependency-ordered render list.
package deps

import (
	"slices"

	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolve returns the groups of type t to render for the requested names,
// each once, with dependencies placed immediately before their dependents.
// An empty request means every group of the type in creation order.
//
// Groups already rendered in this session are skipped. Disabled groups are
// skipped when requested directly; groups reached as dependencies are enabled.
// Requested names that do not exist are skipped; unknown dependencies fail.
func Resolve(s *domain.Session, t domain.AssetType, requested []string) ([]string, error) {
	if len(requested) == 0 {
		requested = s.Groups.Names(t)
	}

	maxDepth := s.Settings.DepsMaxDepth
	if maxDepth <= 0 {
		maxDepth = domain.DefaultDepsMaxDepth
	}

	r := &resolver{session: s, typ: t, maxDepth: maxDepth}
	names, err := r.resolve(requested, 0)
	if err != nil {
		return nil, err
	}
	return unique(names), nil
}

type resolver struct {
	session  *domain.Session
	typ      domain.AssetType
	maxDepth int
}

func (r *resolver) resolve(names []string, depth int) ([]string, error) {
	if depth > r.maxDepth {
		err := zerr.With(domain.ErrDependencyDepthExceeded, "depth", depth)
		err = zerr.With(err, "groups", slices.Clone(names))
		return nil, zerr.With(err, "type", r.typ)
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		if r.session.State.Rendered(r.typ, name) {
			continue
		}

		g, err := r.session.Groups.Group(r.typ, name)
		if err != nil {
			if depth == 0 {
				continue
			}
			return nil, err
		}

		if !g.Enabled && depth == 0 {
			continue
		}
		g.Enabled = true

		if len(g.Deps) > 0 {
			resolved, err := r.resolve(g.Deps, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved...)
		}
		out = append(out, name)
	}
	return out, nil
}

// unique keeps the first occurrence of each name.
func unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
