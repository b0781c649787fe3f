package domain

import (
	"maps"
	"slices"
	"strconv"

	"go.trai.ch/zerr"
)

// Option keys accepted by SetOption.
const (
	OptionEnabled = "enabled"
	OptionCombine = "combine"
	OptionMin     = "min"
	OptionInline  = "inline"
	OptionAttr    = "attr"
	OptionDeps    = "deps"
)

// FileRef is one entry of a group: a namespaced pattern and an optional pre-minified replacement.
type FileRef struct {
	Primary          string
	MinifiedOverride string
}

// HasOverride reports whether a pre-minified replacement is configured.
func (f FileRef) HasOverride() bool {
	return f.MinifiedOverride != ""
}

// GroupOptions holds the render options shared by a group's files.
type GroupOptions struct {
	Enabled bool
	Combine bool
	Min     bool
	Inline  bool
	Attrs   map[string]string
	Deps    []string
}

// DefaultGroupOptions returns the options used for groups created without explicit values.
func DefaultGroupOptions() GroupOptions {
	return GroupOptions{
		Enabled: true,
		Combine: true,
		Min:     true,
		Inline:  false,
		Attrs:   map[string]string{},
		Deps:    nil,
	}
}

func (o GroupOptions) clone() GroupOptions {
	o.Attrs = maps.Clone(o.Attrs)
	if o.Attrs == nil {
		o.Attrs = map[string]string{}
	}
	o.Deps = slices.Clone(o.Deps)
	return o
}

// GroupOption configures a group at creation time.
type GroupOption func(*GroupOptions)

// WithEnabled sets whether the group renders when requested directly.
func WithEnabled(v bool) GroupOption {
	return func(o *GroupOptions) { o.Enabled = v }
}

// WithCombine sets whether the group's files are combined into one artifact.
func WithCombine(v bool) GroupOption {
	return func(o *GroupOptions) { o.Combine = v }
}

// WithMin sets whether the group's files are minified.
func WithMin(v bool) GroupOption {
	return func(o *GroupOptions) { o.Min = v }
}

// WithInline sets whether the group renders as inline content.
func WithInline(v bool) GroupOption {
	return func(o *GroupOptions) { o.Inline = v }
}

// WithAttrs sets the tag attributes handed to the emitter.
func WithAttrs(attrs map[string]string) GroupOption {
	return func(o *GroupOptions) { o.Attrs = maps.Clone(attrs) }
}

// WithDeps sets the groups this group depends on.
func WithDeps(deps ...string) GroupOption {
	return func(o *GroupOptions) { o.Deps = dedupe(nil, deps) }
}

// Group is a named, ordered bundle of same-type files.
type Group struct {
	Type AssetType
	Name string
	GroupOptions
	Files []FileRef
}

// HasFiles reports whether anything was attached to the group.
func (g *Group) HasFiles() bool {
	return len(g.Files) > 0
}

// applyOption sets one option. Flags accept a bool or its string form,
// attr takes a map and deps a list of group names (unioned).
func applyOption(o *GroupOptions, key string, value any) error {
	switch key {
	case OptionEnabled, OptionCombine, OptionMin, OptionInline:
		b, err := toBool(value)
		if err != nil {
			return zerr.With(zerr.With(ErrInvalidOption, "option", key), "value", value)
		}
		applyBool(o, key, b)
	case OptionAttr:
		attrs, ok := value.(map[string]string)
		if !ok {
			return zerr.With(zerr.With(ErrInvalidOption, "option", key), "value", value)
		}
		o.Attrs = maps.Clone(attrs)
	case OptionDeps:
		switch v := value.(type) {
		case string:
			o.Deps = dedupe(o.Deps, []string{v})
		case []string:
			o.Deps = dedupe(o.Deps, v)
		default:
			return zerr.With(zerr.With(ErrInvalidOption, "option", key), "value", value)
		}
	default:
		return zerr.With(ErrInvalidOption, "option", key)
	}
	return nil
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return false, ErrInvalidOption
	}
}

func applyBool(o *GroupOptions, key string, b bool) {
	switch key {
	case OptionEnabled:
		o.Enabled = b
	case OptionCombine:
		o.Combine = b
	case OptionMin:
		o.Min = b
	case OptionInline:
		o.Inline = b
	}
}

// dedupe appends the entries of add missing from base, keeping first occurrences.
func dedupe(base, add []string) []string {
	out := slices.Clone(base)
	for _, name := range add {
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
