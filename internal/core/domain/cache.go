package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// RewriteMode selects how CSS url() references are re-anchored.
type RewriteMode string

const (
	// RewriteAbsolute turns references into root-relative URLs.
	RewriteAbsolute RewriteMode = "absolute"
	// RewriteRelative recomputes references relative to the destination directory.
	RewriteRelative RewriteMode = "relative"
	// RewriteNone leaves references untouched.
	RewriteNone RewriteMode = "none"
)

// ParseRewriteMode validates a rewrite mode name.
func ParseRewriteMode(s string) (RewriteMode, error) {
	switch RewriteMode(s) {
	case RewriteAbsolute, RewriteRelative, RewriteNone:
		return RewriteMode(s), nil
	default:
		return "", zerr.With(ErrUnknownRewriteMode, "mode", s)
	}
}

// CacheKeyMode selects what invalidates a combined artifact.
type CacheKeyMode string

const (
	// CacheKeyMtime keys artifacts on the newest modification time of their sources.
	CacheKeyMtime CacheKeyMode = "mtime"
	// CacheKeyContent keys artifacts on a digest of their sources' content.
	CacheKeyContent CacheKeyMode = "content"
)

// ParseCacheKeyMode validates a cache key mode name. Empty selects CacheKeyMtime.
func ParseCacheKeyMode(s string) (CacheKeyMode, error) {
	switch CacheKeyMode(s) {
	case CacheKeyMtime, CacheKeyContent:
		return CacheKeyMode(s), nil
	case "":
		return CacheKeyMtime, nil
	default:
		return "", zerr.With(ErrUnknownCacheKeyMode, "mode", s)
	}
}

// Cache sweep filters.
const (
	FilterAll = "*"
	FilterJS  = "*.js"
	FilterCSS = "*.css"
)

// ParseCacheFilter validates a sweep filter.
func ParseCacheFilter(s string) (string, error) {
	switch s {
	case FilterAll, FilterJS, FilterCSS:
		return s, nil
	case "":
		return FilterAll, nil
	default:
		return "", zerr.With(ErrInvalidCacheFilter, "filter", s)
	}
}

// FilterFor returns the sweep filter matching only artifacts of type t.
func FilterFor(t AssetType) string {
	return "*" + t.Ext()
}

// SweepOptions selects artifacts to delete.
type SweepOptions struct {
	// Before removes artifacts modified strictly earlier than this instant.
	Before time.Time
	Filter string
}
