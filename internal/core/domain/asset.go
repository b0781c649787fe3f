package domain

import "go.trai.ch/zerr"

// AssetType identifies the kind of asset a path, group or artifact refers to.
type AssetType string

const (
	// TypeCSS is a stylesheet asset.
	TypeCSS AssetType = "css"
	// TypeJS is a script asset.
	TypeJS AssetType = "js"
	// TypeImg is an image asset. Images are resolved but never grouped.
	TypeImg AssetType = "img"
)

// BundleTypes lists the asset types that can be grouped, in render order.
var BundleTypes = []AssetType{TypeCSS, TypeJS}

// ParseAssetType converts a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch AssetType(s) {
	case TypeCSS, TypeJS, TypeImg:
		return AssetType(s), nil
	default:
		return "", zerr.With(ErrUnknownAssetType, "type", s)
	}
}

// Bundled reports whether groups of this type exist.
func (t AssetType) Bundled() bool {
	return t == TypeCSS || t == TypeJS
}

// Ext returns the file extension used for artifacts of this type.
func (t AssetType) Ext() string {
	return "." + string(t)
}

// ContentType returns the MIME type used when serving artifacts of this type.
func (t AssetType) ContentType() string {
	switch t {
	case TypeCSS:
		return "text/css; charset=utf-8"
	case TypeJS:
		return "text/javascript; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

func (t AssetType) String() string {
	return string(t)
}
