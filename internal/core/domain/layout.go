package domain

import "path"

const (
	// DefaultPathKey is the namespace registered out of the box.
	DefaultPathKey = "core"

	// DefaultAssetRoot is the root directory of the default namespace.
	DefaultAssetRoot = "assets/"

	// DefaultCSSDir is the default stylesheet subdirectory of a namespace.
	DefaultCSSDir = "css/"

	// DefaultJSDir is the default script subdirectory of a namespace.
	DefaultJSDir = "js/"

	// DefaultImgDir is the default image subdirectory of a namespace.
	DefaultImgDir = "img/"

	// CacheDirName is the name of the artifact directory inside the default root.
	CacheDirName = "cache"

	// NamespaceSeparator splits a path key from the pattern in "key::pattern".
	NamespaceSeparator = "::"

	// GlobalGroup is the reserved group created for every bundled type.
	GlobalGroup = "global"

	// DefaultDepsMaxDepth bounds dependency recursion.
	DefaultDepsMaxDepth = 5

	// DefaultAssetURL is the URL prefix put in front of local asset paths.
	DefaultAssetURL = "/"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "casset.yaml"

	// EnvFileName is the name of the optional dotenv file next to the config.
	EnvFileName = ".env"

	// LockFileSuffix is appended to an artifact name to form its lock file.
	LockFileSuffix = ".lock"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default artifact directory, relative to the project root.
// It joins assets and cache, and keeps the trailing slash.
func DefaultCachePath() string {
	return path.Join(DefaultAssetRoot, CacheDirName) + "/"
}

// DefaultDirs returns the per-type subdirectories used when a path registration omits them.
func DefaultDirs() map[AssetType]string {
	return map[AssetType]string{
		TypeCSS: DefaultCSSDir,
		TypeJS:  DefaultJSDir,
		TypeImg: DefaultImgDir,
	}
}
