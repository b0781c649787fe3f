package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownNamespace is returned when a path key has not been registered.
	ErrUnknownNamespace = zerr.New("could not find namespace")

	// ErrGroupAlreadyExists is returned when creating a group whose name is taken for its type.
	ErrGroupAlreadyExists = zerr.New("group already exists")

	// ErrUnknownGroup is returned when an operation names a group that does not exist.
	ErrUnknownGroup = zerr.New("group does not exist")

	// ErrNoFilesMatched is returned when a local pattern expands to zero regular files.
	ErrNoFilesMatched = zerr.New("found no files matching")

	// ErrDependencyDepthExceeded is returned when dependency resolution recurses past the configured limit.
	ErrDependencyDepthExceeded = zerr.New("dependency depth exceeded, probably circular dependencies")

	// ErrUnknownRewriteMode is returned for a CSS URI rewrite mode other than absolute, relative or none.
	ErrUnknownRewriteMode = zerr.New("unknown css uri rewriter")

	// ErrUnknownCacheKeyMode is returned for a cache key mode other than mtime or content.
	ErrUnknownCacheKeyMode = zerr.New("unknown cache key mode")

	// ErrFileReadFailed is returned when a source asset cannot be read.
	ErrFileReadFailed = zerr.New("failed to read asset file")

	// ErrUnknownAssetType is returned when an asset type is not css, js or img.
	ErrUnknownAssetType = zerr.New("unknown asset type")

	// ErrInvalidOption is returned when a group option key or value is not recognized.
	ErrInvalidOption = zerr.New("invalid group option")

	// ErrMinifyFailed is returned when a minifier rejects malformed input.
	ErrMinifyFailed = zerr.New("failed to minify asset")

	// ErrRemoteFetchFailed is returned when a remote file of a combined group cannot be downloaded.
	ErrRemoteFetchFailed = zerr.New("failed to fetch remote asset")

	// ErrPostLoadHookFailed is returned when the post-load hook rejects a file.
	ErrPostLoadHookFailed = zerr.New("post-load hook failed")

	// ErrArtifactWriteFailed is returned when a combined artifact cannot be persisted.
	ErrArtifactWriteFailed = zerr.New("failed to write cache artifact")

	// ErrArtifactReadFailed is returned when a combined artifact cannot be read back.
	ErrArtifactReadFailed = zerr.New("failed to read cache artifact")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrInvalidCacheFilter is returned when a cache sweep filter is not *, *.js or *.css.
	ErrInvalidCacheFilter = zerr.New("invalid cache filter, expected '*', '*.js' or '*.css'")

	// ErrCacheSweepFailed is returned when stale artifacts cannot be removed.
	ErrCacheSweepFailed = zerr.New("failed to clear cache")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no casset.yaml exists in the directory tree.
	ErrConfigNotFound = zerr.New("could not find casset.yaml")

	// ErrEnvFileLoadFailed is returned when a .env file exists but cannot be parsed.
	ErrEnvFileLoadFailed = zerr.New("failed to load env file")

	// ErrInvalidCondition is returned when a `when` expression does not compile or is not boolean.
	ErrInvalidCondition = zerr.New("invalid condition")

	// ErrPublisherNotConfigured is returned when publishing without bucket credentials.
	ErrPublisherNotConfigured = zerr.New("publisher is not configured, set CASSET_S3_ENDPOINT and CASSET_S3_BUCKET")

	// ErrPublishFailed is returned when an artifact upload fails.
	ErrPublishFailed = zerr.New("failed to publish artifact")

	// ErrRenderFailed is returned when a render pass aborts.
	ErrRenderFailed = zerr.New("render failed")
)
