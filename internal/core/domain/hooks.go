package domain

// PostLoadHook transforms a source file right after it is read, before minification.
// It only runs for groups that combine.
type PostLoadHook func(content, filename string, t AssetType, group *Group) (string, error)

// FilepathHook rewrites every path just before it reaches the emitter.
type FilepathHook func(path string, t AssetType, remote bool) string
