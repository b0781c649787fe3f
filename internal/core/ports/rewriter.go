package ports

import "go.trai.ch/casset/internal/core/domain"

// URIRewriter re-anchors url() references in CSS text.
//
//go:generate go run go.uber.org/mock/mockgen -source=rewriter.go -destination=mocks/mock_rewriter.go -package=mocks
type URIRewriter interface {
	// Rewrite re-anchors references found in css, which was read from originDir
	// and is about to be served from destDir.
	Rewrite(css, originDir, destDir string, mode domain.RewriteMode) (string, error)
}
