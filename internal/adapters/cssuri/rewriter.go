// Package cssuri rewrites url() and @import references in stylesheets that are moved to another directory.
package cssuri

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/gorilla/css/scanner"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	schemeRe   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)
	normalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\f", "\n")
)

// Rewriter re-anchors relative references of a stylesheet.
type Rewriter struct {
	base string
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithBaseURL sets the prefix of references produced in absolute mode.
func WithBaseURL(base string) Option {
	return func(r *Rewriter) {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		r.base = base
	}
}

// NewRewriter creates a Rewriter whose absolute references start at "/".
func NewRewriter(opts ...Option) *Rewriter {
	r := &Rewriter{base: "/"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite implements ports.URIRewriter.
// originDir is the directory the stylesheet was written for and destDir the
// directory it is served from now, both relative to the project root.
// A remote originDir turns relative references into absolute URLs on the
// remote host in both rewriting modes.
func (r *Rewriter) Rewrite(css, originDir, destDir string, mode domain.RewriteMode) (string, error) {
	var fn func(string) string
	switch mode {
	case domain.RewriteNone:
		return css, nil
	case domain.RewriteAbsolute, domain.RewriteRelative:
		if domain.IsRemote(originDir) {
			return rewriteRefs(css, remoteResolver(originDir)), nil
		}
	}

	switch mode {
	case domain.RewriteAbsolute:
		fn = func(ref string) string {
			return r.base + strings.TrimPrefix(path.Clean("/"+path.Join(originDir, ref)), "/")
		}
	case domain.RewriteRelative:
		fn = func(ref string) string {
			return relative(destDir, path.Join(originDir, ref))
		}
	default:
		return "", zerr.With(domain.ErrUnknownRewriteMode, "mode", string(mode))
	}
	return rewriteRefs(css, fn), nil
}

func remoteResolver(originDir string) func(string) string {
	base, err := url.Parse(strings.TrimSuffix(originDir, "/") + "/")
	return func(ref string) string {
		if err != nil {
			return ref
		}
		u, perr := url.Parse(ref)
		if perr != nil {
			return ref
		}
		return base.ResolveReference(u).String()
	}
}

func rewriteRefs(css string, fn func(string) string) string {
	src := normalizer.Replace(css)
	var (
		out      strings.Builder
		consumed int
		inImport bool
	)
	out.Grow(len(src))

	s := scanner.New(src)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return out.String()
		case scanner.TokenError:
			// Leave whatever the scanner cannot tokenize as it is.
			out.WriteString(src[consumed:])
			return out.String()
		case scanner.TokenURI:
			out.WriteString(rewriteURI(tok.Value, fn))
		case scanner.TokenString:
			if inImport {
				out.WriteString(rewriteQuoted(tok.Value, fn))
			} else {
				out.WriteString(tok.Value)
			}
		default:
			out.WriteString(tok.Value)
		}
		consumed += len(tok.Value)

		switch tok.Type {
		case scanner.TokenS, scanner.TokenComment:
		case scanner.TokenAtKeyword:
			inImport = strings.EqualFold(tok.Value, "@import")
		default:
			inImport = false
		}
	}
}

// rewriteURI rewrites a url(...) token, keeping its quoting style.
func rewriteURI(tok string, fn func(string) string) string {
	inner := strings.TrimSpace(tok[len("url(") : len(tok)-1])
	if len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\'') && inner[len(inner)-1] == inner[0] {
		return "url(" + rewriteQuoted(inner, fn) + ")"
	}
	return "url(" + rewriteRef(inner, fn) + ")"
}

func rewriteQuoted(quoted string, fn func(string) string) string {
	q := quoted[:1]
	return q + rewriteRef(quoted[1:len(quoted)-1], fn) + q
}

func rewriteRef(ref string, fn func(string) string) string {
	if !rewritable(ref) {
		return ref
	}
	target, suffix := ref, ""
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		target, suffix = ref[:i], ref[i:]
	}
	return fn(target) + suffix
}

// rewritable reports whether ref is relative to the stylesheet's directory.
func rewritable(ref string) bool {
	switch {
	case ref == "",
		strings.HasPrefix(ref, "#"),
		strings.HasPrefix(ref, "/"),
		strings.HasPrefix(strings.ToLower(ref), "data:"),
		schemeRe.MatchString(ref):
		return false
	}
	return true
}

// relative returns the slash path leading from dir to target.
func relative(dir, target string) string {
	from := segments(dir)
	to := segments(target)

	common := 0
	for common < len(from) && common < len(to) && from[common] == to[common] {
		common++
	}

	parts := make([]string, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)
	return strings.Join(parts, "/")
}

func segments(p string) []string {
	p = strings.Trim(path.Clean(p), "/")
	if p == "." || p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
