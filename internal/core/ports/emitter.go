package ports

// Emitter turns links and contents into markup.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Script returns a script tag loading src.
	Script(src string, attrs map[string]string) string
	// InlineScript returns a script tag wrapping content.
	InlineScript(content string, attrs map[string]string) string
	// Stylesheet returns a link tag loading href.
	Stylesheet(href string, attrs map[string]string) string
	// InlineStyle returns a style tag wrapping content.
	InlineStyle(content string, attrs map[string]string) string
	// Image returns an img tag.
	Image(src string, attrs map[string]string) string
	// Comment returns a markup comment listing lines.
	Comment(lines []string) string
}
