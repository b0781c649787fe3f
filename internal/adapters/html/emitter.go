// Package html renders asset tags.
package html

import (
	"html"
	"maps"
	"slices"
	"strings"
)

// Emitter implements ports.Emitter. Attributes are written in a stable
// order: the tag's own attributes first, then the rest sorted by name.
type Emitter struct{}

// NewEmitter creates an Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Script returns a script tag loading src.
func (e *Emitter) Script(src string, attrs map[string]string) string {
	return tag("script", []attr{{"src", src}}, attrs, "")
}

// InlineScript returns a script tag wrapping content.
func (e *Emitter) InlineScript(content string, attrs map[string]string) string {
	return tag("script", nil, attrs, "\n"+content+"\n")
}

// Stylesheet returns a link tag loading href.
func (e *Emitter) Stylesheet(href string, attrs map[string]string) string {
	return voidTag("link", []attr{{"rel", "stylesheet"}, {"href", href}}, attrs)
}

// InlineStyle returns a style tag wrapping content.
func (e *Emitter) InlineStyle(content string, attrs map[string]string) string {
	return tag("style", nil, attrs, "\n"+content+"\n")
}

// Image returns an img tag.
func (e *Emitter) Image(src string, attrs map[string]string) string {
	return voidTag("img", []attr{{"src", src}}, attrs)
}

// Comment returns an HTML comment with one line per entry.
func (e *Emitter) Comment(lines []string) string {
	return "<!--\n" + strings.Join(lines, "\n") + "\n-->"
}

type attr struct {
	name, value string
}

func tag(name string, fixed []attr, attrs map[string]string, content string) string {
	var b strings.Builder
	b.WriteString("<" + name)
	writeAttrs(&b, fixed, attrs)
	b.WriteString(">" + content + "</" + name + ">")
	return b.String()
}

func voidTag(name string, fixed []attr, attrs map[string]string) string {
	var b strings.Builder
	b.WriteString("<" + name)
	writeAttrs(&b, fixed, attrs)
	b.WriteString(" />")
	return b.String()
}

func writeAttrs(b *strings.Builder, fixed []attr, attrs map[string]string) {
	seen := make(map[string]bool, len(fixed))
	for _, a := range fixed {
		seen[a.name] = true
		writeAttr(b, a.name, a.value)
	}
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		if seen[name] {
			continue
		}
		writeAttr(b, name, attrs[name])
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
}
