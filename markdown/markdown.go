// Package markdown renders Markdown to HTML and sanitizes the result
// with a cleanhtml policy. The renderer is configured to pass raw
// inline HTML through untouched; safety is the sanitizer's job, not
// the renderer's.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/njchilds90/cleanhtml"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Strikethrough,
		extension.Table,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		// Raw HTML in the source reaches the output and is cleaned by
		// the sanitizer afterwards.
		ghtml.WithUnsafe(),
	),
)

// ToSafeHTML renders src as GitHub-flavored Markdown and sanitizes
// the rendered HTML with p. A nil p uses cleanhtml.DefaultPolicy.
func ToSafeHTML(src []byte, p *cleanhtml.Policy) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return cleanhtml.Sanitize(buf.String(), p), nil
}
