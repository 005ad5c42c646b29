// Package cleanhtml provides a fast, whitelist-driven HTML sanitizer.
// It allows you to define a Policy specifying which HTML tags and
// attributes are permitted and which attributes receive extra
// scrutiny for script-executing URI schemes.
//
// Basic usage:
//
//	clean := cleanhtml.Sanitize(input, cleanhtml.DefaultPolicy())
package cleanhtml

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Sanitize parses dirty, applies p, and returns the sanitized HTML
// fragment. If p is nil, DefaultPolicy is used. If p.Tags is empty
// the input is returned unchanged (no filtering of any kind). In the
// unlikely event that parsing fails outright, the empty string is
// returned rather than any part of the dirty input.
func Sanitize(dirty string, p *Policy) string {
	out, err := SanitizeReader(strings.NewReader(dirty), p)
	if err != nil {
		return ""
	}
	return out
}

// SanitizeReader reads HTML from r, applies p, and returns the
// sanitized HTML fragment. It behaves like Sanitize but surfaces the
// parse error, for callers that want to distinguish failure from an
// empty result.
func SanitizeReader(r io.Reader, p *Policy) (string, error) {
	if p == nil {
		p = DefaultPolicy()
	}

	// Bypass: no tag whitelist means no sanitization at all.
	if len(p.Tags) == 0 {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	// Lowercased lookup sets for O(1) membership. The structural tags
	// html.Parse synthesizes are always allowed so filtering cannot
	// break the tree.
	tagSet := sliceToSet(p.Tags)
	for _, t := range requiredTags {
		tagSet[t] = true
	}
	attrSet := sliceToSet(p.Attributes)
	scriptable := sliceToSet(p.Scriptable)

	// Pass 1: remove elements whose tag is not whitelisted, subtree
	// included. Collect first, detach after, so traversal never walks
	// a mutating sibling list.
	var doomed []*html.Node
	collectDisallowed(doc, tagSet, &doomed)
	detachAll(doomed)

	// Pass 2: remove surviving elements whose type attribute declares
	// script content. Only runs when scriptable attributes are in
	// play, matching the stricter sanitization variant.
	if len(scriptable) > 0 {
		doomed = doomed[:0]
		collectScriptTyped(doc, &doomed)
		detachAll(doomed)
	}

	// Pass 3: filter attributes on everything left standing.
	filterTreeAttrs(doc, attrSet, scriptable)

	// html.Parse wraps content in <html><head><body>; emit only the
	// body's children so the output stays a fragment.
	var buf bytes.Buffer
	body := findBody(doc)
	if body == nil {
		body = doc
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// StripTags removes all HTML tags and returns plain text. Entity
// references are decoded.
func StripTags(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	body := findBody(doc)
	if body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return buf.String(), nil
}

// SetAttr sets (or adds) the attribute key=val on node n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// GetAttr returns the value of the named attribute on n, or "" if not
// present.
func GetAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// RemoveAttr removes the named attribute from n if present.
func RemoveAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

// --- filtering passes ------------------------------------------------

// collectDisallowed gathers element nodes whose tag is not in allowed,
// plus comment nodes, which are never whitelisted. Descendants of a
// collected node are not visited; they leave with it.
func collectDisallowed(n *html.Node, allowed map[string]bool, out *[]*html.Node) {
	if n.Type == html.CommentNode {
		*out = append(*out, n)
		return
	}
	if n.Type == html.ElementNode && !allowed[strings.ToLower(n.Data)] {
		*out = append(*out, n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectDisallowed(c, allowed, out)
	}
}

// collectScriptTyped gathers elements whose type attribute declares
// javascript or vbscript content.
func collectScriptTyped(n *html.Node, out *[]*html.Node) {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if strings.ToLower(a.Key) != "type" {
				continue
			}
			switch strings.ToLower(a.Val) {
			case "text/javascript", "text/vbscript":
				*out = append(*out, n)
				return
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectScriptTyped(c, out)
	}
}

func detachAll(nodes []*html.Node) {
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

func filterTreeAttrs(n *html.Node, allowed, scriptable map[string]bool) {
	if n.Type == html.ElementNode && len(n.Attr) > 0 {
		n.Attr = filterAttrs(n.Attr, allowed, scriptable)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		filterTreeAttrs(c, allowed, scriptable)
	}
}

func filterAttrs(attrs []html.Attribute, allowed, scriptable map[string]bool) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		name := strings.ToLower(a.Key)
		if !allowed[name] {
			continue
		}
		if scriptable[name] && hasScriptScheme(a.Val) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// hasScriptScheme reports whether val encodes a javascript: or
// vbscript: scheme in any of three forms: verbatim, percent-decoded,
// or entity-decoded. The colon is optional, so split-scheme tricks
// like "javascript&colon;" are caught by the prefix alone. This check
// is knowingly not exhaustive; see the package documentation.
func hasScriptScheme(val string) bool {
	forms := []string{val, html.UnescapeString(val)}
	if dec, err := url.QueryUnescape(val); err == nil {
		forms = append(forms, dec)
	}
	for _, f := range forms {
		f = strings.ToLower(strings.TrimSpace(f))
		if strings.HasPrefix(f, "javascript") || strings.HasPrefix(f, "vbscript") {
			return true
		}
	}
	return false
}

func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}
