package cleanhtml

import "strings"

// Policy defines what HTML is considered safe. A Policy is the fully
// resolved whitelist for one sanitization call; use Config to derive a
// Policy from the built-in defaults. Policies must not be mutated
// after first use.
type Policy struct {
	// Tags is the list of element names (case-insensitive) that are
	// kept in output. Every other element is removed together with its
	// entire subtree. An empty Tags list disables sanitization: the
	// input is returned unchanged, including attributes and scripts.
	Tags []string

	// Attributes is the list of attribute names (case-insensitive)
	// that are kept on any surviving element. All other attributes are
	// dropped.
	Attributes []string

	// Scriptable lists the attribute names that can carry a URI or
	// code a browser may execute (href, src, style, ...). Values of
	// these attributes are checked verbatim, percent-decoded, and
	// entity-decoded for javascript:/vbscript: schemes, and the
	// attribute is dropped if any form matches. A non-empty Scriptable
	// list also enables removal of elements whose type attribute is
	// text/javascript or text/vbscript.
	Scriptable []string
}

// Config layers caller overrides over the built-in default whitelists.
// For each list a replacement fully supersedes the default, while an
// additional list is appended to it. When both are set for the same
// list, the replacement wins. The zero Config resolves to
// DefaultPolicy. Configs must not be mutated after first use.
type Config struct {
	ReplacementTags       []string
	ReplacementAttributes []string
	ReplacementScriptable []string

	AdditionalTags       []string
	AdditionalAttributes []string
	AdditionalScriptable []string
}

// defaultTags is a permissive but safe subset of HTML used in content.
var defaultTags = []string{
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "br", "hr",
	"b", "i", "em", "strong", "u", "s", "strike", "del", "ins",
	"a", "img",
	"ul", "ol", "li",
	"table", "thead", "tbody", "tfoot", "tr", "th", "td",
	"code", "pre", "kbd", "samp",
	"blockquote", "cite", "q",
	"figure", "figcaption",
	"div", "span", "section", "article", "header", "footer",
	"details", "summary",
	"abbr", "acronym", "address",
	"sup", "sub",
}

var defaultAttributes = []string{
	"href", "title", "target", "rel",
	"src", "alt", "width", "height", "loading",
	"colspan", "rowspan", "align", "valign", "scope",
	"cite",
	"id", "class", "lang", "dir",
}

// defaultScriptable names the attributes that receive scheme scrutiny
// when present in the attribute whitelist.
var defaultScriptable = []string{
	"href", "src", "style", "action", "formaction",
	"background", "poster", "data", "type",
}

// requiredTags are the structural elements html.Parse always
// synthesizes around a fragment. They are implicitly whitelisted so
// that filtering never breaks the tree, and they are not emitted as
// wrappers in the output.
var requiredTags = []string{"html", "head", "body"}

// DefaultPolicy returns a Policy built entirely from the built-in
// whitelists. Good starting point for blog posts, articles, and other
// trusted-author content.
func DefaultPolicy() *Policy {
	return (&Config{}).Policy()
}

// StrictPolicy returns a Policy that allows only basic inline
// formatting tags with no attributes at all — suitable for comment
// sections and user-generated content where you want minimal markup.
func StrictPolicy() *Policy {
	return &Policy{
		Tags:       []string{"b", "i", "em", "strong", "br", "p", "ul", "ol", "li"},
		Attributes: []string{},
		Scriptable: defaultScriptable,
	}
}

// NewPolicy returns a Policy with the given tag and attribute
// whitelists and the default scriptable-attribute list.
func NewPolicy(tags, attributes []string) *Policy {
	return &Policy{
		Tags:       tags,
		Attributes: attributes,
		Scriptable: defaultScriptable,
	}
}

// Policy resolves c against the built-in defaults. Per list the
// precedence is replacement, then default plus additional entries,
// then the plain default. A nil c yields DefaultPolicy.
func (c *Config) Policy() *Policy {
	if c == nil {
		return DefaultPolicy()
	}
	return &Policy{
		Tags:       resolveList(c.ReplacementTags, c.AdditionalTags, defaultTags),
		Attributes: resolveList(c.ReplacementAttributes, c.AdditionalAttributes, defaultAttributes),
		Scriptable: resolveList(c.ReplacementScriptable, c.AdditionalScriptable, defaultScriptable),
	}
}

func resolveList(replacement, additional, def []string) []string {
	if replacement != nil {
		return append([]string(nil), replacement...)
	}
	out := append([]string(nil), def...)
	return append(out, additional...)
}

// sliceToSet builds a lowercased lookup set for O(1) membership.
func sliceToSet(s []string) map[string]bool {
	m := make(map[string]bool, len(s))
	for _, v := range s {
		m[strings.ToLower(v)] = true
	}
	return m
}
