// Package cleanhtml provides a fast, whitelist-driven HTML sanitizer
// for Go applications.
//
// # Overview
//
// cleanhtml parses an HTML string (or io.Reader) using the standard
// golang.org/x/net/html parser, removes every element whose tag is
// not whitelisted (subtree included), removes every attribute whose
// name is not whitelisted, and strips attribute values that smuggle a
// javascript: or vbscript: scheme, then serializes the surviving tree
// back to an HTML fragment.
//
// # Policies
//
// A [Policy] carries three whitelists:
//   - [Policy.Tags] — element names kept in output
//   - [Policy.Attributes] — attribute names kept on surviving elements
//   - [Policy.Scriptable] — attribute names whose values are checked
//     for script-executing schemes
//
// An empty tag whitelist is an explicit bypass: the input is returned
// unchanged with no filtering of any kind.
//
// A [Config] derives a Policy from the built-in defaults, either by
// replacing a list outright or by supplementing it with extra
// entries. Replacement wins when both are set for the same list.
// Two ready-made policies are provided: [DefaultPolicy] for trusted-
// author content and [StrictPolicy] for user-generated comments.
//
// # Security
//
// cleanhtml defends against common XSS vectors including:
//   - Script injection via <script> tags (not whitelisted by default)
//   - Event handler attributes (onclick, onerror, etc.)
//   - javascript: and vbscript: URL schemes, raw, percent-encoded, or
//     entity-encoded
//   - Elements declaring type="text/javascript" or "text/vbscript"
//   - HTML comments, including IE conditional comments
//
// The scheme check inspects each scriptable value verbatim, after one
// round of percent-decoding, and after entity-decoding. It does not
// chase doubly-encoded or control-character-interleaved payloads;
// treat it as one layer of defence and pair it with proper
// Content-Security-Policy headers.
//
// # Thread Safety
//
// Sanitize, SanitizeReader, and StripTags are safe for concurrent
// use. Policy and Config values must not be mutated after first use;
// callers needing different whitelists per call should construct a
// Policy per call rather than mutating a shared one.
//
// # Example
//
//	p := cleanhtml.DefaultPolicy()
//	clean := cleanhtml.Sanitize(userInput, p)
package cleanhtml
