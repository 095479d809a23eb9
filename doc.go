// Package htmlscrub is an allowlist-based HTML sanitizer for untrusted
// markup.
//
// # Overview
//
// htmlscrub parses an HTML fragment with the standard HTML5 fragment
// parsing rules (golang.org/x/net/html), walks the resulting tree, and
// produces a new fragment that contains only the tags, attributes, and
// URL schemes permitted by a [Policy]. Parsing with real browser rules
// is the point: obfuscated or malformed markup is recovered into the
// same tree a browser would build, so disallowed content cannot be
// smuggled past the filter at a different parse boundary.
//
// # Policies
//
// A [Policy] is compiled once from a [Config] and is immutable after
// that. A Config controls:
//   - Which element tags are allowed (Config.AllowedTags)
//   - Which attributes are allowed per tag, with a "*" wildcard entry
//     applied to every tag (Config.AllowedAttributes)
//   - Which URL schemes are allowed in href/src-style attributes, and
//     whether relative URLs pass (Config.AllowedSchemes,
//     Config.DenyRelativeURLs)
//   - Whether disallowed elements are stripped with their subtree or
//     rendered as inert escaped text (Config.Disposal)
//   - A rel value forced onto every kept link (Config.LinkRel)
//   - Per-tag class-token allowlists (Config.AllowedClasses)
//   - A maximum element nesting depth (Config.MaxDepth)
//   - Zero or more [Transformer] callbacks over kept elements
//
// Two built-in policies are provided:
//   - [DefaultPolicy] — a permissive but safe policy covering common
//     content tags. Good starting point for blog posts, articles, etc.
//   - [StrictPolicy] — a minimal policy allowing only basic inline
//     formatting with no attributes. Good for comment sections.
//
// # Error model
//
// Only [Config.Compile] can fail, with a [ConfigError] for contradictory
// or malformed settings. Sanitizing never fails: fragment parsing is
// total, and filtering and serialization are total over the parsed tree.
// Malformed markup degrades to the browser-equivalent recovered
// structure and is filtered like any other structure.
//
// # Security
//
// htmlscrub defends against common XSS vectors including:
//   - Script injection via <script> and other disallowed tags
//   - Event handler attributes (onclick, onerror, etc.)
//   - javascript: and data: URL schemes, including entity-encoded forms
//   - Comment-based parser state confusion (comments are always removed)
//
// # Thread safety
//
// Sanitize, Filter, Render, and StripTags are safe for concurrent use.
// A *Policy is read-only after Compile and may be shared freely across
// goroutines.
//
// # Example
//
//	p := htmlscrub.DefaultPolicy()
//	clean := htmlscrub.Sanitize(userInput, p)
package htmlscrub
