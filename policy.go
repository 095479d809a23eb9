package htmlscrub

import (
	"fmt"
	"regexp"
	"strings"
)

// Disposal selects what happens to content the policy does not allow.
type Disposal int

const (
	// DisposalStrip removes a disallowed element together with its whole
	// subtree. Children are not hoisted into the parent; unwrapping an
	// element is a different (and more error-prone) operation than
	// removing it, and this package does not conflate the two.
	DisposalStrip Disposal = iota

	// DisposalEscape replaces the disallowed element's tags with literal
	// escaped text while its children are still filtered and kept
	// between them.
	DisposalEscape
)

func (d Disposal) String() string {
	switch d {
	case DisposalStrip:
		return "strip"
	case DisposalEscape:
		return "escape"
	}
	return fmt.Sprintf("Disposal(%d)", int(d))
}

// ConfigError reports a malformed or contradictory Config. It is only
// ever returned from [Config.Compile]; sanitizing itself cannot fail.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("htmlscrub: invalid config: %s: %s", e.Field, e.Reason)
}

// Config describes what HTML is considered safe. A Config is inert until
// compiled into a [Policy] with [Config.Compile] or [MustCompile].
type Config struct {
	// AllowedTags is the list of tag names kept in the output. All other
	// elements are handled according to Disposal. Empty means no element
	// survives.
	AllowedTags []string

	// AllowedAttributes maps tag names to the attribute names kept on
	// that tag. Use "*" as a key to allow attributes on every tag.
	AllowedAttributes map[string][]string

	// AllowedSchemes lists the URL schemes permitted in URL-bearing
	// attributes (href, src, cite, action, ...). A nil slice means the
	// defaults from [DefaultSchemes]; an empty non-nil slice rejects
	// every absolute URL.
	AllowedSchemes []string

	// DenyRelativeURLs removes URL-bearing attributes whose value has no
	// scheme at all. By default relative URLs pass through unchanged.
	DenyRelativeURLs bool

	// Disposal controls the handling of disallowed elements. The zero
	// value is DisposalStrip.
	Disposal Disposal

	// LinkRel, when non-empty, is forced onto the rel attribute of every
	// kept <a> element. Compile rejects a Config that both forces rel
	// and allowlists rel, since the two settings contradict each other.
	LinkRel string

	// AllowedClasses maps tag names to the class tokens kept on that
	// tag. When a tag has an entry here its class attribute is retained
	// but reduced to the listed tokens. Compile rejects a Config that
	// also allowlists the class attribute for the same tag.
	AllowedClasses map[string][]string

	// MaxDepth limits element nesting. Elements deeper than MaxDepth are
	// treated as disallowed. Zero means unlimited.
	MaxDepth int

	// Transformers are applied in order to every kept element after
	// attribute filtering.
	Transformers []Transformer
}

// DefaultSchemes returns the URL schemes assumed when a Config leaves
// AllowedSchemes nil.
func DefaultSchemes() []string {
	return []string{"http", "https", "mailto"}
}

// schemeRe matches a syntactically valid URL scheme per RFC 3986.
var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*$`)

// Policy is the compiled, immutable form of a [Config]. A Policy is safe
// for concurrent use by any number of goroutines once Compile returns.
type Policy struct {
	tags         map[string]bool
	tagAttrs     map[string]map[string]bool
	globalAttrs  map[string]bool
	schemes      map[string]bool
	classes      map[string]map[string]bool
	denyRelative bool
	disposal     Disposal
	linkRel      string
	maxDepth     int
	transformers []Transformer
}

// Compile case-normalizes the configured names, builds the lookup sets,
// and validates that the configuration is internally consistent. All
// policy failures surface here, never during a sanitize call.
func (c Config) Compile() (*Policy, error) {
	p := &Policy{
		denyRelative: c.DenyRelativeURLs,
		disposal:     c.Disposal,
		linkRel:      c.LinkRel,
		maxDepth:     c.MaxDepth,
		transformers: append([]Transformer(nil), c.Transformers...),
	}

	var err error
	if p.tags, err = foldNameSet("AllowedTags", c.AllowedTags); err != nil {
		return nil, err
	}

	p.tagAttrs = make(map[string]map[string]bool, len(c.AllowedAttributes))
	p.globalAttrs = map[string]bool{}
	seenTags := make(map[string]string, len(c.AllowedAttributes))
	for tag, attrs := range c.AllowedAttributes {
		lower := strings.ToLower(tag)
		if prev, ok := seenTags[lower]; ok {
			return nil, &ConfigError{
				Field:  "AllowedAttributes",
				Reason: fmt.Sprintf("conflicting case variants %q and %q", prev, tag),
			}
		}
		seenTags[lower] = tag
		set, err := foldNameSet("AllowedAttributes["+tag+"]", attrs)
		if err != nil {
			return nil, err
		}
		if lower == "*" {
			p.globalAttrs = set
			continue
		}
		p.tagAttrs[lower] = set
	}

	schemes := c.AllowedSchemes
	if schemes == nil {
		schemes = DefaultSchemes()
	}
	p.schemes = make(map[string]bool, len(schemes))
	for _, s := range schemes {
		if !schemeRe.MatchString(s) {
			return nil, &ConfigError{
				Field:  "AllowedSchemes",
				Reason: fmt.Sprintf("malformed scheme %q", s),
			}
		}
		p.schemes[strings.ToLower(s)] = true
	}

	if c.LinkRel != "" && (p.globalAttrs["rel"] || p.tagAttrs["a"]["rel"]) {
		return nil, &ConfigError{
			Field:  "LinkRel",
			Reason: `cannot force rel on links while "rel" is an allowed attribute`,
		}
	}

	p.classes = make(map[string]map[string]bool, len(c.AllowedClasses))
	seenClassTags := make(map[string]string, len(c.AllowedClasses))
	for tag, classes := range c.AllowedClasses {
		lower := strings.ToLower(tag)
		if prev, ok := seenClassTags[lower]; ok {
			return nil, &ConfigError{
				Field:  "AllowedClasses",
				Reason: fmt.Sprintf("conflicting case variants %q and %q", prev, tag),
			}
		}
		seenClassTags[lower] = tag
		if p.globalAttrs["class"] || p.tagAttrs[lower]["class"] {
			return nil, &ConfigError{
				Field:  "AllowedClasses",
				Reason: fmt.Sprintf(`cannot filter classes on %q while "class" is an allowed attribute`, tag),
			}
		}
		// Class tokens are case-sensitive in CSS, so no folding here.
		set := make(map[string]bool, len(classes))
		for _, cl := range classes {
			set[cl] = true
		}
		p.classes[lower] = set
	}

	return p, nil
}

// MustCompile is like [Config.Compile] but panics on error. It is meant
// for policies built from literals at program start, in the manner of
// regexp.MustCompile.
func MustCompile(c Config) *Policy {
	p, err := c.Compile()
	if err != nil {
		panic(err)
	}
	return p
}

// TagAllowed reports whether elements with the given tag name survive
// filtering. The comparison is case-insensitive.
func (p *Policy) TagAllowed(tag string) bool {
	return p.tags[strings.ToLower(tag)]
}

// AttributeAllowed reports whether the named attribute is kept on the
// given tag, checking the per-tag set first and then the "*" wildcard
// set. Both names are compared case-insensitively, since HTML tag and
// attribute names are case-insensitive.
func (p *Policy) AttributeAllowed(tag, attr string) bool {
	tag, attr = strings.ToLower(tag), strings.ToLower(attr)
	if p.tagAttrs[tag][attr] {
		return true
	}
	return p.globalAttrs[attr]
}

// SchemeAllowed reports whether a URL with the given scheme passes the
// policy's scheme allowlist.
func (p *Policy) SchemeAllowed(scheme string) bool {
	return p.schemes[strings.ToLower(scheme)]
}

// Disposal returns the configured handling of disallowed elements.
func (p *Policy) Disposal() Disposal {
	return p.disposal
}

// foldNameSet lowercases names into a set, rejecting two distinct case
// variants of the same name — a silent merge there would be an easy way
// to build a policy the author did not intend.
func foldNameSet(field string, names []string) (map[string]bool, error) {
	set := make(map[string]bool, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		if prev, ok := seen[lower]; ok && prev != name {
			return nil, &ConfigError{
				Field:  field,
				Reason: fmt.Sprintf("conflicting case variants %q and %q", prev, name),
			}
		}
		seen[lower] = name
		set[lower] = true
	}
	return set, nil
}
