package htmlscrub

// DefaultConfig returns the Config behind [DefaultPolicy], for callers
// who want to tweak it before compiling.
func DefaultConfig() Config {
	return Config{
		AllowedTags: []string{
			"h1", "h2", "h3", "h4", "h5", "h6",
			"p", "br", "hr",
			"b", "i", "em", "strong", "u", "s", "strike", "del", "ins",
			"a", "img",
			"ul", "ol", "li", "dl", "dt", "dd",
			"table", "thead", "tbody", "tfoot", "tr", "th", "td",
			"code", "pre", "kbd", "samp", "var",
			"blockquote", "cite", "q",
			"figure", "figcaption",
			"div", "span", "section", "article", "header", "footer",
			"details", "summary",
			"abbr", "acronym", "address", "mark", "time",
			"sup", "sub", "small", "wbr",
		},
		AllowedAttributes: map[string][]string{
			"a":          {"href", "title", "target"},
			"img":        {"src", "alt", "title", "width", "height", "loading"},
			"ol":         {"start"},
			"td":         {"colspan", "rowspan", "align", "valign"},
			"th":         {"colspan", "rowspan", "align", "valign", "scope"},
			"blockquote": {"cite"},
			"q":          {"cite"},
			"del":        {"cite", "datetime"},
			"ins":        {"cite", "datetime"},
			"time":       {"datetime"},
			"abbr":       {"title"},
			"acronym":    {"title"},
			"*":          {"id", "class", "lang", "dir"},
		},
		AllowedSchemes: DefaultSchemes(),
		LinkRel:        "noopener noreferrer",
	}
}

// DefaultPolicy returns a Policy that allows a common safe subset of
// HTML used in content — headings, paragraphs, formatting, lists,
// links, images, code, tables, blockquotes — while rejecting script,
// style, and other dangerous tags. Links and image sources must use
// http, https, or mailto, and every kept link gets
// rel="noopener noreferrer".
func DefaultPolicy() *Policy {
	return MustCompile(DefaultConfig())
}

// StrictConfig returns the Config behind [StrictPolicy].
func StrictConfig() Config {
	return Config{
		AllowedTags:    []string{"b", "i", "em", "strong", "br", "p", "ul", "ol", "li"},
		AllowedSchemes: []string{"https"},
		Disposal:       DisposalStrip,
	}
}

// StrictPolicy returns a Policy that allows only the most basic inline
// formatting tags with no attributes at all — suitable for comment
// sections and user-generated content where you want minimal markup.
func StrictPolicy() *Policy {
	return MustCompile(StrictConfig())
}
