package sift

// Document is a read-only view of one parsed page. It hides the HTML parser
// behind a small query surface: extractors only ever need to locate elements
// by CSS selector and read their text or attributes.
//
// A Document is created per fetched page and discarded after extraction.
type Document interface {
	// BaseURL returns the URL the page was fetched from, used to resolve
	// relative links found in the document.
	BaseURL() string

	// Find returns the first element matching the CSS selector in document
	// order, or false if no element matches.
	Find(selector string) (Element, bool)

	// Each calls fn for every element matching the CSS selector, in
	// document order.
	Each(selector string, fn func(Element))
}

// Element is a read-only handle to a single element within a Document.
type Element interface {
	// Text returns the element's inner text with leading and trailing
	// whitespace trimmed.
	Text() string

	// Attr returns the value of the named attribute, or false if the
	// attribute is not present.
	Attr(name string) (string, bool)

	// Find returns the first descendant matching the CSS selector, or
	// false if no descendant matches.
	Find(selector string) (Element, bool)
}

// Parser turns raw HTML into a queryable Document.
type Parser interface {
	// Parse parses raw HTML fetched from baseURL.
	// Returns EINVALID if the markup cannot be parsed at all.
	Parse(html string, baseURL string) (Document, error)
}
