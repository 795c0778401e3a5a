package analyze

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/emezenwere/sift"
)

// DefaultFounderKeywords are the titles whose mention marks a founder name.
func DefaultFounderKeywords() []string {
	return []string{"founder", "co-founder", "ceo", "chief executive"}
}

// aboutLinkPattern matches hrefs pointing at about or team pages.
var aboutLinkPattern = regexp.MustCompile(`(?i)about|team`)

// ExtractCompanyName extracts the company name from a page. The og:site_name
// meta tag wins outright; otherwise the page title is run through the
// two-part title heuristic. Returns "" when neither source yields a name.
func ExtractCompanyName(doc sift.Document, tagger sift.Tagger, separator string) string {
	if meta, ok := doc.Find(`meta[property="og:site_name"]`); ok {
		if content, ok := meta.Attr("content"); ok && content != "" {
			return content
		}
	}

	if title, ok := doc.Find("title"); ok {
		return sift.ResolveCompanyName(tagger, title.Text(), separator)
	}

	return ""
}

// ExtractDescription extracts a cleaned description: the description meta
// tag if present, otherwise the first paragraph in document order.
// Returns "" when neither source yields text.
func ExtractDescription(doc sift.Document, tagger sift.Tagger) string {
	if meta, ok := doc.Find(`meta[name="description"]`); ok {
		if content, ok := meta.Attr("content"); ok {
			return sift.CleanText(tagger, content)
		}
	}

	if p, ok := doc.Find("p"); ok {
		return sift.CleanText(tagger, p.Text())
	}

	return ""
}

// ExtractFounders scans every block and heading element for founder-title
// keywords and takes the two words preceding each keyword mention as a
// candidate name, keeping candidates of at least two words. Returns nil
// when no candidate survives.
func ExtractFounders(doc sift.Document, tagger sift.Tagger, keywords []string) sift.Founders {
	if len(keywords) == 0 {
		keywords = DefaultFounderKeywords()
	}

	var founders sift.Founders
	doc.Each("p, div, h1, h2, h3, h4, h5, h6", func(el sift.Element) {
		text := strings.ToLower(el.Text())
		if !containsAny(text, keywords) {
			return
		}

		words := strings.Fields(text)
		for i, word := range words {
			if !containsAny(word, keywords) {
				continue
			}
			start := i - 2
			if start < 0 {
				start = 0
			}
			candidate := strings.TrimSpace(strings.Join(words[start:i], " "))
			if len(strings.Fields(candidate)) < 2 {
				continue
			}
			founders = founders.Add(sift.CleanText(tagger, candidate))
		}
	})

	return founders
}

// ExtractProducts collects product names, features, and feature descriptions
// from the structural selectors marketing sites commonly use. Each list is
// deduplicated preserving first-seen order; empty lists are valid.
func ExtractProducts(doc sift.Document) *sift.ProductInfo {
	info := &sift.ProductInfo{}

	doc.Each("div.feature-header", func(el sift.Element) {
		if h3, ok := el.Find("h3"); ok {
			info.Products = append(info.Products, h3.Text())
		}
	})

	doc.Each("div.product-block-details", func(el sift.Element) {
		if title, ok := el.Find("h3.product-block-title"); ok {
			info.Products = append(info.Products, title.Text())
		}
	})

	doc.Each("div.product-list-title", func(el sift.Element) {
		if h2, ok := el.Find("h2"); ok {
			info.Features = append(info.Features, h2.Text())
		}
		if p, ok := el.Find("p"); ok {
			info.Descriptions = append(info.Descriptions, p.Text())
		}
	})

	info.Products = dedupe(info.Products)
	info.Features = dedupe(info.Features)
	info.Descriptions = dedupe(info.Descriptions)

	return info
}

// AboutLink returns the first anchor whose target looks like an about or
// team page, resolved to an absolute URL against the page's base URL.
// Returns "" when no such link exists.
func AboutLink(doc sift.Document) string {
	base, err := url.Parse(doc.BaseURL())
	if err != nil {
		return ""
	}

	var found string
	doc.Each("a[href]", func(el sift.Element) {
		if found != "" {
			return
		}
		href, ok := el.Attr("href")
		if !ok || !aboutLinkPattern.MatchString(href) {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		found = base.ResolveReference(ref).String()
	})

	return found
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
