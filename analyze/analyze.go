// Package analyze orchestrates the per-domain extraction pipeline:
// fetch the primary page, run the field extractors over it, then merge
// founder mentions from the about/team page when one is linked.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/emezenwere/sift"
)

// Analyzer runs site analyses. Fetcher, Parser, and Tagger are required;
// the remaining fields are optional overrides with defaults applied at use.
type Analyzer struct {
	Fetcher sift.Fetcher
	Parser  sift.Parser
	Tagger  sift.Tagger

	// Logger receives retry and progress diagnostics. Nil disables them.
	Logger *slog.Logger

	// FounderKeywords overrides DefaultFounderKeywords.
	FounderKeywords []string

	// TitleSeparator overrides sift.DefaultTitleSeparator.
	TitleSeparator string

	// MaxFetchRetries and RetryBaseDelay override the retry policy
	// (3 attempts, 2s base backoff).
	MaxFetchRetries int
	RetryBaseDelay  time.Duration

	// Concurrency bounds AnalyzeAll's worker pool. Defaults to 5.
	Concurrency int
}

// NormalizeDomain turns a bare domain into an absolute URL: a missing
// scheme gets a www. prefix (unless already present) and https://.
// Already-qualified URLs pass through unchanged.
func NormalizeDomain(domain string) string {
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	if !strings.HasPrefix(domain, "www.") {
		domain = "www." + domain
	}
	return "https://" + domain
}

// AnalyzeSite analyzes one domain. It always returns a Result with Domain
// populated; a primary fetch that exhausts its retries marks the Result
// with Err and leaves the content fields absent. No error escapes a
// single-domain analysis.
func (a *Analyzer) AnalyzeSite(ctx context.Context, domain string) *sift.Result {
	result := &sift.Result{Domain: NormalizeDomain(domain)}

	html, err := a.fetch(ctx, result.Domain)
	if err != nil {
		result.Err = sift.Errorf(sift.EUNAVAILABLE, "fetch %s: %v", result.Domain, err)
		return result
	}

	doc, err := a.Parser.Parse(html, result.Domain)
	if err != nil {
		result.Err = err
		return result
	}

	result.CompanyName = ExtractCompanyName(doc, a.Tagger, a.TitleSeparator)
	result.Description = ExtractDescription(doc, a.Tagger)
	result.Founders = ExtractFounders(doc, a.Tagger, a.FounderKeywords)
	result.Products = ExtractProducts(doc)

	a.mergeAboutFounders(ctx, doc, html, result)

	return result
}

// mergeAboutFounders fetches the about/team page, if linked, and unions any
// founder mentions found there into the result. Failures here are not
// fatal: the primary founders stand.
func (a *Analyzer) mergeAboutFounders(ctx context.Context, doc sift.Document, primaryHTML string, result *sift.Result) {
	aboutURL := AboutLink(doc)
	if aboutURL == "" {
		return
	}

	html, err := a.fetch(ctx, aboutURL)
	if err != nil {
		return
	}

	// An about link that serves the same page again has nothing new.
	if xxhash.Sum64String(html) == xxhash.Sum64String(primaryHTML) {
		return
	}

	aboutDoc, err := a.Parser.Parse(html, aboutURL)
	if err != nil {
		return
	}

	result.Founders = result.Founders.Union(ExtractFounders(aboutDoc, a.Tagger, a.FounderKeywords))
}

func (a *Analyzer) fetch(ctx context.Context, url string) (string, error) {
	var logger LogFunc
	if a.Logger != nil {
		logger = func(format string, args ...any) {
			a.Logger.Debug("fetch retry", "detail", fmt.Sprintf(format, args...))
		}
	}
	return fetchWithRetry(ctx, url, a.Fetcher.Fetch, logger, a.MaxFetchRetries, a.RetryBaseDelay)
}
