package analyze

import (
	"context"

	"github.com/emezenwere/sift"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many domains are analyzed at once.
// Kept low to avoid hammering target sites or the local network stack.
const DefaultConcurrency = 5

// AnalyzeAll analyzes a batch of domains concurrently and returns one
// Result per input, positioned to match the input order. Domain analyses
// are independent; a failed domain yields a Result with Err set rather
// than failing the batch.
func (a *Analyzer) AnalyzeAll(ctx context.Context, domains []string) []*sift.Result {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if a.Logger != nil {
		a.Logger.Info("batch analysis started",
			"run", uuid.NewString(),
			"domains", len(domains),
			"concurrency", concurrency,
		)
	}

	results := make([]*sift.Result, len(domains))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, domain := range domains {
		i, domain := i, domain
		g.Go(func() error {
			results[i] = a.AnalyzeSite(gctx, domain)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
