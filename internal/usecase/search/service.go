package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/janseva-cloud/sevadex/internal/domain/search/query"
	"github.com/janseva-cloud/sevadex/internal/domain/search/result"
	"github.com/janseva-cloud/sevadex/internal/domain/source"
	"github.com/janseva-cloud/sevadex/internal/metrics"
)

// Service fans one query out to every source adapter and merges the capped
// results in fixed presentation order. The service is stateless: no caching,
// no retries, one shot per call.
type Service struct {
	adapters []Adapter
	logger   *zap.Logger
}

// New creates an aggregator over the given adapters. Adapter order fixes the
// presentation order of the merged results.
func New(logger *zap.Logger, adapters ...Adapter) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{adapters: adapters, logger: logger}
}

// Search normalizes rawQuery, fans it out to all adapters concurrently and
// merges their capped results. A rejected (too short) query returns an empty
// response without touching any source. A failed source is dropped from the
// merge and reported on the response; the only error Search itself returns
// is context cancellation, so a caller superseded by a newer query can abort
// cleanly.
func (s *Service) Search(ctx context.Context, rawQuery, ownerID string) (result.Response, error) {
	q, ok := query.Normalize(rawQuery)
	if !ok {
		metrics.SearchQueriesTotal.WithLabelValues("rejected").Inc()
		return result.Response{}, nil
	}

	start := time.Now()

	slots := make([][]result.Result, len(s.adapters))
	errs := make([]error, len(s.adapters))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range s.adapters {
		g.Go(func() error {
			rs, err := a.Search(gctx, q, ownerID)
			if err != nil {
				// A failed source degrades the response; it must not abort
				// the sibling adapters, so the goroutine swallows the error
				// into its slot instead of returning it.
				errs[i] = err
				return nil
			}
			slots[i] = rs
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		metrics.SearchQueriesTotal.WithLabelValues("cancelled").Inc()
		return result.Response{}, err
	}

	merged := make([]result.Result, 0, source.MaxResults)
	var sourceErrs map[source.Source]error
	for i, a := range s.adapters {
		src := a.Source()
		if errs[i] != nil {
			if sourceErrs == nil {
				sourceErrs = make(map[source.Source]error, len(s.adapters))
			}
			sourceErrs[src] = errs[i]
			metrics.SearchSourceFailuresTotal.WithLabelValues(src.String()).Inc()
			s.logger.Warn("search source failed",
				zap.String("source", src.String()),
				zap.String("query", q.String()),
				zap.Error(errs[i]))
			continue
		}
		rs := slots[i]
		if limit := src.Cap(); len(rs) > limit {
			rs = rs[:limit]
		}
		merged = append(merged, rs...)
	}
	if len(merged) > source.MaxResults {
		merged = merged[:source.MaxResults]
	}

	outcome := "ok"
	if len(sourceErrs) > 0 {
		outcome = "partial"
	}
	metrics.SearchQueriesTotal.WithLabelValues(outcome).Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchResultsReturned.Observe(float64(len(merged)))

	return result.NewResponse(merged, sourceErrs), nil
}
