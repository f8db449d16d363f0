package search

import (
	"context"
	"fmt"

	"github.com/janseva-cloud/sevadex/internal/domain/record"
	"github.com/janseva-cloud/sevadex/internal/domain/scheme"
	"github.com/janseva-cloud/sevadex/internal/domain/search/query"
	"github.com/janseva-cloud/sevadex/internal/domain/search/result"
	"github.com/janseva-cloud/sevadex/internal/domain/source"
)

// schemeAdapter searches the in-memory scheme catalog. It never touches the
// store and ignores the owner: schemes are visible to anonymous callers.
type schemeAdapter struct {
	catalog []scheme.Scheme
}

// NewSchemeAdapter creates the catalog-backed scheme adapter.
func NewSchemeAdapter(catalog []scheme.Scheme) Adapter {
	return &schemeAdapter{catalog: catalog}
}

func (a *schemeAdapter) Source() source.Source { return source.Scheme }

func (a *schemeAdapter) Search(_ context.Context, q query.Query, _ string) ([]result.Result, error) {
	var out []result.Result
	for _, s := range a.catalog {
		if s.Matches(q) {
			out = append(out, result.New(s.ID(), source.Scheme, s.Name(), s.Description(), s.Category(), ""))
		}
	}
	return out, nil
}

// AdapterConfig describes one store-backed source: where its records come
// from, which of them match, and how a match becomes a result. The three
// owner-scoped sources differ only by configuration.
type AdapterConfig[T any] struct {
	Source source.Source
	Fetch  func(ctx context.Context, ownerID string, limit int) ([]T, error)
	Match  func(T, query.Query) bool
	Map    func(T) result.Result
}

// recordAdapter is the single owner-scoped adapter implementation: bounded
// most-recent-first prefetch, then in-process substring filtering.
type recordAdapter[T any] struct {
	cfg AdapterConfig[T]
}

// NewRecordAdapter creates a store-backed adapter from its configuration.
func NewRecordAdapter[T any](cfg AdapterConfig[T]) Adapter {
	return &recordAdapter[T]{cfg: cfg}
}

func (a *recordAdapter[T]) Source() source.Source { return a.cfg.Source }

func (a *recordAdapter[T]) Search(ctx context.Context, q query.Query, ownerID string) ([]result.Result, error) {
	// No owner means no visibility into owner-scoped records: this is the
	// access-control boundary, enforced here rather than by the store.
	if ownerID == "" {
		return nil, nil
	}

	recs, err := a.cfg.Fetch(ctx, ownerID, source.FetchLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch %s records: %w", a.cfg.Source, err)
	}

	var out []result.Result
	for _, r := range recs {
		if a.cfg.Match(r, q) {
			out = append(out, a.cfg.Map(r))
		}
	}
	return out, nil
}

// NewComplaintAdapter creates the complaint source adapter.
func NewComplaintAdapter(r ComplaintReader) Adapter {
	return NewRecordAdapter(AdapterConfig[record.Complaint]{
		Source: source.Complaint,
		Fetch:  r.RecentComplaints,
		Match:  record.Complaint.Matches,
		Map: func(c record.Complaint) result.Result {
			return result.New(c.ID(), source.Complaint, c.Subject(), c.Description(), c.Status(),
				record.DisplayDate(c.CreatedAt()))
		},
	})
}

// NewDocumentAdapter creates the document-request source adapter.
func NewDocumentAdapter(r DocumentReader) Adapter {
	return NewRecordAdapter(AdapterConfig[record.DocumentRequest]{
		Source: source.Document,
		Fetch:  r.RecentDocumentRequests,
		Match:  record.DocumentRequest.Matches,
		Map: func(d record.DocumentRequest) result.Result {
			return result.New(d.ID(), source.Document, d.DocType(), d.Purpose(), d.Status(),
				record.DisplayDate(d.CreatedAt()))
		},
	})
}

// NewApplicationAdapter creates the scheme-application source adapter.
func NewApplicationAdapter(r ApplicationReader) Adapter {
	return NewRecordAdapter(AdapterConfig[record.Application]{
		Source: source.Application,
		Fetch:  r.RecentApplications,
		Match:  record.Application.Matches,
		Map: func(a record.Application) result.Result {
			return result.New(a.ID(), source.Application, a.SchemeName(), a.ApplicantName(), a.Status(),
				record.DisplayDate(a.CreatedAt()))
		},
	})
}
