package search

import (
	"context"

	"github.com/janseva-cloud/sevadex/internal/domain/record"
	"github.com/janseva-cloud/sevadex/internal/domain/search/query"
	"github.com/janseva-cloud/sevadex/internal/domain/search/result"
	"github.com/janseva-cloud/sevadex/internal/domain/source"
)

// Adapter is one independent retrieval+filter routine feeding the aggregator.
// Adapters are read-only and side-effect-free; the per-source result cap is
// applied by the aggregator, not the adapter.
type Adapter interface {
	Source() source.Source
	Search(ctx context.Context, q query.Query, ownerID string) ([]result.Result, error)
}

// ComplaintReader fetches the most recent complaints for one owner.
type ComplaintReader interface {
	RecentComplaints(ctx context.Context, ownerID string, limit int) ([]record.Complaint, error)
}

// DocumentReader fetches the most recent document requests for one owner.
type DocumentReader interface {
	RecentDocumentRequests(ctx context.Context, ownerID string, limit int) ([]record.DocumentRequest, error)
}

// ApplicationReader fetches the most recent scheme applications for one owner.
type ApplicationReader interface {
	RecentApplications(ctx context.Context, ownerID string, limit int) ([]record.Application, error)
}
