package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/janseva-cloud/sevadex/internal/db"
	"github.com/janseva-cloud/sevadex/internal/domain/record"
	"github.com/janseva-cloud/sevadex/internal/domain/source"
)

// DefaultKeyPrefix namespaces all keys and indexes owned by this module.
const DefaultKeyPrefix = "sevadex:"

// store is the consumer interface for record persistence (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	SearchOwned(ctx context.Context, q *db.OwnedQuery) (*db.SearchResult, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// collection names per owner-scoped source.
var collections = map[source.Source]string{
	source.Complaint:   "complaints",
	source.Document:    "documents",
	source.Application: "applications",
}

// Repo persists and fetches owner-scoped records as JSON documents. All
// three collections share one storage shape: key <prefix><collection>:<id>,
// an FT index on the owner tag and the creation timestamp, and in-process
// parsing of the returned documents.
type Repo struct {
	store  store
	prefix string
}

// New creates a record repository. prefix defaults to DefaultKeyPrefix.
func New(s store, prefix string) *Repo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Repo{store: s, prefix: prefix}
}

func (r *Repo) key(col, id string) string {
	return r.prefix + col + ":" + id
}

func (r *Repo) indexName(col string) string {
	return r.prefix + "idx:" + col
}

// EnsureIndexes creates the FT index for each owner-scoped collection if it
// does not exist yet.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	for _, src := range source.All() {
		if !src.OwnerScoped() {
			continue
		}
		col := collections[src]

		name := r.indexName(col)
		exists, err := r.store.IndexExists(ctx, name)
		if err != nil {
			return fmt.Errorf("check index %s: %w", name, err)
		}
		if exists {
			continue
		}

		def := db.NewIndex(name).
			OnJSON().
			Prefix(r.prefix + col + ":").
			TagAs("$.owner", "owner").
			NumericAs("$.created", "created").
			Build()

		if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
			return fmt.Errorf("create index %s: %w", name, err)
		}
	}
	return nil
}

// IndexesReady reports an error when any owner-scoped collection is missing
// its FT index. Used by health checks: a missing index means owner searches
// silently return nothing.
func (r *Repo) IndexesReady(ctx context.Context) error {
	for _, col := range collections {
		name := r.indexName(col)
		exists, err := r.store.IndexExists(ctx, name)
		if err != nil {
			return fmt.Errorf("check index %s: %w", name, err)
		}
		if !exists {
			return fmt.Errorf("index %s: %w", name, db.ErrIndexNotFound)
		}
	}
	return nil
}

// fetchOwned runs the bounded, most-recent-first prefetch for one collection.
func (r *Repo) fetchOwned(ctx context.Context, col, ownerID string, limit int) (*db.SearchResult, error) {
	res, err := r.store.SearchOwned(ctx, &db.OwnedQuery{
		IndexName:    r.indexName(col),
		OwnerField:   "owner",
		OwnerID:      ownerID,
		SortField:    "created",
		Limit:        limit,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", col, err)
	}
	return res, nil
}

// RecentComplaints returns up to limit most recent complaints for the owner.
// Malformed documents are skipped, not fatal.
func (r *Repo) RecentComplaints(ctx context.Context, ownerID string, limit int) ([]record.Complaint, error) {
	res, err := r.fetchOwned(ctx, collections[source.Complaint], ownerID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]record.Complaint, 0, len(res.Entries))
	for _, e := range res.Entries {
		doc, err := decodeDoc[complaintDoc](e.Fields)
		if err != nil {
			continue
		}
		out = append(out, doc.toRecord())
	}
	return out, nil
}

// RecentDocumentRequests returns up to limit most recent document requests
// for the owner.
func (r *Repo) RecentDocumentRequests(ctx context.Context, ownerID string, limit int) ([]record.DocumentRequest, error) {
	res, err := r.fetchOwned(ctx, collections[source.Document], ownerID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]record.DocumentRequest, 0, len(res.Entries))
	for _, e := range res.Entries {
		doc, err := decodeDoc[documentDoc](e.Fields)
		if err != nil {
			continue
		}
		out = append(out, doc.toRecord())
	}
	return out, nil
}

// RecentApplications returns up to limit most recent scheme applications for
// the owner.
func (r *Repo) RecentApplications(ctx context.Context, ownerID string, limit int) ([]record.Application, error) {
	res, err := r.fetchOwned(ctx, collections[source.Application], ownerID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]record.Application, 0, len(res.Entries))
	for _, e := range res.Entries {
		doc, err := decodeDoc[applicationDoc](e.Fields)
		if err != nil {
			continue
		}
		out = append(out, doc.toRecord())
	}
	return out, nil
}

// SaveComplaint stores a complaint document.
func (r *Repo) SaveComplaint(ctx context.Context, c record.Complaint) error {
	return r.save(ctx, collections[source.Complaint], c.ID(), c.OwnerID(), newComplaintDoc(c))
}

// SaveDocumentRequest stores a document-request document.
func (r *Repo) SaveDocumentRequest(ctx context.Context, d record.DocumentRequest) error {
	return r.save(ctx, collections[source.Document], d.ID(), d.OwnerID(), newDocumentDoc(d))
}

// SaveApplication stores a scheme-application document.
func (r *Repo) SaveApplication(ctx context.Context, a record.Application) error {
	return r.save(ctx, collections[source.Application], a.ID(), a.OwnerID(), newApplicationDoc(a))
}

func (r *Repo) save(ctx context.Context, col, id, ownerID string, doc any) error {
	if id == "" || ownerID == "" {
		return fmt.Errorf("save %s: %w", col, errMissingIdentity)
	}

	data, err := encodeDoc(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", col, err)
	}

	key := r.key(col, id)
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}
