package db

import (
	"context"
	"time"
)

// Store is the database facade combining all sub-interfaces.
// Consumers should depend on the narrow sub-interfaces (ISP).
type Store interface {
	Pinger
	JSONStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONStore provides JSON document operations.
type JSONStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// OwnedQuery is the input for an owner-scoped, recency-ordered fetch: an
// equality filter on the owner field, a descending sort on the creation
// timestamp, and a result limit. This is the only query shape the search
// subsystem needs from the store.
type OwnedQuery struct {
	IndexName    string
	OwnerField   string
	OwnerID      string
	SortField    string // numeric field holding the creation timestamp
	Limit        int
	ReturnFields []string
}

// Searcher provides search operations over FT indexes.
type Searcher interface {
	SearchOwned(ctx context.Context, q *OwnedQuery) (*SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
