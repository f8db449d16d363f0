package health

import "context"

// DBPinger checks store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker verifies the search indexes backing owner-scoped sources.
type IndexChecker interface {
	IndexesReady(ctx context.Context) error
}
