package sevadex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/janseva-cloud/sevadex/internal/db"
	dbredis "github.com/janseva-cloud/sevadex/internal/db/redis"
	"github.com/janseva-cloud/sevadex/internal/domain/record"
	"github.com/janseva-cloud/sevadex/internal/domain/scheme"
	"github.com/janseva-cloud/sevadex/internal/repository/records"
	searchuc "github.com/janseva-cloud/sevadex/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the sevadex library entry point: an aggregated search over the
// portal's scheme catalog and a citizen's complaints, document requests and
// scheme applications.
type Client struct {
	store     db.Store
	repo      *records.Repo
	searchSvc *searchuc.Service
}

// New creates a Client and connects to the database.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("sevadex: database address required (use WithRedis or WithValkey)")
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("sevadex: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	// Valkey speaks the same protocol; both drivers share one store.
	case "redis", "valkey":
		s, err := dbredis.NewStore(dbredis.Config{
			Addrs:    cfg.addrs,
			Username: cfg.username,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("sevadex: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("sevadex: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	repo := records.New(store, cfg.keyPrefix)

	searchSvc := searchuc.New(cfg.logger,
		searchuc.NewSchemeAdapter(scheme.Catalog()),
		searchuc.NewComplaintAdapter(repo),
		searchuc.NewDocumentAdapter(repo),
		searchuc.NewApplicationAdapter(repo),
	)

	return &Client{
		store:     store,
		repo:      repo,
		searchSvc: searchSvc,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// EnsureIndexes creates the search indexes backing owner-scoped records.
// Idempotent; call once at startup.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	return c.repo.EnsureIndexes(ctx)
}

// SaveComplaint stores a complaint record for later searching.
func (c *Client) SaveComplaint(ctx context.Context, p Complaint) error {
	return c.repo.SaveComplaint(ctx, record.NewComplaint(
		p.ID, p.OwnerID, p.Subject, p.Description, p.Department, p.Status, p.CreatedAt,
	))
}

// SaveDocumentRequest stores a document-request record for later searching.
func (c *Client) SaveDocumentRequest(ctx context.Context, p DocumentRequest) error {
	return c.repo.SaveDocumentRequest(ctx, record.NewDocumentRequest(
		p.ID, p.OwnerID, p.DocType, p.Purpose, p.Status, p.CreatedAt,
	))
}

// SaveApplication stores a scheme-application record for later searching.
func (c *Client) SaveApplication(ctx context.Context, p Application) error {
	return c.repo.SaveApplication(ctx, record.NewApplication(
		p.ID, p.OwnerID, p.SchemeName, p.ApplicantName, p.Status, p.Course, p.CreatedAt,
	))
}
