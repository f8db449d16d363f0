package records

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/janseva-cloud/sevadex/internal/db"
	"github.com/janseva-cloud/sevadex/internal/domain"
	"github.com/janseva-cloud/sevadex/internal/domain/record"
	"github.com/janseva-cloud/sevadex/internal/domain/source"
)

func TestRecentComplaints_QueryShape(t *testing.T) {
	repo, ms := newTestRepo(t)

	_, err := repo.RecentComplaints(context.Background(), "u1", source.FetchLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := ms.lastQuery
	if q == nil {
		t.Fatal("expected SearchOwned to be called")
	}
	if q.IndexName != "sevadex:idx:complaints" {
		t.Errorf("unexpected index %q", q.IndexName)
	}
	if q.OwnerField != "owner" || q.OwnerID != "u1" {
		t.Errorf("unexpected owner filter %q=%q", q.OwnerField, q.OwnerID)
	}
	if q.SortField != "created" {
		t.Errorf("unexpected sort field %q", q.SortField)
	}
	if q.Limit != source.FetchLimit {
		t.Errorf("limit = %d, want %d", q.Limit, source.FetchLimit)
	}
}

func TestRecentComplaints_ParsesDocuments(t *testing.T) {
	repo, ms := newTestRepo(t)

	created := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	payload := `{"id":"c1","owner":"u1","subject":"No water supply","department":"Water Board","status":"Pending","created":` +
		`1748768400}`

	ms.searchOwnedFn = func(_ context.Context, _ *db.OwnedQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 2,
			Entries: []db.SearchEntry{
				searchEntry("sevadex:complaints:c1", payload),
				searchEntry("sevadex:complaints:bad", "not json"),
			},
		}, nil
	}

	got, err := repo.RecentComplaints(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 parsed complaint (malformed skipped), got %d", len(got))
	}
	c := got[0]
	if c.ID() != "c1" || c.OwnerID() != "u1" || c.Subject() != "No water supply" {
		t.Errorf("unexpected complaint %+v", c)
	}
	if c.Status() != "Pending" {
		t.Errorf("unexpected status %q", c.Status())
	}
	if !c.CreatedAt().Equal(created) {
		t.Errorf("created = %v, want %v", c.CreatedAt(), created)
	}
}

func TestRecentComplaints_ArrayWrappedPayload(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchOwnedFn = func(_ context.Context, _ *db.OwnedQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total:   1,
			Entries: []db.SearchEntry{searchEntry("k", `[{"id":"c2","owner":"u1","subject":"Street light"}]`)},
		}, nil
	}

	got, err := repo.RecentComplaints(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "c2" {
		t.Fatalf("unexpected result %+v", got)
	}
	if !got[0].CreatedAt().IsZero() {
		t.Error("missing created should yield zero time")
	}
}

func TestRecentDocumentRequests_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchOwnedFn = func(_ context.Context, _ *db.OwnedQuery) (*db.SearchResult, error) {
		return nil, &db.Error{Op: db.OpSearch, Err: errors.New("connection refused")}
	}

	_, err := repo.RecentDocumentRequests(context.Background(), "u1", 10)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRecentApplications_ParsesDocuments(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchOwnedFn = func(_ context.Context, _ *db.OwnedQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{searchEntry("k",
				`{"id":"a1","owner":"u1","scheme_name":"National Scholarship Portal","applicant_name":"Asha Devi","status":"Under Review","course":"B.Sc Nursing","created":1748768400}`)},
		}, nil
	}

	got, err := repo.RecentApplications(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 application, got %d", len(got))
	}
	a := got[0]
	if a.SchemeName() != "National Scholarship Portal" || a.Course() != "B.Sc Nursing" {
		t.Errorf("unexpected application %+v", a)
	}
}

func TestSaveComplaint_MarshalsDocument(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotKey, gotPath string
	var gotData []byte
	ms.jsonSetFn = func(_ context.Context, key, path string, data []byte) error {
		gotKey, gotPath, gotData = key, path, data
		return nil
	}

	created := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	c := record.NewComplaint("c1", "u1", "No water supply", "Ward 4", "Water Board", "Pending", created)
	if err := repo.SaveComplaint(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotKey != "sevadex:complaints:c1" || gotPath != "$" {
		t.Errorf("unexpected key/path %q %q", gotKey, gotPath)
	}

	var doc complaintDoc
	if err := json.Unmarshal(gotData, &doc); err != nil {
		t.Fatalf("stored payload is not valid JSON: %v", err)
	}
	if doc.Owner != "u1" || doc.Subject != "No water supply" || doc.Created != created.Unix() {
		t.Errorf("unexpected stored doc %+v", doc)
	}
}

func TestSave_MissingIdentity(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.SaveComplaint(context.Background(), record.NewComplaint("", "u1", "s", "", "", "", time.Time{}))
	if !errors.Is(err, domain.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}

	err = repo.SaveApplication(context.Background(), record.NewApplication("a1", "", "", "", "", "", time.Time{}))
	if !errors.Is(err, domain.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestEnsureIndexes_CreatesMissingOnly(t *testing.T) {
	repo, ms := newTestRepo(t)

	existing := map[string]bool{"sevadex:idx:complaints": true}
	var created []string
	ms.indexExistsFn = func(_ context.Context, name string) (bool, error) {
		return existing[name], nil
	}
	ms.createIndexFn = func(_ context.Context, def *db.IndexDefinition) error {
		created = append(created, def.Name)
		if def.StorageType != db.StorageJSON {
			t.Errorf("index %s: unexpected storage %q", def.Name, def.StorageType)
		}
		if len(def.Fields) != 2 {
			t.Errorf("index %s: expected owner+created fields, got %d", def.Name, len(def.Fields))
		}
		return nil
	}

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("expected 2 created indexes, got %v", created)
	}
	for _, name := range created {
		if name == "sevadex:idx:complaints" {
			t.Error("existing index should not be recreated")
		}
	}
}

func TestEnsureIndexes_ToleratesConcurrentCreate(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		return db.ErrIndexExists
	}

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		t.Fatalf("race on index creation should not fail: %v", err)
	}
}
