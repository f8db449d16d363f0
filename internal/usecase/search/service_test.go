package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/janseva-cloud/sevadex/internal/domain/record"
	"github.com/janseva-cloud/sevadex/internal/domain/scheme"
	"github.com/janseva-cloud/sevadex/internal/domain/search/query"
	"github.com/janseva-cloud/sevadex/internal/domain/search/result"
	"github.com/janseva-cloud/sevadex/internal/domain/source"
)

type mockAdapter struct {
	src     source.Source
	results []result.Result
	err     error
	calls   int
}

func (m *mockAdapter) Source() source.Source { return m.src }

func (m *mockAdapter) Search(_ context.Context, _ query.Query, _ string) ([]result.Result, error) {
	m.calls++
	return m.results, m.err
}

func fakeResults(src source.Source, n int) []result.Result {
	rs := make([]result.Result, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-%d", src, i)
		rs = append(rs, result.New(id, src, "title "+id, "", "Pending", ""))
	}
	return rs
}

func TestSearchRejectsShortQueryWithoutFanout(t *testing.T) {
	a := &mockAdapter{src: source.Scheme}
	svc := New(zap.NewNop(), a)

	resp, err := svc.Search(context.Background(), "  a ", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results()) != 0 || resp.Partial() {
		t.Error("rejected query should produce an empty response")
	}
	if a.calls != 0 {
		t.Errorf("adapter called %d times for a rejected query", a.calls)
	}
}

func TestSearchCapsAndOrdersResults(t *testing.T) {
	svc := New(zap.NewNop(),
		&mockAdapter{src: source.Scheme, results: fakeResults(source.Scheme, 5)},
		&mockAdapter{src: source.Complaint, results: fakeResults(source.Complaint, 4)},
		&mockAdapter{src: source.Document, results: fakeResults(source.Document, 1)},
		&mockAdapter{src: source.Application, results: fakeResults(source.Application, 3)},
	)

	resp, err := svc.Search(context.Background(), "water", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := resp.Results()
	// 3 schemes + 2 complaints + 1 document + 2 applications.
	wantSources := []source.Source{
		source.Scheme, source.Scheme, source.Scheme,
		source.Complaint, source.Complaint,
		source.Document,
		source.Application, source.Application,
	}
	if len(got) != len(wantSources) {
		t.Fatalf("got %d results, want %d", len(got), len(wantSources))
	}
	for i, want := range wantSources {
		if got[i].Source() != want {
			t.Errorf("result[%d] from %s, want %s", i, got[i].Source(), want)
		}
	}
	if resp.Partial() {
		t.Error("all sources succeeded, response should not be partial")
	}
}

func TestSearchNeverExceedsMaxResults(t *testing.T) {
	svc := New(zap.NewNop(),
		&mockAdapter{src: source.Scheme, results: fakeResults(source.Scheme, 10)},
		&mockAdapter{src: source.Complaint, results: fakeResults(source.Complaint, 10)},
		&mockAdapter{src: source.Document, results: fakeResults(source.Document, 10)},
		&mockAdapter{src: source.Application, results: fakeResults(source.Application, 10)},
	)

	resp, err := svc.Search(context.Background(), "water", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results()) > source.MaxResults {
		t.Errorf("got %d results, cap is %d", len(resp.Results()), source.MaxResults)
	}
}

func TestSearchPartialFailure(t *testing.T) {
	boom := errors.New("store down")
	svc := New(zap.NewNop(),
		&mockAdapter{src: source.Scheme, results: fakeResults(source.Scheme, 2)},
		&mockAdapter{src: source.Complaint, err: boom},
		&mockAdapter{src: source.Document, results: fakeResults(source.Document, 1)},
		&mockAdapter{src: source.Application, err: boom},
	)

	resp, err := svc.Search(context.Background(), "water", "u1")
	if err != nil {
		t.Fatalf("a failed source must not fail the call: %v", err)
	}
	if len(resp.Results()) != 3 {
		t.Errorf("got %d results, want 3 from the surviving sources", len(resp.Results()))
	}
	if !resp.Partial() {
		t.Error("response should be marked partial")
	}
	failed := resp.FailedSources()
	if len(failed) != 2 || failed[0] != source.Complaint || failed[1] != source.Application {
		t.Errorf("unexpected failed sources %v", failed)
	}
	if !errors.Is(resp.SourceErr(source.Complaint), boom) {
		t.Error("source error should be preserved on the response")
	}
}

func TestSearchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New(zap.NewNop(),
		&mockAdapter{src: source.Scheme, results: fakeResults(source.Scheme, 2)},
	)

	_, err := svc.Search(ctx, "water", "u1")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSchemeAdapterAyushman(t *testing.T) {
	a := NewSchemeAdapter(scheme.Catalog())

	q, ok := query.Normalize("AYUSHMAN")
	if !ok {
		t.Fatal("query rejected")
	}
	rs, err := a.Search(context.Background(), q, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 1 {
		t.Fatalf("got %d results, want 1", len(rs))
	}
	if rs[0].Title() != "Ayushman Bharat Scheme" {
		t.Errorf("title = %q", rs[0].Title())
	}
	if rs[0].Source() != source.Scheme {
		t.Errorf("source = %q", rs[0].Source())
	}
}

type fetchRecorder struct {
	ownerID string
	limit   int
	recs    []record.Complaint
	err     error
	called  bool
}

func (f *fetchRecorder) RecentComplaints(_ context.Context, ownerID string, limit int) ([]record.Complaint, error) {
	f.called = true
	f.ownerID = ownerID
	f.limit = limit
	return f.recs, f.err
}

func TestRecordAdapterSkipsAnonymousOwner(t *testing.T) {
	f := &fetchRecorder{}
	a := NewComplaintAdapter(f)

	q, _ := query.Normalize("water")
	rs, err := a.Search(context.Background(), q, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs != nil {
		t.Errorf("anonymous caller got %d owner-scoped results", len(rs))
	}
	if f.called {
		t.Error("store must not be consulted without an owner")
	}
}

func TestRecordAdapterFetchesAndFilters(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	f := &fetchRecorder{recs: []record.Complaint{
		record.NewComplaint("c1", "u1", "No water supply", "tap dry since monday", "Water Board", "Pending", now),
		record.NewComplaint("c2", "u1", "Street light broken", "pole 14 dark", "Electricity", "Resolved", now),
	}}
	a := NewComplaintAdapter(f)

	q, _ := query.Normalize("water")
	rs, err := a.Search(context.Background(), q, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ownerID != "u1" {
		t.Errorf("fetched owner %q, want u1", f.ownerID)
	}
	if f.limit != source.FetchLimit {
		t.Errorf("fetch limit = %d, want %d", f.limit, source.FetchLimit)
	}
	if len(rs) != 1 {
		t.Fatalf("got %d results, want 1", len(rs))
	}
	if rs[0].ID() != "c1" || rs[0].Title() != "No water supply" {
		t.Errorf("unexpected result %q %q", rs[0].ID(), rs[0].Title())
	}
	if rs[0].Date() != "01 Jun 2025" {
		t.Errorf("date = %q, want 01 Jun 2025", rs[0].Date())
	}
}

func TestRecordAdapterWrapsFetchError(t *testing.T) {
	boom := errors.New("timeout")
	a := NewComplaintAdapter(&fetchRecorder{err: boom})

	q, _ := query.Normalize("water")
	_, err := a.Search(context.Background(), q, "u1")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}
