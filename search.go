package sevadex

import (
	"context"
	"fmt"
	"time"

	"github.com/janseva-cloud/sevadex/internal/domain/search/result"
)

// SearchResult is one entry of an aggregated search.
type SearchResult struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Date        string `json:"date,omitempty"`
}

// SearchResponse is the aggregated outcome of one search. Partial is set
// when at least one source failed; its results are simply missing from
// Results rather than failing the whole call.
type SearchResponse struct {
	Results       []SearchResult `json:"results"`
	Partial       bool           `json:"partial"`
	FailedSources []string       `json:"failed_sources,omitempty"`
}

// Complaint is the write-side payload for a citizen complaint.
type Complaint struct {
	ID          string
	OwnerID     string
	Subject     string
	Description string
	Department  string
	Status      string
	CreatedAt   time.Time
}

// DocumentRequest is the write-side payload for a document request.
type DocumentRequest struct {
	ID        string
	OwnerID   string
	DocType   string
	Purpose   string
	Status    string
	CreatedAt time.Time
}

// Application is the write-side payload for a scheme application.
type Application struct {
	ID            string
	OwnerID       string
	SchemeName    string
	ApplicantName string
	Status        string
	Course        string
	CreatedAt     time.Time
}

// Search runs one aggregated search. query shorter than two characters after
// trimming yields an empty response. ownerID may be empty for anonymous
// callers; only the public scheme catalog is searched then.
func (c *Client) Search(ctx context.Context, query, ownerID string) (SearchResponse, error) {
	resp, err := c.searchSvc.Search(ctx, query, ownerID)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search: %w", err)
	}
	return responseFromDomain(resp), nil
}

func responseFromDomain(resp result.Response) SearchResponse {
	rs := resp.Results()
	out := SearchResponse{
		Results: make([]SearchResult, len(rs)),
		Partial: resp.Partial(),
	}
	for i := range rs {
		out.Results[i] = SearchResult{
			ID:          rs[i].ID(),
			Source:      rs[i].Source().String(),
			Title:       rs[i].Title(),
			Description: rs[i].Description(),
			Status:      rs[i].Status(),
			Date:        rs[i].Date(),
		}
	}
	for _, src := range resp.FailedSources() {
		out.FailedSources = append(out.FailedSources, src.String())
	}
	return out
}
