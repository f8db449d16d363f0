package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/janseva-cloud/sevadex/internal/domain/search/result"
	healthuc "github.com/janseva-cloud/sevadex/internal/usecase/health"
)

// ownerHeader carries the citizen identity resolved by the upstream auth
// gateway. An absent header means an anonymous caller: the scheme catalog is
// still searchable, owner-scoped sources stay invisible.
const ownerHeader = "X-Citizen-ID"

// Searcher runs one aggregate search.
type Searcher interface {
	Search(ctx context.Context, rawQuery, ownerID string) (result.Response, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server exposes the search aggregator over HTTP.
type Server struct {
	search Searcher
	health HealthChecker
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search Searcher, health HealthChecker, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{search: search, health: health, logger: logger}
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/api/v1/search", s.SearchAll)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// searchParams holds the bound query parameters of GET /api/v1/search.
type searchParams struct {
	Q string
}

// errorCode is a machine-readable error identifier.
type errorCode string

const (
	codeBadRequest    errorCode = "bad_request"
	codeInternalError errorCode = "internal_error"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// searchResultItem is one result in the search response.
type searchResultItem struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Date        string `json:"date,omitempty"`
}

// searchResponse is the JSON body of GET /api/v1/search. Partial is set when
// at least one source failed, so the caller can render "search degraded"
// distinctly from "no matches".
type searchResponse struct {
	Results       []searchResultItem `json:"results"`
	Partial       bool               `json:"partial"`
	FailedSources []string           `json:"failed_sources,omitempty"`
}

// SearchAll handles GET /api/v1/search.
func (s *Server) SearchAll(w http.ResponseWriter, r *http.Request) {
	var params searchParams
	if err := runtime.BindQueryParameter(
		"form", true, true, "q", r.URL.Query(), &params.Q,
	); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "query parameter q is required")
		return
	}

	ownerID := r.Header.Get(ownerHeader)

	resp, err := s.search.Search(r.Context(), params.Q, ownerID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Caller went away or was superseded by a newer query.
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		s.logger.Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, searchResponseFromDomain(resp))
}

func searchResponseFromDomain(resp result.Response) searchResponse {
	rs := resp.Results()
	items := make([]searchResultItem, len(rs))
	for i := range rs {
		items[i] = searchResultItem{
			ID:          rs[i].ID(),
			Source:      rs[i].Source().String(),
			Title:       rs[i].Title(),
			Description: rs[i].Description(),
			Status:      rs[i].Status(),
			Date:        rs[i].Date(),
		}
	}

	out := searchResponse{Results: items, Partial: resp.Partial()}
	for _, src := range resp.FailedSources() {
		out.FailedSources = append(out.FailedSources, src.String())
	}
	return out
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
