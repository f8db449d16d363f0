package result

import "github.com/janseva-cloud/sevadex/internal/domain/source"

// Response is the aggregate outcome of one search call: the merged, capped
// result list plus per-source failures. A failed source is dropped from the
// merge instead of aborting the whole call, so the caller can render partial
// results and a distinct "search degraded" affordance.
type Response struct {
	results    []Result
	sourceErrs map[source.Source]error
}

// NewResponse creates a response from merged results and per-source errors.
// sourceErrs may be nil or empty when every source succeeded.
func NewResponse(results []Result, sourceErrs map[source.Source]error) Response {
	return Response{results: results, sourceErrs: sourceErrs}
}

// Results returns the merged results in fixed source order.
func (r *Response) Results() []Result { return r.results }

// SourceErr returns the failure for a given source, or nil.
func (r *Response) SourceErr(s source.Source) error {
	if r.sourceErrs == nil {
		return nil
	}
	return r.sourceErrs[s]
}

// FailedSources lists failed sources in presentation order.
func (r *Response) FailedSources() []source.Source {
	if len(r.sourceErrs) == 0 {
		return nil
	}
	failed := make([]source.Source, 0, len(r.sourceErrs))
	for _, s := range source.All() {
		if _, ok := r.sourceErrs[s]; ok {
			failed = append(failed, s)
		}
	}
	return failed
}

// Partial reports whether at least one source failed.
func (r *Response) Partial() bool { return len(r.sourceErrs) > 0 }
