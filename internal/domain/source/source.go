package source

// Source identifies one searchable collection of the portal.
type Source string

// Source constants, in presentation order.
const (
	Scheme      Source = "scheme"
	Complaint   Source = "complaint"
	Document    Source = "document"
	Application Source = "application"
)

// Aggregation bounds.
const (
	// FetchLimit is the number of most-recent records prefetched per
	// owner-scoped source before in-process filtering.
	FetchLimit = 10
	// MaxResults bounds the merged response: the sum of all per-source caps.
	MaxResults = 9
)

// All returns every source in fixed presentation order. The merged result
// list and the failed-source list both follow this order.
func All() []Source {
	return []Source{Scheme, Complaint, Document, Application}
}

// Cap is the per-source contribution limit to the merged response.
func (s Source) Cap() int {
	if s == Scheme {
		return 3
	}
	return 2
}

// OwnerScoped reports whether the source holds per-citizen records. The
// scheme catalog is public; everything else is visible to its owner only.
func (s Source) OwnerScoped() bool { return s != Scheme }

// Label is the human-readable fallback title for results of this source.
func (s Source) Label() string {
	switch s {
	case Scheme:
		return "Government Scheme"
	case Complaint:
		return "Complaint"
	case Document:
		return "Document Request"
	case Application:
		return "Scheme Application"
	default:
		return "Record"
	}
}

func (s Source) String() string { return string(s) }
