package result

import "github.com/janseva-cloud/sevadex/internal/domain/source"

// Result is a single UI-ready search hit. Results are read-only output: they
// are created fresh per query and never persisted.
type Result struct {
	id          string
	src         source.Source
	title       string
	description string
	status      string
	date        string
}

// New creates a search result. An empty title falls back to the generic
// source label so the caller always has something to render.
func New(id string, src source.Source, title, description, status, date string) Result {
	if title == "" {
		title = src.Label()
	}
	return Result{
		id:          id,
		src:         src,
		title:       title,
		description: description,
		status:      status,
		date:        date,
	}
}

// ID returns the record identifier, unique within its source type only.
func (r *Result) ID() string { return r.id }

// Source returns the record type this result came from.
func (r *Result) Source() source.Source { return r.src }

// Title returns the display title.
func (r *Result) Title() string { return r.title }

// Description returns the display description; may be empty.
func (r *Result) Description() string { return r.description }

// Status returns the workflow status or category; empty when not applicable.
func (r *Result) Status() string { return r.status }

// Date returns the pre-formatted display date; empty when not available.
func (r *Result) Date() string { return r.date }
