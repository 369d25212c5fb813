// Package search models the _search request body, its typed response, and
// the multi-search (_msearch) batch encoding.
package search

import (
	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/aggs"
	"github.com/ca-srg/osdsl/query"
	"github.com/ca-srg/osdsl/script"
)

// Request is the body of a search request. Unset fields are omitted from
// the wire form.
type Request struct {
	Query        *query.Query             `json:"query,omitempty"`
	From         *int                     `json:"from,omitempty"`
	Size         *int                     `json:"size,omitempty"`
	Sort         []SortTerm               `json:"sort,omitempty"`
	Source       *osdsl.SourceFilter      `json:"_source,omitempty"`
	Highlight    *HighlightOptions        `json:"highlight,omitempty"`
	Aggregations aggs.Aggregations        `json:"aggs,omitempty"`
	SearchAfter  []any                    `json:"search_after,omitempty"`
	ScriptFields map[string]ScriptField   `json:"script_fields,omitempty"`
	StoredFields []string                 `json:"stored_fields,omitempty"`
	Explain      *bool                    `json:"explain,omitempty"`
	Version      *bool                    `json:"version,omitempty"`
	MinScore     *float64                 `json:"min_score,omitempty"`
	TrackTotal   *bool                    `json:"track_total_hits,omitempty"`
}

// ScriptField computes a per-hit field from a script.
type ScriptField struct {
	Script script.Script `json:"script"`
}

// Builder accumulates a search request. Build validates that a query is
// present and returns the finished body.
type Builder struct {
	req  Request
	hasQ bool
}

// NewBuilder starts an empty search request builder.
func NewBuilder() *Builder { return &Builder{} }

// Query sets the request query.
func (b *Builder) Query(q query.Query) *Builder {
	b.req.Query = &q
	b.hasQ = true
	return b
}

// From sets the result offset.
func (b *Builder) From(n int) *Builder { b.req.From = &n; return b }

// Size sets the page size.
func (b *Builder) Size(n int) *Builder { b.req.Size = &n; return b }

// Sort appends sort criteria in order.
func (b *Builder) Sort(terms ...SortTerm) *Builder {
	b.req.Sort = append(b.req.Sort[:len(b.req.Sort):len(b.req.Sort)], terms...)
	return b
}

// Source sets the source filter.
func (b *Builder) Source(f osdsl.SourceFilter) *Builder { b.req.Source = &f; return b }

// Highlight sets the highlight options.
func (b *Builder) Highlight(h HighlightOptions) *Builder { b.req.Highlight = &h; return b }

// Aggregations sets the aggregation tree.
func (b *Builder) Aggregations(a aggs.Aggregations) *Builder {
	b.req.Aggregations = a
	return b
}

// SearchAfter sets the search_after cursor from a previous hit's sort
// values.
func (b *Builder) SearchAfter(values ...any) *Builder {
	b.req.SearchAfter = values
	return b
}

// MinScore drops hits scoring below the threshold.
func (b *Builder) MinScore(s float64) *Builder { b.req.MinScore = &s; return b }

// TrackTotalHits requests an exact total hit count.
func (b *Builder) TrackTotalHits(v bool) *Builder { b.req.TrackTotal = &v; return b }

// Build finalizes the request.
func (b *Builder) Build() (Request, error) {
	if !b.hasQ {
		return Request{}, osdsl.NewMissingFieldError("search.Builder", "query")
	}
	return b.req, nil
}
