package search

import (
	"encoding/json"

	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/aggs"
)

// Response is the body of a search response. Documents stay raw so callers
// decode _source into their own types; Aggregations stays raw until decoded
// against the request's aggregation tree.
type Response struct {
	Took         int64                 `json:"took"`
	TimedOut     bool                  `json:"timed_out"`
	Shards       osdsl.ShardStatistics `json:"_shards"`
	Hits         Hits                  `json:"hits"`
	Aggregations json.RawMessage       `json:"aggregations,omitempty"`
	Suggest      json.RawMessage       `json:"suggest,omitempty"`
	Profile      json.RawMessage       `json:"profile,omitempty"`
	ScrollID     string                `json:"_scroll_id,omitempty"`
}

// DecodeAggregations decodes the response's aggregations section against
// the tree that was requested.
func (r *Response) DecodeAggregations(req aggs.Aggregations) (aggs.Results, error) {
	return aggs.DecodeAggregations(r.Aggregations, req)
}

// Hits is the hits envelope of a search response.
type Hits struct {
	Total    *osdsl.TotalHits `json:"total,omitempty"`
	MaxScore *float64         `json:"max_score,omitempty"`
	Hits     []Hit            `json:"hits"`
}

// Hit is one matching document.
type Hit struct {
	Index     string                     `json:"_index"`
	ID        string                     `json:"_id"`
	Score     *float64                   `json:"_score"`
	Source    json.RawMessage            `json:"_source,omitempty"`
	Fields    map[string]json.RawMessage `json:"fields,omitempty"`
	Highlight map[string][]string        `json:"highlight,omitempty"`
	InnerHits map[string]json.RawMessage `json:"inner_hits,omitempty"`
	Sort      []any                      `json:"sort,omitempty"`
}

// DecodeSource decodes the hit's _source into v.
func (h Hit) DecodeSource(v any) error {
	if err := json.Unmarshal(h.Source, v); err != nil {
		return osdsl.NewDecodeError("_source", "document", h.Source, err)
	}
	return nil
}

// DecodeResponse decodes a search response body.
func DecodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "search response", data, err)
	}
	return &resp, nil
}

// ScrollResponse is the body of a scroll continuation response.
type ScrollResponse struct {
	Response
}

// ClearScrollResponse reports how many scroll contexts were freed.
type ClearScrollResponse struct {
	Succeeded bool `json:"succeeded"`
	NumFreed  int  `json:"num_freed"`
}
