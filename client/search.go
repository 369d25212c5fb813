package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/search"
)

// SearchNamespace groups query operations.
type SearchNamespace struct {
	client *Client
}

// Search returns the query namespace.
func (c *Client) Search() *SearchNamespace {
	return &SearchNamespace{client: c}
}

// SearchOptions are the per-request parameters of a search.
type SearchOptions struct {
	Routing    string
	Preference string
	SearchType string
	// Scroll opens a scroll context held for the given duration, e.g. "5m".
	Scroll string
}

func (o *SearchOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Routing != "" {
		v.Set("routing", o.Routing)
	}
	if o.Preference != "" {
		v.Set("preference", o.Preference)
	}
	if o.SearchType != "" {
		v.Set("search_type", o.SearchType)
	}
	if o.Scroll != "" {
		v.Set("scroll", o.Scroll)
	}
	return v
}

// Do runs a search. An empty index searches all indices.
func (n *SearchNamespace) Do(ctx context.Context, index string, req search.Request, opts *SearchOptions) (*search.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	path := "/_search"
	if index != "" {
		path = "/" + index + "/_search"
	}

	data, err := n.client.do(ctx, http.MethodPost, path, opts.values(), body, jsonContentType, "search")
	if err != nil {
		return nil, err
	}
	return search.DecodeResponse(data)
}

// MSearch runs a batch of searches in one request. Responses align
// positionally with the items; a failed item does not fail the batch.
func (n *SearchNamespace) MSearch(ctx context.Context, items []search.MSearchItem) (*search.MSearchResponse, error) {
	if len(items) == 0 {
		return nil, osdsl.NewMissingFieldError("client.Search", "items")
	}
	body, err := search.EncodeMSearch(items)
	if err != nil {
		return nil, err
	}

	data, err := n.client.do(ctx, http.MethodPost, "/_msearch", nil, body, search.MSearchContentType, "msearch")
	if err != nil {
		return nil, err
	}
	var resp search.MSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "msearch response", data, err)
	}
	return &resp, nil
}

// Scroll continues a scrolled search, extending the context by keepAlive.
func (n *SearchNamespace) Scroll(ctx context.Context, scrollID, keepAlive string) (*search.ScrollResponse, error) {
	if scrollID == "" {
		return nil, osdsl.NewMissingFieldError("client.Search", "scroll_id")
	}
	body, err := json.Marshal(map[string]string{
		"scroll":    keepAlive,
		"scroll_id": scrollID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scroll request: %w", err)
	}

	data, err := n.client.do(ctx, http.MethodPost, "/_search/scroll", nil, body, jsonContentType, "scroll")
	if err != nil {
		return nil, err
	}
	var resp search.ScrollResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "scroll response", data, err)
	}
	return &resp, nil
}

// ClearScroll frees the given scroll contexts.
func (n *SearchNamespace) ClearScroll(ctx context.Context, scrollIDs ...string) (*search.ClearScrollResponse, error) {
	if len(scrollIDs) == 0 {
		return nil, osdsl.NewMissingFieldError("client.Search", "scroll_id")
	}
	body, err := json.Marshal(map[string][]string{"scroll_id": scrollIDs})
	if err != nil {
		return nil, fmt.Errorf("failed to encode clear scroll request: %w", err)
	}

	data, err := n.client.do(ctx, http.MethodDelete, "/_search/scroll", nil, body, jsonContentType, "clear_scroll")
	if err != nil {
		return nil, err
	}
	var resp search.ClearScrollResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "clear scroll response", data, err)
	}
	return &resp, nil
}
