package search

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MSearchContentType is the media type of an encoded multi-search body.
const MSearchContentType = "application/x-ndjson"

// MSearchHeader is the per-search metadata line of a multi-search batch.
type MSearchHeader struct {
	Index      string `json:"index,omitempty"`
	SearchType string `json:"search_type,omitempty"`
	Preference string `json:"preference,omitempty"`
	Routing    string `json:"routing,omitempty"`
}

// MSearchItem pairs a header line with its search body.
type MSearchItem struct {
	Header MSearchHeader
	Body   Request
}

// EncodeMSearch folds the items into a multi-search body: alternating
// header and body lines, each newline-terminated, with one extra trailing
// newline closing the batch. Unlike bulk, the trailing blank line is part
// of the format.
func EncodeMSearch(items []MSearchItem) ([]byte, error) {
	var buf bytes.Buffer
	for i, item := range items {
		header, err := json.Marshal(item.Header)
		if err != nil {
			return nil, fmt.Errorf("msearch: item %d: encode header: %w", i, err)
		}
		buf.Write(header)
		buf.WriteByte('\n')
		body, err := json.Marshal(item.Body)
		if err != nil {
			return nil, fmt.Errorf("msearch: item %d: encode body: %w", i, err)
		}
		buf.Write(body)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// MSearchResponse is the body of a multi-search response. Responses align
// positionally with the submitted items.
type MSearchResponse struct {
	Took      int64                 `json:"took"`
	Responses []MSearchResponseItem `json:"responses"`
}

// MSearchResponseItem is one search outcome. A failed search carries Error
// and Status instead of the response fields; failure of one item does not
// fail the batch.
type MSearchResponseItem struct {
	Response
	Status int             `json:"status,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// Failed reports whether this item's search failed. An explicit JSON null
// error counts as success.
func (i MSearchResponseItem) Failed() bool {
	return len(i.Error) > 0 && string(i.Error) != "null"
}
