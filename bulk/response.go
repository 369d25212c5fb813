package bulk

import (
	"encoding/json"

	osdsl "github.com/ca-srg/osdsl"
)

// Response is the body of a bulk response. Items align positionally with
// the operations that were sent; Errors is true when any item failed.
// A failed item is data for the caller to inspect, not an error.
type Response struct {
	Took   int64  `json:"took"`
	Errors bool   `json:"errors"`
	Items  []Item `json:"items"`
}

// Item is one per-operation outcome, keyed by the action that produced it.
type Item struct {
	Index  *OperationResponse `json:"index,omitempty"`
	Create *OperationResponse `json:"create,omitempty"`
	Update *OperationResponse `json:"update,omitempty"`
	Delete *OperationResponse `json:"delete,omitempty"`
}

// Outcome returns the populated operation response regardless of action
// kind, or nil for a malformed item.
func (i Item) Outcome() *OperationResponse {
	switch {
	case i.Index != nil:
		return i.Index
	case i.Create != nil:
		return i.Create
	case i.Update != nil:
		return i.Update
	case i.Delete != nil:
		return i.Delete
	}
	return nil
}

// Failed reports whether the item carries an error or a non-2xx status.
func (i Item) Failed() bool {
	out := i.Outcome()
	if out == nil {
		return true
	}
	return out.Error != nil || out.Status >= 300
}

// OperationResponse is the server's outcome for one operation.
type OperationResponse struct {
	Index       string                 `json:"_index"`
	ID          string                 `json:"_id"`
	Version     int64                  `json:"_version,omitempty"`
	Result      string                 `json:"result,omitempty"`
	Status      int                    `json:"status"`
	SeqNo       *int64                 `json:"_seq_no,omitempty"`
	PrimaryTerm *int64                 `json:"_primary_term,omitempty"`
	Shards      *osdsl.ShardStatistics `json:"_shards,omitempty"`
	Error       *ItemError             `json:"error,omitempty"`
}

// ItemError describes a failed operation.
type ItemError struct {
	Type      string          `json:"type"`
	Reason    string          `json:"reason"`
	Index     string          `json:"index,omitempty"`
	IndexUUID string          `json:"index_uuid,omitempty"`
	Shard     string          `json:"shard,omitempty"`
	CausedBy  json.RawMessage `json:"caused_by,omitempty"`
}

// DecodeResponse decodes a bulk response body.
func DecodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "bulk response", data, err)
	}
	return &resp, nil
}

// FailedItems pairs each failed item with its position in the batch.
func (r *Response) FailedItems() []FailedItem {
	var failed []FailedItem
	for i, item := range r.Items {
		if item.Failed() {
			failed = append(failed, FailedItem{Position: i, Item: item})
		}
	}
	return failed
}

// FailedItem is a failed outcome with the batch position it corresponds to.
type FailedItem struct {
	Position int
	Item     Item
}
