package client

import (
	"context"
	"net/http"

	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/bulk"
)

// BulkNamespace groups batch write operations.
type BulkNamespace struct {
	client *Client
}

// Bulk returns the batch write namespace.
func (c *Client) Bulk() *BulkNamespace {
	return &BulkNamespace{client: c}
}

// Do sends a batch of operations. The response's items align positionally
// with the operations; per-item failures are reported in the response, not
// as an error.
func (n *BulkNamespace) Do(ctx context.Context, ops []bulk.Operation, params bulk.Params) (*bulk.Response, error) {
	if len(ops) == 0 {
		return nil, osdsl.NewMissingFieldError("client.Bulk", "operations")
	}
	body, err := bulk.Encode(ops)
	if err != nil {
		return nil, err
	}

	data, err := n.client.do(ctx, http.MethodPost, params.Path(), params.Values(), body, bulk.ContentType, "bulk")
	if err != nil {
		return nil, err
	}
	return bulk.DecodeResponse(data)
}
