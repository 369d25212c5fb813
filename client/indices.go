package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	osdsl "github.com/ca-srg/osdsl"
)

// IndicesNamespace groups index management operations.
type IndicesNamespace struct {
	client *Client
}

// Indices returns the index management namespace.
func (c *Client) Indices() *IndicesNamespace {
	return &IndicesNamespace{client: c}
}

// IndexDefinition is the body of an index creation request.
type IndexDefinition struct {
	Settings map[string]any `json:"settings,omitempty"`
	Mappings map[string]any `json:"mappings,omitempty"`
	Aliases  map[string]any `json:"aliases,omitempty"`
}

// AcknowledgedResponse is the server's acknowledgement of an index change.
type AcknowledgedResponse struct {
	Acknowledged       bool   `json:"acknowledged"`
	ShardsAcknowledged bool   `json:"shards_acknowledged,omitempty"`
	Index              string `json:"index,omitempty"`
}

// Create creates an index with the given settings and mappings.
func (n *IndicesNamespace) Create(ctx context.Context, index string, def IndexDefinition) (*AcknowledgedResponse, error) {
	if index == "" {
		return nil, osdsl.NewMissingFieldError("client.Indices", "index")
	}
	body, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to encode index definition: %w", err)
	}

	data, err := n.client.do(ctx, http.MethodPut, "/"+index, nil, body, jsonContentType, "create_index")
	if err != nil {
		return nil, err
	}
	return decodeAcknowledged(data)
}

// Delete removes an index and all its documents.
func (n *IndicesNamespace) Delete(ctx context.Context, index string) (*AcknowledgedResponse, error) {
	if index == "" {
		return nil, osdsl.NewMissingFieldError("client.Indices", "index")
	}

	data, err := n.client.do(ctx, http.MethodDelete, "/"+index, nil, nil, "", "delete_index")
	if err != nil {
		return nil, err
	}
	return decodeAcknowledged(data)
}

// Exists reports whether the index exists.
func (n *IndicesNamespace) Exists(ctx context.Context, index string) (bool, error) {
	if index == "" {
		return false, osdsl.NewMissingFieldError("client.Indices", "index")
	}

	_, err := n.client.do(ctx, http.MethodHead, "/"+index, nil, nil, "", "index_exists")
	if err != nil {
		if reqErr, ok := err.(*RequestError); ok && reqErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RefreshResponse reports the shards touched by a refresh.
type RefreshResponse struct {
	Shards osdsl.ShardStatistics `json:"_shards"`
}

// Refresh makes all writes to the index visible to search.
func (n *IndicesNamespace) Refresh(ctx context.Context, index string) (*RefreshResponse, error) {
	if index == "" {
		return nil, osdsl.NewMissingFieldError("client.Indices", "index")
	}

	data, err := n.client.do(ctx, http.MethodPost, "/"+index+"/_refresh", nil, nil, "", "refresh_index")
	if err != nil {
		return nil, err
	}
	var resp RefreshResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "refresh response", data, err)
	}
	return &resp, nil
}

func decodeAcknowledged(data []byte) (*AcknowledgedResponse, error) {
	var resp AcknowledgedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "acknowledged response", data, err)
	}
	return &resp, nil
}
