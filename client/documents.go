package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/bulk"
)

const jsonContentType = "application/json"

// DocumentsNamespace groups single-document operations.
type DocumentsNamespace struct {
	client *Client
}

// Documents returns the single-document namespace.
func (c *Client) Documents() *DocumentsNamespace {
	return &DocumentsNamespace{client: c}
}

// DocumentOptions are the per-request parameters of a document operation.
type DocumentOptions struct {
	Refresh     osdsl.RefreshPolicy
	Routing     string
	Version     *int64
	VersionType osdsl.VersionType
}

func (o *DocumentOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Refresh != "" {
		v.Set("refresh", o.Refresh.String())
	}
	if o.Routing != "" {
		v.Set("routing", o.Routing)
	}
	if o.Version != nil {
		v.Set("version", strconv.FormatInt(*o.Version, 10))
	}
	if o.VersionType != "" {
		v.Set("version_type", o.VersionType.String())
	}
	return v
}

// DocumentResponse is the server's outcome for a write operation.
type DocumentResponse struct {
	Index       string                `json:"_index"`
	ID          string                `json:"_id"`
	Version     int64                 `json:"_version"`
	Result      string                `json:"result"`
	SeqNo       int64                 `json:"_seq_no"`
	PrimaryTerm int64                 `json:"_primary_term"`
	Shards      osdsl.ShardStatistics `json:"_shards"`
}

// Index stores a document, replacing any existing document with the same
// id. An empty id lets the server assign one.
func (n *DocumentsNamespace) Index(ctx context.Context, index, id string, doc any, opts *DocumentOptions) (*DocumentResponse, error) {
	if index == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "index")
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	method := http.MethodPut
	path := "/" + index + "/_doc/" + id
	if id == "" {
		method = http.MethodPost
		path = "/" + index + "/_doc"
	}

	data, err := n.client.do(ctx, method, path, opts.values(), body, jsonContentType, "index_document")
	if err != nil {
		return nil, err
	}
	return decodeDocumentResponse(data)
}

// Create stores a document and fails with a conflict if the id already
// exists.
func (n *DocumentsNamespace) Create(ctx context.Context, index, id string, doc any, opts *DocumentOptions) (*DocumentResponse, error) {
	if index == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "index")
	}
	if id == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "id")
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	data, err := n.client.do(ctx, http.MethodPut, "/"+index+"/_create/"+id, opts.values(), body, jsonContentType, "create_document")
	if err != nil {
		return nil, err
	}
	return decodeDocumentResponse(data)
}

// GetResponse is a fetched document. Found is false when the id does not
// exist.
type GetResponse struct {
	Index       string          `json:"_index"`
	ID          string          `json:"_id"`
	Version     int64           `json:"_version,omitempty"`
	SeqNo       *int64          `json:"_seq_no,omitempty"`
	PrimaryTerm *int64          `json:"_primary_term,omitempty"`
	Found       bool            `json:"found"`
	Source      json.RawMessage `json:"_source,omitempty"`
}

// DecodeSource decodes the document's _source into v.
func (r *GetResponse) DecodeSource(v any) error {
	if err := json.Unmarshal(r.Source, v); err != nil {
		return osdsl.NewDecodeError("_source", "document", r.Source, err)
	}
	return nil
}

// Get fetches a document by id. A missing document returns a response with
// Found set to false, not an error.
func (n *DocumentsNamespace) Get(ctx context.Context, index, id string) (*GetResponse, error) {
	if index == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "index")
	}
	if id == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "id")
	}

	data, err := n.client.do(ctx, http.MethodGet, "/"+index+"/_doc/"+id, nil, nil, "", "get_document")
	if err != nil {
		if reqErr, ok := err.(*RequestError); ok && reqErr.StatusCode == http.StatusNotFound {
			return &GetResponse{Index: index, ID: id, Found: false}, nil
		}
		return nil, err
	}

	var resp GetResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "get response", data, err)
	}
	return &resp, nil
}

// Exists reports whether a document with the id exists.
func (n *DocumentsNamespace) Exists(ctx context.Context, index, id string) (bool, error) {
	if index == "" {
		return false, osdsl.NewMissingFieldError("client.Documents", "index")
	}
	if id == "" {
		return false, osdsl.NewMissingFieldError("client.Documents", "id")
	}

	_, err := n.client.do(ctx, http.MethodHead, "/"+index+"/_doc/"+id, nil, nil, "", "document_exists")
	if err != nil {
		if reqErr, ok := err.(*RequestError); ok && reqErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Update applies a partial document or script to an existing document.
func (n *DocumentsNamespace) Update(ctx context.Context, index, id string, update bulk.UpdateDocument, opts *DocumentOptions) (*DocumentResponse, error) {
	if index == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "index")
	}
	if id == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "id")
	}
	body, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update body: %w", err)
	}

	data, err := n.client.do(ctx, http.MethodPost, "/"+index+"/_update/"+id, opts.values(), body, jsonContentType, "update_document")
	if err != nil {
		return nil, err
	}
	return decodeDocumentResponse(data)
}

// Delete removes a document by id.
func (n *DocumentsNamespace) Delete(ctx context.Context, index, id string, opts *DocumentOptions) (*DocumentResponse, error) {
	if index == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "index")
	}
	if id == "" {
		return nil, osdsl.NewMissingFieldError("client.Documents", "id")
	}

	data, err := n.client.do(ctx, http.MethodDelete, "/"+index+"/_doc/"+id, opts.values(), nil, "", "delete_document")
	if err != nil {
		return nil, err
	}
	return decodeDocumentResponse(data)
}

func decodeDocumentResponse(data []byte) (*DocumentResponse, error) {
	var resp DocumentResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "document response", data, err)
	}
	return &resp, nil
}
