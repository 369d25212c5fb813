package bulk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	osdsl "github.com/ca-srg/osdsl"
)

// ContentType is the media type of an encoded bulk body.
const ContentType = "application/x-ndjson"

// Encode folds the operations, in caller order, into a newline-delimited
// body: one action line per operation, followed by its payload line unless
// the operation is a delete. A batch of N operations with K deletes yields
// 2N-K newline-terminated lines.
func Encode(ops []Operation) ([]byte, error) {
	var buf bytes.Buffer
	for i, op := range ops {
		if err := op.validate(); err != nil {
			return nil, fmt.Errorf("bulk: operation %d: %w", i, err)
		}
		action, err := json.Marshal(map[string]Metadata{op.action: op.meta})
		if err != nil {
			return nil, fmt.Errorf("bulk: operation %d: encode action line: %w", i, err)
		}
		buf.Write(action)
		buf.WriteByte('\n')
		if op.doc == nil {
			continue
		}
		doc, err := json.Marshal(op.doc)
		if err != nil {
			return nil, fmt.Errorf("bulk: operation %d: encode document line: %w", i, err)
		}
		buf.Write(doc)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// LineCount returns the number of non-empty lines Encode produces for the
// batch.
func LineCount(ops []Operation) int {
	n := 0
	for _, op := range ops {
		n++
		if op.doc != nil {
			n++
		}
	}
	return n
}

// Params are the request-level bulk parameters, carried in the query
// string.
type Params struct {
	Refresh             osdsl.RefreshPolicy
	Index               string
	Routing             string
	Timeout             string
	WaitForActiveShards string
	Pipeline            string
	RequireAlias        *bool
}

// Values renders the parameters as URL query values, omitting unset ones.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Refresh != "" {
		v.Set("refresh", p.Refresh.String())
	}
	if p.Routing != "" {
		v.Set("routing", p.Routing)
	}
	if p.Timeout != "" {
		v.Set("timeout", p.Timeout)
	}
	if p.WaitForActiveShards != "" {
		v.Set("wait_for_active_shards", p.WaitForActiveShards)
	}
	if p.Pipeline != "" {
		v.Set("pipeline", p.Pipeline)
	}
	if p.RequireAlias != nil {
		v.Set("require_alias", strconv.FormatBool(*p.RequireAlias))
	}
	return v
}

// Path returns the request path for the batch: /_bulk, or /<index>/_bulk
// when a default index is set.
func (p Params) Path() string {
	if p.Index != "" {
		return "/" + p.Index + "/_bulk"
	}
	return "/_bulk"
}
