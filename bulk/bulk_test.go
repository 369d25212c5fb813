package bulk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/script"
)

func TestEncodeExactBytes(t *testing.T) {
	ops := []Operation{
		IndexOp("idx", "doc1", map[string]any{"a": 1}),
		DeleteOp("idx", "doc1"),
	}
	body, err := Encode(ops)
	require.NoError(t, err)
	assert.Equal(t,
		"{\"index\":{\"_index\":\"idx\",\"_id\":\"doc1\"}}\n{\"a\":1}\n{\"delete\":{\"_index\":\"idx\",\"_id\":\"doc1\"}}\n",
		string(body))
}

func TestEncodeLineCount(t *testing.T) {
	ops := []Operation{
		IndexOp("idx", "1", map[string]any{"v": 1}),
		CreateOp("idx", "2", map[string]any{"v": 2}),
		UpdateOp("idx", "3", UpdateDocument{Doc: map[string]any{"v": 3}}),
		DeleteOp("idx", "4"),
		DeleteOp("idx", "5"),
	}
	body, err := Encode(ops)
	require.NoError(t, err)

	// 5 operations, 2 deletes: 2*5-2 = 8 lines.
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	assert.Len(t, lines, 8)
	assert.Equal(t, 8, LineCount(ops))
	assert.True(t, strings.HasSuffix(string(body), "\n"))
}

func TestEncodePreservesCallerOrder(t *testing.T) {
	ops := []Operation{
		IndexOp("idx", "a", map[string]any{"n": 1}),
		UpdateOp("idx", "b", UpdateDocument{Doc: map[string]any{"n": 2}}),
		DeleteOp("idx", "c"),
	}
	body, err := Encode(ops)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], `"index"`)
	assert.Contains(t, lines[2], `"update"`)
	assert.Contains(t, lines[4], `"delete"`)
}

func TestEncodeServerAssignedID(t *testing.T) {
	body, err := Encode([]Operation{IndexOp("idx", "", map[string]any{"a": 1})})
	require.NoError(t, err)
	assert.Equal(t, "{\"index\":{\"_index\":\"idx\"}}\n{\"a\":1}\n", string(body))
}

func TestUpdateWithScriptAndUpsert(t *testing.T) {
	s := script.Inline("ctx._source.counter += params.n").
		WithParams(map[string]any{"n": 1})
	op := UpdateOp("idx", "doc1", UpdateDocument{
		Script: &s,
		Upsert: map[string]any{"counter": 0},
	})
	body, err := Encode([]Operation{op})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t,
		`{"script":{"source":"ctx._source.counter += params.n","params":{"n":1}},"upsert":{"counter":0}}`,
		lines[1])
}

func TestEncodeRejectsMissingID(t *testing.T) {
	_, err := Encode([]Operation{DeleteOp("idx", "")})
	require.Error(t, err)
	assert.True(t, osdsl.IsMissingField(err))

	_, err = Encode([]Operation{UpdateOp("idx", "", UpdateDocument{Doc: map[string]any{}})})
	require.Error(t, err)
	assert.True(t, osdsl.IsMissingField(err))
}

func TestEncodeRejectsNilDocument(t *testing.T) {
	// A skipped document line would desync the framing of every operation
	// that follows, so index and create refuse nil documents up front.
	_, err := Encode([]Operation{IndexOp("idx", "1", nil)})
	require.Error(t, err)
	assert.True(t, osdsl.IsMissingField(err))

	_, err = Encode([]Operation{CreateOp("idx", "2", nil)})
	require.Error(t, err)
	assert.True(t, osdsl.IsMissingField(err))
}

func TestParamsValues(t *testing.T) {
	ra := true
	p := Params{
		Refresh:             osdsl.RefreshWaitFor,
		Routing:             "user1",
		Timeout:             "30s",
		WaitForActiveShards: "all",
		Pipeline:            "enrich",
		RequireAlias:        &ra,
	}
	v := p.Values()
	assert.Equal(t, "wait_for", v.Get("refresh"))
	assert.Equal(t, "user1", v.Get("routing"))
	assert.Equal(t, "30s", v.Get("timeout"))
	assert.Equal(t, "all", v.Get("wait_for_active_shards"))
	assert.Equal(t, "enrich", v.Get("pipeline"))
	assert.Equal(t, "true", v.Get("require_alias"))

	assert.Empty(t, Params{}.Values())
}

func TestParamsPath(t *testing.T) {
	assert.Equal(t, "/_bulk", Params{}.Path())
	assert.Equal(t, "/logs/_bulk", Params{Index: "logs"}.Path())
}

func TestDecodeResponsePositionalAlignment(t *testing.T) {
	raw := []byte(`{
		"took": 30,
		"errors": true,
		"items": [
			{"index":{"_index":"idx","_id":"1","_version":1,"result":"created","status":201}},
			{"update":{"_index":"idx","_id":"2","status":404,"error":{"type":"document_missing_exception","reason":"[2]: document missing"}}},
			{"delete":{"_index":"idx","_id":"3","result":"deleted","status":200}}
		]
	}`)
	resp, err := DecodeResponse(raw)
	require.NoError(t, err)

	assert.True(t, resp.Errors)
	require.Len(t, resp.Items, 3)

	assert.False(t, resp.Items[0].Failed())
	assert.Equal(t, "created", resp.Items[0].Outcome().Result)

	assert.True(t, resp.Items[1].Failed())
	require.NotNil(t, resp.Items[1].Update)
	assert.Equal(t, "document_missing_exception", resp.Items[1].Update.Error.Type)

	assert.False(t, resp.Items[2].Failed())

	failed := resp.FailedItems()
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].Position)
}

func TestDecodeResponseAllSucceeded(t *testing.T) {
	raw := []byte(`{"took":5,"errors":false,"items":[
		{"create":{"_index":"idx","_id":"a","result":"created","status":201}}
	]}`)
	resp, err := DecodeResponse(raw)
	require.NoError(t, err)
	assert.False(t, resp.Errors)
	assert.Empty(t, resp.FailedItems())
}

func TestDecodeResponseMalformed(t *testing.T) {
	_, err := DecodeResponse([]byte(`{"took":`))
	require.Error(t, err)
	var de *osdsl.DecodeError
	assert.ErrorAs(t, err, &de)
}
