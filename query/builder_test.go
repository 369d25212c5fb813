package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	osdsl "github.com/ca-srg/osdsl"
)

func TestMatchBuilderSimpleForm(t *testing.T) {
	q, err := NewMatch("title").Query("opensearch").Build()
	require.NoError(t, err)
	assert.JSONEq(t, `{"match":{"title":"opensearch"}}`, marshal(t, q))
}

func TestMatchBuilderAdvancedForm(t *testing.T) {
	q, err := NewMatch("title").
		Query("opensearch").
		Operator(OperatorAnd).
		Boost(1.5).
		Build()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"match":{"title":{"query":"opensearch","operator":"and","boost":1.5}}}`,
		marshal(t, q))
}

func TestBuilderMissingFieldErrors(t *testing.T) {
	_, err := NewMatch("title").Build()
	require.Error(t, err)
	var mfe *osdsl.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "query", mfe.Field)
	assert.True(t, osdsl.IsMissingField(err))

	_, err = NewMatch("").Query("x").Build()
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "field", mfe.Field)

	_, err = NewTerm("status").Build()
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "value", mfe.Field)

	_, err = NewRange("age").Build()
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "bound", mfe.Field)

	_, err = NewBool().Build()
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "clauses", mfe.Field)

	_, err = NewQueryString().Build()
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "query", mfe.Field)
}

func TestTermBuilder(t *testing.T) {
	q, err := NewTerm("status").Value("active").CaseInsensitive(true).Build()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"term":{"status":{"value":"active","case_insensitive":true}}}`,
		marshal(t, q))
}

func TestRangeBuilder(t *testing.T) {
	q, err := NewRange("age").GTE(18).LT(65).Build()
	require.NoError(t, err)
	assert.JSONEq(t, `{"range":{"age":{"gte":18,"lt":65}}}`, marshal(t, q))
}

func TestBoolBuilderAccumulatesInOrder(t *testing.T) {
	q, err := NewBool().
		Must(MatchText("a", "1")).
		Must(MatchText("b", "2")).
		Should(TermValue("c", 3)).
		Filter(Exists("d")).
		MinimumShouldMatch(osdsl.MSMCount(1)).
		Build()
	require.NoError(t, err)

	require.NotNil(t, q.Bool)
	require.Len(t, q.Bool.Must, 2)
	assert.Contains(t, q.Bool.Must[0].Match, "a")
	assert.Contains(t, q.Bool.Must[1].Match, "b")
	assert.Len(t, q.Bool.Should, 1)
	assert.Len(t, q.Bool.Filter, 1)
}

func TestBuilderCopyIndependence(t *testing.T) {
	base := NewBool().Must(MatchText("shared", "x"))

	left := *base
	right := *base
	left.Must(MatchText("left", "1"))
	right.Must(MatchText("right", "2"))

	lq, err := left.Build()
	require.NoError(t, err)
	rq, err := right.Build()
	require.NoError(t, err)

	require.Len(t, lq.Bool.Must, 2)
	require.Len(t, rq.Bool.Must, 2)
	assert.Contains(t, lq.Bool.Must[1].Match, "left")
	assert.Contains(t, rq.Bool.Must[1].Match, "right")
}

func TestQueryStringBuilder(t *testing.T) {
	q, err := NewQueryString().
		Query("quick AND fox").
		Fields("title", "body").
		DefaultOperator(OperatorOr).
		Build()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"query_string":{"query":"quick AND fox","fields":["title","body"],"default_operator":"or"}}`,
		marshal(t, q))
}

func TestBuiltQueryDecodesBack(t *testing.T) {
	q, err := NewBool().
		Must(MatchText("title", "go")).
		Filter(TermValue("lang", "en")).
		Build()
	require.NoError(t, err)

	data, err := json.Marshal(q)
	require.NoError(t, err)
	var back Query
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "bool", back.Kind())
}
