package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/script"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestMatchSimpleWireForm(t *testing.T) {
	q := MatchText("title", "opensearch")
	assert.JSONEq(t, `{"match":{"title":"opensearch"}}`, marshal(t, q))
}

func TestMatchAdvancedWireForm(t *testing.T) {
	boost := 2.0
	fz := osdsl.FuzzinessAuto()
	q := Match("title", MatchAdvanced(MatchParams{
		Query:     "opensearch",
		Operator:  OperatorAnd,
		Fuzziness: &fz,
		Boost:     &boost,
	}))
	assert.JSONEq(t,
		`{"match":{"title":{"query":"opensearch","operator":"and","fuzziness":"auto","boost":2}}}`,
		marshal(t, q))
}

func TestTermWireForm(t *testing.T) {
	q := TermValue("status", "active")
	assert.JSONEq(t, `{"term":{"status":{"value":"active"}}}`, marshal(t, q))
}

func TestMatchAllAndNone(t *testing.T) {
	assert.JSONEq(t, `{"match_all":{}}`, marshal(t, MatchAll()))
	assert.JSONEq(t, `{"match_all":{"boost":1.2}}`, marshal(t, MatchAllBoosted(1.2)))
	assert.JSONEq(t, `{"match_none":{}}`, marshal(t, MatchNone()))
}

func TestSingleTopLevelKey(t *testing.T) {
	queries := []Query{
		MatchText("f", "v"),
		TermValue("f", 1),
		Terms("f", TermsSimple("a", "b")),
		Range("f", RangeRule{GTE: 1, LT: 10}),
		Exists("f"),
		IDs("1", "2"),
		Prefix("f", PrefixSimple("pre")),
		Wildcard("f", WildcardSimple("pre*")),
		Regexp("f", RegexpSimple("p.*")),
		Fuzzy("f", FuzzyRule{Value: "term"}),
		MatchAll(),
		MatchNone(),
		QueryString(QueryStringQuery{Query: "a AND b"}),
	}
	for _, q := range queries {
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(marshal(t, q)), &m))
		assert.Len(t, m, 1, "query kind %s", q.Kind())
		_, ok := m[q.Kind()]
		assert.True(t, ok, "key should be %s", q.Kind())
	}
}

func TestBoolClauseOrderPreserved(t *testing.T) {
	q := Bool(BoolQuery{
		Must: []Query{
			MatchText("a", "1"),
			MatchText("b", "2"),
			MatchText("c", "3"),
		},
	})
	data := marshal(t, q)

	var back Query
	require.NoError(t, json.Unmarshal([]byte(data), &back))
	require.NotNil(t, back.Bool)
	require.Len(t, back.Bool.Must, 3)
	assert.Contains(t, back.Bool.Must[0].Match, "a")
	assert.Contains(t, back.Bool.Must[1].Match, "b")
	assert.Contains(t, back.Bool.Must[2].Match, "c")
}

func TestBoolWireForm(t *testing.T) {
	msm := osdsl.MSMCount(1)
	q := Bool(BoolQuery{
		Must:               []Query{MatchText("title", "search")},
		Filter:             []Query{TermValue("status", "published")},
		MinimumShouldMatch: &msm,
	})
	assert.JSONEq(t, `{
		"bool":{
			"must":[{"match":{"title":"search"}}],
			"filter":[{"term":{"status":{"value":"published"}}}],
			"minimum_should_match":1
		}
	}`, marshal(t, q))
}

func TestNestedQueryRoundTrip(t *testing.T) {
	inner := MatchText("comments.author", "kimchy")
	q := Nested(NestedQuery{
		Path:      "comments",
		Query:     &inner,
		ScoreMode: NestedScoreAvg,
	})
	data := marshal(t, q)
	assert.JSONEq(t,
		`{"nested":{"path":"comments","query":{"match":{"comments.author":"kimchy"}},"score_mode":"avg"}}`,
		data)

	var back Query
	require.NoError(t, json.Unmarshal([]byte(data), &back))
	require.NotNil(t, back.Nested)
	assert.Equal(t, "comments", back.Nested.Path)
	require.NotNil(t, back.Nested.Query)
	assert.Equal(t, "match", back.Nested.Query.Kind())
}

func TestScriptQueryWireForm(t *testing.T) {
	q := ScriptFilter(script.Inline("doc['n'].value > 1").WithLang("painless"))
	assert.JSONEq(t,
		`{"script":{"script":{"source":"doc['n'].value > 1","lang":"painless"}}}`,
		marshal(t, q))
}

func TestHasChildRoundTrip(t *testing.T) {
	inner := TermValue("tag", "urgent")
	min := 2
	q := HasChild(HasChildQuery{
		Type:        "comment",
		Query:       &inner,
		ScoreMode:   ChildScoreSum,
		MinChildren: &min,
	})
	data := marshal(t, q)

	var back Query
	require.NoError(t, json.Unmarshal([]byte(data), &back))
	require.NotNil(t, back.HasChild)
	assert.Equal(t, "comment", back.HasChild.Type)
	assert.Equal(t, ChildScoreSum, back.HasChild.ScoreMode)
	require.NotNil(t, back.HasChild.MinChildren)
	assert.Equal(t, 2, *back.HasChild.MinChildren)
}

func TestOptionalFieldsOmitted(t *testing.T) {
	q := Range("age", RangeRule{GTE: 10})
	assert.Equal(t, `{"range":{"age":{"gte":10}}}`, marshal(t, q))

	q = Exists("user")
	assert.Equal(t, `{"exists":{"field":"user"}}`, marshal(t, q))
}

func TestQueryStringWireForm(t *testing.T) {
	q := QueryString(QueryStringQuery{
		Query:           "title:(quick OR brown)",
		DefaultOperator: OperatorAnd,
		Type:            QueryStringCrossFields,
	})
	assert.JSONEq(t,
		`{"query_string":{"query":"title:(quick OR brown)","default_operator":"and","type":"cross_fields"}}`,
		marshal(t, q))
}

func TestMultiMatchRoundTrip(t *testing.T) {
	tie := 0.3
	q := MultiMatch(MultiMatchQuery{
		Query:      "quick brown fox",
		Fields:     []string{"title^2", "body"},
		Type:       MatchTypeBestFields,
		TieBreaker: &tie,
	})
	data := marshal(t, q)
	assert.JSONEq(t,
		`{"multi_match":{"query":"quick brown fox","fields":["title^2","body"],"type":"best_fields","tie_breaker":0.3}}`,
		data)

	var back Query
	require.NoError(t, json.Unmarshal([]byte(data), &back))
	require.NotNil(t, back.MultiMatch)
	assert.Equal(t, []string{"title^2", "body"}, back.MultiMatch.Fields)
}

func TestMoreLikeThisWireForm(t *testing.T) {
	minTF := 1
	q := MoreLikeThis(MoreLikeThisQuery{
		Fields:      []string{"title", "description"},
		LikeText:    "search engines",
		MinTermFreq: &minTF,
	})
	assert.JSONEq(t,
		`{"more_like_this":{"fields":["title","description"],"like_text":"search engines","min_term_freq":1}}`,
		marshal(t, q))
}
