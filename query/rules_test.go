package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	osdsl "github.com/ca-srg/osdsl"
)

func TestRuleDecodeByTokenKind(t *testing.T) {
	t.Run("scalar decodes to simple form", func(t *testing.T) {
		var r MatchRule
		require.NoError(t, json.Unmarshal([]byte(`"opensearch"`), &r))
		assert.Nil(t, r.Advanced)
		assert.Equal(t, "opensearch", r.Query)
	})

	t.Run("object decodes to advanced form", func(t *testing.T) {
		var r MatchRule
		require.NoError(t, json.Unmarshal([]byte(`{"query":"opensearch","operator":"and"}`), &r))
		require.NotNil(t, r.Advanced)
		assert.Equal(t, "opensearch", r.Advanced.Query)
		assert.Equal(t, OperatorAnd, r.Advanced.Operator)
	})

	t.Run("leading whitespace does not change the form", func(t *testing.T) {
		var r MatchRule
		require.NoError(t, json.Unmarshal([]byte("\n\t {\"query\":\"x\"}"), &r))
		assert.NotNil(t, r.Advanced)
	})
}

func TestRuleFormSurvivesRoundTrip(t *testing.T) {
	// An advanced rule that sets only the query text must still come back
	// as an object, not collapse to the scalar form.
	r := MatchAdvanced(MatchParams{Query: "x"})
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"query":"x"}`, string(data))

	var back MatchRule
	require.NoError(t, json.Unmarshal(data, &back))
	assert.NotNil(t, back.Advanced)

	simple := MatchSimple("x")
	data, err = json.Marshal(simple)
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(data))
}

func TestTermsRuleForms(t *testing.T) {
	t.Run("simple is a bare array", func(t *testing.T) {
		r := TermsSimple("a", "b")
		data, err := json.Marshal(r)
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, string(data))

		var back TermsRule
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Nil(t, back.Advanced)
		assert.Equal(t, []any{"a", "b"}, back.Values)
	})

	t.Run("advanced is an object", func(t *testing.T) {
		ci := true
		r := TermsAdvanced(TermsParams{Values: []any{"a"}, CaseInsensitive: &ci})
		data, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"values":["a"],"case_insensitive":true}`, string(data))

		var back TermsRule
		require.NoError(t, json.Unmarshal(data, &back))
		require.NotNil(t, back.Advanced)
		assert.Equal(t, []any{"a"}, back.Advanced.Values)
	})

	t.Run("scalar is rejected", func(t *testing.T) {
		var r TermsRule
		err := json.Unmarshal([]byte(`"a"`), &r)
		assert.Error(t, err)
	})
}

func TestPrefixWildcardRegexpRules(t *testing.T) {
	cases := []struct {
		name string
		q    Query
		want string
	}{
		{"prefix simple", Prefix("user", PrefixSimple("ki")), `{"prefix":{"user":"ki"}}`},
		{"wildcard simple", Wildcard("user", WildcardSimple("ki*y")), `{"wildcard":{"user":"ki*y"}}`},
		{"regexp simple", Regexp("user", RegexpSimple("k.*y")), `{"regexp":{"user":"k.*y"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.JSONEq(t, tc.want, marshal(t, tc.q))

			var back Query
			require.NoError(t, json.Unmarshal([]byte(tc.want), &back))
			assert.Equal(t, tc.q.Kind(), back.Kind())
		})
	}

	ci := true
	q := Wildcard("user", WildcardAdvanced(WildcardParams{Value: "ki*y", CaseInsensitive: &ci}))
	assert.JSONEq(t, `{"wildcard":{"user":{"value":"ki*y","case_insensitive":true}}}`, marshal(t, q))
}

func TestFuzzinessValues(t *testing.T) {
	data, err := json.Marshal(osdsl.FuzzinessAuto())
	require.NoError(t, err)
	assert.Equal(t, `"auto"`, string(data))

	data, err = json.Marshal(osdsl.FuzzinessEdits(2))
	require.NoError(t, err)
	assert.Equal(t, `2`, string(data))

	var f osdsl.Fuzziness
	require.NoError(t, json.Unmarshal([]byte(`"auto"`), &f))
	assert.True(t, f.IsAuto())
	require.NoError(t, json.Unmarshal([]byte(`1`), &f))
	assert.False(t, f.IsAuto())

	assert.Error(t, json.Unmarshal([]byte(`"bogus"`), &f))
}

func TestMinimumShouldMatchValues(t *testing.T) {
	data, err := json.Marshal(osdsl.MSMCount(2))
	require.NoError(t, err)
	assert.Equal(t, `2`, string(data))

	data, err = json.Marshal(osdsl.MSMSpec("75%"))
	require.NoError(t, err)
	assert.Equal(t, `"75%"`, string(data))

	var m osdsl.MinimumShouldMatch
	require.NoError(t, json.Unmarshal([]byte(`"2<-25%"`), &m))
	round, err := json.Marshal(m)
	require.NoError(t, err)
	// json.Marshal HTML-escapes '<'; the JSON string value is what matters.
	assert.JSONEq(t, `"2<-25%"`, string(round))
}

func TestTermsSetWireForm(t *testing.T) {
	q := TermsSet("skills", TermsSetRule{
		Terms:                   []any{"go", "rust"},
		MinimumShouldMatchField: "required_matches",
	})
	assert.JSONEq(t,
		`{"terms_set":{"skills":{"terms":["go","rust"],"minimum_should_match_field":"required_matches"}}}`,
		marshal(t, q))
}

func TestRangeRelationWireForm(t *testing.T) {
	q := Range("window", RangeRule{GTE: "2024-01-01", LTE: "2024-12-31", Relation: RelationWithin})
	assert.JSONEq(t,
		`{"range":{"window":{"gte":"2024-01-01","lte":"2024-12-31","relation":"within"}}}`,
		marshal(t, q))
}

func TestDecodeErrorCarriesRaw(t *testing.T) {
	var r MatchRule
	err := json.Unmarshal([]byte(`123`), &r)
	require.Error(t, err)
	var de *osdsl.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Raw, "123")
}
