package query

import (
	osdsl "github.com/ca-srg/osdsl"
)

// BoolQuery combines clause lists. Each list keeps the order its clauses
// were added in, both in memory and on the wire.
type BoolQuery struct {
	Must               []Query                   `json:"must,omitempty"`
	MustNot            []Query                   `json:"must_not,omitempty"`
	Should             []Query                   `json:"should,omitempty"`
	Filter             []Query                   `json:"filter,omitempty"`
	MinimumShouldMatch *osdsl.MinimumShouldMatch `json:"minimum_should_match,omitempty"`
	Boost              *float64                  `json:"boost,omitempty"`
}

// MultiMatchQuery searches the same text across several fields.
type MultiMatchQuery struct {
	Query                           string                    `json:"query"`
	Fields                          []string                  `json:"fields"`
	Type                            MatchType                 `json:"type,omitempty"`
	Operator                        Operator                  `json:"operator,omitempty"`
	MinimumShouldMatch              *osdsl.MinimumShouldMatch `json:"minimum_should_match,omitempty"`
	Boost                           *float64                  `json:"boost,omitempty"`
	Analyzer                        string                    `json:"analyzer,omitempty"`
	Fuzziness                       *osdsl.Fuzziness          `json:"fuzziness,omitempty"`
	PrefixLength                    *int                      `json:"prefix_length,omitempty"`
	MaxExpansions                   *int                      `json:"max_expansions,omitempty"`
	AutoGenerateSynonymsPhraseQuery *bool                     `json:"auto_generate_synonyms_phrase_query,omitempty"`
	Lenient                         *bool                     `json:"lenient,omitempty"`
	ZeroTermsQuery                  ZeroTermsQuery            `json:"zero_terms_query,omitempty"`
	Slop                            *int                      `json:"slop,omitempty"`
	TieBreaker                      *float64                  `json:"tie_breaker,omitempty"`
}

// QueryStringQuery parses a Lucene-syntax query string.
type QueryStringQuery struct {
	Query                     string                    `json:"query"`
	DefaultField              string                    `json:"default_field,omitempty"`
	Fields                    []string                  `json:"fields,omitempty"`
	DefaultOperator           Operator                  `json:"default_operator,omitempty"`
	Analyzer                  string                    `json:"analyzer,omitempty"`
	AnalyzeWildcard           *bool                     `json:"analyze_wildcard,omitempty"`
	LowercaseExpandedTerms    *bool                     `json:"lowercase_expanded_terms,omitempty"`
	EnablePositionIncrements  *bool                     `json:"enable_position_increments,omitempty"`
	FuzzyMaxExpansions        *int                      `json:"fuzzy_max_expansions,omitempty"`
	Fuzziness                 *osdsl.Fuzziness          `json:"fuzziness,omitempty"`
	FuzzyPrefixLength         *int                      `json:"fuzzy_prefix_length,omitempty"`
	FuzzyRewrite              string                    `json:"fuzzy_rewrite,omitempty"`
	PhraseSlop                *int                      `json:"phrase_slop,omitempty"`
	Boost                     *float64                  `json:"boost,omitempty"`
	AutoGeneratePhraseQueries *bool                     `json:"auto_generate_phrase_queries,omitempty"`
	AllowLeadingWildcard      *bool                     `json:"allow_leading_wildcard,omitempty"`
	MaxDeterminizedStates     *int                      `json:"max_determinized_states,omitempty"`
	MinimumShouldMatch        *osdsl.MinimumShouldMatch `json:"minimum_should_match,omitempty"`
	Lenient                   *bool                     `json:"lenient,omitempty"`
	TimeZone                  string                    `json:"time_zone,omitempty"`
	Type                      QueryStringType           `json:"type,omitempty"`
}

// ExistsQuery matches documents that have any value for a field.
type ExistsQuery struct {
	Field string   `json:"field"`
	Boost *float64 `json:"boost,omitempty"`
}

// IDsQuery matches documents by _id.
type IDsQuery struct {
	Values []string `json:"values"`
	Boost  *float64 `json:"boost,omitempty"`
}

// MatchAllQuery matches every document.
type MatchAllQuery struct {
	Boost *float64 `json:"boost,omitempty"`
}

// MatchNoneQuery matches nothing.
type MatchNoneQuery struct{}
