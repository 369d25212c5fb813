package query

import (
	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/script"
)

// NestedQuery runs a query against documents in a nested field.
type NestedQuery struct {
	Path           string          `json:"path"`
	Query          *Query          `json:"query"`
	ScoreMode      NestedScoreMode `json:"score_mode,omitempty"`
	IgnoreUnmapped *bool           `json:"ignore_unmapped,omitempty"`
	Boost          *float64        `json:"boost,omitempty"`
}

// HasChildQuery matches parents whose children match the inner query.
type HasChildQuery struct {
	Type           string         `json:"type"`
	Query          *Query         `json:"query"`
	ScoreMode      ChildScoreMode `json:"score_mode,omitempty"`
	MinChildren    *int           `json:"min_children,omitempty"`
	MaxChildren    *int           `json:"max_children,omitempty"`
	IgnoreUnmapped *bool          `json:"ignore_unmapped,omitempty"`
	Boost          *float64       `json:"boost,omitempty"`
}

// HasParentQuery matches children whose parent matches the inner query.
type HasParentQuery struct {
	ParentType     string   `json:"parent_type"`
	Query          *Query   `json:"query"`
	Score          *bool    `json:"score,omitempty"`
	IgnoreUnmapped *bool    `json:"ignore_unmapped,omitempty"`
	Boost          *float64 `json:"boost,omitempty"`
}

// ParentIDQuery matches children of a specific parent document.
type ParentIDQuery struct {
	Type           string   `json:"type"`
	ID             string   `json:"id"`
	IgnoreUnmapped *bool    `json:"ignore_unmapped,omitempty"`
	Boost          *float64 `json:"boost,omitempty"`
}

// ScriptQuery filters documents with a script predicate.
type ScriptQuery struct {
	Script script.Script `json:"script"`
	Boost  *float64      `json:"boost,omitempty"`
}

// MoreLikeThisQuery finds documents similar to the given text or documents.
type MoreLikeThisQuery struct {
	Fields             []string                  `json:"fields,omitempty"`
	Like               []any                     `json:"like,omitempty"`
	LikeText           string                    `json:"like_text,omitempty"`
	MinTermFreq        *int                      `json:"min_term_freq,omitempty"`
	MaxQueryTerms      *int                      `json:"max_query_terms,omitempty"`
	StopWords          []string                  `json:"stop_words,omitempty"`
	MinDocFreq         *int                      `json:"min_doc_freq,omitempty"`
	MaxDocFreq         *int                      `json:"max_doc_freq,omitempty"`
	MinWordLength      *int                      `json:"min_word_length,omitempty"`
	MaxWordLength      *int                      `json:"max_word_length,omitempty"`
	BoostTerms         *float64                  `json:"boost_terms,omitempty"`
	Boost              *float64                  `json:"boost,omitempty"`
	Analyzer           string                    `json:"analyzer,omitempty"`
	MinimumShouldMatch *osdsl.MinimumShouldMatch `json:"minimum_should_match,omitempty"`
	Include            *bool                     `json:"include,omitempty"`
}
