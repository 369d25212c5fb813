// Package query builds the polymorphic OpenSearch query tree. Every Query
// value holds exactly one active kind and serializes to an object with that
// kind as its single top-level key. Unset optional parameters are omitted
// from the wire form entirely.
package query

import (
	"github.com/ca-srg/osdsl/script"
)

// Query is the closed union of supported query kinds. Exactly one field is
// populated; the constructors below keep that invariant. Decoding a wire
// object restores whichever kind its top-level key names.
type Query struct {
	Match             map[string]MatchRule             `json:"match,omitempty"`
	MatchBoolPrefix   map[string]MatchBoolPrefixRule   `json:"match_bool_prefix,omitempty"`
	MatchPhrase       map[string]MatchPhraseRule       `json:"match_phrase,omitempty"`
	MatchPhrasePrefix map[string]MatchPhrasePrefixRule `json:"match_phrase_prefix,omitempty"`
	MultiMatch        *MultiMatchQuery                 `json:"multi_match,omitempty"`
	Term              map[string]TermRule              `json:"term,omitempty"`
	Terms             map[string]TermsRule             `json:"terms,omitempty"`
	TermsSet          map[string]TermsSetRule          `json:"terms_set,omitempty"`
	Range             map[string]RangeRule             `json:"range,omitempty"`
	Exists            *ExistsQuery                     `json:"exists,omitempty"`
	IDs               *IDsQuery                        `json:"ids,omitempty"`
	Prefix            map[string]PrefixRule            `json:"prefix,omitempty"`
	Wildcard          map[string]WildcardRule          `json:"wildcard,omitempty"`
	Regexp            map[string]RegexpRule            `json:"regexp,omitempty"`
	Fuzzy             map[string]FuzzyRule             `json:"fuzzy,omitempty"`
	Bool              *BoolQuery                       `json:"bool,omitempty"`
	QueryString       *QueryStringQuery                `json:"query_string,omitempty"`
	MatchAll          *MatchAllQuery                   `json:"match_all,omitempty"`
	MatchNone         *MatchNoneQuery                  `json:"match_none,omitempty"`
	Nested            *NestedQuery                     `json:"nested,omitempty"`
	HasChild          *HasChildQuery                   `json:"has_child,omitempty"`
	HasParent         *HasParentQuery                  `json:"has_parent,omitempty"`
	ParentID          *ParentIDQuery                   `json:"parent_id,omitempty"`
	Script            *ScriptQuery                     `json:"script,omitempty"`
	MoreLikeThis      *MoreLikeThisQuery               `json:"more_like_this,omitempty"`
	GeoDistance       *GeoDistanceQuery                `json:"geo_distance,omitempty"`
	GeoBoundingBox    map[string]GeoBoundingBoxRule    `json:"geo_bounding_box,omitempty"`
	GeoPolygon        map[string]GeoPolygonRule        `json:"geo_polygon,omitempty"`
	GeoShape          map[string]GeoShapeRule          `json:"geo_shape,omitempty"`
}

// Kind returns the wire name of the active query kind, or "" for the zero
// value.
func (q Query) Kind() string {
	switch {
	case q.Match != nil:
		return "match"
	case q.MatchBoolPrefix != nil:
		return "match_bool_prefix"
	case q.MatchPhrase != nil:
		return "match_phrase"
	case q.MatchPhrasePrefix != nil:
		return "match_phrase_prefix"
	case q.MultiMatch != nil:
		return "multi_match"
	case q.Term != nil:
		return "term"
	case q.Terms != nil:
		return "terms"
	case q.TermsSet != nil:
		return "terms_set"
	case q.Range != nil:
		return "range"
	case q.Exists != nil:
		return "exists"
	case q.IDs != nil:
		return "ids"
	case q.Prefix != nil:
		return "prefix"
	case q.Wildcard != nil:
		return "wildcard"
	case q.Regexp != nil:
		return "regexp"
	case q.Fuzzy != nil:
		return "fuzzy"
	case q.Bool != nil:
		return "bool"
	case q.QueryString != nil:
		return "query_string"
	case q.MatchAll != nil:
		return "match_all"
	case q.MatchNone != nil:
		return "match_none"
	case q.Nested != nil:
		return "nested"
	case q.HasChild != nil:
		return "has_child"
	case q.HasParent != nil:
		return "has_parent"
	case q.ParentID != nil:
		return "parent_id"
	case q.Script != nil:
		return "script"
	case q.MoreLikeThis != nil:
		return "more_like_this"
	case q.GeoDistance != nil:
		return "geo_distance"
	case q.GeoBoundingBox != nil:
		return "geo_bounding_box"
	case q.GeoPolygon != nil:
		return "geo_polygon"
	case q.GeoShape != nil:
		return "geo_shape"
	}
	return ""
}

// IsZero reports whether no kind is set.
func (q Query) IsZero() bool { return q.Kind() == "" }

// Match builds a match query on a single field.
func Match(field string, rule MatchRule) Query {
	return Query{Match: map[string]MatchRule{field: rule}}
}

// MatchText builds a simple-form match query from query text.
func MatchText(field, text string) Query {
	return Match(field, MatchSimple(text))
}

// MatchBoolPrefix builds a match_bool_prefix query on a single field.
func MatchBoolPrefix(field string, rule MatchBoolPrefixRule) Query {
	return Query{MatchBoolPrefix: map[string]MatchBoolPrefixRule{field: rule}}
}

// MatchPhrase builds a match_phrase query on a single field.
func MatchPhrase(field string, rule MatchPhraseRule) Query {
	return Query{MatchPhrase: map[string]MatchPhraseRule{field: rule}}
}

// MatchPhrasePrefix builds a match_phrase_prefix query on a single field.
func MatchPhrasePrefix(field string, rule MatchPhrasePrefixRule) Query {
	return Query{MatchPhrasePrefix: map[string]MatchPhrasePrefixRule{field: rule}}
}

// MultiMatch builds a multi_match query.
func MultiMatch(q MultiMatchQuery) Query { return Query{MultiMatch: &q} }

// Term builds a term query on a single field.
func Term(field string, rule TermRule) Query {
	return Query{Term: map[string]TermRule{field: rule}}
}

// TermValue builds a term query matching an exact value.
func TermValue(field string, value any) Query {
	return Term(field, TermRule{Value: value})
}

// Terms builds a terms query on a single field.
func Terms(field string, rule TermsRule) Query {
	return Query{Terms: map[string]TermsRule{field: rule}}
}

// TermsSet builds a terms_set query on a single field.
func TermsSet(field string, rule TermsSetRule) Query {
	return Query{TermsSet: map[string]TermsSetRule{field: rule}}
}

// Range builds a range query on a single field.
func Range(field string, rule RangeRule) Query {
	return Query{Range: map[string]RangeRule{field: rule}}
}

// Exists builds an exists query.
func Exists(field string) Query {
	return Query{Exists: &ExistsQuery{Field: field}}
}

// IDs builds an ids query.
func IDs(values ...string) Query {
	return Query{IDs: &IDsQuery{Values: values}}
}

// Prefix builds a prefix query on a single field.
func Prefix(field string, rule PrefixRule) Query {
	return Query{Prefix: map[string]PrefixRule{field: rule}}
}

// Wildcard builds a wildcard query on a single field.
func Wildcard(field string, rule WildcardRule) Query {
	return Query{Wildcard: map[string]WildcardRule{field: rule}}
}

// Regexp builds a regexp query on a single field.
func Regexp(field string, rule RegexpRule) Query {
	return Query{Regexp: map[string]RegexpRule{field: rule}}
}

// Fuzzy builds a fuzzy query on a single field.
func Fuzzy(field string, rule FuzzyRule) Query {
	return Query{Fuzzy: map[string]FuzzyRule{field: rule}}
}

// Bool builds a bool query.
func Bool(b BoolQuery) Query { return Query{Bool: &b} }

// QueryString builds a query_string query.
func QueryString(q QueryStringQuery) Query { return Query{QueryString: &q} }

// MatchAll builds a match_all query.
func MatchAll() Query { return Query{MatchAll: &MatchAllQuery{}} }

// MatchAllBoosted builds a match_all query with a boost.
func MatchAllBoosted(boost float64) Query {
	return Query{MatchAll: &MatchAllQuery{Boost: &boost}}
}

// MatchNone builds a match_none query.
func MatchNone() Query { return Query{MatchNone: &MatchNoneQuery{}} }

// Nested builds a nested query.
func Nested(q NestedQuery) Query { return Query{Nested: &q} }

// HasChild builds a has_child query.
func HasChild(q HasChildQuery) Query { return Query{HasChild: &q} }

// HasParent builds a has_parent query.
func HasParent(q HasParentQuery) Query { return Query{HasParent: &q} }

// ParentID builds a parent_id query.
func ParentID(q ParentIDQuery) Query { return Query{ParentID: &q} }

// ScriptFilter builds a script query.
func ScriptFilter(s script.Script) Query {
	return Query{Script: &ScriptQuery{Script: s}}
}

// MoreLikeThis builds a more_like_this query.
func MoreLikeThis(q MoreLikeThisQuery) Query { return Query{MoreLikeThis: &q} }

// GeoDistance builds a geo_distance query.
func GeoDistance(q GeoDistanceQuery) Query { return Query{GeoDistance: &q} }

// GeoBoundingBox builds a geo_bounding_box query on a single field.
func GeoBoundingBox(field string, rule GeoBoundingBoxRule) Query {
	return Query{GeoBoundingBox: map[string]GeoBoundingBoxRule{field: rule}}
}

// GeoPolygon builds a geo_polygon query on a single field.
func GeoPolygon(field string, rule GeoPolygonRule) Query {
	return Query{GeoPolygon: map[string]GeoPolygonRule{field: rule}}
}

// GeoShape builds a geo_shape query on a single field.
func GeoShape(field string, rule GeoShapeRule) Query {
	return Query{GeoShape: map[string]GeoShapeRule{field: rule}}
}
