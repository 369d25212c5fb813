package query

import (
	"encoding/json"
	"errors"

	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/script"
)

// firstToken returns the first non-whitespace byte of a JSON document, or 0
// when the document is empty. The rule unions discriminate on it: '{' means
// the advanced parameter object, anything else a simple scalar (or array).
func firstToken(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

// MatchRule is the per-field body of a match query: either a bare query
// string (simple form) or a parameter object (advanced form). The form is
// fixed at construction and preserved on the wire.
type MatchRule struct {
	Query    string
	Advanced *MatchParams
}

// MatchParams is the advanced parameter object of a match query.
type MatchParams struct {
	Query                           string                    `json:"query"`
	Operator                        Operator                  `json:"operator,omitempty"`
	Analyzer                        string                    `json:"analyzer,omitempty"`
	MinimumShouldMatch              *osdsl.MinimumShouldMatch `json:"minimum_should_match,omitempty"`
	Fuzziness                       *osdsl.Fuzziness          `json:"fuzziness,omitempty"`
	PrefixLength                    *int                      `json:"prefix_length,omitempty"`
	MaxExpansions                   *int                      `json:"max_expansions,omitempty"`
	Boost                           *float64                  `json:"boost,omitempty"`
	AutoGenerateSynonymsPhraseQuery *bool                     `json:"auto_generate_synonyms_phrase_query,omitempty"`
	EnablePositionIncrements        *bool                     `json:"enable_position_increments,omitempty"`
	FuzzyRewrite                    string                    `json:"fuzzy_rewrite,omitempty"`
	FuzzyTranspositions             *bool                     `json:"fuzzy_transpositions,omitempty"`
	Lenient                         *bool                     `json:"lenient,omitempty"`
	ZeroTermsQuery                  ZeroTermsQuery            `json:"zero_terms_query,omitempty"`
}

// MatchSimple builds the simple form of a match rule.
func MatchSimple(q string) MatchRule { return MatchRule{Query: q} }

// MatchAdvanced builds the advanced form of a match rule.
func MatchAdvanced(p MatchParams) MatchRule { return MatchRule{Advanced: &p} }

func (r MatchRule) MarshalJSON() ([]byte, error) {
	if r.Advanced != nil {
		return json.Marshal(r.Advanced)
	}
	return json.Marshal(r.Query)
}

func (r *MatchRule) UnmarshalJSON(data []byte) error {
	if firstToken(data) == '{' {
		var p MatchParams
		if err := json.Unmarshal(data, &p); err != nil {
			return osdsl.NewDecodeError("", "match parameter object", data, err)
		}
		*r = MatchRule{Advanced: &p}
		return nil
	}
	var q string
	if err := json.Unmarshal(data, &q); err != nil {
		return osdsl.NewDecodeError("", "query string or match parameter object", data, err)
	}
	*r = MatchRule{Query: q}
	return nil
}

// MatchBoolPrefixRule is the per-field body of a match_bool_prefix query.
type MatchBoolPrefixRule struct {
	Query    string
	Advanced *MatchBoolPrefixParams
}

// MatchBoolPrefixParams is the advanced parameter object of a
// match_bool_prefix query.
type MatchBoolPrefixParams struct {
	Query               string                    `json:"query"`
	Analyzer            string                    `json:"analyzer,omitempty"`
	Operator            Operator                  `json:"operator,omitempty"`
	MinimumShouldMatch  *osdsl.MinimumShouldMatch `json:"minimum_should_match,omitempty"`
	Fuzziness           *osdsl.Fuzziness          `json:"fuzziness,omitempty"`
	PrefixLength        *int                      `json:"prefix_length,omitempty"`
	MaxExpansions       *int                      `json:"max_expansions,omitempty"`
	FuzzyTranspositions *bool                     `json:"fuzzy_transpositions,omitempty"`
	FuzzyRewrite        string                    `json:"fuzzy_rewrite,omitempty"`
	Boost               *float64                  `json:"boost,omitempty"`
}

// MatchBoolPrefixSimple builds the simple form of a match_bool_prefix rule.
func MatchBoolPrefixSimple(q string) MatchBoolPrefixRule { return MatchBoolPrefixRule{Query: q} }

// MatchBoolPrefixAdvanced builds the advanced form of a match_bool_prefix rule.
func MatchBoolPrefixAdvanced(p MatchBoolPrefixParams) MatchBoolPrefixRule {
	return MatchBoolPrefixRule{Advanced: &p}
}

func (r MatchBoolPrefixRule) MarshalJSON() ([]byte, error) {
	if r.Advanced != nil {
		return json.Marshal(r.Advanced)
	}
	return json.Marshal(r.Query)
}

func (r *MatchBoolPrefixRule) UnmarshalJSON(data []byte) error {
	if firstToken(data) == '{' {
		var p MatchBoolPrefixParams
		if err := json.Unmarshal(data, &p); err != nil {
			return osdsl.NewDecodeError("", "match_bool_prefix parameter object", data, err)
		}
		*r = MatchBoolPrefixRule{Advanced: &p}
		return nil
	}
	var q string
	if err := json.Unmarshal(data, &q); err != nil {
		return osdsl.NewDecodeError("", "query string or match_bool_prefix parameter object", data, err)
	}
	*r = MatchBoolPrefixRule{Query: q}
	return nil
}

// MatchPhraseRule is the per-field body of a match_phrase query.
type MatchPhraseRule struct {
	Query    string
	Advanced *MatchPhraseParams
}

// MatchPhraseParams is the advanced parameter object of a match_phrase query.
type MatchPhraseParams struct {
	Query    string   `json:"query"`
	Analyzer string   `json:"analyzer,omitempty"`
	Slop     *int     `json:"slop,omitempty"`
	Boost    *float64 `json:"boost,omitempty"`
}

// MatchPhraseSimple builds the simple form of a match_phrase rule.
func MatchPhraseSimple(q string) MatchPhraseRule { return MatchPhraseRule{Query: q} }

// MatchPhraseAdvanced builds the advanced form of a match_phrase rule.
func MatchPhraseAdvanced(p MatchPhraseParams) MatchPhraseRule { return MatchPhraseRule{Advanced: &p} }

func (r MatchPhraseRule) MarshalJSON() ([]byte, error) {
	if r.Advanced != nil {
		return json.Marshal(r.Advanced)
	}
	return json.Marshal(r.Query)
}

func (r *MatchPhraseRule) UnmarshalJSON(data []byte) error {
	if firstToken(data) == '{' {
		var p MatchPhraseParams
		if err := json.Unmarshal(data, &p); err != nil {
			return osdsl.NewDecodeError("", "match_phrase parameter object", data, err)
		}
		*r = MatchPhraseRule{Advanced: &p}
		return nil
	}
	var q string
	if err := json.Unmarshal(data, &q); err != nil {
		return osdsl.NewDecodeError("", "query string or match_phrase parameter object", data, err)
	}
	*r = MatchPhraseRule{Query: q}
	return nil
}

// MatchPhrasePrefixRule is the per-field body of a match_phrase_prefix query.
type MatchPhrasePrefixRule struct {
	Query    string
	Advanced *MatchPhrasePrefixParams
}

// MatchPhrasePrefixParams is the advanced parameter object of a
// match_phrase_prefix query.
type MatchPhrasePrefixParams struct {
	Query         string   `json:"query"`
	Analyzer      string   `json:"analyzer,omitempty"`
	Slop          *int     `json:"slop,omitempty"`
	MaxExpansions *int     `json:"max_expansions,omitempty"`
	Boost         *float64 `json:"boost,omitempty"`
}

// MatchPhrasePrefixSimple builds the simple form of a match_phrase_prefix rule.
func MatchPhrasePrefixSimple(q string) MatchPhrasePrefixRule {
	return MatchPhrasePrefixRule{Query: q}
}

// MatchPhrasePrefixAdvanced builds the advanced form of a match_phrase_prefix rule.
func MatchPhrasePrefixAdvanced(p MatchPhrasePrefixParams) MatchPhrasePrefixRule {
	return MatchPhrasePrefixRule{Advanced: &p}
}

func (r MatchPhrasePrefixRule) MarshalJSON() ([]byte, error) {
	if r.Advanced != nil {
		return json.Marshal(r.Advanced)
	}
	return json.Marshal(r.Query)
}

func (r *MatchPhrasePrefixRule) UnmarshalJSON(data []byte) error {
	if firstToken(data) == '{' {
		var p MatchPhrasePrefixParams
		if err := json.Unmarshal(data, &p); err != nil {
			return osdsl.NewDecodeError("", "match_phrase_prefix parameter object", data, err)
		}
		*r = MatchPhrasePrefixRule{Advanced: &p}
		return nil
	}
	var q string
	if err := json.Unmarshal(data, &q); err != nil {
		return osdsl.NewDecodeError("", "query string or match_phrase_prefix parameter object", data, err)
	}
	*r = MatchPhrasePrefixRule{Query: q}
	return nil
}

// PrefixRule is the per-field body of a prefix query.
type PrefixRule struct {
	Value    string
	Advanced *PrefixParams
}

// PrefixParams is the advanced parameter object of a prefix query.
type PrefixParams struct {
	Value           string   `json:"value"`
	Rewrite         string   `json:"rewrite,omitempty"`
	CaseInsensitive *bool    `json:"case_insensitive,omitempty"`
	Boost           *float64 `json:"boost,omitempty"`
}

// PrefixSimple builds the simple form of a prefix rule.
func PrefixSimple(v string) PrefixRule { return PrefixRule{Value: v} }

// PrefixAdvanced builds the advanced form of a prefix rule.
func PrefixAdvanced(p PrefixParams) PrefixRule { return PrefixRule{Advanced: &p} }

func (r PrefixRule) MarshalJSON() ([]byte, error) {
	if r.Advanced != nil {
		return json.Marshal(r.Advanced)
	}
	return json.Marshal(r.Value)
}

func (r *PrefixRule) UnmarshalJSON(data []byte) error {
	if firstToken(data) == '{' {
		var p PrefixParams
		if err := json.Unmarshal(data, &p); err != nil {
			return osdsl.NewDecodeError("", "prefix parameter object", data, err)
		}
		*r = PrefixRule{Advanced: &p}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return osdsl.NewDecodeError("", "prefix string or parameter object", data, err)
	}
	*r = PrefixRule{Value: v}
	return nil
}

// WildcardRule is the per-field body of a wildcard query.
type WildcardRule struct {
	Value    string
	Advanced *WildcardParams
}

// WildcardParams is the advanced parameter object of a wildcard query.
type WildcardParams struct {
	Value           string   `json:"value"`
	Boost           *float64 `json:"boost,omitempty"`
	Rewrite         string   `json:"rewrite,omitempty"`
	CaseInsensitive *bool    `json:"case_insensitive,omitempty"`
}

// WildcardSimple builds the simple form of a wildcard rule.
func WildcardSimple(v string) WildcardRule { return WildcardRule{Value: v} }

// WildcardAdvanced builds the advanced form of a wildcard rule.
func WildcardAdvanced(p WildcardParams) WildcardRule { return WildcardRule{Advanced: &p} }

func (r WildcardRule) MarshalJSON() ([]byte, error) {
	if r.Advanced != nil {
		return json.Marshal(r.Advanced)
	}
	return json.Marshal(r.Value)
}

func (r *WildcardRule) UnmarshalJSON(data []byte) error {
	if firstToken(data) == '{' {
		var p WildcardParams
		if err := json.Unmarshal(data, &p); err != nil {
			return osdsl.NewDecodeError("", "wildcard parameter object", data, err)
		}
		*r = WildcardRule{Advanced: &p}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return osdsl.NewDecodeError("", "wildcard pattern or parameter object", data, err)
	}
	*r = WildcardRule{Value: v}
	return nil
}

// RegexpRule is the per-field body of a regexp query.
type RegexpRule struct {
	Value    string
	Advanced *RegexpParams
}

// RegexpParams is the advanced parameter object of a regexp query.
type RegexpParams struct {
	Value                 string   `json:"value"`
	Boost                 *float64 `json:"boost,omitempty"`
	CaseInsensitive       *bool    `json:"case_insensitive,omitempty"`
	Flags                 string   `json:"flags,omitempty"`
	MaxDeterminizedStates *int     `json:"max_determinized_states,omitempty"`
	Rewrite               string   `json:"rewrite,omitempty"`
}

// RegexpSimple builds the simple form of a regexp rule.
func RegexpSimple(v string) RegexpRule { return RegexpRule{Value: v} }

// RegexpAdvanced builds the advanced form of a regexp rule.
func RegexpAdvanced(p RegexpParams) RegexpRule { return RegexpRule{Advanced: &p} }

func (r RegexpRule) MarshalJSON() ([]byte, error) {
	if r.Advanced != nil {
		return json.Marshal(r.Advanced)
	}
	return json.Marshal(r.Value)
}

func (r *RegexpRule) UnmarshalJSON(data []byte) error {
	if firstToken(data) == '{' {
		var p RegexpParams
		if err := json.Unmarshal(data, &p); err != nil {
			return osdsl.NewDecodeError("", "regexp parameter object", data, err)
		}
		*r = RegexpRule{Advanced: &p}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return osdsl.NewDecodeError("", "regexp pattern or parameter object", data, err)
	}
	*r = RegexpRule{Value: v}
	return nil
}

// TermsRule is the per-field body of a terms query: either a bare array of
// values or a parameter object.
type TermsRule struct {
	Values   []any
	Advanced *TermsParams
}

// TermsParams is the advanced parameter object of a terms query.
type TermsParams struct {
	Values          []any    `json:"values"`
	CaseInsensitive *bool    `json:"case_insensitive,omitempty"`
	Boost           *float64 `json:"boost,omitempty"`
}

// TermsSimple builds the simple form of a terms rule.
func TermsSimple(values ...any) TermsRule { return TermsRule{Values: values} }

// TermsAdvanced builds the advanced form of a terms rule.
func TermsAdvanced(p TermsParams) TermsRule { return TermsRule{Advanced: &p} }

func (r TermsRule) MarshalJSON() ([]byte, error) {
	if r.Advanced != nil {
		return json.Marshal(r.Advanced)
	}
	return json.Marshal(r.Values)
}

func (r *TermsRule) UnmarshalJSON(data []byte) error {
	switch firstToken(data) {
	case '{':
		var p TermsParams
		if err := json.Unmarshal(data, &p); err != nil {
			return osdsl.NewDecodeError("", "terms parameter object", data, err)
		}
		*r = TermsRule{Advanced: &p}
		return nil
	case '[':
		var vs []any
		if err := json.Unmarshal(data, &vs); err != nil {
			return osdsl.NewDecodeError("", "terms value array", data, err)
		}
		*r = TermsRule{Values: vs}
		return nil
	}
	return osdsl.NewDecodeError("", "terms value array or parameter object", data,
		errors.New("unexpected JSON token"))
}

// TermRule is the per-field body of a term query. Always an object on the
// wire.
type TermRule struct {
	Value           any      `json:"value"`
	CaseInsensitive *bool    `json:"case_insensitive,omitempty"`
	Boost           *float64 `json:"boost,omitempty"`
}

// TermsSetRule is the per-field body of a terms_set query.
type TermsSetRule struct {
	Terms                     []any                     `json:"terms"`
	MinimumShouldMatchField   string                    `json:"minimum_should_match_field,omitempty"`
	MinimumShouldMatchScript  *script.Script            `json:"minimum_should_match_script,omitempty"`
	MinimumShouldMatch        *osdsl.MinimumShouldMatch `json:"minimum_should_match,omitempty"`
	Boost                     *float64                  `json:"boost,omitempty"`
}

// RangeRule is the per-field body of a range query.
type RangeRule struct {
	GT       any           `json:"gt,omitempty"`
	GTE      any           `json:"gte,omitempty"`
	LT       any           `json:"lt,omitempty"`
	LTE      any           `json:"lte,omitempty"`
	Format   string        `json:"format,omitempty"`
	TimeZone string        `json:"time_zone,omitempty"`
	Relation RangeRelation `json:"relation,omitempty"`
	Boost    *float64      `json:"boost,omitempty"`
}

// FuzzyRule is the per-field body of a fuzzy query.
type FuzzyRule struct {
	Value          any              `json:"value"`
	Fuzziness      *osdsl.Fuzziness `json:"fuzziness,omitempty"`
	PrefixLength   *int             `json:"prefix_length,omitempty"`
	MaxExpansions  *int             `json:"max_expansions,omitempty"`
	Transpositions *bool            `json:"transpositions,omitempty"`
	Rewrite        string           `json:"rewrite,omitempty"`
	Boost          *float64         `json:"boost,omitempty"`
}
