package query

import (
	osdsl "github.com/ca-srg/osdsl"
)

// The builders below are mutable accumulators finalized by Build. Build
// validates required fields and returns a MissingFieldError naming the
// first one that is unset. Copying a builder value yields an independent
// accumulator; the clause slices are grown with full-slice expressions so
// two copies never share a backing array after an append.

// MatchBuilder accumulates a single-field match query.
type MatchBuilder struct {
	field  string
	query  string
	hasQ   bool
	params MatchParams
	adv    bool
}

// NewMatch starts a match builder for the given field.
func NewMatch(field string) *MatchBuilder {
	return &MatchBuilder{field: field}
}

// Query sets the text to match.
func (b *MatchBuilder) Query(q string) *MatchBuilder {
	b.query = q
	b.hasQ = true
	return b
}

// Operator sets the term-joining operator and forces the advanced form.
func (b *MatchBuilder) Operator(op Operator) *MatchBuilder {
	b.params.Operator = op
	b.adv = true
	return b
}

// Analyzer sets the analyzer and forces the advanced form.
func (b *MatchBuilder) Analyzer(a string) *MatchBuilder {
	b.params.Analyzer = a
	b.adv = true
	return b
}

// Fuzziness sets the fuzziness and forces the advanced form.
func (b *MatchBuilder) Fuzziness(f osdsl.Fuzziness) *MatchBuilder {
	b.params.Fuzziness = &f
	b.adv = true
	return b
}

// PrefixLength sets the fuzzy prefix length and forces the advanced form.
func (b *MatchBuilder) PrefixLength(n int) *MatchBuilder {
	b.params.PrefixLength = &n
	b.adv = true
	return b
}

// MaxExpansions sets the fuzzy expansion limit and forces the advanced form.
func (b *MatchBuilder) MaxExpansions(n int) *MatchBuilder {
	b.params.MaxExpansions = &n
	b.adv = true
	return b
}

// MinimumShouldMatch sets minimum_should_match and forces the advanced form.
func (b *MatchBuilder) MinimumShouldMatch(m osdsl.MinimumShouldMatch) *MatchBuilder {
	b.params.MinimumShouldMatch = &m
	b.adv = true
	return b
}

// Boost sets the boost and forces the advanced form.
func (b *MatchBuilder) Boost(boost float64) *MatchBuilder {
	b.params.Boost = &boost
	b.adv = true
	return b
}

// Build finalizes the query. The simple wire form is used unless an
// advanced parameter was set.
func (b *MatchBuilder) Build() (Query, error) {
	if b.field == "" {
		return Query{}, osdsl.NewMissingFieldError("MatchBuilder", "field")
	}
	if !b.hasQ {
		return Query{}, osdsl.NewMissingFieldError("MatchBuilder", "query")
	}
	if !b.adv {
		return Match(b.field, MatchSimple(b.query)), nil
	}
	p := b.params
	p.Query = b.query
	return Match(b.field, MatchAdvanced(p)), nil
}

// TermBuilder accumulates a single-field term query.
type TermBuilder struct {
	field  string
	value  any
	hasV   bool
	boost  *float64
	caseIn *bool
}

// NewTerm starts a term builder for the given field.
func NewTerm(field string) *TermBuilder {
	return &TermBuilder{field: field}
}

// Value sets the exact value to match.
func (b *TermBuilder) Value(v any) *TermBuilder {
	b.value = v
	b.hasV = true
	return b
}

// Boost sets the boost.
func (b *TermBuilder) Boost(boost float64) *TermBuilder {
	b.boost = &boost
	return b
}

// CaseInsensitive toggles case-insensitive matching.
func (b *TermBuilder) CaseInsensitive(v bool) *TermBuilder {
	b.caseIn = &v
	return b
}

// Build finalizes the query.
func (b *TermBuilder) Build() (Query, error) {
	if b.field == "" {
		return Query{}, osdsl.NewMissingFieldError("TermBuilder", "field")
	}
	if !b.hasV {
		return Query{}, osdsl.NewMissingFieldError("TermBuilder", "value")
	}
	return Term(b.field, TermRule{Value: b.value, Boost: b.boost, CaseInsensitive: b.caseIn}), nil
}

// RangeBuilder accumulates a single-field range query.
type RangeBuilder struct {
	field string
	rule  RangeRule
}

// NewRange starts a range builder for the given field.
func NewRange(field string) *RangeBuilder {
	return &RangeBuilder{field: field}
}

// GT sets the exclusive lower bound.
func (b *RangeBuilder) GT(v any) *RangeBuilder { b.rule.GT = v; return b }

// GTE sets the inclusive lower bound.
func (b *RangeBuilder) GTE(v any) *RangeBuilder { b.rule.GTE = v; return b }

// LT sets the exclusive upper bound.
func (b *RangeBuilder) LT(v any) *RangeBuilder { b.rule.LT = v; return b }

// LTE sets the inclusive upper bound.
func (b *RangeBuilder) LTE(v any) *RangeBuilder { b.rule.LTE = v; return b }

// Format sets the date format used to parse the bounds.
func (b *RangeBuilder) Format(f string) *RangeBuilder { b.rule.Format = f; return b }

// TimeZone sets the time zone applied to date bounds.
func (b *RangeBuilder) TimeZone(tz string) *RangeBuilder { b.rule.TimeZone = tz; return b }

// Relation sets the range-field relation.
func (b *RangeBuilder) Relation(r RangeRelation) *RangeBuilder { b.rule.Relation = r; return b }

// Boost sets the boost.
func (b *RangeBuilder) Boost(boost float64) *RangeBuilder { b.rule.Boost = &boost; return b }

// Build finalizes the query. At least one bound must be set.
func (b *RangeBuilder) Build() (Query, error) {
	if b.field == "" {
		return Query{}, osdsl.NewMissingFieldError("RangeBuilder", "field")
	}
	if b.rule.GT == nil && b.rule.GTE == nil && b.rule.LT == nil && b.rule.LTE == nil {
		return Query{}, osdsl.NewMissingFieldError("RangeBuilder", "bound")
	}
	return Range(b.field, b.rule), nil
}

// BoolBuilder accumulates a bool query clause by clause.
type BoolBuilder struct {
	q BoolQuery
}

// NewBool starts an empty bool builder.
func NewBool() *BoolBuilder {
	return &BoolBuilder{}
}

// Must appends queries to the must clauses.
func (b *BoolBuilder) Must(qs ...Query) *BoolBuilder {
	b.q.Must = append(b.q.Must[:len(b.q.Must):len(b.q.Must)], qs...)
	return b
}

// MustNot appends queries to the must_not clauses.
func (b *BoolBuilder) MustNot(qs ...Query) *BoolBuilder {
	b.q.MustNot = append(b.q.MustNot[:len(b.q.MustNot):len(b.q.MustNot)], qs...)
	return b
}

// Should appends queries to the should clauses.
func (b *BoolBuilder) Should(qs ...Query) *BoolBuilder {
	b.q.Should = append(b.q.Should[:len(b.q.Should):len(b.q.Should)], qs...)
	return b
}

// Filter appends queries to the non-scoring filter clauses.
func (b *BoolBuilder) Filter(qs ...Query) *BoolBuilder {
	b.q.Filter = append(b.q.Filter[:len(b.q.Filter):len(b.q.Filter)], qs...)
	return b
}

// MinimumShouldMatch sets minimum_should_match.
func (b *BoolBuilder) MinimumShouldMatch(m osdsl.MinimumShouldMatch) *BoolBuilder {
	b.q.MinimumShouldMatch = &m
	return b
}

// Boost sets the boost.
func (b *BoolBuilder) Boost(boost float64) *BoolBuilder {
	b.q.Boost = &boost
	return b
}

// Build finalizes the query. A bool query with no clauses at all is
// rejected.
func (b *BoolBuilder) Build() (Query, error) {
	if len(b.q.Must) == 0 && len(b.q.MustNot) == 0 && len(b.q.Should) == 0 && len(b.q.Filter) == 0 {
		return Query{}, osdsl.NewMissingFieldError("BoolBuilder", "clauses")
	}
	return Bool(b.q), nil
}

// QueryStringBuilder accumulates a query_string query.
type QueryStringBuilder struct {
	q    QueryStringQuery
	hasQ bool
}

// NewQueryString starts a query_string builder.
func NewQueryString() *QueryStringBuilder {
	return &QueryStringBuilder{}
}

// Query sets the query string.
func (b *QueryStringBuilder) Query(q string) *QueryStringBuilder {
	b.q.Query = q
	b.hasQ = true
	return b
}

// Fields sets the fields to search.
func (b *QueryStringBuilder) Fields(fields ...string) *QueryStringBuilder {
	b.q.Fields = fields
	return b
}

// DefaultField sets the field searched when the query names none.
func (b *QueryStringBuilder) DefaultField(f string) *QueryStringBuilder {
	b.q.DefaultField = f
	return b
}

// DefaultOperator sets the operator joining bare terms.
func (b *QueryStringBuilder) DefaultOperator(op Operator) *QueryStringBuilder {
	b.q.DefaultOperator = op
	return b
}

// Lenient toggles lenient parsing.
func (b *QueryStringBuilder) Lenient(v bool) *QueryStringBuilder {
	b.q.Lenient = &v
	return b
}

// Boost sets the boost.
func (b *QueryStringBuilder) Boost(boost float64) *QueryStringBuilder {
	b.q.Boost = &boost
	return b
}

// Type sets the cross-field scoring type.
func (b *QueryStringBuilder) Type(t QueryStringType) *QueryStringBuilder {
	b.q.Type = t
	return b
}

// Build finalizes the query.
func (b *QueryStringBuilder) Build() (Query, error) {
	if !b.hasQ {
		return Query{}, osdsl.NewMissingFieldError("QueryStringBuilder", "query")
	}
	return QueryString(b.q), nil
}
