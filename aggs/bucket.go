package aggs

import (
	"encoding/json"
	"errors"

	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/query"
	"github.com/ca-srg/osdsl/script"
)

// TermsAggregation buckets by distinct field values.
type TermsAggregation struct {
	Field       string         `json:"field,omitempty"`
	Size        *int           `json:"size,omitempty"`
	ShardSize   *int           `json:"shard_size,omitempty"`
	Order       *TermsOrder    `json:"order,omitempty"`
	MinDocCount *int           `json:"min_doc_count,omitempty"`
	Script      *script.Script `json:"script,omitempty"`
	Include     *TermsFilter   `json:"include,omitempty"`
	Exclude     *TermsFilter   `json:"exclude,omitempty"`
	Missing     any            `json:"missing,omitempty"`
}

// TermsOrderTerm orders buckets by one criterion: a sub-aggregation name or
// the builtins _count and _key.
type TermsOrderTerm struct {
	Key   string
	Order osdsl.SortOrder
}

// TermsOrder is the order clause of a terms aggregation. A single criterion
// serializes as an object, several as an array of objects.
type TermsOrder struct {
	Terms []TermsOrderTerm
}

// OrderBy builds a terms order from criteria applied in sequence.
func OrderBy(terms ...TermsOrderTerm) *TermsOrder {
	return &TermsOrder{Terms: terms}
}

func (o TermsOrder) MarshalJSON() ([]byte, error) {
	if len(o.Terms) == 0 {
		return nil, errors.New("terms order: no criteria")
	}
	objs := make([]map[string]osdsl.SortOrder, len(o.Terms))
	for i, t := range o.Terms {
		objs[i] = map[string]osdsl.SortOrder{t.Key: t.Order}
	}
	if len(objs) == 1 {
		return json.Marshal(objs[0])
	}
	return json.Marshal(objs)
}

func (o *TermsOrder) UnmarshalJSON(data []byte) error {
	decodeOne := func(raw json.RawMessage) error {
		var m map[string]osdsl.SortOrder
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		for k, v := range m {
			o.Terms = append(o.Terms, TermsOrderTerm{Key: k, Order: v})
		}
		return nil
	}
	o.Terms = nil
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		for _, raw := range arr {
			if err := decodeOne(raw); err != nil {
				return osdsl.NewDecodeError("order", "order criterion object", raw, err)
			}
		}
		return nil
	}
	if err := decodeOne(data); err != nil {
		return osdsl.NewDecodeError("order", "order criterion object or array", data, err)
	}
	return nil
}

// TermsFilter is the include/exclude clause of a terms aggregation: either
// a regular-expression pattern or an exact value list.
type TermsFilter struct {
	Pattern string
	Values  []string
}

// FilterPattern builds a pattern-form terms filter.
func FilterPattern(p string) *TermsFilter { return &TermsFilter{Pattern: p} }

// FilterValues builds a value-list terms filter.
func FilterValues(values ...string) *TermsFilter { return &TermsFilter{Values: values} }

func (f TermsFilter) MarshalJSON() ([]byte, error) {
	if f.Values != nil {
		return json.Marshal(f.Values)
	}
	return json.Marshal(f.Pattern)
}

func (f *TermsFilter) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*f = TermsFilter{Values: values}
		return nil
	}
	var pattern string
	if err := json.Unmarshal(data, &pattern); err != nil {
		return osdsl.NewDecodeError("", "pattern string or value array", data, err)
	}
	*f = TermsFilter{Pattern: pattern}
	return nil
}

// FiltersAggregation buckets documents per filter query, either as an
// anonymous list or a named map.
type FiltersAggregation struct {
	Anonymous      []query.Query          `json:"-"`
	Named          map[string]query.Query `json:"-"`
	OtherBucket    *bool                  `json:"other_bucket,omitempty"`
	OtherBucketKey string                 `json:"other_bucket_key,omitempty"`
}

func (f FiltersAggregation) MarshalJSON() ([]byte, error) {
	type alias FiltersAggregation
	var filters any
	switch {
	case f.Named != nil:
		filters = f.Named
	case f.Anonymous != nil:
		filters = f.Anonymous
	default:
		return nil, errors.New("filters aggregation: no filters set")
	}
	return json.Marshal(struct {
		Filters any `json:"filters"`
		alias
	}{Filters: filters, alias: alias(f)})
}

func (f *FiltersAggregation) UnmarshalJSON(data []byte) error {
	var raw struct {
		Filters        json.RawMessage `json:"filters"`
		OtherBucket    *bool           `json:"other_bucket"`
		OtherBucketKey string          `json:"other_bucket_key"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return osdsl.NewDecodeError("filters", "filters aggregation object", data, err)
	}
	out := FiltersAggregation{OtherBucket: raw.OtherBucket, OtherBucketKey: raw.OtherBucketKey}
	var anon []query.Query
	if err := json.Unmarshal(raw.Filters, &anon); err == nil {
		out.Anonymous = anon
	} else {
		var named map[string]query.Query
		if err := json.Unmarshal(raw.Filters, &named); err != nil {
			return osdsl.NewDecodeError("filters.filters", "query array or named query map", raw.Filters, err)
		}
		out.Named = named
	}
	*f = out
	return nil
}

// AggRange is one numeric range bucket boundary.
type AggRange struct {
	Key  string   `json:"key,omitempty"`
	From *float64 `json:"from,omitempty"`
	To   *float64 `json:"to,omitempty"`
}

// RangeAggregation buckets by numeric ranges.
type RangeAggregation struct {
	Field   string         `json:"field,omitempty"`
	Ranges  []AggRange     `json:"ranges"`
	Keyed   *bool          `json:"keyed,omitempty"`
	Script  *script.Script `json:"script,omitempty"`
	Missing any            `json:"missing,omitempty"`
}

// DateAggRange is one date range bucket boundary in date-math form.
type DateAggRange struct {
	Key  string `json:"key,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// DateRangeAggregation buckets by date ranges.
type DateRangeAggregation struct {
	Field    string         `json:"field,omitempty"`
	Ranges   []DateAggRange `json:"ranges"`
	Format   string         `json:"format,omitempty"`
	TimeZone string         `json:"time_zone,omitempty"`
	Keyed    *bool          `json:"keyed,omitempty"`
	Script   *script.Script `json:"script,omitempty"`
	Missing  any            `json:"missing,omitempty"`
}

// NumericBounds bounds a histogram.
type NumericBounds struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// HistogramAggregation buckets by fixed numeric intervals.
type HistogramAggregation struct {
	Field          string         `json:"field,omitempty"`
	Interval       float64        `json:"interval"`
	MinDocCount    *int           `json:"min_doc_count,omitempty"`
	ExtendedBounds *NumericBounds `json:"extended_bounds,omitempty"`
	HardBounds     *NumericBounds `json:"hard_bounds,omitempty"`
	Offset         *float64       `json:"offset,omitempty"`
	Keyed          *bool          `json:"keyed,omitempty"`
	Script         *script.Script `json:"script,omitempty"`
	Missing        any            `json:"missing,omitempty"`
}

// DateBounds bounds a date histogram in date-math form.
type DateBounds struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// DateHistogramAggregation buckets by calendar or fixed time intervals.
type DateHistogramAggregation struct {
	Field            string         `json:"field,omitempty"`
	CalendarInterval string         `json:"calendar_interval,omitempty"`
	FixedInterval    string         `json:"fixed_interval,omitempty"`
	Interval         string         `json:"interval,omitempty"`
	Format           string         `json:"format,omitempty"`
	TimeZone         string         `json:"time_zone,omitempty"`
	Offset           string         `json:"offset,omitempty"`
	MinDocCount      *int           `json:"min_doc_count,omitempty"`
	ExtendedBounds   *DateBounds    `json:"extended_bounds,omitempty"`
	HardBounds       *DateBounds    `json:"hard_bounds,omitempty"`
	Keyed            *bool          `json:"keyed,omitempty"`
	Script           *script.Script `json:"script,omitempty"`
	Missing          any            `json:"missing,omitempty"`
}

// NestedAggregation descends into a nested field.
type NestedAggregation struct {
	Path string `json:"path"`
}

// ReverseNestedAggregation climbs back toward the root document. An empty
// path means the root.
type ReverseNestedAggregation struct {
	Path string `json:"path,omitempty"`
}

// SamplerAggregation limits sub-aggregations to the top-scoring documents.
type SamplerAggregation struct {
	ShardSize *int `json:"shard_size,omitempty"`
}

// AdjacencyMatrixAggregation buckets by intersections of named filters.
type AdjacencyMatrixAggregation struct {
	Filters map[string]query.Query `json:"filters"`
}
