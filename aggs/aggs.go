// Package aggs builds aggregation request trees and decodes their
// responses. A request is a named map of Aggregation nodes; bucket nodes
// nest children under an adjacent aggs key, so an N-deep tree produces N
// nested aggs levels on the wire.
package aggs

import (
	"github.com/ca-srg/osdsl/query"
)

// Aggregations is a set of named aggregation nodes. It serializes as the
// flat name-to-node map that appears under the request's aggs key.
type Aggregations map[string]Aggregation

// Aggregation is the closed union of aggregation kinds. Exactly one kind
// field is populated. Aggs carries the node's children and is valid only on
// bucket kinds; it marshals adjacent to the kind key and is omitted when
// empty.
type Aggregation struct {
	// Metric kinds.
	Avg                     *FieldMetric                `json:"avg,omitempty"`
	Max                     *FieldMetric                `json:"max,omitempty"`
	Min                     *FieldMetric                `json:"min,omitempty"`
	Sum                     *FieldMetric                `json:"sum,omitempty"`
	ValueCount              *ValueCountAggregation      `json:"value_count,omitempty"`
	Cardinality             *CardinalityAggregation     `json:"cardinality,omitempty"`
	Stats                   *FieldMetric                `json:"stats,omitempty"`
	ExtendedStats           *ExtendedStatsAggregation   `json:"extended_stats,omitempty"`
	Percentiles             *PercentilesAggregation     `json:"percentiles,omitempty"`
	PercentileRanks         *PercentileRanksAggregation `json:"percentile_ranks,omitempty"`
	GeoBounds               *GeoBoundsAggregation       `json:"geo_bounds,omitempty"`
	GeoCentroid             *GeoCentroidAggregation     `json:"geo_centroid,omitempty"`
	TopHits                 *TopHitsAggregation         `json:"top_hits,omitempty"`
	ScriptedMetric          *ScriptedMetricAggregation  `json:"scripted_metric,omitempty"`
	WeightedAvg             *WeightedAvgAggregation     `json:"weighted_avg,omitempty"`
	StringStats             *StringStatsAggregation     `json:"string_stats,omitempty"`
	Boxplot                 *BoxplotAggregation         `json:"boxplot,omitempty"`
	Rate                    *RateAggregation            `json:"rate,omitempty"`
	MedianAbsoluteDeviation *FieldMetric                `json:"median_absolute_deviation,omitempty"`
	MatrixStats             *MatrixStatsAggregation     `json:"matrix_stats,omitempty"`

	// Bucket kinds.
	Terms           *TermsAggregation           `json:"terms,omitempty"`
	Filter          *query.Query                `json:"filter,omitempty"`
	Filters         *FiltersAggregation         `json:"filters,omitempty"`
	Range           *RangeAggregation           `json:"range,omitempty"`
	DateRange       *DateRangeAggregation       `json:"date_range,omitempty"`
	Histogram       *HistogramAggregation       `json:"histogram,omitempty"`
	DateHistogram   *DateHistogramAggregation   `json:"date_histogram,omitempty"`
	Nested          *NestedAggregation          `json:"nested,omitempty"`
	ReverseNested   *ReverseNestedAggregation   `json:"reverse_nested,omitempty"`
	Sampler         *SamplerAggregation         `json:"sampler,omitempty"`
	AdjacencyMatrix *AdjacencyMatrixAggregation `json:"adjacency_matrix,omitempty"`

	// Pipeline kinds.
	AvgBucket           *BucketPathAggregation          `json:"avg_bucket,omitempty"`
	SumBucket           *BucketPathAggregation          `json:"sum_bucket,omitempty"`
	MinBucket           *BucketPathAggregation          `json:"min_bucket,omitempty"`
	MaxBucket           *BucketPathAggregation          `json:"max_bucket,omitempty"`
	StatsBucket         *BucketPathAggregation          `json:"stats_bucket,omitempty"`
	ExtendedStatsBucket *ExtendedStatsBucketAggregation `json:"extended_stats_bucket,omitempty"`
	PercentilesBucket   *PercentilesBucketAggregation   `json:"percentiles_bucket,omitempty"`
	Derivative          *DerivativeAggregation          `json:"derivative,omitempty"`
	CumulativeSum       *BucketPathAggregation          `json:"cumulative_sum,omitempty"`
	MovingAvg           *MovingAvgAggregation           `json:"moving_avg,omitempty"`
	SerialDiff          *SerialDiffAggregation          `json:"serial_diff,omitempty"`
	BucketScript        *BucketScriptAggregation        `json:"bucket_script,omitempty"`
	BucketSelector      *BucketSelectorAggregation      `json:"bucket_selector,omitempty"`
	BucketSort          *BucketSortAggregation          `json:"bucket_sort,omitempty"`

	// Children of a bucket node.
	Aggs Aggregations `json:"aggs,omitempty"`
}

// Kind returns the wire name of the active aggregation kind, or "" for the
// zero value.
func (a Aggregation) Kind() string {
	switch {
	case a.Avg != nil:
		return "avg"
	case a.Max != nil:
		return "max"
	case a.Min != nil:
		return "min"
	case a.Sum != nil:
		return "sum"
	case a.ValueCount != nil:
		return "value_count"
	case a.Cardinality != nil:
		return "cardinality"
	case a.Stats != nil:
		return "stats"
	case a.ExtendedStats != nil:
		return "extended_stats"
	case a.Percentiles != nil:
		return "percentiles"
	case a.PercentileRanks != nil:
		return "percentile_ranks"
	case a.GeoBounds != nil:
		return "geo_bounds"
	case a.GeoCentroid != nil:
		return "geo_centroid"
	case a.TopHits != nil:
		return "top_hits"
	case a.ScriptedMetric != nil:
		return "scripted_metric"
	case a.WeightedAvg != nil:
		return "weighted_avg"
	case a.StringStats != nil:
		return "string_stats"
	case a.Boxplot != nil:
		return "boxplot"
	case a.Rate != nil:
		return "rate"
	case a.MedianAbsoluteDeviation != nil:
		return "median_absolute_deviation"
	case a.MatrixStats != nil:
		return "matrix_stats"
	case a.Terms != nil:
		return "terms"
	case a.Filter != nil:
		return "filter"
	case a.Filters != nil:
		return "filters"
	case a.Range != nil:
		return "range"
	case a.DateRange != nil:
		return "date_range"
	case a.Histogram != nil:
		return "histogram"
	case a.DateHistogram != nil:
		return "date_histogram"
	case a.Nested != nil:
		return "nested"
	case a.ReverseNested != nil:
		return "reverse_nested"
	case a.Sampler != nil:
		return "sampler"
	case a.AdjacencyMatrix != nil:
		return "adjacency_matrix"
	case a.AvgBucket != nil:
		return "avg_bucket"
	case a.SumBucket != nil:
		return "sum_bucket"
	case a.MinBucket != nil:
		return "min_bucket"
	case a.MaxBucket != nil:
		return "max_bucket"
	case a.StatsBucket != nil:
		return "stats_bucket"
	case a.ExtendedStatsBucket != nil:
		return "extended_stats_bucket"
	case a.PercentilesBucket != nil:
		return "percentiles_bucket"
	case a.Derivative != nil:
		return "derivative"
	case a.CumulativeSum != nil:
		return "cumulative_sum"
	case a.MovingAvg != nil:
		return "moving_avg"
	case a.SerialDiff != nil:
		return "serial_diff"
	case a.BucketScript != nil:
		return "bucket_script"
	case a.BucketSelector != nil:
		return "bucket_selector"
	case a.BucketSort != nil:
		return "bucket_sort"
	}
	return ""
}

// IsBucket reports whether the active kind can carry child aggregations.
func (a Aggregation) IsBucket() bool {
	switch a.Kind() {
	case "terms", "filter", "filters", "range", "date_range", "histogram",
		"date_histogram", "nested", "reverse_nested", "sampler", "adjacency_matrix":
		return true
	}
	return false
}

// WithAggs returns a copy of the node with the given children attached.
func (a Aggregation) WithAggs(children Aggregations) Aggregation {
	a.Aggs = children
	return a
}

// Avg builds an avg aggregation over a field.
func Avg(field string) Aggregation { return Aggregation{Avg: &FieldMetric{Field: field}} }

// Max builds a max aggregation over a field.
func Max(field string) Aggregation { return Aggregation{Max: &FieldMetric{Field: field}} }

// Min builds a min aggregation over a field.
func Min(field string) Aggregation { return Aggregation{Min: &FieldMetric{Field: field}} }

// Sum builds a sum aggregation over a field.
func Sum(field string) Aggregation { return Aggregation{Sum: &FieldMetric{Field: field}} }

// Stats builds a stats aggregation over a field.
func Stats(field string) Aggregation { return Aggregation{Stats: &FieldMetric{Field: field}} }

// ValueCount builds a value_count aggregation over a field.
func ValueCount(field string) Aggregation {
	return Aggregation{ValueCount: &ValueCountAggregation{Field: field}}
}

// Cardinality builds a cardinality aggregation over a field.
func Cardinality(field string) Aggregation {
	return Aggregation{Cardinality: &CardinalityAggregation{Field: field}}
}

// Terms builds a terms aggregation over a field.
func Terms(field string) Aggregation {
	return Aggregation{Terms: &TermsAggregation{Field: field}}
}

// Filter builds a filter aggregation from a query.
func Filter(q query.Query) Aggregation { return Aggregation{Filter: &q} }

// Nested builds a nested aggregation over a path.
func Nested(path string) Aggregation {
	return Aggregation{Nested: &NestedAggregation{Path: path}}
}

// ReverseNested builds a reverse_nested aggregation. An empty path climbs
// to the root.
func ReverseNested(path string) Aggregation {
	return Aggregation{ReverseNested: &ReverseNestedAggregation{Path: path}}
}

// DateHistogram builds a date_histogram aggregation with a calendar
// interval.
func DateHistogram(field, calendarInterval string) Aggregation {
	return Aggregation{DateHistogram: &DateHistogramAggregation{
		Field:            field,
		CalendarInterval: calendarInterval,
	}}
}
