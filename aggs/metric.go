package aggs

import (
	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/script"
)

// FieldMetric is the shared body of the single-field metric aggregations
// (avg, max, min, sum, stats, median_absolute_deviation).
type FieldMetric struct {
	Field   string         `json:"field,omitempty"`
	Script  *script.Script `json:"script,omitempty"`
	Missing any            `json:"missing,omitempty"`
}

// ValueCountAggregation counts field values.
type ValueCountAggregation struct {
	Field  string         `json:"field,omitempty"`
	Script *script.Script `json:"script,omitempty"`
}

// CardinalityAggregation approximates the distinct value count.
type CardinalityAggregation struct {
	Field              string         `json:"field,omitempty"`
	Script             *script.Script `json:"script,omitempty"`
	Missing            any            `json:"missing,omitempty"`
	PrecisionThreshold *int           `json:"precision_threshold,omitempty"`
	Rehash             *bool          `json:"rehash,omitempty"`
}

// ExtendedStatsAggregation computes stats plus variance metrics.
type ExtendedStatsAggregation struct {
	Field   string         `json:"field,omitempty"`
	Script  *script.Script `json:"script,omitempty"`
	Missing any            `json:"missing,omitempty"`
	Sigma   *float64       `json:"sigma,omitempty"`
}

// PercentilesAggregation computes percentiles over a field.
type PercentilesAggregation struct {
	Field    string          `json:"field,omitempty"`
	Script   *script.Script  `json:"script,omitempty"`
	Missing  any             `json:"missing,omitempty"`
	Percents []float64       `json:"percents,omitempty"`
	Keyed    *bool           `json:"keyed,omitempty"`
	HDR      *HDRSettings    `json:"hdr,omitempty"`
	TDigest  *TDigestSetting `json:"tdigest,omitempty"`
}

// HDRSettings configures the HDR histogram backing percentiles.
type HDRSettings struct {
	NumberOfSignificantValueDigits int `json:"number_of_significant_value_digits"`
}

// TDigestSetting configures the t-digest backing percentiles.
type TDigestSetting struct {
	Compression float64 `json:"compression"`
}

// PercentileRanksAggregation computes the ranks of the given values.
type PercentileRanksAggregation struct {
	Field   string          `json:"field,omitempty"`
	Script  *script.Script  `json:"script,omitempty"`
	Missing any             `json:"missing,omitempty"`
	Values  []float64       `json:"values"`
	Keyed   *bool           `json:"keyed,omitempty"`
	HDR     *HDRSettings    `json:"hdr,omitempty"`
	TDigest *TDigestSetting `json:"tdigest,omitempty"`
}

// GeoBoundsAggregation computes the bounding box of geo points.
type GeoBoundsAggregation struct {
	Field         string `json:"field,omitempty"`
	WrapLongitude *bool  `json:"wrap_longitude,omitempty"`
}

// GeoCentroidAggregation computes the centroid of geo points.
type GeoCentroidAggregation struct {
	Field string `json:"field,omitempty"`
}

// TopHitsAggregation returns the top matching documents per bucket.
type TopHitsAggregation struct {
	Size         *int                         `json:"size,omitempty"`
	From         *int                         `json:"from,omitempty"`
	Source       *osdsl.SourceFilter          `json:"_source,omitempty"`
	Sort         []map[string]osdsl.SortOrder `json:"sort,omitempty"`
	ScriptFields map[string]script.Script     `json:"script_fields,omitempty"`
}

// ScriptedMetricAggregation runs user scripts over each shard's documents.
type ScriptedMetricAggregation struct {
	InitScript    *script.Script `json:"init_script,omitempty"`
	MapScript     *script.Script `json:"map_script,omitempty"`
	CombineScript *script.Script `json:"combine_script,omitempty"`
	ReduceScript  *script.Script `json:"reduce_script,omitempty"`
	Params        map[string]any `json:"params,omitempty"`
}

// WeightedAvgAggregation averages one operand weighted by another.
type WeightedAvgAggregation struct {
	Value  *WeightedAvgOperand `json:"value,omitempty"`
	Weight *WeightedAvgOperand `json:"weight,omitempty"`
}

// WeightedAvgOperand is one side of a weighted average.
type WeightedAvgOperand struct {
	Field   string         `json:"field,omitempty"`
	Script  *script.Script `json:"script,omitempty"`
	Missing any            `json:"missing,omitempty"`
}

// StringStatsAggregation computes statistics over string lengths.
type StringStatsAggregation struct {
	Field            string `json:"field,omitempty"`
	ShowDistribution *bool  `json:"show_distribution,omitempty"`
	Missing          any    `json:"missing,omitempty"`
}

// BoxplotAggregation computes quartiles over a numeric field.
type BoxplotAggregation struct {
	Field       string   `json:"field,omitempty"`
	Compression *float64 `json:"compression,omitempty"`
}

// RateUnit scales a rate aggregation to a calendar unit.
type RateUnit string

const (
	RateSecond  RateUnit = "second"
	RateMinute  RateUnit = "minute"
	RateHour    RateUnit = "hour"
	RateDay     RateUnit = "day"
	RateWeek    RateUnit = "week"
	RateMonth   RateUnit = "month"
	RateQuarter RateUnit = "quarter"
	RateYear    RateUnit = "year"
)

// RateAggregation computes a per-unit rate inside a date_histogram.
type RateAggregation struct {
	Field string   `json:"field,omitempty"`
	Unit  RateUnit `json:"unit,omitempty"`
}

// MatrixStatsMode selects how multi-valued fields contribute.
type MatrixStatsMode string

const (
	MatrixModeComplete   MatrixStatsMode = "complete"
	MatrixModeIncomplete MatrixStatsMode = "incomplete"
)

// MatrixStatsAggregation computes covariance and correlation across fields.
type MatrixStatsAggregation struct {
	Fields  []string           `json:"fields"`
	Missing map[string]float64 `json:"missing,omitempty"`
	Mode    MatrixStatsMode    `json:"mode,omitempty"`
}
