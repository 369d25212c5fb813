package aggs

import (
	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/script"
)

// GapPolicy controls how pipeline aggregations treat missing buckets.
type GapPolicy string

const (
	GapSkip        GapPolicy = "skip"
	GapInsertZeros GapPolicy = "insert_zeros"
	GapKeepValues  GapPolicy = "keep_values"
)

// BucketPathAggregation is the shared body of the single-metric pipeline
// aggregations (avg_bucket, sum_bucket, min_bucket, max_bucket,
// stats_bucket, cumulative_sum).
type BucketPathAggregation struct {
	BucketsPath string    `json:"buckets_path"`
	GapPolicy   GapPolicy `json:"gap_policy,omitempty"`
	Format      string    `json:"format,omitempty"`
}

// ExtendedStatsBucketAggregation computes extended stats over sibling
// bucket values.
type ExtendedStatsBucketAggregation struct {
	BucketsPath string    `json:"buckets_path"`
	GapPolicy   GapPolicy `json:"gap_policy,omitempty"`
	Format      string    `json:"format,omitempty"`
	Sigma       *float64  `json:"sigma,omitempty"`
}

// PercentilesBucketAggregation computes percentiles over sibling bucket
// values.
type PercentilesBucketAggregation struct {
	BucketsPath string    `json:"buckets_path"`
	GapPolicy   GapPolicy `json:"gap_policy,omitempty"`
	Format      string    `json:"format,omitempty"`
	Percents    []float64 `json:"percents,omitempty"`
	Keyed       *bool     `json:"keyed,omitempty"`
}

// DerivativeAggregation differentiates a metric across histogram buckets.
type DerivativeAggregation struct {
	BucketsPath string    `json:"buckets_path"`
	GapPolicy   GapPolicy `json:"gap_policy,omitempty"`
	Format      string    `json:"format,omitempty"`
	Unit        string    `json:"unit,omitempty"`
}

// MovingAvgModel selects the moving average weighting model.
type MovingAvgModel string

const (
	MovingAvgSimple      MovingAvgModel = "simple"
	MovingAvgLinear      MovingAvgModel = "linear"
	MovingAvgEWMA        MovingAvgModel = "ewma"
	MovingAvgHolt        MovingAvgModel = "holt"
	MovingAvgHoltWinters MovingAvgModel = "holt_winters"
)

// MovingAvgAggregation smooths a metric across histogram buckets.
type MovingAvgAggregation struct {
	BucketsPath string         `json:"buckets_path"`
	Model       MovingAvgModel `json:"model,omitempty"`
	Window      *int           `json:"window,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
	Predict     *int           `json:"predict,omitempty"`
	Minimize    *bool          `json:"minimize,omitempty"`
	GapPolicy   GapPolicy      `json:"gap_policy,omitempty"`
}

// SerialDiffAggregation differences a metric against a lagged bucket.
type SerialDiffAggregation struct {
	BucketsPath string    `json:"buckets_path"`
	Lag         *int      `json:"lag,omitempty"`
	GapPolicy   GapPolicy `json:"gap_policy,omitempty"`
	Format      string    `json:"format,omitempty"`
}

// BucketScriptAggregation computes a script over several sibling metrics.
type BucketScriptAggregation struct {
	BucketsPath map[string]string `json:"buckets_path"`
	Script      script.Script     `json:"script"`
	GapPolicy   GapPolicy         `json:"gap_policy,omitempty"`
	Format      string            `json:"format,omitempty"`
}

// BucketSelectorAggregation drops buckets failing a script predicate.
type BucketSelectorAggregation struct {
	BucketsPath map[string]string `json:"buckets_path"`
	Script      script.Script     `json:"script"`
	GapPolicy   GapPolicy         `json:"gap_policy,omitempty"`
}

// BucketSortAggregation reorders or truncates the parent's buckets.
type BucketSortAggregation struct {
	Sort      []map[string]osdsl.SortOrder `json:"sort,omitempty"`
	Size      *int                         `json:"size,omitempty"`
	From      *int                         `json:"from,omitempty"`
	GapPolicy GapPolicy                    `json:"gap_policy,omitempty"`
}
