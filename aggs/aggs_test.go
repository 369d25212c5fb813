package aggs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ca-srg/osdsl/query"
	"github.com/ca-srg/osdsl/script"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestMetricWireForms(t *testing.T) {
	cases := []struct {
		name string
		agg  Aggregation
		want string
	}{
		{"avg", Avg("price"), `{"avg":{"field":"price"}}`},
		{"max", Max("price"), `{"max":{"field":"price"}}`},
		{"sum", Sum("price"), `{"sum":{"field":"price"}}`},
		{"stats", Stats("price"), `{"stats":{"field":"price"}}`},
		{"value_count", ValueCount("sku"), `{"value_count":{"field":"sku"}}`},
		{"cardinality", Cardinality("sku"), `{"cardinality":{"field":"sku"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.JSONEq(t, tc.want, marshal(t, tc.agg))
			assert.Equal(t, tc.name, tc.agg.Kind())
		})
	}
}

func TestPercentilesWireForm(t *testing.T) {
	agg := Aggregation{Percentiles: &PercentilesAggregation{
		Field:    "load_time",
		Percents: []float64{50, 95, 99},
		TDigest:  &TDigestSetting{Compression: 200},
	}}
	assert.JSONEq(t,
		`{"percentiles":{"field":"load_time","percents":[50,95,99],"tdigest":{"compression":200}}}`,
		marshal(t, agg))
}

func TestTermsAggregationWireForm(t *testing.T) {
	size := 10
	agg := Aggregation{Terms: &TermsAggregation{
		Field: "tags",
		Size:  &size,
		Order: OrderBy(TermsOrderTerm{Key: "_count", Order: "desc"}),
	}}
	assert.JSONEq(t,
		`{"terms":{"field":"tags","size":10,"order":{"_count":"desc"}}}`,
		marshal(t, agg))
}

func TestTermsOrderForms(t *testing.T) {
	one := OrderBy(TermsOrderTerm{Key: "_key", Order: "asc"})
	data, err := json.Marshal(one)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_key":"asc"}`, string(data))

	many := OrderBy(
		TermsOrderTerm{Key: "max_price", Order: "desc"},
		TermsOrderTerm{Key: "_key", Order: "asc"},
	)
	data, err = json.Marshal(many)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"max_price":"desc"},{"_key":"asc"}]`, string(data))

	var back TermsOrder
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back.Terms, 2)
	assert.Equal(t, "max_price", back.Terms[0].Key)
}

func TestTermsIncludeForms(t *testing.T) {
	agg := Aggregation{Terms: &TermsAggregation{
		Field:   "tags",
		Include: FilterPattern("env_.*"),
		Exclude: FilterValues("env_test"),
	}}
	assert.JSONEq(t,
		`{"terms":{"field":"tags","include":"env_.*","exclude":["env_test"]}}`,
		marshal(t, agg))
}

func TestFilterAggregationWireForm(t *testing.T) {
	agg := Filter(query.TermValue("status", "error")).
		WithAggs(Aggregations{"avg_latency": Avg("latency")})
	assert.JSONEq(t, `{
		"filter":{"term":{"status":{"value":"error"}}},
		"aggs":{"avg_latency":{"avg":{"field":"latency"}}}
	}`, marshal(t, agg))
}

func TestFiltersAggregationForms(t *testing.T) {
	named := Aggregation{Filters: &FiltersAggregation{
		Named: map[string]query.Query{
			"errors": query.TermValue("level", "error"),
			"warns":  query.TermValue("level", "warn"),
		},
	}}
	assert.JSONEq(t, `{
		"filters":{
			"filters":{
				"errors":{"term":{"level":{"value":"error"}}},
				"warns":{"term":{"level":{"value":"warn"}}}
			}
		}
	}`, marshal(t, named))

	anon := Aggregation{Filters: &FiltersAggregation{
		Anonymous: []query.Query{query.MatchText("body", "error")},
	}}
	assert.JSONEq(t,
		`{"filters":{"filters":[{"match":{"body":"error"}}]}}`,
		marshal(t, anon))

	var back Aggregation
	require.NoError(t, json.Unmarshal([]byte(marshal(t, named)), &back))
	require.NotNil(t, back.Filters)
	assert.Len(t, back.Filters.Named, 2)
}

func TestDateHistogramWireForm(t *testing.T) {
	agg := DateHistogram("timestamp", "month")
	assert.JSONEq(t,
		`{"date_histogram":{"field":"timestamp","calendar_interval":"month"}}`,
		marshal(t, agg))
}

func TestNestedAggsLevels(t *testing.T) {
	// Three levels of bucket nesting must produce exactly three nested
	// "aggs" keys on the wire.
	tree := Aggregations{
		"by_day": DateHistogram("ts", "day").WithAggs(Aggregations{
			"by_tag": Terms("tag").WithAggs(Aggregations{
				"by_status": Terms("status").WithAggs(Aggregations{
					"avg_latency": Avg("latency"),
				}),
			}),
		}),
	}
	data := marshal(t, tree)
	assert.Equal(t, 3, strings.Count(data, `"aggs":`))

	var back Aggregations
	require.NoError(t, json.Unmarshal([]byte(data), &back))
	l1 := back["by_day"]
	require.NotNil(t, l1.DateHistogram)
	l2 := l1.Aggs["by_tag"]
	require.NotNil(t, l2.Terms)
	l3 := l2.Aggs["by_status"]
	require.NotNil(t, l3.Terms)
	require.NotNil(t, l3.Aggs["avg_latency"].Avg)
}

func TestNestedReverseNestedWireForms(t *testing.T) {
	agg := Nested("comments").WithAggs(Aggregations{
		"back_to_root": ReverseNested("").WithAggs(Aggregations{
			"top_tags": Terms("tags"),
		}),
	})
	assert.JSONEq(t, `{
		"nested":{"path":"comments"},
		"aggs":{
			"back_to_root":{
				"reverse_nested":{},
				"aggs":{"top_tags":{"terms":{"field":"tags"}}}
			}
		}
	}`, marshal(t, agg))
}

func TestPipelineWireForms(t *testing.T) {
	aggs := Aggregations{
		"total_sales": Aggregation{SumBucket: &BucketPathAggregation{
			BucketsPath: "sales_per_month>sales",
		}},
		"sales_deriv": Aggregation{Derivative: &DerivativeAggregation{
			BucketsPath: "sales",
			GapPolicy:   GapSkip,
		}},
		"ratio": Aggregation{BucketScript: &BucketScriptAggregation{
			BucketsPath: map[string]string{"total": "total", "errors": "errors"},
			Script:      script.Inline("params.errors / params.total"),
		}},
	}
	assert.JSONEq(t, `{
		"total_sales":{"sum_bucket":{"buckets_path":"sales_per_month>sales"}},
		"sales_deriv":{"derivative":{"buckets_path":"sales","gap_policy":"skip"}},
		"ratio":{"bucket_script":{
			"buckets_path":{"total":"total","errors":"errors"},
			"script":{"source":"params.errors / params.total"}
		}}
	}`, marshal(t, aggs))
}

func TestAdjacencyMatrixWireForm(t *testing.T) {
	agg := Aggregation{AdjacencyMatrix: &AdjacencyMatrixAggregation{
		Filters: map[string]query.Query{
			"grpA": query.TermValue("accounts", "hillary"),
			"grpB": query.TermValue("accounts", "donald"),
		},
	}}
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(marshal(t, agg)), &m))
	assert.Len(t, m, 1)
	assert.Contains(t, m, "adjacency_matrix")
}

func TestSamplerWireForm(t *testing.T) {
	shardSize := 200
	agg := Aggregation{Sampler: &SamplerAggregation{ShardSize: &shardSize}}.
		WithAggs(Aggregations{"keywords": Terms("keyword")})
	assert.JSONEq(t, `{
		"sampler":{"shard_size":200},
		"aggs":{"keywords":{"terms":{"field":"keyword"}}}
	}`, marshal(t, agg))
}

func TestBucketKindClassification(t *testing.T) {
	assert.True(t, Terms("f").IsBucket())
	assert.True(t, Nested("p").IsBucket())
	assert.False(t, Avg("f").IsBucket())
	assert.False(t, Aggregation{AvgBucket: &BucketPathAggregation{BucketsPath: "x"}}.IsBucket())
}
