package aggs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ca-srg/osdsl/query"
)

func TestDecodeSingleValueMetrics(t *testing.T) {
	req := Aggregations{
		"avg_price": Avg("price"),
		"distinct":  Cardinality("sku"),
	}
	raw := []byte(`{
		"avg_price":{"value":12.5},
		"distinct":{"value":42}
	}`)
	res, err := DecodeAggregations(raw, req)
	require.NoError(t, err)

	require.NotNil(t, res["avg_price"].Value)
	assert.Equal(t, 12.5, *res["avg_price"].Value.Value)
	require.NotNil(t, res["distinct"].Value)
	assert.Equal(t, 42.0, *res["distinct"].Value.Value)
}

func TestDecodeNullValueMetric(t *testing.T) {
	res, err := DecodeAggregations(
		[]byte(`{"avg_price":{"value":null}}`),
		Aggregations{"avg_price": Avg("price")})
	require.NoError(t, err)
	require.NotNil(t, res["avg_price"].Value)
	assert.Nil(t, res["avg_price"].Value.Value)
}

func TestDecodeStats(t *testing.T) {
	raw := []byte(`{"grade_stats":{"count":2,"min":50,"max":100,"avg":75,"sum":150}}`)
	res, err := DecodeAggregations(raw, Aggregations{"grade_stats": Stats("grade")})
	require.NoError(t, err)
	s := res["grade_stats"].Stats
	require.NotNil(t, s)
	assert.Equal(t, int64(2), s.Count)
	assert.Equal(t, 75.0, *s.Avg)
}

func TestDecodeTermsWithSubAggs(t *testing.T) {
	req := Aggregations{
		"by_tag": Terms("tag").WithAggs(Aggregations{
			"avg_latency": Avg("latency"),
		}),
	}
	raw := []byte(`{
		"by_tag":{
			"doc_count_error_upper_bound":0,
			"sum_other_doc_count":7,
			"buckets":[
				{"key":"go","doc_count":10,"avg_latency":{"value":3.2}},
				{"key":"rust","doc_count":4,"avg_latency":{"value":1.1}}
			]
		}
	}`)
	res, err := DecodeAggregations(raw, req)
	require.NoError(t, err)

	terms := res["by_tag"].Terms
	require.NotNil(t, terms)
	assert.Equal(t, int64(7), terms.SumOtherDocCount)
	require.Len(t, terms.Buckets, 2)
	assert.Equal(t, "go", terms.Buckets[0].Key)
	assert.Equal(t, int64(10), terms.Buckets[0].DocCount)
	sub := terms.Buckets[0].Aggregations["avg_latency"].Value
	require.NotNil(t, sub)
	assert.Equal(t, 3.2, *sub.Value)
}

func TestDecodeThreeLevelTree(t *testing.T) {
	req := Aggregations{
		"by_day": DateHistogram("ts", "day").WithAggs(Aggregations{
			"by_tag": Terms("tag").WithAggs(Aggregations{
				"max_latency": Max("latency"),
			}),
		}),
	}
	raw := []byte(`{
		"by_day":{
			"buckets":[
				{
					"key_as_string":"2024-01-01",
					"key":1704067200000,
					"doc_count":5,
					"by_tag":{
						"doc_count_error_upper_bound":0,
						"sum_other_doc_count":0,
						"buckets":[
							{"key":"go","doc_count":5,"max_latency":{"value":9.9}}
						]
					}
				}
			]
		}
	}`)
	res, err := DecodeAggregations(raw, req)
	require.NoError(t, err)

	days := res["by_day"].Buckets
	require.NotNil(t, days)
	require.Len(t, days.Buckets, 1)
	day := days.Buckets[0]
	assert.Equal(t, "2024-01-01", day.KeyAsString)

	tags := day.Aggregations["by_tag"].Terms
	require.NotNil(t, tags)
	require.Len(t, tags.Buckets, 1)
	maxRes := tags.Buckets[0].Aggregations["max_latency"].Value
	require.NotNil(t, maxRes)
	assert.Equal(t, 9.9, *maxRes.Value)
}

func TestDecodeKeyedBuckets(t *testing.T) {
	keyed := true
	req := Aggregations{
		"price_ranges": Aggregation{Range: &RangeAggregation{
			Field: "price",
			Keyed: &keyed,
			Ranges: []AggRange{
				{Key: "cheap", To: ptr(50.0)},
				{Key: "rest", From: ptr(50.0)},
			},
		}},
	}
	raw := []byte(`{
		"price_ranges":{
			"buckets":{
				"cheap":{"to":50,"doc_count":3},
				"rest":{"from":50,"doc_count":9}
			}
		}
	}`)
	res, err := DecodeAggregations(raw, req)
	require.NoError(t, err)

	kb := res["price_ranges"].KeyedBuckets
	require.NotNil(t, kb)
	assert.Equal(t, int64(3), kb.Buckets["cheap"].DocCount)
	require.NotNil(t, kb.Buckets["rest"].From)
	assert.Equal(t, 50.0, *kb.Buckets["rest"].From)
}

func TestDecodeSingleBucketKinds(t *testing.T) {
	req := Aggregations{
		"errors_only": Filter(query.TermValue("level", "error")).WithAggs(Aggregations{
			"avg_latency": Avg("latency"),
		}),
	}
	raw := []byte(`{
		"errors_only":{"doc_count":17,"avg_latency":{"value":250.5}}
	}`)
	res, err := DecodeAggregations(raw, req)
	require.NoError(t, err)

	single := res["errors_only"].Single
	require.NotNil(t, single)
	assert.Equal(t, int64(17), single.DocCount)
	require.NotNil(t, single.Aggregations["avg_latency"].Value)
}

func TestDecodeTopHits(t *testing.T) {
	req := Aggregations{
		"latest": Aggregation{TopHits: &TopHitsAggregation{}},
	}
	raw := []byte(`{
		"latest":{
			"hits":{
				"total":{"value":3,"relation":"eq"},
				"max_score":1.0,
				"hits":[
					{"_index":"logs","_id":"a1","_score":1.0,"_source":{"msg":"hi"}}
				]
			}
		}
	}`)
	res, err := DecodeAggregations(raw, req)
	require.NoError(t, err)

	th := res["latest"].TopHits
	require.NotNil(t, th)
	require.NotNil(t, th.Hits.Total)
	assert.Equal(t, int64(3), th.Hits.Total.Value)
	require.Len(t, th.Hits.Hits, 1)
	assert.Equal(t, "a1", th.Hits.Hits[0].ID)
}

func TestDecodePercentiles(t *testing.T) {
	raw := []byte(`{"load":{"values":{"50.0":4.2,"95.0":12.8,"99.0":null}}}`)
	res, err := DecodeAggregations(raw, Aggregations{
		"load": Aggregation{Percentiles: &PercentilesAggregation{Field: "ms"}},
	})
	require.NoError(t, err)

	p := res["load"].Percentiles
	require.NotNil(t, p)
	assert.Equal(t, 12.8, *p.Values["95.0"])
	assert.Nil(t, p.Values["99.0"])
}

func TestStructuralFallbackForUnknownNames(t *testing.T) {
	// No request entry: shapes must still land on the right result types.
	raw := []byte(`{
		"mystery_value":{"value":7},
		"mystery_stats":{"count":1,"min":1,"max":1,"avg":1,"sum":1},
		"mystery_buckets":{"buckets":[{"key":"x","doc_count":2}]},
		"mystery_blob":[1,2,3]
	}`)
	res, err := DecodeAggregations(raw, nil)
	require.NoError(t, err)

	require.NotNil(t, res["mystery_value"].Value)
	assert.Equal(t, 7.0, *res["mystery_value"].Value.Value)
	require.NotNil(t, res["mystery_stats"].Stats)
	require.NotNil(t, res["mystery_buckets"].Buckets)
	assert.NotNil(t, res["mystery_blob"].Other)
}

func TestOverlappingShapesResolvedByRequest(t *testing.T) {
	// stats and boxplot responses both carry min/max; the requested kind
	// decides which type wins.
	rawStats := []byte(`{"m":{"count":2,"min":1,"max":9,"avg":5,"sum":10}}`)
	res, err := DecodeAggregations(rawStats, Aggregations{"m": Stats("f")})
	require.NoError(t, err)
	assert.NotNil(t, res["m"].Stats)
	assert.Nil(t, res["m"].Boxplot)

	rawBox := []byte(`{"m":{"min":1,"max":9,"q1":2,"q2":5,"q3":8}}`)
	res, err = DecodeAggregations(rawBox, Aggregations{
		"m": Aggregation{Boxplot: &BoxplotAggregation{Field: "f"}},
	})
	require.NoError(t, err)
	assert.NotNil(t, res["m"].Boxplot)
	assert.Nil(t, res["m"].Stats)
}

func TestDecodeMalformedPayload(t *testing.T) {
	_, err := DecodeAggregations([]byte(`{"a":{"value":`), Aggregations{"a": Avg("f")})
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }
