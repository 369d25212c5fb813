package aggs

import (
	"encoding/json"
	"sort"
	"strconv"

	osdsl "github.com/ca-srg/osdsl"
)

// Result is one decoded aggregation outcome. Exactly one field is
// populated; which one depends on the kind that was requested under the
// same name, or on a structural probe when the name is unknown. Other
// carries the raw payload when no typed shape applies.
type Result struct {
	Value         *ValueResult
	Stats         *StatsResult
	ExtendedStats *ExtendedStatsResult
	Percentiles   *PercentilesResult
	Terms         *TermsResult
	Buckets       *BucketsResult
	KeyedBuckets  *KeyedBucketsResult
	Single        *SingleBucketResult
	TopHits       *TopHitsResult
	StringStats   *StringStatsResult
	Boxplot       *BoxplotResult
	GeoBounds     *GeoBoundsResult
	GeoCentroid   *GeoCentroidResult
	MatrixStats   *MatrixStatsResult
	Other         json.RawMessage
}

// Results maps aggregation names to their decoded outcomes.
type Results map[string]Result

// ValueResult is a single-value metric outcome.
type ValueResult struct {
	Value         *float64 `json:"value"`
	ValueAsString string   `json:"value_as_string,omitempty"`
}

// StatsResult is the outcome of a stats aggregation.
type StatsResult struct {
	Count       int64    `json:"count"`
	Min         *float64 `json:"min"`
	Max         *float64 `json:"max"`
	Avg         *float64 `json:"avg"`
	Sum         *float64 `json:"sum"`
	MinAsString string   `json:"min_as_string,omitempty"`
	MaxAsString string   `json:"max_as_string,omitempty"`
	AvgAsString string   `json:"avg_as_string,omitempty"`
	SumAsString string   `json:"sum_as_string,omitempty"`
}

// StdDeviationBounds brackets the mean by standard deviations.
type StdDeviationBounds struct {
	Upper *float64 `json:"upper"`
	Lower *float64 `json:"lower"`
}

// ExtendedStatsResult is the outcome of an extended_stats aggregation.
type ExtendedStatsResult struct {
	StatsResult
	SumOfSquares       *float64            `json:"sum_of_squares"`
	Variance           *float64            `json:"variance"`
	StdDeviation       *float64            `json:"std_deviation"`
	StdDeviationBounds *StdDeviationBounds `json:"std_deviation_bounds,omitempty"`
}

// PercentilesResult maps percentile keys to values. Keys are the percent
// strings the server returns, e.g. "95.0".
type PercentilesResult struct {
	Values         map[string]*float64 `json:"values"`
	ValuesAsString map[string]string   `json:"values_as_string,omitempty"`
}

// TermsResult is the outcome of a terms aggregation.
type TermsResult struct {
	DocCountErrorUpperBound int64    `json:"doc_count_error_upper_bound"`
	SumOtherDocCount        int64    `json:"sum_other_doc_count"`
	Buckets                 []Bucket `json:"-"`
}

// BucketsResult is a generic bucket-array outcome (range, histogram,
// date_range, filters in anonymous form, and the like).
type BucketsResult struct {
	Buckets []Bucket
}

// KeyedBucketsResult is a bucket-map outcome (named filters, keyed ranges,
// adjacency_matrix).
type KeyedBucketsResult struct {
	Buckets map[string]Bucket
}

// SingleBucketResult is the outcome of a single-bucket aggregation
// (filter, nested, reverse_nested, sampler).
type SingleBucketResult struct {
	DocCount     int64
	Aggregations Results
}

// Bucket is one bucket with its key, count, optional range bounds, and
// decoded sub-aggregations.
type Bucket struct {
	Key          any
	KeyAsString  string
	DocCount     int64
	From         *float64
	To           *float64
	FromAsString string
	ToAsString   string
	Aggregations Results
}

// TopHitsResult is the outcome of a top_hits aggregation.
type TopHitsResult struct {
	Hits TopHitsData `json:"hits"`
}

// TopHitsData is the hits envelope inside a top_hits outcome.
type TopHitsData struct {
	Total    *osdsl.TotalHits `json:"total"`
	MaxScore *float64         `json:"max_score"`
	Hits     []TopHit         `json:"hits"`
}

// TopHit is one returned document inside a top_hits outcome.
type TopHit struct {
	Index  string                     `json:"_index"`
	ID     string                     `json:"_id"`
	Score  *float64                   `json:"_score"`
	Source json.RawMessage            `json:"_source,omitempty"`
	Fields map[string]json.RawMessage `json:"fields,omitempty"`
}

// StringStatsResult is the outcome of a string_stats aggregation.
type StringStatsResult struct {
	Count        int64              `json:"count"`
	MinLength    *int               `json:"min_length"`
	MaxLength    *int               `json:"max_length"`
	AvgLength    *float64           `json:"avg_length"`
	Entropy      *float64           `json:"entropy,omitempty"`
	Distribution map[string]float64 `json:"distribution,omitempty"`
}

// BoxplotResult is the outcome of a boxplot aggregation.
type BoxplotResult struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
	Q1  *float64 `json:"q1"`
	Q2  *float64 `json:"q2"`
	Q3  *float64 `json:"q3"`
}

// GeoBoundsResult is the outcome of a geo_bounds aggregation.
type GeoBoundsResult struct {
	Bounds *GeoBox `json:"bounds,omitempty"`
}

// GeoBox is a bounding box of geo points.
type GeoBox struct {
	TopLeft     osdsl.GeoPoint `json:"top_left"`
	BottomRight osdsl.GeoPoint `json:"bottom_right"`
}

// GeoCentroidResult is the outcome of a geo_centroid aggregation.
type GeoCentroidResult struct {
	Count    int64           `json:"count"`
	Location *osdsl.GeoPoint `json:"location,omitempty"`
}

// MatrixStatsResult is the outcome of a matrix_stats aggregation.
type MatrixStatsResult struct {
	DocCount int64              `json:"doc_count"`
	Fields   []MatrixStatsField `json:"fields,omitempty"`
}

// MatrixStatsField is the per-field block of a matrix_stats outcome.
type MatrixStatsField struct {
	Name        string             `json:"name"`
	Count       int64              `json:"count"`
	Mean        float64            `json:"mean"`
	Variance    float64            `json:"variance"`
	Skewness    float64            `json:"skewness"`
	Kurtosis    float64            `json:"kurtosis"`
	Covariance  map[string]float64 `json:"covariance,omitempty"`
	Correlation map[string]float64 `json:"correlation,omitempty"`
}

// DecodeAggregations decodes the aggregations section of a search response.
// req is the aggregation tree that produced it: each named result is
// decoded to the shape its requested kind implies, recursively through
// bucket children. Names absent from req are decoded by structural probe,
// falling back to a raw Other result.
func DecodeAggregations(data []byte, req Aggregations) (Results, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, osdsl.NewDecodeError("aggregations", "aggregation result map", data, err)
	}
	return decodeResults(raw, req, "aggregations")
}

func decodeResults(raw map[string]json.RawMessage, req Aggregations, path string) (Results, error) {
	out := make(Results, len(raw))
	for name, body := range raw {
		node, known := req[name]
		p := path + "." + name
		var (
			res Result
			err error
		)
		if known {
			res, err = decodeKnown(body, node, p)
		} else {
			res, err = decodeStructural(body, p)
		}
		if err != nil {
			return nil, err
		}
		out[name] = res
	}
	return out, nil
}

func decodeKnown(body json.RawMessage, node Aggregation, path string) (Result, error) {
	switch node.Kind() {
	case "avg", "max", "min", "sum", "value_count", "cardinality",
		"median_absolute_deviation", "weighted_avg", "rate",
		"avg_bucket", "sum_bucket", "min_bucket", "max_bucket",
		"derivative", "cumulative_sum", "moving_avg", "serial_diff",
		"bucket_script":
		var v ValueResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "single-value metric", body, err)
		}
		return Result{Value: &v}, nil

	case "stats", "stats_bucket":
		var v StatsResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "stats", body, err)
		}
		return Result{Stats: &v}, nil

	case "extended_stats", "extended_stats_bucket":
		var v ExtendedStatsResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "extended stats", body, err)
		}
		return Result{ExtendedStats: &v}, nil

	case "percentiles", "percentile_ranks", "percentiles_bucket":
		var v PercentilesResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "percentile map", body, err)
		}
		return Result{Percentiles: &v}, nil

	case "top_hits":
		var v TopHitsResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "top hits", body, err)
		}
		return Result{TopHits: &v}, nil

	case "string_stats":
		var v StringStatsResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "string stats", body, err)
		}
		return Result{StringStats: &v}, nil

	case "boxplot":
		var v BoxplotResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "boxplot", body, err)
		}
		return Result{Boxplot: &v}, nil

	case "geo_bounds":
		var v GeoBoundsResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "geo bounds", body, err)
		}
		return Result{GeoBounds: &v}, nil

	case "geo_centroid":
		var v GeoCentroidResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "geo centroid", body, err)
		}
		return Result{GeoCentroid: &v}, nil

	case "matrix_stats":
		var v MatrixStatsResult
		if err := json.Unmarshal(body, &v); err != nil {
			return Result{}, osdsl.NewDecodeError(path, "matrix stats", body, err)
		}
		return Result{MatrixStats: &v}, nil

	case "terms":
		return decodeTerms(body, node.Aggs, path)

	case "range", "date_range", "histogram", "date_histogram", "filters", "adjacency_matrix":
		return decodeMultiBucket(body, node, path)

	case "filter", "nested", "reverse_nested", "sampler":
		return decodeSingleBucket(body, node.Aggs, path)
	}

	// scripted_metric and anything unanticipated keep their raw payload.
	return Result{Other: append(json.RawMessage(nil), body...)}, nil
}

func decodeTerms(body json.RawMessage, children Aggregations, path string) (Result, error) {
	var raw struct {
		DocCountErrorUpperBound int64             `json:"doc_count_error_upper_bound"`
		SumOtherDocCount        int64             `json:"sum_other_doc_count"`
		Buckets                 []json.RawMessage `json:"buckets"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Result{}, osdsl.NewDecodeError(path, "terms buckets", body, err)
	}
	res := TermsResult{
		DocCountErrorUpperBound: raw.DocCountErrorUpperBound,
		SumOtherDocCount:        raw.SumOtherDocCount,
		Buckets:                 make([]Bucket, 0, len(raw.Buckets)),
	}
	for i, rb := range raw.Buckets {
		b, err := decodeBucket(rb, children, bucketPath(path, i))
		if err != nil {
			return Result{}, err
		}
		res.Buckets = append(res.Buckets, b)
	}
	return Result{Terms: &res}, nil
}

func decodeMultiBucket(body json.RawMessage, node Aggregation, path string) (Result, error) {
	var probe struct {
		Buckets json.RawMessage `json:"buckets"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return Result{}, osdsl.NewDecodeError(path, "bucket container", body, err)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(probe.Buckets, &list); err == nil {
		res := BucketsResult{Buckets: make([]Bucket, 0, len(list))}
		for i, rb := range list {
			b, err := decodeBucket(rb, node.Aggs, bucketPath(path, i))
			if err != nil {
				return Result{}, err
			}
			res.Buckets = append(res.Buckets, b)
		}
		return Result{Buckets: &res}, nil
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(probe.Buckets, &keyed); err != nil {
		return Result{}, osdsl.NewDecodeError(path+".buckets", "bucket array or keyed map", probe.Buckets, err)
	}
	res := KeyedBucketsResult{Buckets: make(map[string]Bucket, len(keyed))}
	for key, rb := range keyed {
		b, err := decodeBucket(rb, node.Aggs, path+".buckets."+key)
		if err != nil {
			return Result{}, err
		}
		res.Buckets[key] = b
	}
	return Result{KeyedBuckets: &res}, nil
}

func decodeSingleBucket(body json.RawMessage, children Aggregations, path string) (Result, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Result{}, osdsl.NewDecodeError(path, "single bucket", body, err)
	}
	res := SingleBucketResult{}
	sub := make(map[string]json.RawMessage)
	for key, val := range raw {
		if key == "doc_count" {
			if err := json.Unmarshal(val, &res.DocCount); err != nil {
				return Result{}, osdsl.NewDecodeError(path+".doc_count", "integer", val, err)
			}
			continue
		}
		sub[key] = val
	}
	if len(sub) > 0 {
		nested, err := decodeResults(sub, children, path)
		if err != nil {
			return Result{}, err
		}
		res.Aggregations = nested
	}
	return Result{Single: &res}, nil
}

// bucketReservedKeys are the bucket's own fields; every other key inside a
// bucket object is a sub-aggregation result.
var bucketReservedKeys = map[string]bool{
	"key":            true,
	"key_as_string":  true,
	"doc_count":      true,
	"from":           true,
	"to":             true,
	"from_as_string": true,
	"to_as_string":   true,
}

func decodeBucket(body json.RawMessage, children Aggregations, path string) (Bucket, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Bucket{}, osdsl.NewDecodeError(path, "bucket object", body, err)
	}
	var b Bucket
	sub := make(map[string]json.RawMessage)
	for key, val := range raw {
		if !bucketReservedKeys[key] {
			sub[key] = val
			continue
		}
		var err error
		switch key {
		case "key":
			err = json.Unmarshal(val, &b.Key)
		case "key_as_string":
			err = json.Unmarshal(val, &b.KeyAsString)
		case "doc_count":
			err = json.Unmarshal(val, &b.DocCount)
		case "from":
			err = json.Unmarshal(val, &b.From)
		case "to":
			err = json.Unmarshal(val, &b.To)
		case "from_as_string":
			err = json.Unmarshal(val, &b.FromAsString)
		case "to_as_string":
			err = json.Unmarshal(val, &b.ToAsString)
		}
		if err != nil {
			return Bucket{}, osdsl.NewDecodeError(path+"."+key, "bucket field", val, err)
		}
	}
	if len(sub) > 0 {
		nested, err := decodeResults(sub, children, path)
		if err != nil {
			return Bucket{}, err
		}
		b.Aggregations = nested
	}
	return b, nil
}

func bucketPath(path string, i int) string {
	return path + ".buckets[" + strconv.Itoa(i) + "]"
}

// decodeStructural decodes a result whose requested kind is unknown by
// probing its shape, most specific first.
func decodeStructural(body json.RawMessage, path string) (Result, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		// Not an object: keep it raw.
		return Result{Other: append(json.RawMessage(nil), body...)}, nil
	}

	has := func(keys ...string) bool {
		for _, k := range keys {
			if _, ok := raw[k]; !ok {
				return false
			}
		}
		return true
	}

	switch {
	case has("hits"):
		var v TopHitsResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{TopHits: &v}, nil
		}
	case has("fields", "doc_count"):
		var v MatrixStatsResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{MatrixStats: &v}, nil
		}
	case has("min_length"), has("avg_length"):
		var v StringStatsResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{StringStats: &v}, nil
		}
	case has("q1"):
		var v BoxplotResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{Boxplot: &v}, nil
		}
	case has("sum_of_squares"):
		var v ExtendedStatsResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{ExtendedStats: &v}, nil
		}
	case has("count", "avg"):
		var v StatsResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{Stats: &v}, nil
		}
	case has("bounds"):
		var v GeoBoundsResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{GeoBounds: &v}, nil
		}
	case has("location"):
		var v GeoCentroidResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{GeoCentroid: &v}, nil
		}
	case has("values"):
		var v PercentilesResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{Percentiles: &v}, nil
		}
	case has("buckets"):
		res, err := decodeMultiBucket(body, Aggregation{}, path)
		if err == nil {
			return res, nil
		}
	case has("doc_count") && len(raw) >= 1:
		res, err := decodeSingleBucket(body, nil, path)
		if err == nil {
			return res, nil
		}
	case has("value"):
		var v ValueResult
		if err := json.Unmarshal(body, &v); err == nil {
			return Result{Value: &v}, nil
		}
	}

	return Result{Other: append(json.RawMessage(nil), body...)}, nil
}

// Names returns the result names in sorted order. Handy for stable
// iteration in logs and tests.
func (r Results) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
