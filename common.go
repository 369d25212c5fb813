package osdsl

import (
	"encoding/json"
	"fmt"
)

// SortOrder controls result ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// RefreshPolicy controls when a write becomes visible to search.
type RefreshPolicy string

const (
	// RefreshWaitFor blocks the request until the next scheduled refresh.
	RefreshWaitFor RefreshPolicy = "wait_for"
	// RefreshTrue forces an immediate refresh of the affected shards.
	RefreshTrue RefreshPolicy = "true"
	// RefreshFalse returns without refreshing.
	RefreshFalse RefreshPolicy = "false"
)

func (r RefreshPolicy) String() string { return string(r) }

// VersionType selects how document versions are compared on writes.
type VersionType string

const (
	VersionInternal    VersionType = "internal"
	VersionExternal    VersionType = "external"
	VersionExternalGte VersionType = "external_gte"
)

func (v VersionType) String() string { return string(v) }

// OpType selects index-or-create semantics for a write.
type OpType string

const (
	OpTypeIndex  OpType = "index"
	OpTypeCreate OpType = "create"
)

// HealthStatus is a cluster or index health color.
type HealthStatus string

const (
	HealthGreen  HealthStatus = "green"
	HealthYellow HealthStatus = "yellow"
	HealthRed    HealthStatus = "red"
)

// GeoPoint is a latitude/longitude pair in the object wire form.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ShardStatistics reports shard-level outcome counts for a request.
type ShardStatistics struct {
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
	Skipped    int            `json:"skipped,omitempty"`
	Failed     int            `json:"failed"`
	Failures   []ShardFailure `json:"failures,omitempty"`
}

// ShardFailure describes a single failed shard.
type ShardFailure struct {
	Index  string          `json:"index,omitempty"`
	Shard  int             `json:"shard"`
	Node   string          `json:"node,omitempty"`
	Status string          `json:"status,omitempty"`
	Reason json.RawMessage `json:"reason,omitempty"`
}

// TotalHitsRelation qualifies a total hit count.
type TotalHitsRelation string

const (
	// TotalHitsEq means the count is exact.
	TotalHitsEq TotalHitsRelation = "eq"
	// TotalHitsGte means the count is a lower bound.
	TotalHitsGte TotalHitsRelation = "gte"
	TotalHitsLte TotalHitsRelation = "lte"
)

// TotalHits is a hit count with its accuracy relation.
type TotalHits struct {
	Value    int64             `json:"value"`
	Relation TotalHitsRelation `json:"relation,omitempty"`
}

// Fuzziness is either the literal "auto" or an explicit edit distance.
type Fuzziness struct {
	auto  bool
	edits int
}

// FuzzinessAuto lets the server pick an edit distance from term length.
func FuzzinessAuto() Fuzziness { return Fuzziness{auto: true} }

// FuzzinessEdits fixes the maximum edit distance.
func FuzzinessEdits(n int) Fuzziness { return Fuzziness{edits: n} }

func (f Fuzziness) IsAuto() bool { return f.auto }

func (f Fuzziness) MarshalJSON() ([]byte, error) {
	if f.auto {
		return json.Marshal("auto")
	}
	return json.Marshal(f.edits)
}

func (f *Fuzziness) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = Fuzziness{edits: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return NewDecodeError("", `"auto" or an integer edit distance`, data, err)
	}
	if s != "auto" && s != "AUTO" {
		return NewDecodeError("", `"auto" or an integer edit distance`, data,
			fmt.Errorf("unsupported fuzziness %q", s))
	}
	*f = Fuzziness{auto: true}
	return nil
}

// MinimumShouldMatch is either an absolute count or a specifier string such
// as "75%" or "2<-25%".
type MinimumShouldMatch struct {
	count int
	spec  string
	isInt bool
}

// MSMCount requires an absolute number of matching clauses.
func MSMCount(n int) MinimumShouldMatch { return MinimumShouldMatch{count: n, isInt: true} }

// MSMSpec passes a minimum_should_match specifier string through verbatim.
func MSMSpec(s string) MinimumShouldMatch { return MinimumShouldMatch{spec: s} }

func (m MinimumShouldMatch) MarshalJSON() ([]byte, error) {
	if m.isInt {
		return json.Marshal(m.count)
	}
	return json.Marshal(m.spec)
}

func (m *MinimumShouldMatch) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = MinimumShouldMatch{count: n, isInt: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return NewDecodeError("", "integer or specifier string", data, err)
	}
	*m = MinimumShouldMatch{spec: s}
	return nil
}
