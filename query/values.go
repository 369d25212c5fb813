package query

// Operator joins the terms produced by analysis.
type Operator string

const (
	OperatorOr  Operator = "or"
	OperatorAnd Operator = "and"
)

// ZeroTermsQuery controls what happens when analysis removes every token.
type ZeroTermsQuery string

const (
	ZeroTermsNone ZeroTermsQuery = "none"
	ZeroTermsAll  ZeroTermsQuery = "all"
)

// MatchType selects the multi_match execution strategy.
type MatchType string

const (
	MatchTypeBestFields   MatchType = "best_fields"
	MatchTypeMostFields   MatchType = "most_fields"
	MatchTypeCrossFields  MatchType = "cross_fields"
	MatchTypePhrase       MatchType = "phrase"
	MatchTypePhrasePrefix MatchType = "phrase_prefix"
	MatchTypeBoolPrefix   MatchType = "bool_prefix"
)

// QueryStringType selects how a query_string query scores across fields.
type QueryStringType string

const (
	QueryStringBestFields   QueryStringType = "best_fields"
	QueryStringMostFields   QueryStringType = "most_fields"
	QueryStringCrossFields  QueryStringType = "cross_fields"
	QueryStringPhrase       QueryStringType = "phrase"
	QueryStringPhrasePrefix QueryStringType = "phrase_prefix"
	QueryStringBoolPrefix   QueryStringType = "bool_prefix"
	QueryStringBoolean      QueryStringType = "boolean"
)

// RangeRelation matches range fields against the query range.
type RangeRelation string

const (
	RelationIntersects RangeRelation = "intersects"
	RelationContains   RangeRelation = "contains"
	RelationWithin     RangeRelation = "within"
)

// NestedScoreMode folds nested document scores into the parent score.
type NestedScoreMode string

const (
	NestedScoreAvg  NestedScoreMode = "avg"
	NestedScoreMax  NestedScoreMode = "max"
	NestedScoreMin  NestedScoreMode = "min"
	NestedScoreNone NestedScoreMode = "none"
	NestedScoreSum  NestedScoreMode = "sum"
)

// ChildScoreMode folds child document scores into the parent score.
type ChildScoreMode string

const (
	ChildScoreNone ChildScoreMode = "none"
	ChildScoreAvg  ChildScoreMode = "avg"
	ChildScoreMax  ChildScoreMode = "max"
	ChildScoreMin  ChildScoreMode = "min"
	ChildScoreSum  ChildScoreMode = "sum"
)

// GeoDistanceType selects the distance computation.
type GeoDistanceType string

const (
	GeoDistanceArc   GeoDistanceType = "arc"
	GeoDistancePlane GeoDistanceType = "plane"
)

// GeoValidationMethod controls how malformed coordinates are handled.
type GeoValidationMethod string

const (
	GeoValidationStrict          GeoValidationMethod = "STRICT"
	GeoValidationCoerce          GeoValidationMethod = "COERCE"
	GeoValidationIgnoreMalformed GeoValidationMethod = "IGNORE_MALFORMED"
)

// GeoShapeRelation matches indexed shapes against the query shape.
type GeoShapeRelation string

const (
	GeoShapeIntersects GeoShapeRelation = "INTERSECTS"
	GeoShapeDisjoint   GeoShapeRelation = "DISJOINT"
	GeoShapeWithin     GeoShapeRelation = "WITHIN"
	GeoShapeContains   GeoShapeRelation = "CONTAINS"
)
