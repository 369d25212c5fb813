package query

import (
	"encoding/json"
	"errors"

	osdsl "github.com/ca-srg/osdsl"
)

// GeoDistanceQuery matches points within a distance of an origin. The field
// entries are flattened next to the parameters on the wire:
//
//	{"geo_distance":{"distance":"12km","pin.location":{"lat":40,"lon":-70}}}
type GeoDistanceQuery struct {
	Distance         string
	Fields           map[string]osdsl.GeoPoint
	DistanceType     GeoDistanceType
	ValidationMethod GeoValidationMethod
	IgnoreUnmapped   *bool
	Boost            *float64
}

func (q GeoDistanceQuery) MarshalJSON() ([]byte, error) {
	if q.Distance == "" {
		return nil, errors.New("geo_distance: distance is required")
	}
	if len(q.Fields) == 0 {
		return nil, errors.New("geo_distance: at least one field is required")
	}
	out := make(map[string]any, len(q.Fields)+5)
	out["distance"] = q.Distance
	for field, point := range q.Fields {
		out[field] = point
	}
	if q.DistanceType != "" {
		out["distance_type"] = q.DistanceType
	}
	if q.ValidationMethod != "" {
		out["validation_method"] = q.ValidationMethod
	}
	if q.IgnoreUnmapped != nil {
		out["ignore_unmapped"] = *q.IgnoreUnmapped
	}
	if q.Boost != nil {
		out["boost"] = *q.Boost
	}
	return json.Marshal(out)
}

func (q *GeoDistanceQuery) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return osdsl.NewDecodeError("geo_distance", "parameter object", data, err)
	}
	out := GeoDistanceQuery{Fields: map[string]osdsl.GeoPoint{}}
	for key, val := range raw {
		var err error
		switch key {
		case "distance":
			err = json.Unmarshal(val, &out.Distance)
		case "distance_type":
			err = json.Unmarshal(val, &out.DistanceType)
		case "validation_method":
			err = json.Unmarshal(val, &out.ValidationMethod)
		case "ignore_unmapped":
			err = json.Unmarshal(val, &out.IgnoreUnmapped)
		case "boost":
			err = json.Unmarshal(val, &out.Boost)
		default:
			var point osdsl.GeoPoint
			if err = json.Unmarshal(val, &point); err == nil {
				out.Fields[key] = point
			}
		}
		if err != nil {
			return osdsl.NewDecodeError("geo_distance."+key, "geo_distance parameter", val, err)
		}
	}
	*q = out
	return nil
}

// GeoBoundingBoxRule is the per-field body of a geo_bounding_box query.
// Either top_left/bottom_right or top_right/bottom_left name the corners.
type GeoBoundingBoxRule struct {
	TopLeft          *osdsl.GeoPoint     `json:"top_left,omitempty"`
	BottomRight      *osdsl.GeoPoint     `json:"bottom_right,omitempty"`
	TopRight         *osdsl.GeoPoint     `json:"top_right,omitempty"`
	BottomLeft       *osdsl.GeoPoint     `json:"bottom_left,omitempty"`
	Type             string              `json:"type,omitempty"`
	ValidationMethod GeoValidationMethod `json:"validation_method,omitempty"`
	IgnoreUnmapped   *bool               `json:"ignore_unmapped,omitempty"`
}

// GeoPolygonRule is the per-field body of a geo_polygon query.
type GeoPolygonRule struct {
	Points           []osdsl.GeoPoint    `json:"points"`
	ValidationMethod GeoValidationMethod `json:"validation_method,omitempty"`
	IgnoreUnmapped   *bool               `json:"ignore_unmapped,omitempty"`
	Boost            *float64            `json:"boost,omitempty"`
}

// GeoShapeRule is the per-field body of a geo_shape query. The shape is
// given either inline as GeoJSON or as a reference to an indexed shape.
type GeoShapeRule struct {
	Shape        *GeoJSON         `json:"shape,omitempty"`
	IndexedShape *IndexedShape    `json:"indexed_shape,omitempty"`
	Relation     GeoShapeRelation `json:"relation,omitempty"`
	Boost        *float64         `json:"boost,omitempty"`
}

// IndexedShape references a shape stored in another document.
type IndexedShape struct {
	Index string `json:"index"`
	ID    string `json:"id"`
	Path  string `json:"path,omitempty"`
}

// GeoJSON is a geometry in GeoJSON form, discriminated by its lowercase
// type tag. Coordinates keeps the nesting depth appropriate for the type
// ([lon,lat] for point, rings of positions for polygon, and so on).
type GeoJSON struct {
	Type        string    `json:"type"`
	Coordinates any       `json:"coordinates,omitempty"`
	Geometries  []GeoJSON `json:"geometries,omitempty"`
	Radius      string    `json:"radius,omitempty"`
}

// GeoJSONPoint builds a point geometry from lon/lat.
func GeoJSONPoint(lon, lat float64) GeoJSON {
	return GeoJSON{Type: "point", Coordinates: []float64{lon, lat}}
}

// GeoJSONLineString builds a linestring geometry.
func GeoJSONLineString(positions [][]float64) GeoJSON {
	return GeoJSON{Type: "linestring", Coordinates: positions}
}

// GeoJSONPolygon builds a polygon geometry from linear rings.
func GeoJSONPolygon(rings [][][]float64) GeoJSON {
	return GeoJSON{Type: "polygon", Coordinates: rings}
}

// GeoJSONMultiPoint builds a multipoint geometry.
func GeoJSONMultiPoint(positions [][]float64) GeoJSON {
	return GeoJSON{Type: "multipoint", Coordinates: positions}
}

// GeoJSONMultiLineString builds a multilinestring geometry.
func GeoJSONMultiLineString(lines [][][]float64) GeoJSON {
	return GeoJSON{Type: "multilinestring", Coordinates: lines}
}

// GeoJSONMultiPolygon builds a multipolygon geometry.
func GeoJSONMultiPolygon(polygons [][][][]float64) GeoJSON {
	return GeoJSON{Type: "multipolygon", Coordinates: polygons}
}

// GeoJSONGeometryCollection builds a geometrycollection from other shapes.
func GeoJSONGeometryCollection(geometries ...GeoJSON) GeoJSON {
	return GeoJSON{Type: "geometrycollection", Geometries: geometries}
}

// GeoJSONEnvelope builds an envelope from top-left and bottom-right corners.
func GeoJSONEnvelope(topLeft, bottomRight []float64) GeoJSON {
	return GeoJSON{Type: "envelope", Coordinates: [][]float64{topLeft, bottomRight}}
}

// GeoJSONCircle builds a circle around a center with a distance radius such
// as "10km".
func GeoJSONCircle(center []float64, radius string) GeoJSON {
	return GeoJSON{Type: "circle", Coordinates: center, Radius: radius}
}
