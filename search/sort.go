package search

import (
	"encoding/json"
	"errors"

	osdsl "github.com/ca-srg/osdsl"
)

// SortTerm is one sort criterion: a bare field name for ascending order, or
// a field mapped to sort options.
type SortTerm struct {
	Field   string
	Options *SortOptions
}

// SortOptions refines a field sort.
type SortOptions struct {
	Order        osdsl.SortOrder `json:"order,omitempty"`
	Mode         string          `json:"mode,omitempty"`
	Missing      any             `json:"missing,omitempty"`
	Format       string          `json:"format,omitempty"`
	UnmappedType string          `json:"unmapped_type,omitempty"`
	Nested       *NestedSort     `json:"nested,omitempty"`
}

// NestedSort sorts by a field inside nested documents.
type NestedSort struct {
	Path   string      `json:"path"`
	Filter any         `json:"filter,omitempty"`
	Nested *NestedSort `json:"nested,omitempty"`
}

// SortBy builds a sort criterion with an explicit order.
func SortBy(field string, order osdsl.SortOrder) SortTerm {
	return SortTerm{Field: field, Options: &SortOptions{Order: order}}
}

// SortField builds a bare-field sort criterion (server default order).
func SortField(field string) SortTerm {
	return SortTerm{Field: field}
}

func (s SortTerm) MarshalJSON() ([]byte, error) {
	if s.Field == "" {
		return nil, errors.New("sort term: field is required")
	}
	if s.Options == nil {
		return json.Marshal(s.Field)
	}
	return json.Marshal(map[string]*SortOptions{s.Field: s.Options})
}

func (s *SortTerm) UnmarshalJSON(data []byte) error {
	var field string
	if err := json.Unmarshal(data, &field); err == nil {
		*s = SortTerm{Field: field}
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return osdsl.NewDecodeError("sort", "field name or options object", data, err)
	}
	for field, raw := range m {
		// A sort option value may be a bare order string or an object.
		var order osdsl.SortOrder
		if err := json.Unmarshal(raw, &order); err == nil {
			*s = SortTerm{Field: field, Options: &SortOptions{Order: order}}
			return nil
		}
		var opts SortOptions
		if err := json.Unmarshal(raw, &opts); err != nil {
			return osdsl.NewDecodeError("sort."+field, "order or options object", raw, err)
		}
		*s = SortTerm{Field: field, Options: &opts}
		return nil
	}
	return osdsl.NewDecodeError("sort", "non-empty sort object", data, errors.New("empty object"))
}
