package osdsl

import (
	"encoding/json"
	"errors"
)

// SourceFilter controls which parts of _source a response returns. The wire
// form is one of three shapes: a boolean toggle, a bare list of include
// patterns, or an object with includes/excludes lists.
type SourceFilter struct {
	enabled *bool
	fields  []string
	filter  *SourcePatterns
}

// SourcePatterns is the object form of a source filter.
type SourcePatterns struct {
	Includes []string `json:"includes,omitempty"`
	Excludes []string `json:"excludes,omitempty"`
}

// SourceEnabled toggles _source retrieval as a whole.
func SourceEnabled(v bool) SourceFilter { return SourceFilter{enabled: &v} }

// SourceFields returns only the named fields.
func SourceFields(fields ...string) SourceFilter { return SourceFilter{fields: fields} }

// SourceIncludesExcludes filters with include and exclude pattern lists.
func SourceIncludesExcludes(includes, excludes []string) SourceFilter {
	return SourceFilter{filter: &SourcePatterns{Includes: includes, Excludes: excludes}}
}

func (s SourceFilter) MarshalJSON() ([]byte, error) {
	switch {
	case s.enabled != nil:
		return json.Marshal(*s.enabled)
	case s.fields != nil:
		return json.Marshal(s.fields)
	case s.filter != nil:
		return json.Marshal(s.filter)
	}
	return nil, errors.New("source filter: no form set")
}

func (s *SourceFilter) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = SourceFilter{enabled: &b}
		return nil
	}
	var fields []string
	if err := json.Unmarshal(data, &fields); err == nil {
		*s = SourceFilter{fields: fields}
		return nil
	}
	var p SourcePatterns
	if err := json.Unmarshal(data, &p); err != nil {
		return NewDecodeError("_source", "bool, field list, or includes/excludes object", data, err)
	}
	*s = SourceFilter{filter: &p}
	return nil
}
