// Package script models the script object accepted by script queries,
// scripted aggregations, and scripted bulk updates.
package script

import (
	"encoding/json"
	"errors"
)

// Script is either an inline script (source text plus optional language,
// params, and compiler options) or a reference to a stored script by id.
// Exactly one form is populated; the wire shape carries only the fields of
// the active form.
type Script struct {
	inline *InlineScript
	stored *StoredScript
}

// InlineScript carries script source text submitted with the request.
type InlineScript struct {
	Source  string            `json:"source"`
	Lang    string            `json:"lang,omitempty"`
	Params  map[string]any    `json:"params,omitempty"`
	Options map[string]string `json:"options,omitempty"`
}

// StoredScript references a script previously stored in the cluster.
type StoredScript struct {
	ID     string         `json:"id"`
	Params map[string]any `json:"params,omitempty"`
}

// Inline builds an inline script from source text.
func Inline(source string) Script {
	return Script{inline: &InlineScript{Source: source}}
}

// Stored builds a reference to a stored script.
func Stored(id string) Script {
	return Script{stored: &StoredScript{ID: id}}
}

// WithLang sets the script language. No-op for stored scripts.
func (s Script) WithLang(lang string) Script {
	if s.inline != nil {
		c := *s.inline
		c.Lang = lang
		s.inline = &c
	}
	return s
}

// WithParams sets the script parameters.
func (s Script) WithParams(params map[string]any) Script {
	switch {
	case s.inline != nil:
		c := *s.inline
		c.Params = params
		s.inline = &c
	case s.stored != nil:
		c := *s.stored
		c.Params = params
		s.stored = &c
	}
	return s
}

// WithOptions sets compiler options. No-op for stored scripts.
func (s Script) WithOptions(options map[string]string) Script {
	if s.inline != nil {
		c := *s.inline
		c.Options = options
		s.inline = &c
	}
	return s
}

// Inline returns the inline form, or nil when the script is stored.
func (s Script) Inline() *InlineScript { return s.inline }

// Stored returns the stored form, or nil when the script is inline.
func (s Script) Stored() *StoredScript { return s.stored }

// IsZero reports whether neither form is populated.
func (s Script) IsZero() bool { return s.inline == nil && s.stored == nil }

func (s Script) MarshalJSON() ([]byte, error) {
	switch {
	case s.inline != nil:
		return json.Marshal(s.inline)
	case s.stored != nil:
		return json.Marshal(s.stored)
	}
	return nil, errors.New("script: neither inline nor stored form is set")
}

func (s *Script) UnmarshalJSON(data []byte) error {
	var probe struct {
		Source *string `json:"source"`
		ID     *string `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Source != nil {
		var in InlineScript
		if err := json.Unmarshal(data, &in); err != nil {
			return err
		}
		*s = Script{inline: &in}
		return nil
	}
	if probe.ID != nil {
		var st StoredScript
		if err := json.Unmarshal(data, &st); err != nil {
			return err
		}
		*s = Script{stored: &st}
		return nil
	}
	return errors.New("script: object has neither source nor id")
}
