package search

// HighlightOptions configures result highlighting.
type HighlightOptions struct {
	Fields            map[string]HighlightField `json:"fields"`
	PreTags           []string                  `json:"pre_tags,omitempty"`
	PostTags          []string                  `json:"post_tags,omitempty"`
	FragmentSize      *int                      `json:"fragment_size,omitempty"`
	NumberOfFragments *int                      `json:"number_of_fragments,omitempty"`
	Type              string                    `json:"type,omitempty"`
	Encoder           string                    `json:"encoder,omitempty"`
	RequireFieldMatch *bool                     `json:"require_field_match,omitempty"`
}

// HighlightField overrides highlighting per field. An empty value inherits
// the request-level options.
type HighlightField struct {
	PreTags           []string `json:"pre_tags,omitempty"`
	PostTags          []string `json:"post_tags,omitempty"`
	FragmentSize      *int     `json:"fragment_size,omitempty"`
	NumberOfFragments *int     `json:"number_of_fragments,omitempty"`
	Type              string   `json:"type,omitempty"`
	NoMatchSize       *int     `json:"no_match_size,omitempty"`
}
