package types

type FacetKind string

const (
	// FacetKeyType is a single value facet, e.g. status or difficulty.
	FacetKeyType FacetKind = "key"
	// FacetTagType holds a set of values per item, e.g. technologies.
	FacetTagType FacetKind = "tags"
)

// All is the selection that leaves a single value facet unconstrained.
const All = "all"

type BaseField struct {
	Key         FieldKey  `json:"key" yaml:"key"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        FacetKind `json:"kind" yaml:"kind"`
	Priority    float64   `json:"prio,omitempty" yaml:"priority,omitempty"`
	HideFacet   bool      `json:"hide,omitempty" yaml:"hide,omitempty"`
	Searchable  bool      `json:"searchable,omitempty" yaml:"searchable,omitempty"`
}

func (b *BaseField) IsTags() bool {
	return b.Kind == FacetTagType
}
