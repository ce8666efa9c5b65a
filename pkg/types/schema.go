package types

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidSchema = errors.New("invalid schema")

// Schema is the per collection configuration the engine runs on: which text
// fields are searched, which facets exist and how each sort key compares.
type Schema struct {
	Name             string        `json:"name" yaml:"name"`
	SearchFields     []FieldKey    `json:"searchFields" yaml:"searchFields"`
	Facets           []*BaseField  `json:"facets" yaml:"facets"`
	Ranges           []FieldKey    `json:"ranges,omitempty" yaml:"ranges,omitempty"`
	Sorts            []SortField   `json:"sorts" yaml:"sorts"`
	DefaultSort      FieldKey      `json:"defaultSort,omitempty" yaml:"defaultSort,omitempty"`
	DefaultDirection SortDirection `json:"defaultDirection,omitempty" yaml:"defaultDirection,omitempty"`
	FoldDiacritics   bool          `json:"foldDiacritics,omitempty" yaml:"foldDiacritics,omitempty"`
}

func (s *Schema) GetFacet(key FieldKey) (*BaseField, bool) {
	for _, f := range s.Facets {
		if f.Key == key {
			return f, true
		}
	}
	return nil, false
}

func (s *Schema) GetSort(key FieldKey) (*SortField, bool) {
	for i := range s.Sorts {
		if s.Sorts[i].Key == key {
			return &s.Sorts[i], true
		}
	}
	return nil, false
}

func (s *Schema) HasRange(key FieldKey) bool {
	return slices.Contains(s.Ranges, key)
}

// SearchTagFacets returns the tag facets whose values take part in free text search.
func (s *Schema) SearchTagFacets() []FieldKey {
	ret := make([]FieldKey, 0)
	for _, f := range s.Facets {
		if f.IsTags() && f.Searchable {
			ret = append(ret, f.Key)
		}
	}
	return ret
}

// DefaultCriteria is the fully unconstrained criteria for this schema.
func (s *Schema) DefaultCriteria() Criteria {
	c := NewCriteria()
	c.Sort = s.DefaultSort
	c.Direction = s.DefaultDirection
	if c.Direction == "" {
		c.Direction = Ascending
	}
	return c
}

func (s *Schema) Validate() error {
	seen := make(map[FieldKey]struct{}, len(s.Facets))
	for _, f := range s.Facets {
		if f == nil || f.Key == "" {
			return fmt.Errorf("%w: facet without key", ErrInvalidSchema)
		}
		if _, ok := seen[f.Key]; ok {
			return fmt.Errorf("%w: duplicate facet %q", ErrInvalidSchema, f.Key)
		}
		seen[f.Key] = struct{}{}
		if f.Kind != FacetKeyType && f.Kind != FacetTagType {
			return fmt.Errorf("%w: facet %q has unknown kind %q", ErrInvalidSchema, f.Key, f.Kind)
		}
	}
	sorts := make(map[FieldKey]struct{}, len(s.Sorts))
	for _, srt := range s.Sorts {
		if srt.Key == "" {
			return fmt.Errorf("%w: sort without key", ErrInvalidSchema)
		}
		if _, ok := sorts[srt.Key]; ok {
			return fmt.Errorf("%w: duplicate sort %q", ErrInvalidSchema, srt.Key)
		}
		sorts[srt.Key] = struct{}{}
		switch srt.Kind {
		case SortString, SortNumber, SortDate:
		case SortOrdinal:
			if len(srt.Ranks) == 0 {
				return fmt.Errorf("%w: ordinal sort %q has no ranks", ErrInvalidSchema, srt.Key)
			}
		default:
			return fmt.Errorf("%w: sort %q has unknown kind %q", ErrInvalidSchema, srt.Key, srt.Kind)
		}
	}
	if s.DefaultSort != "" {
		if _, ok := sorts[s.DefaultSort]; !ok {
			return fmt.Errorf("%w: default sort %q is not a sort key", ErrInvalidSchema, s.DefaultSort)
		}
	}
	switch s.DefaultDirection {
	case "", Ascending, Descending:
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidSchema, s.DefaultDirection)
	}
	return nil
}
