package types

import (
	"maps"
	"slices"
	"strings"
)

type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewGrid ViewMode = "grid"
)

// RangeFilter is an inclusive bound on a number field.
type RangeFilter struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r RangeFilter) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

// Criteria is the complete set of selections of one filtering session.
// Families combine with AND, values inside one tag facet with OR.
type Criteria struct {
	Query     string                   `json:"query" schema:"q"`
	Facets    map[FieldKey]string      `json:"facets,omitempty" schema:"-"`
	Tags      map[FieldKey][]string    `json:"tags,omitempty" schema:"-"`
	Ranges    map[FieldKey]RangeFilter `json:"ranges,omitempty" schema:"-"`
	Sort      FieldKey                 `json:"sort,omitempty" schema:"sort"`
	Direction SortDirection            `json:"direction" schema:"dir"`
	View      ViewMode                 `json:"view" schema:"view"`
}

func NewCriteria() Criteria {
	return Criteria{
		Facets:    map[FieldKey]string{},
		Tags:      map[FieldKey][]string{},
		Ranges:    map[FieldKey]RangeFilter{},
		Direction: Ascending,
		View:      ViewList,
	}
}

func (c *Criteria) SearchText() string {
	return strings.TrimSpace(c.Query)
}

// FacetValue returns the selection for a single value facet and false when
// the facet is unconstrained.
func (c *Criteria) FacetValue(key FieldKey) (string, bool) {
	v, ok := c.Facets[key]
	if !ok || v == "" || v == All {
		return "", false
	}
	return v, true
}

func (c *Criteria) SelectedTags(key FieldKey) []string {
	return c.Tags[key]
}

func (c *Criteria) HasTag(key FieldKey, value string) bool {
	return slices.Contains(c.Tags[key], value)
}

// ToggleTag adds value to the selection of key or removes it if present.
func (c *Criteria) ToggleTag(key FieldKey, value string) {
	if c.Tags == nil {
		c.Tags = map[FieldKey][]string{}
	}
	current := c.Tags[key]
	if idx := slices.Index(current, value); idx >= 0 {
		current = slices.Delete(slices.Clone(current), idx, idx+1)
	} else {
		current = append(slices.Clone(current), value)
	}
	if len(current) == 0 {
		delete(c.Tags, key)
		return
	}
	c.Tags[key] = current
}

func (c *Criteria) SetFacet(key FieldKey, value string) {
	if c.Facets == nil {
		c.Facets = map[FieldKey]string{}
	}
	if value == "" || value == All {
		delete(c.Facets, key)
		return
	}
	c.Facets[key] = value
}

func (c *Criteria) SetRange(key FieldKey, r RangeFilter) {
	if c.Ranges == nil {
		c.Ranges = map[FieldKey]RangeFilter{}
	}
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	c.Ranges[key] = r
}

// IsUnconstrained reports whether no filter family restricts the result.
func (c *Criteria) IsUnconstrained() bool {
	if c.SearchText() != "" || len(c.Ranges) > 0 {
		return false
	}
	for key := range c.Facets {
		if _, ok := c.FacetValue(key); ok {
			return false
		}
	}
	for _, v := range c.Tags {
		if len(v) > 0 {
			return false
		}
	}
	return true
}

func (c *Criteria) Clone() Criteria {
	ret := *c
	ret.Facets = maps.Clone(c.Facets)
	ret.Ranges = maps.Clone(c.Ranges)
	ret.Tags = make(map[FieldKey][]string, len(c.Tags))
	for k, v := range c.Tags {
		ret.Tags[k] = slices.Clone(v)
	}
	if ret.Facets == nil {
		ret.Facets = map[FieldKey]string{}
	}
	if ret.Ranges == nil {
		ret.Ranges = map[FieldKey]RangeFilter{}
	}
	return ret
}

func (c *Criteria) Equal(other *Criteria) bool {
	if c.Query != other.Query || c.Sort != other.Sort || c.Direction != other.Direction || c.View != other.View {
		return false
	}
	if !maps.Equal(c.Facets, other.Facets) || !maps.Equal(c.Ranges, other.Ranges) {
		return false
	}
	return maps.EqualFunc(c.Tags, other.Tags, func(a, b []string) bool {
		return slices.Equal(a, b)
	})
}
