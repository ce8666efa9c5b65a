package index

import (
	"slices"
	"strings"

	"github.com/matst80/portfolio-finder/pkg/search"
	"github.com/matst80/portfolio-finder/pkg/types"
)

type facetSelection struct {
	key   types.FieldKey
	value string
}

type tagSelection struct {
	key    types.FieldKey
	values []string
}

type rangeSelection struct {
	key types.FieldKey
	rng types.RangeFilter
}

// Predicate is criteria compiled against a schema. Only active filter
// families are kept, so an unconstrained predicate accepts every item.
type Predicate struct {
	matcher      *search.Matcher
	searchFields []types.FieldKey
	searchTags   []types.FieldKey
	facets       []facetSelection
	tags         []tagSelection
	ranges       []rangeSelection
}

func NewPredicate(schema *types.Schema, criteria *types.Criteria) *Predicate {
	p := &Predicate{
		matcher:      search.NewMatcher(criteria.Query, search.Normalizer{FoldDiacritics: schema.FoldDiacritics}),
		searchFields: schema.SearchFields,
		searchTags:   schema.SearchTagFacets(),
	}
	for key := range criteria.Facets {
		if value, ok := criteria.FacetValue(key); ok {
			p.facets = append(p.facets, facetSelection{key: key, value: strings.TrimSpace(value)})
		}
	}
	for key, values := range criteria.Tags {
		if len(values) == 0 {
			continue
		}
		selected := make([]string, 0, len(values))
		for _, v := range values {
			selected = append(selected, strings.TrimSpace(v))
		}
		p.tags = append(p.tags, tagSelection{key: key, values: selected})
	}
	for key, rng := range criteria.Ranges {
		p.ranges = append(p.ranges, rangeSelection{key: key, rng: rng})
	}
	return p
}

// IsUnconstrained reports whether the predicate accepts everything.
func (p *Predicate) IsUnconstrained() bool {
	return p.matcher.IsEmpty() && len(p.facets) == 0 && len(p.tags) == 0 && len(p.ranges) == 0
}

func (p *Predicate) matchText(item types.Item) bool {
	if p.matcher.IsEmpty() {
		return true
	}
	for _, key := range p.searchFields {
		if text, ok := item.GetText(key); ok && p.matcher.Match(text) {
			return true
		}
	}
	for _, key := range p.searchTags {
		if values, ok := item.GetStrings(key); ok && p.matcher.MatchAny(values...) {
			return true
		}
	}
	return false
}

func (p *Predicate) matchFacets(item types.Item) bool {
	for _, f := range p.facets {
		value, ok := item.GetText(f.key)
		if !ok || strings.TrimSpace(value) != f.value {
			return false
		}
	}
	return true
}

func (p *Predicate) matchTags(item types.Item) bool {
	for _, sel := range p.tags {
		values, ok := item.GetStrings(sel.key)
		if !ok || !slices.ContainsFunc(values, func(v string) bool {
			return slices.Contains(sel.values, strings.TrimSpace(v))
		}) {
			return false
		}
	}
	return true
}

func (p *Predicate) matchRanges(item types.Item) bool {
	for _, r := range p.ranges {
		value, ok := item.GetNumber(r.key)
		if !ok || !r.rng.Contains(value) {
			return false
		}
	}
	return true
}

// Match reports whether item passes every active filter family. Items
// missing a field that an active filter needs do not match.
func (p *Predicate) Match(item types.Item) bool {
	if item == nil {
		return false
	}
	return p.matchFacets(item) && p.matchTags(item) && p.matchRanges(item) && p.matchText(item)
}

// Matches is the one shot form of NewPredicate(...).Match(item).
func Matches(schema *types.Schema, item types.Item, criteria *types.Criteria) bool {
	return NewPredicate(schema, criteria).Match(item)
}
