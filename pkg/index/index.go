package index

import (
	"slices"

	"github.com/matst80/portfolio-finder/pkg/sorting"
	"github.com/matst80/portfolio-finder/pkg/types"
)

type Result struct {
	Items    []types.Item   `json:"items"`
	Total    int            `json:"total"`
	Criteria types.Criteria `json:"criteria"`
}

func (r *Result) Len() int {
	return len(r.Items)
}

func (r *Result) Ids() []types.ItemId {
	return types.ItemIds(r.Items)
}

// Engine runs queries for one schema. It holds no collection state and can
// be reused across collections of the same shape.
type Engine struct {
	schema  *types.Schema
	sorting *sorting.Registry
}

func NewEngine(schema *types.Schema) *Engine {
	return &Engine{
		schema:  schema,
		sorting: sorting.NewRegistry(schema.Sorts...),
	}
}

func (e *Engine) Schema() *types.Schema {
	return e.schema
}

func (e *Engine) Sorting() *sorting.Registry {
	return e.sorting
}

// Filter returns the items matching criteria in input order.
func (e *Engine) Filter(items []types.Item, criteria *types.Criteria) []types.Item {
	predicate := NewPredicate(e.schema, criteria)
	all := predicate.IsUnconstrained()
	ret := make([]types.Item, 0, len(items))
	for _, item := range items {
		if item != nil && (all || predicate.Match(item)) {
			ret = append(ret, item)
		}
	}
	return ret
}

// Sort stable sorts items in place by the criteria sort key and direction.
func (e *Engine) Sort(items []types.Item, criteria *types.Criteria) {
	if !e.sorting.Has(criteria.Sort) {
		return
	}
	slices.SortStableFunc(items, e.sorting.Comparator(criteria.Sort, criteria.Direction))
}

// Query filters then sorts. The input slice is never reordered and equal
// inputs always give the same output.
func (e *Engine) Query(items []types.Item, criteria *types.Criteria) *Result {
	matching := e.Filter(items, criteria)
	e.Sort(matching, criteria)
	return &Result{
		Items:    matching,
		Total:    len(items),
		Criteria: criteria.Clone(),
	}
}

func Query(schema *types.Schema, items []types.Item, criteria *types.Criteria) *Result {
	return NewEngine(schema).Query(items, criteria)
}
