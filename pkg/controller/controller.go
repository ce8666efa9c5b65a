package controller

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matst80/portfolio-finder/pkg/facet"
	"github.com/matst80/portfolio-finder/pkg/index"
	"github.com/matst80/portfolio-finder/pkg/search"
	"github.com/matst80/portfolio-finder/pkg/types"
)

// ResultHandler receives every recomputed result, including the first one
// computed by New.
type ResultHandler func(result *index.Result)

// Observer is notified after each recompute.
type Observer interface {
	Recomputed(session string, elapsed time.Duration, shown int, total int)
}

type Option func(c *Controller)

func WithObserver(observer Observer) Option {
	return func(c *Controller) {
		c.observer = observer
	}
}

// WithCriteria seeds the initial criteria, dropping keys the schema does
// not know the same way Apply does. ClearAll still restores the schema
// defaults.
func WithCriteria(criteria *types.Criteria) Option {
	return func(c *Controller) {
		if criteria != nil {
			c.criteria = c.sanitize(criteria)
		}
	}
}

// Controller owns the criteria of one filtering session over an immutable
// collection. It is not safe for concurrent use.
type Controller struct {
	id       string
	schema   *types.Schema
	items    []types.Item
	engine   *index.Engine
	facets   *facet.Index
	trie     *search.Trie
	defaults types.Criteria
	criteria types.Criteria
	result   *index.Result
	onResult ResultHandler
	observer Observer
}

func New(schema *types.Schema, items []types.Item, onResult ResultHandler, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.New().String(),
		schema:   schema,
		items:    items,
		engine:   index.NewEngine(schema),
		facets:   facet.BuildIndex(items, schema.Facets),
		defaults: schema.DefaultCriteria(),
		onResult: onResult,
	}
	c.criteria = c.defaults.Clone()
	for _, opt := range opts {
		opt(c)
	}
	c.trie = buildSuggestions(schema, items)
	c.recompute()
	return c
}

func buildSuggestions(schema *types.Schema, items []types.Item) *search.Trie {
	trie := search.NewTrie()
	tokenizer := &search.Tokenizer{
		Normalizer: search.Normalizer{FoldDiacritics: schema.FoldDiacritics},
	}
	tagFacets := schema.SearchTagFacets()
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, key := range schema.SearchFields {
			if text, ok := item.GetText(key); ok {
				for _, token := range tokenizer.Tokenize(text) {
					trie.Insert(string(token))
				}
			}
		}
		for _, key := range tagFacets {
			values, _ := item.GetStrings(key)
			for _, v := range values {
				for _, token := range tokenizer.Tokenize(v) {
					trie.Insert(string(token))
				}
			}
		}
	}
	return trie
}

func (c *Controller) recompute() {
	start := time.Now()
	c.result = c.engine.Query(c.items, &c.criteria)
	elapsed := time.Since(start)
	if c.observer != nil {
		c.observer.Recomputed(c.id, elapsed, c.result.Len(), c.result.Total)
	}
	if c.onResult != nil {
		c.onResult(c.result)
	}
}

func (c *Controller) Id() string {
	return c.id
}

func (c *Controller) Schema() *types.Schema {
	return c.schema
}

// Criteria returns a copy of the current criteria.
func (c *Controller) Criteria() *types.Criteria {
	clone := c.criteria.Clone()
	return &clone
}

func (c *Controller) Result() *index.Result {
	return c.result
}

func (c *Controller) ResultCount() int {
	return c.result.Len()
}

func (c *Controller) TotalCount() int {
	return len(c.items)
}

func (c *Controller) Facets() *facet.Index {
	return c.facets
}

// FacetValues returns the values of key in order of first appearance.
func (c *Controller) FacetValues(key types.FieldKey) []string {
	return c.facets.Values(key)
}

// FacetCounts counts facet values within the current result.
func (c *Controller) FacetCounts(key types.FieldKey) map[string]int {
	field, ok := c.schema.GetFacet(key)
	if !ok {
		return map[string]int{}
	}
	return facet.Counts(c.result.Items, field)
}

// Suggest completes the last word of prefix from words in the collection.
func (c *Controller) Suggest(prefix string, limit int) []search.Match {
	normalizer := search.Normalizer{FoldDiacritics: c.schema.FoldDiacritics}
	word := prefix
	if idx := strings.LastIndex(prefix, " "); idx >= 0 {
		word = prefix[idx+1:]
	}
	token := normalizer.NormalizeWord(word)
	if token == "" {
		return []search.Match{}
	}
	matches := c.trie.FindMatches(string(token))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		return []search.Match{}
	}
	return matches
}

func (c *Controller) SetSearchText(text string) {
	c.criteria.Query = text
	c.recompute()
}

// SetFacet selects value for a single value facet. The empty string or
// types.All clears the selection.
func (c *Controller) SetFacet(key types.FieldKey, value string) {
	field, ok := c.schema.GetFacet(key)
	if !ok || field.IsTags() {
		log.Printf("[%s] ignoring unknown facet %s", c.id, key)
		return
	}
	c.criteria.SetFacet(key, strings.TrimSpace(value))
	c.recompute()
}

// ToggleTag adds or removes value from the selection of a tag facet.
func (c *Controller) ToggleTag(key types.FieldKey, value string) {
	field, ok := c.schema.GetFacet(key)
	if !ok || !field.IsTags() {
		log.Printf("[%s] ignoring unknown tag facet %s", c.id, key)
		return
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	c.criteria.ToggleTag(key, value)
	c.recompute()
}

func (c *Controller) SetRange(key types.FieldKey, lo, hi float64) {
	if !c.schema.HasRange(key) {
		log.Printf("[%s] ignoring unknown range %s", c.id, key)
		return
	}
	c.criteria.SetRange(key, types.RangeFilter{Min: lo, Max: hi})
	c.recompute()
}

func (c *Controller) ClearRange(key types.FieldKey) {
	if _, ok := c.criteria.Ranges[key]; !ok {
		return
	}
	delete(c.criteria.Ranges, key)
	c.recompute()
}

// SetSort sorts by key. Selecting the active key again flips the
// direction, a new key starts ascending.
func (c *Controller) SetSort(key types.FieldKey) {
	if !c.engine.Sorting().Has(key) {
		log.Printf("[%s] ignoring unknown sort %s", c.id, key)
		return
	}
	if c.criteria.Sort == key {
		c.criteria.Direction = c.criteria.Direction.Toggle()
	} else {
		c.criteria.Sort = key
		c.criteria.Direction = types.Ascending
	}
	c.recompute()
}

func (c *Controller) SetViewMode(mode types.ViewMode) {
	if mode != types.ViewGrid && mode != types.ViewList {
		log.Printf("[%s] ignoring unknown view mode %s", c.id, mode)
		return
	}
	c.criteria.View = mode
	c.recompute()
}

// ClearAll restores the default criteria.
func (c *Controller) ClearAll() {
	c.criteria = c.defaults.Clone()
	c.recompute()
}

// Apply replaces the whole criteria, typically one parsed from a query
// string. Selections on keys the schema does not know are dropped.
func (c *Controller) Apply(criteria *types.Criteria) {
	c.criteria = c.sanitize(criteria)
	c.recompute()
}

func (c *Controller) sanitize(criteria *types.Criteria) types.Criteria {
	next := c.defaults.Clone()
	next.Query = criteria.Query
	next.View = criteria.View
	if next.View != types.ViewGrid {
		next.View = types.ViewList
	}
	if c.engine.Sorting().Has(criteria.Sort) {
		next.Sort = criteria.Sort
		next.Direction = types.ParseSortDirection(string(criteria.Direction))
	}
	for key, value := range criteria.Facets {
		if field, ok := c.schema.GetFacet(key); ok && !field.IsTags() {
			next.SetFacet(key, strings.TrimSpace(value))
		} else {
			log.Printf("[%s] dropping unknown facet %s", c.id, key)
		}
	}
	for key, values := range criteria.Tags {
		field, ok := c.schema.GetFacet(key)
		if !ok || !field.IsTags() {
			log.Printf("[%s] dropping unknown tag facet %s", c.id, key)
			continue
		}
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" && !next.HasTag(key, v) {
				next.ToggleTag(key, v)
			}
		}
	}
	for key, r := range criteria.Ranges {
		if c.schema.HasRange(key) {
			next.SetRange(key, r)
		} else {
			log.Printf("[%s] dropping unknown range %s", c.id, key)
		}
	}
	return next
}
