package types

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()
var encoder = schema.NewEncoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// CriteriaFromQuery reads criteria from a query string of the form
//
//	q=react&sort=difficulty&dir=desc&view=grid&f=status:active&t=tech:go||rust&rng=years:1-5
//
// Malformed f, t and rng pairs are skipped.
func CriteriaFromQuery(query url.Values) (*Criteria, error) {
	c := NewCriteria()
	if err := decoder.Decode(&c, query); err != nil {
		return nil, fmt.Errorf("decode criteria: %w", err)
	}
	c.Direction = ParseSortDirection(string(c.Direction))
	if c.View != ViewGrid {
		c.View = ViewList
	}
	decodeFiltersFromQuery(query, &c)
	return &c, nil
}

func ParseCriteria(raw string) (*Criteria, error) {
	query, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, fmt.Errorf("parse criteria %q: %w", raw, err)
	}
	return CriteriaFromQuery(query)
}

func splitPair(v string) (FieldKey, string, bool) {
	key, value, ok := strings.Cut(v, ":")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if !ok || key == "" || value == "" {
		return "", "", false
	}
	return FieldKey(key), value, true
}

func decodeFiltersFromQuery(query url.Values, c *Criteria) {
	for _, v := range query["f"] {
		if key, value, ok := splitPair(v); ok {
			c.SetFacet(key, value)
		}
	}
	for _, v := range query["t"] {
		key, value, ok := splitPair(v)
		if !ok {
			continue
		}
		for tag := range strings.SplitSeq(value, "||") {
			tag = strings.TrimSpace(tag)
			if tag == "" || c.HasTag(key, tag) {
				continue
			}
			c.ToggleTag(key, tag)
		}
	}
	for _, v := range query["rng"] {
		key, value, ok := splitPair(v)
		if !ok {
			continue
		}
		var _min, _max float64
		if _, err := fmt.Sscanf(value, "%f-%f", &_min, &_max); err != nil {
			continue
		}
		c.SetRange(key, RangeFilter{Min: _min, Max: _max})
	}
}

type scalarCriteria struct {
	Query     string        `schema:"q,omitempty"`
	Sort      FieldKey      `schema:"sort,omitempty"`
	Direction SortDirection `schema:"dir,omitempty"`
	View      ViewMode      `schema:"view,omitempty"`
}

// ToQuery is the inverse of CriteriaFromQuery. Keys are written in sorted
// order so the same criteria always produce the same string.
func (c *Criteria) ToQuery() url.Values {
	query := url.Values{}
	_ = encoder.Encode(scalarCriteria{
		Query:     c.Query,
		Sort:      c.Sort,
		Direction: c.Direction,
		View:      c.View,
	}, query)
	for _, key := range sortedKeys(c.Facets) {
		if v, ok := c.FacetValue(key); ok {
			query.Add("f", string(key)+":"+v)
		}
	}
	for _, key := range sortedKeys(c.Tags) {
		if tags := c.Tags[key]; len(tags) > 0 {
			query.Add("t", string(key)+":"+strings.Join(tags, "||"))
		}
	}
	for _, key := range sortedKeys(c.Ranges) {
		r := c.Ranges[key]
		query.Add("rng", string(key)+":"+formatFloat(r.Min)+"-"+formatFloat(r.Max))
	}
	return query
}

func (c *Criteria) String() string {
	return c.ToQuery().Encode()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sortedKeys[V any](m map[FieldKey]V) []FieldKey {
	keys := make([]FieldKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
