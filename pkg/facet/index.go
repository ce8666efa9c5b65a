package facet

import (
	"slices"
	"strings"

	"github.com/matst80/portfolio-finder/pkg/types"
)

// Index holds the distinct values of every facet of a collection. It is
// built once per collection and never mutated afterwards.
type Index struct {
	fields []*KeyField
	byKey  map[types.FieldKey]*KeyField
}

// BuildIndex derives the value sets for fields from items. It is pure: the
// same items give an identical index.
func BuildIndex(items []types.Item, fields []*types.BaseField) *Index {
	idx := &Index{
		fields: make([]*KeyField, 0, len(fields)),
		byKey:  make(map[types.FieldKey]*KeyField, len(fields)),
	}
	for _, field := range fields {
		if field == nil {
			continue
		}
		if _, ok := idx.byKey[field.Key]; ok {
			continue
		}
		f := EmptyKeyValueField(field)
		idx.fields = append(idx.fields, f)
		idx.byKey[field.Key] = f
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, f := range idx.fields {
			f.AddValueLink(item)
		}
	}
	return idx
}

func (i *Index) Keys() []types.FieldKey {
	ret := make([]types.FieldKey, len(i.fields))
	for j, f := range i.fields {
		ret[j] = f.Key
	}
	return ret
}

func (i *Index) Fields() []*KeyField {
	return slices.Clone(i.fields)
}

func (i *Index) Field(key types.FieldKey) (*KeyField, bool) {
	f, ok := i.byKey[key]
	return f, ok
}

// Values returns the values of key in order of first appearance, nil for
// an unknown facet.
func (i *Index) Values(key types.FieldKey) []string {
	f, ok := i.byKey[key]
	if !ok {
		return nil
	}
	return f.Values()
}

// Sorted returns the values of key sorted for display, case insensitive.
func (i *Index) Sorted(key types.FieldKey) []string {
	values := i.Values(key)
	slices.SortStableFunc(values, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return values
}

func (i *Index) Has(key types.FieldKey, value string) bool {
	f, ok := i.byKey[key]
	return ok && f.Has(value)
}

func (i *Index) ToMap() map[types.FieldKey][]string {
	ret := make(map[types.FieldKey][]string, len(i.fields))
	for _, f := range i.fields {
		ret[f.Key] = f.Values()
	}
	return ret
}

// Counts returns how many of items carry each value of key. Useful for
// badges next to filter controls after a query narrowed the collection.
func Counts(items []types.Item, field *types.BaseField) map[string]int {
	f := EmptyKeyValueField(field)
	for _, item := range items {
		if item != nil {
			f.AddValueLink(item)
		}
	}
	return f.counts
}
