package facet

import (
	"strings"

	"github.com/matst80/portfolio-finder/pkg/types"
)

// KeyField collects the distinct values of one facet in order of first appearance.
type KeyField struct {
	*types.BaseField
	values []string
	counts map[string]int
}

func (f *KeyField) Len() int {
	return len(f.values)
}

// Values returns the distinct values, first seen first. The slice is a copy.
func (f *KeyField) Values() []string {
	ret := make([]string, len(f.values))
	copy(ret, f.values)
	return ret
}

func (f *KeyField) Has(value string) bool {
	_, ok := f.counts[value]
	return ok
}

// Count is the number of items carrying value.
func (f *KeyField) Count(value string) int {
	return f.counts[value]
}

func (f *KeyField) addValue(value string) bool {
	part := strings.TrimSpace(value)
	if part == "" {
		return false
	}
	if _, ok := f.counts[part]; !ok {
		f.values = append(f.values, part)
	}
	f.counts[part]++
	return true
}

// AddValueLink registers the values the item holds for this facet. Items
// missing the field are skipped.
func (f *KeyField) AddValueLink(item types.Item) bool {
	if f.IsTags() {
		values, ok := item.GetStrings(f.Key)
		if !ok {
			return false
		}
		added := false
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			v = strings.TrimSpace(v)
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			added = f.addValue(v) || added
		}
		return added
	}
	value, ok := item.GetText(f.Key)
	if !ok {
		return false
	}
	return f.addValue(value)
}

func (f *KeyField) TotalCount() int {
	total := 0
	for _, c := range f.counts {
		total += c
	}
	return total
}

func (f *KeyField) UniqueCount() int {
	return len(f.values)
}

func EmptyKeyValueField(field *types.BaseField) *KeyField {
	return &KeyField{
		BaseField: field,
		values:    []string{},
		counts:    map[string]int{},
	}
}
