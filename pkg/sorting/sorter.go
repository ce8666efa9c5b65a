package sorting

import (
	"cmp"
	"strings"

	"github.com/matst80/portfolio-finder/pkg/types"
)

// Comparator orders two items, negative when a sorts before b.
type Comparator func(a, b types.Item) int

// Sorter builds the ascending comparator for one sort key. Items without a
// value sort before items with one; Descending negates the whole order, so
// those items end up last.
type Sorter struct {
	field *types.SortField
	cmp   Comparator
}

func NewSorter(field types.SortField) *Sorter {
	s := &Sorter{field: &field}
	switch field.Kind {
	case types.SortNumber:
		s.cmp = compareBy(func(item types.Item) (float64, bool) {
			return item.GetNumber(field.Key)
		}, cmp.Compare[float64])
	case types.SortDate:
		s.cmp = compareBy(func(item types.Item) (int64, bool) {
			t, ok := item.GetTime(field.Key)
			if !ok || t.IsZero() {
				return 0, false
			}
			return t.UnixNano(), true
		}, cmp.Compare[int64])
	case types.SortOrdinal:
		s.cmp = compareBy(func(item types.Item) (int, bool) {
			label, ok := item.GetText(field.Key)
			if !ok {
				return 0, false
			}
			return s.field.Rank(label)
		}, cmp.Compare[int])
	default:
		s.cmp = compareBy(func(item types.Item) (string, bool) {
			v, ok := item.GetText(field.Key)
			if !ok {
				return "", false
			}
			return strings.ToLower(v), true
		}, strings.Compare)
	}
	return s
}

func (s *Sorter) Name() string {
	if s.field.Name != "" {
		return s.field.Name
	}
	return string(s.field.Key)
}

func (s *Sorter) Key() types.FieldKey {
	return s.field.Key
}

func (s *Sorter) Ascending() Comparator {
	return s.cmp
}

func (s *Sorter) Comparator(direction types.SortDirection) Comparator {
	if direction == types.Descending {
		return Reverse(s.cmp)
	}
	return s.cmp
}

func Reverse(c Comparator) Comparator {
	return func(a, b types.Item) int {
		return -c(a, b)
	}
}

// Keep is the comparator for unknown keys, a stable sort leaves the input order.
func Keep(a, b types.Item) int {
	return 0
}

func compareBy[V any](get func(types.Item) (V, bool), compare func(a, b V) int) Comparator {
	return func(a, b types.Item) int {
		av, aok := get(a)
		bv, bok := get(b)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		return compare(av, bv)
	}
}
