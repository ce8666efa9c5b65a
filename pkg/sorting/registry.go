package sorting

import "github.com/matst80/portfolio-finder/pkg/types"

// Registry maps sort keys to sorters. Adding a key never touches the engine.
type Registry struct {
	sorters map[types.FieldKey]*Sorter
	order   []types.FieldKey
}

func NewRegistry(fields ...types.SortField) *Registry {
	r := &Registry{
		sorters: make(map[types.FieldKey]*Sorter, len(fields)),
		order:   make([]types.FieldKey, 0, len(fields)),
	}
	for _, f := range fields {
		r.Register(f)
	}
	return r
}

// Register adds or replaces the sorter for field.Key.
func (r *Registry) Register(field types.SortField) {
	if _, ok := r.sorters[field.Key]; !ok {
		r.order = append(r.order, field.Key)
	}
	r.sorters[field.Key] = NewSorter(field)
}

func (r *Registry) Get(key types.FieldKey) (*Sorter, bool) {
	s, ok := r.sorters[key]
	return s, ok
}

func (r *Registry) Has(key types.FieldKey) bool {
	_, ok := r.sorters[key]
	return ok
}

// Keys lists the registered keys in registration order.
func (r *Registry) Keys() []types.FieldKey {
	ret := make([]types.FieldKey, len(r.order))
	copy(ret, r.order)
	return ret
}

// Comparator returns the ordering for key and direction. Unknown or empty
// keys keep the input order.
func (r *Registry) Comparator(key types.FieldKey, direction types.SortDirection) Comparator {
	s, ok := r.sorters[key]
	if !ok {
		return Keep
	}
	return s.Comparator(direction)
}
