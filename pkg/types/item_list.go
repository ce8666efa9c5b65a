package types

import "maps"

type ItemList map[ItemId]struct{}

func MakeItemList(items []Item) ItemList {
	ret := make(ItemList, len(items))
	for _, item := range items {
		ret.Add(item)
	}
	return ret
}

func (i ItemList) Add(item Item) {
	i[item.GetId()] = struct{}{}
}

func (i ItemList) AddId(id ItemId) {
	i[id] = struct{}{}
}

func (i ItemList) Contains(id ItemId) bool {
	_, ok := i[id]
	return ok
}

func (a ItemList) Intersect(b ItemList) {
	for id := range a {
		if _, ok := b[id]; !ok {
			delete(a, id)
		}
	}
}

func (i ItemList) Merge(other ItemList) {
	maps.Copy(i, other)
}

func (i ItemList) Equal(other ItemList) bool {
	return maps.Equal(i, other)
}
