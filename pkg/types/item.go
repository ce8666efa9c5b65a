package types

import "time"

type ItemId string
type FieldKey string

// Item is anything the engine can filter and sort. Accessors report whether
// the field exists; they never panic on missing data.
type Item interface {
	GetId() ItemId
	GetText(key FieldKey) (string, bool)
	GetStrings(key FieldKey) ([]string, bool)
	GetNumber(key FieldKey) (float64, bool)
	GetTime(key FieldKey) (time.Time, bool)
}

func ItemIds(items []Item) []ItemId {
	ret := make([]ItemId, len(items))
	for i, item := range items {
		ret[i] = item.GetId()
	}
	return ret
}
