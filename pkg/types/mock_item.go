package types

import "time"

// MockItem is a flat Item for tests and small fixtures.
type MockItem struct {
	Id      ItemId
	Title   string
	Text    map[FieldKey]string
	Tags    map[FieldKey][]string
	Numbers map[FieldKey]float64
	Dates   map[FieldKey]time.Time
}

func (m *MockItem) GetId() ItemId {
	return m.Id
}

func (m *MockItem) GetText(key FieldKey) (string, bool) {
	if key == "title" && m.Title != "" {
		return m.Title, true
	}
	v, ok := m.Text[key]
	return v, ok
}

func (m *MockItem) GetStrings(key FieldKey) ([]string, bool) {
	v, ok := m.Tags[key]
	return v, ok
}

func (m *MockItem) GetNumber(key FieldKey) (float64, bool) {
	v, ok := m.Numbers[key]
	return v, ok
}

func (m *MockItem) GetTime(key FieldKey) (time.Time, bool) {
	v, ok := m.Dates[key]
	return v, ok
}

func MakeMockItem(id ItemId, title string) *MockItem {
	return &MockItem{
		Id:      id,
		Title:   title,
		Text:    map[FieldKey]string{},
		Tags:    map[FieldKey][]string{},
		Numbers: map[FieldKey]float64{},
		Dates:   map[FieldKey]time.Time{},
	}
}

func (m *MockItem) WithText(key FieldKey, value string) *MockItem {
	m.Text[key] = value
	return m
}

func (m *MockItem) WithTags(key FieldKey, values ...string) *MockItem {
	m.Tags[key] = values
	return m
}

func (m *MockItem) WithNumber(key FieldKey, value float64) *MockItem {
	m.Numbers[key] = value
	return m
}

func (m *MockItem) WithDate(key FieldKey, value time.Time) *MockItem {
	m.Dates[key] = value
	return m
}

func ToItems[T Item](items ...T) []Item {
	ret := make([]Item, len(items))
	for i, item := range items {
		ret[i] = item
	}
	return ret
}
