package catalog

import (
	"time"

	"github.com/matst80/portfolio-finder/pkg/types"
)

// Milestone is one entry of the learning timeline: a course, book,
// certification or workshop.
type Milestone struct {
	Id          types.ItemId `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Provider    string       `json:"provider,omitempty" yaml:"provider,omitempty"`
	Type        string       `json:"type,omitempty" yaml:"type,omitempty"`
	Status      string       `json:"status,omitempty" yaml:"status,omitempty"`
	Difficulty  string       `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Topics      []string     `json:"topics,omitempty" yaml:"topics,omitempty"`
	Hours       *float64     `json:"hours,omitempty" yaml:"hours,omitempty"`
	Started     time.Time    `json:"started,omitempty" yaml:"started,omitempty"`
	Completed   time.Time    `json:"completed,omitempty" yaml:"completed,omitempty"`
}

func (m *Milestone) GetId() types.ItemId {
	return m.Id
}

func (m *Milestone) GetText(key types.FieldKey) (string, bool) {
	switch key {
	case "title":
		return text(m.Title)
	case "description":
		return text(m.Description)
	case "provider":
		return text(m.Provider)
	case "type":
		return text(m.Type)
	case "status":
		return text(m.Status)
	case "difficulty":
		return text(m.Difficulty)
	}
	return "", false
}

func (m *Milestone) GetStrings(key types.FieldKey) ([]string, bool) {
	if key == "topics" {
		return list(m.Topics)
	}
	return nil, false
}

func (m *Milestone) GetNumber(key types.FieldKey) (float64, bool) {
	if key == "hours" && m.Hours != nil {
		return *m.Hours, true
	}
	return 0, false
}

func (m *Milestone) GetTime(key types.FieldKey) (time.Time, bool) {
	switch key {
	case "started":
		return date(m.Started)
	case "completed":
		return date(m.Completed)
	}
	return time.Time{}, false
}

func TimelineSchema() *types.Schema {
	return &types.Schema{
		Name:         "Learning timeline",
		SearchFields: []types.FieldKey{"title", "description", "provider"},
		Facets: []*types.BaseField{
			{Key: "type", Name: "Type", Kind: types.FacetKeyType, Priority: 10},
			{Key: "status", Name: "Status", Kind: types.FacetKeyType, Priority: 9},
			{Key: "difficulty", Name: "Difficulty", Kind: types.FacetKeyType, Priority: 8},
			{Key: "provider", Name: "Provider", Kind: types.FacetKeyType, Priority: 7, HideFacet: true},
			{Key: "topics", Name: "Topics", Kind: types.FacetTagType, Priority: 6, Searchable: true},
		},
		Ranges: []types.FieldKey{"hours"},
		Sorts: []types.SortField{
			{Key: "completed", Name: "Completed", Kind: types.SortDate},
			{Key: "started", Name: "Started", Kind: types.SortDate},
			{Key: "title", Name: "Title", Kind: types.SortString},
			{Key: "hours", Name: "Hours", Kind: types.SortNumber},
			levelSort("difficulty", "Difficulty"),
		},
		DefaultSort:      "completed",
		DefaultDirection: types.Descending,
		FoldDiacritics:   true,
	}
}
