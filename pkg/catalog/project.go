package catalog

import (
	"time"

	"github.com/matst80/portfolio-finder/pkg/types"
)

type Project struct {
	Id           types.ItemId `json:"id" yaml:"id"`
	Title        string       `json:"title" yaml:"title"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty"`
	Category     string       `json:"category,omitempty" yaml:"category,omitempty"`
	Status       string       `json:"status,omitempty" yaml:"status,omitempty"`
	Difficulty   string       `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Technologies []string     `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	Topics       []string     `json:"topics,omitempty" yaml:"topics,omitempty"`
	Stars        *float64     `json:"stars,omitempty" yaml:"stars,omitempty"`
	Started      time.Time    `json:"started,omitempty" yaml:"started,omitempty"`
	Updated      time.Time    `json:"updated,omitempty" yaml:"updated,omitempty"`
	Url          string       `json:"url,omitempty" yaml:"url,omitempty"`
}

func (p *Project) GetId() types.ItemId {
	return p.Id
}

func (p *Project) GetText(key types.FieldKey) (string, bool) {
	switch key {
	case "title":
		return text(p.Title)
	case "description":
		return text(p.Description)
	case "category":
		return text(p.Category)
	case "status":
		return text(p.Status)
	case "difficulty":
		return text(p.Difficulty)
	case "url":
		return text(p.Url)
	}
	return "", false
}

func (p *Project) GetStrings(key types.FieldKey) ([]string, bool) {
	switch key {
	case "tech":
		return list(p.Technologies)
	case "topics":
		return list(p.Topics)
	}
	return nil, false
}

func (p *Project) GetNumber(key types.FieldKey) (float64, bool) {
	if key == "stars" && p.Stars != nil {
		return *p.Stars, true
	}
	return 0, false
}

func (p *Project) GetTime(key types.FieldKey) (time.Time, bool) {
	switch key {
	case "started":
		return date(p.Started)
	case "updated":
		return date(p.Updated)
	}
	return time.Time{}, false
}

func ProjectSchema() *types.Schema {
	return &types.Schema{
		Name:         "Projects",
		SearchFields: []types.FieldKey{"title", "description"},
		Facets: []*types.BaseField{
			{Key: "category", Name: "Category", Kind: types.FacetKeyType, Priority: 10},
			{Key: "status", Name: "Status", Kind: types.FacetKeyType, Priority: 9},
			{Key: "difficulty", Name: "Difficulty", Kind: types.FacetKeyType, Priority: 8},
			{Key: "tech", Name: "Technologies", Kind: types.FacetTagType, Priority: 7, Searchable: true},
			{Key: "topics", Name: "Topics", Kind: types.FacetTagType, Priority: 6, Searchable: true},
		},
		Ranges: []types.FieldKey{"stars"},
		Sorts: []types.SortField{
			{Key: "updated", Name: "Last updated", Kind: types.SortDate},
			{Key: "started", Name: "Started", Kind: types.SortDate},
			{Key: "title", Name: "Title", Kind: types.SortString},
			{Key: "stars", Name: "Stars", Kind: types.SortNumber},
			levelSort("difficulty", "Difficulty"),
			{Key: "status", Name: "Status", Kind: types.SortOrdinal, Ranks: Statuses},
		},
		DefaultSort:      "updated",
		DefaultDirection: types.Descending,
	}
}
