package catalog

import (
	"time"

	"github.com/matst80/portfolio-finder/pkg/types"
)

type Skill struct {
	Id          types.ItemId `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string       `json:"category,omitempty" yaml:"category,omitempty"`
	Level       string       `json:"level,omitempty" yaml:"level,omitempty"`
	Proficiency *float64     `json:"proficiency,omitempty" yaml:"proficiency,omitempty"`
	Years       *float64     `json:"years,omitempty" yaml:"years,omitempty"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	LastUsed    time.Time    `json:"lastUsed,omitempty" yaml:"lastUsed,omitempty"`
}

func (s *Skill) GetId() types.ItemId {
	return s.Id
}

func (s *Skill) GetText(key types.FieldKey) (string, bool) {
	switch key {
	case "name":
		return text(s.Name)
	case "description":
		return text(s.Description)
	case "category":
		return text(s.Category)
	case "level":
		return text(s.Level)
	}
	return "", false
}

func (s *Skill) GetStrings(key types.FieldKey) ([]string, bool) {
	if key == "tags" {
		return list(s.Tags)
	}
	return nil, false
}

func (s *Skill) GetNumber(key types.FieldKey) (float64, bool) {
	switch key {
	case "proficiency":
		if s.Proficiency != nil {
			return *s.Proficiency, true
		}
	case "years":
		if s.Years != nil {
			return *s.Years, true
		}
	}
	return 0, false
}

func (s *Skill) GetTime(key types.FieldKey) (time.Time, bool) {
	if key == "lastUsed" {
		return date(s.LastUsed)
	}
	return time.Time{}, false
}

func SkillSchema() *types.Schema {
	return &types.Schema{
		Name:         "Skills",
		SearchFields: []types.FieldKey{"name", "description"},
		Facets: []*types.BaseField{
			{Key: "category", Name: "Category", Kind: types.FacetKeyType, Priority: 10},
			{Key: "level", Name: "Level", Kind: types.FacetKeyType, Priority: 9},
			{Key: "tags", Name: "Tags", Kind: types.FacetTagType, Priority: 8, Searchable: true},
		},
		Ranges: []types.FieldKey{"proficiency", "years"},
		Sorts: []types.SortField{
			{Key: "proficiency", Name: "Proficiency", Kind: types.SortNumber},
			levelSort("level", "Level"),
			{Key: "years", Name: "Experience", Kind: types.SortNumber},
			{Key: "name", Name: "Name", Kind: types.SortString},
			{Key: "lastUsed", Name: "Last used", Kind: types.SortDate},
		},
		DefaultSort:      "proficiency",
		DefaultDirection: types.Descending,
	}
}
