package catalog

import (
	"time"

	"github.com/matst80/portfolio-finder/pkg/types"
)

type Achievement struct {
	Id          types.ItemId `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Issuer      string       `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Category    string       `json:"category,omitempty" yaml:"category,omitempty"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Date        time.Time    `json:"date,omitempty" yaml:"date,omitempty"`
	Url         string       `json:"url,omitempty" yaml:"url,omitempty"`
}

func (a *Achievement) GetId() types.ItemId {
	return a.Id
}

func (a *Achievement) GetText(key types.FieldKey) (string, bool) {
	switch key {
	case "title":
		return text(a.Title)
	case "description":
		return text(a.Description)
	case "issuer":
		return text(a.Issuer)
	case "category":
		return text(a.Category)
	case "url":
		return text(a.Url)
	}
	return "", false
}

func (a *Achievement) GetStrings(key types.FieldKey) ([]string, bool) {
	if key == "tags" {
		return list(a.Tags)
	}
	return nil, false
}

func (a *Achievement) GetNumber(key types.FieldKey) (float64, bool) {
	if key == "year" && !a.Date.IsZero() {
		return float64(a.Date.Year()), true
	}
	return 0, false
}

func (a *Achievement) GetTime(key types.FieldKey) (time.Time, bool) {
	if key == "date" {
		return date(a.Date)
	}
	return time.Time{}, false
}

func AchievementSchema() *types.Schema {
	return &types.Schema{
		Name:         "Achievements",
		SearchFields: []types.FieldKey{"title", "description", "issuer"},
		Facets: []*types.BaseField{
			{Key: "category", Name: "Category", Kind: types.FacetKeyType, Priority: 10},
			{Key: "issuer", Name: "Issuer", Kind: types.FacetKeyType, Priority: 9},
			{Key: "tags", Name: "Tags", Kind: types.FacetTagType, Priority: 8, Searchable: true},
		},
		Ranges: []types.FieldKey{"year"},
		Sorts: []types.SortField{
			{Key: "date", Name: "Date", Kind: types.SortDate},
			{Key: "title", Name: "Title", Kind: types.SortString},
			{Key: "issuer", Name: "Issuer", Kind: types.SortString},
		},
		DefaultSort:      "date",
		DefaultDirection: types.Descending,
	}
}
