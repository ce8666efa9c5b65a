package types

import (
	"errors"
	"slices"
	"testing"
)

func TestToggleTag(t *testing.T) {
	c := NewCriteria()
	c.ToggleTag("tech", "go")
	c.ToggleTag("tech", "rust")
	if !slices.Equal(c.SelectedTags("tech"), []string{"go", "rust"}) {
		t.Errorf("Expected [go rust], got %v", c.SelectedTags("tech"))
	}
	c.ToggleTag("tech", "go")
	if !slices.Equal(c.SelectedTags("tech"), []string{"rust"}) {
		t.Errorf("Expected [rust], got %v", c.SelectedTags("tech"))
	}
	c.ToggleTag("tech", "rust")
	if _, ok := c.Tags["tech"]; ok {
		t.Error("Expected empty selection to be removed")
	}
	if !c.IsUnconstrained() {
		t.Error("Expected criteria to be unconstrained")
	}
}

func TestSetFacetAllClears(t *testing.T) {
	c := NewCriteria()
	c.SetFacet("status", "active")
	if c.IsUnconstrained() {
		t.Error("Expected facet to constrain")
	}
	c.SetFacet("status", All)
	if _, ok := c.Facets["status"]; ok {
		t.Error("Expected all to clear the facet")
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := NewCriteria()
	c.ToggleTag("tech", "go")
	c.SetFacet("status", "active")
	clone := c.Clone()
	if !clone.Equal(&c) {
		t.Fatal("Expected clone to equal original")
	}
	clone.Tags["tech"][0] = "rust"
	clone.SetFacet("status", "archived")
	if c.Tags["tech"][0] != "go" || c.Facets["status"] != "active" {
		t.Errorf("Expected original untouched, got %v %v", c.Tags, c.Facets)
	}
	if clone.Equal(&c) {
		t.Error("Expected modified clone to differ")
	}
}

func TestWhitespaceQueryIsUnconstrained(t *testing.T) {
	c := NewCriteria()
	c.Query = "   \t"
	if !c.IsUnconstrained() || c.SearchText() != "" {
		t.Errorf("Expected blank query to be ignored, got %q", c.SearchText())
	}
}

func TestSortDirection(t *testing.T) {
	if Ascending.Toggle() != Descending || Descending.Toggle() != Ascending {
		t.Error("Expected toggle to flip direction")
	}
	if ParseSortDirection(" DESC ") != Descending || ParseSortDirection("") != Ascending {
		t.Error("Unexpected parsed direction")
	}
}

func TestSchemaValidate(t *testing.T) {
	valid := Schema{
		Name:         "projects",
		SearchFields: []FieldKey{"title"},
		Facets: []*BaseField{
			{Key: "status", Kind: FacetKeyType},
			{Key: "tech", Kind: FacetTagType},
		},
		Sorts: []SortField{
			{Key: "title", Kind: SortString},
			{Key: "difficulty", Kind: SortOrdinal, Ranks: []string{"beginner", "advanced"}},
		},
		DefaultSort: "title",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected valid schema, got %v", err)
	}
	def := valid.DefaultCriteria()
	if def.Sort != "title" || def.Direction != Ascending || !def.IsUnconstrained() {
		t.Errorf("Unexpected default criteria %s", def.String())
	}

	cases := map[string]func(s *Schema){
		"duplicate facet": func(s *Schema) { s.Facets = append(s.Facets, &BaseField{Key: "tech", Kind: FacetTagType}) },
		"unknown kind":    func(s *Schema) { s.Facets[0].Kind = "tree" },
		"empty ranks":     func(s *Schema) { s.Sorts[1].Ranks = nil },
		"unknown sort":    func(s *Schema) { s.Sorts[0].Kind = "random" },
		"default sort":    func(s *Schema) { s.DefaultSort = "stars" },
		"direction":       func(s *Schema) { s.DefaultDirection = "up" },
	}
	for name, mutate := range cases {
		s := valid
		s.Facets = []*BaseField{
			{Key: "status", Kind: FacetKeyType},
			{Key: "tech", Kind: FacetTagType},
		}
		s.Sorts = slices.Clone(valid.Sorts)
		mutate(&s)
		if err := s.Validate(); !errors.Is(err, ErrInvalidSchema) {
			t.Errorf("%s: expected ErrInvalidSchema, got %v", name, err)
		}
	}
}
