package catalog

import (
	"slices"
	"testing"

	"github.com/matst80/portfolio-finder/pkg/index"
	"github.com/matst80/portfolio-finder/pkg/types"
	"gopkg.in/yaml.v3"
)

func TestSchemasAreValid(t *testing.T) {
	for _, name := range Names() {
		kind, _ := Lookup(name)
		schema := kind.Schema()
		if name == CustomKind {
			if schema != nil {
				t.Errorf("Expected custom kind without schema")
			}
			continue
		}
		if err := schema.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestNames(t *testing.T) {
	expected := []string{AchievementsKind, CustomKind, ProjectsKind, SkillsKind, TimelineKind}
	if got := Names(); !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

const skillsYaml = `
- id: go
  name: Go
  category: backend
  level: expert
  proficiency: 90
  tags: [concurrency, cli]
- id: css
  name: CSS
  category: frontend
  level: intermediate
  proficiency: 60
- id: rust
  name: Rust
  category: backend
  level: beginner
- id: k8s
  name: Kubernetes
  category: ops
  level: advanced
  years: 3
`

func decodeSkills(t *testing.T) []types.Item {
	t.Helper()
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(skillsYaml), &node); err != nil {
		t.Fatal(err)
	}
	kind, ok := Lookup(SkillsKind)
	if !ok {
		t.Fatal("Expected skills kind")
	}
	items, err := kind.DecodeYAML(node.Content[0])
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	return items
}

func TestSkillLevelSortIsOrdinal(t *testing.T) {
	items := decodeSkills(t)
	c := types.NewCriteria()
	c.Sort = "level"
	res := index.Query(SkillSchema(), items, &c)
	if got := res.Ids(); !slices.Equal(got, []types.ItemId{"rust", "css", "k8s", "go"}) {
		t.Errorf("Expected beginner to expert, got %v", got)
	}
}

func TestSkillDefaultsSortByProficiency(t *testing.T) {
	items := decodeSkills(t)
	schema := SkillSchema()
	c := schema.DefaultCriteria()
	res := index.Query(schema, items, &c)
	if got := res.Ids(); !slices.Equal(got, []types.ItemId{"go", "css", "rust", "k8s"}) {
		t.Errorf("Expected proficiency desc with missing last, got %v", got)
	}
}

func TestSkillSearchIncludesTags(t *testing.T) {
	items := decodeSkills(t)
	c := types.NewCriteria()
	c.Query = "Concurrency"
	res := index.Query(SkillSchema(), items, &c)
	if got := res.Ids(); !slices.Equal(got, []types.ItemId{"go"}) {
		t.Errorf("Expected [go], got %v", got)
	}
}

func TestProjectJson(t *testing.T) {
	kind, _ := Lookup(ProjectsKind)
	items, err := kind.DecodeJSON([]byte(`[
		{"id":"a","title":"Finder","status":"completed","technologies":["go"],"stars":4,"updated":"2024-03-01T00:00:00Z"},
		{"id":"b","title":"Site","status":"in-progress","technologies":["astro","go"]}
	]`))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if _, ok := items[1].GetNumber("stars"); ok {
		t.Error("Expected missing stars")
	}
	if _, ok := items[1].GetTime("updated"); ok {
		t.Error("Expected missing updated")
	}
	if stars, ok := items[0].GetNumber("stars"); !ok || stars != 4 {
		t.Errorf("Expected 4 stars, got %v", stars)
	}
	c := types.NewCriteria()
	c.Sort = "status"
	res := index.Query(ProjectSchema(), items, &c)
	if got := res.Ids(); !slices.Equal(got, []types.ItemId{"b", "a"}) {
		t.Errorf("Expected in-progress before completed, got %v", got)
	}
}

func TestMissingFieldsReportFalse(t *testing.T) {
	items := []types.Item{&Project{Id: "p"}, &Skill{Id: "s"}, &Achievement{Id: "a"}, &Milestone{Id: "m"}}
	for _, item := range items {
		if _, ok := item.GetText("title"); ok {
			t.Errorf("%s: expected missing title", item.GetId())
		}
		if _, ok := item.GetStrings("tags"); ok {
			t.Errorf("%s: expected missing tags", item.GetId())
		}
		if _, ok := item.GetText("nope"); ok {
			t.Errorf("%s: expected unknown field", item.GetId())
		}
	}
}
