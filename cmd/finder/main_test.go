package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matst80/portfolio-finder/pkg/common/jsoncompat"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--data-dir", "../../examples"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

type queryResponse struct {
	Kind     string           `json:"kind"`
	Total    int              `json:"total"`
	Count    int              `json:"count"`
	Criteria string           `json:"criteria"`
	Items    []map[string]any `json:"items"`
}

func decodeQuery(t *testing.T, out string) queryResponse {
	t.Helper()
	var res queryResponse
	if err := jsoncompat.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("Failed to decode %q: %v", out, err)
	}
	return res
}

func TestKindsCommand(t *testing.T) {
	out, err := run(t, "kinds")
	if err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{"achievements", "custom", "projects", "skills", "timeline", "schema from file"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected %q in output %q", expected, out)
		}
	}
}

func TestQueryTagJson(t *testing.T) {
	out, err := run(t, "query", "projects.yaml", "--tag", "tech=react", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	res := decodeQuery(t, out)
	if res.Kind != "projects" || res.Total != 6 || res.Count != 2 {
		t.Errorf("Expected 2 of 6 projects, got %d of %d %s", res.Count, res.Total, res.Kind)
	}
	if len(res.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(res.Items))
	}
	if !strings.Contains(res.Criteria, "react") {
		t.Errorf("Expected criteria to carry the tag, got %q", res.Criteria)
	}
}

func TestQueryOrdinalSortText(t *testing.T) {
	out, err := run(t, "query", "projects.yaml", "--sort", "difficulty")
	if err != nil {
		t.Fatal(err)
	}
	beginner := strings.Index(out, "React Basics")
	intermediate := strings.Index(out, "Vue Guide")
	expert := strings.Index(out, "Homelab cluster")
	if beginner < 0 || intermediate < 0 || expert < 0 {
		t.Fatalf("Expected all projects in output %q", out)
	}
	if !(beginner < intermediate && intermediate < expert) {
		t.Errorf("Expected difficulty order, got %q", out)
	}
	if !strings.HasPrefix(out, "6 of 6 projects") {
		t.Errorf("Expected count header, got %q", out)
	}
}

func TestQueryDescendingLimit(t *testing.T) {
	out, err := run(t, "query", "projects.yaml", "--sort", "difficulty", "--desc", "--limit", "1", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	res := decodeQuery(t, out)
	if len(res.Items) != 1 || res.Count != 6 {
		t.Fatalf("Expected 1 printed item of 6, got %d of %d", len(res.Items), res.Count)
	}
	if id := res.Items[0]["id"]; id != "k8s-homelab" {
		t.Errorf("Expected the expert project first, got %v", res.Items[0])
	}
}

func TestQueryCriteriaString(t *testing.T) {
	out, err := run(t, "query", "projects.yaml", "--criteria", "q=react", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if res := decodeQuery(t, out); res.Count != 2 {
		t.Errorf("Expected 2 react projects, got %d", res.Count)
	}
}

func TestQueryErrors(t *testing.T) {
	cases := [][]string{
		{"query", "projects.yaml", "--format", "xml"},
		{"query", "projects.yaml", "--facet", "nope=1"},
		{"query", "projects.yaml", "--tag", "status=completed"},
		{"query", "projects.yaml", "--range", "stars=ten"},
		{"query", "projects.yaml", "--sort", "nope"},
		{"query", "missing.yaml"},
		{"query"},
	}
	for _, args := range cases {
		if _, err := run(t, args...); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}

func TestFacetsCommand(t *testing.T) {
	out, err := run(t, "facets", "projects.yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{"Status (status)", "  completed (", "Technologies (tech)"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected %q in output %q", expected, out)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	out, err := run(t, "suggest", "projects.yaml", "rea")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "react (") {
		t.Errorf("Expected react suggestion, got %q", out)
	}
}

func TestConvertCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "projects.json.gz")
	if _, err := run(t, "convert", "projects.yaml", target); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "query", target, "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if res := decodeQuery(t, out); res.Kind != "projects" || res.Total != 6 {
		t.Errorf("Expected 6 converted projects, got %d %s", res.Total, res.Kind)
	}
}
