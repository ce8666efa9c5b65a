package types

import (
	"slices"
	"testing"
	"time"

	"github.com/matst80/portfolio-finder/pkg/common/jsoncompat"
	"gopkg.in/yaml.v3"
)

const yamlItem = `
id: p1
text:
  title: Terminal mail
  status: active
tags:
  tech: go; bubbletea ;
  topic: [cli, email]
numbers:
  stars: 42
dates:
  updated: 2024-05-01T00:00:00Z
`

func TestDataItemFromYaml(t *testing.T) {
	var item DataItem
	if err := yaml.Unmarshal([]byte(yamlItem), &item); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if item.GetId() != "p1" {
		t.Errorf("Expected id p1, got %s", item.GetId())
	}
	if tech, ok := item.GetStrings("tech"); !ok || !slices.Equal(tech, []string{"go", "bubbletea"}) {
		t.Errorf("Expected split tech values, got %v", tech)
	}
	if topic, _ := item.GetStrings("topic"); !slices.Equal(topic, []string{"cli", "email"}) {
		t.Errorf("Expected topic list, got %v", topic)
	}
	if stars, ok := item.GetNumber("stars"); !ok || stars != 42 {
		t.Errorf("Expected 42 stars, got %v", stars)
	}
	if updated, ok := item.GetTime("updated"); !ok || !updated.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected updated %v", updated)
	}
	if _, ok := item.GetText("difficulty"); ok {
		t.Error("Expected missing text field")
	}
}

func TestDataItemFromJson(t *testing.T) {
	data := []byte(`{"id":"p2","text":{"title":"Vue"},"tags":{"tech":"vue;typescript","topic":["web"]},"dates":{"updated":"0001-01-01T00:00:00Z"}}`)
	var item DataItem
	if err := jsoncompat.Unmarshal(data, &item); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if tech, _ := item.GetStrings("tech"); !slices.Equal(tech, []string{"vue", "typescript"}) {
		t.Errorf("Expected split tech values, got %v", tech)
	}
	if topic, _ := item.GetStrings("topic"); !slices.Equal(topic, []string{"web"}) {
		t.Errorf("Expected topic list, got %v", topic)
	}
	if _, ok := item.GetTime("updated"); ok {
		t.Error("Expected zero time to count as missing")
	}
}

func TestSplitValues(t *testing.T) {
	if got := SplitValues(" a ;; b;"); !slices.Equal(got, StringList{"a", "b"}) {
		t.Errorf("Expected [a b], got %v", got)
	}
	if got := SplitValues(""); len(got) != 0 {
		t.Errorf("Expected empty list, got %v", got)
	}
}
