package catalog

import (
	"strings"
	"time"

	"github.com/matst80/portfolio-finder/pkg/types"
)

const (
	ProjectsKind     = "projects"
	SkillsKind       = "skills"
	AchievementsKind = "achievements"
	TimelineKind     = "timeline"
	// CustomKind collections carry their own schema and DataItem items.
	CustomKind = "custom"
)

// Levels is the rank table shared by difficulty and skill level sorts.
var Levels = []string{"beginner", "intermediate", "advanced", "expert"}

var Statuses = []string{"planned", "in-progress", "completed", "archived"}

func levelSort(key types.FieldKey, name string) types.SortField {
	return types.SortField{Key: key, Name: name, Kind: types.SortOrdinal, Ranks: Levels}
}

func text(value string) (string, bool) {
	return value, strings.TrimSpace(value) != ""
}

func list(values []string) ([]string, bool) {
	return values, values != nil
}

func date(value time.Time) (time.Time, bool) {
	return value, !value.IsZero()
}
