package sorting

import (
	"slices"
	"testing"
	"time"

	"github.com/matst80/portfolio-finder/pkg/types"
)

var difficulty = types.SortField{
	Key:   "difficulty",
	Kind:  types.SortOrdinal,
	Ranks: []string{"beginner", "intermediate", "advanced", "expert"},
}

func sortIds(items []types.Item, c Comparator) []types.ItemId {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, c)
	return types.ItemIds(sorted)
}

func TestOrdinalSortUsesRank(t *testing.T) {
	items := types.ToItems(
		types.MakeMockItem("1", "a").WithText("difficulty", "beginner"),
		types.MakeMockItem("2", "b").WithText("difficulty", "advanced"),
		types.MakeMockItem("3", "c").WithText("difficulty", "intermediate"),
	)
	r := NewRegistry(difficulty)
	got := sortIds(items, r.Comparator("difficulty", types.Ascending))
	expected := []types.ItemId{"1", "3", "2"}
	if !slices.Equal(got, expected) {
		t.Errorf("Expected %v but got %v", expected, got)
	}
	alphabetic := []types.ItemId{"2", "1", "3"}
	if slices.Equal(got, alphabetic) {
		t.Error("Expected rank order, got alphabetic order")
	}
}

func TestOrdinalRankIsCaseInsensitive(t *testing.T) {
	if rank, ok := difficulty.Rank(" Expert "); !ok || rank != 3 {
		t.Errorf("Expected rank 3, got %d %v", rank, ok)
	}
	if _, ok := difficulty.Rank("guru"); ok {
		t.Error("Expected unknown label to have no rank")
	}
}

func TestMissingValuesSortFirstAscendingLastDescending(t *testing.T) {
	items := types.ToItems(
		types.MakeMockItem("1", "a").WithNumber("stars", 10),
		types.MakeMockItem("2", "b"),
		types.MakeMockItem("3", "c").WithNumber("stars", 2),
		types.MakeMockItem("4", "d").WithText("difficulty", "guru"),
	)
	r := NewRegistry(types.SortField{Key: "stars", Kind: types.SortNumber}, difficulty)

	asc := sortIds(items, r.Comparator("stars", types.Ascending))
	if expected := []types.ItemId{"2", "4", "3", "1"}; !slices.Equal(asc, expected) {
		t.Errorf("Expected %v but got %v", expected, asc)
	}
	desc := sortIds(items, r.Comparator("stars", types.Descending))
	if expected := []types.ItemId{"1", "3", "2", "4"}; !slices.Equal(desc, expected) {
		t.Errorf("Expected %v but got %v", expected, desc)
	}

	ordinal := sortIds(items, r.Comparator("difficulty", types.Ascending))
	if expected := []types.ItemId{"1", "2", "3", "4"}; !slices.Equal(ordinal, expected) {
		t.Errorf("Expected unranked labels to count as missing, got %v", ordinal)
	}
}

func TestStableForEqualKeys(t *testing.T) {
	items := types.ToItems(
		types.MakeMockItem("1", "a").WithNumber("year", 2020),
		types.MakeMockItem("2", "b").WithNumber("year", 2021),
		types.MakeMockItem("3", "c").WithNumber("year", 2020),
	)
	r := NewRegistry(types.SortField{Key: "year", Kind: types.SortNumber})
	asc := sortIds(items, r.Comparator("year", types.Ascending))
	if expected := []types.ItemId{"1", "3", "2"}; !slices.Equal(asc, expected) {
		t.Errorf("Expected %v but got %v", expected, asc)
	}
	desc := sortIds(items, r.Comparator("year", types.Descending))
	if expected := []types.ItemId{"2", "1", "3"}; !slices.Equal(desc, expected) {
		t.Errorf("Expected %v but got %v", expected, desc)
	}
}

func TestStringAndDateSort(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := types.ToItems(
		types.MakeMockItem("1", "beta").WithDate("updated", base.Add(48*time.Hour)),
		types.MakeMockItem("2", "Alpha").WithDate("updated", base),
		types.MakeMockItem("3", "gamma"),
	)
	r := NewRegistry(
		types.SortField{Key: "title", Kind: types.SortString},
		types.SortField{Key: "updated", Kind: types.SortDate},
	)
	if got := sortIds(items, r.Comparator("title", types.Ascending)); !slices.Equal(got, []types.ItemId{"2", "1", "3"}) {
		t.Errorf("Expected case insensitive title order, got %v", got)
	}
	if got := sortIds(items, r.Comparator("updated", types.Descending)); !slices.Equal(got, []types.ItemId{"1", "2", "3"}) {
		t.Errorf("Expected newest first and undated last, got %v", got)
	}
}

func TestUnknownKeyKeepsOrder(t *testing.T) {
	items := types.ToItems(
		types.MakeMockItem("3", "c"),
		types.MakeMockItem("1", "a"),
		types.MakeMockItem("2", "b"),
	)
	r := NewRegistry()
	for _, dir := range []types.SortDirection{types.Ascending, types.Descending} {
		if got := sortIds(items, r.Comparator("nope", dir)); !slices.Equal(got, []types.ItemId{"3", "1", "2"}) {
			t.Errorf("Expected input order, got %v", got)
		}
	}
}

func TestRegistryKeysInOrder(t *testing.T) {
	r := NewRegistry(
		types.SortField{Key: "title", Kind: types.SortString},
		difficulty,
	)
	r.Register(types.SortField{Key: "title", Kind: types.SortString, Name: "Name"})
	keys := r.Keys()
	if !slices.Equal(keys, []types.FieldKey{"title", "difficulty"}) {
		t.Errorf("Unexpected keys %v", keys)
	}
	s, ok := r.Get("title")
	if !ok || s.Name() != "Name" {
		t.Errorf("Expected replaced sorter, got %v", s)
	}
}
