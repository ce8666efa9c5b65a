package types

import "strings"

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) Toggle() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

func ParseSortDirection(value string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(value), string(Descending)) {
		return Descending
	}
	return Ascending
}

type SortKind string

const (
	SortString  SortKind = "string"
	SortNumber  SortKind = "number"
	SortDate    SortKind = "date"
	SortOrdinal SortKind = "ordinal"
)

// SortField describes one sort key. Ordinal keys order labels by their
// position in Ranks rather than alphabetically.
type SortField struct {
	Key   FieldKey `json:"key" yaml:"key"`
	Name  string   `json:"name,omitempty" yaml:"name,omitempty"`
	Kind  SortKind `json:"kind" yaml:"kind"`
	Ranks []string `json:"ranks,omitempty" yaml:"ranks,omitempty"`
}

// Rank returns the position of label in the rank table, case insensitive.
func (s *SortField) Rank(label string) (int, bool) {
	label = strings.TrimSpace(label)
	for i, r := range s.Ranks {
		if strings.EqualFold(r, label) {
			return i, true
		}
	}
	return -1, false
}
