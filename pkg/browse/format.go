package browse

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/matst80/portfolio-finder/pkg/types"
)

var magnitudes = []humanize.RelTimeMagnitude{
	{D: humanize.Day, Format: "today", DivBy: 1},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 week %s", DivBy: 1},
	{D: humanize.Month, Format: "%d weeks %s", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "1 month %s", DivBy: 1},
	{D: humanize.Year, Format: "%d months %s", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "1 year %s", DivBy: 1},
	{D: 2 * humanize.Year, Format: "2 years %s", DivBy: 1},
	{D: humanize.LongTime, Format: "%d years %s", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "a long while %s", DivBy: 1},
}

// RelativeTime formats then relative to now at day resolution.
func RelativeTime(then, now time.Time) string {
	return humanize.CustomRelTime(then, now, "ago", "from now", magnitudes)
}

// Title is the first non empty search field of item, or its id.
func Title(schema *types.Schema, item types.Item) string {
	for _, key := range schema.SearchFields {
		if v, ok := item.GetText(key); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return string(item.GetId())
}

// Labels lists the single value facets of item followed by its tags.
func Labels(schema *types.Schema, item types.Item) []string {
	ret := make([]string, 0)
	for _, f := range schema.Facets {
		if f.HideFacet {
			continue
		}
		if f.IsTags() {
			if values, ok := item.GetStrings(f.Key); ok {
				ret = append(ret, values...)
			}
		} else if v, ok := item.GetText(f.Key); ok {
			ret = append(ret, v)
		}
	}
	return ret
}

// SortValue renders the value item is currently ordered by.
func SortValue(schema *types.Schema, item types.Item, key types.FieldKey, now time.Time) string {
	field, ok := schema.GetSort(key)
	if !ok {
		return ""
	}
	switch field.Kind {
	case types.SortNumber:
		if v, ok := item.GetNumber(key); ok {
			return humanize.Ftoa(v)
		}
	case types.SortDate:
		if v, ok := item.GetTime(key); ok {
			return RelativeTime(v, now)
		}
	default:
		if v, ok := item.GetText(key); ok {
			return v
		}
	}
	return "-"
}
