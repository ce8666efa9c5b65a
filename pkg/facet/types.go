package facet

import "github.com/matst80/portfolio-finder/pkg/types"

type JsonFacet struct {
	*types.BaseField
	Selected []string       `json:"selected,omitempty"`
	Values   []string       `json:"values"`
	Counts   map[string]int `json:"counts,omitempty"`
}

// ToJsonFacets describes every visible facet with its values and the
// current selection, ready for a consumer populating filter controls.
func (i *Index) ToJsonFacets(criteria *types.Criteria) []JsonFacet {
	ret := make([]JsonFacet, 0, len(i.fields))
	for _, f := range i.fields {
		if f.HideFacet {
			continue
		}
		jf := JsonFacet{
			BaseField: f.BaseField,
			Values:    f.Values(),
			Counts:    make(map[string]int, len(f.counts)),
		}
		for k, v := range f.counts {
			jf.Counts[k] = v
		}
		if criteria != nil {
			if f.IsTags() {
				jf.Selected = criteria.SelectedTags(f.Key)
			} else if v, ok := criteria.FacetValue(f.Key); ok {
				jf.Selected = []string{v}
			}
		}
		ret = append(ret, jf)
	}
	return ret
}
