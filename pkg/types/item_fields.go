package types

import (
	"strings"
	"time"

	"github.com/matst80/portfolio-finder/pkg/common/jsoncompat"
	"gopkg.in/yaml.v3"
)

// DataItem is the map backed Item used for collections that bring their own
// schema. Tag values may be given as a list or as a single ";" separated string.
type DataItem struct {
	Id      ItemId                  `json:"id" yaml:"id"`
	Text    map[FieldKey]string     `json:"text,omitempty" yaml:"text,omitempty"`
	Tags    map[FieldKey]StringList `json:"tags,omitempty" yaml:"tags,omitempty"`
	Numbers map[FieldKey]float64    `json:"numbers,omitempty" yaml:"numbers,omitempty"`
	Dates   map[FieldKey]time.Time  `json:"dates,omitempty" yaml:"dates,omitempty"`
}

func (d *DataItem) GetId() ItemId {
	return d.Id
}

func (d *DataItem) GetText(key FieldKey) (string, bool) {
	v, ok := d.Text[key]
	return v, ok
}

func (d *DataItem) GetStrings(key FieldKey) ([]string, bool) {
	v, ok := d.Tags[key]
	if !ok {
		return nil, false
	}
	return v, true
}

func (d *DataItem) GetNumber(key FieldKey) (float64, bool) {
	v, ok := d.Numbers[key]
	return v, ok
}

func (d *DataItem) GetTime(key FieldKey) (time.Time, bool) {
	v, ok := d.Dates[key]
	if !ok || v.IsZero() {
		return time.Time{}, false
	}
	return v, true
}

type StringList []string

// SplitValues splits a ";" separated value and drops blank parts.
func SplitValues(value string) StringList {
	ret := StringList{}
	for part := range strings.SplitSeq(value, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ret = append(ret, part)
	}
	return ret
}

func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = SplitValues(value.Value)
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*s = list
	return nil
}

func (s *StringList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := jsoncompat.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = SplitValues(single)
		return nil
	}
	var list []string
	if err := jsoncompat.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}
