package catalog

import (
	"fmt"
	"slices"

	"github.com/matst80/portfolio-finder/pkg/common/jsoncompat"
	"github.com/matst80/portfolio-finder/pkg/types"
	"gopkg.in/yaml.v3"
)

// Kind is a collection shape: a schema and the item type it filters.
type Kind interface {
	Name() string
	Schema() *types.Schema
	DecodeYAML(node *yaml.Node) ([]types.Item, error)
	DecodeJSON(data []byte) ([]types.Item, error)
}

var lookup = make(map[string]Kind)

func Register(kind Kind) {
	lookup[kind.Name()] = kind
}

func Lookup(name string) (Kind, bool) {
	k, ok := lookup[name]
	return k, ok
}

// Names lists the registered kinds alphabetically.
func Names() []string {
	ret := make([]string, 0, len(lookup))
	for name := range lookup {
		ret = append(ret, name)
	}
	slices.Sort(ret)
	return ret
}

type itemPointer[T any] interface {
	*T
	types.Item
}

// typedKind decodes a list of T where *T implements types.Item.
type typedKind[T any, PT itemPointer[T]] struct {
	name   string
	schema func() *types.Schema
}

func (k typedKind[T, PT]) Name() string {
	return k.name
}

func (k typedKind[T, PT]) Schema() *types.Schema {
	return k.schema()
}

func toItems[T any, PT itemPointer[T]](list []T) []types.Item {
	ret := make([]types.Item, len(list))
	for i := range list {
		ret[i] = PT(&list[i])
	}
	return ret
}

func (k typedKind[T, PT]) DecodeYAML(node *yaml.Node) ([]types.Item, error) {
	var list []T
	if node != nil {
		if err := node.Decode(&list); err != nil {
			return nil, fmt.Errorf("decode %s: %w", k.name, err)
		}
	}
	return toItems[T, PT](list), nil
}

func (k typedKind[T, PT]) DecodeJSON(data []byte) ([]types.Item, error) {
	var list []T
	if len(data) > 0 {
		if err := jsoncompat.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decode %s: %w", k.name, err)
		}
	}
	return toItems[T, PT](list), nil
}

func newKind[T any, PT itemPointer[T]](name string, schema func() *types.Schema) Kind {
	return typedKind[T, PT]{name: name, schema: schema}
}

func init() {
	Register(newKind[Project](ProjectsKind, ProjectSchema))
	Register(newKind[Skill](SkillsKind, SkillSchema))
	Register(newKind[Achievement](AchievementsKind, AchievementSchema))
	Register(newKind[Milestone](TimelineKind, TimelineSchema))
	Register(newKind[types.DataItem](CustomKind, func() *types.Schema { return nil }))
}
