package storage

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/matst80/portfolio-finder/pkg/catalog"
	"github.com/matst80/portfolio-finder/pkg/common/jsoncompat"
	"github.com/matst80/portfolio-finder/pkg/types"
	"gopkg.in/yaml.v3"
)

type format int

const (
	formatYaml format = iota
	formatJson
	formatGzippedJson
)

func formatOf(name string) (format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return formatYaml, nil
	case strings.HasSuffix(lower, ".json.gz"), strings.HasSuffix(lower, ".jz"):
		return formatGzippedJson, nil
	case strings.HasSuffix(lower, ".json"):
		return formatJson, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

type yamlFile struct {
	Kind   string        `yaml:"kind"`
	Schema *types.Schema `yaml:"schema,omitempty"`
	Items  yaml.Node     `yaml:"items"`
}

type jsonFile struct {
	Kind   string          `json:"kind"`
	Schema *types.Schema   `json:"schema,omitempty"`
	Items  json.RawMessage `json:"items"`
}

// LoadCollection reads a collection file. The format is picked from the
// extension: .yaml/.yml, .json or gzipped .json.gz.
func (d *DiskStorage) LoadCollection(name string) (*Collection, error) {
	fileName, _ := d.GetFileName(name)
	f, err := formatOf(fileName)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file
	if f == formatGzippedJson {
		zipReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fileName, err)
		}
		defer zipReader.Close()
		reader = zipReader
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}

	var c *Collection
	if f == formatYaml {
		c, err = DecodeYaml(data)
	} else {
		c, err = DecodeJson(data)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", fileName, err)
	}
	log.Printf("Loaded %d %s from %s", len(c.Items), c.Kind, fileName)
	return c, nil
}

func DecodeYaml(data []byte) (*Collection, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	kind, schema, err := resolveKind(file.Kind, file.Schema)
	if err != nil {
		return nil, err
	}
	var items []types.Item
	if file.Items.Kind != 0 {
		items, err = kind.DecodeYAML(&file.Items)
	}
	if err != nil {
		return nil, err
	}
	return newCollection(kind.Name(), schema, items)
}

func DecodeJson(data []byte) (*Collection, error) {
	var file jsonFile
	if err := jsoncompat.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	kind, schema, err := resolveKind(file.Kind, file.Schema)
	if err != nil {
		return nil, err
	}
	items, err := kind.DecodeJSON(file.Items)
	if err != nil {
		return nil, err
	}
	return newCollection(kind.Name(), schema, items)
}

// resolveKind picks the item decoder for name. A schema given in the file
// replaces the built in one; custom collections must bring their own.
func resolveKind(name string, schema *types.Schema) (catalog.Kind, *types.Schema, error) {
	if name == "" {
		name = catalog.CustomKind
	}
	kind, ok := catalog.Lookup(name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	if schema == nil {
		schema = kind.Schema()
	}
	if schema == nil {
		return nil, nil, fmt.Errorf("%w: %s collection without schema", types.ErrInvalidSchema, name)
	}
	if err := schema.Validate(); err != nil {
		return nil, nil, err
	}
	return kind, schema, nil
}

func newCollection(kind string, schema *types.Schema, items []types.Item) (*Collection, error) {
	seen := make(types.ItemList, len(items))
	for _, item := range items {
		id := item.GetId()
		if id == "" {
			return nil, ErrMissingId
		}
		if seen.Contains(id) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateId, id)
		}
		seen.AddId(id)
	}
	if items == nil {
		items = []types.Item{}
	}
	return &Collection{
		Kind:   kind,
		Schema: schema,
		Items:  items,
	}, nil
}

type collectionFile struct {
	Kind   string        `json:"kind" yaml:"kind"`
	Schema *types.Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
	Items  []types.Item  `json:"items" yaml:"items"`
}

// SaveCollection writes items in the format given by the extension of name.
// The file is written to a temporary name and renamed into place.
func (d *DiskStorage) SaveCollection(name string, c *Collection) error {
	fileName, tmpFileName := d.GetFileName(name)
	f, err := formatOf(fileName)
	if err != nil {
		return err
	}
	out := collectionFile{Kind: c.Kind, Items: c.Items}
	if kind, ok := catalog.Lookup(c.Kind); !ok || kind.Schema() == nil {
		out.Schema = c.Schema
	}

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}
	switch f {
	case formatYaml:
		enc := yaml.NewEncoder(file)
		enc.SetIndent(2)
		err = enc.Encode(out)
		if err == nil {
			err = enc.Close()
		}
	case formatJson:
		var data []byte
		if data, err = jsoncompat.MarshalIndent(out, "", "  "); err == nil {
			_, err = file.Write(data)
		}
	case formatGzippedJson:
		zipWriter := gzip.NewWriter(file)
		var data []byte
		if data, err = jsoncompat.Marshal(out); err == nil {
			_, err = zipWriter.Write(data)
		}
		if closeErr := zipWriter.Close(); err == nil {
			err = closeErr
		}
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpFileName)
		return fmt.Errorf("save %s: %w", fileName, err)
	}
	if err = os.Rename(tmpFileName, fileName); err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}
	log.Printf("Saved %d %s to %s", len(c.Items), c.Kind, fileName)
	return nil
}
