package storage

import (
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/matst80/portfolio-finder/pkg/types"
)

var (
	ErrUnknownKind   = errors.New("unknown collection kind")
	ErrDuplicateId   = errors.New("duplicate item id")
	ErrMissingId     = errors.New("item without id")
	ErrUnknownFormat = errors.New("unknown file format")
)

// Collection is one loaded file: the schema to filter with and its items.
type Collection struct {
	Kind   string
	Schema *types.Schema
	Items  []types.Item
}

type DiskStorage struct {
	RootFolder string
}

func NewDiskStorage(rootFolder string) *DiskStorage {
	return &DiskStorage{
		RootFolder: rootFolder,
	}
}

// GetFileName resolves name against the root folder and returns it with a
// temporary sibling used for atomic writes.
func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := name
	if !path.IsAbs(name) {
		fileName = path.Join(ds.RootFolder, name)
	}
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}
