package collection

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kestrel-md/curio/internal/repo"
)

// Load reads and parses a single collection manifest.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}

	var col Collection
	if err := yaml.Unmarshal(data, &col); err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", path, err)
	}
	col.FilePath = path

	return &col, nil
}

// LoadAll loads every collection manifest discovered under root.
// Manifests that fail to parse are skipped; the caller sees only the
// ones that loaded.
func LoadAll(root string) ([]*Collection, error) {
	manifests, err := repo.DiscoverManifests(root)
	if err != nil {
		return nil, err
	}

	var cols []*Collection
	for _, m := range manifests {
		col, err := Load(m)
		if err != nil {
			continue
		}
		cols = append(cols, col)
	}

	return cols, nil
}

// FindByID returns the collection with the given id, or nil.
func FindByID(cols []*Collection, id string) *Collection {
	for _, c := range cols {
		if c.ID == id {
			return c
		}
	}
	return nil
}
