// Package repo locates the curated repository on disk and discovers
// its collection manifests.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CollectionsDirName is the directory under the repository root that
// holds collection manifests.
const CollectionsDirName = "collections"

// ManifestExt is the extension a collection manifest must carry to be
// discovered. Files ending in .yaml are deliberately not matched.
const ManifestExt = ".yml"

// Root returns the repository root, resolved as two directory levels
// above the directory holding the running binary.
func Root() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate binary: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(exe))), nil
}

// CollectionsDir returns the collections directory under root.
func CollectionsDir(root string) string {
	return filepath.Join(root, CollectionsDirName)
}

// DiscoverManifests returns the path of every .yml file directly inside
// the collections directory under root. The scan is non-recursive and
// the order is the directory enumeration order.
func DiscoverManifests(root string) ([]string, error) {
	dir := CollectionsDir(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read collections directory: %w", err)
	}

	var manifests []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ManifestExt) {
			continue
		}
		manifests = append(manifests, filepath.Join(dir, entry.Name()))
	}

	return manifests, nil
}
