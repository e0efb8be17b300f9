// Package catalog fetches the list of published Crystal releases.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NightlyName is the catalog entry for nightly builds. It is not a release.
const NightlyName = "nightly"

// Entry is one release in the catalog. Only the name is used.
type Entry struct {
	Name string `json:"name"`
}

// Catalog is the body served by the versions endpoint. A missing or null
// versions array leaves Versions nil; an empty one decodes to an empty slice.
type Catalog struct {
	Versions []Entry `json:"versions"`
}

// Source retrieves the release catalog.
type Source interface {
	// Fetch returns the catalog entries in the order the source lists them.
	Fetch() ([]Entry, error)
}

// ParseCatalog decodes a versions document.
func ParseCatalog(data []byte) ([]Entry, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if c.Versions == nil {
		return nil, errors.New("catalog has no versions array")
	}
	return c.Versions, nil
}

// Names returns entry names in order, skipping any listed in exclude.
func Names(entries []Entry, exclude ...string) []string {
	names := make([]string, 0, len(entries))
outer:
	for _, e := range entries {
		for _, x := range exclude {
			if e.Name == x {
				continue outer
			}
		}
		names = append(names, e.Name)
	}
	return names
}
