// Package resolve turns version specifiers into concrete Crystal versions.
package resolve

import (
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/catalog"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/ui"
)

// Reserved specifiers
const (
	Latest = "latest"
	Stable = "stable"
	Canary = "canary"
	Any    = "*"
)

// Resolver resolves specifiers, consulting the catalog for aliases.
type Resolver struct {
	source catalog.Source
}

// New creates a Resolver backed by source.
func New(source catalog.Source) *Resolver {
	return &Resolver{source: source}
}

// IsAlias reports whether spec resolves through the catalog.
func IsAlias(spec string) bool {
	switch spec {
	case Latest, Stable, Any:
		return true
	}
	return false
}

// Resolve returns the concrete version for spec.
//
// latest, stable and * pick the first non-nightly catalog entry. canary maps
// to nightly without touching the network. Anything else is returned as is.
func (r *Resolver) Resolve(spec string) (string, error) {
	if IsAlias(spec) {
		entries, err := r.source.Fetch()
		if err != nil {
			return "", err
		}
		if v, ok := firstRelease(entries); ok {
			ui.Debug("Resolved %s to %s", spec, v)
			return v, nil
		}
		// Catalog had no releases; the specifier is handed back unchanged.
		ui.Info("No release in catalog for %s, passing it through", spec)
		return spec, nil
	}

	if spec == Canary {
		return catalog.NightlyName, nil
	}

	return spec, nil
}

func firstRelease(entries []catalog.Entry) (string, bool) {
	for _, e := range entries {
		if e.Name != catalog.NightlyName {
			return e.Name, true
		}
	}
	return "", false
}
