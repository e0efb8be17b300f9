// Package plugin exposes the Crystal resolution logic as the typed entry
// points a proto-style host calls.
package plugin

import (
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/artifact"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/catalog"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/hostenv"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/pinfile"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/resolve"
)

// Metadata returned by register_tool
var Metadata = ToolMetadata{
	Name:                "Crystal",
	Type:                "language",
	PluginVersion:       "0.1.0",
	MinimumProtoVersion: "0.53.0",
}

// Plugin holds the collaborators the entry points need. It keeps no state
// between calls.
type Plugin struct {
	catalog  catalog.Source
	config   hostenv.Source
	resolver *resolve.Resolver
}

// New creates a Plugin reading releases from source and host settings from config.
func New(source catalog.Source, config hostenv.Source) *Plugin {
	return &Plugin{
		catalog:  source,
		config:   config,
		resolver: resolve.New(source),
	}
}

// RegisterTool returns the plugin metadata.
func (p *Plugin) RegisterTool() ToolMetadata {
	return Metadata
}

// LoadVersions lists every release in catalog order, without nightly.
func (p *Plugin) LoadVersions() (LoadVersionsOutput, error) {
	entries, err := p.catalog.Fetch()
	if err != nil {
		return LoadVersionsOutput{}, err
	}
	return LoadVersionsOutput{Versions: catalog.Names(entries, catalog.NightlyName)}, nil
}

// DownloadPrebuilt returns the archive for the requested version on the host platform.
func (p *Plugin) DownloadPrebuilt(in ContextInput) (DownloadPrebuiltOutput, error) {
	host, err := hostenv.Platform(p.config)
	if err != nil {
		return DownloadPrebuiltOutput{}, err
	}
	return artifact.DownloadReference(in.Context.Version, host)
}

// LocateExecutables returns the tool paths for the requested version on the host platform.
func (p *Plugin) LocateExecutables(in ContextInput) (LocateExecutablesOutput, error) {
	host, err := hostenv.Platform(p.config)
	if err != nil {
		return LocateExecutablesOutput{}, err
	}
	exes, err := artifact.LocateExecutables(in.Context.Version, host)
	if err != nil {
		return LocateExecutablesOutput{}, err
	}
	return LocateExecutablesOutput{Exes: exes}, nil
}

// ResolveVersion resolves the initial specifier.
func (p *Plugin) ResolveVersion(in ResolveVersionInput) (VersionOutput, error) {
	v, err := p.resolver.Resolve(in.Initial)
	if err != nil {
		return VersionOutput{}, err
	}
	return VersionOutput{Version: v}, nil
}

// DetectVersionFiles lists pin files worth reading.
func (p *Plugin) DetectVersionFiles() DetectVersionFilesOutput {
	return DetectVersionFilesOutput{Files: pinfile.Files()}
}

// ParseVersionFile extracts the pinned version; an empty version means none.
func (p *Plugin) ParseVersionFile(in ParseVersionFileInput) VersionOutput {
	return VersionOutput{Version: pinfile.ExtractVersion(in.File, in.Content)}
}
