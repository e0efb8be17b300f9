// Package artifact computes where Crystal releases are downloaded from and
// where their executables live once unpacked.
package artifact

import (
	"fmt"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/platform"
)

// ReleaseBaseURL is the GitHub release download root for Crystal.
const ReleaseBaseURL = "https://github.com/crystal-lang/crystal/releases/download"

// Tool names
const (
	ToolCrystal = "crystal"
	ToolShards  = "shards"
)

// Reference names a downloadable archive.
type Reference struct {
	URL  string `json:"download_url"`
	Name string `json:"download_name"`
}

// Executable is the location of one tool relative to the install root.
type Executable struct {
	Path    string `json:"exe_path"`
	Primary bool   `json:"primary,omitempty"`
}

// Executables maps tool names to their locations.
type Executables map[string]Executable

// Primary returns the name of the primary tool.
func (e Executables) Primary() (string, bool) {
	for name, exe := range e {
		if exe.Primary {
			return name, true
		}
	}
	return "", false
}

// layout describes the archive and its contents for one OS. Templates use
// %[1]s for the version and %[2]s for the architecture token; prefixed paths
// use %[1]s for the install prefix.
type layout struct {
	archive  string
	crystal  string
	shards   string
	prefixed bool
}

var layouts = map[platform.OS]layout{
	platform.OSLinux: {
		archive:  "crystal-%[1]s-1-linux-%[2]s-bundled.tar.gz",
		crystal:  "%[1]s/bin/crystal",
		shards:   "%[1]s/bin/shards",
		prefixed: true,
	},
	platform.OSMacOS: {
		// Universal build; bin/crystal is a wrapper script that sets up the environment.
		archive:  "crystal-%[1]s-1-darwin-universal.tar.gz",
		crystal:  "%[1]s/bin/crystal",
		shards:   "%[1]s/embedded/bin/shards",
		prefixed: true,
	},
	platform.OSWindows: {
		archive: "crystal-%[1]s-windows-x86_64-msvc-unsupported.zip",
		crystal: "crystal.exe",
		shards:  "shards.exe",
	},
}

var archTokens = map[platform.Arch]string{
	platform.ArchX64:   "x86_64",
	platform.ArchARM64: "aarch64",
}

// defaultArchToken is used for architectures missing from archTokens.
const defaultArchToken = "x86_64"

// ArchToken returns the architecture part of Crystal archive names.
func ArchToken(arch platform.Arch) string {
	if token, ok := archTokens[arch]; ok {
		return token
	}
	return defaultArchToken
}

// InstallPrefix is the top-level directory of the unix archives.
func InstallPrefix(version string) string {
	return fmt.Sprintf("crystal-%s-1", version)
}

func lookup(p platform.Descriptor) (layout, error) {
	if err := platform.Validate(p); err != nil {
		return layout{}, err
	}
	l, ok := layouts[p.OS]
	if !ok {
		return layout{}, &platform.UnsupportedPlatformError{OS: p.OS, Arch: p.Arch}
	}
	return l, nil
}

// DownloadReference returns the archive to fetch for version on p.
func DownloadReference(version string, p platform.Descriptor) (Reference, error) {
	l, err := lookup(p)
	if err != nil {
		return Reference{}, err
	}

	name := fmt.Sprintf(l.archive, version, ArchToken(p.Arch))
	return Reference{
		URL:  fmt.Sprintf("%s/%s/%s", ReleaseBaseURL, version, name),
		Name: name,
	}, nil
}

// LocateExecutables returns the crystal and shards paths inside the
// unpacked archive for version on p. crystal is always primary.
func LocateExecutables(version string, p platform.Descriptor) (Executables, error) {
	l, err := lookup(p)
	if err != nil {
		return nil, err
	}

	crystal, shards := l.crystal, l.shards
	if l.prefixed {
		prefix := InstallPrefix(version)
		crystal = fmt.Sprintf(crystal, prefix)
		shards = fmt.Sprintf(shards, prefix)
	}

	return Executables{
		ToolCrystal: {Path: crystal, Primary: true},
		ToolShards:  {Path: shards},
	}, nil
}
