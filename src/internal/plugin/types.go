package plugin

import "github.com/sasaplus1/proto-plugin-crystal/src/internal/artifact"

// Operation names exposed to the host
const (
	OpRegisterTool       = "register_tool"
	OpLoadVersions       = "load_versions"
	OpDownloadPrebuilt   = "download_prebuilt"
	OpLocateExecutables  = "locate_executables"
	OpResolveVersion     = "resolve_version"
	OpDetectVersionFiles = "detect_version_files"
	OpParseVersionFile   = "parse_version_file"
)

// ToolMetadata describes the plugin to the host.
type ToolMetadata struct {
	Name                string `json:"name"`
	Type                string `json:"type"`
	PluginVersion       string `json:"plugin_version"`
	MinimumProtoVersion string `json:"minimum_proto_version"`
}

// LoadVersionsOutput lists installable versions.
type LoadVersionsOutput struct {
	Versions []string `json:"versions"`
}

// ToolContext carries the version the host is working on.
type ToolContext struct {
	Version string `json:"version"`
}

// ContextInput is the request shape of download_prebuilt and locate_executables.
type ContextInput struct {
	Context ToolContext `json:"context"`
}

// DownloadPrebuiltOutput is the archive the host should download.
type DownloadPrebuiltOutput = artifact.Reference

// LocateExecutablesOutput lists the installed tools.
type LocateExecutablesOutput struct {
	Exes artifact.Executables `json:"exes"`
}

// ResolveVersionInput carries the specifier to resolve.
type ResolveVersionInput struct {
	Initial string `json:"initial"`
}

// VersionOutput is the response of resolve_version and parse_version_file.
type VersionOutput struct {
	Version string `json:"version"`
}

// DetectVersionFilesOutput lists recognized pin files.
type DetectVersionFilesOutput struct {
	Files []string `json:"files"`
}

// ParseVersionFileInput is a pin file name and its raw content.
type ParseVersionFileInput struct {
	File    string `json:"file"`
	Content string `json:"content"`
}
