// Package pinfile reads Crystal version pins from project files.
package pinfile

import (
	"strings"
	"unicode"
)

// Recognized pin files
const (
	CrystalVersionFile = ".crystal-version"
	ToolVersionsFile   = ".tool-versions"
)

// toolPrefix starts a crystal entry in .tool-versions
const toolPrefix = "crystal "

// Files returns the pin file names the plugin understands, in lookup order.
func Files() []string {
	return []string{CrystalVersionFile, ToolVersionsFile}
}

// IsRecognized reports whether name is one of Files.
func IsRecognized(name string) bool {
	return name == CrystalVersionFile || name == ToolVersionsFile
}

// ExtractVersion returns the version pinned by content of the named file.
// An empty result means the file pins nothing for crystal.
func ExtractVersion(fileName, content string) string {
	switch fileName {
	case CrystalVersionFile:
		return trim(content)
	case ToolVersionsFile:
		return fromToolVersions(content)
	}
	return ""
}

// fromToolVersions returns the first crystal entry; later duplicates are ignored.
func fromToolVersions(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := trim(line)
		if strings.HasPrefix(trimmed, toolPrefix) {
			return trim(trimmed[len(toolPrefix):])
		}
	}
	return ""
}

// trim drops surrounding whitespace and byte order marks.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
