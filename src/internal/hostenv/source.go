// Package hostenv reads the plugin configuration the host provides,
// chiefly the host_environment entry describing the target platform.
package hostenv

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Source is a key-value configuration store.
type Source interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
}

// MapSource is an in-memory Source.
type MapSource map[string]string

// Get implements Source.
func (m MapSource) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvPrefix is prepended to upper-cased keys by EnvSource.
const EnvPrefix = "PROTO_PLUGIN_"

// EnvSource reads keys from environment variables, so host_environment is
// read from PROTO_PLUGIN_HOST_ENVIRONMENT.
type EnvSource struct{}

// EnvName returns the environment variable holding key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// Get implements Source.
func (EnvSource) Get(key string) (string, bool) {
	return os.LookupEnv(EnvName(key))
}

// fileConfig is the layout of a TOML configuration file:
//
//	[config]
//	host_environment = '{"os": "linux", "arch": "x64"}'
type fileConfig struct {
	Config map[string]string `toml:"config"`
}

// FileSource is a Source loaded from a TOML file.
type FileSource struct {
	path   string
	values map[string]string
}

// LoadFile reads the TOML configuration at path.
func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseFile(path, data)
}

// ParseFile decodes TOML configuration; path is only used in messages.
func ParseFile(path string, data []byte) (*FileSource, error) {
	var cfg fileConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Config == nil {
		cfg.Config = map[string]string{}
	}
	return &FileSource{path: path, values: cfg.Config}, nil
}

// Path returns the file the source was loaded from.
func (s *FileSource) Path() string {
	return s.path
}

// Get implements Source.
func (s *FileSource) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Chain consults each Source in order and returns the first hit.
type Chain []Source

// Get implements Source.
func (c Chain) Get(key string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Get(key); ok {
			return v, true
		}
	}
	return "", false
}
