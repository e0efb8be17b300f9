package hostenv

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/platform"
)

// HostEnvironmentKey holds the JSON-encoded host platform.
const HostEnvironmentKey = "host_environment"

// MissingConfigError is returned when a required key is absent or empty.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("%s config is not available", e.Key)
}

// IsMissingConfig checks if an error indicates absent configuration.
func IsMissingConfig(err error) bool {
	var target *MissingConfigError
	return errors.As(err, &target)
}

// Platform decodes the host platform from src. The platform is not checked
// against the support matrix here.
func Platform(src Source) (platform.Descriptor, error) {
	raw, ok := src.Get(HostEnvironmentKey)
	if !ok || raw == "" {
		return platform.Descriptor{}, &MissingConfigError{Key: HostEnvironmentKey}
	}

	var d platform.Descriptor
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return platform.Descriptor{}, fmt.Errorf("failed to parse %s: %w", HostEnvironmentKey, err)
	}
	return d, nil
}

// Encode returns the host_environment value for d.
func Encode(d platform.Descriptor) string {
	data, _ := json.Marshal(d)
	return string(data)
}
