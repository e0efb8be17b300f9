// Package platform describes the host platforms the Crystal plugin can
// install for and the fixed support matrix they are checked against.
package platform

import (
	"errors"
	"fmt"
	goruntime "runtime"
)

// OS is an operating system name as reported by the host.
type OS string

// Arch is a CPU architecture name as reported by the host.
type Arch string

// Operating systems
const (
	OSLinux   OS = "linux"
	OSMacOS   OS = "macos"
	OSWindows OS = "windows"
)

// CPU architectures
const (
	ArchX64   Arch = "x64"
	ArchARM64 Arch = "arm64"
)

// Descriptor identifies a host platform.
type Descriptor struct {
	OS   OS   `json:"os"`
	Arch Arch `json:"arch"`
}

// String returns the "os/arch" form used in messages.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s", d.OS, d.Arch)
}

// matrix lists the architectures supported on each OS, in display order.
var matrix = map[OS][]Arch{
	OSLinux:   {ArchX64, ArchARM64},
	OSMacOS:   {ArchX64, ArchARM64},
	OSWindows: {ArchX64},
}

var osOrder = []OS{OSLinux, OSMacOS, OSWindows}

// Matrix returns a copy of the support matrix.
func Matrix() map[OS][]Arch {
	m := make(map[OS][]Arch, len(matrix))
	for os, arches := range matrix {
		m[os] = append([]Arch(nil), arches...)
	}
	return m
}

// Supported returns every supported platform in a stable order.
func Supported() []Descriptor {
	var all []Descriptor
	for _, os := range osOrder {
		for _, arch := range matrix[os] {
			all = append(all, Descriptor{OS: os, Arch: arch})
		}
	}
	return all
}

// IsSupported reports whether d is in the support matrix.
func IsSupported(d Descriptor) bool {
	for _, arch := range matrix[d.OS] {
		if arch == d.Arch {
			return true
		}
	}
	return false
}

// Validate returns an *UnsupportedPlatformError when d is outside the matrix.
func Validate(d Descriptor) error {
	if !IsSupported(d) {
		return &UnsupportedPlatformError{OS: d.OS, Arch: d.Arch}
	}
	return nil
}

// UnsupportedPlatformError is returned for os/arch pairs outside the matrix.
type UnsupportedPlatformError struct {
	OS   OS
	Arch Arch
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported OS/architecture: %s/%s", e.OS, e.Arch)
}

// IsUnsupportedPlatform checks if an error indicates an unsupported platform.
func IsUnsupportedPlatform(err error) bool {
	var target *UnsupportedPlatformError
	return errors.As(err, &target)
}

// Current maps the platform this binary runs on to host naming.
// Unknown values are passed through unchanged so Validate can reject them.
func Current() Descriptor {
	return FromGo(goruntime.GOOS, goruntime.GOARCH)
}

// FromGo converts Go's GOOS/GOARCH names to host naming.
func FromGo(goos, goarch string) Descriptor {
	os := OS(goos)
	if goos == "darwin" {
		os = OSMacOS
	}

	arch := Arch(goarch)
	if goarch == "amd64" {
		arch = ArchX64
	}

	return Descriptor{OS: os, Arch: arch}
}
