package cmd

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/hostenv"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/platform"
)

// run executes the root command in-process and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	defer resetFlags()

	var stdout bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	defer rootCmd.SetIn(nil)
	defer rootCmd.SetOut(nil)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"versions": [{"name": "nightly"}, {"name": "1.11.2"}, {"name": "1.11.1"}]}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCallResolveVersion(t *testing.T) {
	server := catalogServer(t)

	out, err := run(t, `{"initial":"latest"}`, "call", "resolve_version", "--catalog-url", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != `{"version":"1.11.2"}` {
		t.Errorf("output = %q", out)
	}
}

func TestCallInputFlag(t *testing.T) {
	out, err := run(t, "", "call", "parse_version_file", "--input", `{"file":".crystal-version","content":" 1.10.1\n"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != `{"version":"1.10.1"}` {
		t.Errorf("output = %q", out)
	}
}

func TestCallHostFlags(t *testing.T) {
	t.Setenv(hostenv.EnvName(hostenv.HostEnvironmentKey), "")

	out, err := run(t, `{"context":{"version":"1.10.0"}}`,
		"call", "download_prebuilt", "--host-os", "linux", "--host-arch", "arm64")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"download_name":"crystal-1.10.0-1-linux-aarch64-bundled.tar.gz"`) {
		t.Errorf("output = %q", out)
	}
}

func TestCallHostFromEnvironment(t *testing.T) {
	t.Setenv(hostenv.EnvName(hostenv.HostEnvironmentKey), `{"os":"windows","arch":"x64"}`)

	out, err := run(t, `{"context":{"version":"1.10.0"}}`, "call", "locate_executables")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"exe_path":"crystal.exe"`) {
		t.Errorf("output = %q", out)
	}
}

func TestCallHostFromConfigFile(t *testing.T) {
	t.Setenv(hostenv.EnvName(hostenv.HostEnvironmentKey), `{"os":"linux","arch":"x64"}`)

	path := filepath.Join(t.TempDir(), "plugin.toml")
	content := "[config]\nhost_environment = '{\"os\": \"macos\", \"arch\": \"arm64\"}'\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// The config file takes precedence over the environment
	out, err := run(t, `{"context":{"version":"1.10.0"}}`, "call", "download_prebuilt", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "darwin-universal") {
		t.Errorf("output = %q", out)
	}
}

func TestCallErrors(t *testing.T) {
	t.Setenv(hostenv.EnvName(hostenv.HostEnvironmentKey), "")

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown operation",
			args:    []string{"call", "install"},
			wantErr: "unknown operation: install",
		},
		{
			name:    "missing host environment",
			stdin:   `{"context":{"version":"1.10.0"}}`,
			args:    []string{"call", "download_prebuilt"},
			wantErr: "host_environment config is not available",
		},
		{
			name:    "unsupported platform",
			stdin:   `{"context":{"version":"1.10.0"}}`,
			args:    []string{"call", "locate_executables", "--host-os", "windows", "--host-arch", "arm64"},
			wantErr: "unsupported OS/architecture: windows/arm64",
		},
		{
			name:    "catalog failure",
			args:    []string{"call", "load_versions", "--catalog-url", "http://localhost:1"},
			wantErr: "failed to fetch",
		},
		{
			name:    "missing operation",
			args:    []string{"call"},
			wantErr: "accepts 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigSourceSingleHostFlag(t *testing.T) {
	t.Setenv(hostenv.EnvName(hostenv.HostEnvironmentKey), `{"os":"macos","arch":"arm64"}`)

	tests := []struct {
		name string
		os   string
		arch string
		want platform.Descriptor
	}{
		{name: "os only", os: "linux", want: platform.Descriptor{OS: platform.OSLinux, Arch: platform.ArchARM64}},
		{name: "arch only", arch: "x64", want: platform.Descriptor{OS: platform.OSMacOS, Arch: platform.ArchX64}},
		{name: "both", os: "windows", arch: "x64", want: platform.Descriptor{OS: platform.OSWindows, Arch: platform.ArchX64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer resetFlags()
			hostOS, hostArch = tt.os, tt.arch

			src, err := configSource()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			d, err := hostenv.Platform(src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != tt.want {
				t.Errorf("Platform() = %v, want %v", d, tt.want)
			}
		})
	}
}

func TestConfigSourceSingleHostFlagBadEnvironment(t *testing.T) {
	t.Setenv(hostenv.EnvName(hostenv.HostEnvironmentKey), `not json`)
	defer resetFlags()
	hostOS = "linux"

	if _, err := configSource(); err == nil {
		t.Fatal("expected error for malformed host_environment, got nil")
	}
}

func TestCallSingleHostFlagKeepsArch(t *testing.T) {
	t.Setenv(hostenv.EnvName(hostenv.HostEnvironmentKey), `{"os":"macos","arch":"arm64"}`)

	out, err := run(t, `{"context":{"version":"1.10.0"}}`, "call", "download_prebuilt", "--host-os", "linux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "linux-aarch64-bundled.tar.gz") {
		t.Errorf("output = %q", out)
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.New("download_prebuilt: boom"))
	if !strings.Contains(buf.String(), "Error: download_prebuilt: boom") {
		t.Errorf("reportError() = %q", buf.String())
	}
}

func TestFilterVersions(t *testing.T) {
	versions := []string{"1.11.2", "1.11.1", "1.10.1", "1.1.0"}

	tests := []struct {
		name   string
		filter string
		limit  int
		want   int
	}{
		{name: "all", want: 4},
		{name: "filter", filter: "1.11", want: 2},
		{name: "limit", limit: 3, want: 3},
		{name: "filter and limit", filter: "1.1", limit: 1, want: 1},
		{name: "no match", filter: "2.0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filterVersions(versions, tt.filter, tt.limit); len(got) != tt.want {
				t.Errorf("filterVersions() = %v, want %d entries", got, tt.want)
			}
		})
	}
}

func TestPlatformsCommand(t *testing.T) {
	out, err := run(t, "", "platforms", "1.11.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"crystal-1.11.2-1-linux-x86_64-bundled.tar.gz",
		"crystal-1.11.2-1-linux-aarch64-bundled.tar.gz",
		"crystal-1.11.2-1-darwin-universal.tar.gz",
		"crystal-1.11.2-windows-x86_64-msvc-unsupported.zip",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("platforms output missing %q", want)
		}
	}
}

func TestPlatformsCommandTruncatesArchive(t *testing.T) {
	version := "1.11.2-dev.20240101.0123456789abcdef"
	out, err := run(t, "", "platforms", version)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "crystal-"+version+"-1-linux-aarch64-bundled.tar.gz") {
		t.Errorf("platforms output kept the full archive name:\n%s", out)
	}
	if !strings.Contains(out, "…") || !strings.Contains(out, "linux-aarch64-bundled.tar.gz") {
		t.Errorf("platforms output missing truncated archive:\n%s", out)
	}
}

func TestOperationsCommand(t *testing.T) {
	out, err := run(t, "", "operations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range operationNames() {
		if !strings.Contains(out, name) {
			t.Errorf("operations output missing %q", name)
		}
	}
	if !strings.Contains(out, "in catalog order") {
		t.Errorf("operations output missing load_versions description:\n%s", out)
	}
}
