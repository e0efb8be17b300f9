package catalog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPSource(t *testing.T) {
	versions := `{"versions": [{"name": "nightly"}, {"name": "1.11.2"}, {"name": "1.11.1"}]}`

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Path {
		case "/versions.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(versions))
		case "/broken.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("invalid json"))
		case "/missing.json":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	t.Run("Fetch success", func(t *testing.T) {
		source := NewHTTPSource(server.URL + "/versions.json")
		entries, err := source.Fetch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("len(entries) = %d, want 3", len(entries))
		}
		if entries[1].Name != "1.11.2" {
			t.Errorf("entries[1].Name = %q, want %q", entries[1].Name, "1.11.2")
		}
	})

	t.Run("Fetch is not cached", func(t *testing.T) {
		source := NewHTTPSource(server.URL + "/versions.json")
		before := requests
		for i := 0; i < 2; i++ {
			if _, err := source.Fetch(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if got := requests - before; got != 2 {
			t.Errorf("server saw %d requests, want 2", got)
		}
	})

	t.Run("Fetch invalid JSON", func(t *testing.T) {
		_, err := NewHTTPSource(server.URL + "/broken.json").Fetch()
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !IsMalformedResponse(err) {
			t.Errorf("expected MalformedResponseError, got %T: %v", err, err)
		}
		if IsNetworkError(err) {
			t.Errorf("should not be NetworkError, got %v", err)
		}
	})

	t.Run("Fetch not found", func(t *testing.T) {
		_, err := NewHTTPSource(server.URL + "/missing.json").Fetch()
		if !IsNetworkError(err) {
			t.Fatalf("expected NetworkError, got %T: %v", err, err)
		}
		if !strings.Contains(err.Error(), "HTTP 404") {
			t.Errorf("error %q should mention the status", err.Error())
		}
	})

	t.Run("Fetch server error", func(t *testing.T) {
		_, err := NewHTTPSource(server.URL + "/other.json").Fetch()
		if !IsNetworkError(err) {
			t.Fatalf("expected NetworkError, got %T: %v", err, err)
		}
		if !strings.Contains(err.Error(), "HTTP 500") {
			t.Errorf("error %q should mention the status", err.Error())
		}
	})
}

func TestHTTPSourceWithClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"versions": []}`))
	}))
	defer server.Close()

	source := NewHTTPSourceWithClient(server.URL, &http.Client{})
	if source.URL() != server.URL {
		t.Errorf("URL() = %q, want %q", source.URL(), server.URL)
	}

	entries, err := source.Fetch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestHTTPSourceNetworkError(t *testing.T) {
	// Use a URL that will fail to connect
	source := NewHTTPSource("http://localhost:1")

	_, err := source.Fetch()
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
	if !IsNetworkError(err) {
		t.Errorf("expected NetworkError, got %T: %v", err, err)
	}
}
