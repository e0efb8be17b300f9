package catalog

import (
	"io"
	"net/http"
	"time"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/ui"
)

// DefaultURL is the Crystal release metadata endpoint.
const DefaultURL = "https://crystal-lang.org/api/versions.json"

// DefaultHTTPTimeout is the default timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// HTTPSource fetches the catalog with a single GET per call.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates a Source that fetches the catalog from url.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout: DefaultHTTPTimeout,
		},
	}
}

// NewHTTPSourceWithClient creates an HTTPSource with a custom HTTP client.
func NewHTTPSourceWithClient(url string, client *http.Client) *HTTPSource {
	return &HTTPSource{
		url:        url,
		httpClient: client,
	}
}

// URL returns the endpoint this source reads.
func (s *HTTPSource) URL() string {
	return s.url
}

// Fetch requests and parses the catalog. Nothing is cached or retried.
func (s *HTTPSource) Fetch() ([]Entry, error) {
	ui.Debug("Fetching catalog: %s", s.url)

	resp, err := s.httpClient.Get(s.url)
	if err != nil {
		return nil, &NetworkError{URL: s.url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	ui.Debug("Catalog response: %s", resp.Status)

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{URL: s.url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: s.url, Status: resp.StatusCode, Err: err}
	}

	entries, err := ParseCatalog(data)
	if err != nil {
		return nil, &MalformedResponseError{URL: s.url, Err: err}
	}

	ui.Debug("Catalog lists %d entries", len(entries))
	return entries, nil
}
