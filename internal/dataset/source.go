package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the versioned tidytuesday directory holding the five CSVs.
const DefaultBaseURL = "https://raw.githubusercontent.com/rfordatascience/tidytuesday/main/data/2020/2020-03-10"

// Source opens the raw CSV stream for a dataset.
type Source interface {
	Open(ctx context.Context, id ID) (io.ReadCloser, error)
}

// HTTPSource fetches <BaseURL>/<id>.csv. It never retries and never caches.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns a source with the given base URL and request timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// URL returns the address a dataset is fetched from.
func (s *HTTPSource) URL(id ID) string {
	return s.BaseURL + "/" + string(id) + ".csv"
}

func (s *HTTPSource) Open(ctx context.Context, id ID) (io.ReadCloser, error) {
	url := s.URL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Dataset: id, URL: url, Err: err}
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Dataset: id, URL: url, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		resp.Body.Close()
		return nil, &FetchError{Dataset: id, URL: url, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

// DirSource reads <dir>/<id>.csv from a local mirror.
type DirSource string

func (d DirSource) Open(_ context.Context, id ID) (io.ReadCloser, error) {
	path := filepath.Join(string(d), string(id)+".csv")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FetchError{Dataset: id, URL: path, Err: err}
		}
		return nil, &FetchError{Dataset: id, URL: path, Err: fmt.Errorf("open: %w", err)}
	}
	return f, nil
}

// MemSource serves CSV text held in memory, keyed by dataset.
type MemSource map[ID]string

func (m MemSource) Open(_ context.Context, id ID) (io.ReadCloser, error) {
	body, ok := m[id]
	if !ok {
		return nil, &FetchError{Dataset: id, Err: fs.ErrNotExist}
	}
	return io.NopCloser(strings.NewReader(body)), nil
}
