package signals

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Source fetches live signal payloads. Implementations return the raw JSON
// body; the provider decodes and validates it.
type Source interface {
	Fetch(ctx context.Context, signalType string) ([]byte, error)
}

// HTTPSource pulls signal payloads from a JSON endpoint, one resource per
// signal type.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, signalType string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", s.baseURL, signalType)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build signal request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s signal: %w", signalType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s signal: unexpected status %d", signalType, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s signal body: %w", signalType, err)
	}
	return body, nil
}
