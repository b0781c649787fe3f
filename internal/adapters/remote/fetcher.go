// Package remote downloads remote assets over HTTP.
package remote

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultTimeout bounds a whole request, body included.
	DefaultTimeout = 30 * time.Second

	// MaxBodySize caps the size of a downloaded asset.
	MaxBodySize = 16 << 20
)

// Fetcher implements ports.RemoteFetcher on an http.Client.
type Fetcher struct {
	client *http.Client
}

var _ ports.RemoteFetcher = (*Fetcher)(nil)

// New creates a Fetcher whose requests time out after timeout.
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads url. Scheme-relative URLs are fetched over https.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, "//") {
		url = "https:" + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteFetchFailed.Error()), "url", url)
	}

	//nolint:gosec // URL comes from a registered remote namespace
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteFetchFailed.Error()), "url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(domain.ErrRemoteFetchFailed, "url", url)
		return nil, zerr.With(err, "status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteFetchFailed.Error()), "url", url)
	}
	if len(body) > MaxBodySize {
		err := zerr.With(domain.ErrRemoteFetchFailed, "url", url)
		return nil, zerr.With(err, "limit", MaxBodySize)
	}
	return body, nil
}
