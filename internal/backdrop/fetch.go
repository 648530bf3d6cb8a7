// Package backdrop loads the screensaver background images and draws them with terminal cells.
package backdrop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // decoders used by image.Decode
	_ "image/png"
	"io"
	"log/slog"
	"net/http"

	"github.com/leighmacdonald/mrs-board/internal/cache"
)

const maxImageSize = 16 << 20

var (
	ErrFetch  = errors.New("failed to fetch background")
	ErrDecode = errors.New("failed to decode background")
)

// Fetcher downloads background images, keeping the raw bytes in a cache.
type Fetcher struct {
	client *http.Client
	cache  cache.Cache
}

func NewFetcher(client *http.Client, cache cache.Cache) *Fetcher {
	return &Fetcher{client: client, cache: cache}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	body, errCache := f.cache.Get(url)
	if errCache != nil {
		fetched, errFetch := f.download(ctx, url)
		if errFetch != nil {
			return nil, errFetch
		}

		if err := f.cache.Set(url, fetched); err != nil {
			slog.Warn("Failed to cache background", slog.String("url", url), slog.String("error", err.Error()))
		}

		body = fetched
	}

	img, _, errDecode := image.Decode(bytes.NewReader(body))
	if errDecode != nil {
		return nil, errors.Join(errDecode, ErrDecode)
	}

	return img, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if errReq != nil {
		return nil, errors.Join(errReq, ErrFetch)
	}

	resp, errResp := f.client.Do(req)
	if errResp != nil {
		return nil, errors.Join(errResp, ErrFetch)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	body, errRead := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if errRead != nil {
		return nil, errors.Join(errRead, ErrFetch)
	}

	return body, nil
}
