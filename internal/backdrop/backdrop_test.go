package backdrop_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mrs-board/internal/backdrop"
	"github.com/leighmacdonald/mrs-board/internal/cache"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := range 8 {
		for y := range 8 {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 200, A: 255})
		}
	}

	return img
}

func TestDim(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	require.Equal(t, "#000000", backdrop.Dim(white, 0).Hex())
	require.Equal(t, "#999999", backdrop.Dim(white, 0.6).Hex())
	require.Equal(t, "#ffffff", backdrop.Dim(white, 1).Hex())
	require.Equal(t, "#ffffff", backdrop.Dim(white, 7).Hex())
}

func TestRenderDimensions(t *testing.T) {
	for _, opacity := range []float64{0, 0.6} {
		out := backdrop.Render(testImage(), 20, 6, opacity)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 6)
		for _, line := range lines {
			require.Equal(t, 20, lipgloss.Width(line))
		}
	}

	require.Len(t, strings.Split(backdrop.Render(nil, 5, 3, 0.6), "\n"), 3)
	require.Empty(t, backdrop.Render(testImage(), 0, 10, 0.6))
}

type memoryCache map[string][]byte

func (m memoryCache) Get(key string) ([]byte, error) {
	value, found := m[key]
	if !found {
		return nil, cache.ErrCacheMiss
	}

	return value, nil
}

func (m memoryCache) Set(key string, content []byte) error {
	m[key] = content

	return nil
}

func TestFetch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/ok.png":
			_, _ = w.Write(buf.Bytes())
		case "/garbage.png":
			_, _ = w.Write([]byte("not an image"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	fetcher := backdrop.NewFetcher(server.Client(), memoryCache{})

	img, err := fetcher.Fetch(t.Context(), server.URL+"/ok.png")
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dx())

	// Served from the cache the second time.
	_, err = fetcher.Fetch(t.Context(), server.URL+"/ok.png")
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())

	_, errMissing := fetcher.Fetch(t.Context(), server.URL+"/missing.png")
	require.ErrorIs(t, errMissing, backdrop.ErrFetch)

	_, errGarbage := fetcher.Fetch(t.Context(), server.URL+"/garbage.png")
	require.ErrorIs(t, errGarbage, backdrop.ErrDecode)
}
