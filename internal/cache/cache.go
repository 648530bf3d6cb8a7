// Package cache implements a very trivial filesystem cache.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"
)

const (
	// How long until a entry is considered stale.
	defaultMaxAge = time.Hour * 24 * 7
)

var (
	ErrCacheMiss = errors.New("cache miss error")
	errCacheSet  = errors.New("cache set error")
	errCacheDir  = errors.New("cache dir error")
)

type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, content []byte) error
}

// Filesystem implements the default filesystem based Cache interface.
type Filesystem struct {
	cacheDir string
	maxAge   time.Duration
}

func New(cachePath string) (Filesystem, error) {
	if err := os.MkdirAll(cachePath, 0o700); err != nil {
		slog.Error("Failed to make cache root", slog.String("error", err.Error()),
			slog.String("path", cachePath))

		return Filesystem{}, errors.Join(err, errCacheDir)
	}

	return Filesystem{cacheDir: cachePath, maxAge: defaultMaxAge}, nil
}

// WithMaxAge returns a copy of the cache where entries older than age are treated as misses.
func (c Filesystem) WithMaxAge(age time.Duration) Filesystem {
	c.maxAge = age

	return c
}

func (c Filesystem) Dir() string {
	return c.cacheDir
}

func (c Filesystem) Set(key string, content []byte) error {
	file, errFile := os.Create(c.entryPath(key))
	if errFile != nil {
		return errors.Join(errFile, errCacheSet)
	}

	defer func(file io.Closer) {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close cache file", slog.String("error", err.Error()))
		}
	}(file)

	if _, err := file.Write(content); err != nil {
		return errors.Join(err, errCacheSet)
	}

	return nil
}

func (c Filesystem) Get(key string) ([]byte, error) {
	entryPath := c.entryPath(key)

	stat, errStat := os.Stat(entryPath)
	if errStat != nil {
		return nil, errors.Join(errStat, ErrCacheMiss)
	}

	if time.Since(stat.ModTime()) > c.maxAge {
		if err := os.Remove(entryPath); err != nil {
			return nil, errors.Join(err, ErrCacheMiss)
		}

		return nil, ErrCacheMiss
	}

	body, errRead := os.ReadFile(entryPath)
	if errRead != nil {
		return nil, errors.Join(errRead, ErrCacheMiss)
	}

	return body, nil
}

func (c Filesystem) entryPath(key string) string {
	sum := sha256.Sum256([]byte(key))

	return path.Join(c.cacheDir, hex.EncodeToString(sum[:]))
}
