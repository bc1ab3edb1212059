package sheets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// FetchFunc downloads the raw bytes of a sheet image.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// Cache hands out byte sources for sprite-sheet images, downloading each
// multi-cell sheet at most once. Downloaded sheets are persisted to temporary
// files so that many cards can share one sheet without keeping every sheet in
// memory; Close removes them all.
type Cache struct {
	fetch FetchFunc
	files map[string]string
}

// NewCache creates a sheet cache using fetch for downloads.
func NewCache(fetch FetchFunc) *Cache {
	return &Cache{
		fetch: fetch,
		files: make(map[string]string),
	}
}

// Open returns a readable byte source for the sheet at url.
//
// A 1x1 grid means the sheet is the card itself: it is fetched straight into
// memory and never cached. Anything else is downloaded once, persisted to a
// temporary file, and served from that file on later references.
func (c *Cache) Open(ctx context.Context, url string, gridWidth, gridHeight int) (io.ReadCloser, error) {
	if gridWidth == 1 && gridHeight == 1 {
		data, err := c.fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	if path, ok := c.files[url]; ok {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to reopen cached sheet: %w", err)
		}
		return f, nil
	}

	data, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "cardex-sheet-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write sheet cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write sheet cache file: %w", err)
	}

	c.files[url] = tmp.Name()
	slog.Debug("Cached sheet", "url", url, "path", tmp.Name())

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Close removes every temporary sheet file. It is safe to call once per
// cache on any exit path; after Close the cache is empty.
func (c *Cache) Close() error {
	var errs []error
	for url, path := range c.files {
		if err := os.Remove(path); err != nil {
			errs = append(errs, err)
		}
		delete(c.files, url)
	}
	return errors.Join(errs...)
}
