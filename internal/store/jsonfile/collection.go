// Package jsonfile implements the file-backed store: one flat JSON
// document per collection, read and rewritten wholesale on every
// operation. A per-collection mutex makes each read-modify-write
// atomic, so concurrent writers cannot lose updates; there are no
// transactions beyond the whole-file overwrite.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a whole-file JSON document of type T guarded by a
// mutex. T is the document root, e.g. a struct holding a single slice.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// Open loads a collection from path, creating the file with the zero
// document if it does not exist. Malformed content fails immediately
// rather than on first use.
func Open[T any](path string) (*Collection[T], error) {
	c := &Collection[T]{path: path}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		var zero T
		if err := c.persist(&zero); err != nil {
			return nil, err
		}
		return c, nil
	}

	var doc T
	if err := c.load(&doc); err != nil {
		return nil, err
	}
	return c, nil
}

// View reads the document from disk and calls fn on it. fn must not
// retain the document past the call.
func (c *Collection[T]) View(fn func(doc *T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doc T
	if err := c.load(&doc); err != nil {
		return err
	}
	return fn(&doc)
}

// Update reads the document, applies fn and rewrites the whole file.
// If fn returns an error the file is left untouched.
func (c *Collection[T]) Update(fn func(doc *T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doc T
	if err := c.load(&doc); err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return c.persist(&doc)
}

func (c *Collection[T]) load(doc *T) error {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.path, err)
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("parse %s: %w", c.path, err)
	}
	return nil
}

func (c *Collection[T]) persist(doc *T) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
