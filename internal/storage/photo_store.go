// Package storage persists uploaded inspection photos and hands back
// durable URLs. The report model only keeps the URL plus its tags.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PhotoStore accepts image bytes and returns a durable URL for them.
type PhotoStore interface {
	Save(filename string, r io.Reader) (string, error)
}

// FilePhotoStore writes photos under a local directory and serves them via
// a public base URL. Objects are renamed to a uuid so uploads can never
// collide or traverse paths.
type FilePhotoStore struct {
	dir     string
	baseURL string
}

// NewFilePhotoStore creates the backing directory if needed.
func NewFilePhotoStore(dir, baseURL string) (*FilePhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &FilePhotoStore{dir: dir, baseURL: baseURL}, nil
}

// Save stores the image and returns its URL. Only the original extension is
// kept from the client-supplied filename.
func (s *FilePhotoStore) Save(filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write photo file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
