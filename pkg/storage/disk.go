// Package storage provides the object-store abstraction behind product
// images.
//
// Two drivers are available out of the box:
//   - "local"  — local filesystem (default, for development)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	// boot once during application startup:
//	storage.Connect()
//
//	storage.Put("images/photo.jpg", data)
//	data, _ := storage.Get("images/photo.jpg")
//	url  := storage.URL("images/photo.jpg")
package storage

import (
	"io"
	"time"
)

// Disk is the driver interface. Writes overwrite silently — the upload
// workflow relies on last-writer-wins semantics.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the object at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the object. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether an object exists at path.
	Exists(path string) bool

	// Size returns the byte size of the object.
	Size(path string) (int64, error)

	// LastModified returns the object's last-modified time.
	LastModified(path string) (time.Time, error)

	// URL returns the public retrieval URL for path. The URL is
	// derived, never checked against the store.
	URL(path string) string

	// Delete removes an object. Deleting a missing local file is not
	// an error; driver semantics apply elsewhere.
	Delete(path string) error

	// Files lists names directly inside directory (non-recursive).
	Files(directory string) ([]string, error)

	// AllFiles lists every name under directory, recursively.
	AllFiles(directory string) ([]string, error)
}
