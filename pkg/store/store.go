// Package store publishes rendered documents to save targets: a local
// directory or an S3 bucket.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a stored document doesn't exist.
var ErrNotFound = errors.New("store: document not found")

// ErrInvalidName is returned for empty names or names that escape the
// store root.
var ErrInvalidName = errors.New("store: invalid document name")

// Store is a save target for rendered documents.
type Store interface {
	// Put stores body under name and returns its location.
	Put(ctx context.Context, name string, body io.Reader, contentType string) (string, error)

	// Get opens a stored document.
	Get(ctx context.Context, name string) (io.ReadCloser, error)
}

// Target is a parsed output location.
type Target struct {
	// Scheme is "s3" or "file".
	Scheme string

	// Bucket is set for s3 targets.
	Bucket string

	// Dir is the directory (file) or key prefix (s3) the store is rooted at.
	Dir string

	// Name is the document name within the store.
	Name string
}

// ParseTarget splits an output location into store root and name.
// "s3://bucket/reports/a.html" yields bucket "bucket", dir "reports" and
// name "a.html"; anything else is a local path.
func ParseTarget(location string) (Target, error) {
	if rest, ok := strings.CutPrefix(location, "s3://"); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return Target{}, ErrInvalidName
		}
		dir, name := path.Split(key)
		return Target{Scheme: "s3", Bucket: bucket, Dir: strings.TrimSuffix(dir, "/"), Name: name}, nil
	}

	location = strings.TrimPrefix(location, "file://")
	dir, name := filepath.Split(location)
	if name == "" {
		return Target{}, ErrInvalidName
	}
	if dir == "" {
		dir = "."
	}
	return Target{Scheme: "file", Dir: filepath.Clean(dir), Name: name}, nil
}

// cleanName normalizes a document name and rejects names that would leave
// the store root.
func cleanName(name string) (string, error) {
	if name == "" {
		return "", ErrInvalidName
	}
	clean := path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))[1:]
	if clean == "" || clean != strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "./") {
		return "", ErrInvalidName
	}
	return clean, nil
}

// Open returns the store for t. S3 targets use a client built from opts.
func Open(t Target, opts S3Options) (Store, error) {
	switch t.Scheme {
	case "s3":
		return NewS3Store(NewS3Client(opts), t.Bucket, t.Dir), nil
	case "file", "":
		return NewDiskStore(t.Dir)
	default:
		return nil, fmt.Errorf("store: unsupported scheme %q", t.Scheme)
	}
}
