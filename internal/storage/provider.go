// Package storage defines the content file-system abstraction.
package storage

import "time"

// Entry describes one file found under the content root.
type Entry struct {
	// Path is relative to the content root, slash separated.
	Path string
	// Stem is the base name without extension; it is the record id.
	Stem    string
	ModTime time.Time
}

// Provider is the interface for content file access.
type Provider interface {
	// Glob returns files under the root matching a slash-separated pattern, sorted by path.
	Glob(pattern string) ([]Entry, error)
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Root returns the absolute root directory.
	Root() string
}
