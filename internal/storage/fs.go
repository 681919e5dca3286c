package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the content directory
	fsys fs.FS
}

// NewFS creates a new FS provider rooted at the given directory. The
// directory does not have to exist; a missing root simply has no files.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs, fsys: os.DirFS(abs)}, nil
}

// Root returns the absolute root directory.
func (f *FS) Root() string { return f.root }

// safePath resolves a relative path against the root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(rel, "/") {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: path escapes content root: %s", rel)
	}
	return abs, nil
}

// Glob matches pattern against regular files under the root.
func (f *FS) Glob(pattern string) ([]Entry, error) {
	if strings.HasPrefix(pattern, "/") || strings.Contains(pattern, "..") {
		return nil, fmt.Errorf("storage: invalid pattern: %s", pattern)
	}
	if _, err := os.Stat(f.root); os.IsNotExist(err) {
		return nil, nil
	}
	matches, err := doublestar.Glob(f.fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("storage: glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		info, err := fs.Stat(f.fsys, m)
		if err != nil {
			continue
		}
		base := path.Base(m)
		if strings.HasPrefix(base, ".") {
			continue
		}
		out = append(out, Entry{
			Path:    m,
			Stem:    strings.TrimSuffix(base, path.Ext(base)),
			ModTime: info.ModTime(),
		})
	}
	return out, nil
}

// Read returns the raw bytes of a content file.
func (f *FS) Read(p string) ([]byte, error) {
	abs, err := f.safePath(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", p, err)
	}
	return data, nil
}

// Write atomically writes content: tmp file → fsync → rename. It is used by
// the static export, never by page resolution.
func (f *FS) Write(p string, content []byte) error {
	abs, err := f.safePath(p)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".osirris-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("storage: chmod: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
