// Package testutil provides shared test helpers for content trees and databases.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/osirris/internal/audit"
	"github.com/starford/osirris/internal/storage"
)

// TestAuditDB creates a temporary SQLite audit log that is automatically cleaned up.
func TestAuditDB(t *testing.T) *audit.Log {
	t.Helper()
	dbFile, err := os.CreateTemp("", "osirris-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := audit.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ContentTree writes files (relative path to contents) under a temporary
// content root and returns the root with a storage.FS over it.
func ContentTree(t *testing.T, files map[string]string) (string, *storage.FS) {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}
