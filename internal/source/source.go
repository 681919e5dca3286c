// Package source implements the content store adapters. Each adapter maps
// its own raw shape into content.Record; none of them fills defaults.
package source

import (
	"context"
	"strings"

	"github.com/starford/osirris/internal/content"
)

// Source names.
const (
	NameRemote = "remote"
	NameLocal  = "local"
)

// Source retrieves raw content records.
type Source interface {
	// Name identifies the source in logs, metrics and audit rows.
	Name() string
	// Fetch returns the record stored at key in a collection.
	Fetch(ctx context.Context, c content.Collection, key string) content.Result
	// FetchAll returns every record in a list collection.
	FetchAll(ctx context.Context, c content.Collection) content.Result
}

// validKey rejects keys that could escape a collection or act as a glob.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, ".") {
		return false
	}
	return !strings.ContainsAny(key, `/\*?[]{}`)
}
