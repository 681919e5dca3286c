package content

import "time"

// Record is the canonical intermediate shape of one content document.
// Fields holds structured metadata (front-matter or CMS values) and Body
// holds free-form markdown text. ModTime is the last modification time when
// the source knows it.
type Record struct {
	ID      string         `json:"id"`
	Fields  map[string]any `json:"fields"`
	Body    string         `json:"body"`
	ModTime time.Time      `json:"modTime,omitzero"`
}

// Get returns the value at a dotted path such as "hero.heading".
func (r *Record) Get(path string) (any, bool) {
	if r == nil || r.Fields == nil {
		return nil, false
	}
	return Lookup(r.Fields, path)
}

// Lookup walks nested maps following a dotted path.
func Lookup(m map[string]any, path string) (any, bool) {
	cur := any(m)
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '.' {
			continue
		}
		obj, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		v, ok := obj[path[start:i]]
		if !ok || v == nil {
			return nil, false
		}
		cur = v
		start = i + 1
	}
	return cur, true
}

// asMap accepts both decoder flavours of nested objects.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if s, ok := k.(string); ok {
				out[s] = val
			}
		}
		return out, true
	}
	return nil, false
}

// AsMap converts a decoded nested object into map[string]any.
func AsMap(v any) (map[string]any, bool) { return asMap(v) }
