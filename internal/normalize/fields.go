package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/starford/osirris/internal/content"
	"github.com/starford/osirris/internal/models"
)

// text returns the value at path as a trimmed string. Blank strings, maps
// and lists count as absent. Numbers, times and Stringers are formatted.
func text(fields map[string]any, path string) (string, bool) {
	if fields == nil {
		return "", false
	}
	v, ok := content.Lookup(fields, path)
	if !ok {
		return "", false
	}
	s, ok := stringify(v)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func textOr(fields map[string]any, path, def string) string {
	if s, ok := text(fields, path); ok {
		return s
	}
	return def
}

func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case time.Time:
		return x.UTC().Format(time.RFC3339), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func flag(fields map[string]any, path string) bool {
	v, ok := content.Lookup(fields, path)
	if !ok {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		return err == nil && b
	}
	return false
}

func number(fields map[string]any, path string) int {
	v, ok := content.Lookup(fields, path)
	if !ok {
		return 0
	}
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case uint64:
		return int(x)
	case float64:
		return int(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err == nil {
			return n
		}
	}
	return 0
}

// list returns the value at path when it is an array. Any other type,
// including a single string or an object, counts as absent.
func list(fields map[string]any, path string) []any {
	v, ok := content.Lookup(fields, path)
	if !ok {
		return nil
	}
	switch x := v.(type) {
	case []any:
		return x
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, m := range x {
			out[i] = m
		}
		return out
	}
	return nil
}

// object returns a copy of the nested object at path, or an empty map.
func object(fields map[string]any, path string) map[string]any {
	v, ok := content.Lookup(fields, path)
	if !ok {
		return map[string]any{}
	}
	m, ok := content.AsMap(v)
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out
}

func section(fields map[string]any, key string) models.Section {
	return models.Section(object(fields, key))
}

// images keeps non-blank string entries and makes relative paths root-relative.
func images(fields map[string]any, path string) []string {
	out := []string{}
	for _, v := range list(fields, path) {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		out = append(out, imageURL(s))
	}
	return out
}

func imageURL(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// date returns an ISO date string from a string or time value.
func date(fields map[string]any, path string) (string, bool) {
	v, ok := content.Lookup(fields, path)
	if !ok {
		return "", false
	}
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339), true
	}
	return text(fields, path)
}
