// Package parser splits content files into structured fields and a markdown body.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/starford/osirris/internal/apperr"
)

// Document holds the output of parsing one content file.
type Document struct {
	Fields map[string]any
	Body   string
}

// formats are the front-matter fences we accept: YAML between --- and TOML between +++.
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// bodyKey is the field that carries the body in whole-document formats.
const bodyKey = "body"

// Supported reports whether name has an extension Parse understands.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".markdown", ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// Parse decodes data according to the extension of name. Markdown files are
// split into front-matter and body; JSON, YAML and TOML files are decoded as a
// whole, with a string "body" field moved to Document.Body. Decode failures
// wrap apperr.ErrMalformedContent.
func Parse(name string, data []byte) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".json":
		return parseWhole(name, data, json.Unmarshal)
	case ".yaml", ".yml":
		return parseWhole(name, data, yaml.Unmarshal)
	case ".toml":
		return parseWhole(name, data, toml.Unmarshal)
	case ".md", ".mdx", ".markdown":
		return parseMarkdown(name, data)
	}
	return nil, fmt.Errorf("parser: unsupported extension %q: %w", ext, apperr.ErrMalformedContent)
}

func parseMarkdown(name string, data []byte) (*Document, error) {
	var fm map[string]any
	rest, err := frontmatter.Parse(bytes.NewReader(data), &fm, formats...)
	if err != nil {
		return nil, fmt.Errorf("parser: front-matter in %s: %v: %w", name, err, apperr.ErrMalformedContent)
	}
	if fm == nil {
		fm = map[string]any{}
	}
	return &Document{
		Fields: fm,
		Body:   strings.TrimLeft(string(rest), "\r\n"),
	}, nil
}

func parseWhole(name string, data []byte, unmarshal func([]byte, any) error) (*Document, error) {
	var fields map[string]any
	if err := unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parser: decode %s: %v: %w", name, err, apperr.ErrMalformedContent)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	doc := &Document{Fields: fields}
	if b, ok := fields[bodyKey].(string); ok {
		doc.Body = b
		delete(fields, bodyKey)
	}
	return doc, nil
}
