package parser

import (
	"errors"
	"testing"

	"github.com/starford/osirris/internal/apperr"
)

func TestParse_YAMLFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: \"Field Trial Results\"\nhero:\n  heading: Hi\n---\n\n# Results\nBody text.\n")
	doc, err := Parse("index.mdx", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Fields["title"] != "Field Trial Results" {
		t.Errorf("title = %v", doc.Fields["title"])
	}
	hero, ok := doc.Fields["hero"].(map[string]any)
	if !ok || hero["heading"] != "Hi" {
		t.Errorf("hero = %#v", doc.Fields["hero"])
	}
	if doc.Body != "# Results\nBody text.\n" {
		t.Errorf("body = %q", doc.Body)
	}
}

func TestParse_TOMLFrontmatter(t *testing.T) {
	input := []byte("+++\ntitle = \"Sensors\"\ncategory = \"IoT\"\n+++\nText\n")
	doc, err := Parse("sensors.md", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Fields["title"] != "Sensors" || doc.Fields["category"] != "IoT" {
		t.Errorf("fields = %v", doc.Fields)
	}
	if doc.Body != "Text\n" {
		t.Errorf("body = %q", doc.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	doc, err := Parse("plain.md", []byte("Just text.\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Fields) != 0 {
		t.Errorf("expected no fields, got %v", doc.Fields)
	}
	if doc.Body != "Just text.\n" {
		t.Errorf("body = %q", doc.Body)
	}
}

func TestParse_InvalidYAMLIsMalformed(t *testing.T) {
	_, err := Parse("bad.md", []byte("---\n: invalid: yaml: {{{\n---\nBody\n"))
	if !errors.Is(err, apperr.ErrMalformedContent) {
		t.Fatalf("err = %v, want ErrMalformedContent", err)
	}
}

func TestParse_JSONMovesBody(t *testing.T) {
	doc, err := Parse("index.json", []byte(`{"header":{"navLinks":[]},"body":"hello"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Body != "hello" {
		t.Errorf("body = %q", doc.Body)
	}
	if _, ok := doc.Fields["body"]; ok {
		t.Error("body should be removed from fields")
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse("index.json", []byte(`{"header":`))
	if !errors.Is(err, apperr.ErrMalformedContent) {
		t.Fatalf("err = %v, want ErrMalformedContent", err)
	}
}

func TestParse_UnsupportedExtension(t *testing.T) {
	if Supported("photo.png") {
		t.Error("png should not be supported")
	}
	if _, err := Parse("photo.png", []byte{0x89}); !errors.Is(err, apperr.ErrMalformedContent) {
		t.Errorf("err = %v", err)
	}
}
