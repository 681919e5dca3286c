package models

import "testing"

func TestMediaItem_VideoNeedsURL(t *testing.T) {
	m := MediaItem{ID: "5", Type: MediaVideo}
	if err := m.Validate(); err == nil {
		t.Fatal("video without URL should fail validation")
	}
	m.VideoURL = "https://example.com/v.mp4"
	if err := m.Validate(); err != nil {
		t.Errorf("video with URL should pass: %v", err)
	}
}

func TestMediaItem_PhotoWithoutURL(t *testing.T) {
	m := MediaItem{ID: "1", Type: MediaPhoto}
	if err := m.Validate(); err != nil {
		t.Errorf("photo should pass: %v", err)
	}
}

func TestMediaItem_UnknownType(t *testing.T) {
	m := MediaItem{ID: "1", Type: "gif"}
	if err := m.Validate(); err == nil {
		t.Error("unknown type should fail")
	}
}

func TestPublication_Color(t *testing.T) {
	p := Publication{ID: "1", Title: "Edge AI", Color: "blue"}
	if err := p.Validate(); err != nil {
		t.Errorf("blue should pass: %v", err)
	}
	p.Color = "magenta"
	if err := p.Validate(); err == nil {
		t.Error("magenta should fail")
	}
}

func TestNavLink_Validate(t *testing.T) {
	l := NavLink{Label: "Blog"}
	if err := l.Validate(); err == nil {
		t.Error("missing href should fail")
	}
}

func TestGlobalSettings_RequiresCopyright(t *testing.T) {
	g := GlobalSettings{}
	if err := g.Validate(); err == nil {
		t.Error("empty copyright should fail")
	}
	g.Footer.Copyright = "© 2026 Osirris Project"
	if err := g.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
