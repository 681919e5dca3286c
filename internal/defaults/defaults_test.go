package defaults

import "testing"

func TestPage_NoNilCollections(t *testing.T) {
	p := Page()
	if p.Hero.Images == nil {
		t.Error("hero images must not be nil")
	}
	for name, s := range map[string]any{
		"about": p.About, "technology": p.Technology, "application": p.Application,
		"aiModel": p.AIModel, "pilots": p.Pilots, "partners": p.Partners,
	} {
		if s == nil {
			t.Errorf("section %s is nil", name)
		}
	}
}

func TestPage_ReturnsFreshCopies(t *testing.T) {
	a := Page()
	a.Hero.Images = append(a.Hero.Images, "x.jpg")
	a.Technology["k"] = "v"
	b := Page()
	if len(b.Hero.Images) != 0 || len(b.Technology) != 0 {
		t.Error("template mutated through a previous copy")
	}
}

func TestGlobal_Defaults(t *testing.T) {
	g := Global(2026)
	if g.Footer.Copyright != "© 2026 Osirris Project" {
		t.Errorf("copyright = %q", g.Footer.Copyright)
	}
	if g.Header.NavLinks == nil || g.Footer.SocialLinks == nil {
		t.Error("link lists must not be nil")
	}
	if err := g.Validate(); err != nil {
		t.Errorf("default global settings invalid: %v", err)
	}
}

func TestGallery_Valid(t *testing.T) {
	for _, m := range Media() {
		if err := m.Validate(); err != nil {
			t.Errorf("media %s invalid: %v", m.ID, err)
		}
	}
	for _, p := range Publications() {
		if err := p.Validate(); err != nil {
			t.Errorf("publication %s invalid: %v", p.ID, err)
		}
	}
}
