package normalize

import (
	"reflect"
	"testing"
	"time"

	"github.com/starford/osirris/internal/content"
	"github.com/starford/osirris/internal/defaults"
	"github.com/starford/osirris/internal/models"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func testNormalizer() *Normalizer {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func TestPage_NilRecordIsTemplate(t *testing.T) {
	got := testNormalizer().Page(nil)
	want := defaults.Page()
	if got.Title != want.Title || got.Hero.Heading != want.Hero.Heading || got.Body != want.Body {
		t.Errorf("page = %+v", got)
	}
	if got.Hero.Images == nil || len(got.Hero.Images) != 0 {
		t.Errorf("images = %#v, want empty non-nil", got.Hero.Images)
	}
	if got.Technology == nil || got.Partners == nil || got.AIModel == nil {
		t.Error("sections must not be nil")
	}
}

func TestPage_TitleOnlyKeepsHeroDefaults(t *testing.T) {
	rec := &content.Record{ID: "index", Fields: map[string]any{"title": "Field Trial Results"}}
	got := testNormalizer().Page(rec)
	if got.Title != "Field Trial Results" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Hero.Images) != 0 || got.Hero.Images == nil {
		t.Errorf("images = %#v", got.Hero.Images)
	}
	if got.Hero.Heading != defaults.HeroHeading || got.Hero.Subheading != defaults.HeroSubheading {
		t.Errorf("hero = %+v", got.Hero)
	}
	if got.Hero.DisplayMode != models.DisplayText {
		t.Errorf("displayMode = %q", got.Hero.DisplayMode)
	}
}

func TestPage_EmptyStringsCountAsAbsent(t *testing.T) {
	rec := &content.Record{Fields: map[string]any{
		"title": "  ",
		"hero":  map[string]any{"heading": "", "displayMode": "carousel"},
	}}
	got := testNormalizer().Page(rec)
	if got.Title != defaults.PageTitle || got.Hero.Heading != defaults.HeroHeading {
		t.Errorf("blank values should fall back: %+v", got)
	}
	if got.Hero.DisplayMode != models.DisplayText {
		t.Errorf("unknown display mode should fall back, got %q", got.Hero.DisplayMode)
	}
}

func TestPage_HeroImagesCleaned(t *testing.T) {
	rec := &content.Record{Fields: map[string]any{
		"hero": map[string]any{
			"images": []any{"uploads/a.jpg", " ", "/b.jpg", "https://cdn.example.com/c.jpg", 42},
		},
	}}
	got := testNormalizer().Page(rec).Hero.Images
	want := []string{"/uploads/a.jpg", "/b.jpg", "https://cdn.example.com/c.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("images = %v, want %v", got, want)
	}
}

func TestPage_NonArrayImagesIsAbsent(t *testing.T) {
	rec := &content.Record{Fields: map[string]any{"hero": map[string]any{"images": "a.jpg"}}}
	got := testNormalizer().Page(rec).Hero.Images
	if got == nil || len(got) != 0 {
		t.Errorf("images = %#v, want []", got)
	}
}

func TestPage_SectionsAndBody(t *testing.T) {
	rec := &content.Record{
		Fields: map[string]any{
			"technology": map[string]any{"heading": "Sensors"},
			"pilots":     "not an object",
		},
		Body: "## Hello\n",
	}
	got := testNormalizer().Page(rec)
	if got.Technology["heading"] != "Sensors" {
		t.Errorf("technology = %v", got.Technology)
	}
	if got.Pilots == nil || len(got.Pilots) != 0 {
		t.Errorf("pilots = %#v, want empty section", got.Pilots)
	}
	if got.Body != "## Hello" {
		t.Errorf("body = %q", got.Body)
	}
	if got.BodyHTML == "" {
		t.Error("expected rendered body")
	}
}

func TestGlobal_MissingNavLinks(t *testing.T) {
	rec := &content.Record{Fields: map[string]any{"header": map[string]any{"logo": "/logo.svg"}}}
	got := testNormalizer().Global(rec)
	if got.Header.NavLinks == nil || len(got.Header.NavLinks) != 0 {
		t.Errorf("navLinks = %#v, want []", got.Header.NavLinks)
	}
	if got.Header.Logo != "/logo.svg" {
		t.Errorf("logo = %q", got.Header.Logo)
	}
}

func TestGlobal_NilRecord(t *testing.T) {
	got := testNormalizer().Global(nil)
	if got.Footer.Copyright != "© 2026 Osirris Project" {
		t.Errorf("copyright = %q", got.Footer.Copyright)
	}
	if got.Footer.SocialLinks == nil || len(got.Footer.SocialLinks) != 0 {
		t.Errorf("socialLinks = %#v", got.Footer.SocialLinks)
	}
	if got.Footer.Funding != nil {
		t.Errorf("funding = %+v, want nil", got.Footer.Funding)
	}
}

func TestGlobal_NavLinksNonArray(t *testing.T) {
	rec := &content.Record{Fields: map[string]any{
		"header": map[string]any{"navLinks": map[string]any{"label": "Blog", "href": "/blog"}},
	}}
	got := testNormalizer().Global(rec)
	if got.Header.NavLinks == nil || len(got.Header.NavLinks) != 0 {
		t.Errorf("navLinks = %#v, want []", got.Header.NavLinks)
	}
}

func TestGlobal_LinksAndFunding(t *testing.T) {
	rec := &content.Record{Fields: map[string]any{
		"header": map[string]any{"navLinks": []any{
			map[string]any{"label": "Blog", "href": "/blog"},
			map[string]any{"label": "Broken"},
			"junk",
		}},
		"footer": map[string]any{
			"copyright":   "© Osirris Consortium",
			"socialLinks": []any{map[string]any{"platform": "LinkedIn", "url": "https://linkedin.com/x"}},
			"funding":     map[string]any{"text": "Funded by PRIMA", "logo": "/prima.png"},
		},
	}}
	got := testNormalizer().Global(rec)
	if !reflect.DeepEqual(got.Header.NavLinks, []models.NavLink{{Label: "Blog", Href: "/blog"}}) {
		t.Errorf("navLinks = %+v", got.Header.NavLinks)
	}
	if got.Footer.Copyright != "© Osirris Consortium" {
		t.Errorf("copyright = %q", got.Footer.Copyright)
	}
	if len(got.Footer.SocialLinks) != 1 || got.Footer.SocialLinks[0].Platform != "LinkedIn" {
		t.Errorf("socialLinks = %+v", got.Footer.SocialLinks)
	}
	if got.Footer.Funding == nil || got.Footer.Funding.Text != "Funded by PRIMA" {
		t.Errorf("funding = %+v", got.Footer.Funding)
	}
}

func TestPost_DefaultsAndID(t *testing.T) {
	rec := &content.Record{ID: "water-savings", Fields: map[string]any{"title": "Water Savings"}}
	got := testNormalizer().Post(rec)
	if got.ID != "water-savings" {
		t.Errorf("id = %q", got.ID)
	}
	if got.Category != defaults.PostCategory || got.Author != defaults.PostAuthor || got.ReadTime != defaults.PostReadTime {
		t.Errorf("post = %+v", got)
	}
	if got.Date != "" {
		t.Errorf("date = %q, want empty", got.Date)
	}
	if got.Body != defaults.PostBody || got.Excerpt != "" {
		t.Errorf("body = %q, excerpt = %q", got.Body, got.Excerpt)
	}
}

func TestPost_DateFallsBackToModTime(t *testing.T) {
	mod := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := testNormalizer().Post(&content.Record{ID: "a", ModTime: mod})
	if got.Date != "2025-06-01T12:00:00Z" {
		t.Errorf("date = %q", got.Date)
	}
}

func TestPost_IndependentOfClock(t *testing.T) {
	tick := fixedNow
	n := New(WithClock(func() time.Time {
		tick = tick.Add(time.Hour)
		return tick
	}))
	for _, rec := range []*content.Record{nil, {ID: "nope"}, {ID: "cms", Fields: map[string]any{"title": "From CMS"}}} {
		if a, b := n.Post(rec), n.Post(rec); !reflect.DeepEqual(a, b) {
			t.Errorf("post %+v differs across calls:\n%+v\n%+v", rec, a, b)
		}
	}

	def := New()
	if a, b := def.Post(&content.Record{ID: "nope"}), def.Post(&content.Record{ID: "nope"}); !reflect.DeepEqual(a, b) {
		t.Errorf("default clock: post differs:\n%+v\n%+v", a, b)
	}
}

func TestPost_FieldsAndDerivedExcerpt(t *testing.T) {
	rec := &content.Record{
		ID: "p",
		Fields: map[string]any{
			"date":     time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			"featured": "true",
			"image":    "uploads/p.jpg",
		},
		Body: "# Heading\n\nFirst paragraph here.\n",
	}
	got := testNormalizer().Post(rec)
	if got.Date != "2024-05-02T00:00:00Z" {
		t.Errorf("date = %q", got.Date)
	}
	if !got.Featured {
		t.Error("featured should be true")
	}
	if got.Image != "/uploads/p.jpg" {
		t.Errorf("image = %q", got.Image)
	}
	if got.Excerpt != "First paragraph here." {
		t.Errorf("excerpt = %q", got.Excerpt)
	}
}

func TestMediaItem_VideoWithoutURLBecomesPhoto(t *testing.T) {
	n := testNormalizer()
	got := n.MediaItem(&content.Record{ID: "v", Fields: map[string]any{"type": "video"}})
	if got.Type != models.MediaPhoto {
		t.Errorf("type = %q", got.Type)
	}
	got = n.MediaItem(&content.Record{ID: "v", Fields: map[string]any{"type": "Video", "videoUrl": "https://youtu.be/x"}})
	if got.Type != models.MediaVideo {
		t.Errorf("type = %q", got.Type)
	}
}

func TestMedia_DropsInvalid(t *testing.T) {
	recs := []content.Record{{ID: ""}, {ID: "ok", Fields: map[string]any{"title": "Vineyard"}}}
	got := testNormalizer().Media(recs)
	if len(got) != 1 || got[0].ID != "ok" {
		t.Errorf("media = %+v", got)
	}
}

func TestPublication_Coercions(t *testing.T) {
	rec := &content.Record{ID: "edge-ai", Fields: map[string]any{
		"title":     "Edge AI",
		"year":      2024,
		"downloads": float64(342),
		"color":     "Magenta",
	}}
	got := testNormalizer().Publication(rec)
	if got.Year != "2024" || got.Downloads != 342 {
		t.Errorf("publication = %+v", got)
	}
	if got.Color != defaults.PublicationColor {
		t.Errorf("color = %q", got.Color)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	n := testNormalizer()
	rec := &content.Record{ID: "index", Fields: map[string]any{"title": "T"}, Body: "b"}
	if !reflect.DeepEqual(n.Page(rec), n.Page(rec)) {
		t.Error("page normalization is not deterministic")
	}
	if !reflect.DeepEqual(n.Global(rec), n.Global(rec)) {
		t.Error("global normalization is not deterministic")
	}
}
