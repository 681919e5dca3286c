// Package normalize turns canonical content records into fully populated
// view models. Every function here is pure: it performs no I/O, never fails,
// and gives the same output for the same input and clock.
package normalize

import (
	"strings"
	"time"

	"github.com/starford/osirris/internal/content"
	"github.com/starford/osirris/internal/defaults"
	"github.com/starford/osirris/internal/markdown"
	"github.com/starford/osirris/internal/models"
)

// ExcerptLength is the maximum rune length of a derived excerpt.
const ExcerptLength = 160

// Normalizer fills view models from raw records and default templates.
type Normalizer struct {
	now func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock sets the clock used for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func fieldsOf(rec *content.Record) map[string]any {
	if rec == nil {
		return nil
	}
	return rec.Fields
}

func bodyOf(rec *content.Record) string {
	if rec == nil {
		return ""
	}
	return strings.TrimSpace(rec.Body)
}

// Page normalizes the home page record. A nil record yields the template.
func (n *Normalizer) Page(rec *content.Record) models.PageContent {
	p := defaults.Page()
	f := fieldsOf(rec)

	p.Title = textOr(f, "title", p.Title)
	p.Hero.Heading = textOr(f, "hero.heading", p.Hero.Heading)
	p.Hero.Subheading = textOr(f, "hero.subheading", p.Hero.Subheading)
	p.Hero.Logo = textOr(f, "hero.logo", "")
	p.Hero.Images = images(f, "hero.images")
	if mode, ok := text(f, "hero.displayMode"); ok && (mode == models.DisplayText || mode == models.DisplayLogo) {
		p.Hero.DisplayMode = mode
	}

	p.About = section(f, "about")
	p.Technology = section(f, "technology")
	p.Application = section(f, "application")
	p.AIModel = section(f, "aiModel")
	p.Pilots = section(f, "pilots")
	p.Partners = section(f, "partners")

	if body := bodyOf(rec); body != "" {
		p.Body = body
	}
	p.BodyHTML = markdown.ToHTML(p.Body)
	return p
}

// Global normalizes the global settings record.
func (n *Normalizer) Global(rec *content.Record) models.GlobalSettings {
	g := defaults.Global(n.now().Year())
	f := fieldsOf(rec)

	g.Header.Logo = textOr(f, "header.logo", "")
	for _, v := range list(f, "header.navLinks") {
		m, ok := content.AsMap(v)
		if !ok {
			continue
		}
		link := models.NavLink{Label: textOr(m, "label", ""), Href: textOr(m, "href", "")}
		if link.Validate() == nil {
			g.Header.NavLinks = append(g.Header.NavLinks, link)
		}
	}

	g.Footer.Logo = textOr(f, "footer.logo", "")
	g.Footer.Copyright = textOr(f, "footer.copyright", g.Footer.Copyright)
	for _, v := range list(f, "footer.socialLinks") {
		m, ok := content.AsMap(v)
		if !ok {
			continue
		}
		link := models.SocialLink{Platform: textOr(m, "platform", ""), URL: textOr(m, "url", "")}
		if link.Validate() == nil {
			g.Footer.SocialLinks = append(g.Footer.SocialLinks, link)
		}
	}
	if t, ok := text(f, "footer.funding.text"); ok {
		g.Footer.Funding = &models.Funding{Text: t, Logo: textOr(f, "footer.funding.logo", "")}
	}
	return g
}

// Post normalizes one blog post record. The id always comes from the record.
// A missing date falls back to the record's modification time; records
// without one keep an empty date.
func (n *Normalizer) Post(rec *content.Record) models.BlogPost {
	id, fallback := "", ""
	if rec != nil {
		id = rec.ID
		if !rec.ModTime.IsZero() {
			fallback = rec.ModTime.UTC().Format(time.RFC3339)
		}
	}
	p := defaults.Post(id, fallback)
	f := fieldsOf(rec)

	p.Title = textOr(f, "title", p.Title)
	p.Image = imageURL(textOr(f, "image", p.Image))
	p.Category = textOr(f, "category", p.Category)
	if d, ok := date(f, "date"); ok {
		p.Date = d
	}
	p.ReadTime = textOr(f, "readTime", p.ReadTime)
	p.Author = textOr(f, "author", p.Author)
	p.AuthorRole = textOr(f, "authorRole", p.AuthorRole)
	p.Featured = flag(f, "featured")

	if body := bodyOf(rec); body != "" {
		p.Body = body
	}
	p.Excerpt = textOr(f, "excerpt", "")
	if p.Excerpt == "" && p.Body != defaults.PostBody {
		p.Excerpt = markdown.Excerpt(p.Body, ExcerptLength)
	}
	p.BodyHTML = markdown.ToHTML(p.Body)
	return p
}

// Posts normalizes a list of blog post records, keeping their order.
func (n *Normalizer) Posts(recs []content.Record) []models.BlogPost {
	out := make([]models.BlogPost, 0, len(recs))
	for i := range recs {
		out = append(out, n.Post(&recs[i]))
	}
	return out
}

// MediaItem normalizes one gallery record. Videos without a URL are shown
// as photos.
func (n *Normalizer) MediaItem(rec *content.Record) models.MediaItem {
	id := ""
	if rec != nil {
		id = rec.ID
	}
	m := defaults.MediaItem(id)
	f := fieldsOf(rec)

	m.Title = textOr(f, "title", m.Title)
	m.Image = imageURL(textOr(f, "image", m.Image))
	m.Category = textOr(f, "category", m.Category)
	m.Description = textOr(f, "description", "")
	m.VideoURL = textOr(f, "videoUrl", "")
	if d, ok := date(f, "date"); ok {
		m.Date = d
	}
	switch strings.ToLower(textOr(f, "type", "")) {
	case "video", "videos":
		m.Type = models.MediaVideo
	case "photo", "photos":
		m.Type = models.MediaPhoto
	}
	if m.Type == models.MediaVideo && m.VideoURL == "" {
		m.Type = models.MediaPhoto
	}
	return m
}

// Media normalizes gallery records, dropping entries that fail validation.
func (n *Normalizer) Media(recs []content.Record) []models.MediaItem {
	out := make([]models.MediaItem, 0, len(recs))
	for i := range recs {
		m := n.MediaItem(&recs[i])
		if m.Validate() != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Publication normalizes one publication record.
func (n *Normalizer) Publication(rec *content.Record) models.Publication {
	id := ""
	if rec != nil {
		id = rec.ID
	}
	p := defaults.Publication(id)
	f := fieldsOf(rec)

	p.Title = textOr(f, "title", p.Title)
	p.Journal = textOr(f, "journal", "")
	p.Year = textOr(f, "year", "")
	p.FileSize = textOr(f, "fileSize", "")
	p.Downloads = max(number(f, "downloads"), 0)
	p.Category = textOr(f, "category", p.Category)
	p.PDFURL = textOr(f, "pdfUrl", "")
	color := strings.ToLower(textOr(f, "color", p.Color))
	for _, c := range models.BadgeColors {
		if c == color {
			p.Color = c
			break
		}
	}
	return p
}

// Publications normalizes publication records, dropping invalid entries.
func (n *Normalizer) Publications(recs []content.Record) []models.Publication {
	out := make([]models.Publication, 0, len(recs))
	for i := range recs {
		p := n.Publication(&recs[i])
		if p.Validate() != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
