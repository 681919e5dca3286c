package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

// NavLink is one header navigation entry.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Validate validates the nav link.
func (l *NavLink) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Label, validation.Required),
		validation.Field(&l.Href, validation.Required),
	)
}

// SocialLink is one footer social profile.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Validate validates the social link.
func (l *SocialLink) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Platform, validation.Required),
		validation.Field(&l.URL, validation.Required),
	)
}

// Funding is the optional funding acknowledgement in the footer.
type Funding struct {
	Text string `json:"text"`
	Logo string `json:"logo,omitempty"`
}

// Header holds site-wide header settings.
type Header struct {
	Logo     string    `json:"logo,omitempty"`
	NavLinks []NavLink `json:"navLinks"`
}

// Footer holds site-wide footer settings.
type Footer struct {
	Logo        string       `json:"logo,omitempty"`
	Copyright   string       `json:"copyright"`
	SocialLinks []SocialLink `json:"socialLinks"`
	Funding     *Funding     `json:"funding,omitempty"`
}

// GlobalSettings is the global settings singleton.
type GlobalSettings struct {
	Header Header `json:"header"`
	Footer Footer `json:"footer"`
}

// Validate validates the global settings.
func (g *GlobalSettings) Validate() error {
	return validation.ValidateStruct(&g.Footer,
		validation.Field(&g.Footer.Copyright, validation.Required),
	)
}
