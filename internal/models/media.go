package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

// MediaType distinguishes gallery photos from videos.
type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

// MediaItem is one gallery entry.
type MediaItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        MediaType `json:"type"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Date        string    `json:"date,omitempty"`
}

// Validate validates the media item. Videos need a video URL.
func (m *MediaItem) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.Type, validation.Required, validation.In(MediaPhoto, MediaVideo)),
		validation.Field(&m.VideoURL, validation.When(m.Type == MediaVideo, validation.Required)),
	)
}

// Badge colors understood by the presentation layer.
var BadgeColors = []string{"blue", "emerald", "purple", "amber", "cyan"}

// Publication is one downloadable paper.
type Publication struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Journal   string `json:"journal"`
	Year      string `json:"year"`
	FileSize  string `json:"fileSize,omitempty"`
	Downloads int    `json:"downloads,omitempty"`
	Category  string `json:"category"`
	Color     string `json:"color,omitempty"`
	PDFURL    string `json:"pdfUrl,omitempty"`
}

// Validate validates the publication.
func (p *Publication) Validate() error {
	colors := make([]any, len(BadgeColors))
	for i, c := range BadgeColors {
		colors[i] = c
	}
	return validation.ValidateStruct(p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Color, validation.In(colors...)),
	)
}
