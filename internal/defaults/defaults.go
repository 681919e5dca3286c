// Package defaults holds the compiled-in default template for every view
// model. The normalizer falls back to these values field by field, and the
// resolver uses them whole when no source yields data.
package defaults

import (
	"fmt"

	"github.com/starford/osirris/internal/models"
)

// SiteName is the project name used in fallback copy.
const SiteName = "Osirris"

// Home page defaults.
const (
	PageTitle       = "Home Page"
	HeroHeading     = "Welcome to Osirris"
	HeroSubheading  = "The future of technology"
	HeroDisplayMode = models.DisplayText
	PageBody        = "This is the content for the home page."
)

// Blog post defaults.
const (
	PostTitle      = "Untitled Post"
	PostImage      = "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=1200&h=800&fit=crop"
	PostCategory   = "General"
	PostReadTime   = "5 min read"
	PostAuthor     = "Osirris Team"
	PostAuthorRole = "Contributor"
	PostBody       = "No content available."
)

// Media and publication defaults.
const (
	MediaTitle       = "Untitled"
	MediaImage       = "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=600&h=600&fit=crop"
	MediaCategory    = "General"
	MediaType        = models.MediaPhoto
	PublicationTitle = "Untitled Publication"
	PublicationColor = "emerald"
)

// Copyright returns the fallback footer copyright for year.
func Copyright(year int) string {
	return fmt.Sprintf("© %d %s Project", year, SiteName)
}

// Page returns the home page template.
func Page() models.PageContent {
	return models.PageContent{
		Title: PageTitle,
		Hero: models.Hero{
			Heading:     HeroHeading,
			Subheading:  HeroSubheading,
			Images:      []string{},
			DisplayMode: HeroDisplayMode,
		},
		About:       models.Section{},
		Technology:  models.Section{},
		Application: models.Section{},
		AIModel:     models.Section{},
		Pilots:      models.Section{},
		Partners:    models.Section{},
		Body:        PageBody,
	}
}

// Global returns the global settings template for year.
func Global(year int) models.GlobalSettings {
	return models.GlobalSettings{
		Header: models.Header{
			NavLinks: []models.NavLink{},
		},
		Footer: models.Footer{
			Copyright:   Copyright(year),
			SocialLinks: []models.SocialLink{},
		},
	}
}

// Post returns the blog post template. date is the fallback ISO date and
// may be empty.
func Post(id, date string) models.BlogPost {
	return models.BlogPost{
		ID:         id,
		Title:      PostTitle,
		Image:      PostImage,
		Category:   PostCategory,
		Date:       date,
		ReadTime:   PostReadTime,
		Author:     PostAuthor,
		AuthorRole: PostAuthorRole,
		Body:       PostBody,
	}
}

// Posts is the static blog listing: there are no placeholder posts.
func Posts() []models.BlogPost {
	return []models.BlogPost{}
}

// MediaItem returns the gallery item template.
func MediaItem(id string) models.MediaItem {
	return models.MediaItem{
		ID:       id,
		Title:    MediaTitle,
		Type:     MediaType,
		Image:    MediaImage,
		Category: MediaCategory,
	}
}

// Publication returns the publication template.
func Publication(id string) models.Publication {
	return models.Publication{
		ID:       id,
		Title:    PublicationTitle,
		Category: PostCategory,
		Color:    PublicationColor,
	}
}
