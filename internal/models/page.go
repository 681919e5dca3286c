// Package models defines the view models handed to the presentation layer.
// Every value produced by the normalizer is fully populated: lists are never
// nil and section blocks are never nil.
package models

// Hero display modes.
const (
	DisplayText = "text"
	DisplayLogo = "logo"
)

// Section is an open-ended attribute bag for one home page block.
type Section map[string]any

// Hero is the top block of the home page.
type Hero struct {
	Heading     string   `json:"heading"`
	Subheading  string   `json:"subheading"`
	Images      []string `json:"images"`
	DisplayMode string   `json:"displayMode"`
	Logo        string   `json:"logo,omitempty"`
}

// PageContent is the home page view model.
type PageContent struct {
	Title       string  `json:"title"`
	Hero        Hero    `json:"hero"`
	About       Section `json:"about"`
	Technology  Section `json:"technology"`
	Application Section `json:"application"`
	AIModel     Section `json:"aiModel"`
	Pilots      Section `json:"pilots"`
	Partners    Section `json:"partners"`
	Body        string  `json:"body"`
	BodyHTML    string  `json:"bodyHtml"`
}
