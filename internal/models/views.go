package models

// HomePage is the resolved data for the home page.
type HomePage struct {
	Content PageContent    `json:"content"`
	Global  GlobalSettings `json:"globalSettings"`
}

// BlogPage is the resolved data for the blog listing.
type BlogPage struct {
	Posts      []BlogPost     `json:"posts"`
	Featured   *BlogPost      `json:"featured,omitempty"`
	Categories []string       `json:"categories"`
	Global     GlobalSettings `json:"globalSettings"`
}

// PostPage is the resolved data for a single post. When no source has the
// slug, Found is false and Post holds the default post template.
type PostPage struct {
	Post   BlogPost       `json:"post"`
	Found  bool           `json:"found"`
	Global GlobalSettings `json:"globalSettings"`
}

// MediaPage is the resolved data for the media and publications gallery.
type MediaPage struct {
	Media        []MediaItem    `json:"media"`
	Publications []Publication  `json:"publications"`
	Global       GlobalSettings `json:"globalSettings"`
}
