package models

// BlogPost is one blog entry. ID is the source filename without extension.
type BlogPost struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Image      string `json:"image"`
	Category   string `json:"category"`
	Date       string `json:"date"`
	ReadTime   string `json:"readTime"`
	Author     string `json:"author"`
	AuthorRole string `json:"authorRole"`
	Featured   bool   `json:"featured"`
	Body       string `json:"body"`
	BodyHTML   string `json:"bodyHtml"`
}
