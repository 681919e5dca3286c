// Package listing sorts and filters resolved collections for the blog and
// media pages.
package listing

import (
	"slices"
	"strings"
	"time"

	"github.com/starford/osirris/internal/models"
)

// AllCategories is the pseudo category that disables the category filter.
const AllCategories = "All"

// Media type filters.
const (
	TypeAll    = "all"
	TypePhotos = "photos"
	TypeVideos = "videos"
)

// BlogQuery filters the blog listing.
type BlogQuery struct {
	Category string
	Query    string
}

// MediaQuery filters the gallery.
type MediaQuery struct {
	Type string
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortPosts orders posts newest first. Posts with unparseable dates go last,
// and ties keep their input order.
func SortPosts(posts []models.BlogPost) {
	slices.SortStableFunc(posts, func(a, b models.BlogPost) int {
		ta, okA := parseDate(a.Date)
		tb, okB := parseDate(b.Date)
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
}

// FilterPosts returns the posts matching q. An empty category or "All"
// matches every category; the query matches title or excerpt, ignoring case.
func FilterPosts(posts []models.BlogPost, q BlogQuery) []models.BlogPost {
	category := strings.TrimSpace(q.Category)
	needle := strings.ToLower(strings.TrimSpace(q.Query))
	out := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Excerpt), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the first featured post, or nil.
func Featured(posts []models.BlogPost) *models.BlogPost {
	for i := range posts {
		if posts[i].Featured {
			p := posts[i]
			return &p
		}
	}
	return nil
}

// Categories returns "All" followed by each distinct post category in first
// seen order.
func Categories(posts []models.BlogPost) []string {
	out := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, p := range posts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// FilterMedia keeps the items of the requested type. Unknown types match all.
func FilterMedia(items []models.MediaItem, q MediaQuery) []models.MediaItem {
	var want models.MediaType
	switch strings.ToLower(strings.TrimSpace(q.Type)) {
	case TypePhotos, string(models.MediaPhoto):
		want = models.MediaPhoto
	case TypeVideos, string(models.MediaVideo):
		want = models.MediaVideo
	default:
		return items
	}
	out := make([]models.MediaItem, 0, len(items))
	for _, m := range items {
		if m.Type == want {
			out = append(out, m)
		}
	}
	return out
}
