// Package content defines collections and the canonical raw record that every
// content source produces before normalization.
package content

// Collection describes a named group of content records of one entity type.
type Collection struct {
	// Name is the collection name in the CMS schema.
	Name string
	// Dir is the directory under the content root holding local files.
	Dir string
	// Singleton collections hold exactly one record at a fixed key.
	Singleton bool
	// Ext is the file extension the CMS uses for relative paths.
	Ext string
}

// IndexKey is the fixed key of singleton records.
const IndexKey = "index"

var (
	Pages        = Collection{Name: "page", Dir: "pages", Singleton: true, Ext: ".mdx"}
	Global       = Collection{Name: "global", Dir: "global", Singleton: true, Ext: ".json"}
	Posts        = Collection{Name: "post", Dir: "blog", Ext: ".mdx"}
	Media        = Collection{Name: "media", Dir: "media", Ext: ".md"}
	Publications = Collection{Name: "publication", Dir: "publications", Ext: ".md"}
)

// All lists every known collection.
var All = []Collection{Pages, Global, Posts, Media, Publications}

// ByDir returns the collection stored under dir.
func ByDir(dir string) (Collection, bool) {
	for _, c := range All {
		if c.Dir == dir {
			return c, true
		}
	}
	return Collection{}, false
}

// RelativePath returns the CMS relative path for key, e.g. "index.mdx".
func (c Collection) RelativePath(key string) string {
	return key + c.Ext
}

func (c Collection) String() string { return c.Name }
