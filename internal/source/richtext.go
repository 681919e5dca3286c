package source

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/starford/osirris/internal/content"
)

var htmlConverter = func() *md.Converter {
	c := md.NewConverter("", true, nil)
	c.Use(plugin.GitHubFlavored())
	return c
}()

// RichTextToMarkdown flattens a CMS rich-text tree into markdown. A string
// holding an HTML fragment is converted; any other string is returned
// unchanged. Unknown node types contribute their text.
func RichTextToMarkdown(v any) string {
	switch x := v.(type) {
	case string:
		if looksLikeHTML(x) {
			return htmlToMarkdown(x)
		}
		return x
	case nil:
		return ""
	}
	var b strings.Builder
	writeBlock(&b, v)
	return strings.TrimSpace(b.String())
}

func writeBlock(b *strings.Builder, v any) {
	node, ok := content.AsMap(v)
	if !ok {
		return
	}
	typ, _ := node["type"].(string)
	switch typ {
	case "root":
		for _, child := range children(node) {
			writeBlock(b, child)
		}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.WriteString(strings.Repeat("#", int(typ[1]-'0')))
		b.WriteString(" ")
		b.WriteString(inline(node))
		b.WriteString("\n\n")
	case "blockquote":
		b.WriteString("> ")
		b.WriteString(inline(node))
		b.WriteString("\n\n")
	case "ul", "ol":
		for i, item := range children(node) {
			if typ == "ol" {
				fmt.Fprintf(b, "%d. ", i+1)
			} else {
				b.WriteString("- ")
			}
			b.WriteString(inline(item))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	case "code_block":
		lang, _ := node["lang"].(string)
		value, _ := node["value"].(string)
		b.WriteString("```" + lang + "\n" + value + "\n```\n\n")
	case "hr":
		b.WriteString("---\n\n")
	case "img":
		b.WriteString(inline(node))
		b.WriteString("\n\n")
	default:
		if text := inline(node); text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}
}

func inline(v any) string {
	node, ok := content.AsMap(v)
	if !ok {
		return ""
	}
	typ, _ := node["type"].(string)
	switch typ {
	case "text":
		text, _ := node["text"].(string)
		if text == "" {
			return ""
		}
		if code, _ := node["code"].(bool); code {
			return "`" + text + "`"
		}
		if bold, _ := node["bold"].(bool); bold {
			text = "**" + text + "**"
		}
		if italic, _ := node["italic"].(bool); italic {
			text = "_" + text + "_"
		}
		return text
	case "a":
		url, _ := node["url"].(string)
		return "[" + joinInline(node) + "](" + url + ")"
	case "img":
		url, _ := node["url"].(string)
		alt, _ := node["alt"].(string)
		return "![" + alt + "](" + url + ")"
	case "break":
		return "\n"
	}
	return joinInline(node)
}

func joinInline(node map[string]any) string {
	var b strings.Builder
	for _, child := range children(node) {
		b.WriteString(inline(child))
	}
	return b.String()
}

func children(node map[string]any) []any {
	c, _ := node["children"].([]any)
	return c
}

func looksLikeHTML(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "<") && strings.Contains(s, "</")
}

// htmlToMarkdown converts an HTML body. On failure the input is kept so the
// text still reaches the page.
func htmlToMarkdown(s string) string {
	out, err := htmlConverter.ConvertString(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(out)
}
