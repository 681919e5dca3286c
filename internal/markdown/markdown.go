// Package markdown renders content bodies to HTML and extracts plain-text summaries.
package markdown

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// ToHTML renders src as GitHub-flavoured markdown. Raw HTML in the source is
// omitted. A conversion failure yields an empty string.
func ToHTML(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// Excerpt returns the first paragraph of src that is not a heading, image,
// list or fence, truncated to max runes with a trailing ellipsis.
func Excerpt(src string, max int) string {
	for _, block := range strings.Split(src, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" || isStructural(block) {
			continue
		}
		text := strings.Join(strings.Fields(stripInline(block)), " ")
		if text == "" {
			continue
		}
		return truncate(text, max)
	}
	return ""
}

func isStructural(block string) bool {
	for _, p := range []string{"#", "![", "```", "~~~", "- ", "* ", "> ", "|", "<"} {
		if strings.HasPrefix(block, p) {
			return true
		}
	}
	return false
}

var inlineReplacer = strings.NewReplacer("**", "", "__", "", "`", "", "*", "", "_", " ")

func stripInline(s string) string {
	// [label](url) -> label
	var out strings.Builder
	for {
		open := strings.Index(s, "[")
		if open < 0 {
			break
		}
		mid := strings.Index(s[open:], "](")
		if mid < 0 {
			break
		}
		end := strings.Index(s[open+mid:], ")")
		if end < 0 {
			break
		}
		out.WriteString(s[:open])
		out.WriteString(s[open+1 : open+mid])
		s = s[open+mid+end+1:]
	}
	out.WriteString(s)
	return inlineReplacer.Replace(out.String())
}

func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := strings.TrimRight(string(runes[:max]), " ,.;:")
	return cut + "…"
}
