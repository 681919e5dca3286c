package mcpserver

// ContentLayout describes where Osirris content lives and how each file is
// shaped. Editors (human or LLM) should follow it when authoring content.
const ContentLayout = `# Osirris Content Layout

Content is read from the CMS first, then from files under the content root,
then from built-in defaults. Files follow this layout.

## Directories

| Path | Collection | Kind |
|---|---|---|
| ` + "`pages/index.mdx`" + ` | page | singleton, home page |
| ` + "`global/index.json`" + ` | global | singleton, header and footer |
| ` + "`blog/<slug>.mdx`" + ` | post | one file per post |
| ` + "`media/<id>.md`" + ` | media | one file per gallery item |
| ` + "`publications/<id>.md`" + ` | publication | one file per paper |
| ` + "`uploads/<file>`" + ` | | images served at /uploads/<file> |

The file name without extension is the id. ` + "`water-savings.mdx`" + ` is the post
` + "`water-savings`" + `; case and separators are kept as written.

## File format

Markdown files start with YAML front-matter between ` + "`---`" + ` fences (TOML between
` + "`+++`" + ` also works) followed by the markdown body. JSON, YAML and TOML files
hold fields only; a string ` + "`body`" + ` field becomes the body.

## Fields

- **page**: title, hero{heading, subheading, images[], displayMode (text|logo), logo},
  about, technology, application, aiModel, pilots, partners (free-form objects).
- **global**: header{logo, navLinks[{label, href}]},
  footer{logo, copyright, socialLinks[{platform, url}], funding{text, logo}}.
- **post**: title, excerpt, image, category, date (ISO 8601), readTime, author,
  authorRole, featured (bool). A missing excerpt is taken from the first paragraph.
- **media**: title, type (photo|video), image, category, description, videoUrl, date.
  A video without videoUrl is shown as a photo.
- **publication**: title, journal, year, fileSize, downloads, category,
  color (blue|emerald|purple|amber|cyan), pdfUrl.

Missing or empty fields fall back to defaults; lists are never null.

## Example

` + "```" + `markdown
---
title: Cutting irrigation water by 40%
category: Research
date: 2025-06-01
author: Osirris Team
featured: true
---

Field trials across three pilot farms showed...
` + "```" + `
`
