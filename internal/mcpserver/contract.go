package mcpserver

// ProjectFormatContract describes the canonical project.md format that LLM
// consumers should follow when authoring project content.
const ProjectFormatContract = `# Folio Project Content Contract

Every project folder under the content root holds one ` + "`project.md`" + ` plus
numbered image assets. This document describes the expected shape.

## Structure

` + "```" + `markdown
---
id: my-project          # OPTIONAL - defaults to the folder name
title: My Project       # OPTIONAL - defaults to the folder name
year: 2025              # OPTIONAL - defaults to the current year
link: https://example.com   # OPTIONAL - external project URL
tags: UI/UX, Web App    # OPTIONAL - comma-separated list
featured: true          # OPTIONAL - defaults to false
---

Free-form Markdown description of the project.
` + "```" + `

## Rules

1. **Frontmatter is optional.** A file without a leading ` + "`---`" + ` line is
   treated as pure description with all metadata defaulted.
2. **One ` + "`key: value`" + ` per line.** Blank lines and ` + "`#`" + ` comment lines are
   ignored; lines without a colon are skipped.
3. **Values are coerced by shape**: ` + "`true`" + `/` + "`false`" + ` become booleans,
   numeric values become numbers, comma-containing values become lists
   (items trimmed), anything else stays a string.
4. **Tags must be a list.** A single tag still needs list shape to register;
   a bare scalar is ignored.
5. **Image assets** are numbered from 1 with no gaps: ` + "`1.jpg`" + `, ` + "`2.png`" + `, …
   (jpg, jpeg, png, webp, gif). ` + "`1.{ext}`" + ` doubles as the thumbnail.
   A gap in the numbering ends the gallery.
6. **Encoding** is UTF-8.

## Example

` + "```" + `markdown
---
id: weather-dash
title: Weather Dashboard
year: 2024
link: https://weather.example.com
tags: Data Viz, Web App
featured: true
---

A realtime weather dashboard with hourly forecasts.

Built around a streaming tile renderer.
` + "```" + `
`
