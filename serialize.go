package pagelens

import (
	"strings"
	"unicode/utf8"
)

// Serialization limits for the structure overview. Non-heading blocks
// shorter than minBlockLen carry too little signal to be worth a prompt
// line; block text longer than maxLineLen is cut to bound token usage.
const (
	minBlockLen = 20
	maxLineLen  = 140
)

// structureHeader precedes the serialized outline and tells the model how to
// read it and how to pick scroll-link target phrases.
const structureHeader = `=== PAGE STRUCTURE OVERVIEW ===
Each line below describes one content block on the page as [KIND] (heading path): text.
When citing the page, quote short literal phrases exactly as they appear so they can be located by text search.`

// SerializeStructure projects a page structure into a compact plain-text
// outline, one line per qualifying block, for embedding in an LLM prompt.
// An empty structure serializes to the empty string with no header.
func SerializeStructure(ps *PageStructure) string {
	if ps == nil || len(ps.Blocks) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(structureHeader)
	sb.WriteString("\n\n")

	for _, b := range ps.Blocks {
		// Short non-headings are noise; short headings ("FAQ") still
		// mark structure.
		if b.Kind != KindHeading && len(b.Text) < minBlockLen {
			continue
		}

		path := "(no heading)"
		if len(b.HeadingPath) > 0 {
			path = strings.Join(b.HeadingPath, " > ")
		}

		text := b.Text
		if len(text) > maxLineLen {
			cut := maxLineLen
			// Back off so the cut never splits a multi-byte rune.
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			text = text[:cut] + "..."
		}

		sb.WriteString("[")
		sb.WriteString(strings.ToUpper(string(b.Kind)))
		sb.WriteString("] (")
		sb.WriteString(path)
		sb.WriteString("): ")
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String()
}
