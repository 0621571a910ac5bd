package pagelens

import (
	"regexp"
	"strings"
)

// ScrollLink is a Markdown link whose target is a literal page phrase.
// The upstream UI scrolls to and highlights the first occurrence of the
// phrase; here links are verified against the extracted structure and
// rewritten to anchors on export.
type ScrollLink struct {
	Label  string `json:"label"`
	Phrase string `json:"phrase"`
}

// scrollLinkRe matches [label](#scroll:phrase) links. Phrases may contain
// any character except a closing parenthesis.
var scrollLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(#scroll:([^)]+)\)`)

// FindScrollLinks returns all scroll links in the answer Markdown, in
// document order. Returns nil if the markdown contains none.
func FindScrollLinks(markdown string) []ScrollLink {
	matches := scrollLinkRe.FindAllStringSubmatch(markdown, -1)
	if len(matches) == 0 {
		return nil
	}

	links := make([]ScrollLink, 0, len(matches))
	for _, m := range matches {
		links = append(links, ScrollLink{
			Label:  m[1],
			Phrase: strings.TrimSpace(m[2]),
		})
	}
	return links
}

// ResolveScrollLink locates the block a scroll link points at: the first
// block whose text contains the phrase. Exact match is tried first, then a
// case-insensitive pass. Returns nil if no block contains the phrase.
func ResolveScrollLink(ps *PageStructure, phrase string) *Block {
	if ps == nil || phrase == "" {
		return nil
	}

	for i := range ps.Blocks {
		if strings.Contains(ps.Blocks[i].Text, phrase) {
			return &ps.Blocks[i]
		}
	}

	lower := strings.ToLower(phrase)
	for i := range ps.Blocks {
		if strings.Contains(strings.ToLower(ps.Blocks[i].Text), lower) {
			return &ps.Blocks[i]
		}
	}

	return nil
}
