// Package html extracts page structure from HTML documents using a single
// depth-first pass over the parse tree.
package html

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagelens"
	"golang.org/x/net/html"
)

// Text length thresholds for conditionally extracted elements. Short table
// cells are structural or numeric rather than prose; generic containers
// need substantial text before they count as content; tiny inline code is
// usually a single identifier.
const (
	minCellLen      = 40
	minContainerLen = 80
	minCodeLen      = 20
)

// Ensure Extractor implements pagelens.Extractor at compile time.
var _ pagelens.Extractor = (*Extractor)(nil)

// Extractor extracts typed content blocks from HTML pages.
// It holds no state; all bookkeeping is local to a single Extract call.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// decision tells the tree walk what to do after visiting an element.
type decision int

const (
	visitChildren decision = iota
	skipSubtree
)

// headingEntry is one level of the running heading-path stack.
type headingEntry struct {
	level int
	text  string
}

// Extract parses the HTML and walks the content root once, in document
// order, emitting heading, paragraph, and code blocks. Pages without a
// main, article, or body element yield an empty structure.
func (e *Extractor) Extract(src string) (*pagelens.PageStructure, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	root := findRoot(doc)
	if root == nil {
		return &pagelens.PageStructure{Blocks: []pagelens.Block{}}, nil
	}

	// Per-call state: the id counter and heading-path stack never outlive
	// one extraction, so repeated calls on the same document are
	// equivalent.
	blocks := []pagelens.Block{}
	counter := 0
	var stack []headingEntry

	emit := func(n *html.Node, kind pagelens.BlockKind, level int, text string, path []string) {
		blocks = append(blocks, pagelens.Block{
			ID:          fmt.Sprintf("b%d", counter),
			Kind:        kind,
			Level:       level,
			Text:        text,
			HeadingPath: path,
			Region:      inferRegion(n),
			TagName:     n.Data,
		})
		counter++
	}

	visit := func(n *html.Node) decision {
		switch n.Data {
		case "script", "style":
			return skipSubtree

		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			text := normalizeText(n)
			// Standard outline semantics: a new heading replaces any
			// open heading at the same or deeper level.
			for len(stack) > 0 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, headingEntry{level: level, text: text})
			emit(n, pagelens.KindHeading, level, text, pathSnapshot(stack))
			return skipSubtree

		case "p", "li", "dd", "blockquote", "figcaption":
			emit(n, pagelens.KindParagraph, 0, normalizeText(n), pathSnapshot(stack))
			return skipSubtree

		case "td", "th":
			text := normalizeText(n)
			if len(text) > minCellLen {
				emit(n, pagelens.KindParagraph, 0, text, pathSnapshot(stack))
				return skipSubtree
			}
			return visitChildren

		case "div", "section", "article":
			text := normalizeText(n)
			if len(text) > minContainerLen && !hasDescendant(n, "p") {
				emit(n, pagelens.KindParagraph, 0, text, pathSnapshot(stack))
				return skipSubtree
			}
			return visitChildren

		case "pre":
			// The nested code child, if any, is part of this block;
			// descending would emit it twice.
			emit(n, pagelens.KindCode, 0, normalizeText(n), pathSnapshot(stack))
			return skipSubtree

		case "code":
			text := normalizeText(n)
			if len(text) > minCodeLen {
				emit(n, pagelens.KindCode, 0, text, pathSnapshot(stack))
				return skipSubtree
			}
			return visitChildren
		}

		return visitChildren
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}

	return &pagelens.PageStructure{Blocks: blocks}, nil
}

// walk visits element nodes depth-first in document order. A skipSubtree
// decision prunes the node's descendants without aborting the walk.
func walk(n *html.Node, visit func(*html.Node) decision) {
	if n.Type == html.ElementNode {
		if visit(n) == skipSubtree {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// findRoot selects the extraction root: the first main element, else the
// first article, else body. Most documentation sites wrap content in one of
// these containers; taking the broadest available scope avoids missing
// content.
func findRoot(doc *html.Node) *html.Node {
	for _, tag := range []string{"main", "article", "body"} {
		if n := findFirst(doc, tag); n != nil {
			return n
		}
	}
	return nil
}

// findFirst returns the first element with the given tag in document order.
func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// normalizeText returns the element's text content with whitespace runs
// collapsed to single spaces and leading/trailing whitespace trimmed.
// Script and style subtrees contribute no text.
func normalizeText(n *html.Node) string {
	var buf strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

// hasDescendant reports whether the node has a descendant element with the
// given tag.
func hasDescendant(n *html.Node, tag string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return true
		}
		if hasDescendant(c, tag) {
			return true
		}
	}
	return false
}

// pathSnapshot copies the heading-path stack texts. Blocks hold their own
// copy because the stack keeps mutating as the walk proceeds.
func pathSnapshot(stack []headingEntry) []string {
	if len(stack) == 0 {
		return nil
	}
	path := make([]string, len(stack))
	for i, e := range stack {
		path[i] = e.text
	}
	return path
}

// inferRegion walks upward from the element looking for a semantic region
// ancestor. The "references" check is a loose substring heuristic over
// id/class attributes, preserved as-is from the original behavior: an
// unrelated class name containing "references" will match too.
func inferRegion(n *html.Node) pagelens.Region {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		switch cur.Data {
		case "header":
			return pagelens.RegionHeader
		case "nav":
			return pagelens.RegionNav
		case "aside":
			return pagelens.RegionAside
		case "footer":
			return pagelens.RegionFooter
		}
		for _, attr := range cur.Attr {
			if attr.Key != "id" && attr.Key != "class" {
				continue
			}
			if strings.Contains(strings.ToLower(attr.Val), "references") {
				return pagelens.RegionReferences
			}
		}
	}
	return pagelens.RegionMain
}
