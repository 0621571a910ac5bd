package pagelens

// BlockKind classifies an extracted content unit.
type BlockKind string

// Block kinds. The set is closed; new kinds require a new constant here and
// explicit handling in the serializer.
const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindCode      BlockKind = "code"
)

// Region is the coarse page zone a block belongs to, inferred from the
// nearest semantic ancestor element.
type Region string

// Page regions. RegionMain is the default when no semantic ancestor matches.
const (
	RegionMain       Region = "main"
	RegionHeader     Region = "header"
	RegionNav        Region = "nav"
	RegionAside      Region = "aside"
	RegionFooter     Region = "footer"
	RegionReferences Region = "references"
)

// Block represents one classified content unit extracted from a page.
type Block struct {
	// ID is unique within a single extraction run, assigned in document
	// order ("b0", "b1", ...).
	ID string `json:"id"`

	// Kind is the block classification.
	Kind BlockKind `json:"kind"`

	// Level is the heading depth (1-6). Zero for non-heading blocks.
	Level int `json:"level,omitempty"`

	// Text is the whitespace-normalized plain text of the block.
	Text string `json:"text"`

	// HeadingPath lists ancestor heading texts from outermost to innermost.
	// A heading block includes its own text as the final entry.
	HeadingPath []string `json:"headingPath,omitempty"`

	// Region is the page zone the block was found in.
	Region Region `json:"region"`

	// TagName is the lowercase tag of the originating element, kept as
	// provenance (e.g. distinguishing pre from code).
	TagName string `json:"tagName"`
}

// PageStructure is an ordered sequence of blocks in document order.
// It is built fresh on every extraction and never mutated afterwards.
type PageStructure struct {
	Blocks []Block `json:"blocks"`
}

// Extractor extracts the visible structure of an HTML page as typed blocks.
type Extractor interface {
	// Extract parses the HTML and walks it once, classifying elements into
	// heading, paragraph, and code blocks. A page with no qualifying
	// content yields a structure with no blocks, not an error.
	Extract(html string) (*PageStructure, error)
}
