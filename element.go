package rsmd

import "strings"

// Block is a block-level element of the document tree.
type Block interface {
	blockNode()
}

// Inline is an inline element inside block content.
type Inline interface {
	inlineNode()
}

// Heading is an ATX or setext heading, levels 1 through 6.
type Heading struct {
	Level   int
	Content []Inline
}

// Paragraph holds inline content with no other block structure.
type Paragraph struct {
	Content []Inline
}

// CodeBlock is a fenced code block. Lines hold the literal source lines
// between the fences; Language is the info string, if any.
type CodeBlock struct {
	Language string
	Lines    []string
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// UnorderedList is a dash-marked list.
type UnorderedList struct {
	Items []*ListItem
}

// OrderedList is a list marked with "1."-style markers.
type OrderedList struct {
	Items []*ListItem
}

// ListItem wraps the block content of one list entry. A nested list
// appears as an item whose Content is itself a list.
type ListItem struct {
	Content Block
}

// BlockQuote holds the blocks quoted by a run of "> " lines.
type BlockQuote struct {
	Content []Block
}

// Table is a pipe table with one header row and zero or more body rows.
type Table struct {
	Headers []*TableCell
	Body    [][]*TableCell
}

// TableCell is one cell of a table row.
type TableCell struct {
	Content   []Inline
	Alignment Alignment
	IsHeader  bool
}

// Alignment is a table column alignment, taken from the alignment row.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// RawHTML is a line passed through to the output untouched.
type RawHTML struct {
	Content string
}

func (*Heading) blockNode()       {}
func (*Paragraph) blockNode()     {}
func (*CodeBlock) blockNode()     {}
func (*ThematicBreak) blockNode() {}
func (*UnorderedList) blockNode() {}
func (*OrderedList) blockNode()   {}
func (*BlockQuote) blockNode()    {}
func (*Table) blockNode()         {}
func (*RawHTML) blockNode()       {}

// Text is a run of literal text.
type Text struct {
	Content string
}

// Bold is strong emphasis.
type Bold struct {
	Content []Inline
}

// Italic is regular emphasis.
type Italic struct {
	Content []Inline
}

// Link is an inline link with optional title.
type Link struct {
	Text  []Inline
	Title string
	URL   string
}

// Image is an inline image with optional title.
type Image struct {
	Alt   string
	Title string
	URL   string
}

// Code is an inline code span; Content is literal.
type Code struct {
	Content string
}

// placeholder stands in for an emphasis delimiter run while emphasis is
// being resolved. It never appears in parser output.
type placeholder struct {
	delim *delimiter
}

func (*Text) inlineNode()        {}
func (*Bold) inlineNode()        {}
func (*Italic) inlineNode()      {}
func (*Link) inlineNode()        {}
func (*Image) inlineNode()       {}
func (*Code) inlineNode()        {}
func (*placeholder) inlineNode() {}

// Flatten renders inline content as plain text: emphasis wrappers are
// unwrapped, links flatten to their text, images to their alt text.
// Flattening already-flat text is the identity.
func Flatten(inlines []Inline) string {
	var b strings.Builder
	flattenInto(&b, inlines)
	return b.String()
}

func flattenInto(b *strings.Builder, inlines []Inline) {
	for _, el := range inlines {
		switch v := el.(type) {
		case *Text:
			b.WriteString(v.Content)
		case *Bold:
			flattenInto(b, v.Content)
		case *Italic:
			flattenInto(b, v.Content)
		case *Link:
			flattenInto(b, v.Text)
		case *Image:
			b.WriteString(v.Alt)
		case *Code:
			b.WriteString(v.Content)
		}
	}
}
