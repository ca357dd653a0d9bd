// Package ast defines the document tree produced by the markdown parser.
//
// The tree is purely child-owning: no node holds a reference to its parent,
// and a tree is discarded and rebuilt on every parse. Node and its two
// refinements Block and Inline are sealed by unexported marker methods, so
// the full set of variants lives in this package and the renderer can match
// over all of them.
package ast

// Node is any element of the document tree.
type Node interface {
	node()
}

// Block is a node that occupies vertical space of its own.
type Block interface {
	Node
	block()
}

// Inline is a node that flows within a block.
type Inline interface {
	Node
	inline()
}

// Document is the root of a parsed tree.
type Document struct {
	Blocks []Block
}

// TaskState classifies a list item's checkbox status.
type TaskState int

const (
	NoTask TaskState = iota
	IncompleteTask
	CompletedTask
)

// Alignment is the column alignment hint carried by tables.
// Rendering currently discards it; it is kept so the information
// survives the parse.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Heading is an ATX or setext heading. Level is 1 through 6.
type Heading struct {
	Level    int
	Children []Inline
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Children []Inline
}

// CodeBlock is a fenced or indented code block. Body keeps the source
// whitespace exactly, trailing newlines included. Language is the info
// string of a fence; it does not influence rendering yet but must not be
// dropped.
type CodeBlock struct {
	Body     string
	Language string
}

// BlockQuote wraps nested blocks.
type BlockQuote struct {
	Children []Block
}

// ListItem is one entry of an unordered list.
type ListItem struct {
	Task     TaskState
	Children []Block
}

// UnorderedList is a bullet or task list.
type UnorderedList struct {
	Items []ListItem
}

// OrderedList numbers its items sequentially from Start.
type OrderedList struct {
	Start int
	Items [][]Block
}

// ThematicBreak is a horizontal rule. It carries no content.
type ThematicBreak struct{}

// HTMLBlock is embedded raw markup at block level. Content is preserved
// but rendering suppresses it.
type HTMLBlock struct {
	Content string
}

// TableRow is a single row of cells, each cell a run of inline content.
type TableRow struct {
	Cells [][]Inline
}

// Table is a GFM table: one header row, zero or more body rows, and one
// alignment hint per column.
type Table struct {
	Alignments []Alignment
	Header     TableRow
	Rows       []TableRow
}

// Text is a literal run of characters.
type Text struct {
	Content string
}

// Emphasis, Strong and Strikethrough restyle their children without
// changing the content.
type Emphasis struct {
	Children []Inline
}

type Strong struct {
	Children []Inline
}

type Strikethrough struct {
	Children []Inline
}

// CodeSpan is single-line inline code.
type CodeSpan struct {
	Content string
}

// Link wraps inline children as the label for Destination. Title is parsed
// and kept but not used by rendering.
type Link struct {
	Destination string
	Title       string
	Children    []Inline
}

// Image references Source with alternative text Alt. Title is parsed and
// kept but not used by rendering.
type Image struct {
	Source string
	Alt    string
	Title  string
}

// HardLineBreak forces a line break inside a block.
type HardLineBreak struct{}

// RawHTML is embedded raw markup at inline level, preserved but suppressed
// by rendering.
type RawHTML struct {
	Content string
}

func (*Heading) node()       {}
func (*Paragraph) node()     {}
func (*CodeBlock) node()     {}
func (*BlockQuote) node()    {}
func (*UnorderedList) node() {}
func (*OrderedList) node()   {}
func (*ThematicBreak) node() {}
func (*HTMLBlock) node()     {}
func (*Table) node()         {}
func (*Text) node()          {}
func (*Emphasis) node()      {}
func (*Strong) node()        {}
func (*Strikethrough) node() {}
func (*CodeSpan) node()      {}
func (*Link) node()          {}
func (*Image) node()         {}
func (*HardLineBreak) node() {}
func (*RawHTML) node()       {}

func (*Heading) block()       {}
func (*Paragraph) block()     {}
func (*CodeBlock) block()     {}
func (*BlockQuote) block()    {}
func (*UnorderedList) block() {}
func (*OrderedList) block()   {}
func (*ThematicBreak) block() {}
func (*HTMLBlock) block()     {}
func (*Table) block()         {}

func (*Text) inline()          {}
func (*Emphasis) inline()      {}
func (*Strong) inline()        {}
func (*Strikethrough) inline() {}
func (*CodeSpan) inline()      {}
func (*Link) inline()          {}
func (*Image) inline()         {}
func (*HardLineBreak) inline() {}
func (*RawHTML) inline()       {}
