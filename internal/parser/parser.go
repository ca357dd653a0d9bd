// Package parser turns raw markdown text into the internal document tree.
//
// The heavy lifting is goldmark with the GFM extension set; this package
// owns the contract around it: parsing is synchronous, deterministic and
// total — any input either yields a *ast.Document or a *DeadEndError,
// never a panic and never a partial tree.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mithrel/inkpad/internal/ast"
)

// md is shared across parses; goldmark parsers are stateless after New.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse converts src into a document tree. On failure the returned error is
// always a *DeadEndError with at least one entry.
func Parse(src string) (*ast.Document, error) {
	if off := invalidOffset(src); off >= 0 {
		return nil, &DeadEndError{DeadEnds: []DeadEnd{
			{Offset: off, Message: "input is not valid UTF-8"},
		}}
	}
	source := []byte(src)
	root := md.Parser().Parse(text.NewReader(source))
	c := &converter{src: source}
	blocks := c.blocks(root)
	if len(c.deadEnds) > 0 {
		return nil, &DeadEndError{DeadEnds: c.deadEnds}
	}
	return &ast.Document{Blocks: blocks}, nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence
// in s, or -1 when s is valid.
func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// converter maps goldmark's node types onto the internal tree, collecting
// dead ends instead of failing fast so every problem is reported at once.
type converter struct {
	src      []byte
	deadEnds []DeadEnd
}

func (c *converter) deadEnd(format string, args ...any) {
	c.deadEnds = append(c.deadEnds, DeadEnd{Offset: -1, Message: fmt.Sprintf(format, args...)})
}

func (c *converter) blocks(parent gast.Node) []ast.Block {
	out := make([]ast.Block, 0, parent.ChildCount())
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if b := c.block(n); b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (c *converter) block(n gast.Node) ast.Block {
	switch n := n.(type) {
	case *gast.Heading:
		return &ast.Heading{Level: n.Level, Children: c.inlines(n)}
	case *gast.Paragraph:
		return &ast.Paragraph{Children: c.inlines(n)}
	case *gast.TextBlock:
		// Tight list items carry text blocks instead of paragraphs.
		return &ast.Paragraph{Children: c.inlines(n)}
	case *gast.FencedCodeBlock:
		return &ast.CodeBlock{Body: c.rawLines(n), Language: string(n.Language(c.src))}
	case *gast.CodeBlock:
		return &ast.CodeBlock{Body: c.rawLines(n)}
	case *gast.Blockquote:
		return &ast.BlockQuote{Children: c.blocks(n)}
	case *gast.List:
		return c.list(n)
	case *gast.ThematicBreak:
		return &ast.ThematicBreak{}
	case *gast.HTMLBlock:
		return &ast.HTMLBlock{Content: c.rawLines(n)}
	case *east.Table:
		return c.table(n)
	default:
		c.deadEnd("unsupported block node %s", n.Kind())
		return nil
	}
}

func (c *converter) list(l *gast.List) ast.Block {
	if l.IsOrdered() {
		items := make([][]ast.Block, 0, l.ChildCount())
		for it := l.FirstChild(); it != nil; it = it.NextSibling() {
			items = append(items, c.blocks(it))
		}
		return &ast.OrderedList{Start: l.Start, Items: items}
	}
	items := make([]ast.ListItem, 0, l.ChildCount())
	for it := l.FirstChild(); it != nil; it = it.NextSibling() {
		items = append(items, ast.ListItem{
			Task:     taskStateOf(it),
			Children: c.blocks(it),
		})
	}
	return &ast.UnorderedList{Items: items}
}

// taskStateOf inspects a list item's leading checkbox, which GFM places as
// the first inline of the item's first text block.
func taskStateOf(item gast.Node) ast.TaskState {
	first := item.FirstChild()
	if first == nil {
		return ast.NoTask
	}
	box, ok := first.FirstChild().(*east.TaskCheckBox)
	if !ok {
		return ast.NoTask
	}
	if box.IsChecked {
		return ast.CompletedTask
	}
	return ast.IncompleteTask
}

func (c *converter) table(t *east.Table) ast.Block {
	out := &ast.Table{Alignments: make([]ast.Alignment, len(t.Alignments))}
	for i, a := range t.Alignments {
		out.Alignments[i] = alignmentOf(a)
	}
	for n := t.FirstChild(); n != nil; n = n.NextSibling() {
		switch n.(type) {
		case *east.TableHeader:
			out.Header = c.tableRow(n)
		case *east.TableRow:
			out.Rows = append(out.Rows, c.tableRow(n))
		}
	}
	return out
}

func (c *converter) tableRow(row gast.Node) ast.TableRow {
	r := ast.TableRow{Cells: make([][]ast.Inline, 0, row.ChildCount())}
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		r.Cells = append(r.Cells, c.inlines(cell))
	}
	return r
}

func alignmentOf(a east.Alignment) ast.Alignment {
	switch a {
	case east.AlignLeft:
		return ast.AlignLeft
	case east.AlignCenter:
		return ast.AlignCenter
	case east.AlignRight:
		return ast.AlignRight
	default:
		return ast.AlignNone
	}
}

func (c *converter) inlines(parent gast.Node) []ast.Inline {
	out := make([]ast.Inline, 0, parent.ChildCount())
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.inline(n)...)
	}
	return out
}

func (c *converter) inline(n gast.Node) []ast.Inline {
	switch n := n.(type) {
	case *gast.Text:
		out := []ast.Inline{&ast.Text{Content: string(n.Segment.Value(c.src))}}
		switch {
		case n.HardLineBreak():
			out = append(out, &ast.HardLineBreak{})
		case n.SoftLineBreak():
			// Soft breaks join adjacent lines of a paragraph.
			out = append(out, &ast.Text{Content: " "})
		}
		return out
	case *gast.String:
		return []ast.Inline{&ast.Text{Content: string(n.Value)}}
	case *gast.Emphasis:
		children := c.inlines(n)
		if n.Level >= 2 {
			return []ast.Inline{&ast.Strong{Children: children}}
		}
		return []ast.Inline{&ast.Emphasis{Children: children}}
	case *east.Strikethrough:
		return []ast.Inline{&ast.Strikethrough{Children: c.inlines(n)}}
	case *gast.CodeSpan:
		return []ast.Inline{&ast.CodeSpan{Content: c.flatten(n)}}
	case *gast.Link:
		return []ast.Inline{&ast.Link{
			Destination: string(n.Destination),
			Title:       string(n.Title),
			Children:    c.inlines(n),
		}}
	case *gast.AutoLink:
		url := string(n.URL(c.src))
		dest := url
		if n.AutoLinkType == gast.AutoLinkEmail && !strings.HasPrefix(dest, "mailto:") {
			dest = "mailto:" + dest
		}
		return []ast.Inline{&ast.Link{
			Destination: dest,
			Children:    []ast.Inline{&ast.Text{Content: url}},
		}}
	case *gast.Image:
		return []ast.Inline{&ast.Image{
			Source: string(n.Destination),
			Alt:    c.flatten(n),
			Title:  string(n.Title),
		}}
	case *gast.RawHTML:
		return []ast.Inline{&ast.RawHTML{Content: c.rawSegments(n.Segments)}}
	case *east.TaskCheckBox:
		// Already captured as the item's task state.
		return nil
	default:
		c.deadEnd("unsupported inline node %s", n.Kind())
		return nil
	}
}

// flatten concatenates the literal text below n, used for code spans and
// image alt text where nested styling carries no meaning.
func (c *converter) flatten(parent gast.Node) string {
	var b strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *gast.Text:
			b.Write(n.Segment.Value(c.src))
		case *gast.String:
			b.Write(n.Value)
		default:
			b.WriteString(c.flatten(n))
		}
	}
	return b.String()
}

// rawLines joins a block node's source lines verbatim.
func (c *converter) rawLines(n gast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	return b.String()
}

func (c *converter) rawSegments(segs *text.Segments) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(c.src))
	}
	return b.String()
}
