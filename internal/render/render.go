// Package render maps the document tree onto a presentation tree.
//
// Rendering is a total, pure function: the same document always produces a
// structurally identical element tree, and no document can make it fail.
// The only error Preview can return is the parser's, carried through
// unchanged.
package render

import (
	"strconv"

	"github.com/mithrel/inkpad/internal/ast"
	"github.com/mithrel/inkpad/internal/parser"
)

// Layout constants of the rendering rules. Heading levels past H2 share
// one size on purpose rather than shrinking per level.
const (
	HeadingSizeH1    = 30
	HeadingSizeH2    = 28
	HeadingSizeSmall = 25

	HeadingMarginBottom = 45
	ParagraphSpacing    = 15
	QuoteBorderWidth    = 10
)

// Renderer converts document trees into element trees using a fixed theme.
type Renderer struct {
	theme Theme
}

func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Preview runs the whole pipeline: parse src, then render. A parse failure
// short-circuits rendering; its dead ends arrive joined one per line in
// the returned error.
func (r *Renderer) Preview(src string) (Element, error) {
	doc, err := parser.Parse(src)
	if err != nil {
		return Empty{}, err
	}
	return r.Render(doc), nil
}

// Render maps the document tree to elements. It cannot fail.
func (r *Renderer) Render(doc *ast.Document) Element {
	return Box{Spacing: ParagraphSpacing, Children: r.blocks(doc.Blocks)}
}

func (r *Renderer) blocks(blocks []ast.Block) []Element {
	out := make([]Element, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, r.block(b))
	}
	return out
}

// block dispatches on the block variant. ast is sealed, so the switch
// covers every kind the parser can produce; the Empty default exists only
// to keep the renderer total.
func (r *Renderer) block(b ast.Block) Element {
	switch b := b.(type) {
	case *ast.Heading:
		return Box{
			Inline:       true,
			MarginBottom: HeadingMarginBottom,
			Children:     r.inlines(b.Children, inlineStyle{Size: headingSize(b.Level)}),
		}
	case *ast.Paragraph:
		return Box{
			Inline:   true,
			Spacing:  ParagraphSpacing,
			Children: r.inlines(b.Children, inlineStyle{}),
		}
	case *ast.CodeBlock:
		// Body goes through verbatim; Language is carried on the document
		// tree but selects nothing here yet.
		return Box{
			PadX:       2,
			PadY:       1,
			Background: r.theme.CodeBackground,
			Children:   []Element{Text{Content: b.Body, Mono: true}},
		}
	case *ast.BlockQuote:
		return Box{
			Spacing:     ParagraphSpacing,
			PadX:        1,
			BorderLeft:  QuoteBorderWidth,
			BorderColor: r.theme.QuoteBorder,
			Background:  r.theme.QuoteBackground,
			Children:    r.blocks(b.Children),
		}
	case *ast.UnorderedList:
		rows := make([]Element, 0, len(b.Items))
		for _, item := range b.Items {
			children := []Element{taskMarker(item.Task), Text{Content: " "}}
			rows = append(rows, Box{
				Inline:   true,
				Children: append(children, r.blocks(item.Children)...),
			})
		}
		return Box{Children: rows}
	case *ast.OrderedList:
		rows := make([]Element, 0, len(b.Items))
		for i, item := range b.Items {
			children := []Element{Text{Content: itemLabel(b.Start, i)}}
			rows = append(rows, Box{
				Inline:   true,
				Children: append(children, r.blocks(item)...),
			})
		}
		return Box{Children: rows}
	case *ast.Table:
		// Generic nested containers only: the alignment hints and the
		// header/body distinction are accepted and discarded.
		rows := make([]Element, 0, len(b.Rows)+1)
		rows = append(rows, r.tableRow(b.Header))
		for _, row := range b.Rows {
			rows = append(rows, r.tableRow(row))
		}
		return Box{Children: rows}
	case *ast.ThematicBreak:
		return Empty{}
	case *ast.HTMLBlock:
		return Empty{}
	default:
		return Empty{}
	}
}

func (r *Renderer) tableRow(row ast.TableRow) Element {
	cells := make([]Element, 0, len(row.Cells))
	for _, cell := range row.Cells {
		cells = append(cells, Box{Inline: true, Children: r.inlines(cell, inlineStyle{})})
	}
	return Box{Inline: true, Gap: 2, Children: cells}
}

// inlineStyle accumulates the styling wrappers above an inline run. The
// wrappers forward their children untouched; only the style differs.
type inlineStyle struct {
	Size   int
	Bold   bool
	Italic bool
	Strike bool
}

func (r *Renderer) inlines(in []ast.Inline, st inlineStyle) []Element {
	out := make([]Element, 0, len(in))
	for _, n := range in {
		out = append(out, r.inline(n, st)...)
	}
	return out
}

func (r *Renderer) inline(n ast.Inline, st inlineStyle) []Element {
	switch n := n.(type) {
	case *ast.Text:
		return []Element{Text{
			Content: n.Content,
			Size:    st.Size,
			Bold:    st.Bold,
			Italic:  st.Italic,
			Strike:  st.Strike,
		}}
	case *ast.Strong:
		st.Bold = true
		return r.inlines(n.Children, st)
	case *ast.Emphasis:
		st.Italic = true
		return r.inlines(n.Children, st)
	case *ast.Strikethrough:
		st.Strike = true
		return r.inlines(n.Children, st)
	case *ast.CodeSpan:
		return []Element{Text{
			Content: n.Content,
			Size:    st.Size,
			Bold:    st.Bold,
			Italic:  st.Italic,
			Strike:  st.Strike,
			Mono:    true,
		}}
	case *ast.Link:
		// Always the destination; the title field is parsed but plays no
		// part in the current rule.
		return []Element{Link{
			Destination: n.Destination,
			Children:    r.inlines(n.Children, st),
		}}
	case *ast.Image:
		// Title intentionally unused: presence or absence renders the same.
		return []Element{Image{Source: n.Source, Alt: n.Alt}}
	case *ast.HardLineBreak:
		return []Element{LineBreak{}}
	case *ast.RawHTML:
		return []Element{Empty{}}
	default:
		return []Element{Empty{}}
	}
}

// headingSize maps a heading level to its text size. H1 and H2 are
// distinct; everything deeper collapses to one smaller size.
func headingSize(level int) int {
	switch level {
	case 1:
		return HeadingSizeH1
	case 2:
		return HeadingSizeH2
	default:
		return HeadingSizeSmall
	}
}

// itemLabel numbers ordered list items: item i counts from start.
func itemLabel(start, i int) string {
	return strconv.Itoa(start+i) + ". "
}

// taskMarker picks the leading marker of an unordered list row.
func taskMarker(task ast.TaskState) Element {
	switch task {
	case ast.IncompleteTask:
		return Checkbox{Checked: false}
	case ast.CompletedTask:
		return Checkbox{Checked: true}
	default:
		return Text{Content: "•"}
	}
}
