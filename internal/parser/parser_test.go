package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/inkpad/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, err := Parse(src)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

// flatText concatenates the literal text below a set of inlines.
func flatText(in []ast.Inline) string {
	var b strings.Builder
	for _, n := range in {
		switch n := n.(type) {
		case *ast.Text:
			b.WriteString(n.Content)
		case *ast.CodeSpan:
			b.WriteString(n.Content)
		case *ast.Emphasis:
			b.WriteString(flatText(n.Children))
		case *ast.Strong:
			b.WriteString(flatText(n.Children))
		case *ast.Strikethrough:
			b.WriteString(flatText(n.Children))
		case *ast.Link:
			b.WriteString(flatText(n.Children))
		}
	}
	return b.String()
}

func TestParseHeading(t *testing.T) {
	doc := mustParse(t, "# Hello")
	require.Len(t, doc.Blocks, 1)
	h, ok := doc.Blocks[0].(*ast.Heading)
	require.True(t, ok, "expected heading, got %T", doc.Blocks[0])
	require.Equal(t, 1, h.Level)
	require.Equal(t, "Hello", flatText(h.Children))
}

func TestParseHeadingLevels(t *testing.T) {
	doc := mustParse(t, "# a\n## b\n### c\n###### d")
	require.Len(t, doc.Blocks, 4)
	for i, want := range []int{1, 2, 3, 6} {
		h, ok := doc.Blocks[i].(*ast.Heading)
		require.True(t, ok)
		require.Equal(t, want, h.Level)
	}
}

func TestParseEmphasis(t *testing.T) {
	doc := mustParse(t, "*a* **b** ~~c~~")
	require.Len(t, doc.Blocks, 1)
	p, ok := doc.Blocks[0].(*ast.Paragraph)
	require.True(t, ok)

	var em *ast.Emphasis
	var strong *ast.Strong
	var strike *ast.Strikethrough
	for _, in := range p.Children {
		switch n := in.(type) {
		case *ast.Emphasis:
			em = n
		case *ast.Strong:
			strong = n
		case *ast.Strikethrough:
			strike = n
		}
	}
	require.NotNil(t, em)
	require.Equal(t, "a", flatText(em.Children))
	require.NotNil(t, strong)
	require.Equal(t, "b", flatText(strong.Children))
	require.NotNil(t, strike)
	require.Equal(t, "c", flatText(strike.Children))
}

func TestParseTaskList(t *testing.T) {
	doc := mustParse(t, "- [x] done\n- [ ] todo\n- plain")
	require.Len(t, doc.Blocks, 1)
	list, ok := doc.Blocks[0].(*ast.UnorderedList)
	require.True(t, ok)
	require.Len(t, list.Items, 3)

	require.Equal(t, ast.CompletedTask, list.Items[0].Task)
	require.Equal(t, ast.IncompleteTask, list.Items[1].Task)
	require.Equal(t, ast.NoTask, list.Items[2].Task)

	for i, want := range []string{"done", "todo", "plain"} {
		require.Len(t, list.Items[i].Children, 1)
		p, ok := list.Items[i].Children[0].(*ast.Paragraph)
		require.True(t, ok)
		require.Equal(t, want, strings.TrimSpace(flatText(p.Children)))
	}
}

func TestParseOrderedListStart(t *testing.T) {
	doc := mustParse(t, "3. a\n4. b\n5. c")
	require.Len(t, doc.Blocks, 1)
	list, ok := doc.Blocks[0].(*ast.OrderedList)
	require.True(t, ok)
	require.Equal(t, 3, list.Start)
	require.Len(t, list.Items, 3)
}

func TestParseCodeBlockVerbatim(t *testing.T) {
	src := "```go\nfunc main() {\n\n\tprintln(\"x\")\n}\n```\n"
	doc := mustParse(t, src)
	require.Len(t, doc.Blocks, 1)
	cb, ok := doc.Blocks[0].(*ast.CodeBlock)
	require.True(t, ok)
	require.Equal(t, "go", cb.Language)
	require.Equal(t, "func main() {\n\n\tprintln(\"x\")\n}\n", cb.Body)
}

func TestParseIndentedCodeBlock(t *testing.T) {
	doc := mustParse(t, "    indented\n")
	require.Len(t, doc.Blocks, 1)
	cb, ok := doc.Blocks[0].(*ast.CodeBlock)
	require.True(t, ok)
	require.Equal(t, "", cb.Language)
	require.Equal(t, "indented\n", cb.Body)
}

func TestParseBlockQuote(t *testing.T) {
	doc := mustParse(t, "> quoted text")
	require.Len(t, doc.Blocks, 1)
	q, ok := doc.Blocks[0].(*ast.BlockQuote)
	require.True(t, ok)
	require.Len(t, q.Children, 1)
	p, ok := q.Children[0].(*ast.Paragraph)
	require.True(t, ok)
	require.Equal(t, "quoted text", flatText(p.Children))
}

func TestParseTable(t *testing.T) {
	src := "| a | b |\n|:--|--:|\n| 1 | 2 |\n"
	doc := mustParse(t, src)
	require.Len(t, doc.Blocks, 1)
	tbl, ok := doc.Blocks[0].(*ast.Table)
	require.True(t, ok)

	require.Equal(t, []ast.Alignment{ast.AlignLeft, ast.AlignRight}, tbl.Alignments)
	require.Len(t, tbl.Header.Cells, 2)
	require.Equal(t, "a", flatText(tbl.Header.Cells[0]))
	require.Equal(t, "b", flatText(tbl.Header.Cells[1]))
	require.Len(t, tbl.Rows, 1)
	require.Equal(t, "1", flatText(tbl.Rows[0].Cells[0]))
	require.Equal(t, "2", flatText(tbl.Rows[0].Cells[1]))
}

func TestParseLinkKeepsTitle(t *testing.T) {
	doc := mustParse(t, `[label](https://example.com "the title")`)
	p := doc.Blocks[0].(*ast.Paragraph)
	require.Len(t, p.Children, 1)
	l, ok := p.Children[0].(*ast.Link)
	require.True(t, ok)
	require.Equal(t, "https://example.com", l.Destination)
	require.Equal(t, "the title", l.Title)
	require.Equal(t, "label", flatText(l.Children))
}

func TestParseAutoLink(t *testing.T) {
	doc := mustParse(t, "visit https://example.com today")
	p := doc.Blocks[0].(*ast.Paragraph)
	var link *ast.Link
	for _, in := range p.Children {
		if l, ok := in.(*ast.Link); ok {
			link = l
		}
	}
	require.NotNil(t, link)
	require.Equal(t, "https://example.com", link.Destination)
}

func TestParseImageKeepsTitle(t *testing.T) {
	doc := mustParse(t, `![alt text](pic.png "caption")`)
	p := doc.Blocks[0].(*ast.Paragraph)
	require.Len(t, p.Children, 1)
	img, ok := p.Children[0].(*ast.Image)
	require.True(t, ok)
	require.Equal(t, "pic.png", img.Source)
	require.Equal(t, "alt text", img.Alt)
	require.Equal(t, "caption", img.Title)
}

func TestParseThematicBreak(t *testing.T) {
	doc := mustParse(t, "a\n\n---\n\nb")
	require.Len(t, doc.Blocks, 3)
	_, ok := doc.Blocks[1].(*ast.ThematicBreak)
	require.True(t, ok, "expected thematic break, got %T", doc.Blocks[1])
}

func TestParseHardLineBreak(t *testing.T) {
	doc := mustParse(t, "first  \nsecond")
	p := doc.Blocks[0].(*ast.Paragraph)
	var sawBreak bool
	for _, in := range p.Children {
		if _, ok := in.(*ast.HardLineBreak); ok {
			sawBreak = true
		}
	}
	require.True(t, sawBreak)
}

func TestParseSoftBreakJoins(t *testing.T) {
	doc := mustParse(t, "one\ntwo")
	p := doc.Blocks[0].(*ast.Paragraph)
	require.Equal(t, "one two", flatText(p.Children))
}

func TestParseHTMLBlockPreserved(t *testing.T) {
	doc := mustParse(t, "<div>\nraw\n</div>\n")
	require.NotEmpty(t, doc.Blocks)
	hb, ok := doc.Blocks[0].(*ast.HTMLBlock)
	require.True(t, ok, "expected html block, got %T", doc.Blocks[0])
	require.Contains(t, hb.Content, "raw")
}

func TestParseInvalidUTF8(t *testing.T) {
	doc, err := Parse("ok so far \xff\xfe")
	require.Nil(t, doc)
	var dee *DeadEndError
	require.ErrorAs(t, err, &dee)
	require.Len(t, dee.DeadEnds, 1)
	require.Equal(t, 10, dee.DeadEnds[0].Offset)
	require.Contains(t, err.Error(), "UTF-8")
}

func TestParseDeterministic(t *testing.T) {
	src := "# t\n\npara *em* `code`\n\n- [x] a\n- b\n\n> q\n"
	first := mustParse(t, src)
	second := mustParse(t, src)
	require.Equal(t, first, second)
}

func TestParseEmptyInput(t *testing.T) {
	doc := mustParse(t, "")
	require.Empty(t, doc.Blocks)
}
