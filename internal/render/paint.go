package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Paint flattens an element tree into a styled string for a pane that is
// width cells wide, using the default theme.
func Paint(root Element, width int) string {
	return New(DefaultTheme()).Paint(root, width)
}

// Paint flattens an element tree with the renderer's theme. Layout units
// collapse onto the terminal grid: any positive vertical spacing or margin
// becomes one blank row, and the quote border becomes a one-cell rule.
func (r *Renderer) Paint(root Element, width int) string {
	if width < 1 {
		width = 1
	}
	p := painter{theme: r.theme}
	return strings.TrimRight(p.paint(root, width), "\n ")
}

type painter struct {
	theme Theme
}

func (p *painter) paint(el Element, width int) string {
	switch el := el.(type) {
	case Box:
		if el.Inline {
			return p.paintInline(el, width)
		}
		return p.paintColumn(el, width)
	case Text:
		return p.textStyle(el).Render(el.Content)
	case Link:
		label := p.paintChildren(el.Children, width, 0)
		styled := lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.theme.Accent)).
			Underline(true).
			Render(label)
		return termenv.Hyperlink(el.Destination, styled)
	case Image:
		alt := el.Alt
		if alt == "" {
			alt = el.Source
		}
		label := lipgloss.NewStyle().Italic(true).Render(alt)
		src := lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.theme.QuoteBorder)).
			Render("(" + el.Source + ")")
		return label + " " + src
	case Checkbox:
		if el.Checked {
			return "[x]"
		}
		return "[ ]"
	case LineBreak:
		return "\n"
	case Empty:
		return ""
	default:
		return ""
	}
}

func (p *painter) paintChildren(children []Element, width, gap int) string {
	parts := make([]string, 0, len(children))
	for _, ch := range children {
		if _, ok := ch.(Empty); ok {
			continue
		}
		parts = append(parts, p.paint(ch, width))
	}
	return strings.Join(parts, strings.Repeat(" ", gap))
}

func (p *painter) paintInline(b Box, width int) string {
	content := p.paintChildren(b.Children, width, b.Gap)
	if content == "" {
		return ""
	}
	// Width both wraps long flows and pads lines, so backgrounds and
	// horizontal joins stay rectangular.
	return lipgloss.NewStyle().Width(width).Render(content)
}

func (p *painter) paintColumn(b Box, width int) string {
	inner := width - 2*b.PadX
	if b.BorderLeft > 0 {
		inner -= 2
	}
	if inner < 1 {
		inner = 1
	}

	var blocks []string
	prevMargin := 0
	for _, ch := range b.Children {
		s := p.paint(ch, inner)
		if s == "" {
			continue
		}
		if len(blocks) > 0 && (b.Spacing > 0 || prevMargin > 0) {
			blocks = append(blocks, "")
		}
		blocks = append(blocks, s)
		prevMargin = marginOf(ch)
	}
	content := strings.Join(blocks, "\n")

	style := lipgloss.NewStyle()
	decorated := false
	if b.Background != "" {
		style = style.Background(lipgloss.Color(b.Background)).Width(inner)
		decorated = true
	}
	if b.PadX > 0 || b.PadY > 0 {
		style = style.Padding(b.PadY, b.PadX)
		decorated = true
	}
	if b.BorderLeft > 0 {
		style = style.
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(b.BorderColor))
		decorated = true
	}
	if decorated {
		content = style.Render(content)
	}
	if b.MarginBottom > 0 {
		content += "\n"
	}
	return content
}

func (p *painter) textStyle(t Text) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch t.Size {
	case HeadingSizeH1:
		s = s.Bold(true).Underline(true).Foreground(lipgloss.Color(p.theme.Accent))
	case HeadingSizeH2:
		s = s.Bold(true).Foreground(lipgloss.Color(p.theme.Accent))
	case HeadingSizeSmall:
		s = s.Bold(true)
	}
	if t.Bold {
		s = s.Bold(true)
	}
	if t.Italic {
		s = s.Italic(true)
	}
	if t.Strike {
		s = s.Strikethrough(true)
	}
	if t.Mono {
		s = s.Background(lipgloss.Color(p.theme.CodeBackground))
	}
	return s
}

func marginOf(el Element) int {
	if b, ok := el.(Box); ok {
		return b.MarginBottom
	}
	return 0
}
