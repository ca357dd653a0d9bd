// Package tui is the presentation shell: an editable text pane beside a
// live preview pane inside one Bubble Tea program.
//
// The textarea owns the document text, replaced wholesale on every change;
// each update runs one synchronous parse+render cycle before the next
// input is handled. There is no debouncing, no history and no autosave —
// the next edit simply re-attempts from scratch.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/inkpad/internal/config"
	"github.com/mithrel/inkpad/internal/render"
)

// Run starts the editor in the alternate screen and blocks until quit.
func Run(s config.Settings) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type Model struct {
	ta       textarea.Model
	vp       viewport.Model
	renderer *render.Renderer
	wrap     int

	width  int
	height int
	ready  bool

	parseFailed bool
}

func NewModel(s config.Settings) Model {
	ta := textarea.New()
	ta.Placeholder = "Type some markdown…"
	ta.ShowLineNumbers = s.LineNumbers
	ta.CharLimit = 0
	ta.Focus()

	m := Model{
		ta: ta,
		vp: viewport.New(0, 0),
		renderer: render.New(render.Theme{
			Accent:          s.Accent,
			CodeBackground:  s.CodeBackground,
			QuoteBorder:     s.QuoteBorder,
			QuoteBackground: s.QuoteBackground,
		}),
		wrap: s.Wrap,
	}
	if s.Sample {
		m.ta.SetValue(sampleDocument)
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return textarea.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.applyLayout()
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			// Preview scrolling; everything else belongs to the editor.
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh re-runs the whole pipeline against the current text. Output is a
// function of nothing but that text; there is no incremental path.
func (m *Model) refresh() {
	el, err := m.renderer.Preview(m.ta.Value())
	if err != nil {
		m.parseFailed = true
		m.vp.SetContent(errorPanel(err.Error()))
		return
	}
	m.parseFailed = false
	m.vp.SetContent(m.renderer.Paint(el, m.previewWidth()))
}

func (m *Model) applyLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	paneW := max(10, (m.width-4)/2)
	paneH := max(3, m.height-3)
	m.ta.SetWidth(paneW)
	m.ta.SetHeight(paneH)
	m.vp.Width = paneW
	m.vp.Height = paneH
}

func (m *Model) previewWidth() int {
	w := m.vp.Width
	if w <= 0 {
		w = 78
	}
	if m.wrap > 0 && m.wrap < w {
		return m.wrap
	}
	return w
}

var paneStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63"))

func (m Model) View() string {
	if !m.ready {
		return "initializing…"
	}
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		paneStyle.Render(m.ta.View()),
		paneStyle.Render(m.vp.View()),
	)
	return body + "\n" + m.renderFooter()
}

func (m Model) renderFooter() string {
	left := "esc=quit • pgup/pgdn=scroll preview"

	right := fmt.Sprintf("%d chars ", len(m.ta.Value()))
	if m.parseFailed {
		right = "parse failed • " + right
	}

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + right
}

var errorTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("203"))

// errorPanel formats parse dead ends for the preview pane, one per line.
func errorPanel(msg string) string {
	return errorTitleStyle.Render("Parse failed") + "\n\n" + msg
}
