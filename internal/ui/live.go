package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lugha/internal/diag"
	"lugha/internal/driver"
)

var (
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	paneTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusStyle    = lipgloss.NewStyle().Faint(true)
)

type savedMsg struct{ err error }

type liveModel struct {
	path   string
	opts   driver.Options
	editor textarea.Model
	output viewport.Model
	result *driver.Result
	status string
	width  int
	height int
}

// NewLiveModel returns an editor that re-transpiles its buffer on every
// keystroke and shows the output next to it. ctrl+s writes the buffer to
// path when path is set; esc or ctrl+c quits. Without opts.Memo the model
// gets its own so that undoing an edit skips the lexer.
func NewLiveModel(path string, initial []byte, opts driver.Options) tea.Model {
	if opts.Memo == nil {
		opts.Memo = driver.NewMemCache(0)
	}
	ta := textarea.New()
	ta.Placeholder = "اكتب هنا..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetValue(string(initial))
	ta.Focus()

	m := &liveModel{
		path:   path,
		opts:   opts,
		editor: ta,
		output: viewport.New(40, 20),
		width:  100,
		height: 24,
	}
	m.layout()
	m.recompute()
	return m
}

func (m *liveModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m, m.save()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("save failed: " + msg.err.Error())
		} else {
			m.status = okStyle.Render("saved " + m.path)
		}
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m *liveModel) View() string {
	left := paneStyle.Render(paneTitleStyle.Render(m.title()) + "\n" + m.editor.View())
	right := paneStyle.Render(paneTitleStyle.Render("JavaScript") + "\n" + m.output.View())
	help := statusStyle.Render("ctrl+s save • esc quit")
	if m.status != "" {
		help = m.status + "  " + help
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + help
}

func (m *liveModel) title() string {
	if m.path == "" {
		return "buffer"
	}
	return m.path
}

// layout splits the terminal into two equal panes.
func (m *liveModel) layout() {
	frameW, frameH := paneStyle.GetFrameSize()
	paneW := max(m.width/2-frameW, 10)
	paneH := max(m.height-frameH-2, 3)
	m.editor.SetWidth(paneW)
	m.editor.SetHeight(paneH)
	m.output.Width = paneW
	m.output.Height = paneH
}

func (m *liveModel) recompute() {
	name := m.path
	if name == "" {
		name = "buffer" + driver.SourceExt
	}
	m.result = driver.TranspileSource(name, []byte(m.editor.Value()), m.opts)

	var b strings.Builder
	b.WriteString(m.result.Output)
	if m.result.Bag.Len() > 0 {
		b.WriteString("\n\n")
		short := diag.FormatShortDiagnostics(m.result.Bag.Items(), m.result.FileSet, false)
		if m.result.HasErrors() {
			b.WriteString(errorStyle.Render(short))
		} else {
			b.WriteString(short)
		}
	}
	m.output.SetContent(b.String())
}

func (m *liveModel) save() tea.Cmd {
	if m.path == "" {
		m.status = errorStyle.Render("no file to save to")
		return nil
	}
	path, content := m.path, m.editor.Value()
	return func() tea.Msg {
		// #nosec G306 -- user source file
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return savedMsg{err: fmt.Errorf("write %s: %w", path, err)}
		}
		return savedMsg{}
	}
}
