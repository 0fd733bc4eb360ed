package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lugha/internal/driver"
)

type rowState uint8

const (
	rowQueued rowState = iota
	rowWorking
	rowDone
	rowCached
	rowFailed
)

var (
	rowLabels = [...]string{"queued", "working", "done", "cached", "error"}
	rowStyles = [...]lipgloss.Style{
		rowQueued:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		rowWorking: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		rowDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		rowCached:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		rowFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	faint      = lipgloss.NewStyle().Faint(true)
)

func (s rowState) String() string { return rowLabels[s] }

// row is one source file in the build list.
type row struct {
	path     string
	state    rowState
	errors   int
	warnings int
	elapsed  time.Duration
}

func (r row) note() string {
	var parts []string
	if r.errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", r.errors))
	}
	if r.warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", r.warnings))
	}
	if r.elapsed > 0 && r.state != rowCached {
		parts = append(parts, r.elapsed.Round(time.Millisecond).String())
	}
	return strings.Join(parts, ", ")
}

type progressModel struct {
	title    string
	events   <-chan driver.FileEvent
	spinner  spinner.Model
	bar      progress.Model
	rows     []row
	byPath   map[string]int
	finished int
	failed   int
	width    int
	done     bool
}

type eventMsg driver.FileEvent
type doneMsg struct{}

// NewProgressModel renders a directory build. files must use the paths the
// driver reports; the model quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.FileEvent) tea.Model {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(rowStyles[rowWorking])),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		rows:    make([]row, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, file := range files {
		m.rows[i] = row{path: file}
		m.byPath[file] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

// next waits for one driver event; a closed channel means the run is over.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.FileEvent(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) apply(ev driver.FileEvent) tea.Cmd {
	i, ok := m.byPath[ev.Path]
	if !ok {
		return nil
	}
	r := &m.rows[i]
	if ev.Status == driver.FileStarted {
		r.state = rowWorking
		return nil
	}
	r.errors, r.warnings, r.elapsed = ev.Errors, ev.Warnings, ev.Elapsed
	switch {
	case ev.Errors > 0:
		r.state = rowFailed
		m.failed++
	case ev.Cached:
		r.state = rowCached
	default:
		r.state = rowDone
	}
	m.finished++
	return m.bar.SetPercent(float64(m.finished) / float64(len(m.rows)))
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	lead := m.spinner.View()
	if m.done {
		lead = "done:"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s (%d/%d)", lead, m.title, m.finished, len(m.rows))))
	b.WriteString("\n\n")

	const labelWidth = 12
	pathWidth := max(m.width-labelWidth-4, 20)
	for _, r := range m.rows {
		fmt.Fprintf(&b, "  %s %s", rowStyles[r.state].Render(fmt.Sprintf("%*s", labelWidth, r.state)), truncate(r.path, pathWidth))
		if note := r.note(); note != "" {
			b.WriteString(" " + faint.Render(note))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	if m.failed > 0 {
		b.WriteString("  " + rowStyles[rowFailed].Render(fmt.Sprintf("%d failed", m.failed)))
	}
	b.WriteByte('\n')
	return b.String()
}

// truncate cuts value to width terminal cells, marking the cut with "...".
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
