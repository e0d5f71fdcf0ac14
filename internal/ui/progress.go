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

	"pyprojectfmt/internal/driver"
)

// maxRows bounds the file list; monorepos easily have hundreds of projects.
const maxRows = 12

// stageWeight is the share of a file's work done once it enters a stage.
var stageWeight = map[driver.Stage]float64{
	driver.StageRead:     0.1,
	driver.StageFormat:   0.4,
	driver.StageValidate: 0.8,
	driver.StageWrite:    0.9,
}

var stageVerb = map[driver.Stage]string{
	driver.StageRead:     "reading",
	driver.StageFormat:   "formatting",
	driver.StageValidate: "validating",
	driver.StageWrite:    "writing",
}

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleFaint  = lipgloss.NewStyle().Faint(true)
	statusColor = map[driver.Status]lipgloss.Color{
		driver.StatusDone:    "2",
		driver.StatusCached:  "2",
		driver.StatusChanged: "3",
		driver.StatusError:   "1",
		driver.StatusWorking: "6",
	}
)

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	files   []fileRow
	byPath  map[string]int
	order   []int // индексы файлов в порядке последнего изменения
	tally   Counts
	width   int
	done    bool
}

type fileRow struct {
	path    string
	stage   driver.Stage
	status  driver.Status
	elapsed time.Duration
	err     error
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders formatting progress.
// The model quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 60

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		files:   make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		tally:   Counts{Total: len(files)},
		width:   80,
	}
	for i, path := range files {
		m.files[i] = fileRow{path: path, status: driver.StatusQueued}
		m.byPath[path] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-30, 10)
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	var b strings.Builder
	lead := m.spinner.View()
	if m.done {
		lead = "✓"
	}
	fmt.Fprintf(&b, "%s %s  %s\n\n", lead, styleTitle.Render(m.title), styleFaint.Render(m.tallyLine()))

	rows := m.visibleRows()
	nameWidth := max(m.width-16, 20)
	for _, i := range rows {
		f := m.files[i]
		label := fmt.Sprintf("%11s", m.label(f))
		style := lipgloss.NewStyle().Foreground(colorFor(f.status))
		line := fmt.Sprintf("  %s %s", style.Render(label), truncate(f.path, nameWidth))
		if f.elapsed > 0 && f.err == nil {
			line += styleFaint.Render(" " + f.elapsed.Round(time.Millisecond).String())
		}
		b.WriteString(line + "\n")
		if f.err != nil {
			b.WriteString("              " + style.Render(truncate(f.err.Error(), nameWidth)) + "\n")
		}
	}
	if hidden := len(m.files) - len(rows); hidden > 0 {
		fmt.Fprintf(&b, "  %s\n", styleFaint.Render(fmt.Sprintf("… %d more", hidden)))
	}

	b.WriteString("\n  ")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	fmt.Fprintf(&b, " %3.0f%%\n", m.percent()*100)
	return b.String()
}

func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	f := &m.files[i]
	wasFinished := finished(f.status)
	f.status = ev.Status
	if ev.Stage != "" {
		f.stage = ev.Stage
	}
	if ev.Err != nil {
		f.err = ev.Err
	}
	if ev.Elapsed > 0 {
		f.elapsed = ev.Elapsed
	}
	if finished(f.status) && !wasFinished {
		switch f.status {
		case driver.StatusError:
			m.tally.Failed++
		case driver.StatusCached:
			m.tally.Cached++
		case driver.StatusChanged:
			m.tally.Changed++
		default:
			m.tally.Unchanged++
		}
	}
	m.touch(i)
	return m.bar.SetPercent(m.percent())
}

// touch moves file i to the end of the recently-changed list.
func (m *progressModel) touch(i int) {
	for j, k := range m.order {
		if k == i {
			m.order = append(m.order[:j], m.order[j+1:]...)
			break
		}
	}
	m.order = append(m.order, i)
}

// visibleRows shows failures first, then the most recently updated files.
// Before any event arrives the head of the queue is shown.
func (m *progressModel) visibleRows() []int {
	if len(m.files) <= maxRows {
		rows := make([]int, len(m.files))
		for i := range rows {
			rows[i] = i
		}
		return rows
	}
	rows := make([]int, 0, maxRows)
	for _, i := range m.order {
		if m.files[i].status == driver.StatusError && len(rows) < maxRows {
			rows = append(rows, i)
		}
	}
	for j := len(m.order) - 1; j >= 0 && len(rows) < maxRows; j-- {
		if i := m.order[j]; m.files[i].status != driver.StatusError {
			rows = append(rows, i)
		}
	}
	for i := 0; len(rows) < maxRows && i < len(m.files); i++ {
		if m.files[i].status == driver.StatusQueued {
			rows = append(rows, i)
		}
	}
	return rows
}

func (m *progressModel) tallyLine() string {
	c := m.tally
	doneCount := c.Changed + c.Unchanged + c.Cached + c.Failed
	line := fmt.Sprintf("%d/%d", doneCount, c.Total)
	if c.Changed > 0 {
		line += fmt.Sprintf(" · %d changed", c.Changed)
	}
	if c.Failed > 0 {
		line += fmt.Sprintf(" · %d failed", c.Failed)
	}
	return line
}

func (m *progressModel) percent() float64 {
	if len(m.files) == 0 {
		return 0
	}
	sum := 0.0
	for _, f := range m.files {
		if finished(f.status) {
			sum++
			continue
		}
		sum += stageWeight[f.stage]
	}
	return sum / float64(len(m.files))
}

func (m *progressModel) label(f fileRow) string {
	if f.status != driver.StatusWorking {
		return string(f.status)
	}
	if verb, ok := stageVerb[f.stage]; ok {
		return verb
	}
	return "working"
}

func finished(s driver.Status) bool {
	switch s {
	case driver.StatusDone, driver.StatusChanged, driver.StatusCached, driver.StatusError:
		return true
	}
	return false
}

func colorFor(s driver.Status) lipgloss.Color {
	if c, ok := statusColor[s]; ok {
		return c
	}
	return "7"
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	// ширина в Truncate уже включает хвост
	return runewidth.Truncate(value, width, "...")
}
