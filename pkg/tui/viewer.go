package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dersctl/pkg/schedule"
	"dersctl/pkg/viewer"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type coursesLoadedMsg struct {
	courses []schedule.Course
	err     error
}

// selectionDueMsg fires once a ChooseClass delay has elapsed
type selectionDueMsg time.Time

type keyMap struct {
	Open   key.Binding
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Close  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter/s", "sınıf seç")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "yukarı")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "aşağı")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "seç")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "kapat")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "yenile")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "çıkış")),
	}
}

type viewerStyles struct {
	title       lipgloss.Style
	button      lipgloss.Style
	modal       lipgloss.Style
	option      lipgloss.Style
	activeOpt   lipgloss.Style
	heading     lipgloss.Style
	courseName  lipgloss.Style
	courseInfo  lipgloss.Style
	placeholder lipgloss.Style
	help        lipgloss.Style
}

func newViewerStyles(accent string) viewerStyles {
	p := lipgloss.Color(accent)
	return viewerStyles{
		title:       lipgloss.NewStyle().Foreground(p).Bold(true).Padding(1, 0),
		button:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(p).Padding(0, 2),
		modal:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 2).MarginTop(1),
		option:      lipgloss.NewStyle().PaddingLeft(2),
		activeOpt:   lipgloss.NewStyle().Foreground(p).Bold(true),
		heading:     lipgloss.NewStyle().Foreground(p).Bold(true).MarginTop(1),
		courseName:  lipgloss.NewStyle().Bold(true),
		courseInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Italic(true),
		help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}

// viewerModel hosts a viewer.Controller inside the bubbletea event loop.
// All controller calls happen in Update, so no locking is needed.
type viewerModel struct {
	ctrl    *viewer.Controller
	source  viewer.Source
	now     func() time.Time
	spinner spinner.Model
	keys    keyMap
	styles  viewerStyles
	cursor  int
}

func newViewerModel(ctrl *viewer.Controller, source viewer.Source, accent string) viewerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))

	return viewerModel{
		ctrl:    ctrl,
		source:  source,
		now:     time.Now,
		spinner: s,
		keys:    defaultKeyMap(),
		styles:  newViewerStyles(accent),
	}
}

func (m viewerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// load marks the controller busy and fetches the sheet off the event loop
func (m viewerModel) load() tea.Cmd {
	m.ctrl.BeginLoad()
	src := m.source
	return func() tea.Msg {
		courses, err := src.FetchCourses(context.Background())
		return coursesLoadedMsg{courses: courses, err: err}
	}
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case coursesLoadedMsg:
		m.ctrl.FinishLoad(msg.courses, msg.err)
		m.clampCursor()
		return m, nil

	case selectionDueMsg:
		m.ctrl.RunDue(m.now())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m viewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	state := m.ctrl.State()

	if state.ModalOpen {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.ctrl.CloseModal()
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(state.Classes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Choose):
			if len(state.Classes) == 0 {
				return m, nil
			}
			m.ctrl.ChooseClass(state.Classes[m.cursor])
			return m, tea.Tick(viewer.SelectionDelay, func(t time.Time) tea.Msg {
				return selectionDueMsg(t)
			})
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		m.ctrl.OpenModal()
		m.cursor = indexOf(state.Classes, state.Selected)
	case key.Matches(msg, m.keys.Reload):
		if !state.Loading {
			return m, m.load()
		}
	}
	return m, nil
}

func (m *viewerModel) clampCursor() {
	n := len(m.ctrl.State().Classes)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return 0
}

func (m viewerModel) View() string {
	v := m.ctrl.View()
	var b strings.Builder

	b.WriteString(m.styles.title.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.button.Render(v.ButtonLabel))
	b.WriteString("\n")

	if v.ModalOpen {
		var opts []string
		opts = append(opts, m.styles.courseName.Render(viewer.ChooseClassText))
		for i, id := range v.Options {
			if i == m.cursor {
				opts = append(opts, m.styles.activeOpt.Render("> "+id))
			} else {
				opts = append(opts, m.styles.option.Render(id))
			}
		}
		b.WriteString(m.styles.modal.Render(strings.Join(opts, "\n")))
		b.WriteString("\n")
	}

	if v.Loading {
		b.WriteString(fmt.Sprintf("\n%s %s\n", m.spinner.View(), viewer.LoadingText))
	}

	if v.ShowList {
		b.WriteString(m.styles.heading.Render(v.Heading))
		b.WriteString("\n")
		for _, e := range v.Entries {
			if e.Placeholder {
				b.WriteString("  " + m.styles.placeholder.Render(e.Name) + "\n")
				continue
			}
			b.WriteString(fmt.Sprintf("• %s\n  %s\n", m.styles.courseName.Render(e.Name), m.styles.courseInfo.Render(e.Info)))
		}
	}

	b.WriteString(m.styles.help.Render(m.helpLine(v.ModalOpen)))
	b.WriteString("\n")
	return b.String()
}

func (m viewerModel) helpLine(modalOpen bool) string {
	bindings := []key.Binding{m.keys.Open, m.keys.Reload, m.keys.Quit}
	if modalOpen {
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Close}
	}
	var parts []string
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
