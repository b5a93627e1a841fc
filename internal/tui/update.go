package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"rollout/internal/planner"
)

type SetPlanMsg struct {
	Plan planner.Plan
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.syncComponents()

	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Summary:
			m.ShowSummary = !m.ShowSummary
			return m, nil
		case m.Keys.Today:
			m.FocusDate = m.Today
			m.Cursor = 0
			m.Status = StatusBar{Text: fmt.Sprintf("week of %s", m.FocusDate.Format("2006-01-02"))}
			return m, nil
		case m.Keys.PrevWeek, "left":
			m.shiftWeek(-1)
			return m, nil
		case m.Keys.NextWeek, "right":
			m.shiftWeek(1)
			return m, nil
		case m.Keys.Up, "up":
			if m.Cursor > 0 {
				m.Cursor--
			}
			return m, nil
		case m.Keys.Down, "down":
			if m.Cursor < len(m.visibleTasks())-1 {
				m.Cursor++
			}
			return m, nil
		}
	case SetPlanMsg:
		m.Plan = typed.Plan
		m.clampCursor()
		m.Status = StatusBar{Text: "plan refreshed"}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := RenderAgendaPanel(m.FocusDate, m.agendaTable.View(), m.visibleTasks(), m.Cursor)

	rightPane := ""
	switch {
	case m.HelpVisible:
		rightPane = RenderHelpPanel(m.Keys)
	case m.ShowSummary:
		rightPane = "summary:\n" + m.summaryView.View()
	default:
		selected, ok := m.selectedTask()
		rightPane = RenderTaskDetail(selected, ok)
	}

	viewer := m.Viewer
	if viewer == "" {
		viewer = "owner"
	}

	return RenderApp(AppData{
		Header:     fmt.Sprintf("rollout | viewer: %s | week of %s", viewer, m.FocusDate.Format("2006-01-02")),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s/%s week | %s/%s move | %s today | %s summary | %s help | %s quit",
			m.Keys.PrevWeek, m.Keys.NextWeek, m.Keys.Down, m.Keys.Up, m.Keys.Today, m.Keys.Summary, m.Keys.Help, m.Keys.Quit),
	})
}

func (m *Model) shiftWeek(delta int) {
	m.FocusDate = m.FocusDate.AddDate(0, 0, 7*delta)
	m.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("week of %s", m.FocusDate.Format("2006-01-02"))}
}
