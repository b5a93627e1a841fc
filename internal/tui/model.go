// Package tui is a read-only terminal viewer for a computed campaign plan:
// a week-by-week agenda on the left and a task detail or summary pane on
// the right.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"

	"rollout/internal/model"
	"rollout/internal/planner"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	PrevWeek string
	NextWeek string
	Up       string
	Down     string
	Today    string
	Summary  string
	Help     string
	Quit     string
}

type Model struct {
	Plan        planner.Plan
	Today       time.Time
	Viewer      string
	FocusDate   time.Time
	Cursor      int
	ShowSummary bool
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool

	agendaTable table.Model
	summaryView viewport.Model
}

func NewModel(plan planner.Plan, today time.Time, viewer string) Model {
	m := Model{
		Plan:      plan,
		Today:     model.Day(today),
		Viewer:    viewer,
		FocusDate: model.Day(today),
		Keys: GlobalKeyMap{
			PrevWeek: "h",
			NextWeek: "l",
			Up:       "k",
			Down:     "j",
			Today:    "t",
			Summary:  "s",
			Help:     "?",
			Quit:     "q",
		},
	}
	m.initComponents()
	m.syncComponents()
	return m
}

func (m *Model) initComponents() {
	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Time", Width: 11},
		{Title: "Kind", Width: 16},
		{Title: "Title", Width: 30},
	}
	m.agendaTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(12))
	m.summaryView = viewport.New(54, 14)
}

func (m *Model) syncComponents() {
	visible := m.visibleTasks()
	rows := make([]table.Row, 0, len(visible))
	for _, task := range visible {
		rows = append(rows, table.Row{
			task.DayKey(),
			taskTimeLabel(task),
			string(task.Kind),
			task.Title,
		})
	}
	m.agendaTable.SetRows(rows)
	if len(rows) > 0 && m.Cursor < len(rows) {
		m.agendaTable.SetCursor(m.Cursor)
	}
	m.summaryView.SetContent(RenderMarkdown(SummaryMarkdown(m.Plan, m.Today)))
}

// visibleTasks lists the focused week's tasks in projection order.
func (m Model) visibleTasks() []model.ScheduledTask {
	weekEnd := m.FocusDate.AddDate(0, 0, 7)
	out := make([]model.ScheduledTask, 0)
	for _, bucket := range m.Plan.Days {
		if bucket.Date.Before(m.FocusDate) || !bucket.Date.Before(weekEnd) {
			continue
		}
		out = append(out, bucket.Tasks...)
	}
	return out
}

func (m Model) selectedTask() (model.ScheduledTask, bool) {
	visible := m.visibleTasks()
	if len(visible) == 0 || m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.ScheduledTask{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) clampCursor() {
	count := len(m.visibleTasks())
	if count == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= count {
		m.Cursor = count - 1
	}
}

func taskTimeLabel(task model.ScheduledTask) string {
	if task.AllDay {
		return "all-day"
	}
	return fmt.Sprintf("%s-%s", model.FormatClock(task.StartMinute), model.FormatClock(task.EndMinute))
}
