package tui

import (
	"fmt"
	"strings"
	"time"

	"rollout/internal/model"
	"rollout/internal/planner"
)

// SummaryMarkdown builds the campaign overview shown in the summary pane.
func SummaryMarkdown(plan planner.Plan, today time.Time) string {
	var b strings.Builder
	b.WriteString("# Campaign plan\n\n")
	b.WriteString(fmt.Sprintf("Computed for **%s**.\n\n", model.Day(today).Format("2006-01-02")))

	counts := make(map[model.TaskKind]int)
	shared := 0
	for _, task := range plan.Tasks {
		counts[task.Kind]++
		if task.Shared {
			shared++
		}
	}
	b.WriteString(fmt.Sprintf("- %d tasks across %d days\n", len(plan.Tasks), len(plan.Days)))
	b.WriteString(fmt.Sprintf("- %d shared calendar events\n", shared))
	if plan.DroppedTasks > 0 {
		b.WriteString(fmt.Sprintf("- %d prep tasks dropped for lack of free time\n", plan.DroppedTasks))
	}
	if len(plan.PushList) > 0 {
		b.WriteString(fmt.Sprintf("- %d events pending push to the shared calendar\n", len(plan.PushList)))
	}
	b.WriteString("\n## By kind\n\n")
	for _, kind := range []model.TaskKind{
		model.KindPrep, model.KindTeaser, model.KindPromo, model.KindAudienceBuilder,
		model.KindRelease, model.KindShoot, model.KindEdit,
	} {
		if counts[kind] == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %d\n", kind, counts[kind]))
	}
	return b.String()
}

func RenderAgendaPanel(focusDate time.Time, tableView string, tasks []model.ScheduledTask, cursor int) string {
	var b strings.Builder
	b.WriteString("agenda:\n")
	b.WriteString(fmt.Sprintf("week of %s\n", focusDate.Format("2006-01-02")))
	b.WriteString("actions: [h/l]week [j/k]move [t]today [s]summary\n")
	b.WriteString(tableView + "\n")
	if len(tasks) == 0 {
		b.WriteString("(no tasks this week)")
		return strings.TrimSpace(b.String())
	}

	currentDay := ""
	for i, task := range tasks {
		if key := task.DayKey(); key != currentDay {
			currentDay = key
			b.WriteString(fmt.Sprintf("\n%s:\n", key))
		}
		pointer := " "
		if i == cursor {
			pointer = ">"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s %s\n", pointer, strings.ToUpper(string(task.Kind)), taskTimeLabel(task), task.Title))
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskDetail(task model.ScheduledTask, ok bool) string {
	if !ok {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString(fmt.Sprintf("id: %s\n", task.ID))
	b.WriteString(fmt.Sprintf("kind: %s\n", task.Kind))
	b.WriteString(fmt.Sprintf("when: %s %s\n", task.DayKey(), taskTimeLabel(task)))
	if task.Shared {
		b.WriteString("visibility: shared\n")
	} else {
		b.WriteString("visibility: private\n")
	}
	if task.AssignedTo != "" {
		b.WriteString(fmt.Sprintf("assigned: %s\n", task.AssignedTo))
	}
	if task.ContentFormat != "" {
		b.WriteString(fmt.Sprintf("format: %s\n", task.ContentFormat))
	}
	if task.Description != "" {
		b.WriteString("\n" + task.Description)
	}
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(keys GlobalKeyMap) string {
	lines := []string{
		"help:",
		fmt.Sprintf("[%s/%s] previous/next week", keys.PrevWeek, keys.NextWeek),
		fmt.Sprintf("[%s/%s] move selection", keys.Down, keys.Up),
		fmt.Sprintf("[%s] jump to today", keys.Today),
		fmt.Sprintf("[%s] toggle summary pane", keys.Summary),
		fmt.Sprintf("[%s] quit", keys.Quit),
	}
	return strings.Join(lines, "\n")
}
