package planner

import (
	"fmt"
	"sort"
	"time"

	"rollout/internal/model"
)

const (
	// ShootDurationMinutes is the fixed length of a planned filming session.
	ShootDurationMinutes = 150
	// EditDurationMinutes is the working length of one edit day.
	EditDurationMinutes = 90
	// EditBatchSize caps how many posts one edit day covers.
	EditBatchSize = 2

	shootLeadDays    = 7
	shootSnapWindow  = 3
	shootAdvanceCap  = 14
	editBaseLeadDays = 2
)

// PlaceShootDay targets seven days before the earliest post the shoot feeds,
// snapped to the nearest preferred day within a three-day window. A date not
// strictly in the future advances day by day, capped at two weeks out, to the
// next preferred day that still precedes the post.
func PlaceShootDay(earliestPost time.Time, preferred []time.Weekday, today time.Time) time.Time {
	post := model.Day(earliestPost)
	now := model.Day(today)
	target := post.AddDate(0, 0, -shootLeadDays)

	snapped := snapToPreferred(target, preferred)
	if snapped.After(now) {
		return snapped
	}
	for offset := 1; offset <= shootAdvanceCap; offset++ {
		candidate := now.AddDate(0, 0, offset)
		if !candidate.Before(post) {
			break
		}
		if isPreferredDay(candidate, preferred) {
			return candidate
		}
	}
	return now.AddDate(0, 0, 1)
}

// PlaceEditDay targets (2+index) days before the latest post in the batch;
// later batches get earlier deadlines relative to their posts, which is a
// heuristic, not an optimality claim. An edit landing on or before the
// format's shoot day is forced after it, and a non-future result is forced
// after today.
func PlaceEditDay(latestPost time.Time, index int, shootDate *time.Time, today time.Time) time.Time {
	date := model.Day(latestPost).AddDate(0, 0, -(editBaseLeadDays + index))
	if shootDate != nil && !date.After(model.Day(*shootDate)) {
		date = model.Day(*shootDate).AddDate(0, 0, index+1)
	}
	if !date.After(model.Day(today)) {
		date = model.Day(today).AddDate(0, 0, index+1)
	}
	return date
}

// PlaceBrainstormDays dates the shoot and edit days for every assigned
// content format. postDates are the generated recurring posts ordered by
// date; assignments reference them by index. Formats without a usable post
// are skipped. No shoot days are produced when footage already exists.
func PlaceBrainstormDays(assignments []model.FormatAssignment, postDates []time.Time, hasFootage bool, preferred []time.Weekday, today time.Time) ([]model.ShootDay, []model.EditDay) {
	byFormat := make(map[string][]time.Time)
	labels := make([]string, 0)
	indices := make(map[string][]int)
	for _, assignment := range assignments {
		if assignment.PostIndex < 0 || assignment.PostIndex >= len(postDates) {
			continue
		}
		label := assignment.Label()
		if label == "" {
			continue
		}
		if _, seen := byFormat[label]; !seen {
			labels = append(labels, label)
		}
		byFormat[label] = append(byFormat[label], model.Day(postDates[assignment.PostIndex]))
		indices[label] = append(indices[label], assignment.PostIndex)
	}
	sort.Strings(labels)

	shootDays := make([]model.ShootDay, 0)
	editDays := make([]model.EditDay, 0)
	for _, label := range labels {
		dates := byFormat[label]
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		var shootDate *time.Time
		if !hasFootage {
			placed := PlaceShootDay(dates[0], preferred, today)
			shootDate = &placed
			shootDays = append(shootDays, model.ShootDay{
				Format:          label,
				Reason:          fmt.Sprintf("Film footage for %s", label),
				DurationMinutes: ShootDurationMinutes,
				Date:            placed,
			})
		}

		batches := (len(dates) + EditBatchSize - 1) / EditBatchSize
		for batch := 0; batch < batches; batch++ {
			lo := batch * EditBatchSize
			hi := lo + EditBatchSize
			if hi > len(dates) {
				hi = len(dates)
			}
			latest := dates[hi-1]
			editDays = append(editDays, model.EditDay{
				Format:      label,
				PostIndices: indices[label][lo:hi],
				Date:        PlaceEditDay(latest, batch, shootDate, today),
			})
		}
	}
	return shootDays, editDays
}

// snapToPreferred moves target to the closest preferred day within the snap
// window, smaller absolute offset first, earlier date on an exact tie. An
// empty preferred list keeps the target.
func snapToPreferred(target time.Time, preferred []time.Weekday) time.Time {
	if len(preferred) == 0 {
		return target
	}
	for distance := 0; distance <= shootSnapWindow; distance++ {
		before := target.AddDate(0, 0, -distance)
		if isPreferredDay(before, preferred) {
			return before
		}
		if distance > 0 {
			after := target.AddDate(0, 0, distance)
			if isPreferredDay(after, preferred) {
				return after
			}
		}
	}
	return target
}

func isPreferredDay(date time.Time, preferred []time.Weekday) bool {
	for _, day := range preferred {
		if date.Weekday() == day {
			return true
		}
	}
	return false
}

// brainstormTasks turns dated shoot and edit days into plan tasks, slotting
// them into free time. A day with no gap large enough drops the task and
// counts it, same as an unplaceable template.
func brainstormTasks(shootDays []model.ShootDay, editDays []model.EditDay, busy *busyCalendar) ([]model.ScheduledTask, int) {
	out := make([]model.ScheduledTask, 0, len(shootDays)+len(editDays))
	dropped := 0
	for _, shoot := range shootDays {
		slot, ok := busy.place(shoot.Date, shoot.DurationMinutes)
		if !ok {
			dropped++
			continue
		}
		out = append(out, model.ScheduledTask{
			ID:            "shoot-" + slugify(shoot.Format),
			Title:         fmt.Sprintf("Shoot day: %s", shoot.Format),
			Description:   shoot.Reason,
			Kind:          model.KindShoot,
			Date:          shoot.Date,
			StartMinute:   slot.StartMinute,
			EndMinute:     slot.EndMinute,
			ContentFormat: shoot.Format,
		})
	}
	for i, edit := range editDays {
		slot, ok := busy.place(edit.Date, EditDurationMinutes)
		if !ok {
			dropped++
			continue
		}
		out = append(out, model.ScheduledTask{
			ID:            fmt.Sprintf("edit-%s-%d", slugify(edit.Format), i+1),
			Title:         fmt.Sprintf("Edit day: %s", edit.Format),
			Description:   fmt.Sprintf("Cut the %s posts in this batch.", edit.Format),
			Kind:          model.KindEdit,
			Date:          edit.Date,
			StartMinute:   slot.StartMinute,
			EndMinute:     slot.EndMinute,
			ContentFormat: edit.Format,
		})
	}
	return out, dropped
}
