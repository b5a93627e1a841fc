package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"rollout/internal/model"
)

var ErrNoProfile = errors.New("config: plan file has no profile section")

// PlanFile is the on-disk campaign description: who is posting, what is
// coming out, what formats the next posts use, and when the calendar is
// already busy.
type PlanFile struct {
	Profile    profileSection    `yaml:"profile"`
	Releases   []releaseSection  `yaml:"releases"`
	Brainstorm brainstormSection `yaml:"brainstorm"`
	Busy       []busySection     `yaml:"busy"`
}

type profileSection struct {
	WeeklyHours   int           `yaml:"weekly_hours"`
	PreferredDays []string      `yaml:"preferred_days"`
	EditedClips   int           `yaml:"edited_clips"`
	RawFootage    string        `yaml:"raw_footage"`
	PostsPerWeek  int           `yaml:"posts_per_week"`
	StrategyNote  string        `yaml:"strategy_note"`
	Team          []teamSection `yaml:"team"`
}

type teamSection struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

type releaseSection struct {
	Name string `yaml:"name"`
	Date string `yaml:"date"`
	Type string `yaml:"type"`
}

type brainstormSection struct {
	Assignments []assignmentSection `yaml:"assignments"`
}

type assignmentSection struct {
	Post   int    `yaml:"post"`
	Format string `yaml:"format"`
	Name   string `yaml:"name"`
}

type busySection struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// PlanInputs is the decoded and validated plan file, expressed in the
// engine's own types.
type PlanInputs struct {
	Profile    model.Profile
	Releases   []model.Release
	Brainstorm []model.FormatAssignment
	Busy       []model.BusyInterval
}

func LoadPlanFile(path string) (PlanInputs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PlanInputs{}, fmt.Errorf("config: read plan file: %w", err)
	}
	return ParsePlanFile(raw)
}

func ParsePlanFile(raw []byte) (PlanInputs, error) {
	var file PlanFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return PlanInputs{}, fmt.Errorf("config: parse plan file: %w", err)
	}
	if file.Profile.WeeklyHours <= 0 {
		return PlanInputs{}, ErrNoProfile
	}

	profile := model.Profile{
		WeeklyHourBudget:      file.Profile.WeeklyHours,
		EditedClipCount:       file.Profile.EditedClips,
		RawFootageDescription: file.Profile.RawFootage,
		PostsPerWeek:          file.Profile.PostsPerWeek,
		StrategyNote:          file.Profile.StrategyNote,
	}
	for _, name := range file.Profile.PreferredDays {
		day, ok := model.ParseWeekday(name)
		if !ok {
			return PlanInputs{}, fmt.Errorf("config: unknown preferred day %q", name)
		}
		profile.PreferredDays = append(profile.PreferredDays, day)
	}
	for _, member := range file.Profile.Team {
		profile.Team = append(profile.Team, model.TeamMember{Name: member.Name, Role: member.Role})
	}

	var releases []model.Release
	for _, release := range file.Releases {
		if release.Name == "" {
			return PlanInputs{}, errors.New("config: release without a name")
		}
		date, err := model.ParseReleaseDate(release.Date)
		if err != nil {
			return PlanInputs{}, fmt.Errorf("config: release %q: %w", release.Name, err)
		}
		releases = append(releases, model.Release{Name: release.Name, Date: date, Type: release.Type})
	}

	var assignments []model.FormatAssignment
	for _, assignment := range file.Brainstorm.Assignments {
		if assignment.Format == "" {
			return PlanInputs{}, fmt.Errorf("config: brainstorm assignment for post %d has no format", assignment.Post)
		}
		assignments = append(assignments, model.FormatAssignment{
			PostIndex:  assignment.Post,
			Format:     assignment.Format,
			CustomName: assignment.Name,
		})
	}

	var busy []model.BusyInterval
	for _, interval := range file.Busy {
		start, err := time.Parse(time.RFC3339, interval.Start)
		if err != nil {
			return PlanInputs{}, fmt.Errorf("config: busy interval start %q: %w", interval.Start, err)
		}
		end, err := time.Parse(time.RFC3339, interval.End)
		if err != nil {
			return PlanInputs{}, fmt.Errorf("config: busy interval end %q: %w", interval.End, err)
		}
		if !end.After(start) {
			return PlanInputs{}, fmt.Errorf("config: busy interval %q ends before it starts", interval.Start)
		}
		busy = append(busy, model.BusyInterval{Start: start, End: end})
	}

	return PlanInputs{
		Profile:    profile,
		Releases:   releases,
		Brainstorm: assignments,
		Busy:       busy,
	}, nil
}
