package planner

import (
	"fmt"

	"rollout/internal/model"
)

type ContentTier string

const (
	TierLight      ContentTier = "content-light"
	TierRawFootage ContentTier = "raw-footage"
	TierReady      ContentTier = "content-ready"
)

// ReadyClipThreshold is the edited-clip count at which an artist counts as
// content-ready regardless of raw footage.
const ReadyClipThreshold = 10

const clipBatchSize = 10

// TierFor picks exactly one of the three mutually exclusive template tiers.
func TierFor(profile model.Profile, signals model.ContentSignals) ContentTier {
	if profile.EditedClipCount >= ReadyClipThreshold {
		return TierReady
	}
	if signals.HasFootage {
		return TierRawFootage
	}
	return TierLight
}

// TaskTemplate is one prep step with a fixed, non-negotiable duration
// estimate. Key is a stable slug used for deterministic task ids.
type TaskTemplate struct {
	Key             string
	Title           string
	Description     string
	DurationMinutes int
}

// PrepTemplates is the two-week prep plan the scheduler packs into days.
type PrepTemplates struct {
	Week1 []TaskTemplate
	Week2 []TaskTemplate
}

// SelectPrepTemplates builds the tier-appropriate prep task set.
func SelectPrepTemplates(profile model.Profile, signals model.ContentSignals) PrepTemplates {
	switch TierFor(profile, signals) {
	case TierReady:
		return readyTemplates(profile, signals)
	case TierRawFootage:
		return rawFootageTemplates(profile, signals)
	default:
		return lightTemplates(profile)
	}
}

func readyTemplates(profile model.Profile, signals model.ContentSignals) PrepTemplates {
	editor, hasEditor := profile.Editor()
	clips := profile.EditedClipCount

	batches := batchSizes(clips, clipBatchSize)
	out := PrepTemplates{}
	for i, size := range batches {
		n := i + 1
		cycle := make([]TaskTemplate, 0, 4)
		if hasEditor {
			cycle = append(cycle, TaskTemplate{
				Key:             fmt.Sprintf("send-batch-%d", n),
				Title:           fmt.Sprintf("Send batch %d to %s with notes", n, editor.Name),
				Description:     fmt.Sprintf("Hand off %d clips with captions and cut notes.", size),
				DurationMinutes: 30,
			})
		}
		cycle = append(cycle,
			TaskTemplate{
				Key:             fmt.Sprintf("upload-batch-%d", n),
				Title:           fmt.Sprintf("Upload batch %d (%d clips)", n, size),
				Description:     "Upload the edited clips and stage them as drafts.",
				DurationMinutes: 60,
			},
			TaskTemplate{
				Key:             fmt.Sprintf("finalize-batch-%d", n),
				Title:           fmt.Sprintf("Finalize captions and covers for batch %d", n),
				Description:     "Write captions, pick covers, and schedule the drafts.",
				DurationMinutes: 45,
			},
		)
		if hasEditor {
			cycle = append(cycle, TaskTemplate{
				Key:             fmt.Sprintf("review-batch-%d", n),
				Title:           fmt.Sprintf("Review revised edits for batch %d", n),
				Description:     fmt.Sprintf("Go through %s's revisions and approve or send back.", editor.Name),
				DurationMinutes: 45,
			})
		}
		if i == 0 {
			out.Week1 = append(out.Week1, cycle...)
		} else {
			out.Week2 = append(out.Week2, cycle...)
		}
	}

	if signals.HasFootage {
		out.Week2 = append(out.Week2, TaskTemplate{
			Key:             "edit-raw-footage",
			Title:           "Edit raw footage into new clips",
			Description:     "Cut the remaining raw footage into post-ready clips.",
			DurationMinutes: 120,
		})
	}
	out.Week2 = append(out.Week2, brainstormNextBatch())
	return out
}

func rawFootageTemplates(profile model.Profile, signals model.ContentSignals) PrepTemplates {
	editor, hasEditor := profile.Editor()

	estimate := signals.RawClipEstimate
	if estimate <= 0 {
		estimate = model.DefaultClipEstimate
	}
	batches := batchSizes(estimate, clipBatchSize)

	out := PrepTemplates{}
	for i, size := range batches {
		n := i + 1
		out.Week1 = append(out.Week1, TaskTemplate{
			Key:             fmt.Sprintf("organize-batch-%d", n),
			Title:           fmt.Sprintf("Review and organize raw clips (batch %d)", n),
			Description:     fmt.Sprintf("Sort roughly %d clips, keep the strong takes, bin the rest.", size),
			DurationMinutes: 60,
		})
		if hasEditor {
			out.Week1 = append(out.Week1, TaskTemplate{
				Key:             fmt.Sprintf("send-batch-%d", n),
				Title:           fmt.Sprintf("Send batch %d to %s", n, editor.Name),
				Description:     "Hand off the organized clips with edit direction.",
				DurationMinutes: 30,
			})
		} else {
			out.Week1 = append(out.Week1, TaskTemplate{
				Key:             fmt.Sprintf("self-edit-batch-%d", n),
				Title:           fmt.Sprintf("Edit batch %d yourself", n),
				Description:     "Cut the organized clips into post-ready edits.",
				DurationMinutes: 90,
			})
		}
	}

	for i := range batches {
		n := i + 1
		out.Week2 = append(out.Week2,
			TaskTemplate{
				Key:             fmt.Sprintf("upload-batch-%d", n),
				Title:           fmt.Sprintf("Upload batch %d", n),
				Description:     "Upload the finished edits and stage them as drafts.",
				DurationMinutes: 45,
			},
			TaskTemplate{
				Key:             fmt.Sprintf("finalize-batch-%d", n),
				Title:           fmt.Sprintf("Finalize and schedule batch %d posts", n),
				Description:     "Captions, covers, and scheduling for the batch.",
				DurationMinutes: 45,
			},
		)
	}
	out.Week2 = append(out.Week2, brainstormNextBatch())
	if hasEditor {
		out.Week2 = append(out.Week2, TaskTemplate{
			Key:             "plan-shoot-day",
			Title:           "Plan the next shoot day",
			Description:     fmt.Sprintf("Line up concepts and logistics so %s has fresh material.", editor.Name),
			DurationMinutes: 45,
		})
	}
	return out
}

func lightTemplates(profile model.Profile) PrepTemplates {
	editWith := ""
	if editor, ok := profile.Editor(); ok {
		editWith = " with " + editor.Name
	}
	return PrepTemplates{
		Week1: []TaskTemplate{
			{
				Key:             "brainstorm-concepts",
				Title:           "Brainstorm content concepts",
				Description:     "Decide the first six posts: hooks, formats, locations.",
				DurationMinutes: 60,
			},
			{
				Key:             "plan-shoot",
				Title:           "Plan shoot day",
				Description:     "Shot list, gear, and timing for the first shoot.",
				DurationMinutes: 45,
			},
			{
				Key:             "shoot-content",
				Title:           "Shoot content",
				Description:     "Film everything on the shot list in one session.",
				DurationMinutes: 150,
			},
		},
		Week2: []TaskTemplate{
			{
				Key:             "edit-posts-1-3",
				Title:           "Edit posts 1-3" + editWith,
				Description:     "First edit batch from the shoot.",
				DurationMinutes: 90,
			},
			{
				Key:             "edit-posts-4-6",
				Title:           "Edit posts 4-6" + editWith,
				Description:     "Second edit batch from the shoot.",
				DurationMinutes: 90,
			},
			{
				Key:             "upload-posts",
				Title:           "Upload posts",
				Description:     "Upload the edited posts and stage them as drafts.",
				DurationMinutes: 45,
			},
			{
				Key:             "review-finalize",
				Title:           "Review and finalize",
				Description:     "Final pass on captions and scheduling.",
				DurationMinutes: 60,
			},
		},
	}
}

func brainstormNextBatch() TaskTemplate {
	return TaskTemplate{
		Key:             "brainstorm-next-batch",
		Title:           "Brainstorm next content batch",
		Description:     "Plan the following round of posts before the pipeline runs dry.",
		DurationMinutes: 60,
	}
}

// batchSizes splits n items into batches of at most size, never returning an
// empty result for positive n.
func batchSizes(n, size int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, 0, (n+size-1)/size)
	for n > 0 {
		batch := n
		if batch > size {
			batch = size
		}
		out = append(out, batch)
		n -= batch
	}
	return out
}

// FillerTemplates is the posting-phase filler list for a tier. Content-ready
// artists get a smaller, lower-effort list.
func FillerTemplates(tier ContentTier) []TaskTemplate {
	if tier == TierReady {
		return []TaskTemplate{
			{Key: "engage-comments", Title: "Engage with comments and DMs", Description: "Reply to fans on recent posts.", DurationMinutes: 30},
			{Key: "check-drafts", Title: "Check scheduled drafts", Description: "Make sure the queue is healthy for the week.", DurationMinutes: 30},
		}
	}
	return []TaskTemplate{
		{Key: "engage-comments", Title: "Engage with comments and DMs", Description: "Reply to fans on recent posts.", DurationMinutes: 30},
		{Key: "research-trends", Title: "Research trending sounds and formats", Description: "Scout what is working in the niche this week.", DurationMinutes: 45},
		{Key: "draft-captions", Title: "Draft captions ahead", Description: "Write captions for the next few posts.", DurationMinutes: 30},
		{Key: "playlist-outreach", Title: "Playlist and curator outreach", Description: "Pitch the catalog to a handful of curators.", DurationMinutes: 45},
	}
}
