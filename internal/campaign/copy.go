package campaign

import (
	"fmt"

	"rollout/internal/model"
)

// PostCopy derives the title and description of a recurring post from its
// classification. The anchor release, when known, is named in the copy.
func PostCopy(kind model.TaskKind, anchor model.Release, hasAnchor bool) (title, description string) {
	switch kind {
	case model.KindTeaser:
		if hasAnchor {
			return fmt.Sprintf("Teaser post for %s", anchor.Name),
				fmt.Sprintf("Build anticipation for the %s drop with a short preview clip.", anchor.Name)
		}
		return "Teaser post", "Build anticipation for the upcoming drop with a short preview clip."
	case model.KindPromo:
		if hasAnchor {
			return fmt.Sprintf("Promo post for %s", anchor.Name),
				fmt.Sprintf("Keep momentum on %s: share a highlight and point fans at the release.", anchor.Name)
		}
		return "Promo post", "Keep momentum on the latest release with a highlight clip."
	default:
		return "Audience-building post",
			"Post something personal or behind-the-scenes to grow the audience."
	}
}
