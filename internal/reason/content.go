package reason

import (
	"strings"

	"github.com/repocard/repocard/internal/ingest"
)

// DefaultContentBudget is the character budget for the reasoning digest.
const DefaultContentBudget = 10000

// SelectContent concatenates file contents in priority order up to the
// given character budget. The file that crosses the budget is truncated;
// everything after it is dropped.
func SelectContent(snap *ingest.Snapshot, budget int) string {
	if budget <= 0 {
		budget = DefaultContentBudget
	}

	var parts []string
	total := 0
	for _, f := range snap.Files {
		if total+len(f.Content) > budget {
			remaining := budget - total
			if remaining > 0 {
				parts = append(parts, f.Content[:remaining])
			}
			break
		}
		parts = append(parts, f.Content)
		total += len(f.Content)
	}
	return strings.Join(parts, "\n\n")
}
