package card

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/repocard/repocard/internal/ingest"
	"github.com/repocard/repocard/internal/reason"
	"github.com/repocard/repocard/internal/signals"
)

// oneLinerLimit caps the summary line derived from the value proposition.
const oneLinerLimit = 200

// Generate assembles a card from the pipeline outputs, stamping the schema
// version and a UTC generation timestamp. The tech stack is de-duplicated
// even when the caller already did so. A nil techStack means use the
// extracted signals.
func Generate(snap *ingest.Snapshot, sig signals.Signals, insights *reason.Insights, techStack []string) *Card {
	if techStack == nil {
		techStack = sig.TechStack
	}
	return &Card{
		ProjectName:      InferProjectName(snap),
		OneLiner:         oneLiner(insights.ValueProposition),
		Problem:          insights.Problem,
		Solution:         insights.Solution,
		ValueProposition: insights.ValueProposition,
		TechStack:        dedupe(techStack),
		ProjectType:      string(sig.ProjectType),
		Status:           string(sig.Maturity),
		KeyFeatures:      insights.KeyFeatures,
		TargetUsers:      insights.TargetUsers,
		CurrentFocus:     insights.CurrentFocus,
		FuturePlans:      insights.FuturePlans,
		Metadata: Metadata{
			Version:     SchemaVersion,
			GeneratedAt: time.Now().UTC(),
		},
	}
}

// InferProjectName returns the first level-1 markdown heading within the
// first ten lines of the highest-priority README-like file, falling back to
// the root directory's name. Files arrive priority-sorted, so the first
// README hit is the highest-priority one.
func InferProjectName(snap *ingest.Snapshot) string {
	for _, f := range snap.Files {
		base := strings.ToLower(filepath.Base(f.Path))
		if !strings.Contains(base, "readme") {
			continue
		}
		lines := strings.Split(f.Content, "\n")
		if len(lines) > 10 {
			lines = lines[:10]
		}
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "# ") {
				return strings.TrimSpace(trimmed[2:])
			}
		}
	}
	return filepath.Base(snap.RootPath)
}

func oneLiner(value string) string {
	if len(value) > oneLinerLimit {
		return value[:oneLinerLimit] + "..."
	}
	return value
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
