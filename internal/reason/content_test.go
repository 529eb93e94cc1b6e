package reason

import (
	"strings"
	"testing"

	"github.com/repocard/repocard/internal/ingest"
)

func TestSelectContent_PriorityOrderAndBudget(t *testing.T) {
	snap := &ingest.Snapshot{
		Files: []ingest.FileEntry{
			{Path: "README.md", Content: strings.Repeat("r", 60), Priority: ingest.PriorityReadme},
			{Path: "go.mod", Content: strings.Repeat("m", 30), Priority: ingest.PriorityManifest},
			{Path: "main.go", Content: strings.Repeat("s", 50), Priority: ingest.PrioritySource},
		},
	}

	got := SelectContent(snap, 100)

	// README fits, go.mod fits, main.go crosses the budget and is truncated
	// to the 10 remaining chars.
	if strings.Count(got, "r") != 60 || strings.Count(got, "m") != 30 {
		t.Errorf("high-priority files should be complete: %q", got)
	}
	if strings.Count(got, "s") != 10 {
		t.Errorf("budget-crossing file should be truncated to 10 chars, got %d", strings.Count(got, "s"))
	}
	if !strings.HasPrefix(got, strings.Repeat("r", 60)) {
		t.Error("content should start with the highest-priority file")
	}
}

func TestSelectContent_DefaultBudget(t *testing.T) {
	snap := &ingest.Snapshot{
		Files: []ingest.FileEntry{
			{Path: "README.md", Content: strings.Repeat("x", DefaultContentBudget+100)},
		},
	}
	got := SelectContent(snap, 0)
	if len(got) != DefaultContentBudget {
		t.Errorf("zero budget should mean the default, got %d chars", len(got))
	}
}

func TestSelectContent_Empty(t *testing.T) {
	if got := SelectContent(&ingest.Snapshot{}, 100); got != "" {
		t.Errorf("empty snapshot should yield empty content, got %q", got)
	}
}
