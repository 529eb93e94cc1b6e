package ingest

import "testing"

func TestParseGitLog(t *testing.T) {
	out := "abc123\x1fAlice\x1f2026-01-02T03:04:05Z\x1fInitial commit\n\x1e" +
		"def456\x1fBob\x1f2026-01-01T00:00:00Z\x1fFix walker\nwith body\x1e"

	commits := parseGitLog(out)
	if len(commits) != 2 {
		t.Fatalf("got %d commits, want 2", len(commits))
	}
	if commits[0].Hash != "abc123" || commits[0].Author != "Alice" {
		t.Errorf("first commit = %+v", commits[0])
	}
	if commits[0].Date != "2026-01-02T03:04:05Z" {
		t.Errorf("first commit date = %q", commits[0].Date)
	}
	if commits[1].Message != "Fix walker\nwith body" {
		t.Errorf("second commit message = %q", commits[1].Message)
	}
}

func TestParseGitLog_Malformed(t *testing.T) {
	if got := parseGitLog(""); got != nil {
		t.Errorf("empty output should yield nil, got %v", got)
	}
	// Records missing fields are dropped.
	if got := parseGitLog("only-a-hash\x1e"); got != nil {
		t.Errorf("malformed record should be dropped, got %v", got)
	}
}

func TestRecentCommits_NotARepo(t *testing.T) {
	if got := RecentCommits(t.TempDir()); got != nil {
		t.Errorf("non-repo should yield nil, got %v", got)
	}
}
