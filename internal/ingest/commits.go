package ingest

import (
	"os/exec"
	"strconv"
	"strings"
)

// CommitLimit is the maximum number of recent commits read into a snapshot.
const CommitLimit = 10

// fieldSep and recordSep are unlikely-to-collide separators for parsing
// git log output in a single invocation.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// RecentCommits reads up to CommitLimit recent commits from the repository
// at root, newest first. If root is not a git checkout or git fails for any
// reason, it returns an empty slice.
func RecentCommits(root string) []CommitRecord {
	cmd := exec.Command("git", "log",
		"--max-count="+strconv.Itoa(CommitLimit),
		"--pretty=format:%H"+fieldSep+"%an"+fieldSep+"%aI"+fieldSep+"%B"+recordSep)
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	return parseGitLog(string(out))
}

// parseGitLog splits git log output produced with the separator format above
// into commit records. Malformed records are dropped.
func parseGitLog(out string) []CommitRecord {
	var commits []CommitRecord
	for _, record := range strings.Split(out, recordSep) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}
		parts := strings.SplitN(record, fieldSep, 4)
		if len(parts) != 4 {
			continue
		}
		commits = append(commits, CommitRecord{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    parts[2],
			Message: strings.TrimSpace(parts[3]),
		})
	}
	return commits
}
