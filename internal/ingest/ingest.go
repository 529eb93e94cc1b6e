package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsRemoteURL reports whether the given repository reference points at a
// GitHub-hosted repository rather than a local path.
func IsRemoteURL(ref string) bool {
	return strings.Contains(strings.ToLower(ref), "github.com")
}

// Local builds a snapshot from a repository checkout on disk. The path must
// exist and be a directory; anything below that degrades instead of failing
// (unreadable files are skipped, missing git history yields an empty commit
// list).
func Local(repoPath string, skip func(path, reason string)) (*Snapshot, error) {
	root, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", repoPath, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("repository path does not exist: %s", repoPath)
		}
		return nil, fmt.Errorf("checking %s: %w", repoPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository path is not a directory: %s", repoPath)
	}

	files, err := CollectFiles(root, skip)
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	commits := RecentCommits(root)

	return &Snapshot{
		RootPath:  root,
		Files:     files,
		Commits:   commits,
		IsGitRepo: len(commits) > 0,
	}, nil
}

// Cloner clones a remote repository into a scratch directory. It is
// implemented by the github package; ingest only needs the clone/cleanup
// contract.
type Cloner interface {
	// CloneTemp performs a shallow single-branch clone into a fresh
	// temporary directory and returns its path.
	CloneTemp(url string) (string, error)

	// Cleanup removes a directory produced by CloneTemp.
	Cleanup(dir string)
}

// Remote clones the repository at url, builds a snapshot from the clone,
// and attaches remote provenance. The temporary clone directory is removed
// before Remote returns, on success and on failure alike.
func Remote(url string, cloner Cloner, skip func(path, reason string)) (*Snapshot, error) {
	dir, err := cloner.CloneTemp(url)
	if err != nil {
		return nil, fmt.Errorf("cloning %s: %w", url, err)
	}
	defer cloner.Cleanup(dir)

	snap, err := Local(dir, skip)
	if err != nil {
		return nil, err
	}

	snap.RemoteURL = url
	snap.IsRemoteClone = true
	return snap, nil
}
