package github

import (
	"fmt"
	"os"
	"os/exec"
)

// Cloner clones GitHub repositories into scratch directories for analysis.
type Cloner struct {
	// Warn receives non-fatal cleanup problems. Nil means dropped.
	Warn func(format string, args ...any)
}

// CloneTemp performs a shallow, single-branch clone of the repository
// behind url into a fresh temporary directory and returns the directory
// path. The caller owns the directory and must pass it to Cleanup.
func (cl *Cloner) CloneTemp(url string) (string, error) {
	owner, repo, err := ParseOwnerRepo(url)
	if err != nil {
		return "", err
	}
	cloneURL := fmt.Sprintf("https://github.com/%s/%s.git", owner, repo)

	dir, err := os.MkdirTemp("", "repocard-"+repo+"-")
	if err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}

	cmd := exec.Command("git", "clone", "--depth", "1", "--single-branch", cloneURL, dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("git clone %s: %v: %.300s", cloneURL, err, string(out))
	}
	return dir, nil
}

// Cleanup removes a directory produced by CloneTemp.
func (cl *Cloner) Cleanup(dir string) {
	if dir == "" {
		return
	}
	if err := os.RemoveAll(dir); err != nil && cl.Warn != nil {
		cl.Warn("removing temp clone %s: %v", dir, err)
	}
}
