// Package ingest builds repository snapshots from local checkouts or
// temporary clones of remote repositories.
package ingest

// FileEntry holds the content of a single repository file along with the
// priority assigned by the walker. Entries are immutable once read.
type FileEntry struct {
	// Path is the file path relative to the snapshot root.
	Path string `json:"path"`

	// Content is the file's text, decoded leniently as UTF-8.
	Content string `json:"content"`

	// Priority ranks the file's importance for analysis. Higher values
	// are read first by the content selector.
	Priority int `json:"priority"`
}

// CommitRecord describes one git commit from the repository's recent history.
type CommitRecord struct {
	Hash    string `json:"hash"`
	Message string `json:"message"`
	Author  string `json:"author"`

	// Date is the author date in ISO 8601 form, as reported by git.
	Date string `json:"date"`
}

// Snapshot is a point-in-time capture of a repository's files and recent
// history. It is built once per run; only the remote provenance fields are
// attached after construction, and only once.
type Snapshot struct {
	// RootPath is the absolute path the snapshot was built from.
	RootPath string `json:"root_path"`

	// Files is sorted by priority descending, path ascending within
	// equal priority.
	Files []FileEntry `json:"files"`

	// Commits lists up to CommitLimit recent commits, newest first.
	Commits []CommitRecord `json:"commits"`

	// IsGitRepo indicates whether commit history could be read.
	IsGitRepo bool `json:"is_git_repo"`

	// RemoteURL is the origin URL when the snapshot came from a remote
	// repository, empty otherwise.
	RemoteURL string `json:"remote_url,omitempty"`

	// IsRemoteClone indicates the snapshot was built from a temporary
	// clone rather than a local checkout.
	IsRemoteClone bool `json:"is_remote_clone"`
}
