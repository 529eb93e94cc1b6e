package ingest

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Priority tiers assigned by the walker. README-like files outrank
// manifests, which outrank prose docs, which outrank source code.
const (
	PriorityReadme   = 10
	PriorityManifest = 8
	PriorityDoc      = 7
	PrioritySource   = 5
	PriorityOther    = 1
)

// ignoreDirs are directory names skipped during traversal: version control
// metadata, dependency caches, build output, and virtual environments.
var ignoreDirs = map[string]bool{
	".git":          true,
	".hg":           true,
	".svn":          true,
	"node_modules":  true,
	"vendor":        true,
	"__pycache__":   true,
	"venv":          true,
	"env":           true,
	".venv":         true,
	"build":         true,
	"dist":          true,
	"target":        true,
	".pytest_cache": true,
	".mypy_cache":   true,
	".tox":          true,
	".eggs":         true,
	".idea":         true,
	".vscode":       true,
}

// readmeNames are filenames that receive the highest priority.
var readmeNames = map[string]bool{
	"readme":     true,
	"readme.md":  true,
	"readme.txt": true,
	"readme.rst": true,
}

// manifestNames are package manifests, build files, and license files.
var manifestNames = map[string]bool{
	"go.mod":             true,
	"go.sum":             true,
	"package.json":       true,
	"tsconfig.json":      true,
	"requirements.txt":   true,
	"pyproject.toml":     true,
	"setup.py":           true,
	"setup.cfg":          true,
	"cargo.toml":         true,
	"pom.xml":            true,
	"build.gradle":       true,
	"dockerfile":         true,
	"docker-compose.yml": true,
	"makefile":           true,
	".gitignore":         true,
	"license":            true,
	"license.txt":        true,
	"license.md":         true,
}

// sourceExts are source-code file extensions.
var sourceExts = map[string]bool{
	".go":    true,
	".py":    true,
	".js":    true,
	".ts":    true,
	".tsx":   true,
	".java":  true,
	".cpp":   true,
	".c":     true,
	".h":     true,
	".rs":    true,
	".rb":    true,
	".php":   true,
	".cs":    true,
	".kt":    true,
	".swift": true,
}

// docExts are prose documentation extensions.
var docExts = map[string]bool{
	".md":  true,
	".txt": true,
	".rst": true,
}

// Priority returns the walker priority for a file path based on its base
// name and extension. README-like names win over everything else.
func Priority(path string) int {
	name := strings.ToLower(filepath.Base(path))
	if readmeNames[name] {
		return PriorityReadme
	}
	if manifestNames[name] {
		return PriorityManifest
	}
	ext := strings.ToLower(filepath.Ext(name))
	if docExts[ext] {
		return PriorityDoc
	}
	if sourceExts[ext] {
		return PrioritySource
	}
	return PriorityOther
}

// maxFileSize caps how much of a single file the walker reads. Larger
// files are skipped; they are almost never documentation or manifests.
const maxFileSize = 1 << 20 // 1 MiB

// CollectFiles walks the tree under root and returns all readable text
// files, sorted by priority descending. Files inside ignored directories,
// files that are not valid UTF-8, and files that cannot be opened are
// skipped; skips are reported through the optional skip callback and are
// never fatal.
func CollectFiles(root string, skip func(path string, reason string)) ([]FileEntry, error) {
	if skip == nil {
		skip = func(string, string) {}
	}

	var files []FileEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory or file: degrade, don't abort.
			skip(path, "walk error: "+err.Error())
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && ignoreDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if info, err := d.Info(); err == nil && info.Size() > maxFileSize {
			skip(path, "too large")
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			skip(path, "unreadable: "+err.Error())
			return nil
		}
		if !isText(data) {
			skip(path, "not UTF-8 text")
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		files = append(files, FileEntry{
			Path:     rel,
			Content:  string(data),
			Priority: Priority(path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Priority descending; path ascending within a tier keeps the order
	// deterministic for identical input.
	sort.Slice(files, func(i, j int) bool {
		if files[i].Priority != files[j].Priority {
			return files[i].Priority > files[j].Priority
		}
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// isText reports whether data looks like UTF-8 text. NUL bytes mark a file
// as binary even when it happens to be valid UTF-8.
func isText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	sample := data
	if len(sample) > 8192 {
		sample = sample[:8192]
	}
	for _, b := range sample {
		if b == 0 {
			return false
		}
	}
	return utf8.Valid(data)
}
