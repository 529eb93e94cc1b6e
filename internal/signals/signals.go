// Package signals derives technical signals from a repository snapshot via
// static keyword and extension matching. Extraction is pure: running it
// twice on the same snapshot yields identical results.
package signals

import (
	"sort"
	"strings"
	"time"

	"github.com/repocard/repocard/internal/ingest"
)

// ProjectType classifies what kind of software a repository contains.
type ProjectType string

// Project type tags, in the order the inference heuristics test them.
const (
	TypeCLI        ProjectType = "cli"
	TypeAPI        ProjectType = "api"
	TypeWebApp     ProjectType = "web_app"
	TypeML         ProjectType = "ml"
	TypeAutomation ProjectType = "automation"
	TypeLibrary    ProjectType = "library"
	TypeOther      ProjectType = "other"
)

// Maturity classifies how production-ready a repository looks.
type Maturity string

// Maturity tiers, in increasing order.
const (
	MaturityPrototype  Maturity = "prototype"
	MaturityMVP        Maturity = "mvp"
	MaturityProduction Maturity = "production"
)

// Activity buckets derived from commit recency.
const (
	ActivityHigh    = "high"
	ActivityMedium  = "medium"
	ActivityLow     = "low"
	ActivityUnknown = "unknown"
)

// Signals holds all signals extracted from one snapshot.
type Signals struct {
	Languages   []string    `json:"languages"`
	Frameworks  []string    `json:"frameworks"`
	ProjectType ProjectType `json:"project_type"`
	Maturity    Maturity    `json:"maturity"`
	Activity    string      `json:"activity"`
	TechStack   []string    `json:"tech_stack"`
}

// languageExts maps file extensions to language names.
var languageExts = map[string]string{
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".java":  "Java",
	".cpp":   "C++",
	".c":     "C",
	".h":     "C",
	".go":    "Go",
	".rs":    "Rust",
	".rb":    "Ruby",
	".php":   "PHP",
	".cs":    "C#",
	".scala": "Scala",
	".kt":    "Kotlin",
	".swift": "Swift",
	".dart":  "Dart",
}

// frameworkKeywords maps dependency/import keywords to framework names.
var frameworkKeywords = map[string]string{
	"flask":      "Flask",
	"django":     "Django",
	"fastapi":    "FastAPI",
	"typer":      "Typer",
	"click":      "Click",
	"streamlit":  "Streamlit",
	"react":      "React",
	"vue":        "Vue",
	"angular":    "Angular",
	"express":    "Express",
	"spring":     "Spring",
	"tensorflow": "TensorFlow",
	"pytorch":    "PyTorch",
	"pandas":     "Pandas",
	"numpy":      "NumPy",
}

// manifestFiles are the files whose raw content is scanned for framework
// keywords without requiring an import statement.
var manifestFiles = map[string]bool{
	"requirements.txt": true,
	"pyproject.toml":   true,
	"package.json":     true,
}

// importScanExts are source extensions scanned for import-style framework
// references.
var importScanExts = map[string]bool{
	".py": true,
	".js": true,
	".ts": true,
}

// Extract derives all signals from the snapshot.
func Extract(snap *ingest.Snapshot) Signals {
	languages := Languages(snap.Files)
	frameworks := Frameworks(snap.Files)
	return Signals{
		Languages:   languages,
		Frameworks:  frameworks,
		ProjectType: InferProjectType(snap.Files),
		Maturity:    InferMaturity(snap.Files),
		Activity:    InferActivity(snap.Commits, time.Now().UTC()),
		TechStack:   sortedUnion(languages, frameworks),
	}
}

// Languages maps file extensions through the language table and returns a
// sorted, de-duplicated list.
func Languages(files []ingest.FileEntry) []string {
	set := make(map[string]bool)
	for _, f := range files {
		ext := strings.ToLower(extOf(f.Path))
		if lang, ok := languageExts[ext]; ok {
			set[lang] = true
		}
	}
	return sortedKeys(set)
}

// Frameworks scans manifests for framework keywords and source files for
// import-style references, returning a sorted, de-duplicated list.
func Frameworks(files []ingest.FileEntry) []string {
	set := make(map[string]bool)
	for _, f := range files {
		content := strings.ToLower(f.Content)
		base := strings.ToLower(baseOf(f.Path))
		switch {
		case manifestFiles[base]:
			for keyword, name := range frameworkKeywords {
				if strings.Contains(content, keyword) {
					set[name] = true
				}
			}
		case importScanExts[strings.ToLower(extOf(f.Path))]:
			for keyword, name := range frameworkKeywords {
				if strings.Contains(content, "import "+keyword) ||
					strings.Contains(content, "from "+keyword) {
					set[name] = true
				}
			}
		}
	}
	return sortedKeys(set)
}

// InferProjectType evaluates ordered heuristics and returns the first
// match. Order matters; there is no scoring.
func InferProjectType(files []ingest.FileEntry) ProjectType {
	paths := make([]string, len(files))
	names := make([]string, len(files))
	for i, f := range files {
		paths[i] = strings.ToLower(f.Path)
		names[i] = strings.ToLower(baseOf(f.Path))
	}

	anyMatch := func(pred func(path, name string) bool) bool {
		for i := range paths {
			if pred(paths[i], names[i]) {
				return true
			}
		}
		return false
	}

	switch {
	case anyMatch(func(p, n string) bool {
		return strings.Contains(p, "cli") || n == "main.py" || n == "main.js"
	}):
		return TypeCLI
	case anyMatch(func(p, n string) bool {
		return strings.Contains(p, "api") || n == "app.py" || n == "server.js"
	}):
		return TypeAPI
	case anyMatch(func(p, n string) bool {
		return strings.Contains(p, "web") || n == "index.html"
	}):
		return TypeWebApp
	case anyMatch(func(p, _ string) bool {
		return strings.Contains(p, "ml") || strings.Contains(p, "model")
	}):
		return TypeML
	case anyMatch(func(p, _ string) bool {
		return strings.Contains(p, "script") || strings.Contains(p, "automation")
	}):
		return TypeAutomation
	case anyMatch(func(p, _ string) bool {
		return strings.Contains(p, "lib") || strings.Contains(p, "library")
	}):
		return TypeLibrary
	}
	return TypeOther
}

// InferMaturity classifies the snapshot into a maturity tier from four
// structural booleans. The rules are monotonic: turning any predicate true
// can only raise the tier.
func InferMaturity(files []ingest.FileEntry) Maturity {
	var hasTests, hasCI, hasDocs, hasVersion bool
	for _, f := range files {
		path := strings.ToLower(f.Path)
		name := strings.ToLower(baseOf(f.Path))
		if strings.Contains(path, "test") {
			hasTests = true
		}
		if strings.Contains(path, "ci") || strings.Contains(path, ".github") {
			hasCI = true
		}
		if strings.Contains(path, "doc") || strings.Contains(name, "readme") {
			hasDocs = true
		}
		if strings.Contains(name, "version") {
			hasVersion = true
		}
	}

	if hasTests && hasCI && hasDocs && hasVersion {
		return MaturityProduction
	}
	if hasTests && hasDocs {
		return MaturityMVP
	}
	return MaturityPrototype
}

// InferActivity buckets the most recent commit's age relative to now.
// No commits means low; a date git produced but we cannot parse means
// unknown.
func InferActivity(commits []ingest.CommitRecord, now time.Time) string {
	if len(commits) == 0 {
		return ActivityLow
	}
	last, err := time.Parse(time.RFC3339, commits[0].Date)
	if err != nil {
		return ActivityUnknown
	}
	days := int(now.Sub(last).Hours() / 24)
	switch {
	case days < 30:
		return ActivityHigh
	case days < 90:
		return ActivityMedium
	default:
		return ActivityLow
	}
}

func sortedUnion(a, b []string) []string {
	set := make(map[string]bool, len(a)+len(b))
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		set[s] = true
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extOf and baseOf work on slash- or OS-separated relative paths.
func extOf(path string) string {
	base := baseOf(path)
	if i := strings.LastIndex(base, "."); i >= 0 {
		return base[i:]
	}
	return ""
}

func baseOf(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
