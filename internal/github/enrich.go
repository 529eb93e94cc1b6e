package github

import "sort"

// significantShare is the minimum fraction of the byte histogram a language
// must hold to be taken from GitHub data during merging.
const significantShare = 0.05

// maxMergedLanguages caps the merged language list.
const maxMergedLanguages = 10

// MergeLanguages combines locally detected languages with the GitHub byte
// histogram. Languages holding at least 5% of the repository's bytes come
// first, ordered by share descending, followed by local-only detections.
// When GitHub data is empty the local list passes through unchanged.
func MergeLanguages(local []string, stats LanguageStats) []string {
	type share struct {
		name  string
		bytes int
	}

	var remote []share
	for name, b := range stats.Languages {
		if stats.TotalBytes > 0 && float64(b)/float64(stats.TotalBytes) >= significantShare {
			remote = append(remote, share{name, b})
		}
	}
	sort.Slice(remote, func(i, j int) bool {
		if remote[i].bytes != remote[j].bytes {
			return remote[i].bytes > remote[j].bytes
		}
		return remote[i].name < remote[j].name
	})

	if len(remote) == 0 {
		if len(local) > maxMergedLanguages {
			return local[:maxMergedLanguages]
		}
		return local
	}

	merged := make([]string, 0, len(remote)+len(local))
	seen := make(map[string]bool)
	for _, s := range remote {
		merged = append(merged, s.name)
		seen[s.name] = true
	}
	for _, name := range local {
		if !seen[name] {
			merged = append(merged, name)
			seen[name] = true
		}
	}
	if len(merged) > maxMergedLanguages {
		merged = merged[:maxMergedLanguages]
	}
	return merged
}
