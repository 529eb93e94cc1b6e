// Package github wraps the GitHub REST API for repository metadata and
// provides shallow cloning of remote repositories.
package github

import "time"

// Repository holds the metadata fetched for a single repository.
type Repository struct {
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Description   string    `json:"description"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	OpenIssues    int       `json:"open_issues"`
	Language      string    `json:"language,omitempty"`
	Topics        []string  `json:"topics,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	PushedAt      time.Time `json:"pushed_at"`
	SizeKB        int       `json:"size_kb"`
	DefaultBranch string    `json:"default_branch"`
	License       string    `json:"license,omitempty"`
	HasWiki       bool      `json:"has_wiki"`
	HasPages      bool      `json:"has_pages"`
	HasProjects   bool      `json:"has_projects"`
	Archived      bool      `json:"archived"`
	Disabled      bool      `json:"disabled"`
}

// Contributor is one entry from the repository contributor list.
type Contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	Type          string `json:"type"`
}

// LanguageStats is the per-language byte histogram for a repository.
type LanguageStats struct {
	Languages  map[string]int `json:"languages"`
	TotalBytes int            `json:"total_bytes"`
}

// Metrics aggregates everything fetched for one repository together with
// the derived clone URLs.
type Metrics struct {
	Repository    Repository    `json:"repository"`
	Contributors  []Contributor `json:"contributors"`
	LanguageStats LanguageStats `json:"language_stats"`
	CloneURL      string        `json:"clone_url"`
	SSHURL        string        `json:"ssh_url"`
}

// RateLimit is the core rate-limit window reported by the API.
type RateLimit struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Reset     time.Time `json:"reset"`
}

// PopularityScore combines stars, forks, and contributor count into a
// single weighted score.
func (m *Metrics) PopularityScore() float64 {
	return float64(m.Repository.Stars)*1.0 +
		float64(m.Repository.Forks)*0.5 +
		float64(len(m.Contributors))*0.3
}

// Activity tiers derived from push recency.
const (
	TierVeryActive = "very_active"
	TierActive     = "active"
	TierModerate   = "moderate"
	TierInactive   = "inactive"
)

// ActivityTier buckets the time since the last push into a tier.
func (m *Metrics) ActivityTier(now time.Time) string {
	days := int(now.Sub(m.Repository.PushedAt).Hours() / 24)
	switch {
	case days <= 7:
		return TierVeryActive
	case days <= 30:
		return TierActive
	case days <= 90:
		return TierModerate
	default:
		return TierInactive
	}
}

// MaturityIndicators reports boolean maturity signals derived from the
// fetched metadata.
func (m *Metrics) MaturityIndicators(now time.Time) map[string]bool {
	return map[string]bool{
		"has_license":           m.Repository.License != "",
		"has_wiki":              m.Repository.HasWiki,
		"has_pages":             m.Repository.HasPages,
		"multiple_contributors": len(m.Contributors) > 1,
		"established":           now.Sub(m.Repository.CreatedAt).Hours() > 90*24,
		"popular":               m.Repository.Stars > 10,
	}
}
