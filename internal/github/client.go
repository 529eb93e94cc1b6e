package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiTimeout     = 30 * time.Second
	userAgent      = "repocard/1.0"

	// contributorLimit caps the contributor list at one page.
	contributorLimit = 30
)

// urlPatterns are the accepted GitHub URL shapes, tried in order.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`),
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`),
}

// ParseOwnerRepo extracts the owner and repository name from a GitHub URL.
// It accepts https, ssh, and bare github.com forms, with or without a
// trailing .git.
func ParseOwnerRepo(rawURL string) (owner, repo string, err error) {
	for _, pattern := range urlPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], m[2], nil
		}
	}
	return "", "", fmt.Errorf("invalid GitHub URL format: %s", rawURL)
}

// Client is a thin wrapper around the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	// Warn receives non-fatal fetch problems (contributors, languages).
	// Nil means warnings are dropped.
	Warn func(format string, args ...any)
}

// NewClient creates a client. The token may be empty, in which case
// requests are unauthenticated and subject to the lower rate limit.
func NewClient(token string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: apiTimeout},
	}
}

func (c *Client) warnf(format string, args ...any) {
	if c.Warn != nil {
		c.Warn(format, args...)
	}
}

// get issues a GET against the API and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned %d: %.200s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// repositoryResponse mirrors the fields we use from GET /repos/{owner}/{repo}.
type repositoryResponse struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     *string  `json:"description"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	Language        *string  `json:"language"`
	Topics          []string `json:"topics"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
	Size            int      `json:"size"`
	DefaultBranch   string   `json:"default_branch"`
	License         *struct {
		Name string `json:"name"`
	} `json:"license"`
	HasWiki     bool `json:"has_wiki"`
	HasPages    bool `json:"has_pages"`
	HasProjects bool `json:"has_projects"`
	Archived    bool `json:"archived"`
	Disabled    bool `json:"disabled"`
}

// GetRepository fetches core repository attributes. A failure here is a
// hard error for enrichment.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	var raw repositoryResponse
	if err := c.get(ctx, "/repos/"+owner+"/"+repo, &raw); err != nil {
		return nil, fmt.Errorf("fetching repository %s/%s: %w", owner, repo, err)
	}

	r := &Repository{
		Name:          raw.Name,
		FullName:      raw.FullName,
		Stars:         raw.StargazersCount,
		Forks:         raw.ForksCount,
		OpenIssues:    raw.OpenIssuesCount,
		Topics:        raw.Topics,
		SizeKB:        raw.Size,
		DefaultBranch: raw.DefaultBranch,
		HasWiki:       raw.HasWiki,
		HasPages:      raw.HasPages,
		HasProjects:   raw.HasProjects,
		Archived:      raw.Archived,
		Disabled:      raw.Disabled,
	}
	if raw.Description != nil {
		r.Description = *raw.Description
	}
	if raw.Language != nil {
		r.Language = *raw.Language
	}
	if raw.License != nil {
		r.License = raw.License.Name
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, raw.CreatedAt)
	r.UpdatedAt, _ = time.Parse(time.RFC3339, raw.UpdatedAt)
	r.PushedAt, _ = time.Parse(time.RFC3339, raw.PushedAt)
	return r, nil
}

// GetContributors fetches the contributor list, capped at contributorLimit.
// On failure it returns an empty list; missing contributor data degrades
// the popularity score, nothing more.
func (c *Client) GetContributors(ctx context.Context, owner, repo string) []Contributor {
	var raw []struct {
		Login         string `json:"login"`
		Contributions int    `json:"contributions"`
		Type          string `json:"type"`
	}
	path := fmt.Sprintf("/repos/%s/%s/contributors?per_page=%d", owner, repo, contributorLimit)
	if err := c.get(ctx, path, &raw); err != nil {
		c.warnf("fetching contributors for %s/%s: %v", owner, repo, err)
		return nil
	}

	contributors := make([]Contributor, 0, len(raw))
	for _, entry := range raw {
		contributors = append(contributors, Contributor{
			Login:         entry.Login,
			Contributions: entry.Contributions,
			Type:          entry.Type,
		})
	}
	return contributors
}

// GetLanguageStats fetches the per-language byte histogram. On failure it
// returns empty stats.
func (c *Client) GetLanguageStats(ctx context.Context, owner, repo string) LanguageStats {
	languages := make(map[string]int)
	if err := c.get(ctx, "/repos/"+owner+"/"+repo+"/languages", &languages); err != nil {
		c.warnf("fetching language stats for %s/%s: %v", owner, repo, err)
		return LanguageStats{Languages: map[string]int{}}
	}

	total := 0
	for _, b := range languages {
		total += b
	}
	return LanguageStats{Languages: languages, TotalBytes: total}
}

// GetMetrics fetches all metadata for the repository behind repoURL. The
// repository fetch must succeed; contributors and language stats are
// fetched concurrently and degrade to empty results on failure.
func (c *Client) GetMetrics(ctx context.Context, repoURL string) (*Metrics, error) {
	owner, repo, err := ParseOwnerRepo(repoURL)
	if err != nil {
		return nil, err
	}

	repository, err := c.GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	var (
		contributors []Contributor
		stats        LanguageStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contributors = c.GetContributors(gctx, owner, repo)
		return nil
	})
	g.Go(func() error {
		stats = c.GetLanguageStats(gctx, owner, repo)
		return nil
	})
	_ = g.Wait() // sub-fetches never return errors

	return &Metrics{
		Repository:    *repository,
		Contributors:  contributors,
		LanguageStats: stats,
		CloneURL:      fmt.Sprintf("https://github.com/%s/%s.git", owner, repo),
		SSHURL:        fmt.Sprintf("git@github.com:%s/%s.git", owner, repo),
	}, nil
}

// GetRateLimit fetches the current core API rate-limit window.
func (c *Client) GetRateLimit(ctx context.Context) (*RateLimit, error) {
	var raw struct {
		Rate struct {
			Limit     int   `json:"limit"`
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		} `json:"rate"`
	}
	if err := c.get(ctx, "/rate_limit", &raw); err != nil {
		return nil, fmt.Errorf("fetching rate limit: %w", err)
	}
	return &RateLimit{
		Limit:     raw.Rate.Limit,
		Remaining: raw.Rate.Remaining,
		Reset:     time.Unix(raw.Rate.Reset, 0).UTC(),
	}, nil
}

// SetBaseURL overrides the API base URL. Used by tests to point the client
// at a local server.
func (c *Client) SetBaseURL(base string) error {
	if _, err := url.Parse(base); err != nil {
		return fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	c.baseURL = base
	return nil
}
