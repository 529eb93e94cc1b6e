package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseOwnerRepo(t *testing.T) {
	tests := []struct {
		url       string
		owner     string
		repo      string
		expectErr bool
	}{
		{"https://github.com/golang/go", "golang", "go", false},
		{"https://github.com/golang/go.git", "golang", "go", false},
		{"https://github.com/golang/go/", "golang", "go", false},
		{"git@github.com:spf13/cobra.git", "spf13", "cobra", false},
		{"github.com/charmbracelet/lipgloss", "charmbracelet", "lipgloss", false},
		{"https://gitlab.com/owner/repo", "", "", true},
		{"not a url", "", "", true},
	}
	for _, tt := range tests {
		owner, repo, err := ParseOwnerRepo(tt.url)
		if tt.expectErr {
			if err == nil {
				t.Errorf("ParseOwnerRepo(%q) expected error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOwnerRepo(%q): %v", tt.url, err)
			continue
		}
		if owner != tt.owner || repo != tt.repo {
			t.Errorf("ParseOwnerRepo(%q) = %s/%s, want %s/%s", tt.url, owner, repo, tt.owner, tt.repo)
		}
	}
}

const repoJSON = `{
	"name": "demo",
	"full_name": "octocat/demo",
	"description": "A demo repository",
	"stargazers_count": 100,
	"forks_count": 20,
	"open_issues_count": 5,
	"language": "Go",
	"created_at": "2024-01-01T00:00:00Z",
	"updated_at": "2026-08-01T00:00:00Z",
	"pushed_at": "2026-08-20T00:00:00Z",
	"size": 2048,
	"default_branch": "main",
	"license": {"name": "MIT License"},
	"has_wiki": true
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient("")
	if err := client.SetBaseURL(srv.URL); err != nil {
		t.Fatalf("SetBaseURL: %v", err)
	}
	return client, srv
}

func TestGetRepository(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/demo" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(repoJSON))
	})

	repo, err := client.GetRepository(context.Background(), "octocat", "demo")
	if err != nil {
		t.Fatalf("GetRepository: %v", err)
	}
	if repo.Stars != 100 || repo.Forks != 20 {
		t.Errorf("stars/forks = %d/%d, want 100/20", repo.Stars, repo.Forks)
	}
	if repo.License != "MIT License" {
		t.Errorf("license = %q", repo.License)
	}
	if repo.Description != "A demo repository" {
		t.Errorf("description = %q", repo.Description)
	}
}

func TestGetRepository_NotFound(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	if _, err := client.GetRepository(context.Background(), "octocat", "gone"); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestGetMetrics_SubFetchesDegrade(t *testing.T) {
	var warnings int
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/demo":
			_, _ = w.Write([]byte(repoJSON))
		default:
			// Contributors and languages both fail.
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	})
	client.Warn = func(format string, args ...any) { warnings++ }

	m, err := client.GetMetrics(context.Background(), "https://github.com/octocat/demo")
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if len(m.Contributors) != 0 {
		t.Errorf("contributors should degrade to empty, got %d", len(m.Contributors))
	}
	if len(m.LanguageStats.Languages) != 0 {
		t.Errorf("languages should degrade to empty, got %v", m.LanguageStats.Languages)
	}
	if warnings != 2 {
		t.Errorf("expected 2 warnings, got %d", warnings)
	}
	if m.CloneURL != "https://github.com/octocat/demo.git" {
		t.Errorf("clone URL = %q", m.CloneURL)
	}
	if m.SSHURL != "git@github.com:octocat/demo.git" {
		t.Errorf("ssh URL = %q", m.SSHURL)
	}
}

func TestGetMetrics_Full(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/demo":
			_, _ = w.Write([]byte(repoJSON))
		case "/repos/octocat/demo/contributors":
			_, _ = w.Write([]byte(`[{"login": "octocat", "contributions": 42, "type": "User"},
				{"login": "hubot", "contributions": 7, "type": "Bot"}]`))
		case "/repos/octocat/demo/languages":
			_, _ = w.Write([]byte(`{"Go": 9000, "Shell": 1000}`))
		default:
			http.NotFound(w, r)
		}
	})

	m, err := client.GetMetrics(context.Background(), "https://github.com/octocat/demo")
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if len(m.Contributors) != 2 || m.Contributors[0].Login != "octocat" {
		t.Errorf("contributors = %+v", m.Contributors)
	}
	if m.LanguageStats.TotalBytes != 10000 {
		t.Errorf("total bytes = %d, want 10000", m.LanguageStats.TotalBytes)
	}
}

func TestGetRateLimit(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rate_limit" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"rate": {"limit": 5000, "remaining": 4321, "reset": 1767225600}}`))
	})

	limit, err := client.GetRateLimit(context.Background())
	if err != nil {
		t.Fatalf("GetRateLimit: %v", err)
	}
	if limit.Limit != 5000 || limit.Remaining != 4321 {
		t.Errorf("limit = %+v", limit)
	}
}

func TestClient_AuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("token123")
	if err := client.SetBaseURL(srv.URL); err != nil {
		t.Fatalf("SetBaseURL: %v", err)
	}
	var out map[string]any
	if err := client.get(context.Background(), "/rate_limit", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer token123" {
		t.Errorf("Authorization = %q, want Bearer token123", gotAuth)
	}
}
