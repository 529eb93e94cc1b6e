package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/repocard/repocard/internal/card"
	"github.com/repocard/repocard/internal/config"
	"github.com/repocard/repocard/internal/github"
	"github.com/repocard/repocard/internal/ingest"
	"github.com/repocard/repocard/internal/output"
	"github.com/repocard/repocard/internal/reason"
	"github.com/repocard/repocard/internal/signals"
	"github.com/repocard/repocard/internal/store"
)

// analysis bundles everything one pipeline run produces.
type analysis struct {
	Snapshot *ingest.Snapshot
	Signals  signals.Signals
	Metrics  *github.Metrics
	Engine   reason.Engine
	Insights *reason.Insights
	Card     *card.Card
}

// analyzeSource runs the full pipeline against a local path or GitHub URL.
// GitHub enrichment applies only to URL sources and degrades with a warning
// when the API is unreachable; reasoning failures degrade to the fallback
// bundle. Only ingestion problems abort the run.
func analyzeSource(ctx context.Context, cfg *config.Config, source, engineName string) (*analysis, error) {
	skip := func(path, why string) {
		verbosef("skipped %s: %s", path, why)
	}

	var (
		snap *ingest.Snapshot
		err  error
	)
	if ingest.IsRemoteURL(source) {
		cloner := &github.Cloner{Warn: warnf}
		verbosef("cloning %s", source)
		snap, err = ingest.Remote(source, cloner, skip)
	} else {
		snap, err = ingest.Local(source, skip)
	}
	if err != nil {
		return nil, err
	}
	verbosef("collected %d files, %d commits", len(snap.Files), len(snap.Commits))

	sig := signals.Extract(snap)

	var (
		metrics   *github.Metrics
		techStack []string
	)
	if snap.IsRemoteClone {
		client := github.NewClient(cfg.GitHubToken)
		client.Warn = warnf
		metrics, err = client.GetMetrics(ctx, snap.RemoteURL)
		if err != nil {
			warnf("GitHub enrichment unavailable: %v", err)
			metrics = nil
		} else {
			merged := github.MergeLanguages(sig.Languages, metrics.LanguageStats)
			techStack = append(merged, sig.Frameworks...)
		}
	}

	if engineName == "" {
		engineName = cfg.Engine
	}
	engine := reason.Select(engineName, reason.Credentials{
		OpenAIKey:    cfg.OpenAIKey,
		AnthropicKey: cfg.AnthropicKey,
		OllamaHost:   cfg.OllamaHost,
		Model:        cfg.Model,
	})
	verbosef("reasoning with %s engine", engine.Name())

	content := reason.SelectContent(snap, cfg.ContentBudget)
	insights := reason.Run(ctx, engine, sig, content, warnf)

	c := card.Generate(snap, sig, insights, techStack)
	if metrics != nil && c.OneLiner == "" && metrics.Repository.Description != "" {
		c.OneLiner = metrics.Repository.Description
	}

	return &analysis{
		Snapshot: snap,
		Signals:  sig,
		Metrics:  metrics,
		Engine:   engine,
		Insights: insights,
		Card:     c,
	}, nil
}

// outputPath resolves where the card file goes: an explicit -o wins; local
// repositories get the card next to their files; clones get it in the
// working directory since the clone is gone by now.
func outputPath(snap *ingest.Snapshot, cfg *config.Config, override string) string {
	if override != "" {
		return override
	}
	if snap.IsRemoteClone {
		return cfg.OutputFile
	}
	return filepath.Join(snap.RootPath, cfg.OutputFile)
}

// recordRun appends the run to the history database. History is best-effort
// bookkeeping: any failure is reduced to a verbose note.
func recordRun(a *analysis, source, status, outPath string) {
	db, err := store.Open(config.DBPath())
	if err != nil {
		verbosef("history unavailable: %v", err)
		return
	}
	defer func() { _ = db.Close() }()

	r := &store.Run{
		ProjectName: a.Card.ProjectName,
		Source:      source,
		Remote:      a.Snapshot.IsRemoteClone,
		ProjectType: a.Card.ProjectType,
		Status:      status,
		Engine:      a.Engine.Name(),
		OutputPath:  outPath,
	}
	if a.Metrics != nil {
		score := a.Metrics.PopularityScore()
		r.PopularityScore = &score
	}
	if _, err := db.InsertRun(r); err != nil {
		verbosef("recording run: %v", err)
	}
}

// renderCard prints the card as styled tables.
func renderCard(c *card.Card) {
	fmt.Println(output.Section("Project Card"))
	fmt.Println()

	kv := func(label, value string) {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render(label+":"), output.StyleValue.Render(value))
	}
	kv("Project", c.ProjectName)
	kv("Type", c.ProjectType)
	kv("Status", c.Status)
	kv("One-liner", c.OneLiner)
	fmt.Println()

	fmt.Printf(" %s\n   %s\n", output.StyleBold.Render("Problem"), c.Problem)
	fmt.Printf(" %s\n   %s\n", output.StyleBold.Render("Solution"), c.Solution)
	fmt.Printf(" %s\n   %s\n", output.StyleBold.Render("Value"), c.ValueProposition)
	fmt.Printf(" %s\n   %s\n", output.StyleBold.Render("Users"), c.TargetUsers)
	fmt.Println()

	if len(c.TechStack) > 0 {
		tbl := output.NewTable("Tech Stack")
		for _, t := range c.TechStack {
			tbl.AddRow(t)
		}
		tbl.Print()
		fmt.Println()
	}

	if len(c.KeyFeatures) > 0 {
		fmt.Printf(" %s\n", output.StyleBold.Render("Key Features"))
		for _, f := range c.KeyFeatures {
			fmt.Printf("   - %s\n", f)
		}
		fmt.Println()
	}

	kv("Current focus", c.CurrentFocus)
	kv("Future plans", c.FuturePlans)
	fmt.Println()
}

// renderMetrics prints the GitHub enrichment summary.
func renderMetrics(m *github.Metrics) {
	fmt.Println(output.Section("GitHub Metrics"))
	fmt.Println()

	now := time.Now().UTC()
	tbl := output.NewTable("Metric", "Value")
	tbl.AddRow("Repository", m.Repository.FullName)
	tbl.AddRow("Stars", fmt.Sprintf("%d", m.Repository.Stars))
	tbl.AddRow("Forks", fmt.Sprintf("%d", m.Repository.Forks))
	tbl.AddRow("Open issues", fmt.Sprintf("%d", m.Repository.OpenIssues))
	tbl.AddRow("Contributors", fmt.Sprintf("%d", len(m.Contributors)))
	tbl.AddRow("Popularity score", fmt.Sprintf("%.1f", m.PopularityScore()))
	tbl.AddRow("Activity", m.ActivityTier(now))
	if m.Repository.License != "" {
		tbl.AddRow("License", m.Repository.License)
	}
	tbl.Print()
	fmt.Println()

	indicators := m.MaturityIndicators(now)
	fmt.Printf(" %s\n", output.StyleBold.Render("Maturity Indicators"))
	for _, name := range []string{"has_license", "has_wiki", "has_pages", "multiple_contributors", "established", "popular"} {
		mark := output.StyleError.Render("no")
		if indicators[name] {
			mark = output.StyleSuccess.Render("yes")
		}
		fmt.Printf("   %-22s %s\n", name, mark)
	}
	fmt.Println()
}

// renderJSON writes v as indented JSON to stdout.
func renderJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
