package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/repocard/repocard/internal/config"
	"github.com/repocard/repocard/internal/ingest"
)

func TestOutputPath(t *testing.T) {
	cfg := &config.Config{OutputFile: "repocard.yaml"}

	local := &ingest.Snapshot{RootPath: "/home/dev/demo"}
	if got := outputPath(local, cfg, ""); got != filepath.Join("/home/dev/demo", "repocard.yaml") {
		t.Errorf("local path = %q", got)
	}

	clone := &ingest.Snapshot{RootPath: "/tmp/repocard-demo-123", IsRemoteClone: true}
	if got := outputPath(clone, cfg, ""); got != "repocard.yaml" {
		t.Errorf("clone path = %q", got)
	}

	if got := outputPath(local, cfg, "/custom/out.yaml"); got != "/custom/out.yaml" {
		t.Errorf("override ignored, got %q", got)
	}
}

func TestAnalyzeSource_LocalWithMockEngine(t *testing.T) {
	root := t.TempDir()
	readme := "# Pipeline Demo\n\nA test fixture.\n"
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte(readme), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "main.py"), []byte("print('hi')\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := &config.Config{
		Engine:        "mock",
		ContentBudget: config.DefaultContentBudget,
		OutputFile:    "repocard.yaml",
	}

	a, err := analyzeSource(context.Background(), cfg, root, "")
	if err != nil {
		t.Fatalf("analyzeSource: %v", err)
	}
	if a.Card.ProjectName != "Pipeline Demo" {
		t.Errorf("ProjectName = %q", a.Card.ProjectName)
	}
	if a.Card.ProjectType != "cli" {
		t.Errorf("ProjectType = %q, want cli", a.Card.ProjectType)
	}
	if a.Metrics != nil {
		t.Error("local analysis should not fetch GitHub metrics")
	}
	if a.Engine.Name() != "mock" {
		t.Errorf("engine = %q", a.Engine.Name())
	}
	if err := a.Card.Validate(); err != nil {
		t.Errorf("generated card should validate: %v", err)
	}
}

func TestAnalyzeSource_EngineOverride(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("# X\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := &config.Config{Engine: "mock", ContentBudget: 100, OutputFile: "repocard.yaml"}
	a, err := analyzeSource(context.Background(), cfg, root, "rules")
	if err != nil {
		t.Fatalf("analyzeSource: %v", err)
	}
	if a.Engine.Name() != "rules" {
		t.Errorf("engine override ignored, got %q", a.Engine.Name())
	}
}

func TestAnalyzeSource_MissingPath(t *testing.T) {
	cfg := &config.Config{Engine: "mock", OutputFile: "repocard.yaml"}
	if _, err := analyzeSource(context.Background(), cfg, filepath.Join(t.TempDir(), "gone"), ""); err == nil {
		t.Fatal("missing path should error")
	}
}
