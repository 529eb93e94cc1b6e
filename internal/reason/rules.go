package reason

import (
	"context"
	"strings"

	"github.com/repocard/repocard/internal/signals"
)

// RulesEngine is the offline rule-based engine. It maps the project type to
// a pre-written insight bundle and scans the content digest for feature and
// focus keywords. It is the terminal fallback of engine selection and never
// fails.
//
// The keyword heuristics are illustrative defaults, not precision
// instruments: a changelog that happens to mention "auth0" will still
// trigger the authentication feature.
type RulesEngine struct{}

func (RulesEngine) Name() string { return "rules" }

func (RulesEngine) Reason(_ context.Context, sig signals.Signals, content string) (*Insights, error) {
	bundle := typeBundle(sig.ProjectType)
	features, focus := scanContent(content)
	return &Insights{
		Problem:          bundle.problem,
		Solution:         bundle.solution,
		ValueProposition: bundle.value,
		TargetUsers:      bundle.targetUsers,
		KeyFeatures:      features,
		CurrentFocus:     focus,
		FuturePlans:      bundle.futurePlans,
	}, nil
}

type insightBundle struct {
	problem     string
	solution    string
	value       string
	targetUsers string
	futurePlans string
}

// typeBundle returns the pre-written bundle for a project type. Types
// without a dedicated bundle share the default.
func typeBundle(t signals.ProjectType) insightBundle {
	switch t {
	case signals.TypeWebApp:
		return insightBundle{
			problem:     "Building modern web applications requires managing complex frontend and backend interactions, state management, and user experience optimization.",
			solution:    "This web application provides a streamlined architecture with modern frameworks and best practices for scalable development.",
			value:       "Delivers fast, responsive user experiences with maintainable code architecture.",
			targetUsers: "Web developers, frontend engineers, and product teams building user-facing applications.",
			futurePlans: "Expanding cross-platform support and adding advanced user interface components.",
		}
	case signals.TypeCLI:
		return insightBundle{
			problem:     "Developers need efficient command-line tools that are easy to use, well-documented, and integrate seamlessly into existing workflows.",
			solution:    "This CLI tool provides intuitive commands with comprehensive help documentation and robust error handling.",
			value:       "Streamlines development workflows and automates repetitive tasks with reliable command-line interface.",
			targetUsers: "Software developers, DevOps engineers, and system administrators.",
			futurePlans: "Adding more automation features and improving cross-platform compatibility.",
		}
	case signals.TypeAPI:
		return insightBundle{
			problem:     "Creating robust APIs requires careful design of endpoints, data validation, authentication, and comprehensive documentation.",
			solution:    "This API provides well-structured endpoints with automatic validation, clear documentation, and scalable architecture.",
			value:       "Enables reliable data exchange and integration with comprehensive API documentation and testing tools.",
			targetUsers: "Backend developers, API consumers, and integration teams.",
			futurePlans: "Expanding API endpoints and improving performance optimization.",
		}
	case signals.TypeLibrary:
		return insightBundle{
			problem:     "Developers need reusable, well-tested libraries that solve common problems without adding unnecessary complexity.",
			solution:    "This library provides clean APIs, comprehensive documentation, and thorough testing for reliable integration.",
			value:       "Accelerates development by providing tested, reusable components with clear documentation.",
			targetUsers: "Software developers and engineering teams building applications.",
			futurePlans: "Adding new features and maintaining backward compatibility.",
		}
	default:
		return insightBundle{
			problem:     "This project addresses specific technical challenges in its domain with innovative solutions.",
			solution:    "Implements comprehensive functionality using modern development practices and proven patterns.",
			value:       "Provides reliable, efficient solutions that improve productivity and code quality.",
			targetUsers: "Developers, engineers, and technical professionals in the relevant domain.",
			futurePlans: "Expanding capabilities and improving user experience based on community feedback.",
		}
	}
}

// maxFeatures caps the detected feature list.
const maxFeatures = 5

// featureProbes are checked in order; the first five hits become the
// feature list.
var featureProbes = []struct {
	keywords []string
	feature  string
}{
	{[]string{"test", "spec"}, "Comprehensive testing suite"},
	{[]string{"docker"}, "Containerized deployment"},
	{[]string{"api", "endpoint"}, "RESTful API design"},
	{[]string{"react", "vue", "angular"}, "Modern frontend framework"},
	{[]string{"typescript"}, "Type-safe development"},
	{[]string{"auth", "login"}, "Authentication system"},
	{[]string{"database", "db"}, "Database integration"},
}

// genericFeatures are used when no probe hits.
var genericFeatures = []string{
	"Clean, maintainable code architecture",
	"Comprehensive documentation",
	"User-friendly interface",
	"Reliable performance",
}

// focusProbes are checked in priority order; the first hit decides the
// current-focus sentence.
var focusProbes = []struct {
	keywords []string
	focus    string
}{
	{[]string{"todo", "fixme"}, "Addressing technical debt and implementing planned improvements."},
	{[]string{"beta", "alpha"}, "Stabilizing features and preparing for production release."},
	{[]string{"v1", "release"}, "Finalizing features and ensuring production readiness."},
}

const defaultFocus = "Improving core functionality and user experience."

func scanContent(content string) (features []string, focus string) {
	lower := strings.ToLower(content)

	for _, probe := range featureProbes {
		for _, kw := range probe.keywords {
			if strings.Contains(lower, kw) {
				features = append(features, probe.feature)
				break
			}
		}
		if len(features) == maxFeatures {
			break
		}
	}
	if len(features) == 0 {
		features = append(features, genericFeatures...)
	}

	focus = defaultFocus
	for _, probe := range focusProbes {
		for _, kw := range probe.keywords {
			if strings.Contains(lower, kw) {
				return features, probe.focus
			}
		}
	}
	return features, focus
}
