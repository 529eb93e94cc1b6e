package reason

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/repocard/repocard/internal/signals"
)

// promptExcerptLimit caps how much content goes into a backend prompt.
const promptExcerptLimit = 8000

const systemPrompt = "You are an expert software analyst. Analyze the provided repository information and generate structured insights in JSON format."

// buildPrompt renders the analysis prompt shared by all backend engines.
func buildPrompt(sig signals.Signals, content string) string {
	if len(content) > promptExcerptLimit {
		content = content[:promptExcerptLimit]
	}

	var sb strings.Builder
	sb.WriteString("Analyze this software repository and provide structured insights.\n\n")
	sb.WriteString("TECHNICAL SIGNALS:\n")
	fmt.Fprintf(&sb, "- Languages: %s\n", strings.Join(sig.Languages, ", "))
	fmt.Fprintf(&sb, "- Frameworks: %s\n", strings.Join(sig.Frameworks, ", "))
	fmt.Fprintf(&sb, "- Project Type: %s\n", sig.ProjectType)
	fmt.Fprintf(&sb, "- Maturity: %s\n", sig.Maturity)
	fmt.Fprintf(&sb, "- Activity Level: %s\n\n", sig.Activity)
	fmt.Fprintf(&sb, "REPOSITORY CONTENT (first %d chars):\n%s\n\n", promptExcerptLimit, content)
	sb.WriteString(`Respond with a JSON object containing:
{
    "problem": "What specific problem does this project solve? (1-2 sentences)",
    "solution": "How does this project solve the problem? (1-2 sentences)",
    "value_proposition": "What value does this provide to users? (1-2 sentences)",
    "target_users": "Who are the primary users of this project? (1 sentence)",
    "key_features": ["List 3-5 key features as short phrases"],
    "current_focus": "What is the current development focus? (1 sentence)",
    "future_plans": "What are likely future plans for this project? (1 sentence)"
}

Base your analysis on the actual code, documentation, and project structure.
Be specific and accurate. Respond only with the JSON object.`)
	return sb.String()
}

// parseInsights extracts an Insights object from a backend response,
// tolerating JSON wrapped in a markdown code fence. Missing fields are
// filled from the fallback bundle; an unparseable response is an error.
func parseInsights(response string) (*Insights, error) {
	text := stripCodeFences(response)

	var out Insights
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parsing insights JSON: %w (response was: %.200s)", err, text)
	}

	fb := Fallback()
	if out.Problem == "" {
		out.Problem = fb.Problem
	}
	if out.Solution == "" {
		out.Solution = fb.Solution
	}
	if out.ValueProposition == "" {
		out.ValueProposition = fb.ValueProposition
	}
	if out.TargetUsers == "" {
		out.TargetUsers = fb.TargetUsers
	}
	if len(out.KeyFeatures) == 0 {
		out.KeyFeatures = fb.KeyFeatures
	}
	if out.CurrentFocus == "" {
		out.CurrentFocus = fb.CurrentFocus
	}
	if out.FuturePlans == "" {
		out.FuturePlans = fb.FuturePlans
	}
	return &out, nil
}

// stripCodeFences removes a markdown code fence that some models wrap
// around JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.Index(s, "\n"); i != -1 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "```"); i != -1 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
