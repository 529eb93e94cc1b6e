// Package reason generates project insights from technical signals and
// selected repository content. Engines are interchangeable implementations
// of a single capability; backend failures degrade to a fixed fallback
// bundle and never abort the pipeline.
package reason

import (
	"context"

	"github.com/repocard/repocard/internal/signals"
)

// Insights is the structured output of one reasoning call.
type Insights struct {
	Problem          string   `json:"problem"`
	Solution         string   `json:"solution"`
	ValueProposition string   `json:"value_proposition"`
	TargetUsers      string   `json:"target_users"`
	KeyFeatures      []string `json:"key_features"`
	CurrentFocus     string   `json:"current_focus"`
	FuturePlans      string   `json:"future_plans"`
}

// Engine produces Insights from signals and a content digest. Exactly one
// Reason call happens per run.
type Engine interface {
	// Name identifies the engine in user-facing output.
	Name() string

	// Reason generates insights. Implementations backed by remote
	// services return an error on call, timeout, or parse failure;
	// callers go through Run, which substitutes the fallback bundle.
	Reason(ctx context.Context, sig signals.Signals, content string) (*Insights, error)
}

// Run invokes the engine and shields the pipeline from its failures: any
// error is replaced by the fixed fallback bundle. The warn callback, when
// non-nil, receives the swallowed error.
func Run(ctx context.Context, e Engine, sig signals.Signals, content string, warn func(format string, args ...any)) *Insights {
	out, err := e.Reason(ctx, sig, content)
	if err != nil {
		if warn != nil {
			warn("%s reasoning failed, using fallback insights: %v", e.Name(), err)
		}
		return Fallback()
	}
	return out
}

// Fallback returns the fixed Insights bundle used whenever a backend
// fails. Every engine shares this bundle so failures are indistinguishable
// from offline mode.
func Fallback() *Insights {
	return &Insights{
		Problem:          "This project addresses specific technical challenges in its domain.",
		Solution:         "The project provides a comprehensive solution using modern development practices.",
		ValueProposition: "Offers improved efficiency, reliability, and user experience.",
		TargetUsers:      "Developers, engineers, and technical professionals.",
		KeyFeatures: []string{
			"Modern architecture and design",
			"Comprehensive functionality",
			"Developer-friendly interface",
			"Reliable performance",
		},
		CurrentFocus: "Enhancing core features and improving documentation.",
		FuturePlans:  "Expanding capabilities and growing the user community.",
	}
}
