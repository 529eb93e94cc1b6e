package reason

import (
	"context"

	"github.com/repocard/repocard/internal/signals"
)

// MockEngine returns predefined insights regardless of input. It backs
// tests and offline mode.
type MockEngine struct{}

func (MockEngine) Name() string { return "mock" }

func (MockEngine) Reason(_ context.Context, _ signals.Signals, _ string) (*Insights, error) {
	return &Insights{
		Problem:          "This project addresses a significant challenge in its domain by providing innovative solutions to common pain points.",
		Solution:         "The project implements a comprehensive approach using best practices and modern technologies to deliver reliable results.",
		ValueProposition: "Offers substantial benefits including improved efficiency, reduced complexity, and enhanced user experience.",
		TargetUsers:      "Developers, engineers, and organizations looking to streamline their workflows and improve productivity.",
		KeyFeatures: []string{
			"Modular architecture for easy customization",
			"Comprehensive documentation and examples",
			"Strong type safety and error handling",
			"Extensible plugin system",
			"High performance and scalability",
		},
		CurrentFocus: "Enhancing core functionality, improving documentation, and gathering user feedback for future improvements.",
		FuturePlans:  "Expand platform support, add advanced features, and build a vibrant community ecosystem.",
	}, nil
}
