// Package card assembles, serializes, and validates the YAML project card
// that repocard emits.
package card

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// SchemaVersion is stamped into every generated card.
const SchemaVersion = "1.0"

// Metadata records how and when a card was generated.
type Metadata struct {
	Version     string    `yaml:"version" json:"version" validate:"required"`
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at" validate:"required"`
}

// Card is the structured project description document. Field order here is
// the field order in the serialized YAML.
type Card struct {
	ProjectName      string   `yaml:"project_name" json:"project_name" validate:"required"`
	OneLiner         string   `yaml:"one_liner" json:"one_liner" validate:"required"`
	Problem          string   `yaml:"problem" json:"problem" validate:"required"`
	Solution         string   `yaml:"solution" json:"solution" validate:"required"`
	ValueProposition string   `yaml:"value_proposition" json:"value_proposition" validate:"required"`
	TechStack        []string `yaml:"tech_stack" json:"tech_stack"`
	ProjectType      string   `yaml:"project_type" json:"project_type" validate:"required,oneof=cli api web_app ml automation library other"`
	Status           string   `yaml:"status" json:"status" validate:"required,oneof=prototype mvp production"`
	KeyFeatures      []string `yaml:"key_features" json:"key_features"`
	TargetUsers      string   `yaml:"target_users" json:"target_users" validate:"required"`
	CurrentFocus     string   `yaml:"current_focus" json:"current_focus" validate:"required"`
	FuturePlans      string   `yaml:"future_plans" json:"future_plans" validate:"required"`
	RisksOrGaps      *string  `yaml:"risks_or_gaps" json:"risks_or_gaps"`
	Metadata         Metadata `yaml:"metadata" json:"metadata" validate:"required"`
}

var validate = validator.New()

// Validate checks required fields and enumeration membership. It returns a
// single wrapped error describing the first violation.
func (c *Card) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("invalid card: field %s failed %q validation", e.Field(), e.Tag())
		}
		return fmt.Errorf("invalid card: %w", err)
	}
	return nil
}
