// Package content holds every piece of static conversation data: menu labels,
// informational copy, the keyword table, onboarding prompts and the guided-flow
// question tables. The data ships as an embedded YAML document so operators can
// retune the copy without touching the dialogue core.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Texts groups the fixed reply copy.
type Texts struct {
	About        string `yaml:"about"`
	Services     string `yaml:"services"`
	Pricing      string `yaml:"pricing"`
	Support      string `yaml:"support"`
	FAQ          string `yaml:"faq"`
	Farewell     string `yaml:"farewell"`
	Fallback     string `yaml:"fallback"`
	FlowInvite   string `yaml:"flow_invite"`
	FlowDeclined string `yaml:"flow_declined"`
	// Welcome is a fmt template taking the visitor's name.
	Welcome       string `yaml:"welcome"`
	SummaryHeader string `yaml:"summary_header"`
	SummaryFooter string `yaml:"summary_footer"`
}

// KeywordEntry maps one intent to its trigger substrings. Entry order in the
// catalog is the classifier's priority order.
type KeywordEntry struct {
	Intent   string   `yaml:"intent"`
	Triggers []string `yaml:"triggers"`
}

// OnboardingStep is one prompt of the contact form.
type OnboardingStep struct {
	Key    string `yaml:"key"`
	Prompt string `yaml:"prompt"`
	Error  string `yaml:"error"`
}

// Question is one guided-flow entry: the prompt shown to the visitor, the
// quick-reply options, and the label used in the closing summary.
type Question struct {
	Label   string   `yaml:"label"`
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
}

// Catalog is the full static-content set for the assistant.
type Catalog struct {
	BotName            string           `yaml:"bot_name"`
	Menu               []string         `yaml:"menu"`
	Greetings          []string         `yaml:"greetings"`
	Affirmatives       []string         `yaml:"affirmatives"`
	FlowConfirmOptions []string         `yaml:"flow_confirm_options"`
	Texts              Texts            `yaml:"texts"`
	Keywords           []KeywordEntry   `yaml:"keywords"`
	Onboarding         []OnboardingStep `yaml:"onboarding"`
	Questions          []Question       `yaml:"questions"`
}

// Default returns the embedded catalog. It panics on a malformed embed, which
// can only happen from a bad build.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog invalid: %v", err))
	}
	return c
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Menu) == 0 {
		return fmt.Errorf("content: menu is empty")
	}
	if len(c.Greetings) == 0 {
		return fmt.Errorf("content: greetings are empty")
	}
	if len(c.Affirmatives) == 0 {
		return fmt.Errorf("content: affirmatives are empty")
	}
	if len(c.Onboarding) == 0 {
		return fmt.Errorf("content: onboarding steps are empty")
	}
	for i, step := range c.Onboarding {
		if step.Key == "" || step.Prompt == "" {
			return fmt.Errorf("content: onboarding step %d missing key or prompt", i)
		}
	}
	if len(c.Questions) == 0 {
		return fmt.Errorf("content: flow questions are empty")
	}
	for i, q := range c.Questions {
		if q.Label == "" || q.Prompt == "" {
			return fmt.Errorf("content: question %d missing label or prompt", i)
		}
	}
	for i, e := range c.Keywords {
		if e.Intent == "" || len(e.Triggers) == 0 {
			return fmt.Errorf("content: keyword entry %d missing intent or triggers", i)
		}
	}
	return nil
}

// MenuOptions returns a copy of the main-menu labels.
func (c *Catalog) MenuOptions() []string {
	return append([]string(nil), c.Menu...)
}
