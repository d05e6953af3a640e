package dialogue

import "time"

// FlowStage tags the guided flow's current phase.
type FlowStage string

const (
	// FlowStageConfirm waits for the visitor to accept or decline the flow.
	FlowStageConfirm FlowStage = "confirm"
	// FlowStageAsking walks through the question table.
	FlowStageAsking FlowStage = "asking"
)

// OnboardingState tracks the three-step contact form.
// StepIndex advances by exactly one per accepted input.
type OnboardingState struct {
	StepIndex int               `json:"stepIndex"`
	Collected map[string]string `json:"collected"`
}

// FlowState tracks the guided "start your journey" questionnaire.
// While the stage is asking, len(Answers) always equals QuestionIndex.
type FlowState struct {
	Stage         FlowStage `json:"stage"`
	QuestionIndex int       `json:"questionIndex"`
	Answers       []string  `json:"answers"`
}

// Profile holds the visitor details collected by onboarding.
// Written once per session and never overwritten.
type Profile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Session is the per-visitor conversation state carried across turns.
// At most one of Onboarding / Flow governs routing on any turn.
type Session struct {
	ID         string           `json:"id"`
	Onboarding *OnboardingState `json:"onboarding,omitempty"`
	Flow       *FlowState       `json:"flow,omitempty"`
	Profile    *Profile         `json:"profile,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// NewSession provisions an empty session for a visitor.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{ID: id, CreatedAt: now, UpdatedAt: now}
}

// BeginOnboarding (re)enters the contact form from step zero and drops any
// previously stored profile.
func (s *Session) BeginOnboarding() {
	s.Onboarding = &OnboardingState{StepIndex: 0, Collected: make(map[string]string)}
	s.Profile = nil
}

// BeginFlow arms the questionnaire at its confirmation gate.
func (s *Session) BeginFlow() {
	s.Flow = &FlowState{Stage: FlowStageConfirm, QuestionIndex: 0, Answers: make([]string, 0, 8)}
}
