package dialogue

import (
	"fmt"

	"github.com/syncailabs/mitra-backend/internal/model/dialogue"
)

// advanceOnboarding runs one turn of the contact form. Accepted input stores
// the trimmed value and moves the step index forward by one; rejected input
// re-prompts and leaves the state untouched. After the final step the profile
// is written, onboarding is cleared and the visitor gets a personalized
// welcome with the main menu. Returns ok=false when onboarding is not active.
func (e *Engine) advanceOnboarding(msg string, sess *dialogue.Session) (dialogue.Reply, bool) {
	ob := sess.Onboarding
	if ob == nil {
		return dialogue.Reply{}, false
	}

	steps := e.catalog.Onboarding
	if ob.StepIndex < 0 || ob.StepIndex >= len(steps) {
		// Corrupt index, e.g. a stale record from an older catalog. Reset.
		sess.Onboarding = nil
		return dialogue.NewReply(fmt.Sprintf(e.catalog.Texts.Welcome, "there"), e.catalog.MenuOptions()), true
	}

	step := steps[ob.StepIndex]
	if !e.acceptOnboardingInput(step.Key, msg) {
		if step.Error != "" {
			return dialogue.NewReply(step.Error, nil), true
		}
		// No dedicated error copy: re-issue the step's own prompt.
		return dialogue.NewReply(step.Prompt, nil), true
	}

	if ob.Collected == nil {
		ob.Collected = make(map[string]string)
	}
	ob.Collected[step.Key] = msg
	ob.StepIndex++

	if ob.StepIndex < len(steps) {
		return dialogue.NewReply(steps[ob.StepIndex].Prompt, nil), true
	}

	sess.Profile = &dialogue.Profile{
		Name:  ob.Collected["name"],
		Phone: ob.Collected["phone"],
		Email: ob.Collected["email"],
	}
	sess.Onboarding = nil

	name := sess.Profile.Name
	if name == "" {
		name = "there"
	}
	return dialogue.NewReply(fmt.Sprintf(e.catalog.Texts.Welcome, name), e.catalog.MenuOptions()), true
}

// acceptOnboardingInput validates one step's input. The message arrives
// already trimmed.
func (e *Engine) acceptOnboardingInput(key, msg string) bool {
	switch key {
	case "phone":
		return phonePattern.MatchString(msg)
	case "email":
		return emailPattern.MatchString(msg)
	default:
		return msg != ""
	}
}
