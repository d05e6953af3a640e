// Package dialogue implements the conversation state machine behind the chat
// widget: intent classification over a keyword table, static intent dispatch,
// the three-step onboarding form and the seven-question guided flow, and the
// router that decides which of them handles a given turn.
package dialogue

import (
	"regexp"
	"strings"

	"github.com/syncailabs/mitra-backend/internal/content"
	"github.com/syncailabs/mitra-backend/internal/model/dialogue"
)

// Outcome labels which guard handled a turn, for metrics.
type Outcome string

const (
	OutcomeOnboarding Outcome = "onboarding"
	OutcomeFlow       Outcome = "flow"
	OutcomeGreeting   Outcome = "greeting"
	OutcomeMenu       Outcome = "menu"
	OutcomeIntent     Outcome = "intent"
	OutcomeFallback   Outcome = "fallback"
)

// Input shapes accepted by the onboarding form. The phone shape is an optional
// leading +, then 8-16 characters of digits, spaces and hyphens, bracketed by
// digits.
var (
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-]{6,14}[0-9]$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Engine evaluates one conversation turn against a visitor's session. It holds
// only static content and compiled patterns, so a single Engine serves all
// sessions concurrently; per-session exclusivity is the caller's job.
type Engine struct {
	catalog      *content.Catalog
	menuLabels   map[string]struct{}
	greetings    map[string]struct{}
	affirmatives map[string]struct{}
	confirmSet   map[string]struct{}
}

// NewEngine builds an engine over the given content catalog.
func NewEngine(catalog *content.Catalog) *Engine {
	e := &Engine{
		catalog:      catalog,
		menuLabels:   make(map[string]struct{}, len(catalog.Menu)),
		greetings:    make(map[string]struct{}, len(catalog.Greetings)),
		affirmatives: make(map[string]struct{}, len(catalog.Affirmatives)),
		confirmSet:   make(map[string]struct{}, len(catalog.FlowConfirmOptions)),
	}
	for _, label := range catalog.Menu {
		e.menuLabels[label] = struct{}{}
	}
	for _, g := range catalog.Greetings {
		e.greetings[strings.ToLower(g)] = struct{}{}
	}
	for _, a := range catalog.Affirmatives {
		e.affirmatives[strings.ToLower(a)] = struct{}{}
	}
	for _, o := range catalog.FlowConfirmOptions {
		e.confirmSet[o] = struct{}{}
	}
	return e
}

// Route resolves one turn. Guards are evaluated top to bottom and exactly one
// handles the message; no guard reads or mutates state of a stage it did not
// select. The session is mutated in place; the caller persists it afterwards.
func (e *Engine) Route(rawMessage string, sess *dialogue.Session) (dialogue.Reply, Outcome) {
	msg := strings.TrimSpace(rawMessage)

	if sess.Onboarding != nil {
		reply, _ := e.advanceOnboarding(msg, sess)
		return reply, OutcomeOnboarding
	}

	if sess.Flow != nil {
		reply, _ := e.advanceFlow(msg, sess)
		return reply, OutcomeFlow
	}

	if _, ok := e.greetings[strings.ToLower(msg)]; ok {
		return e.startConversation(sess), OutcomeGreeting
	}

	if e.isMenuLabel(msg) {
		return e.Dispatch(dialogue.Intent(msg), sess), OutcomeMenu
	}

	if intent := e.Classify(msg); intent != dialogue.IntentNone {
		if intent == dialogue.IntentStart {
			return e.startConversation(sess), OutcomeGreeting
		}
		return e.Dispatch(intent, sess), OutcomeIntent
	}

	return e.fallback(), OutcomeFallback
}

// startConversation begins a fresh conversation: onboarding restarts from step
// zero, dropping any previously stored profile.
func (e *Engine) startConversation(sess *dialogue.Session) dialogue.Reply {
	sess.BeginOnboarding()
	return dialogue.NewReply(e.catalog.Onboarding[0].Prompt, nil)
}

// isMenuLabel reports whether the message is an exact main-menu label or one
// of the flow-confirmation buttons. Labels bypass keyword classification.
func (e *Engine) isMenuLabel(msg string) bool {
	if _, ok := e.menuLabels[msg]; ok {
		return true
	}
	_, ok := e.confirmSet[msg]
	return ok
}

func (e *Engine) fallback() dialogue.Reply {
	return dialogue.NewReply(e.catalog.Texts.Fallback, e.catalog.MenuOptions())
}
