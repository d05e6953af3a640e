package content_test

import (
	"strings"
	"testing"

	"github.com/syncailabs/mitra-backend/internal/content"
)

func TestDefaultCatalog(t *testing.T) {
	c := content.Default()

	if len(c.Menu) != 7 {
		t.Fatalf("expected 7 menu options, got %d", len(c.Menu))
	}
	if c.Menu[0] != "About Us" || c.Menu[6] != "Exit" {
		t.Fatalf("unexpected menu ordering: %v", c.Menu)
	}
	if len(c.Questions) != 7 {
		t.Fatalf("expected 7 flow questions, got %d", len(c.Questions))
	}
	if len(c.Onboarding) != 3 {
		t.Fatalf("expected 3 onboarding steps, got %d", len(c.Onboarding))
	}
	if c.Onboarding[0].Key != "name" || c.Onboarding[1].Key != "phone" || c.Onboarding[2].Key != "email" {
		t.Fatalf("unexpected onboarding step keys: %+v", c.Onboarding)
	}
	if !strings.Contains(c.Texts.Welcome, "%s") {
		t.Fatalf("welcome text must be a name template, got %q", c.Texts.Welcome)
	}
}

func TestMenuOptionsReturnsCopy(t *testing.T) {
	c := content.Default()
	opts := c.MenuOptions()
	opts[0] = "mutated"

	if c.Menu[0] != "About Us" {
		t.Fatalf("catalog menu mutated through MenuOptions copy")
	}
}

func TestParseRejectsIncompleteCatalog(t *testing.T) {
	cases := map[string]string{
		"empty menu":     "menu: []\ngreetings: [hi]\naffirmatives: [yes]\nonboarding: [{key: name, prompt: p}]\nquestions: [{label: L, prompt: p}]",
		"missing prompt": "menu: [A]\ngreetings: [hi]\naffirmatives: [yes]\nonboarding: [{key: name}]\nquestions: [{label: L, prompt: p}]",
		"no questions":   "menu: [A]\ngreetings: [hi]\naffirmatives: [yes]\nonboarding: [{key: name, prompt: p}]\nquestions: []",
	}

	for name, doc := range cases {
		if _, err := content.Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestParseKeepsKeywordOrder(t *testing.T) {
	c := content.Default()

	var intents []string
	for _, e := range c.Keywords {
		intents = append(intents, e.Intent)
	}
	want := []string{"About Us", "Our Services", "Pricing / Plans", "Talk to Support", "Start Your Journey", "FAQs", "Exit"}
	if len(intents) != len(want) {
		t.Fatalf("expected %d keyword entries, got %d", len(want), len(intents))
	}
	for i := range want {
		if intents[i] != want[i] {
			t.Fatalf("keyword entry %d: got %q want %q", i, intents[i], want[i])
		}
	}
}
