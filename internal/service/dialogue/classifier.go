package dialogue

import (
	"strings"

	"github.com/syncailabs/mitra-backend/internal/model/dialogue"
)

// Classify maps free text to an intent by keyword containment. The keyword
// table is scanned in catalog order and the first intent with any matching
// trigger wins, so ties break deterministically. If nothing matches but the
// trimmed text is exactly a greeting token, the reserved start intent is
// returned. Pure function of the input and the static table.
func (e *Engine) Classify(text string) dialogue.Intent {
	lowered := strings.ToLower(text)

	for _, entry := range e.catalog.Keywords {
		for _, trigger := range entry.Triggers {
			if trigger == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(trigger)) {
				return dialogue.Intent(entry.Intent)
			}
		}
	}

	if _, ok := e.greetings[strings.TrimSpace(lowered)]; ok {
		return dialogue.IntentStart
	}

	return dialogue.IntentNone
}
