package dialogue

import (
	"strings"

	"github.com/syncailabs/mitra-backend/internal/model/dialogue"
)

// advanceFlow runs one turn of the guided questionnaire. At the confirmation
// gate an affirmative token starts the questions and anything else aborts the
// flow. While asking, every input is recorded verbatim and the next question
// follows; the seventh answer produces the summary and clears the flow.
// Returns ok=false when no flow is active.
func (e *Engine) advanceFlow(msg string, sess *dialogue.Session) (dialogue.Reply, bool) {
	f := sess.Flow
	if f == nil {
		return dialogue.Reply{}, false
	}

	questions := e.catalog.Questions

	switch f.Stage {
	case dialogue.FlowStageConfirm:
		if _, ok := e.affirmatives[strings.ToLower(msg)]; !ok {
			sess.Flow = nil
			return dialogue.NewReply(e.catalog.Texts.FlowDeclined, e.catalog.MenuOptions()), true
		}
		f.Stage = dialogue.FlowStageAsking
		f.QuestionIndex = 0
		q := questions[0]
		return dialogue.NewReply(q.Prompt, append([]string(nil), q.Options...)), true

	case dialogue.FlowStageAsking:
		if f.QuestionIndex < len(questions) {
			f.Answers = append(f.Answers, msg)
		}
		f.QuestionIndex++
		if f.QuestionIndex >= len(questions) {
			answers := f.Answers
			sess.Flow = nil
			return dialogue.NewReply(e.flowSummary(answers), e.catalog.MenuOptions()), true
		}
		q := questions[f.QuestionIndex]
		return dialogue.NewReply(q.Prompt, append([]string(nil), q.Options...)), true

	default:
		// Unknown stage tag in a stored record. Drop the flow and re-offer the menu.
		sess.Flow = nil
		return e.fallback(), true
	}
}

// flowSummary enumerates the collected answers by their question labels, in
// collection order, followed by the fixed call to action.
func (e *Engine) flowSummary(answers []string) string {
	var b strings.Builder
	b.WriteString(e.catalog.Texts.SummaryHeader)
	for i, q := range e.catalog.Questions {
		if i >= len(answers) {
			break
		}
		b.WriteString("\n• ")
		b.WriteString(q.Label)
		b.WriteString(": ")
		b.WriteString(answers[i])
	}
	b.WriteString("\n\n")
	b.WriteString(e.catalog.Texts.SummaryFooter)
	return b.String()
}
