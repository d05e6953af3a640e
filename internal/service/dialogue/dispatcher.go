package dialogue

import (
	"github.com/syncailabs/mitra-backend/internal/model/dialogue"
)

// Dispatch maps a resolved intent to its reply. Informational intents return
// their static text with the full main menu attached. Start Your Journey arms
// the guided flow at its confirmation gate; the greeting intent restarts
// onboarding. Unknown intents get the fallback reply.
func (e *Engine) Dispatch(intent dialogue.Intent, sess *dialogue.Session) dialogue.Reply {
	texts := e.catalog.Texts

	switch intent {
	case dialogue.IntentAbout:
		return dialogue.NewReply(texts.About, e.catalog.MenuOptions())
	case dialogue.IntentServices:
		return dialogue.NewReply(texts.Services, e.catalog.MenuOptions())
	case dialogue.IntentPricing:
		return dialogue.NewReply(texts.Pricing, e.catalog.MenuOptions())
	case dialogue.IntentSupport:
		return dialogue.NewReply(texts.Support, e.catalog.MenuOptions())
	case dialogue.IntentFAQ:
		return dialogue.NewReply(texts.FAQ, e.catalog.MenuOptions())
	case dialogue.IntentExit:
		return dialogue.NewReply(texts.Farewell, nil)
	case dialogue.IntentJourney:
		sess.BeginFlow()
		return dialogue.NewReply(texts.FlowInvite, append([]string(nil), e.catalog.FlowConfirmOptions...))
	case dialogue.IntentStart:
		return e.startConversation(sess)
	default:
		return e.fallback()
	}
}
