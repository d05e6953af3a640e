package dialogue

// Intent names a category of user request. The informational intents double as
// the main-menu labels the widget sends back verbatim on button clicks.
type Intent string

const (
	IntentNone     Intent = ""
	IntentAbout    Intent = "About Us"
	IntentServices Intent = "Our Services"
	IntentPricing  Intent = "Pricing / Plans"
	IntentJourney  Intent = "Start Your Journey"
	IntentSupport  Intent = "Talk to Support"
	IntentFAQ      Intent = "FAQs"
	IntentExit     Intent = "Exit"

	// IntentStart is the reserved greeting intent. Its string form is also a
	// valid message value meaning "begin a new conversation".
	IntentStart Intent = "__start__"
)
