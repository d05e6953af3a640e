package dialogue

// Reply is the structured answer for one turn: the text to render plus the
// quick-reply buttons the widget should offer next.
type Reply struct {
	Text    string   `json:"reply"`
	Options []string `json:"options"`
}

// NewReply builds a reply with the given option buttons. A nil options slice
// is normalized to an empty one so the wire format is always an array.
func NewReply(text string, options []string) Reply {
	if options == nil {
		options = []string{}
	}
	return Reply{Text: text, Options: options}
}
