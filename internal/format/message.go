package format

// Slack Block Kit element types used by the renderers.
const (
	blockSection = "section"
	textMarkdown = "mrkdwn"
)

// Message is a rendered notification. Text is always set and doubles as the
// fallback for clients that do not render Blocks.
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Block is a Slack Block Kit layout block.
type Block struct {
	Type   string       `json:"type"`
	Text   *TextObject  `json:"text,omitempty"`
	Fields []TextObject `json:"fields,omitempty"`
}

type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Section returns a section block with a single mrkdwn text.
func Section(text string) Block {
	return Block{
		Type: blockSection,
		Text: &TextObject{Type: textMarkdown, Text: text},
	}
}

// Fields returns a section block laid out as a two-column field grid.
func Fields(fields ...string) Block {
	objs := make([]TextObject, 0, len(fields))
	for _, f := range fields {
		objs = append(objs, TextObject{Type: textMarkdown, Text: f})
	}

	return Block{
		Type:   blockSection,
		Fields: objs,
	}
}
