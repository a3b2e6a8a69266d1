package anthropic

type MessageSimple struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Role         string         `json:"role"`
	Content      []ContentBlock `json:"content"`
	Model        string         `json:"model"`
	StopReason   *string        `json:"stop_reason,omitempty"`
	StopSequence *string        `json:"stop_sequence,omitempty"`
	Usage        *MessageUsage  `json:"usage,omitempty"`
}

type ContentBlock interface {
	GetContentBlockType() string
}

type ContentBlockText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (c ContentBlockText) GetContentBlockType() string { return c.Type }

type MessageUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// NewTextMessage builds an assistant message holding a single text block.
func NewTextMessage(id, model, text string) *MessageSimple {
	stop := "end_turn"
	return &MessageSimple{
		ID:   id,
		Type: "message",
		Role: "assistant",
		Content: []ContentBlock{
			ContentBlockText{Type: "text", Text: text},
		},
		Model:      model,
		StopReason: &stop,
		Usage:      &MessageUsage{},
	}
}
