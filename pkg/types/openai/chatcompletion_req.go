package openai

import (
	"encoding/json"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/packages/param"
)

// ChatCompletionNewParams is an OpenAI chat completions request that also
// carries the stream flag, which the SDK param type leaves out.
type ChatCompletionNewParams struct {
	openai.ChatCompletionNewParams

	Stream param.Opt[bool] `json:"stream,omitzero"`
}

func (r *ChatCompletionNewParams) UnmarshalJSON(data []byte) error {
	err := json.Unmarshal(data, &r.ChatCompletionNewParams)
	if err != nil {
		return err
	}
	type stream struct {
		Stream param.Opt[bool] `json:"stream,omitzero"`
	}
	var s stream
	err = json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	r.Stream = s.Stream

	return nil
}

// IsStream reports whether the client asked for a streamed response.
func (r *ChatCompletionNewParams) IsStream() bool {
	return r.Stream.Valid() && r.Stream.Value
}

// LastUserText returns the text of the last user message, with text parts
// joined by a space. ok is false when there is no user message.
func (r *ChatCompletionNewParams) LastUserText() (text string, ok bool) {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		msg := r.Messages[i].OfUser
		if msg == nil {
			continue
		}
		if msg.Content.OfString.Valid() {
			return msg.Content.OfString.Value, true
		}
		parts := make([]string, 0, len(msg.Content.OfArrayOfContentParts))
		for _, part := range msg.Content.OfArrayOfContentParts {
			if part.OfText != nil {
				parts = append(parts, part.OfText.Text)
			}
		}
		return strings.Join(parts, " "), true
	}
	return "", false
}
