package anthropic

import (
	"encoding/json"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// MessageNewParams is an Anthropic messages request that also carries the
// stream flag, which the SDK param type leaves out.
type MessageNewParams struct {
	anthropic.MessageNewParams

	Stream param.Opt[bool] `json:"stream,omitzero"`
}

func (r *MessageNewParams) UnmarshalJSON(data []byte) error {
	err := json.Unmarshal(data, &r.MessageNewParams)
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

func (r *MessageNewParams) IsStream() bool {
	return r.Stream.Valid() && r.Stream.Value
}

// LastUserText returns the text blocks of the last user message joined by a
// space. ok is false when there is no user message.
func (r *MessageNewParams) LastUserText() (text string, ok bool) {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		msg := r.Messages[i]
		if msg.Role != anthropic.MessageParamRoleUser {
			continue
		}
		parts := make([]string, 0, len(msg.Content))
		for _, block := range msg.Content {
			if block.OfText != nil {
				parts = append(parts, block.OfText.Text)
			}
		}
		return strings.Join(parts, " "), true
	}
	return "", false
}
