package openai

import (
	"encoding/json"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletionNewParams_UnmarshalJSON(t *testing.T) {
	p := ChatCompletionNewParams{}
	err := json.Unmarshal([]byte(`{
		"model":"octochat",
		"messages":[
			{"role":"system","content":"Be a cool chatbot."},
			{"role":"user","content":"who are you"},
			{"role":"assistant","content":"I'm a cool chatbot."},
			{"role":"user","content":[
				{"type":"text","text":"what"},
				{"type":"image_url","image_url":{"url":"https://example.com/image.jpg"}},
				{"type":"text","text":"time is it"}
			]}
		],
		"stream":false
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "octochat", string(p.Model))
	assert.True(t, p.Stream.Valid())
	assert.False(t, p.IsStream())

	text, ok := p.LastUserText()
	assert.True(t, ok)
	assert.Equal(t, "what time is it", text)
}

func TestChatCompletionNewParams_LastUserText_String(t *testing.T) {
	p := ChatCompletionNewParams{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"model":"octochat",
		"messages":[{"role":"user","content":"hello"},{"role":"assistant","content":"hi"}],
		"stream":true
	}`), &p))

	text, ok := p.LastUserText()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.True(t, p.IsStream())
}

func TestChatCompletionNewParams_NoUserMessage(t *testing.T) {
	p := ChatCompletionNewParams{
		ChatCompletionNewParams: openai.ChatCompletionNewParams{
			Model:    "octochat",
			Messages: []openai.ChatCompletionMessageParamUnion{openai.SystemMessage("only system")},
		},
	}
	_, ok := p.LastUserText()
	assert.False(t, ok)
	assert.False(t, p.IsStream())
}

func TestNewChatCompletion_DecodesWithSDK(t *testing.T) {
	b, err := json.Marshal(NewChatCompletion("chatcmpl-1", "octochat", 1700000000, "28"))
	require.NoError(t, err)

	var sdk openai.ChatCompletion
	require.NoError(t, json.Unmarshal(b, &sdk))
	assert.Equal(t, "chatcmpl-1", sdk.ID)
	assert.Equal(t, "octochat", sdk.Model)
	require.Len(t, sdk.Choices, 1)
	assert.Equal(t, "28", sdk.Choices[0].Message.Content)
	assert.Equal(t, "stop", string(sdk.Choices[0].FinishReason))
}
