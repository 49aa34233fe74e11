package anthropic

import (
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextMessage(t *testing.T) {
	m := TextMessage("assistant", "ok")
	assert.Equal(t, "assistant", m.Role)
	require.Len(t, m.Blocks, 1)
	assert.Equal(t, "text", m.Blocks[0].Type)
	assert.Equal(t, "ok", m.Blocks[0].Text)
}

func TestDocumentMessage(t *testing.T) {
	m := DocumentMessage("cGRmLWJ5dGVz", "extract the offer")

	assert.Equal(t, "user", m.Role)
	require.Len(t, m.Blocks, 2)
	assert.Equal(t, "pdf", m.Blocks[0].Type)
	assert.Equal(t, "cGRmLWJ5dGVz", m.Blocks[0].PDFData)
	assert.Equal(t, "text", m.Blocks[1].Type)
}

func TestToSDKMessages(t *testing.T) {
	msgs := toSDKMessages([]Message{
		DocumentMessage("ZGF0YQ==", "read this"),
		TextMessage("assistant", "{"),
	})

	require.Len(t, msgs, 2)
	assert.Equal(t, sdk.MessageParamRoleUser, msgs[0].Role)
	require.Len(t, msgs[0].Content, 2)
	require.NotNil(t, msgs[0].Content[0].OfDocument)
	require.NotNil(t, msgs[0].Content[1].OfText)
	assert.Equal(t, "read this", msgs[0].Content[1].OfText.Text)
	assert.Equal(t, sdk.MessageParamRoleAssistant, msgs[1].Role)
}

func TestResponseText(t *testing.T) {
	resp := &MessageResponse{Content: []ContentBlock{
		{Type: "text", Text: "{\"a\":"},
		{Type: "thinking", Text: "ignored"},
		{Type: "text", Text: "1}"},
	}}
	assert.Equal(t, "{\"a\":1}", resp.Text())
}

func TestEstimateCost(t *testing.T) {
	usage := TokenUsage{InputTokens: 1_000_000, OutputTokens: 500_000}

	cost := usage.EstimateCost("claude-sonnet-4-5-20250929")
	assert.InDelta(t, 3.00+7.50, cost, 1e-9)

	assert.Zero(t, usage.EstimateCost("unknown-model"))
}

func TestBuildCachedSystemBlocks(t *testing.T) {
	blocks := BuildCachedSystemBlocks("system prompt")

	require.Len(t, blocks, 1)
	assert.Equal(t, "system prompt", blocks[0].Text)
	require.NotNil(t, blocks[0].CacheControl)
	assert.Equal(t, "1h", blocks[0].CacheControl.TTL)
}
