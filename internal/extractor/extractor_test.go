package extractor

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framehouse/estimate-cli/internal/config"
	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/pkg/anthropic"
)

type mockClient struct {
	responses []string
	errs      []error
	calls     int
	requests  []anthropic.MessageRequest
}

func (m *mockClient) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	i := m.calls
	m.calls++
	m.requests = append(m.requests, req)
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	text := "{}"
	if i < len(m.responses) {
		text = m.responses[i]
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
	}, nil
}

type mapCache struct {
	entries map[string]model.ExtractionResult
	puts    int
}

func (c *mapCache) GetCachedExtraction(_ context.Context, docHash string) (*model.ExtractionResult, error) {
	if res, ok := c.entries[docHash]; ok {
		return &res, nil
	}
	return nil, nil
}

func (c *mapCache) SetCachedExtraction(_ context.Context, docHash string, res model.ExtractionResult, _ time.Duration) error {
	if c.entries == nil {
		c.entries = make(map[string]model.ExtractionResult)
	}
	c.entries[docHash] = res
	c.puts++
	return nil
}

func testCfg() config.AnthropicConfig {
	return config.AnthropicConfig{
		Model:        "claude-sonnet-4-5-20250929",
		MaxTokens:    8192,
		Retries:      3,
		CooldownSecs: 0, // avoid real waits in tests
	}
}

func TestExtractDocumentParsesResponse(t *testing.T) {
	client := &mockClient{responses: []string{
		"```json\n{\"document\":{\"currency\":\"EUR\"},\"packages\":[{\"price\":210000}]}\n```",
	}}
	e := New(client, nil, testCfg(), time.Hour)

	res, err := e.ExtractDocument(context.Background(), []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "EUR", res.Document.Currency)
	require.Len(t, res.Packages, 1)
	assert.Equal(t, 210000.0, res.Packages[0].Price)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	require.Len(t, req.System, 1)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "pdf", req.Messages[0].Blocks[0].Type)
}

func TestExtractDocumentRetries(t *testing.T) {
	client := &mockClient{
		errs:      []error{eris.New("overloaded"), eris.New("overloaded"), nil},
		responses: []string{"", "", "{\"project\":{\"total_area_m2\":90}}"},
	}
	e := New(client, nil, testCfg(), time.Hour)

	res, err := e.ExtractDocument(context.Background(), []byte("doc"))
	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, 90.0, res.Project.TotalAreaM2)
}

func TestExtractDocumentExhaustsRetries(t *testing.T) {
	boom := eris.New("overloaded")
	client := &mockClient{errs: []error{boom, boom, boom}}
	e := New(client, nil, testCfg(), time.Hour)

	_, err := e.ExtractDocument(context.Background(), []byte("doc"))
	require.Error(t, err)
	assert.Equal(t, 3, client.calls)
}

func TestExtractDocumentUsesCache(t *testing.T) {
	client := &mockClient{responses: []string{"{\"document\":{\"currency\":\"RUB\"}}"}}
	cache := &mapCache{}
	e := New(client, cache, testCfg(), time.Hour)
	ctx := context.Background()
	doc := []byte("same document")

	first, err := e.ExtractDocument(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.puts)

	second, err := e.ExtractDocument(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls, "second read comes from cache")
	assert.Equal(t, first.Document.Currency, second.Document.Currency)
}

func TestExtractPairSequential(t *testing.T) {
	client := &mockClient{responses: []string{
		"{\"document\":{\"language\":\"it\"}}",
		"{\"document\":{\"language\":\"ru\"}}",
	}}
	e := New(client, nil, testCfg(), time.Hour)

	comp, ours, err := e.ExtractPair(context.Background(), []byte("doc a"), []byte("doc b"))
	require.NoError(t, err)
	assert.Equal(t, "it", comp.Document.Language)
	assert.Equal(t, "ru", ours.Document.Language)
	assert.Equal(t, 2, client.calls)
}

func TestExtractPairStopsOnFirstFailure(t *testing.T) {
	client := &mockClient{errs: []error{eris.New("bad pdf"), eris.New("bad pdf"), eris.New("bad pdf")}}
	e := New(client, nil, testCfg(), time.Hour)

	_, _, err := e.ExtractPair(context.Background(), []byte("doc a"), []byte("doc b"))
	require.Error(t, err)
	assert.Equal(t, 3, client.calls, "second document never attempted")
}

func TestDocHashStable(t *testing.T) {
	a := DocHash([]byte("content"))
	b := DocHash([]byte("content"))
	c := DocHash([]byte("other"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Here is the data:\n{\"a\":1}\nDone.", `{"a":1}`},
		{"whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.in))
		})
	}
}
