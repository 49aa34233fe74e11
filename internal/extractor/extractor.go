// Package extractor turns supplier quote PDFs into semi-structured
// extraction results via the Anthropic API. Calls are cached by document
// hash and rate-limited: the provider contract requires a cooldown between
// the two documents of a comparison.
package extractor

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/framehouse/estimate-cli/internal/config"
	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/pkg/anthropic"
)

// Cache is the subset of the store the extractor needs.
type Cache interface {
	GetCachedExtraction(ctx context.Context, docHash string) (*model.ExtractionResult, error)
	SetCachedExtraction(ctx context.Context, docHash string, res model.ExtractionResult, ttl time.Duration) error
}

// Extractor wraps the API client with caching, retry and the cooldown
// limiter. A nil cache disables persistence.
type Extractor struct {
	client   anthropic.Client
	cache    Cache
	cacheTTL time.Duration

	model     string
	maxTokens int64
	retries   int
	limiter   *rate.Limiter
}

// New builds an Extractor from config.
func New(client anthropic.Client, cache Cache, cfg config.AnthropicConfig, cacheTTL time.Duration) *Extractor {
	retries := cfg.Retries
	if retries < 1 {
		retries = 1
	}
	cooldown := time.Duration(cfg.CooldownSecs) * time.Second
	if cooldown <= 0 {
		cooldown = time.Second
	}
	return &Extractor{
		client:    client,
		cache:     cache,
		cacheTTL:  cacheTTL,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		retries:   retries,
		limiter:   rate.NewLimiter(rate.Every(cooldown), 1),
	}
}

// DocHash returns the cache key for a document.
func DocHash(pdf []byte) string {
	sum := sha256.Sum256(pdf)
	return hex.EncodeToString(sum[:])
}

// ExtractDocument extracts one PDF, consulting the cache first.
func (e *Extractor) ExtractDocument(ctx context.Context, pdf []byte) (*model.ExtractionResult, error) {
	hash := DocHash(pdf)

	if e.cache != nil {
		cached, err := e.cache.GetCachedExtraction(ctx, hash)
		if err != nil {
			zap.L().Warn("extractor: cache lookup failed", zap.Error(err))
		} else if cached != nil {
			zap.L().Info("extractor: cache hit", zap.String("doc_hash", hash))
			return cached, nil
		}
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "extractor: cooldown wait")
	}

	req := anthropic.MessageRequest{
		Model:     e.model,
		MaxTokens: e.maxTokens,
		System:    anthropic.BuildCachedSystemBlocks(extractionSystemText),
		Messages: []anthropic.Message{
			anthropic.DocumentMessage(base64.StdEncoding.EncodeToString(pdf), extractionInstruction),
		},
	}

	resp, err := e.createWithRetry(ctx, req, hash)
	if err != nil {
		return nil, err
	}
	resp.Usage.LogCost(e.model, "extract")

	var res model.ExtractionResult
	cleaned := cleanJSON(resp.Text())
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return nil, eris.Wrap(err, "extractor: parse extraction JSON")
	}

	if e.cache != nil {
		if err := e.cache.SetCachedExtraction(ctx, hash, res, e.cacheTTL); err != nil {
			zap.L().Warn("extractor: cache store failed", zap.Error(err))
		}
	}
	return &res, nil
}

// ExtractPair processes the competitor document fully, then ours. The
// limiter inserts the provider-required cooldown between the two calls;
// results never arrive simultaneously.
func (e *Extractor) ExtractPair(ctx context.Context, competitorPDF, ourPDF []byte) (*model.ExtractionResult, *model.ExtractionResult, error) {
	comp, err := e.ExtractDocument(ctx, competitorPDF)
	if err != nil {
		return nil, nil, eris.Wrap(err, "extractor: competitor document")
	}
	ours, err := e.ExtractDocument(ctx, ourPDF)
	if err != nil {
		return nil, nil, eris.Wrap(err, "extractor: our document")
	}
	return comp, ours, nil
}

func (e *Extractor) createWithRetry(ctx context.Context, req anthropic.MessageRequest, hash string) (*anthropic.MessageResponse, error) {
	var resp *anthropic.MessageResponse
	var lastErr error
	backoff := 500 * time.Millisecond

	for attempt := 0; attempt < e.retries; attempt++ {
		resp, lastErr = e.client.CreateMessage(ctx, req)
		if lastErr == nil {
			return resp, nil
		}
		if attempt < e.retries-1 {
			zap.L().Warn("extractor: message failed, retrying",
				zap.String("doc_hash", hash),
				zap.Int("attempt", attempt+1),
				zap.Error(lastErr),
			)
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, eris.Wrap(ctx.Err(), "extractor: canceled")
			case <-timer.C:
			}
			backoff *= 2
		}
	}
	return nil, eris.Wrap(lastErr, "extractor: create message")
}

// cleanJSON strips markdown fences and any prose around the JSON object.
func cleanJSON(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}
