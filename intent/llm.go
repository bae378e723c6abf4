package intent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// systemPrompt keeps the model on JSON-only output. Rule 4 stops it from
// answering the route itself; route answers come from the catalog.
const systemPrompt = `You are an intent parser for a Lucknow bus chatbot.
Rules:
1) For greetings or small talk, return only JSON: {"intent":"greeting"}.
2) For travel query, return only JSON with keys exactly: {"from":"","to":"","after_time":""}.
3) If intent cannot be extracted, return: {"from":"","to":"","after_time":""}.
4) Never answer route details.`

const (
	defaultModel         = openai.GPT4oMini
	defaultTimeoutMS     = 20000
	defaultRatePerMinute = 12
	defaultBurst         = 3
)

var errRateLimited = errors.New("intent model rate limit reached")

// LLMOptions configures an LLMExtractor. Zero values select defaults;
// BaseURL is only needed for OpenAI-compatible gateways.
type LLMOptions struct {
	APIKey        string
	BaseURL       string
	Model         string
	TimeoutMS     int
	RatePerMinute int
	Burst         int
}

// LLMExtractor asks a chat completion model to read the message. Calls are
// rate limited without blocking: over the limit, Extract fails immediately
// so the pipeline can fall back to rules.
type LLMExtractor struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

func NewLLMExtractor(opts LLMOptions) *LLMExtractor {
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.TimeoutMS <= 0 {
		opts.TimeoutMS = defaultTimeoutMS
	}
	if opts.RatePerMinute <= 0 {
		opts.RatePerMinute = defaultRatePerMinute
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultBurst
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &LLMExtractor{
		client:  openai.NewClientWithConfig(cfg),
		model:   opts.Model,
		timeout: time.Duration(opts.TimeoutMS) * time.Millisecond,
		limiter: rate.NewLimiter(rate.Limit(float64(opts.RatePerMinute)/60), opts.Burst),
	}
}

func (e *LLMExtractor) Extract(ctx context.Context, message string) (Intent, error) {
	if !e.limiter.Allow() {
		return Intent{}, errRateLimited
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.1,
		MaxTokens:   120,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return Intent{}, fmt.Errorf("intent model call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Intent{}, errors.New("intent model returned no choices")
	}
	return ParseModelOutput(resp.Choices[0].Message.Content)
}

// ParseModelOutput reads a model reply into an Intent. Replies wrapped in
// code fences or surrounding prose are tolerated; a reply without the
// expected keys is an error so callers can fall back.
func ParseModelOutput(raw string) (Intent, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return Intent{}, err
	}
	if kind, ok := payload["intent"].(string); ok {
		if strings.EqualFold(strings.TrimSpace(kind), "greeting") {
			return Intent{Kind: KindGreeting}, nil
		}
	}
	from, okFrom := payload["from"]
	to, okTo := payload["to"]
	after, okAfter := payload["after_time"]
	if !okFrom || !okTo || !okAfter {
		return Intent{}, errors.New("intent model reply is missing route keys")
	}
	return Intent{
		Kind:      KindRouteQuery,
		From:      CleanPlace(asString(from)),
		To:        CleanPlace(asString(to)),
		AfterTime: CleanAfterTime(asString(after)),
	}, nil
}

// extractJSON pulls the first JSON object out of raw, stripping markdown
// fences and any prose around the braces.
func extractJSON(raw string) (map[string]any, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
		cleaned = strings.TrimSpace(cleaned)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil {
		return payload, nil
	}
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in model reply")
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("model reply JSON: %w", err)
	}
	return payload, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
