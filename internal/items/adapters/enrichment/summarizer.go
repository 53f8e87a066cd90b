package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"notemark/internal/items/ports/services"
	"notemark/pkg/logger"
	"notemark/pkg/resilience"
)

// ErrEmptyCompletion - модель не вернула текста.
var ErrEmptyCompletion = errors.New("empty completion")

const (
	defaultSummaryModel     = "gpt-4o-mini"
	defaultSummaryTimeout   = 8 * time.Second
	defaultSummaryMaxTokens = 80

	summaryPrompt = `Write one short sentence describing the web page at %s titled %q.
Reply with the sentence only, without quotes.`

	errCtxSummarize = "summarize page"
)

// SummarizerOptions настраивает OpenAISummarizer.
type SummarizerOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenAISummarizer просит chat completion описать страницу одним предложением.
type OpenAISummarizer struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	policy  *resilience.Policy
}

// NewOpenAISummarizer создает клиента OpenAI. Пустой BaseURL означает api.openai.com.
func NewOpenAISummarizer(opts SummarizerOptions) *OpenAISummarizer {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultSummaryModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultSummaryTimeout
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = 1

	return &OpenAISummarizer{
		client:  openai.NewClientWithConfig(cfg),
		model:   opts.Model,
		timeout: opts.Timeout,
		policy:  resilience.NewPolicy("openai", resilience.DefaultCircuitBreakerConfig(), retry),
	}
}

var _ services.Summarizer = (*OpenAISummarizer)(nil)

// Summarize возвращает одно предложение о странице.
func (s *OpenAISummarizer) Summarize(ctx context.Context, pageURL, title string) (string, error) {
	log := logger.Log(ctx).With(zap.String("component", "summarizer"), zap.String("model", s.model))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := resilience.Do(ctx, s.policy, "Summarize", func(ctx context.Context) (openai.ChatCompletionResponse, error) {
		return s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf(summaryPrompt, pageURL, title),
				},
			},
			MaxTokens: defaultSummaryMaxTokens,
		})
	})
	if err != nil {
		log.Debug(ctx, "chat completion failed", zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxSummarize, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", errCtxSummarize, ErrEmptyCompletion)
	}
	summary := strings.Trim(strings.TrimSpace(resp.Choices[0].Message.Content), `"`)
	if summary == "" {
		return "", fmt.Errorf("%s: %w", errCtxSummarize, ErrEmptyCompletion)
	}

	return summary, nil
}
