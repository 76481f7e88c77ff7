// Package deepseek calls DeepSeek, or any OpenAI-compatible chat endpoint,
// through the go-openai client.
package deepseek

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/willyuhot/ehexam/internal/config"
	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/provider"
)

const (
	name           = "deepseek"
	defaultBaseURL = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"
)

// Provider implements provider.Completer for OpenAI-compatible chat APIs.
type Provider struct {
	client     *openai.Client
	model      string
	hasKey     bool
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	log        *slog.Logger
}

var _ provider.Completer = (*Provider)(nil)

// NewProvider creates a Provider. A missing API key is not an error here;
// Complete reports it instead.
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) *Provider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = defaultBaseURL
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Provider{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      model,
		hasKey:     strings.TrimSpace(cfg.APIKey) != "",
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", name),
	}
}

// Complete sends req as a system + user chat and returns the first choice.
// Network and 5xx failures are retried up to the configured MaxRetries.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if !p.hasKey {
		return "", domain.NewUpstreamError(name, domain.ErrConfigurationMissing, nil)
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}
	if req.System != "" {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			p.log.WarnContext(ctx, "deepseek retry",
				slog.Int("attempt", attempt),
				slog.String("reason", lastErr.Error()),
			)
			select {
			case <-ctx.Done():
				return "", domain.NewUpstreamError(name, classify(ctx.Err()), ctx.Err())
			case <-time.After(p.retryDelay):
			}
		}

		text, err := p.complete(ctx, chatReq)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !retryable(err) || ctx.Err() != nil {
			break
		}
	}

	p.log.ErrorContext(ctx, "deepseek request failed", slog.String("error", lastErr.Error()))
	return "", lastErr
}

func (p *Provider) complete(ctx context.Context, chatReq openai.ChatCompletionRequest) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.log.DebugContext(ctx, "deepseek request", slog.String("model", chatReq.Model))

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", domain.NewUpstreamError(name, classify(err), err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewUpstreamError(name, domain.ErrMalformedResponse, errors.New("no choices"))
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", domain.NewUpstreamError(name, domain.ErrMalformedResponse,
			fmt.Errorf("empty content (finish reason %q)", resp.Choices[0].FinishReason))
	}

	p.log.DebugContext(ctx, "deepseek response",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return content, nil
}

// classify maps a client error to one of the upstream error kinds.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrTimeout
	}

	switch statusOf(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return domain.ErrTimeout
	}
	return domain.ErrNetwork
}

// retryable reports whether err is a network failure, a 429 or a 5xx.
func retryable(err error) bool {
	if !errors.Is(err, domain.ErrNetwork) {
		return false
	}
	status := statusOf(err)
	return status == 0 || status == http.StatusTooManyRequests || status >= 500
}

func statusOf(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
