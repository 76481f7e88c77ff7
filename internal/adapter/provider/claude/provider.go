// Package claude calls Anthropic's Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/willyuhot/ehexam/internal/config"
	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/provider"
)

const (
	name         = "claude"
	defaultModel = "claude-sonnet-4-5"
)

// Provider implements provider.Completer on top of the Anthropic SDK.
type Provider struct {
	client anthropic.Client
	model  string
	hasKey bool
	log    *slog.Logger
}

var _ provider.Completer = (*Provider)(nil)

// NewProvider creates a Provider. A missing API key is not an error here;
// Complete reports it instead.
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Provider{
		client: anthropic.NewClient(opts...),
		model:  model,
		hasKey: strings.TrimSpace(cfg.APIKey) != "",
		log:    logger.With("adapter", name),
	}
}

// Complete sends req as a single user message and joins the text blocks of the reply.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if !p.hasKey {
		return "", domain.NewUpstreamError(name, domain.ErrConfigurationMissing, nil)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	p.log.DebugContext(ctx, "claude request",
		slog.String("model", p.model),
		slog.Int("prompt_chars", len([]rune(req.User))),
	)

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		kind := classify(err)
		p.log.ErrorContext(ctx, "claude request failed", slog.String("kind", kind.Error()), slog.String("error", err.Error()))
		return "", domain.NewUpstreamError(name, kind, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", domain.NewUpstreamError(name, domain.ErrMalformedResponse, fmt.Errorf("no text content (stop reason %q)", msg.StopReason))
	}

	p.log.DebugContext(ctx, "claude response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return b.String(), nil
}

// classify maps an SDK error to one of the upstream error kinds.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrTimeout
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.ErrUnauthorized
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return domain.ErrTimeout
		}
	}
	return domain.ErrNetwork
}
