// Package translate looks up machine translations from free public services:
// MyMemory first, LibreTranslate as a fallback.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/willyuhot/ehexam/internal/config"
)

const name = "translate"

// languageCodes maps app language tags to the codes the services expect.
var languageCodes = map[string]string{
	"zh-Hans": "zh",
	"zh-Hant": "zh-TW",
}

// Client translates short texts. It never returns an error: a failed lookup
// is reported as ok == false and the caller keeps the source text.
type Client struct {
	myMemoryURL string
	libreURL    string
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client from the translate config.
func NewClient(cfg config.TranslateConfig, logger *slog.Logger) *Client {
	return &Client{
		myMemoryURL: strings.TrimRight(cfg.MyMemoryURL, "/"),
		libreURL:    strings.TrimRight(cfg.LibreURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         logger.With("adapter", name),
	}
}

// Translate returns the translation of text from src to tgt.
func (c *Client) Translate(ctx context.Context, text, src, tgt string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return "", false
	}
	src, tgt = LanguageCode(src), LanguageCode(tgt)

	if c.myMemoryURL != "" {
		translated, err := c.myMemory(ctx, cleaned, src, tgt)
		if err == nil && translated != "" && translated != cleaned {
			return DecodeURLEncoding(translated), true
		}
		if err != nil {
			c.log.WarnContext(ctx, "mymemory lookup failed", slog.String("error", err.Error()))
		}
	}

	if c.libreURL != "" {
		translated, err := c.libre(ctx, cleaned, src, tgt)
		if err == nil && translated != "" {
			return DecodeURLEncoding(translated), true
		}
		if err != nil {
			c.log.WarnContext(ctx, "libretranslate lookup failed", slog.String("error", err.Error()))
		}
	}

	return "", false
}

func (c *Client) myMemory(ctx context.Context, text, src, tgt string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", src+"|"+tgt)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.myMemoryURL+"/get?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("mymemory: create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("mymemory: %w", err)
	}
	return gjson.GetBytes(body, "responseData.translatedText").String(), nil
}

func (c *Client) libre(ctx context.Context, text, src, tgt string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"q":      text,
		"source": src,
		"target": tgt,
		"format": "text",
	})
	if err != nil {
		return "", fmt.Errorf("libretranslate: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.libreURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("libretranslate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("libretranslate: %w", err)
	}
	return gjson.GetBytes(body, "translatedText").String(), nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json body")
	}
	return body, nil
}

// LanguageCode maps an app language tag to a service language code.
// Unknown tags are passed through.
func LanguageCode(tag string) string {
	if code, ok := languageCodes[tag]; ok {
		return code
	}
	return tag
}
