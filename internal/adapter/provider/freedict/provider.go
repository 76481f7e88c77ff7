// Package freedict looks up word pronunciations in the FreeDictionary API.
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// apiEntry is one element of the response array; the API returns one per
// etymology of the word.
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetic  string        `json:"phonetic"`
	Phonetics []apiPhonetic `json:"phonetics"`
}

type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Provider fetches phonetic transcriptions from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProviderWithURL creates a Provider with a custom base URL. An empty
// baseURL selects the public FreeDictionary API.
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "freedict"),
	}
}

// Phonetic returns the IPA transcription of word wrapped in slashes, for
// example "/həˈloʊ/". Returns "", nil if the word is not found (HTTP 404) or
// the entry carries no transcription.
func (p *Provider) Phonetic(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", nil
	}
	reqURL := p.baseURL + "/" + url.PathEscape(strings.ToLower(word))

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return "", fmt.Errorf("freedict: decode json: %w", err)
	}

	phonetic := pickPhonetic(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.String("phonetic", phonetic),
	)

	return phonetic, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(p.retryDelay)

	return p.httpClient.Do(req)
}

// pickPhonetic prefers the entry-level phonetic, then the first transcription
// that has audio, then any transcription.
func pickPhonetic(entries []apiEntry) string {
	var fallback string
	for _, entry := range entries {
		if entry.Phonetic != "" {
			return normalizePhonetic(entry.Phonetic)
		}
		for _, ph := range entry.Phonetics {
			if ph.Text == "" {
				continue
			}
			if ph.Audio != "" {
				return normalizePhonetic(ph.Text)
			}
			if fallback == "" {
				fallback = ph.Text
			}
		}
	}
	return normalizePhonetic(fallback)
}

// normalizePhonetic wraps a transcription in slashes; "[ɪˈɡzæm]" becomes "/ɪˈɡzæm/".
func normalizePhonetic(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "/[]")
	if s == "" {
		return ""
	}
	return "/" + s + "/"
}
