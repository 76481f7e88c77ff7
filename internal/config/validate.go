package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Translate.validate(); err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	if err := c.Ingest.validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderDeepSeek, ProviderAnthropic:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderDeepSeek, ProviderAnthropic, l.Provider)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", l.MaxRetries)
	}
	return nil
}

func (t TranslateConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	if t.MyMemoryURL == "" && t.LibreURL == "" {
		return fmt.Errorf("at least one of mymemory_url, libre_url must be set")
	}
	if t.SourceLang == "" || t.TargetLang == "" {
		return fmt.Errorf("source_lang and target_lang are required")
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	return nil
}

func (i IngestConfig) validate() error {
	if i.ChunkMaxChars < 0 {
		return fmt.Errorf("chunk_max_chars must be >= 0 (got %d)", i.ChunkMaxChars)
	}
	if i.TranslateConcurrency < 1 {
		return fmt.Errorf("translate_concurrency must be >= 1 (got %d)", i.TranslateConcurrency)
	}
	if i.ExportMaxQuestions < 1 {
		return fmt.Errorf("export_max_questions must be >= 1 (got %d)", i.ExportMaxQuestions)
	}
	return nil
}
