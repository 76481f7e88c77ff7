// Package vocabmerge extracts exam-wide vocabulary chunk by chunk and merges
// the results by normalized word.
package vocabmerge

import (
	"context"
	"fmt"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/chunker"
)

// ExtractFunc performs one extraction call for a chunk and returns the raw
// model reply.
type ExtractFunc func(ctx context.Context, chunk string) (string, error)

// ProgressFunc is called after each chunk is merged. done is 1-based.
type ProgressFunc func(done, total int)

// Merger runs extraction over the chunks of a text, one call at a time.
type Merger struct {
	Extract  ExtractFunc
	MaxChars int
}

// Merge splits text, extracts each chunk in order and merges the words.
// A word seen in an earlier chunk wins over later duplicates (compared by
// domain.NormalizeText). The first failing chunk aborts the merge and only
// its error is returned; no partial result is kept. A text with no
// qualifying words yields an empty result and no error.
func (m Merger) Merge(ctx context.Context, text string, onProgress ProgressFunc) ([]domain.ParsedWord, error) {
	chunks := chunker.Split(text, m.MaxChars)
	total := len(chunks)

	seen := make(map[string]struct{})
	var merged []domain.ParsedWord

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := m.Extract(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("extract chunk %d/%d: %w", i+1, total, err)
		}

		words, err := Decode(raw, i)
		if err != nil {
			return nil, fmt.Errorf("decode chunk %d/%d: %w", i+1, total, err)
		}

		merged = append(merged, Dedup(words, seen)...)

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	return merged, nil
}

// Dedup returns the words whose normalized form is not yet in seen, keeping
// the first occurrence, and records them in seen.
func Dedup(words []domain.ParsedWord, seen map[string]struct{}) []domain.ParsedWord {
	var out []domain.ParsedWord
	for _, w := range words {
		key := domain.NormalizeText(w.Word)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return out
}
