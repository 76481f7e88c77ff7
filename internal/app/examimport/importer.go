// Package examimport imports exam text files from disk into the question bank
// and, optionally, the vocabulary book.
package examimport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/questionparser"
	"github.com/willyuhot/ehexam/internal/service/exam"
	"github.com/willyuhot/ehexam/internal/service/vocabulary"
)

//go:generate moq -out exam_importer_mock_test.go -pkg examimport . examImporter
//go:generate moq -out vocab_importer_mock_test.go -pkg examimport . vocabImporter

type examImporter interface {
	Extract(ctx context.Context, text string, onProgress exam.ProgressFunc) (exam.ParseResult, error)
	Save(ctx context.Context, parsed exam.ParseResult) (exam.ImportResult, error)
}

type vocabImporter interface {
	Extract(ctx context.Context, text string, onProgress vocabulary.ProgressFunc) ([]domain.ParsedWord, error)
	Save(ctx context.Context, words []domain.ParsedWord) (vocabulary.ImportResult, error)
}

// Result holds import statistics.
type Result struct {
	Files     int
	Questions int
	Inserted  int
	Skipped   int
	Rejected  int
	Words     int
	Errors    int
}

// Run imports every file selected by cfg. A file that fails is logged and
// counted in Errors; the remaining files are still processed. In dry-run mode
// the extracted questions are written to out in the question format and
// nothing is saved. vocab may be nil when cfg.Vocab is false.
func Run(ctx context.Context, cfg *Config, exams examImporter, vocab vocabImporter, out io.Writer, log *slog.Logger) (Result, error) {
	files, err := listFiles(cfg.Path, cfg.Pattern)
	if err != nil {
		return Result{}, err
	}

	var result Result

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Files++

		flog := log.With(slog.String("path", path))

		data, err := os.ReadFile(path)
		if err != nil {
			flog.Error("read file", slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		text := string(data)

		progress := func(done, total int) {
			flog.Info("chunk processed", slog.Int("done", done), slog.Int("total", total))
		}

		parsed, err := exams.Extract(ctx, text, progress)
		if err != nil {
			flog.Error("extract questions", slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Questions += len(parsed.Questions)
		result.Rejected += len(parsed.Rejected)

		for _, rej := range parsed.Rejected {
			flog.Warn("question rejected",
				slog.Int("id", rej.ID),
				slog.String("number", rej.Number),
				slog.String("reason", rej.Reason),
			)
		}

		if cfg.DryRun {
			if _, err := io.WriteString(out, questionparser.FormatAll(parsed.Questions)); err != nil {
				return result, fmt.Errorf("write dry-run output: %w", err)
			}
		} else {
			saved, err := exams.Save(ctx, parsed)
			if err != nil {
				flog.Error("save questions", slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			result.Inserted += saved.Inserted
			result.Skipped += saved.Skipped
		}

		if cfg.Vocab && vocab != nil {
			n, err := importWords(ctx, cfg.DryRun, vocab, text)
			if err != nil {
				flog.Error("import vocabulary", slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			result.Words += n
		}

		flog.Info("file imported",
			slog.Int("questions", len(parsed.Questions)),
			slog.Int("rejected", len(parsed.Rejected)),
		)
	}

	log.Info("exam-import complete",
		slog.Int("files", result.Files),
		slog.Int("questions", result.Questions),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("rejected", result.Rejected),
		slog.Int("words", result.Words),
		slog.Int("errors", result.Errors),
		slog.Bool("dry_run", cfg.DryRun),
	)
	return result, nil
}

// importWords returns the number of words extracted (dry run) or added.
func importWords(ctx context.Context, dryRun bool, vocab vocabImporter, text string) (int, error) {
	words, err := vocab.Extract(ctx, text, nil)
	if err != nil {
		return 0, err
	}
	if dryRun {
		return len(words), nil
	}
	saved, err := vocab.Save(ctx, words)
	if err != nil {
		return 0, err
	}
	return saved.Added, nil
}

// listFiles returns path itself when it is a file, or the files in the
// directory matching pattern, sorted by name.
func listFiles(path, pattern string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("exam-import: path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("exam-import: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	if pattern == "" {
		pattern = "*.txt"
	}
	files, err := filepath.Glob(filepath.Join(path, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", path, err)
	}
	sort.Strings(files)
	return files, nil
}
