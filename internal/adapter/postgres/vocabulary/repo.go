// Package vocabulary implements the vocabulary book repository using PostgreSQL.
package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/willyuhot/ehexam/internal/adapter/postgres"
	"github.com/willyuhot/ehexam/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// BulkInsert stores words using pgx.Batch. Words already in the book (by
// normalized spelling, or by id) are skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, words []domain.ParsedWord) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue(
			`INSERT INTO vocabulary_words (id, word, word_normalized, phonetic, meaning_with_root, original_sentence, translation, memory_tips)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT DO NOTHING`,
			w.ID, w.Word, domain.NormalizeText(w.Word), w.Phonetic, w.MeaningWithRoot, w.OriginalSentence, w.Translation, w.MemoryTips,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", postgres.MapError(err, "vocabulary_word", "batch"))
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// NormalizedWords returns every normalized spelling in the book.
func (r *Repo) NormalizedWords(ctx context.Context) (map[string]struct{}, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, `SELECT word_normalized FROM vocabulary_words`)
	if err != nil {
		return nil, fmt.Errorf("normalized words: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan normalized word: %w", err)
		}
		seen[w] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("normalized words: %w", err)
	}
	return seen, nil
}

// List returns words matching filter, newest first. Search is a
// case-insensitive prefix match on the word.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]domain.StoredWord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	b := postgres.Builder.
		Select("id", "word", "word_normalized", "phonetic", "meaning_with_root",
			"original_sentence", "translation", "memory_tips", "created_at").
		From("vocabulary_words").
		OrderBy("created_at DESC", "word_normalized ASC").
		Limit(uint64(limit)).
		Offset(uint64(max(filter.Offset, 0)))

	if filter.Search != nil {
		if prefix := domain.NormalizeText(*filter.Search); prefix != "" {
			b = b.Where(squirrel.Like{"word_normalized": escapeLike(prefix) + "%"})
		}
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	result := []domain.StoredWord{}
	for rows.Next() {
		var w domain.StoredWord
		if err := rows.Scan(&w.ID, &w.Word, &w.WordNormalized, &w.Phonetic, &w.MeaningWithRoot,
			&w.OriginalSentence, &w.Translation, &w.MemoryTips, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	return result, nil
}

// Delete removes a word by id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := postgres.Builder.
		Delete("vocabulary_words").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "vocabulary_word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary_word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
