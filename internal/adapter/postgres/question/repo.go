// Package question implements the question bank repository using PostgreSQL.
package question

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/willyuhot/ehexam/internal/adapter/postgres"
	"github.com/willyuhot/ehexam/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

var columns = []string{
	"q.id", "q.number", "q.text", "q.options", "q.correct_answer",
	"q.translation", "q.key_point", "q.analysis", "q.core_words",
	"q.batch_id", "q.imported_at",
}

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// BulkInsert stores questions under batchID using pgx.Batch. Questions whose
// id is already in the bank are skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, batchID uuid.UUID, questions []domain.Question) (int, error) {
	if len(questions) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return 0, fmt.Errorf("encode options of question %d: %w", q.ID, err)
		}
		coreWords := q.CoreWords
		if coreWords == nil {
			coreWords = []domain.CoreWord{}
		}
		words, err := json.Marshal(coreWords)
		if err != nil {
			return 0, fmt.Errorf("encode core words of question %d: %w", q.ID, err)
		}

		batch.Queue(
			`INSERT INTO questions (id, number, text, options, correct_answer, translation, key_point, analysis, core_words, batch_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (id) DO NOTHING`,
			q.ID, q.Number, q.Text, options, q.CorrectAnswer, q.Translation, q.KeyPoint, q.Analysis, words, batchID,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// ImportedIDs returns the subset of ids already present in the bank.
func (r *Repo) ImportedIDs(ctx context.Context, ids []int) (map[int]struct{}, error) {
	found := make(map[int]struct{}, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, `SELECT id FROM questions WHERE id = ANY($1::bigint[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("imported ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan imported id: %w", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("imported ids: %w", err)
	}

	return found, nil
}

// GetByID returns a stored question by id.
func (r *Repo) GetByID(ctx context.Context, id int) (domain.StoredQuestion, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("questions q").
		Where(squirrel.Eq{"q.id": id}).
		ToSql()
	if err != nil {
		return domain.StoredQuestion{}, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	sq, err := scanQuestion(row)
	if err != nil {
		return domain.StoredQuestion{}, postgres.MapError(err, "question", id)
	}
	return sq, nil
}

// List returns questions matching filter ordered by id.
func (r *Repo) List(ctx context.Context, filter domain.QuestionFilter) ([]domain.StoredQuestion, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := max(filter.Offset, 0)

	query, args, err := applyFilter(postgres.Builder.Select(columns...).From("questions q"), filter).
		OrderBy("q.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	result := []domain.StoredQuestion{}
	for rows.Next() {
		sq, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		result = append(result, sq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return result, nil
}

// Count returns the number of questions matching filter, ignoring pagination.
func (r *Repo) Count(ctx context.Context, filter domain.QuestionFilter) (int, error) {
	query, args, err := applyFilter(postgres.Builder.Select("count(*)").From("questions q"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.QuestionFilter) squirrel.SelectBuilder {
	if filter.BatchID != nil {
		b = b.Where(squirrel.Eq{"q.batch_id": *filter.BatchID})
	}
	if filter.OnlyFavorites {
		b = b.Where("EXISTS (SELECT 1 FROM favorite_questions f WHERE f.question_id = q.id)")
	}
	if filter.OnlyWrong {
		b = b.Where("EXISTS (SELECT 1 FROM wrong_answers w WHERE w.question_id = q.id)")
	}
	return b
}

func scanQuestion(row pgx.Row) (domain.StoredQuestion, error) {
	var (
		sq        domain.StoredQuestion
		options   []byte
		coreWords []byte
	)
	err := row.Scan(
		&sq.ID, &sq.Number, &sq.Text, &options, &sq.CorrectAnswer,
		&sq.Translation, &sq.KeyPoint, &sq.Analysis, &coreWords,
		&sq.BatchID, &sq.ImportedAt,
	)
	if err != nil {
		return domain.StoredQuestion{}, err
	}

	if err := json.Unmarshal(options, &sq.Options); err != nil {
		return domain.StoredQuestion{}, fmt.Errorf("decode options: %w", err)
	}
	if err := json.Unmarshal(coreWords, &sq.CoreWords); err != nil {
		return domain.StoredQuestion{}, fmt.Errorf("decode core words: %w", err)
	}
	return sq, nil
}

// sendBatchExec sends a pgx.Batch and counts affected rows from Exec results.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", postgres.MapError(err, "question", "batch"))
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
