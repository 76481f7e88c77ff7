// Package progress stores practice progress: favorites, the wrong-answer
// book and per-question answer counters.
package progress

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/willyuhot/ehexam/internal/adapter/postgres"
	"github.com/willyuhot/ehexam/internal/domain"
)

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

// AddFavorite marks a question as favorite. Adding twice is a no-op.
func (r *Repo) AddFavorite(ctx context.Context, questionID int) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO favorite_questions (question_id) VALUES ($1) ON CONFLICT DO NOTHING`,
		questionID,
	)
	return postgres.MapError(err, "question", questionID)
}

// RemoveFavorite unmarks a question. Removing a non-favorite is a no-op.
func (r *Repo) RemoveFavorite(ctx context.Context, questionID int) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM favorite_questions WHERE question_id = $1`,
		questionID,
	)
	return postgres.MapError(err, "question", questionID)
}

// IsFavorite reports whether the question is a favorite.
func (r *Repo) IsFavorite(ctx context.Context, questionID int) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorite_questions WHERE question_id = $1)`,
		questionID,
	).Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "question", questionID)
	}
	return ok, nil
}

// ---------------------------------------------------------------------------
// Wrong-answer book
// ---------------------------------------------------------------------------

// AddWrongAnswer records a wrong answer. Repeated mistakes bump the counter
// and keep the latest selection.
func (r *Repo) AddWrongAnswer(ctx context.Context, questionID int, selected string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO wrong_answers (question_id, selected_answer)
		 VALUES ($1, $2)
		 ON CONFLICT (question_id) DO UPDATE
		 SET selected_answer = EXCLUDED.selected_answer,
		     wrong_count     = wrong_answers.wrong_count + 1,
		     last_wrong_at   = now()`,
		questionID, selected,
	)
	return postgres.MapError(err, "question", questionID)
}

// RemoveWrongAnswer drops a question from the wrong-answer book.
func (r *Repo) RemoveWrongAnswer(ctx context.Context, questionID int) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM wrong_answers WHERE question_id = $1`,
		questionID,
	)
	if err != nil {
		return postgres.MapError(err, "wrong_answer", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wrong_answer %d: %w", questionID, domain.ErrNotFound)
	}
	return nil
}

const listWrongAnswersSQL = `
SELECT q.id, q.number, q.text, q.options, q.correct_answer,
       q.translation, q.key_point, q.analysis, q.core_words,
       q.batch_id, q.imported_at,
       w.selected_answer, w.wrong_count, w.last_wrong_at
FROM wrong_answers w
JOIN questions q ON q.id = w.question_id
ORDER BY w.last_wrong_at DESC, q.id ASC`

// WrongAnswers lists the wrong-answer book, most recent mistake first.
func (r *Repo) WrongAnswers(ctx context.Context) ([]domain.WrongAnswer, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listWrongAnswersSQL)
	if err != nil {
		return nil, fmt.Errorf("list wrong answers: %w", err)
	}
	defer rows.Close()

	result := []domain.WrongAnswer{}
	for rows.Next() {
		var (
			wa        domain.WrongAnswer
			options   []byte
			coreWords []byte
		)
		q := &wa.Question
		if err := rows.Scan(
			&q.ID, &q.Number, &q.Text, &options, &q.CorrectAnswer,
			&q.Translation, &q.KeyPoint, &q.Analysis, &coreWords,
			&q.BatchID, &q.ImportedAt,
			&wa.Selected, &wa.WrongCount, &wa.LastWrongAt,
		); err != nil {
			return nil, fmt.Errorf("scan wrong answer: %w", err)
		}
		if err := decodeJSON(options, &q.Options, coreWords, &q.CoreWords); err != nil {
			return nil, err
		}
		result = append(result, wa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list wrong answers: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Answer stats
// ---------------------------------------------------------------------------

// RecordAnswer bumps the correct or wrong counter of a question.
func (r *Repo) RecordAnswer(ctx context.Context, questionID int, correct bool) error {
	correctInc, wrongInc := 0, 1
	if correct {
		correctInc, wrongInc = 1, 0
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO question_stats (question_id, correct_count, wrong_count)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (question_id) DO UPDATE
		 SET correct_count = question_stats.correct_count + EXCLUDED.correct_count,
		     wrong_count   = question_stats.wrong_count + EXCLUDED.wrong_count,
		     updated_at    = now()`,
		questionID, correctInc, wrongInc,
	)
	return postgres.MapError(err, "question", questionID)
}

// Stats returns the counters summed over all questions.
func (r *Repo) Stats(ctx context.Context) (domain.AnswerStats, error) {
	var s domain.AnswerStats
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT COALESCE(SUM(correct_count), 0), COALESCE(SUM(wrong_count), 0) FROM question_stats`,
	).Scan(&s.Correct, &s.Wrong)
	if err != nil {
		return domain.AnswerStats{}, fmt.Errorf("answer stats: %w", err)
	}
	return s, nil
}

// QuestionStats returns the counters of one question; zero when never answered.
func (r *Repo) QuestionStats(ctx context.Context, questionID int) (domain.AnswerStats, error) {
	var s domain.AnswerStats
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT COALESCE(SUM(correct_count), 0), COALESCE(SUM(wrong_count), 0)
		 FROM question_stats WHERE question_id = $1`,
		questionID,
	).Scan(&s.Correct, &s.Wrong)
	if err != nil {
		return domain.AnswerStats{}, postgres.MapError(err, "question", questionID)
	}
	return s, nil
}

// ResetStats clears all answer counters. Favorites and wrong answers are kept.
func (r *Repo) ResetStats(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM question_stats`); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}
