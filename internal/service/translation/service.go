// Package translation translates stored questions into the learner's
// language, consulting the translation cache before the remote services.
package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/willyuhot/ehexam/internal/adapter/provider/translate"
	"github.com/willyuhot/ehexam/internal/domain"
)

type translator interface {
	Translate(ctx context.Context, text, src, tgt string) (string, bool)
}

type translationCache interface {
	Get(ctx context.Context, text, src, tgt string) (string, bool, error)
	Set(ctx context.Context, text, src, tgt, translated string) error
}

type questionRepo interface {
	GetByID(ctx context.Context, id int) (domain.StoredQuestion, error)
}

// Config holds the translation settings the service needs.
type Config struct {
	SourceLang  string
	TargetLang  string
	Concurrency int
}

// Service translates questions.
type Service struct {
	translator translator
	cache      translationCache
	questions  questionRepo
	cfg        Config
	log        *slog.Logger
}

// NewService creates a new Translation service. cache may be nil.
func NewService(
	log *slog.Logger,
	cfg Config,
	translator translator,
	cache translationCache,
	questions questionRepo,
) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Service{
		translator: translator,
		cache:      cache,
		questions:  questions,
		cfg:        cfg,
		log:        log.With("service", "translation"),
	}
}

// QuestionTranslation is the translated text and options of a question.
// Options that could not be translated keep their source text.
type QuestionTranslation struct {
	QuestionID int               `json:"questionId"`
	Text       string            `json:"questionText"`
	Options    map[string]string `json:"options"`
}

// Translate loads a stored question and translates it.
func (s *Service) Translate(ctx context.Context, id int) (QuestionTranslation, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return QuestionTranslation{}, fmt.Errorf("get question: %w", err)
	}
	return s.TranslateQuestion(ctx, q.Question), nil
}

// TranslateQuestion translates the question text and its options in
// parallel. When the remote answer for the question text is missing or still
// English, the stored translation is used instead.
func (s *Service) TranslateQuestion(ctx context.Context, q domain.Question) QuestionTranslation {
	// Slot 0 is the question text, slots 1..4 the options in label order.
	sources := make([]string, 1+len(domain.OptionLabels))
	sources[0] = q.Text
	for i, label := range domain.OptionLabels {
		sources[i+1] = q.Options[label]
	}

	results := make([]string, len(sources))
	translated := make([]bool, len(sources))

	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, src := range sources {
		g.Go(func() error {
			results[i], translated[i] = s.translateText(ctx, src)
			return nil
		})
	}
	g.Wait()

	out := QuestionTranslation{
		QuestionID: q.ID,
		Text:       results[0],
		Options:    make(map[string]string, len(domain.OptionLabels)),
	}
	if !translated[0] {
		out.Text = q.Text
		if strings.TrimSpace(q.Translation) != "" {
			out.Text = q.Translation
		}
	}
	for i, label := range domain.OptionLabels {
		if _, ok := q.Options[label]; !ok {
			continue
		}
		if translated[i+1] {
			out.Options[label] = results[i+1]
		} else {
			out.Options[label] = sources[i+1]
		}
	}

	return out
}

// translateText returns the translation of text and whether it is usable.
// A remote answer that is still English counts as no translation.
func (s *Service) translateText(ctx context.Context, text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	src, tgt := s.cfg.SourceLang, s.cfg.TargetLang

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, text, src, tgt)
		if err != nil {
			s.log.WarnContext(ctx, "translation cache read failed", slog.String("error", err.Error()))
		} else if ok {
			return cached, true
		}
	}

	result, ok := s.translator.Translate(ctx, text, src, tgt)
	if !ok || translate.IsEnglishText(result) {
		return "", false
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, text, src, tgt, result); err != nil {
			s.log.WarnContext(ctx, "translation cache write failed", slog.String("error", err.Error()))
		}
	}
	return result, true
}
