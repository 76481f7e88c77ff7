package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/willyuhot/ehexam/internal/adapter/postgres"
	"github.com/willyuhot/ehexam/internal/adapter/postgres/progress"
	"github.com/willyuhot/ehexam/internal/adapter/postgres/question"
	"github.com/willyuhot/ehexam/internal/adapter/postgres/vocabulary"
	"github.com/willyuhot/ehexam/internal/adapter/provider/claude"
	"github.com/willyuhot/ehexam/internal/adapter/provider/deepseek"
	"github.com/willyuhot/ehexam/internal/adapter/provider/freedict"
	"github.com/willyuhot/ehexam/internal/adapter/provider/translate"
	"github.com/willyuhot/ehexam/internal/adapter/redis"
	"github.com/willyuhot/ehexam/internal/config"
	"github.com/willyuhot/ehexam/internal/provider"
	examsvc "github.com/willyuhot/ehexam/internal/service/exam"
	practicesvc "github.com/willyuhot/ehexam/internal/service/practice"
	translationsvc "github.com/willyuhot/ehexam/internal/service/translation"
	vocabularysvc "github.com/willyuhot/ehexam/internal/service/vocabulary"
	"github.com/willyuhot/ehexam/internal/transport/middleware"
	"github.com/willyuhot/ehexam/internal/transport/rest"
)

type textTranslator interface {
	Translate(ctx context.Context, text, src, tgt string) (string, bool)
}

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires adapters, services and handlers, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	// Adapters.
	txm := postgres.NewTxManager(pool)
	questions := question.New(pool)
	words := vocabulary.New(pool)
	progressRepo := progress.New(pool)
	jobs := redis.NewJobStore(rdb, cfg.Redis.JobTTL)
	cache := redis.NewTranslationCache(rdb, cfg.Translate.CacheTTL)
	llm := NewCompleter(cfg.LLM, logger)
	phonetics := freedict.NewProviderWithURL(cfg.Ingest.DictionaryURL, logger)

	var translator textTranslator = translate.Noop{}
	if cfg.Translate.Enabled {
		translator = translate.NewClient(cfg.Translate, logger)
	}

	// Services.
	examService := examsvc.NewService(ctx, logger, examsvc.Config{
		ChunkMaxChars:      cfg.Ingest.ChunkMaxChars,
		ExportMaxQuestions: cfg.Ingest.ExportMaxQuestions,
	}, questions, jobs, txm, llm)

	vocabularyService := vocabularysvc.NewService(logger, vocabularysvc.Config{
		ChunkMaxChars: cfg.Ingest.ChunkMaxChars,
		FillPhonetics: cfg.Ingest.FillPhonetics,
	}, words, phonetics, llm)

	translationService := translationsvc.NewService(logger, translationsvc.Config{
		SourceLang:  cfg.Translate.SourceLang,
		TargetLang:  cfg.Translate.TargetLang,
		Concurrency: cfg.Ingest.TranslateConcurrency,
	}, translator, cache, questions)

	practiceService := practicesvc.NewService(logger, practicesvc.Config{
		ShuffleOptions: cfg.Ingest.ShuffleOptions,
	}, questions, progressRepo, txm)

	// Transport.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, rest.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}), BuildVersion()),
		Exam:       rest.NewExamHandler(examService, logger),
		Questions:  rest.NewQuestionHandler(examService, translationService, logger),
		Practice:   rest.NewPracticeHandler(practiceService, logger),
		Vocabulary: rest.NewVocabularyHandler(vocabularyService, logger),
	}, limiter.Limit(cfg.RateLimit.RequestsPerMinute))

	handler := middleware.Stack(logger, cfg.CORS, cfg.Server.MaxBodyBytes)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}

// NewCompleter returns the model adapter selected by cfg.Provider.
func NewCompleter(cfg config.LLMConfig, logger *slog.Logger) provider.Completer {
	if cfg.Provider == config.ProviderAnthropic {
		return claude.NewProvider(cfg, logger)
	}
	return deepseek.NewProvider(cfg, logger)
}
