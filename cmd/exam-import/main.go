// Command exam-import extracts questions from exam text files with the
// configured language model and saves them into the question bank.
//
// Flags:
//
//	-config   path to exam-import config YAML (optional; falls back to env)
//	-path     exam text file or directory of *.txt files
//	-vocab    also extract vocabulary into the vocabulary book
//	-dry-run  print extracted questions instead of saving them
//
// Exit codes: 0 = success, 1 = error or at least one failed file.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/willyuhot/ehexam/internal/adapter/postgres"
	"github.com/willyuhot/ehexam/internal/adapter/postgres/question"
	"github.com/willyuhot/ehexam/internal/adapter/postgres/vocabulary"
	"github.com/willyuhot/ehexam/internal/adapter/provider/freedict"
	"github.com/willyuhot/ehexam/internal/app"
	"github.com/willyuhot/ehexam/internal/app/examimport"
	"github.com/willyuhot/ehexam/internal/config"
	examsvc "github.com/willyuhot/ehexam/internal/service/exam"
	vocabularysvc "github.com/willyuhot/ehexam/internal/service/vocabulary"
)

func main() {
	configPath := flag.String("config", "", "path to exam-import config YAML")
	path := flag.String("path", "", "exam text file or directory")
	vocab := flag.Bool("vocab", false, "also import vocabulary")
	dryRun := flag.Bool("dry-run", false, "print extracted questions without saving")
	flag.Parse()

	// Load app config (for DB connection, model and logging).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := examimport.LoadConfig(*configPath)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *path != "" {
		importCfg.Path = *path
	}
	if *vocab {
		importCfg.Vocab = true
	}
	if *dryRun {
		importCfg.DryRun = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	llm := app.NewCompleter(appCfg.LLM, logger)

	exams := examsvc.NewService(ctx, logger, examsvc.Config{
		ChunkMaxChars:      appCfg.Ingest.ChunkMaxChars,
		ExportMaxQuestions: appCfg.Ingest.ExportMaxQuestions,
	}, question.New(pool), nil, postgres.NewTxManager(pool), llm)

	words := vocabularysvc.NewService(logger, vocabularysvc.Config{
		ChunkMaxChars: appCfg.Ingest.ChunkMaxChars,
		FillPhonetics: appCfg.Ingest.FillPhonetics,
	}, vocabulary.New(pool), freedict.NewProviderWithURL(appCfg.Ingest.DictionaryURL, logger), llm)

	if importCfg.DryRun {
		logger.Info("dry-run mode: no DB writes")
	}

	result, err := examimport.Run(ctx, importCfg, exams, words, os.Stdout, logger)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if result.Errors > 0 {
		os.Exit(1)
	}
}
