package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tech-pulse/cmd/api/services"
	"tech-pulse/cmd/internal/app"
	"tech-pulse/cmd/internal/logger"
	"tech-pulse/cmd/internal/quota"
	"tech-pulse/config"
)

const warmPageSize = 20

var (
	flagOnce         bool
	flagSummarizeTop int
)

// aggregate 는 API 와 같은 Mongo 저장소를 바라보며 뉴스 캐시를 미리 채운다.
// memory 저장소에서는 프로세스 간 공유가 안 되므로 의미가 없다.
var rootCmd = &cobra.Command{
	Use:          "aggregate",
	Short:        "Warm the tech-pulse news cache",
	Long:         "aggregate refreshes every category on news.warm_interval and can pre-generate TL;DR summaries within the LLM quota.",
	SilenceUsage: true,
	RunE:         runAggregate,
}

func init() {
	rootCmd.Flags().BoolVar(&flagOnce, "once", false, "run a single warm cycle and exit")
	rootCmd.Flags().IntVar(&flagSummarizeTop, "summarize-top", 0, "pre-generate TL;DR for the top N articles of each category")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAggregate(cmd *cobra.Command, args []string) error {
	if flagSummarizeTop < 0 {
		return fmt.Errorf("--summarize-top must not be negative, got %d", flagSummarizeTop)
	}

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Storage.Backend != "mongo" {
		logger.WarnWithFields("aggregate is running with a non-shared storage backend", logger.Fields{"backend": cfg.Storage.Backend})
	}

	store, err := app.NewStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()

	source, err := app.NewNewsSource(cfg.News)
	if err != nil {
		return fmt.Errorf("initializing news provider: %w", err)
	}
	llm, err := app.NewCompleter(cfg.LLM)
	if err != nil {
		return fmt.Errorf("initializing llm provider: %w", err)
	}

	warmer := NewWarmer(
		app.NewNewsService(store, source, cfg.News),
		services.NewSummaryService(store, llm, app.NewExtractor(cfg.Content, cfg.News)),
		quota.New(cfg.LLM.SummaryQuota.RequestsPerMinute, cfg.LLM.SummaryQuota.RequestsPerDay),
		warmPageSize,
		flagSummarizeTop,
	)

	if flagOnce {
		warmer.RunOnce(ctx)
		return nil
	}

	interval := cfg.News.WarmIntervalDuration()
	logger.InfoWithFields("aggregate started", logger.Fields{"interval": interval.String(), "provider": source.Name()})
	warmer.Run(ctx, interval)
	logger.Log.Info("aggregate stopped")
	return nil
}
