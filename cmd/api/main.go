package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"tech-pulse/cmd/api/dto"
	"tech-pulse/cmd/api/router"
	"tech-pulse/cmd/api/services"
	"tech-pulse/cmd/internal/app"
	"tech-pulse/cmd/internal/logger"
	"tech-pulse/config"
)

// @title           Tech-Pulse API
// @version         1.0
// @description     Developer news aggregation with TL;DR summaries, a coding assistant and bookmarks
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := app.NewStore(ctx, cfg.Storage)
	if err != nil {
		logger.Log.Errorf("failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()

	source, err := app.NewNewsSource(cfg.News)
	if err != nil {
		logger.Log.Errorf("failed to initialize news provider: %v", err)
		os.Exit(1)
	}
	llm, err := app.NewCompleter(cfg.LLM)
	if err != nil {
		logger.Log.Errorf("failed to initialize llm provider: %v", err)
		os.Exit(1)
	}

	health := dto.HealthResponseDTO{Storage: store.Backend, News: source.Name(), LLM: "none"}
	if llm != nil {
		health.LLM = llm.Name()
	}

	r := router.New(router.Deps{
		News:      app.NewNewsService(store, source, cfg.News),
		Articles:  services.NewArticleService(store),
		Summaries: services.NewSummaryService(store, llm, app.NewExtractor(cfg.Content, cfg.News)),
		Chat:      services.NewChatService(llm),
		Bookmarks: services.NewBookmarkService(store),
		Health:    health,
		Ping:      store.Ping,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
	}).Handler(r)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("api server listening", logger.Fields{
			"addr":    cfg.Server.Addr,
			"storage": health.Storage,
			"news":    health.News,
			"llm":     health.LLM,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("api server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("api server shutdown error: %v", err)
	}
	logger.Log.Info("api server stopped")
}
