// Package app 는 cmd/api 와 cmd/aggregate 가 공유하는 의존성 조립 코드다.
// 설정 값에 따라 저장소, 뉴스 provider, LLM provider, 본문 추출기를 고른다.
package app

import (
	"context"
	"fmt"
	"strings"

	"tech-pulse/cmd/api/clients/gnewsclient"
	"tech-pulse/cmd/api/clients/llmclient"
	"tech-pulse/cmd/api/cooldown"
	"tech-pulse/cmd/api/services"
	"tech-pulse/cmd/internal/httpclient"
	"tech-pulse/cmd/internal/logger"
	"tech-pulse/config"
	"tech-pulse/db"
	"tech-pulse/feeder"
	"tech-pulse/parser"
	"tech-pulse/renderer"
	"tech-pulse/repositories"
)

const userAgent = "tech-pulse/1.0 (+https://github.com/tech-pulse)"

// Store 는 선택된 저장소와 연결 확인/종료 함수를 묶는다.
type Store struct {
	repositories.Store
	Backend string
	Ping    func(ctx context.Context) error
	Close   func(ctx context.Context) error
}

// NewStore 는 storage.backend 에 따라 MemoryStore 또는 MongoStore 를 만든다.
func NewStore(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "memory":
		return &Store{
			Store:   repositories.NewMemoryStore(),
			Backend: "memory",
			Close:   func(context.Context) error { return nil },
		}, nil
	case "mongo", "mongodb":
		if err := db.Init(ctx); err != nil {
			return nil, fmt.Errorf("init mongodb: %w", err)
		}
		return &Store{
			Store:   repositories.NewMongoStore(db.Database()),
			Backend: "mongo",
			Ping:    func(ctx context.Context) error { return db.Client().Ping(ctx, nil) },
			Close:   db.Disconnect,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// NewNewsSource 는 news.provider 에 따라 GNews 또는 RSS provider 를 만든다.
func NewNewsSource(cfg config.NewsConfig) (services.NewsSource, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "gnews":
		if config.GNewsAPIKey() == "" {
			logger.WarnWithFields("GNEWS_API_KEY is not set; news requests will be served from cache only", nil)
		}
		return gnewsclient.New(cfg.BaseURL, config.GNewsAPIKey(), cfg.TimeoutDuration()), nil
	case "rss":
		httpClient := httpclient.New(httpclient.Config{Timeout: cfg.TimeoutDuration(), UserAgent: userAgent})
		return feeder.New(cfg.Feeds, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown news provider %q", cfg.Provider)
	}
}

// NewCompleter 는 llm.provider 에 따라 LLM provider 를 만든다.
// 키가 없어도 만들어지며, 호출 시 ErrNoCredential 을 돌려줘 fallback 이 사용된다.
func NewCompleter(cfg config.LLMConfig) (llmclient.Completer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "mistral":
		return llmclient.NewMistral(cfg.BaseURL, config.MistralAPIKey(), cfg.ModelName, cfg.TimeoutDuration()), nil
	case "google", "gemini":
		return llmclient.NewGemini(config.GeminiAPIKey(), cfg.ModelName), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// NewExtractor 는 content.enrich 가 꺼져 있으면 nil 을 반환한다.
func NewExtractor(cfg config.ContentConfig, news config.NewsConfig) services.TextExtractor {
	if !cfg.Enrich {
		return nil
	}
	var r parser.Renderer
	if strings.EqualFold(cfg.Renderer, "chrome") {
		r = renderer.NewChromeRenderer(0)
	}
	httpClient := httpclient.New(httpclient.Config{Timeout: news.TimeoutDuration(), UserAgent: userAgent})
	return parser.NewExtractor(httpClient, r, cfg.MaxTextRunes)
}

// NewNewsService 는 설정의 freshness/cooldown 으로 NewsService 를 만든다.
func NewNewsService(store repositories.Store, source services.NewsSource, cfg config.NewsConfig) *services.NewsService {
	return services.NewNewsService(store, source, cooldown.NewTracker(cfg.MaxTrackedKeys), services.NewsServiceOptions{
		Freshness: cfg.FreshnessDuration(),
		Cooldown:  cfg.CooldownDuration(),
	})
}
