package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tech-pulse/cmd/api/dto"
	"tech-pulse/cmd/api/handlers"
	"tech-pulse/cmd/api/middleware"
	"tech-pulse/cmd/api/services"
	_ "tech-pulse/docs"
)

// Deps 는 라우터가 핸들러에 주입하는 서비스 모음이다.
type Deps struct {
	News      *services.NewsService
	Articles  *services.ArticleService
	Summaries *services.SummaryService
	Chat      *services.ChatService
	Bookmarks *services.BookmarkService

	Health dto.HealthResponseDTO
	Ping   handlers.Pinger
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestMetrics())

	r.GET("/health", handlers.HealthHandler(deps.Health, deps.Ping))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/news", handlers.ListNewsHandler(deps.News))

		api.GET("/articles/:id", handlers.GetArticleHandler(deps.Articles))
		api.POST("/articles/:id/summary", handlers.CreateSummaryHandler(deps.Summaries))

		api.POST("/chat", handlers.ChatHandler(deps.Chat))

		api.GET("/bookmarks", handlers.ListBookmarksHandler(deps.Bookmarks))
		api.POST("/bookmarks", handlers.AddBookmarkHandler(deps.Bookmarks))
		api.DELETE("/bookmarks/:articleId", handlers.RemoveBookmarkHandler(deps.Bookmarks))
		api.GET("/bookmarks/:articleId/status", handlers.BookmarkStatusHandler(deps.Bookmarks))
	}

	return r
}
