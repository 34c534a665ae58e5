package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-pulse/cmd/api/dto"
	"tech-pulse/cmd/api/services"
	"tech-pulse/repositories"
)

const msgArticleNotFound = "Article not found"

// GetArticleHandler godoc
// @Summary      기사 단건 조회
// @Tags         articles
// @Param        id   path   string  true  "Article ID"
// @Produce      json
// @Success      200  {object}  models.Article
// @Failure      404  {object}  dto.MessageResponseDTO
// @Failure      500  {object}  dto.MessageResponseDTO
// @Router       /api/articles/{id} [get]
func GetArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		article, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.MessageResponseDTO{Message: msgArticleNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.MessageResponseDTO{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// CreateSummaryHandler godoc
// @Summary      기사 TL;DR 생성
// @Description  기사당 요약은 하나만 저장된다. 이미 있으면 LLM 을 호출하지 않고 저장된 요약을 돌려준다.
// @Description  LLM 을 사용할 수 없으면 제목/설명 기반의 요약을 만든다.
// @Tags         articles
// @Param        id   path   string  true  "Article ID"
// @Produce      json
// @Success      200  {object}  models.Summary
// @Failure      404  {object}  dto.MessageResponseDTO
// @Failure      500  {object}  dto.MessageResponseDTO
// @Router       /api/articles/{id}/summary [post]
func CreateSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Generate(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.MessageResponseDTO{Message: msgArticleNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.MessageResponseDTO{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
