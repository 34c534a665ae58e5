package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tech-pulse/cmd/api/dto"
	"tech-pulse/cmd/api/services"
	"tech-pulse/repositories"
)

const maxNewsLimit = 100

// ListNewsHandler godoc
// @Summary      뉴스 목록
// @Description  카테고리/검색어로 기사를 조회한다. 5분 이내 캐시가 있으면 외부 API 를 호출하지 않으며,
// @Description  같은 조건의 외부 호출은 10초에 한 번으로 제한된다.
// @Tags         news
// @Param        category  query  string  false  "all | ai | programming | startups | cloud | cybersecurity | devops"
// @Param        search    query  string  false  "검색어"
// @Param        limit     query  int     false  "최대 개수 (기본 20, 최대 100)"
// @Param        offset    query  int     false  "시작 위치"
// @Produce      json
// @Success      200  {array}   models.Article
// @Failure      429  {object}  dto.NewsErrorResponseDTO
// @Failure      500  {object}  dto.NewsErrorResponseDTO
// @Router       /api/news [get]
func ListNewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := services.NewsQuery{
			Category: c.DefaultQuery("category", "all"),
			Search:   c.Query("search"),
			Limit:    queryInt(c, "limit", repositories.DefaultListLimit),
			Offset:   queryInt(c, "offset", 0),
		}
		if q.Limit > maxNewsLimit {
			q.Limit = maxNewsLimit
		}

		articles, newsErr := svc.Fetch(c.Request.Context(), q)
		if newsErr != nil {
			c.JSON(newsErr.StatusCode, dto.NewsErrorResponseDTO{
				Message: newsErr.Message,
				Error:   newsErr.Detail,
				Cached:  false,
			})
			return
		}
		c.JSON(http.StatusOK, articles)
	}
}

// queryInt 는 숫자가 아니거나 음수이면 def 를 사용한다.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
