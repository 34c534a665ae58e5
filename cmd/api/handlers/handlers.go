package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tech-pulse/cmd/api/dto"
)

// Pinger 는 저장소 연결 상태를 확인한다. nil 이면 항상 정상으로 본다.
type Pinger func(ctx context.Context) error

// HealthHandler godoc
// @Summary      Health check
// @Description  서버와 저장소 상태, 사용 중인 provider 를 반환한다.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Failure      503  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(info dto.HealthResponseDTO, ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := info
		resp.Status = "ok"
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				resp.Status = "degraded"
				c.JSON(http.StatusServiceUnavailable, resp)
				return
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}
