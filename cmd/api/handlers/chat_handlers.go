package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-pulse/cmd/api/dto"
	"tech-pulse/cmd/api/services"
)

// ChatHandler godoc
// @Summary      코딩 어시스턴트 질의
// @Description  LLM 에 질문을 전달한다. LLM 을 사용할 수 없으면 키워드 기반 답변을 돌려준다.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatRequestDTO  true  "chat request"
// @Success      200   {object}  dto.ChatResponseDTO
// @Failure      400   {object}  dto.MessageResponseDTO
// @Router       /api/chat [post]
func ChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ChatRequestDTO
		// message 누락, 문자열이 아닌 값, 빈 문자열 모두 400
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Message is required"})
			return
		}

		c.JSON(http.StatusOK, dto.ChatResponseDTO{Response: svc.Reply(c.Request.Context(), req.Message)})
	}
}
