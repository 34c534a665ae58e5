package dto

// NewsErrorResponseDTO는 /api/news 가 캐시로도 응답할 수 없을 때의 형식이다.
type NewsErrorResponseDTO struct {
	Message string `json:"message" example:"Rate limit protection active. Please try again in a moment."`
	Error   string `json:"error,omitempty" example:"You have reached your request limit for today"`
	Cached  bool   `json:"cached" example:"false"`
}
