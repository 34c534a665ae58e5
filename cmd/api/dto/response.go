package dto

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
// 404/500 등 대부분의 에러도 이 형식으로 응답한다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"Article not found"`
}

// SuccessResponseDTO는 삭제 등 결과만 알려주는 응답이다.
type SuccessResponseDTO struct {
	Success bool `json:"success" example:"true"`
}

type HealthResponseDTO struct {
	Status  string `json:"status" example:"ok"`
	Storage string `json:"storage" example:"memory"`
	News    string `json:"news" example:"gnews"`
	LLM     string `json:"llm" example:"mistral"`
}
