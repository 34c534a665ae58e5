package dto

type ChatRequestDTO struct {
	Message string `json:"message" binding:"required" example:"How do I cancel a goroutine?"`
}

type ChatResponseDTO struct {
	Response string `json:"response"`
}
