package dto

type CreateBookmarkRequestDTO struct {
	ArticleID string `json:"articleId" binding:"required" example:"gnews_6f1c3b0e-0b8f-5d43-9b6e-2f4a1d7c9e21"`
}

// ValidationErrorDTO는 요청 본문의 필드 하나에 대한 검증 실패다.
type ValidationErrorDTO struct {
	Path    []string `json:"path" example:"articleId"`
	Code    string   `json:"code" example:"required"`
	Message string   `json:"message" example:"articleId is required"`
}

type ValidationErrorResponseDTO struct {
	Message string               `json:"message" example:"Invalid bookmark data"`
	Errors  []ValidationErrorDTO `json:"errors"`
}

type BookmarkStatusResponseDTO struct {
	IsBookmarked bool `json:"isBookmarked"`
}
