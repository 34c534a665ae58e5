package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tech-pulse/cmd/api/dto"
	"tech-pulse/cmd/api/services"
	"tech-pulse/repositories"
)

// ListBookmarksHandler godoc
// @Summary      북마크 목록
// @Description  북마크된 기사를 최근 북마크 순으로 반환한다.
// @Tags         bookmarks
// @Produce      json
// @Success      200  {array}   models.BookmarkedArticle
// @Failure      500  {object}  dto.MessageResponseDTO
// @Router       /api/bookmarks [get]
func ListBookmarksHandler(svc *services.BookmarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.MessageResponseDTO{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// AddBookmarkHandler godoc
// @Summary      북마크 추가
// @Description  같은 기사를 여러 번 북마크해도 처음 만든 북마크가 반환된다.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateBookmarkRequestDTO  true  "bookmark"
// @Success      200   {object}  models.Bookmark
// @Failure      400   {object}  dto.ValidationErrorResponseDTO
// @Failure      500   {object}  dto.MessageResponseDTO
// @Router       /api/bookmarks [post]
func AddBookmarkHandler(svc *services.BookmarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateBookmarkRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseDTO{
				Message: "Invalid bookmark data",
				Errors:  validationErrors(err),
			})
			return
		}

		bookmark, err := svc.Add(c.Request.Context(), req.ArticleID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.MessageResponseDTO{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, bookmark)
	}
}

// RemoveBookmarkHandler godoc
// @Summary      북마크 제거
// @Tags         bookmarks
// @Param        articleId  path  string  true  "Article ID"
// @Produce      json
// @Success      200  {object}  dto.SuccessResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Failure      500  {object}  dto.MessageResponseDTO
// @Router       /api/bookmarks/{articleId} [delete]
func RemoveBookmarkHandler(svc *services.BookmarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Remove(c.Request.Context(), c.Param("articleId"))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.MessageResponseDTO{Message: "Bookmark not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.MessageResponseDTO{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponseDTO{Success: true})
	}
}

// BookmarkStatusHandler godoc
// @Summary      북마크 여부
// @Tags         bookmarks
// @Param        articleId  path  string  true  "Article ID"
// @Produce      json
// @Success      200  {object}  dto.BookmarkStatusResponseDTO
// @Failure      500  {object}  dto.MessageResponseDTO
// @Router       /api/bookmarks/{articleId}/status [get]
func BookmarkStatusHandler(svc *services.BookmarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Status(c.Request.Context(), c.Param("articleId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.MessageResponseDTO{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.BookmarkStatusResponseDTO{IsBookmarked: ok})
	}
}

// validationErrors 는 바인딩 에러를 필드 단위 목록으로 바꾼다.
func validationErrors(err error) []dto.ValidationErrorDTO {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]dto.ValidationErrorDTO, 0, len(verrs))
		for _, fe := range verrs {
			field := jsonFieldName(fe.Field())
			out = append(out, dto.ValidationErrorDTO{
				Path:    []string{field},
				Code:    fe.Tag(),
				Message: field + " is " + fe.Tag(),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		return []dto.ValidationErrorDTO{{
			Path:    []string{field},
			Code:    "invalid_type",
			Message: "expected " + typeErr.Type.String() + ", received " + typeErr.Value,
		}}
	}

	return []dto.ValidationErrorDTO{{Path: []string{}, Code: "invalid_body", Message: err.Error()}}
}

// jsonFieldName 은 struct 필드명을 JSON 키 형식(첫 글자 소문자, ID -> Id)으로 바꾼다.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	field = strings.ReplaceAll(field, "ID", "Id")
	return strings.ToLower(field[:1]) + field[1:]
}
