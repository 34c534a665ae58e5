// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/news": {
            "get": {
                "description": "카테고리/검색어로 기사를 조회한다. 5분 이내 캐시가 있으면 외부 API 를 호출하지 않으며, 같은 조건의 외부 호출은 10초에 한 번으로 제한된다.",
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "뉴스 목록",
                "parameters": [
                    {"type": "string", "description": "all | ai | programming | startups | cloud | cybersecurity | devops", "name": "category", "in": "query"},
                    {"type": "string", "description": "검색어", "name": "search", "in": "query"},
                    {"type": "integer", "description": "최대 개수 (기본 20, 최대 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "시작 위치", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Article"}}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/dto.NewsErrorResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.NewsErrorResponseDTO"}}
                }
            }
        },
        "/api/articles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "기사 단건 조회",
                "parameters": [
                    {"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Article"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}}
                }
            }
        },
        "/api/articles/{id}/summary": {
            "post": {
                "description": "기사당 요약은 하나만 저장된다. 이미 있으면 LLM 을 호출하지 않고 저장된 요약을 돌려준다. LLM 을 사용할 수 없으면 제목/설명 기반의 요약을 만든다.",
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "기사 TL;DR 생성",
                "parameters": [
                    {"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Summary"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}}
                }
            }
        },
        "/api/chat": {
            "post": {
                "description": "LLM 에 질문을 전달한다. LLM 을 사용할 수 없으면 키워드 기반 답변을 돌려준다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "코딩 어시스턴트 질의",
                "parameters": [
                    {"description": "chat request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChatRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ChatResponseDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}}
                }
            }
        },
        "/api/bookmarks": {
            "get": {
                "description": "북마크된 기사를 최근 북마크 순으로 반환한다.",
                "produces": ["application/json"],
                "tags": ["bookmarks"],
                "summary": "북마크 목록",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.BookmarkedArticle"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}}
                }
            },
            "post": {
                "description": "같은 기사를 여러 번 북마크해도 처음 만든 북마크가 반환된다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookmarks"],
                "summary": "북마크 추가",
                "parameters": [
                    {"description": "bookmark", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateBookmarkRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Bookmark"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}}
                }
            }
        },
        "/api/bookmarks/{articleId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["bookmarks"],
                "summary": "북마크 제거",
                "parameters": [
                    {"type": "string", "description": "Article ID", "name": "articleId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SuccessResponseDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}}
                }
            }
        },
        "/api/bookmarks/{articleId}/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookmarks"],
                "summary": "북마크 여부",
                "parameters": [
                    {"type": "string", "description": "Article ID", "name": "articleId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookmarkStatusResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "서버와 저장소 상태, 사용 중인 provider 를 반환한다.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponseDTO"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponseDTO"}}
                }
            }
        }
    },
    "definitions": {
        "dto.BookmarkStatusResponseDTO": {
            "type": "object",
            "properties": {"isBookmarked": {"type": "boolean"}}
        },
        "dto.ChatRequestDTO": {
            "type": "object",
            "required": ["message"],
            "properties": {"message": {"type": "string", "example": "How do I cancel a goroutine?"}}
        },
        "dto.ChatResponseDTO": {
            "type": "object",
            "properties": {"response": {"type": "string"}}
        },
        "dto.CreateBookmarkRequestDTO": {
            "type": "object",
            "required": ["articleId"],
            "properties": {"articleId": {"type": "string", "example": "gnews_6f1c3b0e-0b8f-5d43-9b6e-2f4a1d7c9e21"}}
        },
        "dto.HealthResponseDTO": {
            "type": "object",
            "properties": {
                "llm": {"type": "string", "example": "mistral"},
                "news": {"type": "string", "example": "gnews"},
                "status": {"type": "string", "example": "ok"},
                "storage": {"type": "string", "example": "memory"}
            }
        },
        "dto.MessageResponseDTO": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Article not found"}}
        },
        "dto.NewsErrorResponseDTO": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "You have reached your request limit for today"},
                "message": {"type": "string", "example": "Rate limit protection active. Please try again in a moment."}
            }
        },
        "dto.SuccessResponseDTO": {
            "type": "object",
            "properties": {"success": {"type": "boolean", "example": true}}
        },
        "dto.ValidationErrorDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "required"},
                "message": {"type": "string", "example": "articleId is required"},
                "path": {"type": "array", "items": {"type": "string"}, "example": ["articleId"]}
            }
        },
        "dto.ValidationErrorResponseDTO": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/dto.ValidationErrorDTO"}},
                "message": {"type": "string", "example": "Invalid bookmark data"}
            }
        },
        "models.Article": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "content": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "publishedAt": {"type": "string"},
                "source": {"type": "string"},
                "title": {"type": "string"},
                "url": {"type": "string"},
                "urlToImage": {"type": "string"}
            }
        },
        "models.Bookmark": {
            "type": "object",
            "properties": {
                "articleId": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "models.BookmarkedArticle": {
            "type": "object",
            "properties": {
                "bookmarkedAt": {"type": "string"},
                "category": {"type": "string"},
                "content": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "publishedAt": {"type": "string"},
                "source": {"type": "string"},
                "title": {"type": "string"},
                "url": {"type": "string"},
                "urlToImage": {"type": "string"}
            }
        },
        "models.Summary": {
            "type": "object",
            "properties": {
                "articleId": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "summary": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tech-Pulse API",
	Description:      "Developer news aggregation with TL;DR summaries, a coding assistant and bookmarks",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
