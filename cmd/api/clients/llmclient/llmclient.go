package llmclient

import (
	"context"
	"errors"
)

// ErrNoCredential 는 API 키가 설정되지 않았을 때 반환된다. 호출자는 fallback 을 사용한다.
var ErrNoCredential = errors.New("llm: api key is not configured")

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options 는 completion 한 번의 생성 파라미터다.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Completer 는 chat completion 을 제공하는 LLM provider 이다.
// 응답 텍스트가 비어 있을 수 있으며, 그 처리는 호출자 몫이다.
type Completer interface {
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
	Name() string
}
