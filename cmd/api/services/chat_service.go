package services

import (
	"context"
	"errors"
	"strings"

	"tech-pulse/cmd/api/clients/llmclient"
	"tech-pulse/cmd/api/metrics"
	"tech-pulse/cmd/internal/logger"
)

const (
	chatSystemPrompt = "You are a helpful coding assistant for developers. Provide concise, practical answers about programming, debugging, and software development. Include code examples when relevant."
	chatEmptyAnswer  = "I'm sorry, I couldn't process your request."
)

var chatOptions = llmclient.Options{MaxTokens: 500, Temperature: 0.7}

type ChatService struct {
	llm llmclient.Completer
}

func NewChatService(llm llmclient.Completer) *ChatService {
	return &ChatService{llm: llm}
}

// Reply 는 항상 답변 문자열을 돌려준다. LLM 실패 시 키워드 기반 고정 답변을 사용한다.
func (s *ChatService) Reply(ctx context.Context, message string) string {
	if s.llm == nil {
		metrics.RecordFallback("chat", "no_provider")
		return fallbackChatReply(message)
	}

	answer, err := s.llm.Complete(ctx, []llmclient.Message{
		{Role: llmclient.RoleSystem, Content: chatSystemPrompt},
		{Role: llmclient.RoleUser, Content: message},
	}, chatOptions)
	if err != nil {
		reason := "error"
		if errors.Is(err, llmclient.ErrNoCredential) {
			reason = "no_credential"
		} else {
			logger.ErrorWithFields("llm chat failed", logger.Fields{
				"provider": s.llm.Name(),
				"error":    err.Error(),
			})
		}
		metrics.RecordFallback("chat", reason)
		return fallbackChatReply(message)
	}
	if strings.TrimSpace(answer) == "" {
		return chatEmptyAnswer
	}
	return answer
}
