package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-pulse/cmd/api/clients/llmclient"
)

func TestReplyUsesLLM(t *testing.T) {
	llm := &fakeCompleter{answer: "Use a goroutine."}
	got := NewChatService(llm).Reply(context.Background(), "how do I run things concurrently?")

	assert.Equal(t, "Use a goroutine.", got)
	require.Len(t, llm.messages, 2)
	assert.Equal(t, llmclient.RoleSystem, llm.messages[0].Role)
	assert.Equal(t, chatSystemPrompt, llm.messages[0].Content)
	assert.Equal(t, "how do I run things concurrently?", llm.messages[1].Content)
	assert.Equal(t, llmclient.Options{MaxTokens: 500, Temperature: 0.7}, llm.opts)
}

func TestReplyEmptyAnswer(t *testing.T) {
	got := NewChatService(&fakeCompleter{}).Reply(context.Background(), "hi")
	assert.Equal(t, chatEmptyAnswer, got)
}

func TestReplyFallsBackOnError(t *testing.T) {
	for _, llm := range []llmclient.Completer{nil, &fakeCompleter{err: llmclient.ErrNoCredential}, &fakeCompleter{err: errors.New("503")}} {
		got := NewChatService(llm).Reply(context.Background(), "How do I use React hooks?")
		assert.Contains(t, got, "For React development")
	}
}

func TestFallbackChatReply(t *testing.T) {
	testCases := []struct {
		message    string
		wantPrefix string
	}{
		{message: "My JSX does not render", wantPrefix: "For React development"},
		{message: "javascript closures?", wantPrefix: "JavaScript is a versatile language"},
		{message: "node JS streams", wantPrefix: "JavaScript is a versatile language"},
		{message: "center a div with CSS", wantPrefix: "For CSS"},
		{message: "Styling buttons", wantPrefix: "For CSS"},
		{message: "call a REST API", wantPrefix: "For API calls"},
		{message: "fetch with retries", wantPrefix: "For API calls"},
		{message: "react and css together", wantPrefix: "For React development"},
		{message: "hello there", wantPrefix: "I'm a coding assistant"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.message, func(t *testing.T) {
			assert.Regexp(t, "^"+testCase.wantPrefix, fallbackChatReply(testCase.message))
		})
	}
}
