package services

import (
	"strings"

	"tech-pulse/models"
)

const summaryUnavailable = "• Article summary is not available at this time"

// fallbackSummary 는 LLM 을 쓸 수 없을 때 제목과 설명으로 bullet 요약을 만든다.
func fallbackSummary(a models.Article) string {
	points := make([]string, 0, 3)

	if a.Title != "" {
		head, _, _ := strings.Cut(a.Title, ":")
		points = append(points, "• "+strings.TrimSpace(head))
	}

	if desc := a.DescriptionText(); desc != "" {
		added := 0
		for _, sentence := range strings.Split(desc, ".") {
			if added == 2 {
				break
			}
			sentence = strings.TrimSpace(sentence)
			if len(sentence) <= 20 {
				continue
			}
			points = append(points, "• "+sentence)
			added++
		}
	}

	if len(points) == 0 {
		points = append(points, summaryUnavailable)
	}
	return strings.Join(points, "\n")
}

var chatFallbacks = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"react", "jsx"},
		reply:    "For React development, I recommend checking the official React documentation at reactjs.org. Common patterns include using hooks like useState and useEffect for state management.",
	},
	{
		keywords: []string{"javascript", "js"},
		reply:    "JavaScript is a versatile language. For modern development, consider using ES6+ features like arrow functions, destructuring, and async/await for cleaner code.",
	},
	{
		keywords: []string{"css", "styling"},
		reply:    "For CSS, consider using Flexbox or Grid for layouts, and CSS variables for maintainable theming. Tailwind CSS is also great for utility-first styling.",
	},
	{
		keywords: []string{"api", "fetch"},
		reply:    "For API calls, use fetch() with async/await or libraries like axios. Always handle errors and loading states in your UI.",
	},
}

const chatGenericReply = "I'm a coding assistant here to help with programming questions. Feel free to ask about React, JavaScript, CSS, APIs, or other development topics!"

// fallbackChatReply 는 키워드 순서대로 첫 번째로 맞는 고정 답변을 돌려준다.
func fallbackChatReply(message string) string {
	lower := strings.ToLower(message)
	for _, fb := range chatFallbacks {
		for _, kw := range fb.keywords {
			if strings.Contains(lower, kw) {
				return fb.reply
			}
		}
	}
	return chatGenericReply
}
